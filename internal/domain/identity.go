package domain

// Identity is the already-verified caller of a request.
// It is produced by the authentication middleware and passed explicitly to
// every service operation that needs to know who is calling.
type Identity struct {
	// Subject is the external auth provider's stable subject identifier.
	Subject string
	// Email is the optional email-like claim carried by the credential.
	Email string
}

// IsZero reports whether no subject is present.
func (i Identity) IsZero() bool {
	return i.Subject == ""
}
