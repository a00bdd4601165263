// Package auth verifies bearer credentials issued by the external identity
// provider and turns them into a domain.Identity.
package auth

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pkordes/travel-mate/backend/internal/domain"
)

// Verifier checks a raw bearer token and returns the identity it asserts.
// Any failure is reported as an error wrapping domain.ErrUnauthorized.
type Verifier interface {
	Verify(ctx context.Context, token string) (domain.Identity, error)
}

// Claims is the JWT payload the API reads. The subject is the provider's
// stable user id; email is optional.
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// JWTVerifier validates HS256-signed JWTs with a shared secret.
type JWTVerifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewJWTVerifier constructs a JWTVerifier. Empty issuer or audience disables
// that check. Expiry is always enforced when the token carries one.
func NewJWTVerifier(secret, issuer, audience string) *JWTVerifier {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	if audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}
	return &JWTVerifier{secret: []byte(secret), parser: jwt.NewParser(opts...)}
}

// Verify parses token and returns its subject and email claims.
func (v *JWTVerifier) Verify(_ context.Context, token string) (domain.Identity, error) {
	if token == "" {
		return domain.Identity{}, fmt.Errorf("auth.JWTVerifier.Verify: missing token: %w", domain.ErrUnauthorized)
	}

	claims := new(Claims)
	parsed, err := v.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return domain.Identity{}, fmt.Errorf("auth.JWTVerifier.Verify: %w: %w", domain.ErrUnauthorized, err)
	}
	if !parsed.Valid {
		return domain.Identity{}, fmt.Errorf("auth.JWTVerifier.Verify: %w", domain.ErrUnauthorized)
	}
	if claims.Subject == "" {
		return domain.Identity{}, fmt.Errorf("auth.JWTVerifier.Verify: token has no subject: %w", domain.ErrUnauthorized)
	}
	return domain.Identity{Subject: claims.Subject, Email: claims.Email}, nil
}

// Sign issues an HS256 token carrying claims. The API never issues credentials
// itself; this exists for local tooling and tests.
func Sign(secret string, claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
