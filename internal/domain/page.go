package domain

const (
	// DefaultPageLimit is used when the caller supplies no usable limit.
	DefaultPageLimit = 10
	// MaxPageLimit caps the limit to prevent runaway queries.
	MaxPageLimit = 100
)

// PageParams carries limit/offset values from the HTTP layer to the repo layer.
type PageParams struct {
	// Limit is the maximum number of items to return.
	Limit int
	// Offset is the zero-based number of rows to skip.
	Offset int
}

// NewPageParams builds PageParams from optional HTTP query params.
// Nil pointers and out-of-range values fall back to defaults (limit=10,
// offset=0) instead of failing the request. The limit is capped at 100.
func NewPageParams(limit, offset *int) PageParams {
	p := PageParams{Limit: DefaultPageLimit, Offset: 0}
	if limit != nil && *limit >= 1 {
		p.Limit = *limit
		if p.Limit > MaxPageLimit {
			p.Limit = MaxPageLimit
		}
	}
	if offset != nil && *offset >= 0 {
		p.Offset = *offset
	}
	return p
}
