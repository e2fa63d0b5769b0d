package query

// Pagination defaults and the hard cap on rows per page.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Page is a zero-based row offset plus a bounded row count.
// The zero value means "no pagination requested".
type Page struct {
	Offset int
	Limit  int
}

// ResolvePage normalises page+limit into an offset/limit pair.
// Values below 1 are rejected rather than silently producing a zero or
// negative offset; callers substitute DefaultPage/DefaultLimit for
// absent inputs before resolving. Limits above MaxLimit are clamped.
func ResolvePage(page, limit int) (Page, error) {
	if page < 1 {
		return Page{}, newValidationError("Invalid pagination: page must be at least 1, got %d", page)
	}
	if limit < 1 {
		return Page{}, newValidationError("Invalid pagination: limit must be at least 1, got %d", limit)
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Page{Offset: (page - 1) * limit, Limit: limit}, nil
}

// IsZero reports whether no pagination was requested.
func (p Page) IsZero() bool {
	return p.Limit == 0
}
