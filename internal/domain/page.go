package domain

// Trip lists are paged. Both repos order a page by start date, newest
// first, so page 1 always holds the trips furthest in the future.
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
	// MaxPage bounds the page number so Offset stays well inside int range
	// even at MaxPageLimit. A planner never holds anywhere near this many trips.
	MaxPage = 1_000_000
)

// PaginationParams selects one page of the trip list. Page is 1-indexed.
// Build it with NewPaginationParams; values set by hand are clamped by Offset.
type PaginationParams struct {
	Page  int
	Limit int
}

// NewPaginationParams builds a PaginationParams from the optional page and
// limit query parameters. Missing or non-positive values fall back to page 1
// and DefaultPageLimit; larger values are capped at MaxPage and MaxPageLimit.
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: 1, Limit: DefaultPageLimit}
	if page != nil && *page >= 1 {
		p.Page = min(*page, MaxPage)
	}
	if limit != nil && *limit >= 1 {
		p.Limit = min(*limit, MaxPageLimit)
	}
	return p
}

// Offset returns how many trips precede the page. It is never negative.
func (p PaginationParams) Offset() int {
	page := min(max(p.Page, 1), MaxPage)
	limit := min(max(p.Limit, 0), MaxPageLimit)
	return (page - 1) * limit
}
