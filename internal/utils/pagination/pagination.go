package pagination

// Params holds 1-based page parameters for list operations.
type Params struct {
	Page    int `form:"page,default=1"`
	PerPage int `form:"perPage,default=20"`
}

const (
	defaultPerPage = 20
	maxPerPage     = 200
)

// Normalize clamps the parameters to sane bounds. A zero or negative page
// becomes 1; perPage falls back to the default and is capped.
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = defaultPerPage
	}
	if p.PerPage > maxPerPage {
		p.PerPage = maxPerPage
	}
	return p
}

// Offset returns the row offset for the normalized parameters.
func (p Params) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.PerPage
}

// Limit returns the row limit for the normalized parameters.
func (p Params) Limit() int {
	return p.Normalize().PerPage
}
