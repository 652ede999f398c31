package views

// PageSize is the number of products per listing page.
const PageSize = 10

// Pager converts between 1-based page numbers and offsets.
type Pager struct {
	Size int
}

// Offset returns the offset of page n; pages below 1 count as 1.
func (p Pager) Offset(n int) int {
	if n < 1 {
		n = 1
	}
	return (n - 1) * p.Size
}

// TotalPages returns ceil(total/size), zero for an empty listing.
func (p Pager) TotalPages(total int) int {
	if total <= 0 || p.Size <= 0 {
		return 0
	}
	return (total + p.Size - 1) / p.Size
}

// Clamp keeps n within [1, TotalPages(total)], returning 1 when empty.
func (p Pager) Clamp(n, total int) int {
	last := p.TotalPages(total)
	if n > last {
		n = last
	}
	if n < 1 {
		n = 1
	}
	return n
}
