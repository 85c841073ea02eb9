package console

const DefaultPerPage = 20

// Paginator slices a loaded row set into fixed-size pages. Pages are
// 1-based to match the rendered pager.
type Paginator struct {
	PerPage int
	Page    int
}

func NewPaginator() Paginator {
	return Paginator{PerPage: DefaultPerPage, Page: 1}
}

func (p Paginator) TotalPages(total int) int {
	if p.PerPage <= 0 {
		return 1
	}
	pages := (total + p.PerPage - 1) / p.PerPage
	if pages < 1 {
		pages = 1
	}
	return pages
}

// SetPage moves to page, clamped to the valid range for total rows.
func (p *Paginator) SetPage(page, total int) {
	if page < 1 {
		page = 1
	}
	if last := p.TotalPages(total); page > last {
		page = last
	}
	p.Page = page
}

// bounds returns the half-open slice range for the current page.
func (p Paginator) bounds(total int) (int, int) {
	start := (p.Page - 1) * p.PerPage
	if start > total {
		start = total
	}
	end := start + p.PerPage
	if end > total {
		end = total
	}
	return start, end
}

// pageOf projects the current page out of rows.
func pageOf[T any](rows []T, p Paginator) []T {
	start, end := p.bounds(len(rows))
	return rows[start:end]
}
