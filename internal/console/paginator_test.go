package console

import "testing"

func TestPaginator(t *testing.T) {
	rows := make([]int, 45)
	for i := range rows {
		rows[i] = i
	}

	t.Run("firstPage", func(t *testing.T) {
		p := NewPaginator()
		page := pageOf(rows, p)
		if len(page) != 20 {
			t.Fatalf("len = %d, want 20", len(page))
		}
		if page[0] != 0 || page[19] != 19 {
			t.Errorf("page = [%d..%d]", page[0], page[19])
		}
	})

	t.Run("lastPageIsShort", func(t *testing.T) {
		p := NewPaginator()
		p.SetPage(3, len(rows))
		page := pageOf(rows, p)
		if len(page) != 5 {
			t.Fatalf("len = %d, want 5", len(page))
		}
		if page[0] != 40 {
			t.Errorf("first = %d, want 40", page[0])
		}
	})

	t.Run("totalPages", func(t *testing.T) {
		p := NewPaginator()
		if got := p.TotalPages(45); got != 3 {
			t.Errorf("pages for 45 = %d, want 3", got)
		}
		if got := p.TotalPages(40); got != 2 {
			t.Errorf("pages for 40 = %d, want 2", got)
		}
		if got := p.TotalPages(0); got != 1 {
			t.Errorf("pages for 0 = %d, want 1", got)
		}
	})

	t.Run("clampsOutOfRange", func(t *testing.T) {
		p := NewPaginator()
		p.SetPage(99, len(rows))
		if p.Page != 3 {
			t.Errorf("page = %d, want 3", p.Page)
		}
		p.SetPage(-1, len(rows))
		if p.Page != 1 {
			t.Errorf("page = %d, want 1", p.Page)
		}
	})

	t.Run("emptyRows", func(t *testing.T) {
		p := NewPaginator()
		if got := pageOf([]int{}, p); len(got) != 0 {
			t.Errorf("len = %d, want 0", len(got))
		}
	})
}
