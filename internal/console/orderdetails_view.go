package console

import (
	"context"

	"github.com/shoestackclub/shoestack/internal/store"
)

// OrderDetailsView is the read-only order lines table.
type OrderDetailsView struct {
	client *Client

	Rows  []*store.OrderDetail
	Pager Paginator
}

func NewOrderDetailsView(client *Client) *OrderDetailsView {
	return &OrderDetailsView{client: client, Pager: NewPaginator()}
}

func (v *OrderDetailsView) Load(ctx context.Context) error {
	var rows []*store.OrderDetail
	if err := v.client.Get(ctx, "/orderdetails", &rows); err != nil {
		return err
	}
	v.Rows = rows
	v.Pager.SetPage(v.Pager.Page, len(rows))
	return nil
}

func (v *OrderDetailsView) VisibleRows() []*store.OrderDetail {
	return pageOf(v.Rows, v.Pager)
}
