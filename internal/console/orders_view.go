package console

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/shoestackclub/shoestack/internal/store"
)

// OrdersView is the orders table: rows join each order with its
// shipment status, a toggle sorts by status rank, and row deletion is
// guarded by the pending-shipment rule.
type OrdersView struct {
	client    *Client
	alerter   Alerter
	confirmer Confirmer

	Rows            []OrderRow
	Pager           Paginator
	StatusAscending bool
}

func NewOrdersView(client *Client, alerter Alerter, confirmer Confirmer) *OrdersView {
	if alerter == nil {
		alerter = NopAlerter{}
	}
	if confirmer == nil {
		confirmer = alwaysConfirm{}
	}
	return &OrdersView{
		client:          client,
		alerter:         alerter,
		confirmer:       confirmer,
		Pager:           NewPaginator(),
		StatusAscending: true,
	}
}

func (v *OrdersView) Load(ctx context.Context) error {
	var rows []OrderRow
	if err := v.client.Get(ctx, "/orders", &rows); err != nil {
		return err
	}
	v.Rows = rows
	v.Pager.SetPage(v.Pager.Page, len(rows))
	return nil
}

// ToggleSort flips the status sort direction and resets to page one.
func (v *OrdersView) ToggleSort() {
	v.StatusAscending = !v.StatusAscending
	v.Pager.SetPage(1, len(v.Rows))
}

// VisibleRows sorts by status rank, then projects the current page.
// The sort runs on every projection so the table always reflects the
// current direction.
func (v *OrdersView) VisibleRows() []OrderRow {
	sort.SliceStable(v.Rows, func(i, j int) bool {
		a := statusRank(v.Rows[i].ShipmentStatus)
		b := statusRank(v.Rows[j].ShipmentStatus)
		if v.StatusAscending {
			return a < b
		}
		return a > b
	})
	return pageOf(v.Rows, v.Pager)
}

func (v *OrdersView) RowBadge(r OrderRow) Badge {
	return StatusBadge(r.ShipmentStatus)
}

// CanDelete reports whether the row's order is still cancelable.
func (v *OrdersView) CanDelete(r OrderRow) bool {
	return r.ShipmentStatus == store.ShipmentPending
}

// Delete cancels an order. Rows without a pending shipment alert and
// make no call; on success the row is dropped from the loaded set.
func (v *OrdersView) Delete(ctx context.Context, orderID uuid.UUID) error {
	var row *OrderRow
	for i := range v.Rows {
		if v.Rows[i].OrderID == orderID {
			row = &v.Rows[i]
			break
		}
	}
	if row == nil {
		return nil
	}
	if !v.CanDelete(*row) {
		v.alerter.Alert(MsgCannotCancel)
		return nil
	}
	if !v.confirmer.Confirm("Delete this order?") {
		return nil
	}

	if err := v.client.Delete(ctx, "/order/"+orderID.String(), nil); err != nil {
		v.alerter.Alert(err.Error())
		return err
	}

	kept := v.Rows[:0]
	for _, r := range v.Rows {
		if r.OrderID != orderID {
			kept = append(kept, r)
		}
	}
	v.Rows = kept
	v.Pager.SetPage(v.Pager.Page, len(v.Rows))
	return nil
}
