package console

import (
	"context"
	"sort"

	"github.com/shoestackclub/shoestack/internal/store"
)

// ShipmentForm backs the shipment edit dialog.
type ShipmentForm struct {
	ID      string
	Courier string
	Status  string
}

type shipmentPayload struct {
	Courier string `json:"courier"`
	Status  string `json:"status"`
}

// ShipmentsView is the shipments table with a status sort toggle and a
// dialog-driven edit of courier and status.
type ShipmentsView struct {
	client  *Client
	dialog  Dialog
	alerter Alerter

	Rows      []*store.Shipment
	Pager     Paginator
	Ascending bool
	Form      ShipmentForm
}

func NewShipmentsView(client *Client, dialog Dialog, alerter Alerter) *ShipmentsView {
	if dialog == nil {
		dialog = NopDialog{}
	}
	if alerter == nil {
		alerter = NopAlerter{}
	}
	return &ShipmentsView{
		client:    client,
		dialog:    dialog,
		alerter:   alerter,
		Pager:     NewPaginator(),
		Ascending: true,
	}
}

func (v *ShipmentsView) Load(ctx context.Context) error {
	var rows []*store.Shipment
	if err := v.client.Get(ctx, "/shipments", &rows); err != nil {
		return err
	}
	v.Rows = rows
	v.Pager.SetPage(v.Pager.Page, len(rows))
	return nil
}

func (v *ShipmentsView) ToggleSort() {
	v.Ascending = !v.Ascending
}

// VisibleRows sorts by lifecycle rank in the current direction, with
// unknown statuses always last, then projects the current page.
func (v *ShipmentsView) VisibleRows() []*store.Shipment {
	sort.SliceStable(v.Rows, func(i, j int) bool {
		a := v.rank(v.Rows[i].Status)
		b := v.rank(v.Rows[j].Status)
		return a < b
	})
	return pageOf(v.Rows, v.Pager)
}

func (v *ShipmentsView) rank(status string) int {
	r := statusRank(status)
	if r == 99 {
		return r
	}
	if !v.Ascending {
		return 4 - r
	}
	return r
}

func (v *ShipmentsView) RowBadge(s *store.Shipment) Badge {
	return StatusBadge(s.Status)
}

func (v *ShipmentsView) OpenEdit(s *store.Shipment) {
	v.Form = ShipmentForm{ID: s.ID.String(), Courier: s.Courier, Status: s.Status}
	v.dialog.Show()
}

// Save submits the edit dialog and patches the loaded row in place so
// the table re-renders without a reload.
func (v *ShipmentsView) Save(ctx context.Context) error {
	payload := shipmentPayload{Courier: v.Form.Courier, Status: v.Form.Status}
	if err := v.client.Put(ctx, "/shipment/"+v.Form.ID, payload, nil); err != nil {
		v.alerter.Alert(err.Error())
		return err
	}

	for _, r := range v.Rows {
		if r.ID.String() == v.Form.ID {
			r.Courier = v.Form.Courier
			r.Status = v.Form.Status
			break
		}
	}
	v.dialog.Hide()
	return nil
}
