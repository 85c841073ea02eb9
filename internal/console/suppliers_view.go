package console

import (
	"context"

	"github.com/shoestackclub/shoestack/internal/store"
)

// SupplierForm backs the create/edit dialog. An empty ID means create.
type SupplierForm struct {
	ID      string
	Name    string
	Country string
}

type supplierPayload struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

// SuppliersView is the suppliers table. The loaded rows are the single
// source of truth; the visible page is projected from them.
type SuppliersView struct {
	client    *Client
	dialog    Dialog
	alerter   Alerter
	confirmer Confirmer

	Rows  []*store.Supplier
	Pager Paginator
	Form  SupplierForm
}

func NewSuppliersView(client *Client, dialog Dialog, alerter Alerter, confirmer Confirmer) *SuppliersView {
	if dialog == nil {
		dialog = NopDialog{}
	}
	if alerter == nil {
		alerter = NopAlerter{}
	}
	if confirmer == nil {
		confirmer = alwaysConfirm{}
	}
	return &SuppliersView{
		client:    client,
		dialog:    dialog,
		alerter:   alerter,
		confirmer: confirmer,
		Pager:     NewPaginator(),
	}
}

func (v *SuppliersView) Load(ctx context.Context) error {
	var rows []*store.Supplier
	if err := v.client.Get(ctx, "/suppliers", &rows); err != nil {
		return err
	}
	v.Rows = rows
	v.Pager.SetPage(v.Pager.Page, len(rows))
	return nil
}

func (v *SuppliersView) VisibleRows() []*store.Supplier {
	return pageOf(v.Rows, v.Pager)
}

func (v *SuppliersView) OpenCreate() {
	v.Form = SupplierForm{}
	v.dialog.Show()
}

func (v *SuppliersView) OpenEdit(s *store.Supplier) {
	v.Form = SupplierForm{ID: s.ID.String(), Name: s.Name, Country: s.Country}
	v.dialog.Show()
}

// Save submits the dialog form, then reloads the table.
func (v *SuppliersView) Save(ctx context.Context) error {
	payload := supplierPayload{Name: v.Form.Name, Country: v.Form.Country}

	var err error
	if v.Form.ID != "" {
		err = v.client.Put(ctx, "/supplier/"+v.Form.ID, payload, nil)
	} else {
		err = v.client.Post(ctx, "/supplier", payload, nil)
	}
	if err != nil {
		v.alerter.Alert(err.Error())
		return err
	}

	v.dialog.Hide()
	return v.Load(ctx)
}

func (v *SuppliersView) Delete(ctx context.Context, s *store.Supplier) error {
	if !v.confirmer.Confirm("Delete this supplier?") {
		return nil
	}
	if err := v.client.Delete(ctx, "/supplier/"+s.ID.String(), nil); err != nil {
		v.alerter.Alert(err.Error())
		return err
	}
	return v.Load(ctx)
}
