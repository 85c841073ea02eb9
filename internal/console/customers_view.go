package console

import (
	"context"
	"strings"

	"github.com/shoestackclub/shoestack/internal/store"
)

// CustomerRowForm backs the customers CRUD dialog; distinct from
// CustomerForm, which belongs to the order-building flow.
type CustomerRowForm struct {
	ID      string
	Name    string
	Email   string
	Address string
}

type customerPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// CustomersView is the customers table with its dialog-driven CRUD.
type CustomersView struct {
	client    *Client
	dialog    Dialog
	alerter   Alerter
	confirmer Confirmer

	Rows  []*store.Customer
	Pager Paginator
	Form  CustomerRowForm
}

func NewCustomersView(client *Client, dialog Dialog, alerter Alerter, confirmer Confirmer) *CustomersView {
	if dialog == nil {
		dialog = NopDialog{}
	}
	if alerter == nil {
		alerter = NopAlerter{}
	}
	if confirmer == nil {
		confirmer = alwaysConfirm{}
	}
	return &CustomersView{
		client:    client,
		dialog:    dialog,
		alerter:   alerter,
		confirmer: confirmer,
		Pager:     NewPaginator(),
	}
}

func (v *CustomersView) Load(ctx context.Context) error {
	var rows []*store.Customer
	if err := v.client.Get(ctx, "/customers", &rows); err != nil {
		return err
	}
	v.Rows = rows
	v.Pager.SetPage(v.Pager.Page, len(rows))
	return nil
}

func (v *CustomersView) VisibleRows() []*store.Customer {
	return pageOf(v.Rows, v.Pager)
}

func (v *CustomersView) OpenCreate() {
	v.Form = CustomerRowForm{}
	v.dialog.Show()
}

func (v *CustomersView) OpenEdit(c *store.Customer) {
	v.Form = CustomerRowForm{ID: c.ID.String(), Name: c.Name, Email: c.Email, Address: c.Address}
	v.dialog.Show()
}

func (v *CustomersView) Save(ctx context.Context) error {
	payload := customerPayload{
		Name:    strings.TrimSpace(v.Form.Name),
		Email:   strings.TrimSpace(v.Form.Email),
		Address: strings.TrimSpace(v.Form.Address),
	}

	var err error
	if v.Form.ID != "" {
		err = v.client.Put(ctx, "/customer/"+v.Form.ID, payload, nil)
	} else {
		err = v.client.Post(ctx, "/customers", payload, nil)
	}
	if err != nil {
		v.alerter.Alert(err.Error())
		return err
	}

	v.dialog.Hide()
	return v.Load(ctx)
}

func (v *CustomersView) Delete(ctx context.Context, c *store.Customer) error {
	if !v.confirmer.Confirm("Delete this customer?") {
		return nil
	}
	if err := v.client.Delete(ctx, "/customer/"+c.ID.String(), nil); err != nil {
		v.alerter.Alert(err.Error())
		return err
	}
	return v.Load(ctx)
}
