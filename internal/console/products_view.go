package console

import (
	"context"

	"github.com/google/uuid"

	"github.com/shoestackclub/shoestack/internal/store"
)

// ProductForm backs the create/edit dialog. An empty ID means create.
type ProductForm struct {
	ID         string
	SupplierID uuid.UUID
	Brand      string
	Model      string
	Size       int
	Price      float64
	Stock      int
}

type productPayload struct {
	SupplierID uuid.UUID `json:"supplier_id"`
	Brand      string    `json:"brand"`
	Model      string    `json:"model"`
	Size       int       `json:"size"`
	Price      float64   `json:"price"`
	Stock      int       `json:"stock"`
}

// ProductsView is the products table with its dialog-driven CRUD.
type ProductsView struct {
	client    *Client
	dialog    Dialog
	alerter   Alerter
	confirmer Confirmer

	Rows  []*store.Product
	Pager Paginator
	Form  ProductForm
}

func NewProductsView(client *Client, dialog Dialog, alerter Alerter, confirmer Confirmer) *ProductsView {
	if dialog == nil {
		dialog = NopDialog{}
	}
	if alerter == nil {
		alerter = NopAlerter{}
	}
	if confirmer == nil {
		confirmer = alwaysConfirm{}
	}
	return &ProductsView{
		client:    client,
		dialog:    dialog,
		alerter:   alerter,
		confirmer: confirmer,
		Pager:     NewPaginator(),
	}
}

func (v *ProductsView) Load(ctx context.Context) error {
	var rows []*store.Product
	if err := v.client.Get(ctx, "/products", &rows); err != nil {
		return err
	}
	v.Rows = rows
	v.Pager.SetPage(v.Pager.Page, len(rows))
	return nil
}

func (v *ProductsView) VisibleRows() []*store.Product {
	return pageOf(v.Rows, v.Pager)
}

func (v *ProductsView) OpenCreate() {
	v.Form = ProductForm{}
	v.dialog.Show()
}

func (v *ProductsView) OpenEdit(p *store.Product) {
	v.Form = ProductForm{
		ID:         p.ID.String(),
		SupplierID: p.SupplierID,
		Brand:      p.Brand,
		Model:      p.Model,
		Size:       p.Size,
		Price:      p.Price,
		Stock:      p.Stock,
	}
	v.dialog.Show()
}

func (v *ProductsView) Save(ctx context.Context) error {
	payload := productPayload{
		SupplierID: v.Form.SupplierID,
		Brand:      v.Form.Brand,
		Model:      v.Form.Model,
		Size:       v.Form.Size,
		Price:      v.Form.Price,
		Stock:      v.Form.Stock,
	}

	var err error
	if v.Form.ID != "" {
		err = v.client.Put(ctx, "/product/"+v.Form.ID, payload, nil)
	} else {
		err = v.client.Post(ctx, "/products", payload, nil)
	}
	if err != nil {
		v.alerter.Alert(err.Error())
		return err
	}

	v.dialog.Hide()
	return v.Load(ctx)
}

func (v *ProductsView) Delete(ctx context.Context, p *store.Product) error {
	if !v.confirmer.Confirm("Delete this product?") {
		return nil
	}
	if err := v.client.Delete(ctx, "/product/"+p.ID.String(), nil); err != nil {
		v.alerter.Alert(err.Error())
		return err
	}
	return v.Load(ctx)
}
