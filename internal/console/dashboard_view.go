package console

import (
	"context"

	"github.com/shoestackclub/shoestack/internal/store"
)

// DashboardView loads the landing-page counters.
type DashboardView struct {
	client *Client

	Suppliers        int
	Products         int
	Customers        int
	PendingShipments int
}

func NewDashboardView(client *Client) *DashboardView {
	return &DashboardView{client: client}
}

func (v *DashboardView) Load(ctx context.Context) error {
	var suppliers []*store.Supplier
	if err := v.client.Get(ctx, "/suppliers", &suppliers); err != nil {
		return err
	}
	var products []*store.Product
	if err := v.client.Get(ctx, "/products", &products); err != nil {
		return err
	}
	var customers []*store.Customer
	if err := v.client.Get(ctx, "/customers", &customers); err != nil {
		return err
	}
	var shipments []*store.Shipment
	if err := v.client.Get(ctx, "/shipments", &shipments); err != nil {
		return err
	}

	v.Suppliers = len(suppliers)
	v.Products = len(products)
	v.Customers = len(customers)

	pending := 0
	for _, s := range shipments {
		if s.Status == store.ShipmentPending {
			pending++
		}
	}
	v.PendingShipments = pending
	return nil
}
