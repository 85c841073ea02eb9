package console

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/shoestackclub/shoestack/internal/store"
)

// ErrStaleItem marks an order line whose product no longer exists in
// the catalog. The original client crashed on this; the edit view now
// fails the load explicitly instead.
var ErrStaleItem = errors.New("order line references a product missing from the catalog")

// EditOrderView drives the edit-order workflow over one existing order:
// load the aggregate, rehydrate the cart, save the full replacement,
// or cancel the order while its shipment is still pending.
type EditOrderView struct {
	client  *Client
	orderID uuid.UUID

	alerter   Alerter
	confirmer Confirmer
	navigator Navigator

	Catalog   []*store.Product
	byID      map[uuid.UUID]*store.Product
	Cart      Cart
	Customer  CustomerForm
	OrderDate string
	// ShipmentStatus is empty when the order has no shipment.
	ShipmentStatus string
	Message        string

	submitting bool
}

func NewEditOrderView(client *Client, orderID uuid.UUID, alerter Alerter, confirmer Confirmer, navigator Navigator) *EditOrderView {
	if alerter == nil {
		alerter = NopAlerter{}
	}
	if confirmer == nil {
		confirmer = alwaysConfirm{}
	}
	if navigator == nil {
		navigator = NopNavigator{}
	}
	return &EditOrderView{
		client:    client,
		orderID:   orderID,
		alerter:   alerter,
		confirmer: confirmer,
		navigator: navigator,
	}
}

// Load fetches the catalog and the full order, then rehydrates the cart
// by joining the persisted lines against the catalog. A line whose
// product has vanished fails the load with ErrStaleItem.
func (v *EditOrderView) Load(ctx context.Context) error {
	var products []*store.Product
	if err := v.client.Get(ctx, "/products", &products); err != nil {
		v.Message = MsgLoadError
		return err
	}
	v.Catalog = products
	v.byID = make(map[uuid.UUID]*store.Product, len(products))
	for _, p := range products {
		v.byID[p.ID] = p
	}

	var full FullOrder
	if err := v.client.Get(ctx, fmt.Sprintf("/order/%s/full", v.orderID), &full); err != nil {
		v.Message = MsgLoadError
		return err
	}

	v.Customer = CustomerForm{
		CustomerID: full.Customer.ID.String(),
		Name:       full.Customer.Name,
		Email:      full.Customer.Email,
		Address:    full.Customer.Address,
	}
	v.OrderDate = full.OrderDate
	if full.Shipment != nil {
		v.ShipmentStatus = full.Shipment.Status
	} else {
		v.ShipmentStatus = ""
	}

	v.Cart.Clear()
	for _, it := range full.Items {
		p, ok := v.byID[it.ProductID]
		if !ok {
			v.Message = MsgLoadError
			return fmt.Errorf("%w: product %s", ErrStaleItem, it.ProductID)
		}
		v.Cart.restore(CartItem{
			ProductID: p.ID,
			Label:     productLabel(p),
			Size:      p.Size,
			UnitPrice: p.Price,
			Quantity:  it.Quantity,
			Stock:     p.Stock,
		})
	}
	return nil
}

// Badge renders the shipment status badge for the loaded order.
func (v *EditOrderView) Badge() Badge {
	return StatusBadge(v.ShipmentStatus)
}

// AddToCart stages an extra line against the loaded catalog.
func (v *EditOrderView) AddToCart(productID uuid.UUID, qty int) {
	if err := v.Cart.Add(v.byID[productID], qty); err != nil {
		v.Message = MsgNotEnoughStock
	}
}

// Save sends the full replacement payload: customer fields, order date,
// and the complete item list.
func (v *EditOrderView) Save(ctx context.Context) error {
	if v.submitting {
		return ErrSubmitInFlight
	}
	v.submitting = true
	defer func() { v.submitting = false }()

	payload := FullOrderPayload{
		Customer: CustomerPayload{
			CustomerID: v.Customer.CustomerID,
			Name:       v.Customer.Name,
			Email:      v.Customer.Email,
			Address:    v.Customer.Address,
		},
		Order: OrderHeader{OrderDate: v.OrderDate},
		Items: v.Cart.PayloadItems(),
	}

	if err := v.client.Put(ctx, fmt.Sprintf("/order/%s/full", v.orderID), payload, nil); err != nil {
		v.Message = MsgUpdateError
		return err
	}
	v.Message = MsgOrderUpdated
	return nil
}

// Cancel deletes the order, but only while its shipment is exactly
// Pending. The status is re-read first so the guard never runs on a
// stale value; anything else, including no shipment at all, alerts and
// makes no delete call.
func (v *EditOrderView) Cancel(ctx context.Context) error {
	var full FullOrder
	if err := v.client.Get(ctx, fmt.Sprintf("/order/%s/full", v.orderID), &full); err == nil {
		if full.Shipment != nil {
			v.ShipmentStatus = full.Shipment.Status
		} else {
			v.ShipmentStatus = ""
		}
	}

	if v.ShipmentStatus != store.ShipmentPending {
		v.alerter.Alert(MsgCannotCancel)
		return nil
	}
	if !v.confirmer.Confirm("Cancel this order?") {
		return nil
	}

	if err := v.client.Delete(ctx, "/order/"+v.orderID.String(), nil); err != nil {
		v.alerter.Alert(err.Error())
		return err
	}
	v.navigator.Navigate("/gui/orders")
	return nil
}
