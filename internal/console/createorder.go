package console

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shoestackclub/shoestack/internal/store"
)

// ErrSubmitInFlight is returned when a submit is triggered while a
// previous one is still pending. The original client issued duplicate
// requests in that case; here re-entry is refused instead.
var ErrSubmitInFlight = errors.New("a submit is already in flight")

// CreateOrderView drives the create-order workflow: resolve the
// customer, stage cart lines against the loaded catalog, submit the
// whole draft in one call.
type CreateOrderView struct {
	client   *Client
	resolver *CustomerResolver

	Catalog   []*store.Product
	byID      map[uuid.UUID]*store.Product
	Cart      Cart
	Customer  CustomerForm
	OrderDate string
	Message   string

	submitting bool
}

func NewCreateOrderView(client *Client) *CreateOrderView {
	return &CreateOrderView{
		client:    client,
		resolver:  NewCustomerResolver(client),
		OrderDate: time.Now().Format("2006-01-02"),
	}
}

// LoadCatalog fetches the product list once per view lifetime.
func (v *CreateOrderView) LoadCatalog(ctx context.Context) error {
	var products []*store.Product
	if err := v.client.Get(ctx, "/products", &products); err != nil {
		v.Message = MsgProductsError
		return err
	}
	v.Catalog = products
	v.byID = make(map[uuid.UUID]*store.Product, len(products))
	for _, p := range products {
		v.byID[p.ID] = p
	}
	return nil
}

// SearchCustomer resolves the typed name into the customer form.
func (v *CreateOrderView) SearchCustomer(ctx context.Context, name string) error {
	msg, err := v.resolver.Resolve(ctx, &v.Customer, name)
	if msg != "" {
		v.Message = msg
	}
	return err
}

// AddToCart stages a line for the selected product. Unknown products
// and non-positive quantities no-op silently; a quantity over stock is
// refused with a message and the cart is left unchanged.
func (v *CreateOrderView) AddToCart(productID uuid.UUID, qty int) {
	if err := v.Cart.Add(v.byID[productID], qty); err != nil {
		v.Message = MsgNotEnoughStock
	}
}

// Submit posts the draft. An empty cart aborts before any network call.
// The cart survives a failed attempt so the user can retry; it is
// cleared only on success.
func (v *CreateOrderView) Submit(ctx context.Context) error {
	if v.submitting {
		return ErrSubmitInFlight
	}
	if v.Cart.Len() == 0 {
		v.Message = MsgCartEmpty
		return nil
	}
	v.submitting = true
	defer func() { v.submitting = false }()

	var existing *string
	if v.Customer.CustomerID != "" {
		id := v.Customer.CustomerID
		existing = &id
	}
	payload := FullOrderPayload{
		Customer: CustomerPayload{
			ExistingCustomerID: existing,
			Name:               strings.TrimSpace(v.Customer.Name),
			Email:              strings.TrimSpace(v.Customer.Email),
			Address:            strings.TrimSpace(v.Customer.Address),
		},
		Order: OrderHeader{OrderDate: v.OrderDate},
		Items: v.Cart.PayloadItems(),
	}

	var reply CreateOrderReply
	if err := v.client.Post(ctx, "/orders/full", payload, &reply); err != nil {
		v.Message = MsgCreateError
		return err
	}

	v.Message = fmt.Sprintf("Order created (ID %s)", reply.OrderID)
	v.Cart.Clear()
	return nil
}
