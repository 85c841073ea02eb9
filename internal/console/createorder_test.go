package console

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/shoestackclub/shoestack/internal/store"
)

type createOrderBackend struct {
	products []*store.Product
	reply    CreateOrderReply
	failWith int

	submitCalls int
	lastPayload FullOrderPayload
}

func (b *createOrderBackend) serve(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/products":
			json.NewEncoder(w).Encode(b.products)
		case r.Method == http.MethodPost && r.URL.Path == "/orders/full":
			b.submitCalls++
			if err := json.NewDecoder(r.Body).Decode(&b.lastPayload); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			if b.failWith != 0 {
				w.WriteHeader(b.failWith)
				json.NewEncoder(w).Encode(map[string]string{"error": "Not enough stock."})
				return
			}
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(b.reply)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCreateOrderViewLoadCatalog(t *testing.T) {
	backend := &createOrderBackend{products: []*store.Product{
		testProduct("Nortec", "Trail Runner", 42, 120.00, 8),
		testProduct("Andes", "Derby", 43, 95.00, 3),
	}}
	view := NewCreateOrderView(NewClient(backend.serve(t).URL, nil))

	if err := view.LoadCatalog(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(view.Catalog) != 2 {
		t.Fatalf("catalog = %d, want 2", len(view.Catalog))
	}
}

func TestCreateOrderViewLoadCatalogFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)
	view := NewCreateOrderView(NewClient(srv.URL, nil))

	if err := view.LoadCatalog(context.Background()); err == nil {
		t.Fatal("expected an error")
	}
	if view.Message != MsgProductsError {
		t.Errorf("message = %q, want %q", view.Message, MsgProductsError)
	}
}

func TestCreateOrderViewAddToCart(t *testing.T) {
	product := testProduct("Nortec", "Trail Runner", 42, 10.00, 5)
	backend := &createOrderBackend{products: []*store.Product{product}}
	view := NewCreateOrderView(NewClient(backend.serve(t).URL, nil))
	if err := view.LoadCatalog(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	view.AddToCart(product.ID, 3)
	if view.Cart.Len() != 1 {
		t.Fatalf("cart len = %d, want 1", view.Cart.Len())
	}

	view.AddToCart(product.ID, 10)
	if view.Cart.Len() != 1 {
		t.Errorf("cart len = %d, over-stock add must not stage a line", view.Cart.Len())
	}
	if view.Message != MsgNotEnoughStock {
		t.Errorf("message = %q, want %q", view.Message, MsgNotEnoughStock)
	}

	// Unknown product id no-ops.
	view.Message = ""
	view.AddToCart(uuid.New(), 1)
	if view.Cart.Len() != 1 || view.Message != "" {
		t.Errorf("unknown product changed state: len = %d, message = %q", view.Cart.Len(), view.Message)
	}
}

func TestCreateOrderViewSubmitEmptyCart(t *testing.T) {
	backend := &createOrderBackend{}
	view := NewCreateOrderView(NewClient(backend.serve(t).URL, nil))

	if err := view.Submit(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Message != MsgCartEmpty {
		t.Errorf("message = %q, want %q", view.Message, MsgCartEmpty)
	}
	if backend.submitCalls != 0 {
		t.Errorf("submit calls = %d, an empty cart must not reach the network", backend.submitCalls)
	}
}

func TestCreateOrderViewSubmit(t *testing.T) {
	product := testProduct("Nortec", "Trail Runner", 42, 10.00, 5)
	orderID := uuid.New()
	backend := &createOrderBackend{
		products: []*store.Product{product},
		reply:    CreateOrderReply{OrderID: orderID, CustomerID: uuid.New()},
	}
	view := NewCreateOrderView(NewClient(backend.serve(t).URL, nil))
	if err := view.LoadCatalog(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	view.Customer = CustomerForm{Name: " Laura Gomez ", Email: "laura@example.com", Address: "Cra 7"}
	view.OrderDate = "2026-03-01"
	view.AddToCart(product.ID, 2)

	if err := view.Submit(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Order created (ID " + orderID.String() + ")"
	if view.Message != want {
		t.Errorf("message = %q, want %q", view.Message, want)
	}
	if view.Cart.Len() != 0 {
		t.Errorf("cart len = %d, success must clear the cart", view.Cart.Len())
	}

	sent := backend.lastPayload
	if sent.Customer.ExistingCustomerID != nil {
		t.Error("new customer must not carry an existing id")
	}
	if sent.Customer.Name != "Laura Gomez" {
		t.Errorf("name = %q, want trimmed", sent.Customer.Name)
	}
	if sent.Order.OrderDate != "2026-03-01" {
		t.Errorf("order date = %q", sent.Order.OrderDate)
	}
	if len(sent.Items) != 1 || sent.Items[0].ProductID != product.ID || sent.Items[0].Quantity != 2 {
		t.Errorf("items = %+v", sent.Items)
	}
}

func TestCreateOrderViewSubmitExistingCustomer(t *testing.T) {
	product := testProduct("Nortec", "Trail Runner", 42, 10.00, 5)
	backend := &createOrderBackend{
		products: []*store.Product{product},
		reply:    CreateOrderReply{OrderID: uuid.New()},
	}
	view := NewCreateOrderView(NewClient(backend.serve(t).URL, nil))
	if err := view.LoadCatalog(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	customerID := uuid.New().String()
	view.Customer = CustomerForm{CustomerID: customerID, Name: "Laura Gomez", Locked: true}
	view.AddToCart(product.ID, 1)

	if err := view.Submit(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sent := backend.lastPayload
	if sent.Customer.ExistingCustomerID == nil || *sent.Customer.ExistingCustomerID != customerID {
		t.Errorf("existing_customer_id = %v, want %s", sent.Customer.ExistingCustomerID, customerID)
	}
}

func TestCreateOrderViewSubmitFailureKeepsCart(t *testing.T) {
	product := testProduct("Nortec", "Trail Runner", 42, 10.00, 5)
	backend := &createOrderBackend{
		products: []*store.Product{product},
		failWith: http.StatusBadRequest,
	}
	view := NewCreateOrderView(NewClient(backend.serve(t).URL, nil))
	if err := view.LoadCatalog(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	view.AddToCart(product.ID, 2)

	if err := view.Submit(context.Background()); err == nil {
		t.Fatal("expected an error")
	}
	if view.Message != MsgCreateError {
		t.Errorf("message = %q, want %q", view.Message, MsgCreateError)
	}
	if view.Cart.Len() != 1 {
		t.Errorf("cart len = %d, a failed submit must keep the draft", view.Cart.Len())
	}
}

func TestCreateOrderViewSubmitInFlight(t *testing.T) {
	backend := &createOrderBackend{}
	view := NewCreateOrderView(NewClient(backend.serve(t).URL, nil))
	view.submitting = true

	if err := view.Submit(context.Background()); err != ErrSubmitInFlight {
		t.Errorf("err = %v, want ErrSubmitInFlight", err)
	}
	if backend.submitCalls != 0 {
		t.Errorf("submit calls = %d, want 0", backend.submitCalls)
	}
}
