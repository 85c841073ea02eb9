package console

import (
	"github.com/google/uuid"

	"github.com/shoestackclub/shoestack/internal/store"
)

// Wire shapes for the full-order endpoints.

type OrderItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

type CustomerPayload struct {
	// ExistingCustomerID is set by the create path, CustomerID by the
	// edit path; the backend accepts either.
	ExistingCustomerID *string `json:"existing_customer_id,omitempty"`
	CustomerID         string  `json:"customer_id,omitempty"`
	Name               string  `json:"name"`
	Email              string  `json:"email"`
	Address            string  `json:"address"`
}

type OrderHeader struct {
	OrderDate string `json:"order_date"`
}

type FullOrderPayload struct {
	Customer CustomerPayload `json:"customer"`
	Order    OrderHeader     `json:"order"`
	Items    []OrderItem     `json:"items"`
}

type CreateOrderReply struct {
	OrderID    uuid.UUID `json:"order_id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Message    string    `json:"message"`
}

// FullOrder is the aggregate the edit view loads.
type FullOrder struct {
	OrderID   uuid.UUID       `json:"order_id"`
	OrderDate string          `json:"order_date"`
	Customer  *store.Customer `json:"customer"`
	Items     []OrderItem     `json:"items"`
	Shipment  *store.Shipment `json:"shipment"`
}

type SearchResult struct {
	Found      bool   `json:"found"`
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Address    string `json:"address"`
}

// OrderRow is one row of the orders table; ShipmentStatus is empty when
// the order has no shipment.
type OrderRow struct {
	OrderID        uuid.UUID `json:"order_id"`
	CustomerID     uuid.UUID `json:"customer_id"`
	OrderDate      string    `json:"order_date"`
	ShipmentStatus string    `json:"shipment_status,omitempty"`
}
