package event

import "time"

const (
	OrdersLifecycleTopic = "orders.lifecycle"
	ShipmentsStatusTopic = "shipments.status"

	EventOrderCreated    = "order.created"
	EventOrderUpdated    = "order.updated"
	EventOrderCancelled  = "order.cancelled"
	EventShipmentUpdated = "shipment.updated"
)

// OrderEvent is published on order lifecycle transitions. Consumers
// (fulfillment, reporting) get enough denormalized data to avoid a
// follow-up fetch.
type OrderEvent struct {
	EventType  string    `json:"event_type"`
	OccurredAt time.Time `json:"occurred_at"`
	OrderID    string    `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	OrderDate  string    `json:"order_date"`
	ItemCount  int       `json:"item_count,omitempty"`

	CustomerName string `json:"customer_name,omitempty"`
}

// ShipmentEvent is published when a shipment's courier or status changes.
type ShipmentEvent struct {
	EventType  string    `json:"event_type"`
	OccurredAt time.Time `json:"occurred_at"`
	ShipmentID string    `json:"shipment_id"`
	OrderID    string    `json:"order_id"`
	Courier    string    `json:"courier"`
	Status     string    `json:"status"`
}
