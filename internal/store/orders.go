package store

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/shoestackclub/shoestack/internal/web"
	"github.com/shoestackclub/shoestack/pkg/event"
)

type orderPayload struct {
	CustomerID *uuid.UUID `json:"customer_id"`
	OrderDate  *string    `json:"order_date"`
}

// orderRow is what the orders list view consumes: it carries the joined
// shipment status so the client can badge and guard without extra calls.
type orderRow struct {
	OrderID        uuid.UUID `json:"order_id"`
	CustomerID     uuid.UUID `json:"customer_id"`
	OrderDate      string    `json:"order_date"`
	ShipmentStatus string    `json:"shipment_status,omitempty"`
}

func validOrderDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.ListOrders")
	defer finish()

	ctx := r.Context()
	orders, err := h.repos.Orders.List(ctx)
	if err != nil {
		h.logger.Error("error retrieving orders", "error", err)
		web.RespondError(w, http.StatusInternalServerError, "Could not retrieve orders")
		return
	}
	shipments, err := h.repos.Shipments.List(ctx)
	if err != nil {
		h.logger.Error("error retrieving shipments for orders list", "error", err)
		web.RespondError(w, http.StatusInternalServerError, "Could not retrieve orders")
		return
	}

	statusByOrder := make(map[uuid.UUID]string, len(shipments))
	for _, s := range shipments {
		statusByOrder[s.OrderID] = s.Status
	}

	rows := make([]orderRow, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, orderRow{
			OrderID:        o.ID,
			CustomerID:     o.CustomerID,
			OrderDate:      o.OrderDate,
			ShipmentStatus: statusByOrder[o.ID],
		})
	}
	web.RespondJSON(w, http.StatusOK, rows)
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.GetOrder")
	defer finish()

	id, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}
	order, err := h.repos.Orders.Get(r.Context(), id)
	if err != nil {
		h.logger.Error("error loading order", "error", err, "id", id.String())
		web.RespondError(w, http.StatusInternalServerError, "Could not retrieve order")
		return
	}
	if order == nil {
		web.RespondMessage(w, http.StatusNotFound, "Order not found")
		return
	}
	web.RespondJSON(w, http.StatusOK, order)
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.CreateOrder")
	defer finish()

	var req orderPayload
	if err := web.DecodeJSON(r, &req); err != nil {
		web.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.CustomerID == nil || *req.CustomerID == uuid.Nil {
		web.RespondError(w, http.StatusBadRequest, "customer_id is required")
		return
	}
	if req.OrderDate == nil || !validOrderDate(*req.OrderDate) {
		web.RespondError(w, http.StatusBadRequest, "order_date must be YYYY-MM-DD")
		return
	}

	customer, err := h.repos.Customers.Get(r.Context(), *req.CustomerID)
	if err != nil || customer == nil {
		web.RespondError(w, http.StatusBadRequest, "customer does not exist")
		return
	}

	order := NewOrder(*req.CustomerID, *req.OrderDate)
	if err := h.repos.Orders.Create(r.Context(), order); err != nil {
		h.logger.Error("cannot create order", "error", err)
		web.RespondError(w, http.StatusInternalServerError, "Could not create order")
		return
	}

	h.publishOrderEvent(r.Context(), event.EventOrderCreated, order, customer, 0)
	web.RespondJSON(w, http.StatusCreated, order)
}

func (h *Handler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.UpdateOrder")
	defer finish()

	id, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}
	order, err := h.repos.Orders.Get(r.Context(), id)
	if err != nil || order == nil {
		web.RespondMessage(w, http.StatusNotFound, "Order not found")
		return
	}

	var req orderPayload
	if err := web.DecodeJSON(r, &req); err != nil {
		web.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.CustomerID != nil {
		order.CustomerID = *req.CustomerID
	}
	if req.OrderDate != nil {
		if !validOrderDate(*req.OrderDate) {
			web.RespondError(w, http.StatusBadRequest, "order_date must be YYYY-MM-DD")
			return
		}
		order.OrderDate = *req.OrderDate
	}
	order.BeforeUpdate()

	if err := h.repos.Orders.Save(r.Context(), order); err != nil {
		h.logger.Error("cannot update order", "error", err, "id", id.String())
		web.RespondError(w, http.StatusInternalServerError, "Could not update order")
		return
	}
	web.RespondMessage(w, http.StatusOK, "Order updated successfully")
}

// DeleteOrder cancels an order. The workflow rule from the admin console
// is enforced here as well: only orders whose shipment is still Pending
// may be cancelled. Details and shipment are removed with the order and
// the reserved stock is returned to the products.
func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.DeleteOrder")
	defer finish()

	id, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}
	ctx := r.Context()

	order, err := h.repos.Orders.Get(ctx, id)
	if err != nil || order == nil {
		web.RespondMessage(w, http.StatusNotFound, "Order not found")
		return
	}

	shipment, err := h.repos.Shipments.GetByOrder(ctx, id)
	if err != nil {
		h.logger.Error("error loading shipment for cancel", "error", err, "order_id", id.String())
		web.RespondError(w, http.StatusInternalServerError, "Could not cancel order")
		return
	}
	if shipment == nil || shipment.Status != ShipmentPending {
		web.RespondError(w, http.StatusConflict, "order cannot be cancelled: shipment not pending")
		return
	}

	details, err := h.repos.OrderDetails.ListByOrder(ctx, id)
	if err != nil {
		h.logger.Error("error loading details for cancel", "error", err, "order_id", id.String())
		web.RespondError(w, http.StatusInternalServerError, "Could not cancel order")
		return
	}
	for _, d := range details {
		if err := h.restockProduct(ctx, d.ProductID, d.Quantity); err != nil {
			h.logger.Error("cannot restore stock", "error", err, "product_id", d.ProductID.String())
		}
	}

	if err := h.repos.OrderDetails.DeleteByOrder(ctx, id); err != nil {
		h.logger.Error("cannot delete order details", "error", err, "order_id", id.String())
		web.RespondError(w, http.StatusInternalServerError, "Could not cancel order")
		return
	}
	if err := h.repos.Shipments.DeleteByOrder(ctx, id); err != nil {
		h.logger.Error("cannot delete shipment", "error", err, "order_id", id.String())
		web.RespondError(w, http.StatusInternalServerError, "Could not cancel order")
		return
	}
	if err := h.repos.Orders.Delete(ctx, id); err != nil {
		h.logger.Error("cannot delete order", "error", err, "id", id.String())
		web.RespondError(w, http.StatusInternalServerError, "Could not cancel order")
		return
	}

	h.publishOrderEvent(ctx, event.EventOrderCancelled, order, nil, len(details))
	web.RespondMessage(w, http.StatusOK, "Order deleted successfully")
}

func (h *Handler) restockProduct(ctx context.Context, productID uuid.UUID, qty int) error {
	product, err := h.repos.Products.Get(ctx, productID)
	if err != nil || product == nil {
		// Product gone; nothing to restore.
		return err
	}
	product.Stock += qty
	product.BeforeUpdate()
	return h.repos.Products.Save(ctx, product)
}

// publishOrderEvent emits a lifecycle event; failures are logged and never
// fail the request.
func (h *Handler) publishOrderEvent(ctx context.Context, eventType string, order *Order, customer *Customer, itemCount int) {
	if h.publisher == nil {
		return
	}
	ev := event.OrderEvent{
		EventType:  eventType,
		OccurredAt: time.Now().UTC(),
		OrderID:    order.ID.String(),
		CustomerID: order.CustomerID.String(),
		OrderDate:  order.OrderDate,
		ItemCount:  itemCount,
	}
	if customer != nil {
		ev.CustomerName = customer.Name
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		h.logger.Error("cannot marshal order event", "error", err)
		return
	}
	if err := h.publisher.Publish(ctx, event.OrdersLifecycleTopic, payload); err != nil {
		h.logger.Error("cannot publish order event", "error", err, "event_type", eventType)
	}
}
