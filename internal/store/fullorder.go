package store

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/shoestackclub/shoestack/internal/web"
	"github.com/shoestackclub/shoestack/pkg/event"
)

// The full-order endpoints serve the order-building workflow: one call
// carries the customer (existing or new), the order header, and the line
// items, so the client never has to sequence partial writes itself.

type fullOrderCustomer struct {
	ExistingCustomerID *string `json:"existing_customer_id"`
	CustomerID         *string `json:"customer_id"`
	Name               string  `json:"name"`
	Email              string  `json:"email"`
	Address            string  `json:"address"`
}

type fullOrderHeader struct {
	OrderDate string `json:"order_date"`
}

type fullOrderItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

type fullOrderPayload struct {
	Customer fullOrderCustomer `json:"customer"`
	Order    fullOrderHeader   `json:"order"`
	Items    []fullOrderItem   `json:"items"`
}

type fullOrderReply struct {
	OrderID    uuid.UUID `json:"order_id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Message    string    `json:"message"`
}

type fullOrderView struct {
	OrderID   uuid.UUID       `json:"order_id"`
	OrderDate string          `json:"order_date"`
	Customer  *Customer       `json:"customer"`
	Items     []fullOrderItem `json:"items"`
	Shipment  *Shipment       `json:"shipment"`
}

// resolveCustomerID picks the existing id out of either accepted field.
// The create path sends existing_customer_id, the edit path customer_id.
func (p *fullOrderCustomer) resolveCustomerID() (uuid.UUID, error) {
	raw := ""
	if p.ExistingCustomerID != nil && *p.ExistingCustomerID != "" {
		raw = *p.ExistingCustomerID
	} else if p.CustomerID != nil && *p.CustomerID != "" {
		raw = *p.CustomerID
	}
	if raw == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid customer id %q", raw)
	}
	return id, nil
}

func (h *Handler) validateFullOrderItems(r *http.Request, items []fullOrderItem) (map[uuid.UUID]*Product, string) {
	if len(items) == 0 {
		return nil, "order must contain at least one item"
	}
	products := make(map[uuid.UUID]*Product, len(items))
	for _, it := range items {
		if it.ProductID == uuid.Nil {
			return nil, "item product_id is required"
		}
		if it.Quantity <= 0 {
			return nil, "item quantity must be a positive integer"
		}
		product, ok := products[it.ProductID]
		if !ok {
			var err error
			product, err = h.repos.Products.Get(r.Context(), it.ProductID)
			if err != nil || product == nil {
				return nil, fmt.Sprintf("product %s does not exist", it.ProductID)
			}
			products[it.ProductID] = product
		}
		// Lines for the same product draw from the same stock pool, so
		// the check runs against the remaining amount, not the original.
		if it.Quantity > product.Stock {
			return nil, fmt.Sprintf("not enough stock for product %s", it.ProductID)
		}
		product.Stock -= it.Quantity
	}
	return products, ""
}

// CreateFullOrder creates customer (when new), order, and details in one
// request, decrementing product stock. Validation runs fully before any
// write so a rejected payload leaves nothing behind.
func (h *Handler) CreateFullOrder(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.CreateFullOrder")
	defer finish()

	ctx := r.Context()
	var req fullOrderPayload
	if err := web.DecodeJSON(r, &req); err != nil {
		web.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !validOrderDate(req.Order.OrderDate) {
		web.RespondError(w, http.StatusBadRequest, "order_date must be YYYY-MM-DD")
		return
	}

	customerID, err := req.Customer.resolveCustomerID()
	if err != nil {
		web.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var customer *Customer
	if customerID != uuid.Nil {
		customer, err = h.repos.Customers.Get(ctx, customerID)
		if err != nil || customer == nil {
			web.RespondError(w, http.StatusBadRequest, "customer does not exist")
			return
		}
	} else {
		name := strings.TrimSpace(req.Customer.Name)
		email := strings.TrimSpace(req.Customer.Email)
		address := strings.TrimSpace(req.Customer.Address)
		if name == "" || email == "" || address == "" {
			web.RespondError(w, http.StatusBadRequest, "new customer requires name, email and address")
			return
		}
		customer = NewCustomer(name, email, address)
	}

	products, problem := h.validateFullOrderItems(r, req.Items)
	if problem != "" {
		web.RespondError(w, http.StatusBadRequest, problem)
		return
	}

	if customerID == uuid.Nil {
		if err := h.repos.Customers.Create(ctx, customer); err != nil {
			h.logger.Error("cannot create customer for order", "error", err)
			web.RespondError(w, http.StatusInternalServerError, "Could not create order")
			return
		}
	}

	order := NewOrder(customer.ID, req.Order.OrderDate)
	if err := h.repos.Orders.Create(ctx, order); err != nil {
		h.logger.Error("cannot create order", "error", err)
		web.RespondError(w, http.StatusInternalServerError, "Could not create order")
		return
	}

	details := make([]*OrderDetail, 0, len(req.Items))
	for _, it := range req.Items {
		details = append(details, &OrderDetail{OrderID: order.ID, ProductID: it.ProductID, Quantity: it.Quantity})
	}
	if err := h.repos.OrderDetails.ReplaceForOrder(ctx, order.ID, details); err != nil {
		h.logger.Error("cannot create order details", "error", err, "order_id", order.ID.String())
		web.RespondError(w, http.StatusInternalServerError, "Could not create order")
		return
	}

	// products carries the already-decremented stock values.
	for _, p := range products {
		p.BeforeUpdate()
		if err := h.repos.Products.Save(ctx, p); err != nil {
			h.logger.Error("cannot decrement stock", "error", err, "product_id", p.ID.String())
		}
	}

	h.publishOrderEvent(ctx, event.EventOrderCreated, order, customer, len(details))
	web.RespondJSON(w, http.StatusCreated, fullOrderReply{
		OrderID:    order.ID,
		CustomerID: customer.ID,
		Message:    "Order created successfully",
	})
}

// GetFullOrder returns the aggregate the edit view renders: order header,
// customer, items, and shipment (null when none exists).
func (h *Handler) GetFullOrder(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.GetFullOrder")
	defer finish()

	id, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}
	ctx := r.Context()

	order, err := h.repos.Orders.Get(ctx, id)
	if err != nil {
		h.logger.Error("error loading order", "error", err, "id", id.String())
		web.RespondError(w, http.StatusInternalServerError, "Could not retrieve order")
		return
	}
	if order == nil {
		web.RespondMessage(w, http.StatusNotFound, "Order not found")
		return
	}

	customer, err := h.repos.Customers.Get(ctx, order.CustomerID)
	if err != nil || customer == nil {
		h.logger.Error("order references missing customer", "order_id", id.String(), "customer_id", order.CustomerID.String())
		web.RespondError(w, http.StatusInternalServerError, "Could not retrieve order")
		return
	}

	details, err := h.repos.OrderDetails.ListByOrder(ctx, id)
	if err != nil {
		h.logger.Error("error loading order details", "error", err, "order_id", id.String())
		web.RespondError(w, http.StatusInternalServerError, "Could not retrieve order")
		return
	}
	items := make([]fullOrderItem, 0, len(details))
	for _, d := range details {
		items = append(items, fullOrderItem{ProductID: d.ProductID, Quantity: d.Quantity})
	}

	shipment, err := h.repos.Shipments.GetByOrder(ctx, id)
	if err != nil {
		h.logger.Error("error loading shipment", "error", err, "order_id", id.String())
		web.RespondError(w, http.StatusInternalServerError, "Could not retrieve order")
		return
	}

	web.RespondJSON(w, http.StatusOK, fullOrderView{
		OrderID:   order.ID,
		OrderDate: order.OrderDate,
		Customer:  customer,
		Items:     items,
		Shipment:  shipment,
	})
}

// ReplaceFullOrder applies the edit view's save: customer fields, order
// date, and the complete replacement item list. Stock is adjusted by the
// per-product delta between old and new quantities.
func (h *Handler) ReplaceFullOrder(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.ReplaceFullOrder")
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

	var req fullOrderPayload
	if err := web.DecodeJSON(r, &req); err != nil {
		web.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !validOrderDate(req.Order.OrderDate) {
		web.RespondError(w, http.StatusBadRequest, "order_date must be YYYY-MM-DD")
		return
	}
	if len(req.Items) == 0 {
		web.RespondError(w, http.StatusBadRequest, "order must contain at least one item")
		return
	}

	customer, err := h.repos.Customers.Get(ctx, order.CustomerID)
	if err != nil || customer == nil {
		web.RespondError(w, http.StatusInternalServerError, "Could not update order")
		return
	}
	if req.Customer.Name != "" {
		customer.Name = req.Customer.Name
	}
	if req.Customer.Email != "" {
		customer.Email = req.Customer.Email
	}
	if req.Customer.Address != "" {
		customer.Address = req.Customer.Address
	}
	customer.BeforeUpdate()

	previous, err := h.repos.OrderDetails.ListByOrder(ctx, id)
	if err != nil {
		h.logger.Error("error loading previous details", "error", err, "order_id", id.String())
		web.RespondError(w, http.StatusInternalServerError, "Could not update order")
		return
	}
	prevQty := make(map[uuid.UUID]int, len(previous))
	for _, d := range previous {
		prevQty[d.ProductID] += d.Quantity
	}

	// Validate the new list against stock plus whatever this order already
	// holds of each product.
	newQty := make(map[uuid.UUID]int, len(req.Items))
	for _, it := range req.Items {
		if it.ProductID == uuid.Nil || it.Quantity <= 0 {
			web.RespondError(w, http.StatusBadRequest, "item product_id and positive quantity are required")
			return
		}
		newQty[it.ProductID] += it.Quantity
	}
	touched := make(map[uuid.UUID]*Product, len(newQty))
	for pid, qty := range newQty {
		product, err := h.repos.Products.Get(ctx, pid)
		if err != nil || product == nil {
			web.RespondError(w, http.StatusBadRequest, fmt.Sprintf("product %s does not exist", pid))
			return
		}
		available := product.Stock + prevQty[pid]
		if qty > available {
			web.RespondError(w, http.StatusBadRequest, fmt.Sprintf("not enough stock for product %s", pid))
			return
		}
		product.Stock = available - qty
		touched[pid] = product
	}
	// Products dropped from the order get their quantities back.
	for pid, qty := range prevQty {
		if _, still := newQty[pid]; still {
			continue
		}
		product, err := h.repos.Products.Get(ctx, pid)
		if err != nil || product == nil {
			continue
		}
		product.Stock += qty
		touched[pid] = product
	}

	order.OrderDate = req.Order.OrderDate
	order.BeforeUpdate()

	if err := h.repos.Customers.Save(ctx, customer); err != nil {
		h.logger.Error("cannot save customer", "error", err, "id", customer.ID.String())
		web.RespondError(w, http.StatusInternalServerError, "Could not update order")
		return
	}
	if err := h.repos.Orders.Save(ctx, order); err != nil {
		h.logger.Error("cannot save order", "error", err, "id", id.String())
		web.RespondError(w, http.StatusInternalServerError, "Could not update order")
		return
	}

	details := make([]*OrderDetail, 0, len(req.Items))
	for _, it := range req.Items {
		details = append(details, &OrderDetail{OrderID: id, ProductID: it.ProductID, Quantity: it.Quantity})
	}
	if err := h.repos.OrderDetails.ReplaceForOrder(ctx, id, details); err != nil {
		h.logger.Error("cannot replace order details", "error", err, "order_id", id.String())
		web.RespondError(w, http.StatusInternalServerError, "Could not update order")
		return
	}

	for _, p := range touched {
		p.BeforeUpdate()
		if err := h.repos.Products.Save(ctx, p); err != nil {
			h.logger.Error("cannot adjust stock", "error", err, "product_id", p.ID.String())
		}
	}

	h.publishOrderEvent(ctx, event.EventOrderUpdated, order, customer, len(details))
	web.RespondMessage(w, http.StatusOK, "Order updated successfully")
}
