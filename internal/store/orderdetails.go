package store

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/shoestackclub/shoestack/internal/web"
)

type orderDetailPayload struct {
	OrderID   *uuid.UUID `json:"order_id"`
	ProductID *uuid.UUID `json:"product_id"`
	Quantity  *int       `json:"quantity"`
}

func (h *Handler) ListOrderDetails(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.ListOrderDetails")
	defer finish()

	details, err := h.repos.OrderDetails.List(r.Context())
	if err != nil {
		h.logger.Error("error retrieving order details", "error", err)
		web.RespondError(w, http.StatusInternalServerError, "Could not retrieve order details")
		return
	}
	web.RespondJSON(w, http.StatusOK, details)
}

func (h *Handler) CreateOrderDetail(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.CreateOrderDetail")
	defer finish()

	var req orderDetailPayload
	if err := web.DecodeJSON(r, &req); err != nil {
		web.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.OrderID == nil || *req.OrderID == uuid.Nil {
		web.RespondError(w, http.StatusBadRequest, "order_id is required")
		return
	}
	if req.ProductID == nil || *req.ProductID == uuid.Nil {
		web.RespondError(w, http.StatusBadRequest, "product_id is required")
		return
	}
	if req.Quantity == nil || *req.Quantity <= 0 {
		web.RespondError(w, http.StatusBadRequest, "quantity must be a positive integer")
		return
	}

	ctx := r.Context()
	order, err := h.repos.Orders.Get(ctx, *req.OrderID)
	if err != nil || order == nil {
		web.RespondError(w, http.StatusBadRequest, "order does not exist")
		return
	}
	product, err := h.repos.Products.Get(ctx, *req.ProductID)
	if err != nil || product == nil {
		web.RespondError(w, http.StatusBadRequest, "product does not exist")
		return
	}

	detail := &OrderDetail{OrderID: *req.OrderID, ProductID: *req.ProductID, Quantity: *req.Quantity}
	if err := h.repos.OrderDetails.Create(ctx, detail); err != nil {
		h.logger.Error("cannot create order detail", "error", err)
		web.RespondError(w, http.StatusInternalServerError, "Could not create order detail")
		return
	}
	web.RespondJSON(w, http.StatusCreated, detail)
}

func (h *Handler) DeleteOrderDetail(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.DeleteOrderDetail")
	defer finish()

	orderID, ok := h.parseIDParam(w, r, "orderID")
	if !ok {
		return
	}
	productID, ok := h.parseIDParam(w, r, "productID")
	if !ok {
		return
	}
	if err := h.repos.OrderDetails.Delete(r.Context(), orderID, productID); err != nil {
		h.logger.Error("cannot delete order detail", "error", err, "order_id", orderID.String())
		web.RespondError(w, http.StatusInternalServerError, "Could not delete order detail")
		return
	}
	web.RespondMessage(w, http.StatusOK, "Order detail deleted successfully")
}
