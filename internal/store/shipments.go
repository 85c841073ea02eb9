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

type shipmentPayload struct {
	OrderID *uuid.UUID `json:"order_id"`
	Courier *string    `json:"courier"`
	Status  *string    `json:"status"`
}

func (h *Handler) ListShipments(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.ListShipments")
	defer finish()

	shipments, err := h.repos.Shipments.List(r.Context())
	if err != nil {
		h.logger.Error("error retrieving shipments", "error", err)
		web.RespondError(w, http.StatusInternalServerError, "Could not retrieve shipments")
		return
	}
	web.RespondJSON(w, http.StatusOK, shipments)
}

func (h *Handler) GetShipment(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.GetShipment")
	defer finish()

	id, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}
	shipment, err := h.repos.Shipments.Get(r.Context(), id)
	if err != nil {
		h.logger.Error("error loading shipment", "error", err, "id", id.String())
		web.RespondError(w, http.StatusInternalServerError, "Could not retrieve shipment")
		return
	}
	if shipment == nil {
		web.RespondMessage(w, http.StatusNotFound, "Shipment not found")
		return
	}
	web.RespondJSON(w, http.StatusOK, shipment)
}

func (h *Handler) CreateShipment(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.CreateShipment")
	defer finish()

	var req shipmentPayload
	if err := web.DecodeJSON(r, &req); err != nil {
		web.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.OrderID == nil || *req.OrderID == uuid.Nil {
		web.RespondError(w, http.StatusBadRequest, "order_id is required")
		return
	}
	if req.Status != nil && !ValidShipmentStatus(*req.Status) {
		web.RespondError(w, http.StatusBadRequest, "invalid shipment status")
		return
	}

	ctx := r.Context()
	order, err := h.repos.Orders.Get(ctx, *req.OrderID)
	if err != nil || order == nil {
		web.RespondError(w, http.StatusBadRequest, "order does not exist")
		return
	}

	courier, status := "", ""
	if req.Courier != nil {
		courier = *req.Courier
	}
	if req.Status != nil {
		status = *req.Status
	}
	shipment := NewShipment(*req.OrderID, courier, status)
	if err := h.repos.Shipments.Create(ctx, shipment); err != nil {
		h.logger.Error("cannot create shipment", "error", err)
		web.RespondError(w, http.StatusInternalServerError, "Could not create shipment")
		return
	}
	web.RespondJSON(w, http.StatusCreated, shipment)
}

func (h *Handler) UpdateShipment(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.UpdateShipment")
	defer finish()

	id, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}
	shipment, err := h.repos.Shipments.Get(r.Context(), id)
	if err != nil || shipment == nil {
		web.RespondMessage(w, http.StatusNotFound, "Shipment not found")
		return
	}

	var req shipmentPayload
	if err := web.DecodeJSON(r, &req); err != nil {
		web.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Courier != nil {
		shipment.Courier = *req.Courier
	}
	if req.Status != nil {
		if !ValidShipmentStatus(*req.Status) {
			web.RespondError(w, http.StatusBadRequest, "invalid shipment status")
			return
		}
		shipment.Status = *req.Status
	}
	shipment.BeforeUpdate()

	if err := h.repos.Shipments.Save(r.Context(), shipment); err != nil {
		h.logger.Error("cannot update shipment", "error", err, "id", id.String())
		web.RespondError(w, http.StatusInternalServerError, "Could not update shipment")
		return
	}

	h.publishShipmentEvent(r.Context(), shipment)
	web.RespondMessage(w, http.StatusOK, "Shipment updated successfully")
}

func (h *Handler) DeleteShipment(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.DeleteShipment")
	defer finish()

	id, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}
	shipment, err := h.repos.Shipments.Get(r.Context(), id)
	if err != nil || shipment == nil {
		web.RespondMessage(w, http.StatusNotFound, "Shipment not found")
		return
	}
	if err := h.repos.Shipments.Delete(r.Context(), id); err != nil {
		h.logger.Error("cannot delete shipment", "error", err, "id", id.String())
		web.RespondError(w, http.StatusInternalServerError, "Could not delete shipment")
		return
	}
	web.RespondMessage(w, http.StatusOK, "Shipment deleted successfully")
}

func (h *Handler) publishShipmentEvent(ctx context.Context, s *Shipment) {
	if h.publisher == nil {
		return
	}
	ev := event.ShipmentEvent{
		EventType:  event.EventShipmentUpdated,
		OccurredAt: time.Now().UTC(),
		ShipmentID: s.ID.String(),
		OrderID:    s.OrderID.String(),
		Courier:    s.Courier,
		Status:     s.Status,
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		h.logger.Error("cannot marshal shipment event", "error", err)
		return
	}
	if err := h.publisher.Publish(ctx, event.ShipmentsStatusTopic, payload); err != nil {
		h.logger.Error("cannot publish shipment event", "error", err)
	}
}
