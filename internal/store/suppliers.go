package store

import (
	"net/http"

	"github.com/shoestackclub/shoestack/internal/web"
)

type supplierPayload struct {
	Name    *string `json:"name"`
	Country *string `json:"country"`
}

func (h *Handler) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.ListSuppliers")
	defer finish()

	suppliers, err := h.repos.Suppliers.List(r.Context())
	if err != nil {
		h.logger.Error("error retrieving suppliers", "error", err)
		web.RespondError(w, http.StatusInternalServerError, "Could not retrieve suppliers")
		return
	}
	web.RespondJSON(w, http.StatusOK, suppliers)
}

func (h *Handler) GetSupplier(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.GetSupplier")
	defer finish()

	id, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}
	supplier, err := h.repos.Suppliers.Get(r.Context(), id)
	if err != nil {
		h.logger.Error("error loading supplier", "error", err, "id", id.String())
		web.RespondError(w, http.StatusInternalServerError, "Could not retrieve supplier")
		return
	}
	if supplier == nil {
		web.RespondMessage(w, http.StatusNotFound, "Supplier not found")
		return
	}
	web.RespondJSON(w, http.StatusOK, supplier)
}

func (h *Handler) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.CreateSupplier")
	defer finish()

	var req supplierPayload
	if err := web.DecodeJSON(r, &req); err != nil {
		web.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Name == nil || *req.Name == "" {
		web.RespondError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Country == nil || *req.Country == "" {
		web.RespondError(w, http.StatusBadRequest, "country is required")
		return
	}

	supplier := NewSupplier(*req.Name, *req.Country)
	if err := h.repos.Suppliers.Create(r.Context(), supplier); err != nil {
		h.logger.Error("cannot create supplier", "error", err)
		web.RespondError(w, http.StatusInternalServerError, "Could not create supplier")
		return
	}
	web.RespondJSON(w, http.StatusCreated, supplier)
}

func (h *Handler) UpdateSupplier(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.UpdateSupplier")
	defer finish()

	id, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}
	supplier, err := h.repos.Suppliers.Get(r.Context(), id)
	if err != nil || supplier == nil {
		web.RespondMessage(w, http.StatusNotFound, "Supplier not found")
		return
	}

	var req supplierPayload
	if err := web.DecodeJSON(r, &req); err != nil {
		web.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.Country != nil {
		supplier.Country = *req.Country
	}
	supplier.BeforeUpdate()

	if err := h.repos.Suppliers.Save(r.Context(), supplier); err != nil {
		h.logger.Error("cannot update supplier", "error", err, "id", id.String())
		web.RespondError(w, http.StatusInternalServerError, "Could not update supplier")
		return
	}
	web.RespondMessage(w, http.StatusOK, "Supplier updated successfully")
}

func (h *Handler) DeleteSupplier(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.DeleteSupplier")
	defer finish()

	id, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}
	supplier, err := h.repos.Suppliers.Get(r.Context(), id)
	if err != nil || supplier == nil {
		web.RespondMessage(w, http.StatusNotFound, "Supplier not found")
		return
	}
	if err := h.repos.Suppliers.Delete(r.Context(), id); err != nil {
		h.logger.Error("cannot delete supplier", "error", err, "id", id.String())
		web.RespondError(w, http.StatusInternalServerError, "Could not delete supplier")
		return
	}
	web.RespondMessage(w, http.StatusOK, "Supplier deleted successfully")
}
