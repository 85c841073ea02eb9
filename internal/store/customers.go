package store

import (
	"net/http"
	"strings"

	"github.com/shoestackclub/shoestack/internal/web"
)

type customerPayload struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
}

// customerSearchResult is the contract the order-building view relies on.
type customerSearchResult struct {
	Found      bool   `json:"found"`
	CustomerID string `json:"customer_id,omitempty"`
	Name       string `json:"name,omitempty"`
	Email      string `json:"email,omitempty"`
	Address    string `json:"address,omitempty"`
}

func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.ListCustomers")
	defer finish()

	customers, err := h.repos.Customers.List(r.Context())
	if err != nil {
		h.logger.Error("error retrieving customers", "error", err)
		web.RespondError(w, http.StatusInternalServerError, "Could not retrieve customers")
		return
	}
	web.RespondJSON(w, http.StatusOK, customers)
}

func (h *Handler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.GetCustomer")
	defer finish()

	id, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}
	customer, err := h.repos.Customers.Get(r.Context(), id)
	if err != nil {
		h.logger.Error("error loading customer", "error", err, "id", id.String())
		web.RespondError(w, http.StatusInternalServerError, "Could not retrieve customer")
		return
	}
	if customer == nil {
		web.RespondMessage(w, http.StatusNotFound, "Customer not found")
		return
	}
	web.RespondJSON(w, http.StatusOK, customer)
}

// SearchCustomer answers the order-building customer lookup. The match is
// case-insensitive and exact on the trimmed name; a miss is a normal
// 200 with found=false, not a 404.
func (h *Handler) SearchCustomer(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.SearchCustomer")
	defer finish()

	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		web.RespondError(w, http.StatusBadRequest, "name parameter is required")
		return
	}

	customer, err := h.repos.Customers.FindByName(r.Context(), name)
	if err != nil {
		h.logger.Error("error searching customer", "error", err, "name", name)
		web.RespondError(w, http.StatusInternalServerError, "Could not search customers")
		return
	}
	if customer == nil {
		web.RespondJSON(w, http.StatusOK, customerSearchResult{Found: false})
		return
	}
	web.RespondJSON(w, http.StatusOK, customerSearchResult{
		Found:      true,
		CustomerID: customer.ID.String(),
		Name:       customer.Name,
		Email:      customer.Email,
		Address:    customer.Address,
	})
}

func (h *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.CreateCustomer")
	defer finish()

	var req customerPayload
	if err := web.DecodeJSON(r, &req); err != nil {
		web.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	var errs []ValidationError
	if req.Name == nil || *req.Name == "" {
		errs = append(errs, ValidationError{Field: "name", Message: "name is required"})
	}
	if req.Email == nil || *req.Email == "" {
		errs = append(errs, ValidationError{Field: "email", Message: "email is required"})
	}
	if req.Address == nil || *req.Address == "" {
		errs = append(errs, ValidationError{Field: "address", Message: "address is required"})
	}
	if len(errs) > 0 {
		web.RespondJSON(w, http.StatusBadRequest, map[string]any{"error": "validation failed", "details": errs})
		return
	}

	customer := NewCustomer(*req.Name, *req.Email, *req.Address)
	if err := h.repos.Customers.Create(r.Context(), customer); err != nil {
		h.logger.Error("cannot create customer", "error", err)
		web.RespondError(w, http.StatusInternalServerError, "Could not create customer")
		return
	}
	web.RespondJSON(w, http.StatusCreated, customer)
}

func (h *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.UpdateCustomer")
	defer finish()

	id, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}
	customer, err := h.repos.Customers.Get(r.Context(), id)
	if err != nil || customer == nil {
		web.RespondMessage(w, http.StatusNotFound, "Customer not found")
		return
	}

	var req customerPayload
	if err := web.DecodeJSON(r, &req); err != nil {
		web.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	customer.BeforeUpdate()

	if err := h.repos.Customers.Save(r.Context(), customer); err != nil {
		h.logger.Error("cannot update customer", "error", err, "id", id.String())
		web.RespondError(w, http.StatusInternalServerError, "Could not update customer")
		return
	}
	web.RespondMessage(w, http.StatusOK, "Customer updated successfully")
}

func (h *Handler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.DeleteCustomer")
	defer finish()

	id, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}
	customer, err := h.repos.Customers.Get(r.Context(), id)
	if err != nil || customer == nil {
		web.RespondMessage(w, http.StatusNotFound, "Customer not found")
		return
	}
	if err := h.repos.Customers.Delete(r.Context(), id); err != nil {
		h.logger.Error("cannot delete customer", "error", err, "id", id.String())
		web.RespondError(w, http.StatusInternalServerError, "Could not delete customer")
		return
	}
	web.RespondMessage(w, http.StatusOK, "Customer deleted successfully")
}
