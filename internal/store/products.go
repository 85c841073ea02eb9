package store

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/shoestackclub/shoestack/internal/web"
)

type productPayload struct {
	SupplierID *uuid.UUID `json:"supplier_id"`
	Brand      *string    `json:"brand"`
	Model      *string    `json:"model"`
	Size       *int       `json:"size"`
	Price      *float64   `json:"price"`
	Stock      *int       `json:"stock"`
}

func (p *productPayload) validateCreate() []ValidationError {
	var errs []ValidationError
	if p.SupplierID == nil || *p.SupplierID == uuid.Nil {
		errs = append(errs, ValidationError{Field: "supplier_id", Message: "supplier_id is required"})
	}
	if p.Brand == nil || *p.Brand == "" {
		errs = append(errs, ValidationError{Field: "brand", Message: "brand is required"})
	}
	if p.Model == nil || *p.Model == "" {
		errs = append(errs, ValidationError{Field: "model", Message: "model is required"})
	}
	if p.Size == nil || *p.Size <= 0 {
		errs = append(errs, ValidationError{Field: "size", Message: "size must be a positive integer"})
	}
	if p.Price == nil || *p.Price < 0 {
		errs = append(errs, ValidationError{Field: "price", Message: "price cannot be negative"})
	}
	if p.Stock == nil || *p.Stock < 0 {
		errs = append(errs, ValidationError{Field: "stock", Message: "stock cannot be negative"})
	}
	return errs
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.ListProducts")
	defer finish()

	products, err := h.repos.Products.List(r.Context())
	if err != nil {
		h.logger.Error("error retrieving products", "error", err)
		web.RespondError(w, http.StatusInternalServerError, "Could not retrieve products")
		return
	}
	web.RespondJSON(w, http.StatusOK, products)
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.GetProduct")
	defer finish()

	id, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}
	product, err := h.repos.Products.Get(r.Context(), id)
	if err != nil {
		h.logger.Error("error loading product", "error", err, "id", id.String())
		web.RespondError(w, http.StatusInternalServerError, "Could not retrieve product")
		return
	}
	if product == nil {
		web.RespondMessage(w, http.StatusNotFound, "Product not found")
		return
	}
	web.RespondJSON(w, http.StatusOK, product)
}

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.CreateProduct")
	defer finish()

	var req productPayload
	if err := web.DecodeJSON(r, &req); err != nil {
		web.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs := req.validateCreate(); len(errs) > 0 {
		web.RespondJSON(w, http.StatusBadRequest, map[string]any{"error": "validation failed", "details": errs})
		return
	}

	supplier, err := h.repos.Suppliers.Get(r.Context(), *req.SupplierID)
	if err != nil || supplier == nil {
		web.RespondError(w, http.StatusBadRequest, "supplier does not exist")
		return
	}

	product := NewProduct(*req.SupplierID, *req.Brand, *req.Model, *req.Size, *req.Price, *req.Stock)
	if err := h.repos.Products.Create(r.Context(), product); err != nil {
		h.logger.Error("cannot create product", "error", err)
		web.RespondError(w, http.StatusInternalServerError, "Could not create product")
		return
	}
	web.RespondJSON(w, http.StatusCreated, product)
}

func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.UpdateProduct")
	defer finish()

	id, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}
	product, err := h.repos.Products.Get(r.Context(), id)
	if err != nil || product == nil {
		web.RespondMessage(w, http.StatusNotFound, "Product not found")
		return
	}

	var req productPayload
	if err := web.DecodeJSON(r, &req); err != nil {
		web.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.SupplierID != nil {
		product.SupplierID = *req.SupplierID
	}
	if req.Brand != nil {
		product.Brand = *req.Brand
	}
	if req.Model != nil {
		product.Model = *req.Model
	}
	if req.Size != nil {
		product.Size = *req.Size
	}
	if req.Price != nil {
		if *req.Price < 0 {
			web.RespondError(w, http.StatusBadRequest, "price cannot be negative")
			return
		}
		product.Price = *req.Price
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			web.RespondError(w, http.StatusBadRequest, "stock cannot be negative")
			return
		}
		product.Stock = *req.Stock
	}
	product.BeforeUpdate()

	if err := h.repos.Products.Save(r.Context(), product); err != nil {
		h.logger.Error("cannot update product", "error", err, "id", id.String())
		web.RespondError(w, http.StatusInternalServerError, "Could not update product")
		return
	}
	web.RespondMessage(w, http.StatusOK, "Product updated successfully")
}

func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.DeleteProduct")
	defer finish()

	id, ok := h.parseIDParam(w, r, "id")
	if !ok {
		return
	}
	product, err := h.repos.Products.Get(r.Context(), id)
	if err != nil || product == nil {
		web.RespondMessage(w, http.StatusNotFound, "Product not found")
		return
	}
	if err := h.repos.Products.Delete(r.Context(), id); err != nil {
		h.logger.Error("cannot delete product", "error", err, "id", id.String())
		web.RespondError(w, http.StatusInternalServerError, "Could not delete product")
		return
	}
	web.RespondMessage(w, http.StatusOK, "Product deleted successfully")
}
