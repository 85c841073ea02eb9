package store

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/shoestackclub/shoestack/internal/config"
	"github.com/shoestackclub/shoestack/internal/events"
	"github.com/shoestackclub/shoestack/internal/logging"
	"github.com/shoestackclub/shoestack/internal/telemetry"
	"github.com/shoestackclub/shoestack/internal/web"
)

type Handler struct {
	logger    logging.Logger
	config    *config.Config
	tlm       *telemetry.HTTP
	repos     Repos
	publisher events.Publisher
	queries   *QueryService
}

type HandlerDeps struct {
	Repos     Repos
	Publisher events.Publisher
	Queries   *QueryService
}

func NewHandler(hd HandlerDeps, cfg *config.Config, logger logging.Logger) *Handler {
	if logger == nil {
		logger = logging.NewNoopLogger()
	}
	if cfg == nil {
		cfg = config.New()
	}
	queries := hd.Queries
	if queries == nil {
		queries = NewQueryService(hd.Repos, nil, cfg, logger)
	}
	return &Handler{
		logger:    logger,
		config:    cfg,
		tlm:       telemetry.NewHTTP(),
		repos:     hd.Repos,
		publisher: hd.Publisher,
		queries:   queries,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.Health)

	r.Get("/suppliers", h.ListSuppliers)
	r.Post("/supplier", h.CreateSupplier)
	r.Route("/supplier/{id}", func(r chi.Router) {
		r.Get("/", h.GetSupplier)
		r.Put("/", h.UpdateSupplier)
		r.Delete("/", h.DeleteSupplier)
	})

	r.Get("/products", h.ListProducts)
	// The original admin client created through the plural path; both
	// spellings are kept.
	r.Post("/products", h.CreateProduct)
	r.Post("/product", h.CreateProduct)
	r.Route("/product/{id}", func(r chi.Router) {
		r.Get("/", h.GetProduct)
		r.Put("/", h.UpdateProduct)
		r.Delete("/", h.DeleteProduct)
	})

	r.Get("/customers", h.ListCustomers)
	r.Post("/customers", h.CreateCustomer)
	r.Post("/customer", h.CreateCustomer)
	r.Get("/customer/search", h.SearchCustomer)
	r.Route("/customer/{id}", func(r chi.Router) {
		r.Get("/", h.GetCustomer)
		r.Put("/", h.UpdateCustomer)
		r.Delete("/", h.DeleteCustomer)
	})

	r.Get("/orders", h.ListOrders)
	r.Post("/orders/full", h.CreateFullOrder)
	r.Post("/order", h.CreateOrder)
	r.Route("/order/{id}", func(r chi.Router) {
		r.Get("/", h.GetOrder)
		r.Put("/", h.UpdateOrder)
		r.Delete("/", h.DeleteOrder)
		r.Get("/full", h.GetFullOrder)
		r.Put("/full", h.ReplaceFullOrder)
	})

	r.Get("/orderdetails", h.ListOrderDetails)
	r.Post("/orderdetail", h.CreateOrderDetail)
	r.Delete("/orderdetail/{orderID}/{productID}", h.DeleteOrderDetail)

	r.Get("/shipments", h.ListShipments)
	r.Post("/shipment", h.CreateShipment)
	r.Route("/shipment/{id}", func(r chi.Router) {
		r.Get("/", h.GetShipment)
		r.Put("/", h.UpdateShipment)
		r.Delete("/", h.DeleteShipment)
	})

	r.Route("/query", func(r chi.Router) {
		r.Get("/products-suppliers", h.QueryProductsSuppliers)
		r.Get("/orders-status", h.QueryOrdersStatus)
		r.Get("/suppliers-stock", h.QuerySuppliersStock)
		r.Get("/orders-by-customer", h.QueryOrdersByCustomer)
		r.Get("/sales-by-product", h.QuerySalesByProduct)
		r.Get("/low_stock", h.QueryLowStock)
		r.Get("/orders-by-month", h.QueryOrdersByMonth)
	})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	web.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) parseIDParam(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, param)
	id, err := uuid.Parse(raw)
	if err != nil {
		h.logger.Debug("invalid id parameter", "param", param, "value", raw)
		web.RespondError(w, http.StatusBadRequest, "Invalid "+param+" parameter")
		return uuid.Nil, false
	}
	return id, true
}
