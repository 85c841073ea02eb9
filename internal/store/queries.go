package store

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/shoestackclub/shoestack/internal/cache"
	"github.com/shoestackclub/shoestack/internal/config"
	"github.com/shoestackclub/shoestack/internal/logging"
	"github.com/shoestackclub/shoestack/internal/web"
)

// Reporting rows. Each query returns typed rows so the column set is a
// stable contract rather than whatever key order a map happens to have.

type ProductSupplierRow struct {
	ProductID uuid.UUID `json:"product_id"`
	Brand     string    `json:"brand"`
	Model     string    `json:"model"`
	Size      int       `json:"size"`
	Price     float64   `json:"price"`
	Stock     int       `json:"stock"`
	Supplier  string    `json:"supplier"`
}

type OrderStatusRow struct {
	OrderID   uuid.UUID `json:"order_id"`
	OrderDate string    `json:"order_date"`
	Customer  string    `json:"customer"`
	Status    string    `json:"status"`
}

type SupplierStockRow struct {
	Supplier   string `json:"supplier"`
	TotalStock int    `json:"total_stock"`
}

type OrdersByCustomerRow struct {
	Customer string `json:"customer"`
	Total    int    `json:"total"`
}

type SalesByProductRow struct {
	Product string  `json:"product"`
	Units   int     `json:"units"`
	Revenue float64 `json:"revenue"`
}

type OrdersByMonthRow struct {
	Month string `json:"month"`
	Total int    `json:"total"`
}

// QueryService computes the reporting queries the dashboard and query
// runner consume. Results go through the cache-aside layer. Joins run
// in memory over the listed collections; the data sets here are admin
// sized, not analytics sized.
type QueryService struct {
	repos  Repos
	cache  *cache.Cache
	logger logging.Logger

	lowStockThreshold int
}

func NewQueryService(repos Repos, c *cache.Cache, cfg *config.Config, logger logging.Logger) *QueryService {
	if logger == nil {
		logger = logging.NewNoopLogger()
	}
	if cfg == nil {
		cfg = config.New()
	}
	return &QueryService{
		repos:             repos,
		cache:             c,
		logger:            logger,
		lowStockThreshold: cfg.GetIntOrDef("reports.low_stock", 5),
	}
}

// cached runs compute under singleflight and a redis-backed TTL entry.
func cached[T any](ctx context.Context, s *QueryService, key string, compute func(ctx context.Context) ([]T, error)) ([]T, error) {
	var rows []T
	if s.cache.GetJSON(ctx, key, &rows) {
		return rows, nil
	}
	v, err := s.cache.Do(key, func() (any, error) {
		rows, err := compute(ctx)
		if err != nil {
			return nil, err
		}
		s.cache.SetJSON(ctx, key, rows)
		return rows, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]T), nil
}

func (s *QueryService) supplierNames(ctx context.Context) (map[uuid.UUID]string, error) {
	suppliers, err := s.repos.Suppliers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("cannot list suppliers: %w", err)
	}
	names := make(map[uuid.UUID]string, len(suppliers))
	for _, sup := range suppliers {
		names[sup.ID] = sup.Name
	}
	return names, nil
}

func (s *QueryService) ProductsSuppliers(ctx context.Context) ([]ProductSupplierRow, error) {
	return cached(ctx, s, "query:products-suppliers", func(ctx context.Context) ([]ProductSupplierRow, error) {
		products, err := s.repos.Products.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("cannot list products: %w", err)
		}
		names, err := s.supplierNames(ctx)
		if err != nil {
			return nil, err
		}
		rows := make([]ProductSupplierRow, 0, len(products))
		for _, p := range products {
			rows = append(rows, ProductSupplierRow{
				ProductID: p.ID,
				Brand:     p.Brand,
				Model:     p.Model,
				Size:      p.Size,
				Price:     p.Price,
				Stock:     p.Stock,
				Supplier:  names[p.SupplierID],
			})
		}
		sort.Slice(rows, func(i, j int) bool {
			if rows[i].Brand != rows[j].Brand {
				return rows[i].Brand < rows[j].Brand
			}
			return rows[i].Model < rows[j].Model
		})
		return rows, nil
	})
}

func (s *QueryService) OrdersStatus(ctx context.Context) ([]OrderStatusRow, error) {
	return cached(ctx, s, "query:orders-status", func(ctx context.Context) ([]OrderStatusRow, error) {
		orders, err := s.repos.Orders.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("cannot list orders: %w", err)
		}
		customers, err := s.repos.Customers.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("cannot list customers: %w", err)
		}
		shipments, err := s.repos.Shipments.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("cannot list shipments: %w", err)
		}
		customerNames := make(map[uuid.UUID]string, len(customers))
		for _, c := range customers {
			customerNames[c.ID] = c.Name
		}
		statusByOrder := make(map[uuid.UUID]string, len(shipments))
		for _, sh := range shipments {
			statusByOrder[sh.OrderID] = sh.Status
		}
		rows := make([]OrderStatusRow, 0, len(orders))
		for _, o := range orders {
			status := statusByOrder[o.ID]
			if status == "" {
				status = "No shipment"
			}
			rows = append(rows, OrderStatusRow{
				OrderID:   o.ID,
				OrderDate: o.OrderDate,
				Customer:  customerNames[o.CustomerID],
				Status:    status,
			})
		}
		sort.Slice(rows, func(i, j int) bool { return rows[i].OrderDate < rows[j].OrderDate })
		return rows, nil
	})
}

func (s *QueryService) SuppliersStock(ctx context.Context) ([]SupplierStockRow, error) {
	return cached(ctx, s, "query:suppliers-stock", func(ctx context.Context) ([]SupplierStockRow, error) {
		products, err := s.repos.Products.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("cannot list products: %w", err)
		}
		names, err := s.supplierNames(ctx)
		if err != nil {
			return nil, err
		}
		totals := make(map[uuid.UUID]int)
		for _, p := range products {
			totals[p.SupplierID] += p.Stock
		}
		rows := make([]SupplierStockRow, 0, len(totals))
		for id, total := range totals {
			rows = append(rows, SupplierStockRow{Supplier: names[id], TotalStock: total})
		}
		sort.Slice(rows, func(i, j int) bool { return rows[i].Supplier < rows[j].Supplier })
		return rows, nil
	})
}

func (s *QueryService) OrdersByCustomer(ctx context.Context) ([]OrdersByCustomerRow, error) {
	return cached(ctx, s, "query:orders-by-customer", func(ctx context.Context) ([]OrdersByCustomerRow, error) {
		orders, err := s.repos.Orders.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("cannot list orders: %w", err)
		}
		customers, err := s.repos.Customers.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("cannot list customers: %w", err)
		}
		counts := make(map[uuid.UUID]int)
		for _, o := range orders {
			counts[o.CustomerID]++
		}
		rows := make([]OrdersByCustomerRow, 0, len(counts))
		for _, c := range customers {
			if counts[c.ID] == 0 {
				continue
			}
			rows = append(rows, OrdersByCustomerRow{Customer: c.Name, Total: counts[c.ID]})
		}
		sort.Slice(rows, func(i, j int) bool {
			if rows[i].Total != rows[j].Total {
				return rows[i].Total > rows[j].Total
			}
			return rows[i].Customer < rows[j].Customer
		})
		return rows, nil
	})
}

func (s *QueryService) SalesByProduct(ctx context.Context) ([]SalesByProductRow, error) {
	return cached(ctx, s, "query:sales-by-product", func(ctx context.Context) ([]SalesByProductRow, error) {
		details, err := s.repos.OrderDetails.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("cannot list order details: %w", err)
		}
		products, err := s.repos.Products.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("cannot list products: %w", err)
		}
		byID := make(map[uuid.UUID]*Product, len(products))
		for _, p := range products {
			byID[p.ID] = p
		}
		units := make(map[uuid.UUID]int)
		for _, d := range details {
			units[d.ProductID] += d.Quantity
		}
		rows := make([]SalesByProductRow, 0, len(units))
		for pid, n := range units {
			p, ok := byID[pid]
			if !ok {
				continue
			}
			rows = append(rows, SalesByProductRow{
				Product: p.Brand + " " + p.Model,
				Units:   n,
				Revenue: float64(n) * p.Price,
			})
		}
		sort.Slice(rows, func(i, j int) bool {
			if rows[i].Revenue != rows[j].Revenue {
				return rows[i].Revenue > rows[j].Revenue
			}
			return rows[i].Product < rows[j].Product
		})
		return rows, nil
	})
}

func (s *QueryService) LowStock(ctx context.Context) ([]ProductSupplierRow, error) {
	return cached(ctx, s, "query:low-stock", func(ctx context.Context) ([]ProductSupplierRow, error) {
		rows, err := s.ProductsSuppliers(ctx)
		if err != nil {
			return nil, err
		}
		low := make([]ProductSupplierRow, 0)
		for _, r := range rows {
			if r.Stock < s.lowStockThreshold {
				low = append(low, r)
			}
		}
		sort.Slice(low, func(i, j int) bool { return low[i].Stock < low[j].Stock })
		return low, nil
	})
}

func (s *QueryService) OrdersByMonth(ctx context.Context) ([]OrdersByMonthRow, error) {
	return cached(ctx, s, "query:orders-by-month", func(ctx context.Context) ([]OrdersByMonthRow, error) {
		orders, err := s.repos.Orders.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("cannot list orders: %w", err)
		}
		totals := make(map[string]int)
		for _, o := range orders {
			d, err := time.Parse("2006-01-02", o.OrderDate)
			if err != nil {
				continue
			}
			totals[d.Format("2006-01")]++
		}
		rows := make([]OrdersByMonthRow, 0, len(totals))
		for month, total := range totals {
			rows = append(rows, OrdersByMonthRow{Month: month, Total: total})
		}
		sort.Slice(rows, func(i, j int) bool { return rows[i].Month < rows[j].Month })
		return rows, nil
	})
}

// Query handlers.

func respondQuery[T any](w http.ResponseWriter, logger logging.Logger, name string, rows []T, err error) {
	if err != nil {
		logger.Error("query failed", "query", name, "error", err)
		web.RespondError(w, http.StatusInternalServerError, "Could not run query")
		return
	}
	if rows == nil {
		rows = []T{}
	}
	web.RespondJSON(w, http.StatusOK, rows)
}

func (h *Handler) QueryProductsSuppliers(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.QueryProductsSuppliers")
	defer finish()
	rows, err := h.queries.ProductsSuppliers(r.Context())
	respondQuery(w, h.logger, "products-suppliers", rows, err)
}

func (h *Handler) QueryOrdersStatus(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.QueryOrdersStatus")
	defer finish()
	rows, err := h.queries.OrdersStatus(r.Context())
	respondQuery(w, h.logger, "orders-status", rows, err)
}

func (h *Handler) QuerySuppliersStock(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.QuerySuppliersStock")
	defer finish()
	rows, err := h.queries.SuppliersStock(r.Context())
	respondQuery(w, h.logger, "suppliers-stock", rows, err)
}

func (h *Handler) QueryOrdersByCustomer(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.QueryOrdersByCustomer")
	defer finish()
	rows, err := h.queries.OrdersByCustomer(r.Context())
	respondQuery(w, h.logger, "orders-by-customer", rows, err)
}

func (h *Handler) QuerySalesByProduct(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.QuerySalesByProduct")
	defer finish()
	rows, err := h.queries.SalesByProduct(r.Context())
	respondQuery(w, h.logger, "sales-by-product", rows, err)
}

func (h *Handler) QueryLowStock(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.QueryLowStock")
	defer finish()
	rows, err := h.queries.LowStock(r.Context())
	respondQuery(w, h.logger, "low_stock", rows, err)
}

func (h *Handler) QueryOrdersByMonth(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.QueryOrdersByMonth")
	defer finish()
	rows, err := h.queries.OrdersByMonth(r.Context())
	respondQuery(w, h.logger, "orders-by-month", rows, err)
}
