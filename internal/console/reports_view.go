package console

import (
	"context"

	"github.com/shoestackclub/shoestack/internal/logging"
	"github.com/shoestackclub/shoestack/internal/store"
)

// ReportsView loads the summary counters, the low-stock table, and the
// two distribution charts.
type ReportsView struct {
	client *Client
	charts ChartRenderer
	logger logging.Logger

	TotalProducts  int
	TotalCustomers int
	TotalOrders    int
	LowStockCount  int
	LowStock       []store.ProductSupplierRow
}

func NewReportsView(client *Client, charts ChartRenderer, logger logging.Logger) *ReportsView {
	if charts == nil {
		charts = NopChartRenderer{}
	}
	if logger == nil {
		logger = logging.NewNoopLogger()
	}
	return &ReportsView{client: client, charts: charts, logger: logger}
}

// Load fetches counters and the low-stock rows, then renders the two
// charts. Chart failures are logged and do not fail the load.
func (v *ReportsView) Load(ctx context.Context) error {
	var products []*store.Product
	if err := v.client.Get(ctx, "/products", &products); err != nil {
		return err
	}
	var customers []*store.Customer
	if err := v.client.Get(ctx, "/customers", &customers); err != nil {
		return err
	}
	var orders []OrderRow
	if err := v.client.Get(ctx, "/orders", &orders); err != nil {
		return err
	}
	var lowStock []store.ProductSupplierRow
	if err := v.client.Get(ctx, "/query/low_stock", &lowStock); err != nil {
		return err
	}

	v.TotalProducts = len(products)
	v.TotalCustomers = len(customers)
	v.TotalOrders = len(orders)
	v.LowStockCount = len(lowStock)
	v.LowStock = lowStock

	v.renderStockChart(ctx)
	v.renderOrdersChart(ctx)
	return nil
}

func (v *ReportsView) renderStockChart(ctx context.Context) {
	var rows []store.SupplierStockRow
	if err := v.client.Get(ctx, "/query/suppliers-stock", &rows); err != nil {
		v.logger.Error("stock chart load failed", "error", err)
		return
	}
	labels := make([]string, 0, len(rows))
	series := make([]float64, 0, len(rows))
	for _, r := range rows {
		labels = append(labels, r.Supplier)
		series = append(series, float64(r.TotalStock))
	}
	v.charts.RenderChart("pie", labels, series)
}

func (v *ReportsView) renderOrdersChart(ctx context.Context) {
	var rows []store.OrdersByMonthRow
	if err := v.client.Get(ctx, "/query/orders-by-month", &rows); err != nil {
		v.logger.Error("orders chart load failed", "error", err)
		return
	}
	labels := make([]string, 0, len(rows))
	series := make([]float64, 0, len(rows))
	for _, r := range rows {
		labels = append(labels, r.Month)
		series = append(series, float64(r.Total))
	}
	v.charts.RenderChart("bar", labels, series)
}
