package console

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shoestackclub/shoestack/internal/store"
)

// QueryRunner drives the ad-hoc query page. Each query carries a fixed
// column list so the projection is deterministic; the fetched rows are
// the source of truth and the table is regenerated from them.
type QueryRunner struct {
	client *Client

	Columns []string
	Rows    [][]string
	Message string
}

func NewQueryRunner(client *Client) *QueryRunner {
	return &QueryRunner{client: client}
}

// Run executes the named query and replaces the projection. An unknown
// name is a silent no-op, matching the selector-driven page.
func (q *QueryRunner) Run(ctx context.Context, name string) error {
	q.Columns = nil
	q.Rows = nil
	q.Message = ""

	var err error
	switch name {
	case "products_suppliers":
		var rows []store.ProductSupplierRow
		if err = q.client.Get(ctx, "/query/products-suppliers", &rows); err == nil {
			q.Columns = []string{"product_id", "brand", "model", "size", "price", "stock", "supplier"}
			for _, r := range rows {
				q.Rows = append(q.Rows, []string{
					r.ProductID.String(), r.Brand, r.Model,
					strconv.Itoa(r.Size), formatMoney(r.Price),
					strconv.Itoa(r.Stock), r.Supplier,
				})
			}
		}
	case "orders_status":
		var rows []store.OrderStatusRow
		if err = q.client.Get(ctx, "/query/orders-status", &rows); err == nil {
			q.Columns = []string{"order_id", "order_date", "customer", "status"}
			for _, r := range rows {
				q.Rows = append(q.Rows, []string{r.OrderID.String(), r.OrderDate, r.Customer, r.Status})
			}
		}
	case "suppliers_stock":
		var rows []store.SupplierStockRow
		if err = q.client.Get(ctx, "/query/suppliers-stock", &rows); err == nil {
			q.Columns = []string{"supplier", "total_stock"}
			for _, r := range rows {
				q.Rows = append(q.Rows, []string{r.Supplier, strconv.Itoa(r.TotalStock)})
			}
		}
	case "orders_by_customer":
		var rows []store.OrdersByCustomerRow
		if err = q.client.Get(ctx, "/query/orders-by-customer", &rows); err == nil {
			q.Columns = []string{"customer", "total"}
			for _, r := range rows {
				q.Rows = append(q.Rows, []string{r.Customer, strconv.Itoa(r.Total)})
			}
		}
	case "sales_by_product":
		var rows []store.SalesByProductRow
		if err = q.client.Get(ctx, "/query/sales-by-product", &rows); err == nil {
			q.Columns = []string{"product", "units", "revenue"}
			for _, r := range rows {
				q.Rows = append(q.Rows, []string{r.Product, strconv.Itoa(r.Units), formatMoney(r.Revenue)})
			}
		}
	default:
		return nil
	}

	if err != nil {
		q.Message = "Error: " + err.Error()
		return err
	}
	if len(q.Rows) == 0 {
		q.Message = "No results found."
	}
	return nil
}

func formatMoney(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
