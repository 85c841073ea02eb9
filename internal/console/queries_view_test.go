package console

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/shoestackclub/shoestack/internal/store"
)

func TestQueryRunner(t *testing.T) {
	productID := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/query/products-suppliers":
			json.NewEncoder(w).Encode([]store.ProductSupplierRow{
				{ProductID: productID, Brand: "Nortec", Model: "Trail Runner", Size: 42, Price: 120.5, Stock: 8, Supplier: "Nortec Footwear"},
			})
		case "/query/suppliers-stock":
			json.NewEncoder(w).Encode([]store.SupplierStockRow{})
		case "/query/sales-by-product":
			http.Error(w, `{"error":"Could not run query"}`, http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	runner := NewQueryRunner(NewClient(srv.URL, nil))

	t.Run("productsSuppliers", func(t *testing.T) {
		if err := runner.Run(context.Background(), "products_suppliers"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		wantCols := []string{"product_id", "brand", "model", "size", "price", "stock", "supplier"}
		if len(runner.Columns) != len(wantCols) {
			t.Fatalf("columns = %v, want %v", runner.Columns, wantCols)
		}
		for i, want := range wantCols {
			if runner.Columns[i] != want {
				t.Errorf("column %d = %q, want %q", i, runner.Columns[i], want)
			}
		}
		if len(runner.Rows) != 1 {
			t.Fatalf("rows = %d, want 1", len(runner.Rows))
		}
		row := runner.Rows[0]
		if row[0] != productID.String() || row[4] != "120.50" || row[5] != "8" {
			t.Errorf("row = %v", row)
		}
		if runner.Message != "" {
			t.Errorf("message = %q, want empty", runner.Message)
		}
	})

	t.Run("emptyResult", func(t *testing.T) {
		if err := runner.Run(context.Background(), "suppliers_stock"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(runner.Rows) != 0 {
			t.Errorf("rows = %d, want 0", len(runner.Rows))
		}
		if runner.Message != "No results found." {
			t.Errorf("message = %q, want No results found.", runner.Message)
		}
	})

	t.Run("queryFailure", func(t *testing.T) {
		if err := runner.Run(context.Background(), "sales_by_product"); err == nil {
			t.Fatal("expected an error")
		}
		if runner.Message == "" {
			t.Error("a failed run must surface a message")
		}
		if len(runner.Rows) != 0 || len(runner.Columns) != 0 {
			t.Error("a failed run must clear the projection")
		}
	})

	t.Run("unknownQuery", func(t *testing.T) {
		if err := runner.Run(context.Background(), "drop_tables"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(runner.Rows) != 0 || runner.Message != "" {
			t.Error("an unknown name must be a no-op")
		}
	})
}
