package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/shoestackclub/shoestack/internal/config"
	"github.com/shoestackclub/shoestack/internal/console"
	"github.com/shoestackclub/shoestack/internal/logging"
)

const (
	appName    = "shoestack-console"
	appVersion = "0.1.0"
)

// Terminal implementations of the console capability interfaces.

type termAlerter struct{}

func (termAlerter) Alert(message string) {
	fmt.Fprintln(os.Stderr, "! "+message)
}

type termConfirmer struct {
	in *bufio.Reader
}

func (c termConfirmer) Confirm(message string) bool {
	fmt.Printf("%s [y/N] ", message)
	line, err := c.in.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

type termNavigator struct{}

func (termNavigator) Navigate(path string) {
	fmt.Println("-> " + path)
}

type termCharts struct{}

func (termCharts) RenderChart(kind string, labels []string, series []float64) {
	fmt.Printf("[%s chart]\n", kind)
	for i, label := range labels {
		fmt.Printf("  %-20s %.0f\n", label, series[i])
	}
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load("CONSOLE", os.Args[2:])
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	logger := logging.NewLogger(cfg.GetStringOrDef("log.level", "info"))
	baseURL := cfg.GetStringOrDef("console.base_url", "http://localhost:8080")
	client := console.NewClient(baseURL, logger)

	ctx := context.Background()
	command := os.Args[1]

	switch command {
	case "dashboard":
		runDashboard(ctx, client)

	case "orders":
		runOrders(ctx, client)

	case "reports":
		runReports(ctx, client, logger)

	case "query":
		if len(os.Args) < 3 {
			fmt.Println("query requires a name, e.g. products_suppliers")
			os.Exit(1)
		}
		runQuery(ctx, client, os.Args[2])

	case "version":
		fmt.Printf("%s version %s\n", appName, appVersion)

	case "help", "-h", "--help":
		printUsage()

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runDashboard(ctx context.Context, client *console.Client) {
	view := console.NewDashboardView(client)
	if err := view.Load(ctx); err != nil {
		log.Fatalf("Cannot load dashboard: %v", err)
	}
	fmt.Printf("Suppliers:         %d\n", view.Suppliers)
	fmt.Printf("Products:          %d\n", view.Products)
	fmt.Printf("Customers:         %d\n", view.Customers)
	fmt.Printf("Pending shipments: %d\n", view.PendingShipments)
}

func runOrders(ctx context.Context, client *console.Client) {
	view := console.NewOrdersView(client, termAlerter{}, termConfirmer{in: bufio.NewReader(os.Stdin)})
	if err := view.Load(ctx); err != nil {
		log.Fatalf("Cannot load orders: %v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ORDER\tCUSTOMER\tDATE\tSTATUS")
	for _, r := range view.VisibleRows() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.OrderID, r.CustomerID, r.OrderDate, view.RowBadge(r).Text)
	}
	w.Flush()
	fmt.Printf("page %d of %d\n", view.Pager.Page, view.Pager.TotalPages(len(view.Rows)))
}

func runReports(ctx context.Context, client *console.Client, logger logging.Logger) {
	view := console.NewReportsView(client, termCharts{}, logger)
	if err := view.Load(ctx); err != nil {
		log.Fatalf("Cannot load reports: %v", err)
	}
	fmt.Printf("Total products:  %d\n", view.TotalProducts)
	fmt.Printf("Total customers: %d\n", view.TotalCustomers)
	fmt.Printf("Total orders:    %d\n", view.TotalOrders)
	fmt.Printf("Low stock:       %d\n", view.LowStockCount)

	if len(view.LowStock) > 0 {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "BRAND\tMODEL\tSTOCK\tSUPPLIER")
		for _, r := range view.LowStock {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", r.Brand, r.Model, r.Stock, r.Supplier)
		}
		w.Flush()
	}
}

func runQuery(ctx context.Context, client *console.Client, name string) {
	runner := console.NewQueryRunner(client)
	if err := runner.Run(ctx, name); err != nil {
		log.Fatalf("Query failed: %v", err)
	}
	if runner.Message != "" {
		fmt.Println(runner.Message)
	}
	if len(runner.Columns) == 0 {
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(runner.Columns, "\t"))
	for _, row := range runner.Rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}

func printUsage() {
	fmt.Printf(`%s - Shoestack admin console

Usage:
  %s <command> [options]

Commands:
  dashboard    Show the landing-page counters
  orders       List orders with shipment status
  reports      Show the reporting summary and charts
  query <name> Run a reporting query (products_suppliers, orders_status,
               suppliers_stock, orders_by_customer, sales_by_product)
  version      Print version information
  help         Show this help message

Environment Variables:
  CONSOLE_CONSOLE_BASE_URL  Backend base URL (default: http://localhost:8080)
  CONSOLE_LOG_LEVEL         Log level: debug, info, error (default: info)

`, appName, appName)
}
