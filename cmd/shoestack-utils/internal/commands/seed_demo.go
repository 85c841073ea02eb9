package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/shoestackclub/shoestack/internal/config"
	"github.com/shoestackclub/shoestack/internal/logging"
	"github.com/shoestackclub/shoestack/internal/mongo"
	"github.com/shoestackclub/shoestack/internal/store"
)

// Demo rows are recognized by these names so clear-demo can find them.
var (
	demoSuppliers = []struct {
		Name    string
		Country string
	}{
		{"Nortec Footwear", "Vietnam"},
		{"Andes Leather", "Colombia"},
	}

	demoCustomerEmails = []string{
		"laura.gomez@example.com",
		"mateo.rios@example.com",
		"sofia.perez@example.com",
	}
)

func connect(ctx context.Context, cfg *config.Config, logger logging.Logger) (*mongo.BaseRepo, store.Repos, error) {
	base := mongo.NewBaseRepo(cfg, logger)
	if err := base.Start(ctx); err != nil {
		return nil, store.Repos{}, err
	}
	db := base.GetDatabase()
	repos := store.Repos{
		Suppliers:    mongo.NewSupplierRepo(db),
		Products:     mongo.NewProductRepo(db),
		Customers:    mongo.NewCustomerRepo(db),
		Orders:       mongo.NewOrderRepo(db),
		OrderDetails: mongo.NewOrderDetailRepo(db),
		Shipments:    mongo.NewShipmentRepo(db),
	}
	return base, repos, nil
}

// SeedDemo creates sample suppliers, products, customers, and two
// orders (one with a pending shipment, one in transit). Running it
// twice duplicates nothing: it skips when the demo suppliers exist.
func SeedDemo(ctx context.Context, cfg *config.Config, logger logging.Logger) error {
	base, repos, err := connect(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer base.Stop(ctx)

	existing, err := repos.Suppliers.List(ctx)
	if err != nil {
		return fmt.Errorf("cannot list suppliers: %w", err)
	}
	for _, s := range existing {
		if s.Name == demoSuppliers[0].Name {
			logger.Info("Demo data already present, skipping")
			return nil
		}
	}

	suppliers := make([]*store.Supplier, 0, len(demoSuppliers))
	for _, d := range demoSuppliers {
		s := store.NewSupplier(d.Name, d.Country)
		if err := repos.Suppliers.Create(ctx, s); err != nil {
			return fmt.Errorf("cannot create demo supplier: %w", err)
		}
		suppliers = append(suppliers, s)
	}

	products := []*store.Product{
		store.NewProduct(suppliers[0].ID, "Nortec", "Trail Runner", 42, 89.90, 25),
		store.NewProduct(suppliers[0].ID, "Nortec", "City Walker", 41, 59.50, 3),
		store.NewProduct(suppliers[0].ID, "Nortec", "Peak Boot", 44, 120.00, 12),
		store.NewProduct(suppliers[1].ID, "Andes", "Classic Derby", 43, 95.00, 8),
		store.NewProduct(suppliers[1].ID, "Andes", "Loafer Prima", 40, 75.25, 2),
		store.NewProduct(suppliers[1].ID, "Andes", "Chelsea Cut", 42, 110.40, 15),
	}
	for _, p := range products {
		if err := repos.Products.Create(ctx, p); err != nil {
			return fmt.Errorf("cannot create demo product: %w", err)
		}
	}

	customers := []*store.Customer{
		store.NewCustomer("Laura Gomez", demoCustomerEmails[0], "Cra 7 #45-12, Bogota"),
		store.NewCustomer("Mateo Rios", demoCustomerEmails[1], "Av Siempreviva 742, Medellin"),
		store.NewCustomer("Sofia Perez", demoCustomerEmails[2], "Calle 10 #3-21, Cali"),
	}
	for _, c := range customers {
		if err := repos.Customers.Create(ctx, c); err != nil {
			return fmt.Errorf("cannot create demo customer: %w", err)
		}
	}

	today := time.Now().Format("2006-01-02")
	lastMonth := time.Now().AddDate(0, -1, 0).Format("2006-01-02")

	order1 := store.NewOrder(customers[0].ID, today)
	if err := repos.Orders.Create(ctx, order1); err != nil {
		return fmt.Errorf("cannot create demo order: %w", err)
	}
	details1 := []*store.OrderDetail{
		{OrderID: order1.ID, ProductID: products[0].ID, Quantity: 2},
		{OrderID: order1.ID, ProductID: products[3].ID, Quantity: 1},
	}
	if err := repos.OrderDetails.ReplaceForOrder(ctx, order1.ID, details1); err != nil {
		return fmt.Errorf("cannot create demo order details: %w", err)
	}
	if err := repos.Shipments.Create(ctx, store.NewShipment(order1.ID, "", store.ShipmentPending)); err != nil {
		return fmt.Errorf("cannot create demo shipment: %w", err)
	}

	order2 := store.NewOrder(customers[1].ID, lastMonth)
	if err := repos.Orders.Create(ctx, order2); err != nil {
		return fmt.Errorf("cannot create demo order: %w", err)
	}
	details2 := []*store.OrderDetail{
		{OrderID: order2.ID, ProductID: products[5].ID, Quantity: 1},
	}
	if err := repos.OrderDetails.ReplaceForOrder(ctx, order2.ID, details2); err != nil {
		return fmt.Errorf("cannot create demo order details: %w", err)
	}
	if err := repos.Shipments.Create(ctx, store.NewShipment(order2.ID, "", store.ShipmentInTransit)); err != nil {
		return fmt.Errorf("cannot create demo shipment: %w", err)
	}

	logger.Info("Seeded demo data",
		"suppliers", len(suppliers),
		"products", len(products),
		"customers", len(customers),
		"orders", 2)
	return nil
}
