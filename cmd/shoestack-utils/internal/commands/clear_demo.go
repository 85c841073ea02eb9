package commands

import (
	"context"
	"fmt"

	"github.com/shoestackclub/shoestack/internal/config"
	"github.com/shoestackclub/shoestack/internal/logging"
)

// ClearDemo removes the rows seed-demo created, cascading from the
// demo suppliers and customers.
func ClearDemo(ctx context.Context, cfg *config.Config, logger logging.Logger) error {
	base, repos, err := connect(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer base.Stop(ctx)

	suppliers, err := repos.Suppliers.List(ctx)
	if err != nil {
		return fmt.Errorf("cannot list suppliers: %w", err)
	}
	demoNames := make(map[string]bool, len(demoSuppliers))
	for _, d := range demoSuppliers {
		demoNames[d.Name] = true
	}

	for _, s := range suppliers {
		if !demoNames[s.Name] {
			continue
		}
		products, err := repos.Products.ListBySupplier(ctx, s.ID)
		if err != nil {
			return fmt.Errorf("cannot list demo products: %w", err)
		}
		for _, p := range products {
			if err := repos.Products.Delete(ctx, p.ID); err != nil {
				logger.Error("cannot delete demo product", "error", err, "id", p.ID.String())
			}
		}
		if err := repos.Suppliers.Delete(ctx, s.ID); err != nil {
			logger.Error("cannot delete demo supplier", "error", err, "id", s.ID.String())
		}
	}

	customers, err := repos.Customers.List(ctx)
	if err != nil {
		return fmt.Errorf("cannot list customers: %w", err)
	}
	demoEmails := make(map[string]bool, len(demoCustomerEmails))
	for _, e := range demoCustomerEmails {
		demoEmails[e] = true
	}

	for _, c := range customers {
		if !demoEmails[c.Email] {
			continue
		}
		orders, err := repos.Orders.ListByCustomer(ctx, c.ID)
		if err != nil {
			return fmt.Errorf("cannot list demo orders: %w", err)
		}
		for _, o := range orders {
			if err := repos.OrderDetails.DeleteByOrder(ctx, o.ID); err != nil {
				logger.Error("cannot delete demo order details", "error", err, "order_id", o.ID.String())
			}
			if err := repos.Shipments.DeleteByOrder(ctx, o.ID); err != nil {
				logger.Error("cannot delete demo shipments", "error", err, "order_id", o.ID.String())
			}
			if err := repos.Orders.Delete(ctx, o.ID); err != nil {
				logger.Error("cannot delete demo order", "error", err, "id", o.ID.String())
			}
		}
		if err := repos.Customers.Delete(ctx, c.ID); err != nil {
			logger.Error("cannot delete demo customer", "error", err, "id", c.ID.String())
		}
	}

	logger.Info("Demo data cleared")
	return nil
}
