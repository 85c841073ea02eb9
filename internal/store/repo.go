package store

import (
	"context"

	"github.com/google/uuid"
)

type SupplierRepo interface {
	Create(ctx context.Context, s *Supplier) error
	Get(ctx context.Context, id uuid.UUID) (*Supplier, error)
	List(ctx context.Context) ([]*Supplier, error)
	Save(ctx context.Context, s *Supplier) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProductRepo interface {
	Create(ctx context.Context, p *Product) error
	Get(ctx context.Context, id uuid.UUID) (*Product, error)
	List(ctx context.Context) ([]*Product, error)
	ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*Product, error)
	Save(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CustomerRepo interface {
	Create(ctx context.Context, c *Customer) error
	Get(ctx context.Context, id uuid.UUID) (*Customer, error)
	FindByName(ctx context.Context, name string) (*Customer, error)
	List(ctx context.Context) ([]*Customer, error)
	Save(ctx context.Context, c *Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type OrderRepo interface {
	Create(ctx context.Context, o *Order) error
	Get(ctx context.Context, id uuid.UUID) (*Order, error)
	List(ctx context.Context) ([]*Order, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*Order, error)
	Save(ctx context.Context, o *Order) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type OrderDetailRepo interface {
	Create(ctx context.Context, d *OrderDetail) error
	List(ctx context.Context) ([]*OrderDetail, error)
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*OrderDetail, error)
	ReplaceForOrder(ctx context.Context, orderID uuid.UUID, details []*OrderDetail) error
	Delete(ctx context.Context, orderID, productID uuid.UUID) error
	DeleteByOrder(ctx context.Context, orderID uuid.UUID) error
}

type ShipmentRepo interface {
	Create(ctx context.Context, s *Shipment) error
	Get(ctx context.Context, id uuid.UUID) (*Shipment, error)
	GetByOrder(ctx context.Context, orderID uuid.UUID) (*Shipment, error)
	List(ctx context.Context) ([]*Shipment, error)
	Save(ctx context.Context, s *Shipment) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByOrder(ctx context.Context, orderID uuid.UUID) error
}

// Repos bundles the repositories the handler depends on.
type Repos struct {
	Suppliers    SupplierRepo
	Products     ProductRepo
	Customers    CustomerRepo
	Orders       OrderRepo
	OrderDetails OrderDetailRepo
	Shipments    ShipmentRepo
}
