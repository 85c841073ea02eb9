package store

import (
	"time"

	"github.com/google/uuid"
)

// Shipment lifecycle phases. Absence of a shipment is rendered as
// "No shipment" by the console and treated as not cancelable.
const (
	ShipmentPending   = "Pending"
	ShipmentInTransit = "In Transit"
	ShipmentDelivered = "Delivered"
)

const DefaultCourier = "Servientrega"

type Supplier struct {
	ID        uuid.UUID `json:"supplier_id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Country   string    `json:"country" bson:"country"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

type Product struct {
	ID         uuid.UUID `json:"product_id" bson:"_id"`
	SupplierID uuid.UUID `json:"supplier_id" bson:"supplier_id"`
	Brand      string    `json:"brand" bson:"brand"`
	Model      string    `json:"model" bson:"model"`
	Size       int       `json:"size" bson:"size"`
	Price      float64   `json:"price" bson:"price"`
	Stock      int       `json:"stock" bson:"stock"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`
}

type Customer struct {
	ID        uuid.UUID `json:"customer_id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Address   string    `json:"address" bson:"address"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

type Order struct {
	ID         uuid.UUID `json:"order_id" bson:"_id"`
	CustomerID uuid.UUID `json:"customer_id" bson:"customer_id"`
	// OrderDate keeps the original "YYYY-MM-DD" wire format.
	OrderDate string    `json:"order_date" bson:"order_date"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// OrderDetail is one line of an order; order_id+product_id form the key.
type OrderDetail struct {
	OrderID   uuid.UUID `json:"order_id" bson:"order_id"`
	ProductID uuid.UUID `json:"product_id" bson:"product_id"`
	Quantity  int       `json:"quantity" bson:"quantity"`
}

type Shipment struct {
	ID        uuid.UUID `json:"shipment_id" bson:"_id"`
	OrderID   uuid.UUID `json:"order_id" bson:"order_id"`
	Courier   string    `json:"courier" bson:"courier"`
	Status    string    `json:"status" bson:"status"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

func GenerateNewID() uuid.UUID {
	return uuid.New()
}

func NewSupplier(name, country string) *Supplier {
	s := &Supplier{ID: GenerateNewID(), Name: name, Country: country}
	s.BeforeCreate()
	return s
}

func (s *Supplier) BeforeCreate() {
	if s.ID == uuid.Nil {
		s.ID = GenerateNewID()
	}
	s.CreatedAt = time.Now()
	s.UpdatedAt = time.Now()
}

func (s *Supplier) BeforeUpdate() {
	s.UpdatedAt = time.Now()
}

func NewProduct(supplierID uuid.UUID, brand, model string, size int, price float64, stock int) *Product {
	p := &Product{
		ID:         GenerateNewID(),
		SupplierID: supplierID,
		Brand:      brand,
		Model:      model,
		Size:       size,
		Price:      price,
		Stock:      stock,
	}
	p.BeforeCreate()
	return p
}

func (p *Product) BeforeCreate() {
	if p.ID == uuid.Nil {
		p.ID = GenerateNewID()
	}
	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()
}

func (p *Product) BeforeUpdate() {
	p.UpdatedAt = time.Now()
}

func NewCustomer(name, email, address string) *Customer {
	c := &Customer{ID: GenerateNewID(), Name: name, Email: email, Address: address}
	c.BeforeCreate()
	return c
}

func (c *Customer) BeforeCreate() {
	if c.ID == uuid.Nil {
		c.ID = GenerateNewID()
	}
	c.CreatedAt = time.Now()
	c.UpdatedAt = time.Now()
}

func (c *Customer) BeforeUpdate() {
	c.UpdatedAt = time.Now()
}

func NewOrder(customerID uuid.UUID, orderDate string) *Order {
	o := &Order{ID: GenerateNewID(), CustomerID: customerID, OrderDate: orderDate}
	o.BeforeCreate()
	return o
}

func (o *Order) BeforeCreate() {
	if o.ID == uuid.Nil {
		o.ID = GenerateNewID()
	}
	o.CreatedAt = time.Now()
	o.UpdatedAt = time.Now()
}

func (o *Order) BeforeUpdate() {
	o.UpdatedAt = time.Now()
}

func NewShipment(orderID uuid.UUID, courier, status string) *Shipment {
	if courier == "" {
		courier = DefaultCourier
	}
	if status == "" {
		status = ShipmentPending
	}
	s := &Shipment{ID: GenerateNewID(), OrderID: orderID, Courier: courier, Status: status}
	s.BeforeCreate()
	return s
}

func (s *Shipment) BeforeCreate() {
	if s.ID == uuid.Nil {
		s.ID = GenerateNewID()
	}
	s.CreatedAt = time.Now()
	s.UpdatedAt = time.Now()
}

func (s *Shipment) BeforeUpdate() {
	s.UpdatedAt = time.Now()
}

// ValidShipmentStatus reports whether s is one of the known phases.
func ValidShipmentStatus(s string) bool {
	switch s {
	case ShipmentPending, ShipmentInTransit, ShipmentDelivered:
		return true
	}
	return false
}
