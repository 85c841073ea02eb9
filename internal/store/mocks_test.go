package store

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/shoestackclub/shoestack/internal/events"
)

// MockPublisher is a mock implementation of events.Publisher for testing
type MockPublisher struct {
	mu        sync.Mutex
	Published []PublishedMessage

	PublishFunc func(ctx context.Context, topic string, msg []byte) error
}

type PublishedMessage struct {
	Topic string
	Msg   []byte
}

func NewMockPublisher() *MockPublisher {
	return &MockPublisher{}
}

func (m *MockPublisher) Publish(ctx context.Context, topic string, msg []byte) error {
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, topic, msg)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Published = append(m.Published, PublishedMessage{Topic: topic, Msg: msg})
	return nil
}

// MockSubscriber is a mock implementation of events.Subscriber for testing
type MockSubscriber struct {
	SubscribeFunc func(ctx context.Context, topic string, handler events.HandlerFunc) error
}

func NewMockSubscriber() *MockSubscriber {
	return &MockSubscriber{}
}

func (m *MockSubscriber) Subscribe(ctx context.Context, topic string, handler events.HandlerFunc) error {
	if m.SubscribeFunc != nil {
		return m.SubscribeFunc(ctx, topic, handler)
	}
	return nil
}

// MockSupplierRepo is a mock implementation of SupplierRepo for testing
type MockSupplierRepo struct {
	mu        sync.RWMutex
	suppliers map[uuid.UUID]*Supplier

	CreateFunc func(ctx context.Context, s *Supplier) error
	GetFunc    func(ctx context.Context, id uuid.UUID) (*Supplier, error)
}

func NewMockSupplierRepo() *MockSupplierRepo {
	return &MockSupplierRepo{suppliers: make(map[uuid.UUID]*Supplier)}
}

func (m *MockSupplierRepo) Create(ctx context.Context, s *Supplier) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, s)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.suppliers[s.ID] = s
	return nil
}

func (m *MockSupplierRepo) Get(ctx context.Context, id uuid.UUID) (*Supplier, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.suppliers[id], nil
}

func (m *MockSupplierRepo) List(ctx context.Context) ([]*Supplier, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*Supplier
	for _, s := range m.suppliers {
		result = append(result, s)
	}
	return result, nil
}

func (m *MockSupplierRepo) Save(ctx context.Context, s *Supplier) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.suppliers[s.ID] = s
	return nil
}

func (m *MockSupplierRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.suppliers, id)
	return nil
}

// MockProductRepo is a mock implementation of ProductRepo for testing
type MockProductRepo struct {
	mu       sync.RWMutex
	products map[uuid.UUID]*Product

	GetFunc func(ctx context.Context, id uuid.UUID) (*Product, error)
}

func NewMockProductRepo() *MockProductRepo {
	return &MockProductRepo{products: make(map[uuid.UUID]*Product)}
}

func (m *MockProductRepo) Create(ctx context.Context, p *Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products[p.ID] = p
	return nil
}

func (m *MockProductRepo) Get(ctx context.Context, id uuid.UUID) (*Product, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.products[id]
	if !ok {
		return nil, nil
	}
	// Handlers mutate the returned product before saving; copy so the
	// stored row only changes through Save.
	clone := *p
	return &clone, nil
}

func (m *MockProductRepo) List(ctx context.Context) ([]*Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*Product
	for _, p := range m.products {
		clone := *p
		result = append(result, &clone)
	}
	return result, nil
}

func (m *MockProductRepo) ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*Product
	for _, p := range m.products {
		if p.SupplierID == supplierID {
			clone := *p
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (m *MockProductRepo) Save(ctx context.Context, p *Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := *p
	m.products[p.ID] = &clone
	return nil
}

func (m *MockProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.products, id)
	return nil
}

// MockCustomerRepo is a mock implementation of CustomerRepo for testing
type MockCustomerRepo struct {
	mu        sync.RWMutex
	customers map[uuid.UUID]*Customer

	FindByNameFunc func(ctx context.Context, name string) (*Customer, error)
}

func NewMockCustomerRepo() *MockCustomerRepo {
	return &MockCustomerRepo{customers: make(map[uuid.UUID]*Customer)}
}

func (m *MockCustomerRepo) Create(ctx context.Context, c *Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.customers[c.ID] = c
	return nil
}

func (m *MockCustomerRepo) Get(ctx context.Context, id uuid.UUID) (*Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.customers[id], nil
}

func (m *MockCustomerRepo) FindByName(ctx context.Context, name string) (*Customer, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.customers {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return nil, nil
}

func (m *MockCustomerRepo) List(ctx context.Context) ([]*Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*Customer
	for _, c := range m.customers {
		result = append(result, c)
	}
	return result, nil
}

func (m *MockCustomerRepo) Save(ctx context.Context, c *Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.customers[c.ID] = c
	return nil
}

func (m *MockCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.customers, id)
	return nil
}

// MockOrderRepo is a mock implementation of OrderRepo for testing
type MockOrderRepo struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]*Order

	CreateFunc func(ctx context.Context, o *Order) error
	DeleteFunc func(ctx context.Context, id uuid.UUID) error
}

func NewMockOrderRepo() *MockOrderRepo {
	return &MockOrderRepo{orders: make(map[uuid.UUID]*Order)}
}

func (m *MockOrderRepo) Create(ctx context.Context, o *Order) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, o)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders[o.ID] = o
	return nil
}

func (m *MockOrderRepo) Get(ctx context.Context, id uuid.UUID) (*Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.orders[id], nil
}

func (m *MockOrderRepo) List(ctx context.Context) ([]*Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*Order
	for _, o := range m.orders {
		result = append(result, o)
	}
	return result, nil
}

func (m *MockOrderRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*Order
	for _, o := range m.orders {
		if o.CustomerID == customerID {
			result = append(result, o)
		}
	}
	return result, nil
}

func (m *MockOrderRepo) Save(ctx context.Context, o *Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders[o.ID] = o
	return nil
}

func (m *MockOrderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.orders, id)
	return nil
}

// MockOrderDetailRepo is a mock implementation of OrderDetailRepo for testing
type MockOrderDetailRepo struct {
	mu      sync.RWMutex
	details []*OrderDetail
}

func NewMockOrderDetailRepo() *MockOrderDetailRepo {
	return &MockOrderDetailRepo{}
}

func (m *MockOrderDetailRepo) Create(ctx context.Context, d *OrderDetail) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.details = append(m.details, d)
	return nil
}

func (m *MockOrderDetailRepo) List(ctx context.Context) ([]*OrderDetail, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*OrderDetail, len(m.details))
	copy(result, m.details)
	return result, nil
}

func (m *MockOrderDetailRepo) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*OrderDetail, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*OrderDetail
	for _, d := range m.details {
		if d.OrderID == orderID {
			result = append(result, d)
		}
	}
	return result, nil
}

func (m *MockOrderDetailRepo) ReplaceForOrder(ctx context.Context, orderID uuid.UUID, details []*OrderDetail) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.details[:0]
	for _, d := range m.details {
		if d.OrderID != orderID {
			kept = append(kept, d)
		}
	}
	m.details = append(kept, details...)
	return nil
}

func (m *MockOrderDetailRepo) Delete(ctx context.Context, orderID, productID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.details[:0]
	for _, d := range m.details {
		if !(d.OrderID == orderID && d.ProductID == productID) {
			kept = append(kept, d)
		}
	}
	m.details = kept
	return nil
}

func (m *MockOrderDetailRepo) DeleteByOrder(ctx context.Context, orderID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.details[:0]
	for _, d := range m.details {
		if d.OrderID != orderID {
			kept = append(kept, d)
		}
	}
	m.details = kept
	return nil
}

// MockShipmentRepo is a mock implementation of ShipmentRepo for testing
type MockShipmentRepo struct {
	mu        sync.RWMutex
	shipments map[uuid.UUID]*Shipment
}

func NewMockShipmentRepo() *MockShipmentRepo {
	return &MockShipmentRepo{shipments: make(map[uuid.UUID]*Shipment)}
}

func (m *MockShipmentRepo) Create(ctx context.Context, s *Shipment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shipments[s.ID] = s
	return nil
}

func (m *MockShipmentRepo) Get(ctx context.Context, id uuid.UUID) (*Shipment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.shipments[id], nil
}

func (m *MockShipmentRepo) GetByOrder(ctx context.Context, orderID uuid.UUID) (*Shipment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.shipments {
		if s.OrderID == orderID {
			return s, nil
		}
	}
	return nil, nil
}

func (m *MockShipmentRepo) List(ctx context.Context) ([]*Shipment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*Shipment
	for _, s := range m.shipments {
		result = append(result, s)
	}
	return result, nil
}

func (m *MockShipmentRepo) Save(ctx context.Context, s *Shipment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shipments[s.ID] = s
	return nil
}

func (m *MockShipmentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.shipments, id)
	return nil
}

func (m *MockShipmentRepo) DeleteByOrder(ctx context.Context, orderID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.shipments {
		if s.OrderID == orderID {
			delete(m.shipments, id)
		}
	}
	return nil
}

func newMockRepos() Repos {
	return Repos{
		Suppliers:    NewMockSupplierRepo(),
		Products:     NewMockProductRepo(),
		Customers:    NewMockCustomerRepo(),
		Orders:       NewMockOrderRepo(),
		OrderDetails: NewMockOrderDetailRepo(),
		Shipments:    NewMockShipmentRepo(),
	}
}
