package console

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/shoestackclub/shoestack/internal/store"
)

var ErrNotEnoughStock = errors.New("not enough stock")

// CartItem is one staged order line. Stock is the ceiling captured at
// add time; quantity is fixed after add (lines are removed, not edited).
type CartItem struct {
	ProductID uuid.UUID
	Label     string
	Size      int
	UnitPrice float64
	Quantity  int
	Stock     int
}

func (it CartItem) Subtotal() float64 {
	return float64(it.Quantity) * it.UnitPrice
}

func (it CartItem) FormatSubtotal() string {
	return fmt.Sprintf("%.2f", it.Subtotal())
}

// Cart is the ordered staging list of an order draft. Insertion order
// is display order and the total is always derived from the lines.
type Cart struct {
	items []CartItem
}

// Add stages a line for p. A nil product or non-positive quantity is a
// silent no-op; a quantity over the product's current stock is rejected
// with ErrNotEnoughStock and the cart is left untouched.
func (c *Cart) Add(p *store.Product, qty int) error {
	if p == nil || qty <= 0 {
		return nil
	}
	if qty > p.Stock {
		return ErrNotEnoughStock
	}
	c.items = append(c.items, CartItem{
		ProductID: p.ID,
		Label:     productLabel(p),
		Size:      p.Size,
		UnitPrice: p.Price,
		Quantity:  qty,
		Stock:     p.Stock,
	})
	return nil
}

// restore appends an already-validated line during edit rehydration.
func (c *Cart) restore(item CartItem) {
	c.items = append(c.items, item)
}

// Remove deletes the line at position i; out-of-range indexes no-op.
func (c *Cart) Remove(i int) {
	if i < 0 || i >= len(c.items) {
		return
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
}

func (c *Cart) Len() int {
	return len(c.items)
}

// Lines returns a copy of the staged lines in display order.
func (c *Cart) Lines() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Total() float64 {
	total := 0.0
	for _, it := range c.items {
		total += it.Subtotal()
	}
	return total
}

// FormatTotal renders the cart-wide total to two decimal places.
func (c *Cart) FormatTotal() string {
	return fmt.Sprintf("%.2f", c.Total())
}

func (c *Cart) Clear() {
	c.items = nil
}

// PayloadItems strips price and label; the server is the source of
// truth for pricing at persistence time.
func (c *Cart) PayloadItems() []OrderItem {
	items := make([]OrderItem, 0, len(c.items))
	for _, it := range c.items {
		items = append(items, OrderItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return items
}

func productLabel(p *store.Product) string {
	return fmt.Sprintf("%s - %s (size %d)", p.Brand, p.Model, p.Size)
}
