package cart

import (
	"errors"

	"alianza-shop/shop-svc/internal/domain"
	"alianza-shop/shop-svc/internal/pricing"
)

const MinQuantity = 0.1

var (
	ErrQuantityTooSmall = errors.New("quantity must be at least 0.1")
	ErrItemNotFound     = errors.New("item not in cart")
)

type Item struct {
	ProductID int             `json:"product_id"`
	Name      string          `json:"name"`
	Price     float64         `json:"price"`
	Image     string          `json:"image"`
	UnitType  domain.UnitType `json:"unit_type"`
	Quantity  float64         `json:"quantity"`
}

// Cart is an ordered collection of line items owned by one session.
type Cart struct {
	SessionID string `json:"session_id"`
	Items     []Item `json:"items"`
}

func New(sessionID string) *Cart {
	return &Cart{SessionID: sessionID, Items: []Item{}}
}

func SnapshotOf(p *domain.Product) Item {
	return Item{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		UnitType:  p.UnitType,
	}
}

// Add appends the item or, when the product is already present, grows its quantity.
func (c *Cart) Add(item Item, quantity float64) error {
	if quantity < MinQuantity {
		return ErrQuantityTooSmall
	}
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity += quantity
			return nil
		}
	}
	item.Quantity = quantity
	c.Items = append(c.Items, item)
	return nil
}

func (c *Cart) SetQuantity(productID int, quantity float64) error {
	if quantity < MinQuantity {
		return ErrQuantityTooSmall
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			return nil
		}
	}
	return ErrItemNotFound
}

func (c *Cart) Remove(productID int) {
	kept := c.Items[:0]
	for _, it := range c.Items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	c.Items = kept
}

func (c *Cart) Clear() {
	c.Items = []Item{}
}

func (c *Cart) Count() int {
	return len(c.Items)
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c *Cart) Lines() []pricing.Line {
	lines := make([]pricing.Line, 0, len(c.Items))
	for _, it := range c.Items {
		lines = append(lines, pricing.Line{Price: it.Price, Quantity: it.Quantity})
	}
	return lines
}

func (c *Cart) Total() float64 {
	return pricing.Subtotal(c.Lines())
}

func (c *Cart) OrderItems() []domain.OrderItem {
	items := make([]domain.OrderItem, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, domain.OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.Name,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}
	return items
}
