package orders

import (
	"github.com/shopspring/decimal"

	"vetcare-pro/internal/domain/products"
)

// Item es un snapshot de producto más cantidad dentro del carrito.
type Item struct {
	Product  products.Product
	Quantity int
}

func (i Item) Subtotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart es estado puramente local del cliente. Invariante: a lo sumo una
// línea por producto; agregar un producto ya presente incrementa su
// cantidad en vez de duplicar la línea.
type Cart struct {
	items []Item
}

func NewCart() *Cart {
	return &Cart{}
}

// Add mergea o agrega la línea del producto.
func (c *Cart) Add(p products.Product) {
	for idx := range c.items {
		if c.items[idx].Product.ID == p.ID {
			c.items[idx].Quantity++
			return
		}
	}
	c.items = append(c.items, Item{Product: p, Quantity: 1})
}

// UpdateQuantity suma delta a la cantidad de la línea, con piso en 1.
// Las líneas se sacan solo con Remove, nunca por esta vía.
func (c *Cart) UpdateQuantity(productID string, delta int) {
	for idx := range c.items {
		if c.items[idx].Product.ID == productID {
			q := c.items[idx].Quantity + delta
			if q < 1 {
				q = 1
			}
			c.items[idx].Quantity = q
			return
		}
	}
}

// Remove saca la línea sin importar su cantidad.
func (c *Cart) Remove(productID string) {
	out := c.items[:0]
	for _, it := range c.items {
		if it.Product.ID != productID {
			out = append(out, it)
		}
	}
	c.items = out
}

// Total es Σ precio × cantidad. Se recalcula en cada llamada; acá no hay
// nada cacheado que pueda quedar stale.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// Count es la suma de cantidades (el badge del carrito).
func (c *Cart) Count() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) Empty() bool {
	return len(c.items) == 0
}

// Items devuelve una copia; el carrito solo muta por sus métodos.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Clear() {
	c.items = nil
}
