package cart

import (
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"bluewear/internal/domain/product"
)

type Line struct {
	product.Product
	Quantity int
}

// LineTotal is price x quantity for one line.
func (l Line) LineTotal() decimal.Decimal {
	return decimal.NewFromFloat(l.Price).Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// PriceUSD and TotalUSD are the display strings templates use.
func (l Line) PriceUSD() string {
	return FormatUSD(decimal.NewFromFloat(l.Price))
}

func (l Line) TotalUSD() string {
	return FormatUSD(l.LineTotal())
}

// Cart holds the shopper's lines in memory, keyed by product id.
// Invariant: every stored line has Quantity >= 1.
type Cart struct {
	mu    sync.Mutex
	lines map[string]Line
}

func New() *Cart {
	return &Cart{lines: make(map[string]Line)}
}

// Add inserts the product with quantity 1 or bumps the existing line.
func (c *Cart) Add(p product.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	line, ok := c.lines[p.ID]
	if !ok {
		c.lines[p.ID] = Line{Product: p, Quantity: 1}
		return
	}
	line.Quantity++
	c.lines[p.ID] = line
}

// Decrement lowers the line's quantity by one and removes the line when
// it would reach zero. Unknown ids are a no-op.
func (c *Cart) Decrement(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	line, ok := c.lines[id]
	if !ok {
		return
	}
	line.Quantity--
	if line.Quantity <= 0 {
		delete(c.lines, id)
		return
	}
	c.lines[id] = line
}

// Items returns the lines ordered by title then id, so templates render
// a stable list.
func (c *Cart) Items() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]Line, 0, len(c.lines))
	for _, l := range c.lines {
		items = append(items, l)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Title != items[j].Title {
			return items[i].Title < items[j].Title
		}
		return items[i].ID < items[j].ID
	})
	return items
}

// Len is the number of distinct lines, shown on the navbar badge.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

func (c *Cart) Subtotal() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.LineTotal())
	}
	return total
}

// Clear empties the cart after a successful checkout.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = make(map[string]Line)
}

// FormatUSD renders a decimal as "$12.34".
func FormatUSD(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
