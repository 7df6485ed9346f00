package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bluewear/internal/domain/product"
)

func tee() product.Product {
	return product.Product{ID: "p1", Title: "Tee", Price: 10.00}
}

func hat() product.Product {
	return product.Product{ID: "p2", Title: "Cap", Price: 5.00}
}

func TestAddSameProductMergesLines(t *testing.T) {
	c := New()
	c.Add(tee())
	c.Add(tee())

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 1, c.Len())
}

func TestDecrementRemovesLineAtZero(t *testing.T) {
	c := New()
	c.Add(tee())
	c.Add(tee())

	c.Decrement("p1")
	require.Len(t, c.Items(), 1)
	assert.Equal(t, 1, c.Items()[0].Quantity)

	c.Decrement("p1")
	assert.Empty(t, c.Items())
}

func TestDecrementAbsentIsNoOp(t *testing.T) {
	c := New()
	c.Add(tee())

	c.Decrement("nope")

	require.Len(t, c.Items(), 1)
	assert.Equal(t, 1, c.Items()[0].Quantity)
}

func TestQuantityNeverNonPositive(t *testing.T) {
	c := New()
	ops := []struct {
		add bool
		p   product.Product
	}{
		{true, tee()}, {true, hat()}, {false, tee()}, {false, tee()},
		{false, tee()}, {true, tee()}, {false, hat()}, {false, hat()},
	}
	for _, op := range ops {
		if op.add {
			c.Add(op.p)
		} else {
			c.Decrement(op.p.ID)
		}
		for _, l := range c.Items() {
			assert.GreaterOrEqual(t, l.Quantity, 1)
		}
	}
}

func TestSubtotal(t *testing.T) {
	c := New()
	c.Add(tee())
	c.Add(tee())
	c.Add(hat())

	// 2 x $10.00 + 1 x $5.00
	assert.Equal(t, "$25.00", FormatUSD(c.Subtotal()))
}

func TestSubtotalAvoidsFloatDrift(t *testing.T) {
	c := New()
	p := product.Product{ID: "p3", Title: "Socks", Price: 0.10}
	for i := 0; i < 3; i++ {
		c.Add(p)
	}
	assert.Equal(t, "$0.30", FormatUSD(c.Subtotal()))
}

func TestItemsOrderedByTitle(t *testing.T) {
	c := New()
	c.Add(tee())
	c.Add(hat())

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Cap", items[0].Title)
	assert.Equal(t, "Tee", items[1].Title)
}

func TestClear(t *testing.T) {
	c := New()
	c.Add(tee())
	c.Clear()
	assert.Zero(t, c.Len())
	assert.Equal(t, "$0.00", FormatUSD(c.Subtotal()))
}

func TestLineDisplayStrings(t *testing.T) {
	l := Line{Product: tee(), Quantity: 3}
	assert.Equal(t, "$10.00", l.PriceUSD())
	assert.Equal(t, "$30.00", l.TotalUSD())
}
