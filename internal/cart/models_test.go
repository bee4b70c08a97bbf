package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartRecalculate(t *testing.T) {
	c := &Cart{
		Items: []CartItem{
			{ID: "a", Subtotal: 90.00},
			{ID: "b", Subtotal: 45.50},
			{ID: "c", Subtotal: 19.99},
		},
	}
	c.Recalculate()

	assert.InDelta(t, 155.49, c.Total, 0.001)
	assert.False(t, c.UpdatedAt.IsZero())
}

func TestCartRecalculateEmpty(t *testing.T) {
	c := &Cart{}
	c.Recalculate()
	assert.Equal(t, 0.0, c.Total)
}

func TestCartRemoveItem(t *testing.T) {
	c := &Cart{
		Items: []CartItem{
			{ID: "a", Subtotal: 10},
			{ID: "b", Subtotal: 20},
		},
	}

	assert.True(t, c.RemoveItem("a"))
	assert.Len(t, c.Items, 1)
	assert.Equal(t, "b", c.Items[0].ID)
	assert.InDelta(t, 20.0, c.Total, 0.001)

	assert.False(t, c.RemoveItem("missing"))
	assert.Len(t, c.Items, 1)
}
