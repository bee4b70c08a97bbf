package listings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListingStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		allowed bool
	}{
		{"draft to published", StatusDraft, StatusPublished, true},
		{"draft to archived", StatusDraft, StatusArchived, true},
		{"published to draft", StatusPublished, StatusDraft, true},
		{"published to archived", StatusPublished, StatusArchived, true},
		{"archived stays archived", StatusArchived, StatusPublished, false},
		{"archived to draft", StatusArchived, StatusDraft, false},
		{"no self transition", StatusDraft, StatusDraft, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestKindFromPath(t *testing.T) {
	kind, ok := KindFromPath("campsites")
	assert.True(t, ok)
	assert.Equal(t, KindCampsite, kind)

	kind, ok = KindFromPath("activities")
	assert.True(t, ok)
	assert.Equal(t, KindActivity, kind)

	kind, ok = KindFromPath("equipment")
	assert.True(t, ok)
	assert.Equal(t, KindEquipment, kind)

	_, ok = KindFromPath("boats")
	assert.False(t, ok)
}

func TestIsBookable(t *testing.T) {
	assert.True(t, (&Listing{Status: StatusPublished}).IsBookable())
	assert.False(t, (&Listing{Status: StatusDraft}).IsBookable())
	assert.False(t, (&Listing{Status: StatusArchived}).IsBookable())
}

func TestSortClause(t *testing.T) {
	assert.Equal(t, "created_at DESC", sortClause(""))
	assert.Equal(t, "created_at DESC", sortClause("created_at_desc"))
	assert.Equal(t, "created_at ASC", sortClause("created_at_asc"))
	assert.Equal(t, "unit_price ASC", sortClause("price_asc"))
	assert.Equal(t, "unit_price DESC", sortClause("price_desc"))
	assert.Equal(t, "name ASC", sortClause("name_asc"))
}
