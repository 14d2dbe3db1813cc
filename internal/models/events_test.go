package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEventCategory(t *testing.T) {
	assert.Equal(t, CategoryTasting, ParseEventCategory("tasting"))
	assert.Equal(t, CategoryFestival, ParseEventCategory(" FESTIVAL "))
	assert.Equal(t, CategoryOther, ParseEventCategory("wine-walk"))
	assert.Equal(t, CategoryOther, ParseEventCategory(""))
}

func TestEventRemaining(t *testing.T) {
	event := Event{TotalSpots: 20, BookedSpots: 14}
	assert.Equal(t, 6, event.Remaining())
	assert.False(t, event.IsFull())

	event.BookedSpots = 20
	assert.Equal(t, 0, event.Remaining())
	assert.True(t, event.IsFull())
}
