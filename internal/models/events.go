package models

import (
	"strings"
	"time"
)

type EventCategory string

const (
	CategoryTasting   EventCategory = "TASTING"
	CategoryFestival  EventCategory = "FESTIVAL"
	CategoryAfterwork EventCategory = "AFTERWORK"
	CategoryPairing   EventCategory = "PAIRING"
	CategoryOther     EventCategory = "OTHER"
)

// ParseEventCategory defaults unknown input to OTHER instead of rejecting it.
func ParseEventCategory(s string) EventCategory {
	switch EventCategory(strings.ToUpper(strings.TrimSpace(s))) {
	case CategoryTasting:
		return CategoryTasting
	case CategoryFestival:
		return CategoryFestival
	case CategoryAfterwork:
		return CategoryAfterwork
	case CategoryPairing:
		return CategoryPairing
	}
	return CategoryOther
}

type Event struct {
	Id             string        `bson:"_id" json:"id"`
	Title          string        `bson:"title" json:"title" validate:"required"`
	Slug           string        `bson:"slug" json:"slug,omitempty"`
	Description    string        `bson:"description,omitempty" json:"description,omitempty"`
	Date           string        `bson:"date" json:"date"` // YYYY-MM-DD
	Time           string        `bson:"time,omitempty" json:"time,omitempty"`
	Location       string        `bson:"location,omitempty" json:"location,omitempty"`
	Image          string        `bson:"image,omitempty" json:"image,omitempty"`
	PricePerPerson float64       `bson:"price_per_person" json:"price_per_person" validate:"gte=0"`
	TotalSpots     int           `bson:"total_spots" json:"total_spots" validate:"gt=0"`
	BookedSpots    int           `bson:"booked_spots" json:"booked_spots" validate:"gte=0"`
	Category       EventCategory `bson:"category" json:"category"`
	CreatedAt      time.Time     `bson:"created_at" json:"created_at"`
}

// Remaining returns the number of spots still open.
func (e *Event) Remaining() int {
	return e.TotalSpots - e.BookedSpots
}

// IsFull reports whether the event has no spots left.
func (e *Event) IsFull() bool {
	return e.BookedSpots >= e.TotalSpots
}
