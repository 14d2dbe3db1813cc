package models

import (
	"time"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
)

// Booking is created only as the side effect of a successful spot
// reservation. It never touches the event counter after creation.
type Booking struct {
	Id            string        `bson:"_id" json:"id"`
	EventId       string        `bson:"event_id" json:"event_id"`
	CustomerName  string        `bson:"customer_name" json:"customer_name"`
	CustomerEmail string        `bson:"customer_email" json:"customer_email"`
	CustomerPhone string        `bson:"customer_phone,omitempty" json:"customer_phone,omitempty"`
	Guests        int           `bson:"guests" json:"guests"`
	TotalPrice    float64       `bson:"total_price" json:"total_price"`
	Status        BookingStatus `bson:"status" json:"status"`
	CreatedAt     time.Time     `bson:"created_at" json:"created_at"`
}

// BookingRequest is the payload for reserving spots on an event.
type BookingRequest struct {
	EventId string `json:"event_id" validate:"required"`
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone,omitempty"`
	Guests  int    `json:"guests" validate:"required,gt=0"`
}
