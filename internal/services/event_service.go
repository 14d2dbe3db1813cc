package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dmitrined/proProjectWineStore/internal/helpers"
	"github.com/dmitrined/proProjectWineStore/internal/models"
)

// EventService serves the public event listing and runs the booking flow. All
// seat accounting happens in the repo's conditional reservation, so two
// concurrent bookings can never oversell an event.
type EventService struct {
	eventsRepo   models.EventsRepo
	bookingsRepo models.BookingsRepo
	logger       *slog.Logger
}

func NewEventService(eventsRepo models.EventsRepo, bookingsRepo models.BookingsRepo, logger *slog.Logger) *EventService {
	return &EventService{
		eventsRepo:   eventsRepo,
		bookingsRepo: bookingsRepo,
		logger:       logger,
	}
}

// ListUpcomingEvents returns events from yesterday on, so an event happening
// today still shows up regardless of the server's timezone.
func (es *EventService) ListUpcomingEvents(ctx context.Context) ([]*models.Event, error) {
	fromDate := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	return es.eventsRepo.ListUpcomingEvents(ctx, fromDate)
}

func (es *EventService) GetEventBySlug(ctx context.Context, slug string) (*models.Event, error) {
	if slug == "" {
		return nil, fmt.Errorf("event slug is required")
	}
	return es.eventsRepo.GetEventBySlug(ctx, slug)
}

// CreateBooking reserves spots for the request and records the booking. The
// price is computed server-side from the event's current price per person.
// The reservation and the booking record commit together or not at all.
func (es *EventService) CreateBooking(ctx context.Context, req *models.BookingRequest) (*models.Booking, error) {
	if err := models.Validate.Struct(req); err != nil {
		return nil, err
	}

	event, err := es.eventsRepo.GetEventByID(ctx, req.EventId)
	if err != nil {
		return nil, err
	}

	totalPrice := decimal.NewFromFloat(event.PricePerPerson).
		Mul(decimal.NewFromInt(int64(req.Guests)))

	booking := &models.Booking{
		Id:            uuid.New().String(),
		EventId:       event.Id,
		CustomerName:  req.Name,
		CustomerEmail: req.Email,
		CustomerPhone: req.Phone,
		Guests:        req.Guests,
		TotalPrice:    totalPrice.InexactFloat64(),
		Status:        models.BookingConfirmed,
		CreatedAt:     time.Now(),
	}

	if err := es.bookingsRepo.ReserveSpots(ctx, event.Id, booking); err != nil {
		return nil, err
	}

	es.logger.Info("booking confirmed",
		"booking_id", booking.Id,
		"event_id", event.Id,
		"guests", booking.Guests,
	)
	return booking, nil
}

func (es *EventService) ListBookingsForEvent(ctx context.Context, slug string) ([]*models.Booking, error) {
	event, err := es.GetEventBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return es.bookingsRepo.ListBookingsByEvent(ctx, event.Id)
}

func (es *EventService) CreateEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	if err := models.Validate.Struct(event); err != nil {
		return nil, fmt.Errorf("invalid event data provided: %v", err)
	}

	if event.Id == "" {
		event.Id = uuid.New().String()
	}
	if event.Slug == "" {
		event.Slug = helpers.GenerateSlug(event.Title)
	}
	if event.Category == "" {
		event.Category = models.CategoryOther
	}
	event.BookedSpots = 0
	event.CreatedAt = time.Now()

	return es.eventsRepo.CreateEvent(ctx, event)
}

func (es *EventService) UpdateEvent(ctx context.Context, slug string, event *models.Event) (*models.Event, error) {
	if slug == "" {
		return nil, fmt.Errorf("event slug is required")
	}
	if err := models.Validate.Struct(event); err != nil {
		return nil, fmt.Errorf("invalid event data provided: %v", err)
	}
	return es.eventsRepo.UpdateEvent(ctx, slug, event)
}

func (es *EventService) DeleteEvent(ctx context.Context, slug string) error {
	if slug == "" {
		return fmt.Errorf("event slug is required")
	}
	return es.eventsRepo.DeleteEvent(ctx, slug)
}
