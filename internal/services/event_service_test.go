package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrined/proProjectWineStore/internal/models"
)

func TestCreateBookingConfirms(t *testing.T) {
	store := newFakeEventStore(&models.Event{
		Id:             "e1",
		Title:          "Riesling Tasting",
		Slug:           "riesling-tasting",
		Date:           "2026-10-01",
		PricePerPerson: 35,
		TotalSpots:     20,
	})
	es := NewEventService(store, store, testLogger())

	booking, err := es.CreateBooking(context.Background(), &models.BookingRequest{
		EventId: "e1",
		Name:    "Anna Schmidt",
		Email:   "anna@example.com",
		Guests:  4,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, booking.Id)
	assert.Equal(t, "e1", booking.EventId)
	assert.Equal(t, models.BookingConfirmed, booking.Status)
	assert.Equal(t, 140.0, booking.TotalPrice)

	event, err := store.GetEventByID(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, 4, event.BookedSpots)

	bookings, err := es.ListBookingsForEvent(context.Background(), "riesling-tasting")
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

func TestCreateBookingNearCapacity(t *testing.T) {
	store := newFakeEventStore(&models.Event{
		Id:             "e1",
		Title:          "Winterfest",
		Slug:           "winterfest",
		Date:           "2026-12-05",
		PricePerPerson: 10,
		TotalSpots:     5,
		BookedSpots:    4,
	})
	es := NewEventService(store, store, testLogger())

	// the last spot can still be booked
	_, err := es.CreateBooking(context.Background(), &models.BookingRequest{
		EventId: "e1", Name: "A", Email: "a@example.com", Guests: 1,
	})
	require.NoError(t, err)

	// a party of two no longer fits
	_, err = es.CreateBooking(context.Background(), &models.BookingRequest{
		EventId: "e1", Name: "B", Email: "b@example.com", Guests: 2,
	})
	assert.ErrorIs(t, err, models.ErrSoldOut)

	event, err := store.GetEventByID(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, 5, event.BookedSpots)
}

func TestCreateBookingUnknownEvent(t *testing.T) {
	store := newFakeEventStore()
	es := NewEventService(store, store, testLogger())

	_, err := es.CreateBooking(context.Background(), &models.BookingRequest{
		EventId: "missing", Name: "A", Email: "a@example.com", Guests: 1,
	})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCreateBookingValidation(t *testing.T) {
	store := newFakeEventStore()
	es := NewEventService(store, store, testLogger())

	_, err := es.CreateBooking(context.Background(), &models.BookingRequest{
		EventId: "e1", Name: "A", Email: "not-an-email", Guests: 1,
	})
	assert.Error(t, err)

	_, err = es.CreateBooking(context.Background(), &models.BookingRequest{
		EventId: "e1", Name: "A", Email: "a@example.com", Guests: 0,
	})
	assert.Error(t, err)
}

func TestConcurrentBookingsNeverOversell(t *testing.T) {
	store := newFakeEventStore(&models.Event{
		Id:             "e1",
		Title:          "Sommerfest",
		Slug:           "sommerfest",
		Date:           "2026-09-10",
		PricePerPerson: 25,
		TotalSpots:     10,
	})
	es := NewEventService(store, store, testLogger())

	const attempts = 50
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = es.CreateBooking(context.Background(), &models.BookingRequest{
				EventId: "e1",
				Name:    "Guest",
				Email:   "guest@example.com",
				Guests:  1,
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, models.ErrSoldOut)
		}
	}
	assert.Equal(t, 10, succeeded)

	event, err := store.GetEventByID(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, 10, event.BookedSpots)

	bookings, err := store.ListBookingsByEvent(context.Background(), "e1")
	require.NoError(t, err)
	assert.Len(t, bookings, 10)
}

func TestListUpcomingEventsFiltersPast(t *testing.T) {
	store := newFakeEventStore(
		&models.Event{Id: "past", Slug: "past", Date: "2020-01-01"},
		&models.Event{Id: "future", Slug: "future", Date: "2099-01-01"},
	)
	es := NewEventService(store, store, testLogger())

	events, err := es.ListUpcomingEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "future", events[0].Id)
}

func TestCreateEventInitializesCounters(t *testing.T) {
	store := newFakeEventStore()
	es := NewEventService(store, store, testLogger())

	created, err := es.CreateEvent(context.Background(), &models.Event{
		Title:          "Herbst Weinwanderung",
		Date:           "2026-10-20",
		PricePerPerson: 15,
		TotalSpots:     30,
		BookedSpots:    99,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.Id)
	assert.Equal(t, "herbst-weinwanderung", created.Slug)
	assert.Equal(t, 0, created.BookedSpots)
	assert.Equal(t, models.CategoryOther, created.Category)
}
