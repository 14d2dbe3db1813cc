package services

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/dmitrined/proProjectWineStore/internal/models"
)

// fakeWinesRepo is an in-memory stand-in for the wines collection.
type fakeWinesRepo struct {
	mu    sync.Mutex
	wines map[string]*models.Wine
}

func newFakeWinesRepo(wines ...*models.Wine) *fakeWinesRepo {
	repo := &fakeWinesRepo{wines: make(map[string]*models.Wine)}
	for _, w := range wines {
		repo.wines[w.Id] = w
	}
	return repo
}

func (f *fakeWinesRepo) GetWineByID(ctx context.Context, id string) (*models.Wine, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	wine, ok := f.wines[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return wine, nil
}

func (f *fakeWinesRepo) GetWineBySlug(ctx context.Context, slug string) (*models.Wine, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, wine := range f.wines {
		if wine.Slug == slug {
			return wine, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeWinesRepo) QueryWines(ctx context.Context, filter bson.M, sortSpec bson.D, offset, limit int) ([]*models.Wine, int, error) {
	all, _ := f.ListAllWines(ctx)
	return all, len(all), nil
}

func (f *fakeWinesRepo) ListAllWines(ctx context.Context) ([]*models.Wine, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	wines := make([]*models.Wine, 0, len(f.wines))
	for _, wine := range f.wines {
		wines = append(wines, wine)
	}
	// deterministic order for the scorer tests
	sort.Slice(wines, func(i, j int) bool { return wines[i].Id < wines[j].Id })
	return wines, nil
}

func (f *fakeWinesRepo) ListFeaturedWines(ctx context.Context) ([]*models.Wine, error) {
	all, _ := f.ListAllWines(ctx)
	var featured []*models.Wine
	for _, wine := range all {
		if wine.Featured {
			featured = append(featured, wine)
		}
	}
	return featured, nil
}

func (f *fakeWinesRepo) ListTopRatedWines(ctx context.Context, limit int) ([]*models.Wine, error) {
	all, _ := f.ListAllWines(ctx)
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeWinesRepo) ListGrapeVarieties(ctx context.Context) ([]string, error) {
	return nil, nil
}

func (f *fakeWinesRepo) CreateWine(ctx context.Context, wine *models.Wine) (*models.Wine, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.wines {
		if existing.Slug == wine.Slug {
			return nil, models.ErrSlugTaken
		}
	}
	f.wines[wine.Id] = wine
	return wine, nil
}

func (f *fakeWinesRepo) UpdateWine(ctx context.Context, slug string, wine *models.Wine) (*models.Wine, error) {
	existing, err := f.GetWineBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	wine.Id = existing.Id
	wine.Slug = slug
	f.wines[existing.Id] = wine
	return wine, nil
}

func (f *fakeWinesRepo) DeleteWine(ctx context.Context, slug string) error {
	existing, err := f.GetWineBySlug(ctx, slug)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.wines, existing.Id)
	return nil
}

func (f *fakeWinesRepo) CountWines(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.wines)), nil
}

// fakeEventStore implements the events and bookings repos with the same
// all-or-nothing reservation contract as the real store.
type fakeEventStore struct {
	mu       sync.Mutex
	events   map[string]*models.Event
	bookings []*models.Booking
}

func newFakeEventStore(events ...*models.Event) *fakeEventStore {
	store := &fakeEventStore{events: make(map[string]*models.Event)}
	for _, e := range events {
		store.events[e.Id] = e
	}
	return store
}

func (f *fakeEventStore) GetEventByID(ctx context.Context, id string) (*models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	event, ok := f.events[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	clone := *event
	return &clone, nil
}

func (f *fakeEventStore) GetEventBySlug(ctx context.Context, slug string) (*models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, event := range f.events {
		if event.Slug == slug {
			clone := *event
			return &clone, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeEventStore) ListUpcomingEvents(ctx context.Context, fromDate string) ([]*models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var upcoming []*models.Event
	for _, event := range f.events {
		if event.Date >= fromDate {
			clone := *event
			upcoming = append(upcoming, &clone)
		}
	}
	sort.Slice(upcoming, func(i, j int) bool { return upcoming[i].Date < upcoming[j].Date })
	return upcoming, nil
}

func (f *fakeEventStore) CreateEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.events {
		if existing.Slug == event.Slug {
			return nil, models.ErrSlugTaken
		}
	}
	f.events[event.Id] = event
	return event, nil
}

func (f *fakeEventStore) UpdateEvent(ctx context.Context, slug string, event *models.Event) (*models.Event, error) {
	existing, err := f.GetEventBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	event.Id = existing.Id
	event.Slug = slug
	event.BookedSpots = existing.BookedSpots
	f.events[existing.Id] = event
	return event, nil
}

func (f *fakeEventStore) DeleteEvent(ctx context.Context, slug string) error {
	existing, err := f.GetEventBySlug(ctx, slug)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.events, existing.Id)
	return nil
}

func (f *fakeEventStore) CountEvents(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.events)), nil
}

func (f *fakeEventStore) ReserveSpots(ctx context.Context, eventID string, booking *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	event, ok := f.events[eventID]
	if !ok {
		return models.ErrNotFound
	}
	if event.BookedSpots+booking.Guests > event.TotalSpots {
		return models.ErrSoldOut
	}
	event.BookedSpots += booking.Guests
	f.bookings = append(f.bookings, booking)
	return nil
}

func (f *fakeEventStore) ListBookingsByEvent(ctx context.Context, eventID string) ([]*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Booking
	for _, b := range f.bookings {
		if b.EventId == eventID {
			out = append(out, b)
		}
	}
	return out, nil
}
