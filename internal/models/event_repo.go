package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EventsRepo interface {
	GetEventByID(ctx context.Context, id string) (*Event, error)
	GetEventBySlug(ctx context.Context, slug string) (*Event, error)
	ListUpcomingEvents(ctx context.Context, fromDate string) ([]*Event, error)
	CreateEvent(ctx context.Context, event *Event) (*Event, error)
	UpdateEvent(ctx context.Context, slug string, event *Event) (*Event, error)
	DeleteEvent(ctx context.Context, slug string) error
	CountEvents(ctx context.Context) (int64, error)
}

type BookingsRepo interface {
	ReserveSpots(ctx context.Context, eventID string, booking *Booking) error
	ListBookingsByEvent(ctx context.Context, eventID string) ([]*Booking, error)
}

func (mdb *MongodbRepo) GetEventByID(ctx context.Context, id string) (*Event, error) {
	col, err := mdb.GetCollection(ctx, DBName, EventsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var event Event
	if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&event); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error finding event %s: %v", id, err)
	}
	return &event, nil
}

func (mdb *MongodbRepo) GetEventBySlug(ctx context.Context, slug string) (*Event, error) {
	col, err := mdb.GetCollection(ctx, DBName, EventsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var event Event
	if err := col.FindOne(ctx, bson.M{"slug": slug}).Decode(&event); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error finding event by slug %q: %v", slug, err)
	}
	return &event, nil
}

// ListUpcomingEvents returns events on or after fromDate (YYYY-MM-DD), oldest
// first. Dates are stored in ISO form so a string comparison orders correctly.
func (mdb *MongodbRepo) ListUpcomingEvents(ctx context.Context, fromDate string) ([]*Event, error) {
	col, err := mdb.GetCollection(ctx, DBName, EventsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := col.Find(ctx, bson.M{"date": bson.M{"$gte": fromDate}}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing events: %v", err)
	}
	defer cursor.Close(ctx)

	events := []*Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("error decoding events: %v", err)
	}
	return events, nil
}

func (mdb *MongodbRepo) CreateEvent(ctx context.Context, event *Event) (*Event, error) {
	col, err := mdb.GetCollection(ctx, DBName, EventsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if _, err := col.InsertOne(ctx, event); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("error inserting event: %v", err)
	}
	return event, nil
}

func (mdb *MongodbRepo) UpdateEvent(ctx context.Context, slug string, event *Event) (*Event, error) {
	col, err := mdb.GetCollection(ctx, DBName, EventsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	// booked_spots is deliberately not settable here: only ReserveSpots moves
	// the counter.
	update := bson.M{"$set": bson.M{
		"title":            event.Title,
		"description":      event.Description,
		"date":             event.Date,
		"time":             event.Time,
		"location":         event.Location,
		"image":            event.Image,
		"price_per_person": event.PricePerPerson,
		"total_spots":      event.TotalSpots,
		"category":         event.Category,
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Event
	if err := col.FindOneAndUpdate(ctx, bson.M{"slug": slug}, update, opts).Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error updating event %q: %v", slug, err)
	}
	return &updated, nil
}

// DeleteEvent removes the event and cascades to its bookings: an event owns
// its bookings outright.
func (mdb *MongodbRepo) DeleteEvent(ctx context.Context, slug string) error {
	events, err := mdb.GetCollection(ctx, DBName, EventsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}
	bookings, err := mdb.GetCollection(ctx, DBName, BookingsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	var event Event
	if err := events.FindOneAndDelete(ctx, bson.M{"slug": slug}).Decode(&event); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return fmt.Errorf("error deleting event %q: %v", slug, err)
	}

	if _, err := bookings.DeleteMany(ctx, bson.M{"event_id": event.Id}); err != nil {
		return fmt.Errorf("error cascading bookings for event %s: %v", event.Id, err)
	}
	return nil
}

func (mdb *MongodbRepo) CountEvents(ctx context.Context) (int64, error) {
	col, err := mdb.GetCollection(ctx, DBName, EventsColName)
	if err != nil {
		return 0, fmt.Errorf("error getting collection: %v", err)
	}
	return col.CountDocuments(ctx, bson.M{})
}

// ReserveSpots atomically claims booking.Guests spots on an event and records
// the booking, in one transaction.
//
// The capacity check and the increment are a single conditional UpdateOne: the
// filter only matches when booked_spots + guests still fits under total_spots,
// so two concurrent reservations for the last spots can never both succeed;
// there is no read-then-write window. A zero match count means either the
// event does not exist (ErrNotFound) or the spots ran out (ErrSoldOut); a
// follow-up existence check tells the two apart. If the booking insert fails
// after the increment, the transaction abort restores the counter.
func (mdb *MongodbRepo) ReserveSpots(ctx context.Context, eventID string, booking *Booking) error {
	events, err := mdb.GetCollection(ctx, DBName, EventsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}
	bookings, err := mdb.GetCollection(ctx, DBName, BookingsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	session, err := mdb.mongodbClient.StartSession()
	if err != nil {
		return fmt.Errorf("error starting session: %v", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		filter := bson.M{
			"_id": eventID,
			"$expr": bson.M{
				"$lte": bson.A{
					bson.M{"$add": bson.A{"$booked_spots", booking.Guests}},
					"$total_spots",
				},
			},
		}
		update := bson.M{"$inc": bson.M{"booked_spots": booking.Guests}}

		res, err := events.UpdateOne(sessCtx, filter, update)
		if err != nil {
			return nil, fmt.Errorf("error incrementing booked spots: %v", err)
		}

		if res.MatchedCount == 0 {
			count, err := events.CountDocuments(sessCtx, bson.M{"_id": eventID})
			if err != nil {
				return nil, fmt.Errorf("error checking event existence: %v", err)
			}
			if count == 0 {
				return nil, ErrNotFound
			}
			return nil, ErrSoldOut
		}

		if _, err := bookings.InsertOne(sessCtx, booking); err != nil {
			return nil, fmt.Errorf("error inserting booking: %v", err)
		}
		return nil, nil
	})
	return err
}

func (mdb *MongodbRepo) ListBookingsByEvent(ctx context.Context, eventID string) ([]*Booking, error) {
	col, err := mdb.GetCollection(ctx, DBName, BookingsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := col.Find(ctx, bson.M{"event_id": eventID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing bookings: %v", err)
	}
	defer cursor.Close(ctx)

	list := []*Booking{}
	if err := cursor.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %v", err)
	}
	return list, nil
}
