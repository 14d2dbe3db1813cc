package models

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Validate = validator.New()

const (
	DBName          = "winestore"
	WinesColName    = "wines"
	EventsColName   = "events"
	BookingsColName = "bookings"
)

type MongodbRepo struct {
	mongodbClient *mongo.Client
}

func MongodbNewRepo(mongodbClient *mongo.Client) *MongodbRepo {
	return &MongodbRepo{
		mongodbClient: mongodbClient,
	}
}

func (mdb *MongodbRepo) GetCollection(ctx context.Context, dbName, colName string) (*mongo.Collection, error) {
	if mdb.mongodbClient == nil {
		return nil, fmt.Errorf("mongodb client is not initialized")
	}
	return mdb.mongodbClient.Database(dbName).Collection(colName), nil
}

// EnsureIndexes creates the unique slug indexes and the booking lookup index.
func (mdb *MongodbRepo) EnsureIndexes(ctx context.Context) error {
	wines, err := mdb.GetCollection(ctx, DBName, WinesColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}
	_, err = wines.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("wine_slug_unique"),
		},
		{
			Keys:    bson.D{{Key: "featured", Value: 1}},
			Options: options.Index().SetName("wine_featured_idx"),
		},
	})
	if err != nil {
		return fmt.Errorf("error creating wine indexes: %v", err)
	}

	events, err := mdb.GetCollection(ctx, DBName, EventsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}
	_, err = events.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("event_slug_unique"),
		},
		{
			Keys:    bson.D{{Key: "date", Value: 1}},
			Options: options.Index().SetName("event_date_idx"),
		},
	})
	if err != nil {
		return fmt.Errorf("error creating event indexes: %v", err)
	}

	bookings, err := mdb.GetCollection(ctx, DBName, BookingsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}
	_, err = bookings.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "event_id", Value: 1}},
		Options: options.Index().SetName("booking_event_idx"),
	})
	if err != nil {
		return fmt.Errorf("error creating booking indexes: %v", err)
	}

	return nil
}
