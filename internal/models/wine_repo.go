package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type WinesRepo interface {
	GetWineByID(ctx context.Context, id string) (*Wine, error)
	GetWineBySlug(ctx context.Context, slug string) (*Wine, error)
	QueryWines(ctx context.Context, filter bson.M, sort bson.D, offset, limit int) ([]*Wine, int, error)
	ListAllWines(ctx context.Context) ([]*Wine, error)
	ListFeaturedWines(ctx context.Context) ([]*Wine, error)
	ListTopRatedWines(ctx context.Context, limit int) ([]*Wine, error)
	ListGrapeVarieties(ctx context.Context) ([]string, error)
	CreateWine(ctx context.Context, wine *Wine) (*Wine, error)
	UpdateWine(ctx context.Context, slug string, wine *Wine) (*Wine, error)
	DeleteWine(ctx context.Context, slug string) error
	CountWines(ctx context.Context) (int64, error)
}

func (mdb *MongodbRepo) GetWineByID(ctx context.Context, id string) (*Wine, error) {
	col, err := mdb.GetCollection(ctx, DBName, WinesColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var wine Wine
	if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&wine); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error finding wine %s: %v", id, err)
	}
	return &wine, nil
}

func (mdb *MongodbRepo) GetWineBySlug(ctx context.Context, slug string) (*Wine, error) {
	col, err := mdb.GetCollection(ctx, DBName, WinesColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var wine Wine
	if err := col.FindOne(ctx, bson.M{"slug": slug}).Decode(&wine); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error finding wine by slug %q: %v", slug, err)
	}
	return &wine, nil
}

// QueryWines runs an arbitrary filter with sort and pagination and returns the
// page plus the total match count.
func (mdb *MongodbRepo) QueryWines(ctx context.Context, filter bson.M, sort bson.D, offset, limit int) ([]*Wine, int, error) {
	col, err := mdb.GetCollection(ctx, DBName, WinesColName)
	if err != nil {
		return nil, 0, fmt.Errorf("error getting collection: %v", err)
	}

	total, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting wines: %v", err)
	}

	opts := options.Find().
		SetSort(sort).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying wines: %v", err)
	}
	defer cursor.Close(ctx)

	wines := []*Wine{}
	if err := cursor.All(ctx, &wines); err != nil {
		return nil, 0, fmt.Errorf("error decoding wines: %v", err)
	}
	return wines, int(total), nil
}

func (mdb *MongodbRepo) ListAllWines(ctx context.Context) ([]*Wine, error) {
	col, err := mdb.GetCollection(ctx, DBName, WinesColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing wines: %v", err)
	}
	defer cursor.Close(ctx)

	wines := []*Wine{}
	if err := cursor.All(ctx, &wines); err != nil {
		return nil, fmt.Errorf("error decoding wines: %v", err)
	}
	return wines, nil
}

func (mdb *MongodbRepo) ListFeaturedWines(ctx context.Context) ([]*Wine, error) {
	col, err := mdb.GetCollection(ctx, DBName, WinesColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, bson.M{"featured": true})
	if err != nil {
		return nil, fmt.Errorf("error listing featured wines: %v", err)
	}
	defer cursor.Close(ctx)

	wines := []*Wine{}
	if err := cursor.All(ctx, &wines); err != nil {
		return nil, fmt.Errorf("error decoding featured wines: %v", err)
	}
	return wines, nil
}

func (mdb *MongodbRepo) ListTopRatedWines(ctx context.Context, limit int) ([]*Wine, error) {
	col, err := mdb.GetCollection(ctx, DBName, WinesColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "rating", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := col.Find(ctx, bson.M{"rating": bson.M{"$ne": nil}}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing top rated wines: %v", err)
	}
	defer cursor.Close(ctx)

	wines := []*Wine{}
	if err := cursor.All(ctx, &wines); err != nil {
		return nil, fmt.Errorf("error decoding top rated wines: %v", err)
	}
	return wines, nil
}

func (mdb *MongodbRepo) ListGrapeVarieties(ctx context.Context) ([]string, error) {
	col, err := mdb.GetCollection(ctx, DBName, WinesColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	raw, err := col.Distinct(ctx, "grape_variety", bson.M{"grape_variety": bson.M{"$nin": bson.A{nil, ""}}})
	if err != nil {
		return nil, fmt.Errorf("error listing grape varieties: %v", err)
	}

	grapes := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			grapes = append(grapes, s)
		}
	}
	return grapes, nil
}

func (mdb *MongodbRepo) CreateWine(ctx context.Context, wine *Wine) (*Wine, error) {
	col, err := mdb.GetCollection(ctx, DBName, WinesColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if _, err := col.InsertOne(ctx, wine); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("error inserting wine: %v", err)
	}
	return wine, nil
}

func (mdb *MongodbRepo) UpdateWine(ctx context.Context, slug string, wine *Wine) (*Wine, error) {
	col, err := mdb.GetCollection(ctx, DBName, WinesColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	update := bson.M{"$set": bson.M{
		"name":               wine.Name,
		"description":        wine.Description,
		"short_description":  wine.ShortDescription,
		"image":              wine.Image,
		"price":              wine.Price,
		"sale":               wine.Sale,
		"sale_price":         wine.SalePrice,
		"type":               wine.Type,
		"stock_status":       wine.StockStatus,
		"stock_quantity":     wine.StockQuantity,
		"grape_variety":      wine.GrapeVariety,
		"year":               wine.Year,
		"alcohol":            wine.Alcohol,
		"acidity":            wine.Acidity,
		"sugar":              wine.Sugar,
		"flavor":             wine.Flavor,
		"quality_level":      wine.QualityLevel,
		"edition":            wine.Edition,
		"rating":             wine.Rating,
		"recommended_dishes": wine.RecommendedDishes,
		"tags":               wine.Tags,
		"featured":           wine.Featured,
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Wine
	if err := col.FindOneAndUpdate(ctx, bson.M{"slug": slug}, update, opts).Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error updating wine %q: %v", slug, err)
	}
	return &updated, nil
}

func (mdb *MongodbRepo) DeleteWine(ctx context.Context, slug string) error {
	col, err := mdb.GetCollection(ctx, DBName, WinesColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"slug": slug})
	if err != nil {
		return fmt.Errorf("error deleting wine %q: %v", slug, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (mdb *MongodbRepo) CountWines(ctx context.Context) (int64, error) {
	col, err := mdb.GetCollection(ctx, DBName, WinesColName)
	if err != nil {
		return 0, fmt.Errorf("error getting collection: %v", err)
	}
	return col.CountDocuments(ctx, bson.M{})
}
