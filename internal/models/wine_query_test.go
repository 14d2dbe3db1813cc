package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildWineFilterEmpty(t *testing.T) {
	assert.Equal(t, bson.M{}, BuildWineFilter(nil))
	assert.Equal(t, bson.M{}, BuildWineFilter(&WineSearchRequest{}))
}

func TestBuildWineFilterSearch(t *testing.T) {
	filter := BuildWineFilter(&WineSearchRequest{Search: "riesling"})

	or, ok := filter["$or"].(bson.A)
	assert.True(t, ok)
	assert.Len(t, or, 4)

	fields := make([]string, 0, len(or))
	for _, clause := range or {
		m := clause.(bson.M)
		for field, v := range m {
			fields = append(fields, field)
			re := v.(primitive.Regex)
			assert.Equal(t, "riesling", re.Pattern)
			assert.Equal(t, "i", re.Options)
		}
	}
	assert.ElementsMatch(t, []string{"name", "description", "grape_variety", "tags"}, fields)
}

func TestBuildWineFilterSearchEscapesRegex(t *testing.T) {
	filter := BuildWineFilter(&WineSearchRequest{Search: "a+b"})
	or := filter["$or"].(bson.A)
	re := or[0].(bson.M)["name"].(primitive.Regex)
	assert.Equal(t, `a\+b`, re.Pattern)
}

func TestBuildWineFilterCategory(t *testing.T) {
	filter := BuildWineFilter(&WineSearchRequest{Category: "red"})
	assert.Equal(t, WineTypeRed, filter["type"])

	// type is an alias for category
	filter = BuildWineFilter(&WineSearchRequest{Type: "white"})
	assert.Equal(t, WineTypeWhite, filter["type"])

	// category wins when both are sent
	filter = BuildWineFilter(&WineSearchRequest{Category: "red", Type: "white"})
	assert.Equal(t, WineTypeRed, filter["type"])
}

func TestBuildWineFilterUnknownEnumsDropped(t *testing.T) {
	filter := BuildWineFilter(&WineSearchRequest{Category: "orange", Flavor: "dry"})
	assert.Equal(t, bson.M{}, filter)
}

func TestBuildWineFilterGrapeExactInsensitive(t *testing.T) {
	filter := BuildWineFilter(&WineSearchRequest{Grape: "Riesling"})
	re := filter["grape_variety"].(primitive.Regex)
	assert.Equal(t, "^Riesling$", re.Pattern)
	assert.Equal(t, "i", re.Options)
}

func TestBuildWineFilterFlavorAndTag(t *testing.T) {
	filter := BuildWineFilter(&WineSearchRequest{Flavor: "trocken", Tag: "bio"})
	assert.Equal(t, FlavorTrocken, filter["flavor"])
	assert.Equal(t, "bio", filter["tags"])
}

func TestBuildWineFilterQuality(t *testing.T) {
	filter := BuildWineFilter(&WineSearchRequest{Quality: "Kabinett"})

	or, ok := filter["$or"].(bson.A)
	assert.True(t, ok)
	assert.Len(t, or, 2)
	assert.Contains(t, or[0].(bson.M), "quality_level")
	assert.Contains(t, or[1].(bson.M), "edition")
}

func TestBuildWineFilterSearchAndQualityCombine(t *testing.T) {
	filter := BuildWineFilter(&WineSearchRequest{Search: "riesling", Quality: "Kabinett"})

	// the two OR-groups must be ANDed, not merged
	assert.NotContains(t, filter, "$or")
	and, ok := filter["$and"].(bson.A)
	assert.True(t, ok)
	assert.Len(t, and, 2)
	assert.Len(t, and[0].(bson.M)["$or"], 4)
	assert.Len(t, and[1].(bson.M)["$or"], 2)
}

func TestBuildWineFilterPriceBounds(t *testing.T) {
	filter := BuildWineFilter(&WineSearchRequest{MinPrice: floatPtr(10), MaxPrice: floatPtr(30)})
	assert.Equal(t, bson.M{"$gte": 10.0, "$lte": 30.0}, filter["price"])

	filter = BuildWineFilter(&WineSearchRequest{MinPrice: floatPtr(10)})
	assert.Equal(t, bson.M{"$gte": 10.0}, filter["price"])
}

func TestWineSort(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "price", Value: 1}}, WineSort("price_asc"))
	assert.Equal(t, bson.D{{Key: "price", Value: -1}}, WineSort("price_desc"))
	assert.Equal(t, bson.D{{Key: "rating", Value: -1}}, WineSort("rating"))
	assert.Equal(t, bson.D{{Key: "created_at", Value: -1}}, WineSort(""))
	assert.Equal(t, bson.D{{Key: "created_at", Value: -1}}, WineSort("bogus"))
}
