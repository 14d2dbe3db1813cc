package models

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WineSearchRequest carries the optional catalog filters. All fields may be
// empty; gin binds them from the query string.
type WineSearchRequest struct {
	Search   string   `form:"search" json:"search,omitempty"`
	Category string   `form:"category" json:"category,omitempty"`
	Type     string   `form:"type" json:"type,omitempty"`
	Grape    string   `form:"grape" json:"grape,omitempty"`
	Flavor   string   `form:"flavor" json:"flavor,omitempty"`
	Quality  string   `form:"quality" json:"quality,omitempty"`
	Tag      string   `form:"tag" json:"tag,omitempty"`
	MinPrice *float64 `form:"minPrice" json:"min_price,omitempty"`
	MaxPrice *float64 `form:"maxPrice" json:"max_price,omitempty"`
	Sort     string   `form:"sort" json:"sort,omitempty"`
}

// containsPattern builds a case-insensitive substring regex with the needle
// escaped, so user input like "a+b" matches literally.
func containsPattern(needle string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(needle), Options: "i"}
}

func exactInsensitive(value string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(value) + "$", Options: "i"}
}

// BuildWineFilter translates a search request into a conjunction of bson
// predicates for the wines collection. Absent fields contribute nothing, and
// enum values that fail to parse are dropped silently instead of erroring:
// clients built against a newer catalog schema must keep working against this
// one. A wine matching the search term through several tags still matches the
// document once, so no explicit dedup step is needed.
func BuildWineFilter(req *WineSearchRequest) bson.M {
	filter := bson.M{}
	if req == nil {
		return filter
	}

	if search := strings.TrimSpace(req.Search); search != "" {
		pattern := containsPattern(search)
		filter["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"description": pattern},
			bson.M{"grape_variety": pattern},
			bson.M{"tags": pattern},
		}
	}

	// category wins over its alias when both are sent
	category := req.Category
	if strings.TrimSpace(category) == "" {
		category = req.Type
	}
	if strings.TrimSpace(category) != "" {
		if wineType, ok := ParseWineType(category); ok {
			filter["type"] = wineType
		}
	}

	if grape := strings.TrimSpace(req.Grape); grape != "" {
		filter["grape_variety"] = exactInsensitive(grape)
	}

	if flavorStr := strings.TrimSpace(req.Flavor); flavorStr != "" {
		if flavor, ok := ParseWineFlavor(flavorStr); ok {
			filter["flavor"] = flavor
		}
	}

	if tag := strings.TrimSpace(req.Tag); tag != "" {
		filter["tags"] = tag
	}

	// "quality" is a loose facet: it may live in the quality level or in the
	// edition label, so it matches either.
	if quality := strings.TrimSpace(req.Quality); quality != "" {
		pattern := containsPattern(quality)
		qualityClause := bson.A{
			bson.M{"quality_level": pattern},
			bson.M{"edition": pattern},
		}
		if existing, ok := filter["$or"]; ok {
			// both search and quality present: AND the two OR-groups
			filter["$and"] = bson.A{
				bson.M{"$or": existing},
				bson.M{"$or": qualityClause},
			}
			delete(filter, "$or")
		} else {
			filter["$or"] = qualityClause
		}
	}

	// price bounds apply to the list price, not the sale price
	price := bson.M{}
	if req.MinPrice != nil {
		price["$gte"] = *req.MinPrice
	}
	if req.MaxPrice != nil {
		price["$lte"] = *req.MaxPrice
	}
	if len(price) > 0 {
		filter["price"] = price
	}

	return filter
}

// WineSort maps the public sort keys to a mongo sort spec. Unknown keys fall
// back to newest-first.
func WineSort(sort string) bson.D {
	switch sort {
	case "price_asc":
		return bson.D{{Key: "price", Value: 1}}
	case "price_desc":
		return bson.D{{Key: "price", Value: -1}}
	case "rating":
		return bson.D{{Key: "rating", Value: -1}}
	default:
		return bson.D{{Key: "created_at", Value: -1}}
	}
}
