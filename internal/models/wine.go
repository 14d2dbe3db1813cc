package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type WineType string

const (
	WineTypeRed       WineType = "RED"
	WineTypeWhite     WineType = "WHITE"
	WineTypeRose      WineType = "ROSE"
	WineTypeSparkling WineType = "SPARKLING"
	WineTypeOther     WineType = "OTHER"
)

// ParseWineType maps a free-form string to a WineType. Unknown values map to
// OTHER; the second return reports whether the input named a real type, so
// filter code can tell "OTHER" apart from "unparsable".
func ParseWineType(s string) (WineType, bool) {
	switch WineType(strings.ToUpper(strings.TrimSpace(s))) {
	case WineTypeRed:
		return WineTypeRed, true
	case WineTypeWhite:
		return WineTypeWhite, true
	case WineTypeRose:
		return WineTypeRose, true
	case WineTypeSparkling:
		return WineTypeSparkling, true
	case WineTypeOther:
		return WineTypeOther, true
	}
	return WineTypeOther, false
}

// WineFlavor is the German sweetness scale the shop labels wines with.
type WineFlavor string

const (
	FlavorTrocken     WineFlavor = "TROCKEN"
	FlavorHalbtrocken WineFlavor = "HALBTROCKEN"
	FlavorFeinherb    WineFlavor = "FEINHERB"
	FlavorLieblich    WineFlavor = "LIEBLICH"
	FlavorSuess       WineFlavor = "SUESS"
)

func ParseWineFlavor(s string) (WineFlavor, bool) {
	switch WineFlavor(strings.ToUpper(strings.TrimSpace(s))) {
	case FlavorTrocken:
		return FlavorTrocken, true
	case FlavorHalbtrocken:
		return FlavorHalbtrocken, true
	case FlavorFeinherb:
		return FlavorFeinherb, true
	case FlavorLieblich:
		return FlavorLieblich, true
	case FlavorSuess:
		return FlavorSuess, true
	}
	return "", false
}

type StockStatus string

const (
	StockInStock    StockStatus = "IN_STOCK"
	StockOutOfStock StockStatus = "OUT_OF_STOCK"
	StockOnDemand   StockStatus = "ON_DEMAND"
)

// ParseStockStatus defaults to OUT_OF_STOCK so malformed seed data errs on the
// side of not selling what we may not have.
func ParseStockStatus(s string) StockStatus {
	switch StockStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case StockInStock:
		return StockInStock
	case StockOnDemand:
		return StockOnDemand
	}
	return StockOutOfStock
}

type Wine struct {
	Id                string      `bson:"_id" json:"id"`
	Name              string      `bson:"name" json:"name" validate:"required"`
	Slug              string      `bson:"slug" json:"slug,omitempty"`
	Description       string      `bson:"description,omitempty" json:"description,omitempty"`
	ShortDescription  string      `bson:"short_description,omitempty" json:"short_description,omitempty"`
	Image             string      `bson:"image,omitempty" json:"image,omitempty"`
	Price             float64     `bson:"price" json:"price" validate:"gte=0"`
	Sale              bool        `bson:"sale" json:"sale"`
	SalePrice         *float64    `bson:"sale_price,omitempty" json:"sale_price,omitempty"`
	Type              WineType    `bson:"type" json:"type"`
	StockStatus       StockStatus `bson:"stock_status" json:"stock_status"`
	StockQuantity     *int        `bson:"stock_quantity,omitempty" json:"stock_quantity,omitempty"`
	GrapeVariety      string      `bson:"grape_variety,omitempty" json:"grape_variety,omitempty"`
	Year              *int        `bson:"year,omitempty" json:"year,omitempty"`
	Alcohol           string      `bson:"alcohol,omitempty" json:"alcohol,omitempty"`
	Acidity           string      `bson:"acidity,omitempty" json:"acidity,omitempty"`
	Sugar             string      `bson:"sugar,omitempty" json:"sugar,omitempty"`
	Flavor            *WineFlavor `bson:"flavor,omitempty" json:"flavor,omitempty"`
	QualityLevel      string      `bson:"quality_level,omitempty" json:"quality_level,omitempty"`
	Edition           string      `bson:"edition,omitempty" json:"edition,omitempty"`
	Rating            *float64    `bson:"rating,omitempty" json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	RecommendedDishes []string    `bson:"recommended_dishes,omitempty" json:"recommended_dishes,omitempty"`
	Tags              []string    `bson:"tags,omitempty" json:"tags,omitempty"`
	Featured          bool        `bson:"featured" json:"featured"`
	CreatedAt         time.Time   `bson:"created_at" json:"created_at"`
}

// EffectivePrice is the unit price actually charged: the sale price when the
// wine is on sale and the sale price is set and positive, the list price
// otherwise. A missing list price counts as zero rather than failing.
func (w *Wine) EffectivePrice() decimal.Decimal {
	if w.Sale && w.SalePrice != nil && *w.SalePrice > 0 {
		return decimal.NewFromFloat(*w.SalePrice)
	}
	if w.Price < 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(w.Price)
}

// IsAvailable reports whether the requested quantity can be fulfilled right
// now. ON_DEMAND and OUT_OF_STOCK never count as available no matter what the
// quantity bookkeeping says.
func (w *Wine) IsAvailable(quantity int) bool {
	return w.StockStatus == StockInStock &&
		w.StockQuantity != nil &&
		*w.StockQuantity >= quantity
}
