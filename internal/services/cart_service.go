package services

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/dmitrined/proProjectWineStore/internal/models"
)

// CartRequest is the client's cart snapshot: product ids and quantities only.
// Prices are never trusted from the client.
type CartRequest struct {
	Items []CartItem `json:"items" validate:"dive"`
}

type CartItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity" validate:"gt=0"`
}

// CartLineResult is one priced cart line as the store sees it right now.
type CartLineResult struct {
	ProductID   string  `json:"productId"`
	Name        string  `json:"name"`
	Image       string  `json:"image,omitempty"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
	LineTotal   float64 `json:"lineTotal"`
	StockStatus string  `json:"stockStatus"`
	Available   bool    `json:"available"`
}

type CartResult struct {
	Items        []CartLineResult `json:"items"`
	Total        float64          `json:"total"`
	AllAvailable bool             `json:"allAvailable"`
}

// CartService prices carts against the current catalog.
type CartService struct {
	winesRepo models.WinesRepo
	logger    *slog.Logger
}

func NewCartService(winesRepo models.WinesRepo, logger *slog.Logger) *CartService {
	return &CartService{winesRepo: winesRepo, logger: logger}
}

// Calculate reprices every line against the catalog. It never short-circuits:
// every line gets checked so the client learns about all problems at once. A
// line without a product id is dropped from the response, a line whose product
// no longer exists is returned as an unavailable placeholder; both flip
// allAvailable off.
func (cs *CartService) Calculate(ctx context.Context, req *CartRequest) (*CartResult, error) {
	if err := models.Validate.Struct(req); err != nil {
		return nil, err
	}

	result := &CartResult{
		Items:        make([]CartLineResult, 0, len(req.Items)),
		AllAvailable: true,
	}
	total := decimal.Zero

	for _, item := range req.Items {
		if item.ProductID == "" {
			result.AllAvailable = false
			continue
		}

		wine, err := cs.winesRepo.GetWineByID(ctx, item.ProductID)
		if err != nil {
			if err != models.ErrNotFound {
				return nil, err
			}
			cs.logger.Warn("cart references unknown product", "product_id", item.ProductID)
			result.Items = append(result.Items, CartLineResult{
				ProductID:   item.ProductID,
				Name:        "Unknown Product",
				UnitPrice:   0,
				Quantity:    item.Quantity,
				LineTotal:   0,
				StockStatus: string(models.StockOutOfStock),
				Available:   false,
			})
			result.AllAvailable = false
			continue
		}

		unitPrice := wine.EffectivePrice()
		lineTotal := unitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		available := wine.IsAvailable(item.Quantity)
		if !available {
			result.AllAvailable = false
		}

		total = total.Add(lineTotal)
		result.Items = append(result.Items, CartLineResult{
			ProductID:   wine.Id,
			Name:        wine.Name,
			Image:       wine.Image,
			UnitPrice:   unitPrice.InexactFloat64(),
			Quantity:    item.Quantity,
			LineTotal:   lineTotal.InexactFloat64(),
			StockStatus: string(wine.StockStatus),
			Available:   available,
		})
	}

	result.Total = total.InexactFloat64()
	return result, nil
}
