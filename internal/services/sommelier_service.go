package services

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/dmitrined/proProjectWineStore/internal/models"
)

// SommelierRequest describes what the customer is eating and how much they
// want to spend.
type SommelierRequest struct {
	Dish       string `json:"dish" validate:"required"`
	Occasion   string `json:"occasion,omitempty"`
	PriceRange string `json:"priceRange,omitempty"`
	Mood       string `json:"mood,omitempty"`
}

// Recommendation is one scored wine with the human-readable reasons it was
// picked.
type Recommendation struct {
	Wine   *models.Wine `json:"wine"`
	Score  int          `json:"score"`
	Reason string       `json:"reason"`
}

// pairingRule maps a dish keyword to the wine types that classically go with
// it. Rules are ordered: the first keyword found in the dish wins, so "beef"
// beats "pasta" in "beef pasta".
type pairingRule struct {
	keyword string
	types   []models.WineType
}

var pairingRules = []pairingRule{
	{"steak", []models.WineType{models.WineTypeRed}},
	{"beef", []models.WineType{models.WineTypeRed}},
	{"lamb", []models.WineType{models.WineTypeRed}},
	{"fish", []models.WineType{models.WineTypeWhite, models.WineTypeSparkling, models.WineTypeRose}},
	{"seafood", []models.WineType{models.WineTypeWhite, models.WineTypeSparkling}},
	{"sushi", []models.WineType{models.WineTypeWhite, models.WineTypeSparkling}},
	{"chicken", []models.WineType{models.WineTypeWhite, models.WineTypeRose, models.WineTypeRed}},
	{"duck", []models.WineType{models.WineTypeRed, models.WineTypeRose}},
	{"pasta", []models.WineType{models.WineTypeRed, models.WineTypeWhite}},
	{"pizza", []models.WineType{models.WineTypeRed, models.WineTypeRose}},
	{"cheese", []models.WineType{models.WineTypeRed, models.WineTypeWhite}},
	{"dessert", []models.WineType{models.WineTypeWhite, models.WineTypeSparkling}},
	{"cake", []models.WineType{models.WineTypeWhite, models.WineTypeSparkling}},
}

const maxRecommendations = 3

// SommelierService scores the whole catalog against a dish and returns the
// best matches. Scoring is deterministic: the same catalog and request always
// produce the same result.
type SommelierService struct {
	winesRepo models.WinesRepo
}

func NewSommelierService(winesRepo models.WinesRepo) *SommelierService {
	return &SommelierService{winesRepo: winesRepo}
}

// Recommend returns up to three wines ranked by pairing score. Wines that
// score zero are never recommended.
func (ss *SommelierService) Recommend(ctx context.Context, req *SommelierRequest) ([]Recommendation, error) {
	if err := models.Validate.Struct(req); err != nil {
		return nil, err
	}

	wines, err := ss.winesRepo.ListAllWines(ctx)
	if err != nil {
		return nil, err
	}

	dish := strings.ToLower(strings.TrimSpace(req.Dish))
	pairedTypes := matchPairing(dish)

	recs := make([]Recommendation, 0, len(wines))
	for _, wine := range wines {
		score, reasons := scoreWine(wine, dish, pairedTypes, req.PriceRange)
		if score <= 0 {
			continue
		}
		if len(reasons) == 0 {
			reasons = append(reasons, "General recommendation")
		}
		recs = append(recs, Recommendation{
			Wine:   wine,
			Score:  score,
			Reason: strings.Join(reasons, ". ") + ".",
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs, nil
}

// matchPairing returns the wine types paired with the first rule keyword
// found in the dish, or nil when no rule applies.
func matchPairing(dish string) []models.WineType {
	for _, rule := range pairingRules {
		if strings.Contains(dish, rule.keyword) {
			return rule.types
		}
	}
	return nil
}

func scoreWine(wine *models.Wine, dish string, pairedTypes []models.WineType, priceRange string) (int, []string) {
	score := 0
	var reasons []string

	if dishMatches(wine.RecommendedDishes, dish) {
		score += 50
		reasons = append(reasons, "Recommended for this dish by our sommelier")
	}

	for _, t := range pairedTypes {
		if wine.Type == t {
			score += 30
			reasons = append(reasons, "Classic pairing for this kind of dish")
			break
		}
	}

	if priceInRange(wine.Price, priceRange) {
		score += 20
		reasons = append(reasons, "Fits your budget")
	}

	if wine.Featured {
		score += 5
	}
	if wine.Rating != nil {
		score += int(math.Floor(*wine.Rating * 2))
	}

	return score, reasons
}

// dishMatches checks the wine's recommended dishes against the requested one,
// matching either direction so "steak" hits "grilled steak" and vice versa.
func dishMatches(recommended []string, dish string) bool {
	if dish == "" {
		return false
	}
	for _, rec := range recommended {
		r := strings.ToLower(strings.TrimSpace(rec))
		if r == "" {
			continue
		}
		if r == dish || strings.Contains(r, dish) || strings.Contains(dish, r) {
			return true
		}
	}
	return false
}

// priceInRange buckets the list price, not the sale price: the budget hint is
// about the wine's class, not today's discount.
func priceInRange(price float64, priceRange string) bool {
	switch strings.ToLower(strings.TrimSpace(priceRange)) {
	case "under-20":
		return price <= 20
	case "20-50":
		return price > 20 && price <= 50
	case "50-plus":
		return price > 50
	}
	return false
}
