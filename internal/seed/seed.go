package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrined/proProjectWineStore/internal/helpers"
	"github.com/dmitrined/proProjectWineStore/internal/models"
)

// wineSeed mirrors the catalog JSON files, which use free-form strings for
// the enum fields.
type wineSeed struct {
	Name              string   `json:"name"`
	Slug              string   `json:"slug"`
	Description       string   `json:"description"`
	ShortDescription  string   `json:"short_description"`
	Image             string   `json:"image"`
	Price             float64  `json:"price"`
	Sale              bool     `json:"sale"`
	SalePrice         *float64 `json:"sale_price"`
	Type              string   `json:"type"`
	StockStatus       string   `json:"stock_status"`
	StockQuantity     *int     `json:"stock_quantity"`
	GrapeVariety      string   `json:"grape_variety"`
	Year              *int     `json:"year"`
	Alcohol           string   `json:"alcohol"`
	Acidity           string   `json:"acidity"`
	Sugar             string   `json:"sugar"`
	Flavor            string   `json:"flavor"`
	QualityLevel      string   `json:"quality_level"`
	Edition           string   `json:"edition"`
	Rating            *float64 `json:"rating"`
	RecommendedDishes []string `json:"recommended_dishes"`
	Tags              []string `json:"tags"`
	Featured          bool     `json:"featured"`
}

type eventSeed struct {
	Title          string  `json:"title"`
	Slug           string  `json:"slug"`
	Description    string  `json:"description"`
	Date           string  `json:"date"`
	Time           string  `json:"time"`
	Location       string  `json:"location"`
	Image          string  `json:"image"`
	PricePerPerson float64 `json:"price_per_person"`
	TotalSpots     int     `json:"total_spots"`
	Category       string  `json:"category"`
}

// Seeder loads the initial catalog and event data on first boot. Collections
// that already hold documents are left alone.
type Seeder struct {
	winesRepo  models.WinesRepo
	eventsRepo models.EventsRepo
	logger     *slog.Logger
}

func NewSeeder(winesRepo models.WinesRepo, eventsRepo models.EventsRepo, logger *slog.Logger) *Seeder {
	return &Seeder{
		winesRepo:  winesRepo,
		eventsRepo: eventsRepo,
		logger:     logger,
	}
}

// Run seeds wines and events from the given JSON files. A missing seed file
// is logged and skipped, not fatal.
func (s *Seeder) Run(ctx context.Context, winesPath, eventsPath string) error {
	if err := s.seedWines(ctx, winesPath); err != nil {
		return fmt.Errorf("seeding wines: %v", err)
	}
	if err := s.seedEvents(ctx, eventsPath); err != nil {
		return fmt.Errorf("seeding events: %v", err)
	}
	return nil
}

func (s *Seeder) seedWines(ctx context.Context, path string) error {
	count, err := s.winesRepo.CountWines(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		s.logger.Info("wine catalog already populated, skipping seed", "count", count)
		return nil
	}

	var seeds []wineSeed
	if ok, err := loadSeedFile(path, &seeds, s.logger); !ok {
		return err
	}

	inserted := 0
	for _, seed := range seeds {
		wine := seed.toWine()
		if _, err := s.winesRepo.CreateWine(ctx, wine); err != nil {
			s.logger.Warn("skipping wine seed entry", "name", seed.Name, "error", err)
			continue
		}
		inserted++
	}

	s.logger.Info("wine catalog seeded", "inserted", inserted, "total", len(seeds))
	return nil
}

func (s *Seeder) seedEvents(ctx context.Context, path string) error {
	count, err := s.eventsRepo.CountEvents(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		s.logger.Info("events already populated, skipping seed", "count", count)
		return nil
	}

	var seeds []eventSeed
	if ok, err := loadSeedFile(path, &seeds, s.logger); !ok {
		return err
	}

	inserted := 0
	for _, seed := range seeds {
		event := seed.toEvent()
		if _, err := s.eventsRepo.CreateEvent(ctx, event); err != nil {
			s.logger.Warn("skipping event seed entry", "title", seed.Title, "error", err)
			continue
		}
		inserted++
	}

	s.logger.Info("events seeded", "inserted", inserted, "total", len(seeds))
	return nil
}

func loadSeedFile(path string, out interface{}, logger *slog.Logger) (bool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn("seed file not found, skipping", "path", path)
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("parsing %s: %v", path, err)
	}
	return true, nil
}

func (ws *wineSeed) toWine() *models.Wine {
	slug := ws.Slug
	if slug == "" {
		slug = helpers.GenerateSlug(ws.Name)
	}

	wineType, _ := models.ParseWineType(ws.Type)

	var flavor *models.WineFlavor
	if f, ok := models.ParseWineFlavor(ws.Flavor); ok {
		flavor = &f
	}

	return &models.Wine{
		Id:                uuid.New().String(),
		Name:              ws.Name,
		Slug:              slug,
		Description:       ws.Description,
		ShortDescription:  ws.ShortDescription,
		Image:             ws.Image,
		Price:             ws.Price,
		Sale:              ws.Sale,
		SalePrice:         ws.SalePrice,
		Type:              wineType,
		StockStatus:       models.ParseStockStatus(ws.StockStatus),
		StockQuantity:     ws.StockQuantity,
		GrapeVariety:      ws.GrapeVariety,
		Year:              ws.Year,
		Alcohol:           ws.Alcohol,
		Acidity:           ws.Acidity,
		Sugar:             ws.Sugar,
		Flavor:            flavor,
		QualityLevel:      ws.QualityLevel,
		Edition:           ws.Edition,
		Rating:            ws.Rating,
		RecommendedDishes: ws.RecommendedDishes,
		Tags:              ws.Tags,
		Featured:          ws.Featured,
		CreatedAt:         time.Now(),
	}
}

func (es *eventSeed) toEvent() *models.Event {
	slug := es.Slug
	if slug == "" {
		slug = helpers.GenerateSlug(es.Title)
	}

	return &models.Event{
		Id:             uuid.New().String(),
		Title:          es.Title,
		Slug:           slug,
		Description:    es.Description,
		Date:           es.Date,
		Time:           es.Time,
		Location:       es.Location,
		Image:          es.Image,
		PricePerPerson: es.PricePerPerson,
		TotalSpots:     es.TotalSpots,
		BookedSpots:    0,
		Category:       models.ParseEventCategory(es.Category),
		CreatedAt:      time.Now(),
	}
}
