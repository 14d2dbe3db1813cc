package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/dmitrined/proProjectWineStore/internal/helpers"
	"github.com/dmitrined/proProjectWineStore/internal/models"
)

const (
	featuredCacheKey = "wines:featured"
	topRatedCacheKey = "wines:top-rated"
	catalogCacheTTL  = 5 * time.Minute
	topRatedLimit    = 10
)

// WineService is the catalog service: filtered queries, slug lookups, the
// curated featured/top-rated lists (cached in Redis) and the admin CRUD.
type WineService struct {
	winesRepo models.WinesRepo
	cache     *redis.Client
	cld       *cloudinary.Cloudinary
	logger    *slog.Logger
}

func NewWineService(winesRepo models.WinesRepo, cache *redis.Client, cld *cloudinary.Cloudinary, logger *slog.Logger) *WineService {
	return &WineService{
		winesRepo: winesRepo,
		cache:     cache,
		cld:       cld,
		logger:    logger,
	}
}

// QueryWines translates the search request into a store predicate and returns
// one page plus the total match count.
func (ws *WineService) QueryWines(ctx context.Context, req *models.WineSearchRequest, offset, limit int) ([]*models.Wine, int, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, fmt.Errorf("invalid offset or limit")
	}

	filter := models.BuildWineFilter(req)
	sort := models.WineSort("")
	if req != nil {
		sort = models.WineSort(req.Sort)
	}
	return ws.winesRepo.QueryWines(ctx, filter, sort, offset, limit)
}

func (ws *WineService) GetWineBySlug(ctx context.Context, slug string) (*models.Wine, error) {
	if slug == "" {
		return nil, fmt.Errorf("wine slug is required")
	}
	return ws.winesRepo.GetWineBySlug(ctx, slug)
}

func (ws *WineService) ListGrapeVarieties(ctx context.Context) ([]string, error) {
	return ws.winesRepo.ListGrapeVarieties(ctx)
}

// ListFeaturedWines serves from the cache when it can; a cache failure only
// costs the round trip to the store.
func (ws *WineService) ListFeaturedWines(ctx context.Context) ([]*models.Wine, error) {
	if wines, ok := ws.cachedList(ctx, featuredCacheKey); ok {
		return wines, nil
	}

	wines, err := ws.winesRepo.ListFeaturedWines(ctx)
	if err != nil {
		return nil, err
	}
	ws.storeList(ctx, featuredCacheKey, wines)
	return wines, nil
}

func (ws *WineService) ListTopRatedWines(ctx context.Context) ([]*models.Wine, error) {
	if wines, ok := ws.cachedList(ctx, topRatedCacheKey); ok {
		return wines, nil
	}

	wines, err := ws.winesRepo.ListTopRatedWines(ctx, topRatedLimit)
	if err != nil {
		return nil, err
	}
	ws.storeList(ctx, topRatedCacheKey, wines)
	return wines, nil
}

func (ws *WineService) CreateWine(ctx context.Context, wine *models.Wine) (*models.Wine, error) {
	if err := models.Validate.Struct(wine); err != nil {
		return nil, fmt.Errorf("invalid wine data provided: %v", err)
	}

	if wine.Id == "" {
		wine.Id = uuid.New().String()
	}
	if wine.Slug == "" {
		wine.Slug = helpers.GenerateSlug(wine.Name)
	}
	wine.CreatedAt = time.Now()

	var uploadedPublicIDs []string
	if wine.Image != "" && ws.cld != nil {
		urls, publicIDs, err := helpers.UploadImages(ctx, ws.cld, []string{wine.Image}, helpers.WinesFolder)
		if err != nil {
			return nil, fmt.Errorf("failed to upload image: %v", err)
		}
		if len(urls) > 0 {
			wine.Image = urls[0]
			uploadedPublicIDs = publicIDs
		}
	}

	created, err := ws.winesRepo.CreateWine(ctx, wine)
	if err != nil {
		if len(uploadedPublicIDs) > 0 {
			helpers.DeleteImages(ctx, ws.cld, helpers.WinesFolder, uploadedPublicIDs)
		}
		return nil, err
	}

	ws.invalidateCache(ctx)
	return created, nil
}

func (ws *WineService) UpdateWine(ctx context.Context, slug string, wine *models.Wine) (*models.Wine, error) {
	if slug == "" {
		return nil, fmt.Errorf("wine slug is required")
	}
	if err := models.Validate.Struct(wine); err != nil {
		return nil, fmt.Errorf("invalid wine data provided: %v", err)
	}

	updated, err := ws.winesRepo.UpdateWine(ctx, slug, wine)
	if err != nil {
		return nil, err
	}

	ws.invalidateCache(ctx)
	return updated, nil
}

func (ws *WineService) DeleteWine(ctx context.Context, slug string) error {
	if slug == "" {
		return fmt.Errorf("wine slug is required")
	}
	if err := ws.winesRepo.DeleteWine(ctx, slug); err != nil {
		return err
	}

	ws.invalidateCache(ctx)
	return nil
}

func (ws *WineService) cachedList(ctx context.Context, key string) ([]*models.Wine, bool) {
	if ws.cache == nil {
		return nil, false
	}
	raw, err := ws.cache.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			ws.logger.Warn("catalog cache read failed", "key", key, "error", err)
		}
		return nil, false
	}

	var wines []*models.Wine
	if err := json.Unmarshal([]byte(raw), &wines); err != nil {
		ws.logger.Warn("catalog cache entry corrupt, dropping", "key", key, "error", err)
		ws.cache.Del(ctx, key)
		return nil, false
	}
	return wines, true
}

func (ws *WineService) storeList(ctx context.Context, key string, wines []*models.Wine) {
	if ws.cache == nil {
		return
	}
	raw, err := json.Marshal(wines)
	if err != nil {
		return
	}
	if err := ws.cache.Set(ctx, key, raw, catalogCacheTTL).Err(); err != nil {
		ws.logger.Warn("catalog cache write failed", "key", key, "error", err)
	}
}

func (ws *WineService) invalidateCache(ctx context.Context) {
	if ws.cache == nil {
		return
	}
	if err := ws.cache.Del(ctx, featuredCacheKey, topRatedCacheKey).Err(); err != nil {
		ws.logger.Warn("catalog cache invalidation failed", "error", err)
	}
}
