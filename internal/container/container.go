package container

import (
	"log/slog"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dmitrined/proProjectWineStore/internal/models"
	"github.com/dmitrined/proProjectWineStore/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Logger     *slog.Logger
	Cloudinary *cloudinary.Cloudinary
	// Database clients
	MongoDBClient    *mongo.Client
	RedisClient      *redis.Client
	WineService      *services.WineService
	CartService      *services.CartService
	EventService     *services.EventService
	SommelierService *services.SommelierService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	logger *slog.Logger,
	cloudinary *cloudinary.Cloudinary,
	mongoDBClient *mongo.Client,
	redisClient *redis.Client,
) *Container {
	// Initialize repositories
	repo := models.MongodbNewRepo(mongoDBClient)
	wineService := services.NewWineService(repo, redisClient, cloudinary, logger)
	cartService := services.NewCartService(repo, logger)
	eventService := services.NewEventService(repo, repo, logger)
	sommelierService := services.NewSommelierService(repo)

	return &Container{
		Logger:           logger,
		Cloudinary:       cloudinary,
		MongoDBClient:    mongoDBClient,
		RedisClient:      redisClient,
		WineService:      wineService,
		CartService:      cartService,
		EventService:     eventService,
		SommelierService: sommelierService,
	}
}
