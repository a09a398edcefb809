package container

import (
	"log/slog"

	"github.com/stagepass/api/internal/config"
	"github.com/stagepass/api/internal/models"
	"github.com/stagepass/api/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger          *slog.Logger
	Config          *config.Config
	MongoDBClient   *mongo.Client
	UserService     *services.UserService
	PurchaseService *services.PurchaseService
	CatalogService  *services.CatalogService
}

// NewContainer creates a new dependency injection container
func NewContainer(logger *slog.Logger, cfg *config.Config, mongoDBClient *mongo.Client) *Container {
	repo := models.MongodbNewRepo(mongoDBClient, cfg.MongoDBName)

	userService := services.NewUserService(repo, cfg.JWTSecret)
	purchaseService := services.NewPurchaseService(repo, repo, repo, repo, logger)
	catalogService := services.NewCatalogService(repo, repo, repo, repo)

	return &Container{
		Logger:          logger,
		Config:          cfg,
		MongoDBClient:   mongoDBClient,
		UserService:     userService,
		PurchaseService: purchaseService,
		CatalogService:  catalogService,
	}
}
