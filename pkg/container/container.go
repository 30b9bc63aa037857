package container

import (
	"fmt"
	"log"
	"time"

	"github.com/jmoiron/sqlx"

	"blog-backend/internal/config"
	"blog-backend/internal/db"
	"blog-backend/internal/infrastructure/storage"
	"blog-backend/pkg/jwt"

	"blog-backend/internal/domains/article"
	articleHandler "blog-backend/internal/domains/article/handler"
	articleRepo "blog-backend/internal/domains/article/repository"
	articleService "blog-backend/internal/domains/article/service"

	"blog-backend/internal/domains/artwork"
	artworkHandler "blog-backend/internal/domains/artwork/handler"
	artworkRepo "blog-backend/internal/domains/artwork/repository"
	artworkService "blog-backend/internal/domains/artwork/service"

	"blog-backend/internal/domains/asset"
	assetHandler "blog-backend/internal/domains/asset/handler"
	assetService "blog-backend/internal/domains/asset/service"

	"blog-backend/internal/domains/category"
	categoryRepo "blog-backend/internal/domains/category/repository"

	"blog-backend/internal/domains/friend"
	friendHandler "blog-backend/internal/domains/friend/handler"
	friendRepo "blog-backend/internal/domains/friend/repository"
	friendService "blog-backend/internal/domains/friend/service"

	"blog-backend/internal/domains/user"
	userHandler "blog-backend/internal/domains/user/handler"
	userRepo "blog-backend/internal/domains/user/repository"
	userService "blog-backend/internal/domains/user/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa toàn bộ dependencies của application.
// Struct này là "root" của dependency graph
type Container struct {
	// Infrastructure - shared across all domains
	Config     *config.Config
	DB         *sqlx.DB
	JWTManager *jwt.Manager
	Storage    *storage.LocalStorage

	// Repository layer
	UserRepo     user.Repository
	CategoryRepo category.Repository
	ArticleRepo  article.Repository
	FriendRepo   friend.Repository
	ArtworkRepo  artwork.Repository

	// Service layer
	UserService    user.Service
	ArticleService article.Service
	FriendService  friend.Service
	ArtworkService artwork.Service
	AssetService   asset.Service

	// Handler layer
	AuthHandler    *userHandler.AuthHandler
	ArticleHandler *articleHandler.ArticleHandler
	FriendHandler  *friendHandler.FriendHandler
	ArtworkHandler *artworkHandler.ArtworkHandler
	AssetHandler   *assetHandler.AssetHandler
}

// NewContainer tạo và initialize toàn bộ dependency graph.
//
// Thứ tự initialization:
// 1. Config (không phụ thuộc gì)
// 2. Infrastructure (DB + migrations, storage, JWT) - phụ thuộc Config
// 3. Repositories - phụ thuộc Infrastructure
// 4. Services - phụ thuộc Repositories
// 5. Handlers - phụ thuộc Services
func NewContainer() (*Container, error) {
	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE INFRASTRUCTURE
	// ========================================
	database, err := db.Init(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	c.DB = database

	if err := db.RunMigrations(database.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Println("✅ Database ready")

	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Hour,
	)

	st, err := storage.NewLocalStorage(cfg.Upload.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to init storage: %w", err)
	}
	c.Storage = st

	// ========================================
	// STEP 3-5: REPOSITORIES, SERVICES, HANDLERS
	// ========================================
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// Close giải phóng các tài nguyên giữ bởi container
func (c *Container) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

func (c *Container) initRepositories() {
	c.UserRepo = userRepo.NewSQLiteRepository(c.DB)
	c.CategoryRepo = categoryRepo.NewSQLiteRepository(c.DB)
	c.ArticleRepo = articleRepo.NewSQLiteRepository(c.DB)
	c.FriendRepo = friendRepo.NewSQLiteRepository(c.DB)
	c.ArtworkRepo = artworkRepo.NewSQLiteRepository(c.DB)
}

func (c *Container) initServices() {
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)
	c.ArticleService = articleService.NewArticleService(c.ArticleRepo, c.CategoryRepo)
	c.FriendService = friendService.NewFriendService(c.FriendRepo)
	c.ArtworkService = artworkService.NewArtworkService(c.ArtworkRepo)
	c.AssetService = assetService.NewAssetService(c.Storage)
}

func (c *Container) initHandlers() {
	c.AuthHandler = userHandler.NewAuthHandler(c.UserService)
	c.ArticleHandler = articleHandler.NewArticleHandler(c.ArticleService)
	c.FriendHandler = friendHandler.NewFriendHandler(c.FriendService)
	c.ArtworkHandler = artworkHandler.NewArtworkHandler(c.ArtworkService)
	c.AssetHandler = assetHandler.NewAssetHandler(c.AssetService)
}
