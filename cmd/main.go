package main

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"hospsupply/internal/auth"
	"hospsupply/internal/caching"
	"hospsupply/internal/config"
	"hospsupply/internal/handlers"
	"hospsupply/internal/jobs"
	"hospsupply/internal/middleware"
	"hospsupply/internal/models"
	"hospsupply/internal/repositories"
	"hospsupply/internal/services"
	"hospsupply/pkg/database"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("configuration error", zap.Error(err))
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer pool.Close()

	if err := database.Seed(ctx, pool, cfg.DevEmail, cfg.DevPassword, logger); err != nil {
		logger.Fatal("database seeding failed", zap.Error(err))
	}

	cache := caching.NewRedisCacheService(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, logger)

	storage, err := services.NewMinioStorageService(
		cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey,
		cfg.MinioBucket, cfg.MinioUseSSL, logger,
	)
	if err != nil {
		logger.Fatal("object storage setup failed", zap.Error(err))
	}

	tokens := auth.NewTokenManager(
		cfg.JWTSecret,
		time.Duration(cfg.AccessTokenExpiryMin)*time.Minute,
		time.Duration(cfg.RefreshTokenExpiryDay)*24*time.Hour,
	)

	// Repositories.
	roleRepo := repositories.NewRoleRepository(pool)
	jobTitleRepo := repositories.NewJobTitleRepository(pool)
	hospitalRepo := repositories.NewHospitalRepository(pool)
	userRepo := repositories.NewUserRepository(pool)
	categoryRepo := repositories.NewCategoryRepository(pool)
	subCategoryRepo := repositories.NewSubCategoryRepository(pool)
	itemRepo := repositories.NewItemRepository(pool)
	catalogRepo := repositories.NewCatalogRepository(pool)
	supplierRepo := repositories.NewSupplierRepository(pool)
	acquisitionRepo := repositories.NewPublicAcquisitionRepository(pool)
	linkRepo := repositories.NewItemPublicAcquisitionRepository(pool)

	// Services.
	authService := services.NewAuthService(userRepo, tokens, logger)
	roleService := services.NewRoleService(roleRepo)
	jobTitleService := services.NewJobTitleService(jobTitleRepo)
	hospitalService := services.NewHospitalService(hospitalRepo, storage)
	userService := services.NewUserService(userRepo, roleRepo, jobTitleRepo, hospitalRepo)
	categoryService := services.NewCategoryService(categoryRepo, hospitalRepo)
	subCategoryService := services.NewSubCategoryService(subCategoryRepo, categoryRepo)
	itemService := services.NewItemService(itemRepo, subCategoryRepo)
	catalogService := services.NewCatalogService(catalogRepo, categoryRepo, subCategoryRepo, cache, logger)
	supplierService := services.NewSupplierService(supplierRepo, hospitalRepo)
	acquisitionService := services.NewPublicAcquisitionService(acquisitionRepo, hospitalRepo, userRepo)
	linkService := services.NewItemPublicAcquisitionService(linkRepo, itemRepo, acquisitionRepo, supplierRepo)

	// Background jobs.
	scheduler, err := jobs.NewScheduler(catalogService, logger)
	if err != nil {
		logger.Fatal("scheduler setup failed", zap.Error(err))
	}
	if err := scheduler.Start(); err != nil {
		logger.Fatal("scheduler start failed", zap.Error(err))
	}
	defer scheduler.Stop()

	e := echo.New()
	e.HideBanner = true
	e.Pre(echomiddleware.RemoveTrailingSlash())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			logger.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
			)
			return nil
		},
	}))

	rateLimiter := middleware.RateLimiter(cache, logger)
	jwtAuth := middleware.JWTAuth(tokens, userRepo, logger)
	developerOnly := middleware.RequireDeveloper()
	adminOnly := middleware.RequireRoles(models.AdminRole)
	managerUp := middleware.RequireRoles(models.AdminRole, models.ManagerRole)

	handlers.NewHealthHandler(pool, cache, storage).RegisterRoutes(e)
	handlers.NewAuthHandler(authService).RegisterRoutes(e.Group("/auth", rateLimiter))

	// Authenticated API. The rate limiter runs after auth so counters key on
	// the user rather than the client IP.
	api := e.Group("", jwtAuth, rateLimiter)
	handlers.NewRoleHandler(roleService).RegisterRoutes(api.Group("/roles"), adminOnly)
	handlers.NewJobTitleHandler(jobTitleService).RegisterRoutes(api.Group("/job-titles"), managerUp)
	handlers.NewHospitalHandler(hospitalService).RegisterRoutes(api.Group("/hospitals"), developerOnly)
	handlers.NewUserHandler(userService).RegisterRoutes(api.Group("/users"), adminOnly)
	handlers.NewCategoryHandler(categoryService).RegisterRoutes(api.Group("/categories"), managerUp)
	handlers.NewSubCategoryHandler(subCategoryService).RegisterRoutes(api.Group("/subcategories"), managerUp)
	handlers.NewItemHandler(itemService).RegisterRoutes(api.Group("/items"), managerUp)
	handlers.NewCatalogHandler(catalogService).RegisterRoutes(api.Group("/catalog"), adminOnly)
	handlers.NewSupplierHandler(supplierService).RegisterRoutes(api.Group("/suppliers"), managerUp)
	handlers.NewPublicAcquisitionHandler(acquisitionService).RegisterRoutes(api.Group("/public-acquisitions"), managerUp)
	handlers.NewItemPublicAcquisitionHandler(linkService).RegisterRoutes(api.Group("/items-public-acquisitions"), managerUp)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("starting server", zap.String("addr", addr))
	if err := e.Start(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
