package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"africahub/app/echo-server/router"
	"africahub/business/interaction"
	"africahub/business/product"
	"africahub/business/quote"
	"africahub/business/recommend"
	"africahub/business/sector"
	"africahub/business/stream"
	userService "africahub/business/user"
	"africahub/internal/middleware"
	"africahub/internal/repository/notification"
	psqlRepo "africahub/internal/repository/postgres"
	redisRepo "africahub/internal/repository/redis"
	"africahub/internal/rest"
	"africahub/pkg/config"
	"africahub/pkg/database"
	redisdb "africahub/pkg/database/redis"
	"africahub/pkg/logger"
	"africahub/pkg/metrics"
	"africahub/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting AfricaHub", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to redis", "error", err)
	}

	logger.Info("Redis connected successfully")

	// Init notification from mailjet
	mailjetEmail := notification.NewMailjetRepository(
		notification.MailjetConfig{
			MailjetBaseURL:           cfg.Mailjet.MailjetBaseUrl,
			MailjetBasicAuthUsername: cfg.Mailjet.MailjetBasicAuthUsername,
			MailjetBasicAuthPassword: cfg.Mailjet.MailjetBasicAuthPassword,
			MailjetSenderEmail:       cfg.Mailjet.MailjetSenderEmail,
			MailjetSenderName:        cfg.Mailjet.MailjetSenderName,
		},
	)

	// Init validate
	validate := validator.New()

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	productRepo := psqlRepo.NewProductRepository(db)
	profileRepo := psqlRepo.NewProfileRepository(db)
	interactionRepo := psqlRepo.NewInteractionRepository(db)
	quoteRepo := psqlRepo.NewQuoteRepository(db)
	notifRepo := psqlRepo.NewNotificationRepository(db)
	sectorRepo := psqlRepo.NewSectorRepository(db)
	tokenRepo := redisRepo.NewTokenRepository(redisClient)
	publisher := redisRepo.NewRecommendationPublisher(redisClient)

	// Init service
	userSvc := userService.NewUserService(userRepo, tokenRepo, validate)
	productSvc := product.NewProductService(productRepo)
	interactionSvc := interaction.NewInteractionService(interactionRepo)
	sectorSvc := sector.NewSectorService(sectorRepo)
	quoteSvc := quote.NewQuoteService(quoteRepo, notifRepo, mailjetEmail, productRepo)

	registry := stream.NewRegistry()
	recommendSvc := recommend.NewService(
		profileRepo,
		interactionRepo,
		productRepo,
		publisher,
		recommend.NewScorer(nil),
		registry,
		recommend.Options{
			AlgorithmVersion: cfg.Recommend.AlgorithmVersion,
			BatchSize:        cfg.Recommend.BatchSize,
			RefreshInterval:  time.Duration(cfg.Recommend.RefreshInterval) * time.Second,
			MaxUpdates:       cfg.Recommend.MaxUpdates,
			MaxStreamAge:     time.Duration(cfg.Recommend.MaxStreamAge) * time.Minute,
		},
	)

	// Init handler
	userHandler := rest.NewUserHandler(userSvc)
	productHandler := rest.NewProductHandler(productSvc)
	interactionHandler := rest.NewInteractionHandler(interactionSvc)
	sectorHandler := rest.NewSectorHandler(sectorSvc)
	quoteHandler := rest.NewQuoteHandler(quoteSvc)
	recommendHandler := rest.NewRecommendHandler(recommendSvc)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Metrics
	metrics.Init()
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Auth middleware
	authRequired := middleware.AuthMiddlewareWithRedis(userSvc)
	adminOnly := middleware.AdminOnly()

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupUserRoutes(api, userHandler, authRequired, adminOnly)
	router.SetupProductRoutes(api, productHandler, authRequired, adminOnly)
	router.SetupSectorRoutes(api, sectorHandler, authRequired, adminOnly)
	router.SetupInteractionRoutes(api, interactionHandler, authRequired)
	router.SetupQuoteRoutes(api, quoteHandler, authRequired)
	router.SetupRecommendationRoutes(api, recommendHandler, authRequired)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Stop recommendation streams before the HTTP listener goes away
	registry.StopAll()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	if err := redisdb.CloseRedisClient(redisClient); err != nil {
		logger.Error("Redis shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
