package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"upsell/config"
	"upsell/database"
	quotesRepo "upsell/database/repository/quotes"
	rulesRepo "upsell/database/repository/rules"
	"upsell/handlers"
	"upsell/middleware"
	"upsell/routes"
	"upsell/services/compatibility"
	"upsell/services/upsell"
	"upsell/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Compatibility rules.
	compat := compatibility.NewDefaultEngine()
	if config.UsesMongoRules() {
		if err := database.InitDB(); err != nil {
			logger.Fatal("main: failed to connect to MongoDB", zap.Error(err))
		}
		engine, err := upsell.LoadCompatibilityEngine(ctx, rulesRepo.NewMongoRulesRepo(database.Database()), logger)
		if err != nil {
			logger.Fatal("main: failed to load compatibility rules", zap.Error(err))
		}
		compat = engine
	}

	// Quote store.
	var quotes quotesRepo.QuoteRepository = quotesRepo.NewMemoryQuoteRepo()
	var redisClient *redis.Client
	if config.UsesRedisQuotes() {
		client, err := utils.GetQuoteCacheClient()
		if err != nil {
			logger.Fatal("main: failed to initialize quote store", zap.Error(err))
		}
		redisClient = client
		quotes = quotesRepo.NewRedisQuoteRepo(client)
	}
	utils.StartHealthMonitor(ctx, redisClient, database.MongoClient)

	svc := upsell.NewDefaultUpsellService(compat, quotes, config.AppConfig.PricingDefaults, logger)
	handlerBundle := handlers.NewHandlerBundle(
		handlers.NewCustomizationHandler(svc),
		handlers.NewSelectionHandler(svc),
		handlers.HealthHandler,
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(middleware.RequestLogger(logger))
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))
	routes.RegisterRoutes(router, handlerBundle)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if redisClient != nil {
		redisClient.Close()
	}
	if err := database.Close(shutdownCtx); err != nil {
		logger.Warn("main: failed to close MongoDB client", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
