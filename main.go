package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/epeers/gardenfeed/config"
	"github.com/epeers/gardenfeed/docs"
	"github.com/epeers/gardenfeed/internal/cache"
	"github.com/epeers/gardenfeed/internal/database"
	"github.com/epeers/gardenfeed/internal/handlers"
	"github.com/epeers/gardenfeed/internal/metrics"
	"github.com/epeers/gardenfeed/internal/middleware"
	"github.com/epeers/gardenfeed/internal/repository"
	"github.com/epeers/gardenfeed/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title GardenFeed API
// @version 1.0
// @description Nutrient dosing calculator for three-part hydroponic feeds.
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.SetLevel(cfg.LogLevel)

	// Create context for initialization
	ctx := context.Background()

	// Initialize the feed log store when a database is configured
	var store services.FeedLogStore
	if cfg.FeedLogEnabled() {
		db, err := database.New(ctx, cfg.PGURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := db.Migrate(ctx); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
		store = repository.NewFeedLogRepository(db.Pool)
	} else {
		log.Warn("PG_URL not set, feed logs will not be recorded")
	}

	// Initialize metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	dosingMetrics, err := metrics.NewDosingMetrics(registry)
	if err != nil {
		log.Fatalf("Failed to register metrics: %v", err)
	}

	// Initialize caches
	memCache := cache.NewMemoryCache(cfg.LastFeedTTL)

	// Initialize services
	dosingSvc := services.NewDosingService(store, memCache, dosingMetrics)

	// Initialize handlers
	dosingHandler := handlers.NewDosingHandler(dosingSvc)

	// Setup Gin router
	if cfg.LogLevel < log.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// Apply global middleware
	router.Use(middleware.RequestID(), middleware.ValidateUser())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "feed_log": dosingSvc.FeedLogEnabled()})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Dosing routes
	router.POST("/dosing/calculate", dosingHandler.Calculate)
	router.POST("/dosing/batch", dosingHandler.CalculateBatch)
	router.POST("/dosing/batch/csv", dosingHandler.CalculateBatchCSV)
	router.POST("/dosing/transition", dosingHandler.Transition)
	router.GET("/stages", dosingHandler.Stages)

	// Zone routes
	router.GET("/zones/:zone_id/feed-logs", dosingHandler.ListFeedLogs)

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	// Give outstanding requests 5 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	// Let queued feed log writes land before the pool closes
	dosingSvc.Wait()
	log.Info("Server exited")
}
