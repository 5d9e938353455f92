package main

// @title MarketingDB API
// @version 1.0
// @description Marketing operations backend: contact enrichment, batches, and campaigns.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/promarkhq/marketingdb/config"
	"github.com/promarkhq/marketingdb/pkg/ai"
	"github.com/promarkhq/marketingdb/pkg/api/handlers"
	"github.com/promarkhq/marketingdb/pkg/cache"
	"github.com/promarkhq/marketingdb/pkg/database"
	"github.com/promarkhq/marketingdb/pkg/email"
	"github.com/promarkhq/marketingdb/pkg/enrich"
	"github.com/promarkhq/marketingdb/pkg/jobs"
	"github.com/promarkhq/marketingdb/pkg/logger"
	"github.com/promarkhq/marketingdb/pkg/metrics"
	custommiddleware "github.com/promarkhq/marketingdb/pkg/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	appLog := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			TracesSampleRate: 1.0,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.SentryEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Initialize database. The pool is sized for the enrichment scheduler,
	// which opens one transaction per in-flight contact.
	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Printf("✅ Database connected")

	// Initialize Redis cache
	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Printf("✅ Redis connected")

	// Initialize Prometheus metrics
	prometheusMetrics := metrics.New()
	log.Printf("✅ Prometheus metrics initialized")

	// Recover batches stranded by a previous crash before accepting traffic
	if result, err := jobs.RecoverStuckBatches(context.Background(), db.Ent, appLog); err != nil {
		log.Printf("⚠️  Recovery sweep failed: %v", err)
	} else if result.BatchesPaused > 0 || result.ContactsReset > 0 {
		log.Printf("♻️  Recovery sweep: %d batches paused, %d contacts reset",
			result.BatchesPaused, result.ContactsReset)
	}

	// Initialize enrichment source clients
	var enricher jobs.ContactEnricher
	var enricherErr error
	coreEnricher, err := enrich.NewEnricher(enrich.Config{
		SerperAPIKey:        cfg.SerperAPIKey,
		FacebookAccessToken: cfg.FacebookAccessToken,
		ZeroBounceAPIKey:    cfg.ZeroBounceAPIKey,
		FetchTimeout:        time.Duration(cfg.EnrichFetchTimeout) * time.Second,
		Logger:              appLog,
	})
	if err != nil {
		enricherErr = err
		log.Printf("⚠️  Enrichment disabled: %v", err)
	} else {
		enricher = coreEnricher
		log.Printf("✅ Enrichment sources initialized")
	}

	schedulerCfg := jobs.SchedulerConfig{
		Concurrency: cfg.EnrichConcurrency,
		Delay:       time.Duration(cfg.EnrichDelayMs) * time.Millisecond,
	}

	// Initialize notification and AI services
	emailService := email.NewService(cfg.SendGridAPIKey, cfg.EmailFrom, "MarketingDB", appLog)
	aiService := ai.NewService(cfg.OpenAIAPIKey)
	if aiService.Configured() {
		log.Printf("✅ AI copy generation enabled")
	} else {
		log.Printf("ℹ️  AI copy generation disabled (no API key configured)")
	}

	// Initialize cron manager for the recovery sweep and stats jobs
	cronManager := jobs.NewCronManager(db.Ent, appLog)
	if err := cronManager.SetupJobs(); err != nil {
		log.Fatalf("❌ Failed to setup cron jobs: %v", err)
	}
	cronManager.Start()
	log.Printf("✅ Cron jobs started successfully")

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Initialize rate limiters
	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	enrichRateLimiter := custommiddleware.NewRateLimiter(10, 2) // enrichment starts are expensive

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", c.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true,
		}))
	}

	e.Use(prometheusMetrics.Middleware())
	e.Use(middleware.CORSWithConfig(custommiddleware.CORSConfig()))
	e.Use(middleware.Gzip())
	e.Use(middleware.Secure())
	e.Use(globalRateLimiter.RateLimitMiddleware())

	// Health check endpoints (public)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":        "MarketingDB API",
			"version":     "0.1.0",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":   "unhealthy",
				"database": "down",
			})
		}
		if _, err := redisClient.Get(ctx, "health_check"); err != nil && !cache.IsNil(err) {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
				"cache":  "down",
			})
		}

		return c.JSON(http.StatusOK, map[string]any{
			"status":   "healthy",
			"database": "up",
			"cache":    "up",
		})
	})

	// Prometheus metrics endpoint (public)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Initialize handlers
	batchHandler := handlers.NewBatchHandler(db.Ent, appLog)
	enrichmentHandler := handlers.NewEnrichmentHandler(
		db.Ent, redisClient, enricher, emailService, schedulerCfg, prometheusMetrics, appLog).
		WithEnricherError(enricherErr)
	campaignHandler := handlers.NewCampaignHandler(db.Ent, aiService, appLog)

	// API v1 routes (JWT protected)
	v1 := e.Group("/api/v1")
	v1.Use(custommiddleware.JWTMiddleware(cfg.JWTSecret))

	batches := v1.Group("/batches")
	{
		batches.POST("", batchHandler.CreateBatch)
		batches.GET("", batchHandler.ListBatches)
		batches.GET("/:id", batchHandler.GetBatch)
		batches.DELETE("/:id", batchHandler.CancelBatch)
		batches.GET("/:id/contacts", batchHandler.ListBatchContacts)
		batches.POST("/:id/enrich", enrichmentHandler.StartEnrichment, enrichRateLimiter.RateLimitMiddleware())
		batches.GET("/:id/progress", enrichmentHandler.GetProgress)
	}

	v1.GET("/enrichment/stats", enrichmentHandler.GetStats)
	v1.POST("/admin/recover", enrichmentHandler.RecoverStuck)

	campaigns := v1.Group("/campaigns")
	{
		campaigns.POST("", campaignHandler.CreateCampaign)
		campaigns.GET("", campaignHandler.ListCampaigns)
		campaigns.GET("/:id", campaignHandler.GetCampaign)
		campaigns.PUT("/:id", campaignHandler.UpdateCampaign)
		campaigns.DELETE("/:id", campaignHandler.DeleteCampaign)
		campaigns.POST("/:id/generate-copy", campaignHandler.GenerateCopy)
	}

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 MarketingDB API starting on %s", address)
	log.Printf("📝 Log level: %s, Log format: %s", cfg.LogLevel, cfg.LogFormat)
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d)", cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	log.Printf("⚙️  Enrichment: concurrency %d, delay %dms", schedulerCfg.Concurrency, cfg.EnrichDelayMs)
	log.Printf("⏰ Cron jobs: Hourly recovery sweep, Daily 4AM (stats)")

	// Graceful shutdown
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	cronManager.Stop()
	log.Println("✅ Cron jobs stopped")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
