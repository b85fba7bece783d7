package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"

	"github.com/seu-repo/bss-ve/internal/adapter/cache"
	"github.com/seu-repo/bss-ve/internal/adapter/http/fiber/handlers"
	"github.com/seu-repo/bss-ve/internal/adapter/http/fiber/middleware"
	"github.com/seu-repo/bss-ve/internal/adapter/queue"
	"github.com/seu-repo/bss-ve/internal/adapter/storage/postgres"
	"github.com/seu-repo/bss-ve/internal/adapter/vault"
	"github.com/seu-repo/bss-ve/internal/observability/telemetry"
	"github.com/seu-repo/bss-ve/internal/service/billing"
	"github.com/seu-repo/bss-ve/internal/service/fleet"
	"github.com/seu-repo/bss-ve/internal/service/notify"
	"github.com/seu-repo/bss-ve/internal/service/registry"
	"github.com/seu-repo/bss-ve/internal/service/swap"
	"github.com/seu-repo/bss-ve/pkg/config"
)

const (
	serviceName    = "bss-ve"
	serviceVersion = "v1.0.0"
)

func main() {
	// 1. Initialize Logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	logger.Info("Starting BSS-VE",
		zap.String("service", serviceName),
		zap.String("version", serviceVersion),
	)

	// 2. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// 3. Initialize OpenTelemetry (Distributed Tracing)
	if cfg.OpenTelemetry.Enabled {
		tracerProvider, err := telemetry.InitTracer(serviceName, cfg.OpenTelemetry.Jaeger.Endpoint)
		if err != nil {
			logger.Fatal("Failed to initialize tracer", zap.Error(err))
		}
		defer func() {
			if err := tracerProvider.Shutdown(context.Background()); err != nil {
				logger.Error("Error shutting down tracer provider", zap.Error(err))
			}
		}()
	}

	// 4. Resolve database credentials (Vault when enabled, config otherwise)
	databaseURL := cfg.Database.URL
	if cfg.Vault.Enabled {
		sm, err := vault.NewSecretManager(cfg.Vault.Address, cfg.Vault.Token)
		if err != nil {
			logger.Fatal("Failed to initialize Vault client", zap.Error(err))
		}
		databaseURL, err = sm.GetDatabaseCredentials()
		if err != nil {
			logger.Fatal("Failed to read database credentials from Vault", zap.Error(err))
		}
	}

	// 5. Initialize PostgreSQL Connection Pool
	db, err := postgres.NewConnection(databaseURL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer postgres.Close(db)

	if cfg.Database.AutoMigrate {
		if err := postgres.RunMigrations(db); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	// 6. Initialize Cache (Redis, local fallback)
	appCache, err := cache.NewRedisCache(cfg.Redis.URL, logger)
	if err != nil {
		logger.Warn("Redis unavailable, falling back to local cache", zap.Error(err))
		appCache = cache.NewLocalCache(cfg.Cache.CleanupInterval, logger)
	}
	defer appCache.Close()

	// 7. Initialize Message Queue
	messageQueue, err := newMessageQueue(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to connect to message queue", zap.Error(err))
	}
	defer messageQueue.Close()

	// 8. Initialize Repositories
	planRepo := postgres.NewSubscriptionPlanRepository(db, logger)
	userRepo := postgres.NewUserRepository(db, logger)
	cardRepo := postgres.NewRFIDCardRepository(db, logger)
	stationRepo := postgres.NewStationRepository(db, logger)
	batteryRepo := postgres.NewBatteryRepository(db, logger)
	slotRepo := postgres.NewSlotRepository(db, logger)
	healthLogRepo := postgres.NewHealthLogRepository(db, logger)
	swapRepo := postgres.NewSwapRepository(db, logger)
	billingRepo := postgres.NewBillingRepository(db, logger)

	// 9. Initialize Services (Business Logic Layer)
	registryService := registry.NewService(planRepo, userRepo, cardRepo, appCache, logger)
	fleetService := fleet.NewService(stationRepo, batteryRepo, slotRepo, healthLogRepo, messageQueue, logger)
	swapService := swap.NewService(swapRepo, userRepo, batteryRepo, stationRepo, messageQueue, logger)
	billingService := billing.NewService(billingRepo, userRepo, messageQueue, logger)

	notifyService, err := notify.NewService(&notify.Config{
		Provider:       cfg.Email.Provider,
		FromEmail:      cfg.Email.From,
		FromName:       cfg.Email.FromName,
		SendGridAPIKey: cfg.Email.APIKey,
		SMTPHost:       cfg.Email.SMTPHost,
		SMTPPort:       cfg.Email.SMTPPort,
		SMTPUsername:   cfg.Email.SMTPUsername,
		SMTPPassword:   cfg.Email.SMTPPassword,
		SMTPUseTLS:     cfg.Email.SMTPUseTLS,
	}, userRepo, logger)
	if err != nil {
		logger.Fatal("Failed to initialize notification service", zap.Error(err))
	}

	// 10. Initialize Fiber HTTP Server
	app := fiber.New(fiber.Config{
		AppName:               serviceName,
		ServerHeader:          serviceName,
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler(logger),
	})

	// Global Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Metrics())
	if cfg.CORS.Enabled {
		app.Use(middleware.NewCORS(cfg.CORS))
	} else {
		app.Use(middleware.DefaultCORS())
	}
	if cfg.CircuitBreaker.Enabled {
		app.Use(middleware.CircuitBreaker(logger))
	}

	// Root and Health Check Endpoints
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": "Battery Swap Station Management API",
			"version": serviceVersion,
			"status":  "running",
		})
	})
	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			return c.Status(fiber.StatusServiceUnavailable).SendString("Database not ready")
		}
		if err := appCache.Ping(); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).SendString("Cache not ready")
		}
		return c.SendString("Ready")
	})

	// Metrics endpoint for Prometheus
	app.Get("/metrics", func(c *fiber.Ctx) error {
		handler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
		handler(c.Context())
		return nil
	})

	// API Routes
	handlers.RegisterRoutes(app,
		handlers.NewSubscriptionPlanHandler(registryService, logger),
		handlers.NewUserHandler(registryService, logger),
		handlers.NewRFIDCardHandler(registryService, logger),
		handlers.NewStationHandler(fleetService, logger),
		handlers.NewBatteryHandler(fleetService, logger),
		handlers.NewSlotHandler(fleetService, logger),
		handlers.NewHealthLogHandler(fleetService, logger),
		handlers.NewSwapHandler(swapService, logger),
		handlers.NewBillingHandler(billingService, logger),
	)

	// 11. Start Background Workers
	startBackgroundWorkers(messageQueue, notifyService, logger)

	// 12. Start HTTP Server
	go func() {
		logger.Info("Starting HTTP Server", zap.Int("port", cfg.HTTP.Port))
		if err := app.Listen(fmt.Sprintf(":%d", cfg.HTTP.Port)); err != nil {
			logger.Fatal("HTTP Server failed", zap.Error(err))
		}
	}()

	// 13. Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

func newMessageQueue(cfg *config.Config, logger *zap.Logger) (queue.MessageQueue, error) {
	switch cfg.Queue.Driver {
	case "rabbitmq":
		return queue.NewRabbitMQQueue(cfg.Queue.RabbitMQ.URL, logger)
	default:
		return queue.NewNATSQueue(cfg.Queue.NATS.URL, logger)
	}
}

// startBackgroundWorkers wires the event subscribers.
func startBackgroundWorkers(mq queue.MessageQueue, notifier *notify.Service, logger *zap.Logger) {
	logger.Info("Starting background workers")

	if err := mq.Subscribe(queue.SubjectBillingPaid, notifier.HandleBillingPaid); err != nil {
		logger.Error("Failed to subscribe to billing events", zap.Error(err))
	}

	if err := mq.Subscribe(queue.SubjectSwapRecorded, func(msg []byte) error {
		logger.Info("Swap recorded", zap.ByteString("event", msg))
		return nil
	}); err != nil {
		logger.Error("Failed to subscribe to swap events", zap.Error(err))
	}
}
