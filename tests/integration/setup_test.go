package integration

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/lib/pq"

	"github.com/seu-repo/bss-ve/internal/adapter/cache"
	"github.com/seu-repo/bss-ve/internal/adapter/http/fiber/handlers"
	"github.com/seu-repo/bss-ve/internal/adapter/http/fiber/middleware"
	pgstore "github.com/seu-repo/bss-ve/internal/adapter/storage/postgres"
	"github.com/seu-repo/bss-ve/internal/mocks"
	"github.com/seu-repo/bss-ve/internal/ports"
	"github.com/seu-repo/bss-ve/internal/service/billing"
	"github.com/seu-repo/bss-ve/internal/service/fleet"
	"github.com/seu-repo/bss-ve/internal/service/registry"
	"github.com/seu-repo/bss-ve/internal/service/swap"
)

// TestEnv holds test environment resources
type TestEnv struct {
	GormDB            *gorm.DB
	SQL               *sql.DB
	Redis             *goredis.Client
	Cache             ports.Cache
	Queue             *mocks.MockMessageQueue
	App               *fiber.App
	PostgresContainer testcontainers.Container
	RedisContainer    testcontainers.Container
	Logger            *zap.Logger
	ctx               context.Context
}

var testEnv *TestEnv

// SetupTestEnvironment initializes the test environment with containers.
// When DATABASE_URL is set (CI), external services are used instead.
func SetupTestEnvironment(t *testing.T) *TestEnv {
	if testEnv != nil {
		return testEnv
	}

	ctx := context.Background()

	if os.Getenv("DATABASE_URL") != "" {
		return setupExternalServices(t, ctx)
	}

	return setupContainers(t, ctx)
}

func setupExternalServices(t *testing.T, ctx context.Context) *TestEnv {
	logger, _ := zap.NewDevelopment()

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	env := buildEnv(t, ctx, logger, os.Getenv("DATABASE_URL"), redisURL)
	testEnv = env
	return env
}

func setupContainers(t *testing.T, ctx context.Context) *TestEnv {
	logger, _ := zap.NewDevelopment()

	// Start Postgres container
	postgresContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:16-alpine"),
		tcpostgres.WithDatabase("bss_test"),
		tcpostgres.WithUsername("bss"),
		tcpostgres.WithPassword("bss_test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("Failed to start postgres container: %v", err)
	}

	pgHost, err := postgresContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get postgres host: %v", err)
	}
	pgPort, err := postgresContainer.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("Failed to get postgres port: %v", err)
	}
	pgConnStr := fmt.Sprintf("postgres://bss:bss_test@%s:%s/bss_test?sslmode=disable", pgHost, pgPort.Port())

	// Start Redis container
	redisContainer, err := tcredis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("Ready to accept connections").
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("Failed to start redis container: %v", err)
	}

	redisHost, err := redisContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get redis host: %v", err)
	}
	redisPort, err := redisContainer.MappedPort(ctx, "6379")
	if err != nil {
		t.Fatalf("Failed to get redis port: %v", err)
	}
	redisURL := fmt.Sprintf("redis://%s:%s", redisHost, redisPort.Port())

	env := buildEnv(t, ctx, logger, pgConnStr, redisURL)
	env.PostgresContainer = postgresContainer
	env.RedisContainer = redisContainer
	testEnv = env
	return env
}

// buildEnv connects to the backing services, migrates the schema and wires a
// full application instance against them. Events go to a mock queue so tests
// can assert on published messages.
func buildEnv(t *testing.T, ctx context.Context, logger *zap.Logger, databaseURL, redisURL string) *TestEnv {
	gormDB, err := pgstore.NewConnection(databaseURL, logger)
	if err != nil {
		t.Fatalf("Failed to connect to postgres: %v", err)
	}
	if err := pgstore.RunMigrations(gormDB); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	rawDB, err := sql.Open("postgres", databaseURL)
	if err != nil {
		t.Fatalf("Failed to open raw connection: %v", err)
	}
	if err := rawDB.Ping(); err != nil {
		t.Fatalf("Failed to ping database: %v", err)
	}

	opt, err := goredis.ParseURL(redisURL)
	if err != nil {
		t.Fatalf("Failed to parse redis url: %v", err)
	}
	redisClient := goredis.NewClient(opt)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		t.Fatalf("Failed to connect to redis: %v", err)
	}

	appCache, err := cache.NewRedisCache(redisURL, logger)
	if err != nil {
		t.Fatalf("Failed to build cache: %v", err)
	}

	queue := mocks.NewMockMessageQueue()

	env := &TestEnv{
		GormDB: gormDB,
		SQL:    rawDB,
		Redis:  redisClient,
		Cache:  appCache,
		Queue:  queue,
		Logger: logger,
		ctx:    ctx,
	}
	env.App = buildApp(env)
	return env
}

func buildApp(env *TestEnv) *fiber.App {
	logger := env.Logger

	planRepo := pgstore.NewSubscriptionPlanRepository(env.GormDB, logger)
	userRepo := pgstore.NewUserRepository(env.GormDB, logger)
	cardRepo := pgstore.NewRFIDCardRepository(env.GormDB, logger)
	stationRepo := pgstore.NewStationRepository(env.GormDB, logger)
	batteryRepo := pgstore.NewBatteryRepository(env.GormDB, logger)
	slotRepo := pgstore.NewSlotRepository(env.GormDB, logger)
	healthLogRepo := pgstore.NewHealthLogRepository(env.GormDB, logger)
	swapRepo := pgstore.NewSwapRepository(env.GormDB, logger)
	billingRepo := pgstore.NewBillingRepository(env.GormDB, logger)

	registryService := registry.NewService(planRepo, userRepo, cardRepo, env.Cache, logger)
	fleetService := fleet.NewService(stationRepo, batteryRepo, slotRepo, healthLogRepo, env.Queue, logger)
	swapService := swap.NewService(swapRepo, userRepo, batteryRepo, stationRepo, env.Queue, logger)
	billingService := billing.NewService(billingRepo, userRepo, env.Queue, logger)

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler(logger),
	})

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
	return app
}

// TeardownTestEnvironment cleans up the test environment
func TeardownTestEnvironment(t *testing.T) {
	if testEnv == nil {
		return
	}

	ctx := context.Background()

	if testEnv.SQL != nil {
		testEnv.SQL.Close()
	}
	if testEnv.GormDB != nil {
		pgstore.Close(testEnv.GormDB)
	}
	if testEnv.Redis != nil {
		testEnv.Redis.Close()
	}
	if testEnv.Cache != nil {
		testEnv.Cache.Close()
	}

	if testEnv.PostgresContainer != nil {
		if err := testEnv.PostgresContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate postgres container: %v", err)
		}
	}
	if testEnv.RedisContainer != nil {
		if err := testEnv.RedisContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate redis container: %v", err)
		}
	}

	testEnv = nil
}

// CleanDatabase truncates all tables, children before parents.
func CleanDatabase(t *testing.T, db *sql.DB) {
	tables := []string{
		"swaps",
		"battery_health_logs",
		"monthly_billing",
		"rfid_cards",
		"slots",
		"batteries",
		"users",
		"subscription_plans",
		"stations",
	}

	for _, table := range tables {
		_, err := db.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table))
		if err != nil {
			t.Logf("Failed to truncate %s: %v", table, err)
		}
	}
}

// FlushRedis clears all Redis keys
func FlushRedis(t *testing.T, client *goredis.Client) {
	ctx := context.Background()
	if err := client.FlushAll(ctx).Err(); err != nil {
		t.Fatalf("Failed to flush redis: %v", err)
	}
}

// ResetState wipes the database, cache and captured events before a test.
func ResetState(t *testing.T, env *TestEnv) {
	CleanDatabase(t, env.SQL)
	FlushRedis(t, env.Redis)
	env.Queue.ClearMessages()
}
