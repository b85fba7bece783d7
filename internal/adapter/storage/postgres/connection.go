package postgres

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/seu-repo/bss-ve/internal/domain"
)

// NewConnection initializes a new PostgreSQL connection using GORM.
// TranslateError maps driver errors (unique and foreign-key violations) to
// gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated so repositories can
// surface them as domain conflicts.
func NewConnection(url string, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(url), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Info("Successfully connected to PostgreSQL")
	return db, nil
}

// RunMigrations creates or updates the schema. Parent tables migrate before
// the tables that reference them.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.SubscriptionPlan{},
		&domain.User{},
		&domain.Station{},
		&domain.Battery{},
		&domain.Slot{},
		&domain.RFIDCard{},
		&domain.Swap{},
		&domain.BatteryHealthLog{},
		&domain.MonthlyBilling{},
	)
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
