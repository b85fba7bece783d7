package ports

import (
	"context"

	"github.com/seu-repo/bss-ve/internal/domain"
)

type SubscriptionPlanRepository interface {
	Create(ctx context.Context, plan *domain.SubscriptionPlan) error
	FindAll(ctx context.Context) ([]domain.SubscriptionPlan, error)
	FindByID(ctx context.Context, id uint) (*domain.SubscriptionPlan, error)
	UpdateColumns(ctx context.Context, id uint, cols map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id uint) (*domain.User, error)
	UpdateColumns(ctx context.Context, id uint, cols map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type RFIDCardRepository interface {
	Create(ctx context.Context, card *domain.RFIDCard) error
	FindAll(ctx context.Context) ([]domain.RFIDCard, error)
	FindByID(ctx context.Context, id uint) (*domain.RFIDCard, error)
	FindByCode(ctx context.Context, code string) (*domain.RFIDCard, error)
	UpdateColumns(ctx context.Context, id uint, cols map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type StationRepository interface {
	Create(ctx context.Context, station *domain.Station) error
	FindAll(ctx context.Context) ([]domain.Station, error)
	FindByID(ctx context.Context, id uint) (*domain.Station, error)
	UpdateColumns(ctx context.Context, id uint, cols map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type BatteryRepository interface {
	Create(ctx context.Context, battery *domain.Battery) error
	FindAll(ctx context.Context) ([]domain.Battery, error)
	FindByID(ctx context.Context, id uint) (*domain.Battery, error)
	FindByStationID(ctx context.Context, stationID uint) ([]domain.Battery, error)
	UpdateColumns(ctx context.Context, id uint, cols map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type SlotRepository interface {
	Create(ctx context.Context, slot *domain.Slot) error
	FindAll(ctx context.Context) ([]domain.Slot, error)
	FindByID(ctx context.Context, id uint) (*domain.Slot, error)
	FindByStationID(ctx context.Context, stationID uint) ([]domain.Slot, error)
	UpdateColumns(ctx context.Context, id uint, cols map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type HealthLogRepository interface {
	Create(ctx context.Context, log *domain.BatteryHealthLog) error
	FindAll(ctx context.Context) ([]domain.BatteryHealthLog, error)
	FindByID(ctx context.Context, id uint) (*domain.BatteryHealthLog, error)
	FindByBatteryID(ctx context.Context, batteryID uint) ([]domain.BatteryHealthLog, error)
	UpdateColumns(ctx context.Context, id uint, cols map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type SwapRepository interface {
	Create(ctx context.Context, swap *domain.Swap) error
	FindAll(ctx context.Context) ([]domain.Swap, error)
	FindByID(ctx context.Context, id uint) (*domain.Swap, error)
	FindByUserID(ctx context.Context, userID uint) ([]domain.Swap, error)
	UpdateColumns(ctx context.Context, id uint, cols map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type BillingRepository interface {
	Create(ctx context.Context, billing *domain.MonthlyBilling) error
	FindAll(ctx context.Context) ([]domain.MonthlyBilling, error)
	FindByID(ctx context.Context, id uint) (*domain.MonthlyBilling, error)
	FindByUserID(ctx context.Context, userID uint) ([]domain.MonthlyBilling, error)
	FindUnpaid(ctx context.Context) ([]domain.MonthlyBilling, error)
	UpdateColumns(ctx context.Context, id uint, cols map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}
