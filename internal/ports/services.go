package ports

import (
	"context"

	"github.com/seu-repo/bss-ve/internal/domain"
)

// RegistryService manages subscription plans, users and RFID cards.
type RegistryService interface {
	CreatePlan(ctx context.Context, plan *domain.SubscriptionPlan) (*domain.SubscriptionPlan, error)
	ListPlans(ctx context.Context) ([]domain.SubscriptionPlan, error)
	GetPlan(ctx context.Context, id uint) (*domain.SubscriptionPlan, error)
	UpdatePlan(ctx context.Context, id uint, fields domain.Fields) error
	DeletePlan(ctx context.Context, id uint) error

	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id uint) (*domain.User, error)
	UpdateUser(ctx context.Context, id uint, fields domain.Fields) error
	DeleteUser(ctx context.Context, id uint) error

	CreateCard(ctx context.Context, card *domain.RFIDCard) (*domain.RFIDCard, error)
	ListCards(ctx context.Context) ([]domain.RFIDCard, error)
	GetCard(ctx context.Context, id uint) (*domain.RFIDCard, error)
	GetCardByCode(ctx context.Context, code string) (*domain.RFIDCard, error)
	UpdateCard(ctx context.Context, id uint, fields domain.Fields) error
	DeleteCard(ctx context.Context, id uint) error
}

// FleetService manages stations, slots, batteries and their health logs.
type FleetService interface {
	CreateStation(ctx context.Context, station *domain.Station) (*domain.Station, error)
	ListStations(ctx context.Context) ([]domain.Station, error)
	GetStation(ctx context.Context, id uint) (*domain.Station, error)
	UpdateStation(ctx context.Context, id uint, fields domain.Fields) error
	DeleteStation(ctx context.Context, id uint) error
	ListStationBatteries(ctx context.Context, stationID uint) ([]domain.Battery, error)
	ListStationSlots(ctx context.Context, stationID uint) ([]domain.Slot, error)

	CreateBattery(ctx context.Context, battery *domain.Battery) (*domain.Battery, error)
	ListBatteries(ctx context.Context) ([]domain.Battery, error)
	GetBattery(ctx context.Context, id uint) (*domain.Battery, error)
	UpdateBattery(ctx context.Context, id uint, fields domain.Fields) error
	DeleteBattery(ctx context.Context, id uint) error

	CreateSlot(ctx context.Context, slot *domain.Slot) (*domain.Slot, error)
	ListSlots(ctx context.Context) ([]domain.Slot, error)
	GetSlot(ctx context.Context, id uint) (*domain.Slot, error)
	UpdateSlot(ctx context.Context, id uint, fields domain.Fields) error
	DeleteSlot(ctx context.Context, id uint) error
	AssignBattery(ctx context.Context, slotID, batteryID uint) error
	RemoveBattery(ctx context.Context, slotID uint) error

	CreateHealthLog(ctx context.Context, log *domain.BatteryHealthLog) (*domain.BatteryHealthLog, error)
	ListHealthLogs(ctx context.Context) ([]domain.BatteryHealthLog, error)
	GetHealthLog(ctx context.Context, id uint) (*domain.BatteryHealthLog, error)
	ListBatteryHealthLogs(ctx context.Context, batteryID uint) ([]domain.BatteryHealthLog, error)
	UpdateHealthLog(ctx context.Context, id uint, fields domain.Fields) error
	DeleteHealthLog(ctx context.Context, id uint) error
}

// SwapService records battery-swap transactions.
type SwapService interface {
	CreateSwap(ctx context.Context, swap *domain.Swap) (*domain.Swap, error)
	ListSwaps(ctx context.Context) ([]domain.Swap, error)
	GetSwap(ctx context.Context, id uint) (*domain.Swap, error)
	ListUserSwaps(ctx context.Context, userID uint) ([]domain.Swap, error)
	UpdateSwap(ctx context.Context, id uint, fields domain.Fields) error
	DeleteSwap(ctx context.Context, id uint) error
}

// BillingService manages monthly billing rows.
type BillingService interface {
	CreateBilling(ctx context.Context, billing *domain.MonthlyBilling) (*domain.MonthlyBilling, error)
	ListBillings(ctx context.Context) ([]domain.MonthlyBilling, error)
	GetBilling(ctx context.Context, id uint) (*domain.MonthlyBilling, error)
	ListUserBillings(ctx context.Context, userID uint) ([]domain.MonthlyBilling, error)
	ListUnpaid(ctx context.Context) ([]domain.MonthlyBilling, error)
	UpdateBilling(ctx context.Context, id uint, fields domain.Fields) error
	DeleteBilling(ctx context.Context, id uint) error
	MarkPaid(ctx context.Context, id uint, paidAmount *float64, paymentDate *string) error
}

// EmailService sends operational notifications.
type EmailService interface {
	Send(ctx context.Context, to, subject, body string) error
}
