package mocks

import (
	"context"

	"github.com/seu-repo/bss-ve/internal/domain"
)

// MockSubscriptionPlanRepository is a mock implementation of SubscriptionPlanRepository
type MockSubscriptionPlanRepository struct {
	CreateFunc        func(ctx context.Context, plan *domain.SubscriptionPlan) error
	FindAllFunc       func(ctx context.Context) ([]domain.SubscriptionPlan, error)
	FindByIDFunc      func(ctx context.Context, id uint) (*domain.SubscriptionPlan, error)
	UpdateColumnsFunc func(ctx context.Context, id uint, cols map[string]interface{}) error
	DeleteFunc        func(ctx context.Context, id uint) error
}

func (m *MockSubscriptionPlanRepository) Create(ctx context.Context, plan *domain.SubscriptionPlan) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, plan)
	}
	return nil
}

func (m *MockSubscriptionPlanRepository) FindAll(ctx context.Context) ([]domain.SubscriptionPlan, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return []domain.SubscriptionPlan{}, nil
}

func (m *MockSubscriptionPlanRepository) FindByID(ctx context.Context, id uint) (*domain.SubscriptionPlan, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockSubscriptionPlanRepository) UpdateColumns(ctx context.Context, id uint, cols map[string]interface{}) error {
	if m.UpdateColumnsFunc != nil {
		return m.UpdateColumnsFunc(ctx, id, cols)
	}
	return nil
}

func (m *MockSubscriptionPlanRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	CreateFunc        func(ctx context.Context, user *domain.User) error
	FindAllFunc       func(ctx context.Context) ([]domain.User, error)
	FindByIDFunc      func(ctx context.Context, id uint) (*domain.User, error)
	UpdateColumnsFunc func(ctx context.Context, id uint, cols map[string]interface{}) error
	DeleteFunc        func(ctx context.Context, id uint) error
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return []domain.User{}, nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) UpdateColumns(ctx context.Context, id uint, cols map[string]interface{}) error {
	if m.UpdateColumnsFunc != nil {
		return m.UpdateColumnsFunc(ctx, id, cols)
	}
	return nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockRFIDCardRepository is a mock implementation of RFIDCardRepository
type MockRFIDCardRepository struct {
	CreateFunc        func(ctx context.Context, card *domain.RFIDCard) error
	FindAllFunc       func(ctx context.Context) ([]domain.RFIDCard, error)
	FindByIDFunc      func(ctx context.Context, id uint) (*domain.RFIDCard, error)
	FindByCodeFunc    func(ctx context.Context, code string) (*domain.RFIDCard, error)
	UpdateColumnsFunc func(ctx context.Context, id uint, cols map[string]interface{}) error
	DeleteFunc        func(ctx context.Context, id uint) error
}

func (m *MockRFIDCardRepository) Create(ctx context.Context, card *domain.RFIDCard) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, card)
	}
	return nil
}

func (m *MockRFIDCardRepository) FindAll(ctx context.Context) ([]domain.RFIDCard, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return []domain.RFIDCard{}, nil
}

func (m *MockRFIDCardRepository) FindByID(ctx context.Context, id uint) (*domain.RFIDCard, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockRFIDCardRepository) FindByCode(ctx context.Context, code string) (*domain.RFIDCard, error) {
	if m.FindByCodeFunc != nil {
		return m.FindByCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *MockRFIDCardRepository) UpdateColumns(ctx context.Context, id uint, cols map[string]interface{}) error {
	if m.UpdateColumnsFunc != nil {
		return m.UpdateColumnsFunc(ctx, id, cols)
	}
	return nil
}

func (m *MockRFIDCardRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockStationRepository is a mock implementation of StationRepository
type MockStationRepository struct {
	CreateFunc        func(ctx context.Context, station *domain.Station) error
	FindAllFunc       func(ctx context.Context) ([]domain.Station, error)
	FindByIDFunc      func(ctx context.Context, id uint) (*domain.Station, error)
	UpdateColumnsFunc func(ctx context.Context, id uint, cols map[string]interface{}) error
	DeleteFunc        func(ctx context.Context, id uint) error
}

func (m *MockStationRepository) Create(ctx context.Context, station *domain.Station) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, station)
	}
	return nil
}

func (m *MockStationRepository) FindAll(ctx context.Context) ([]domain.Station, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return []domain.Station{}, nil
}

func (m *MockStationRepository) FindByID(ctx context.Context, id uint) (*domain.Station, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockStationRepository) UpdateColumns(ctx context.Context, id uint, cols map[string]interface{}) error {
	if m.UpdateColumnsFunc != nil {
		return m.UpdateColumnsFunc(ctx, id, cols)
	}
	return nil
}

func (m *MockStationRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockBatteryRepository is a mock implementation of BatteryRepository
type MockBatteryRepository struct {
	CreateFunc          func(ctx context.Context, battery *domain.Battery) error
	FindAllFunc         func(ctx context.Context) ([]domain.Battery, error)
	FindByIDFunc        func(ctx context.Context, id uint) (*domain.Battery, error)
	FindByStationIDFunc func(ctx context.Context, stationID uint) ([]domain.Battery, error)
	UpdateColumnsFunc   func(ctx context.Context, id uint, cols map[string]interface{}) error
	DeleteFunc          func(ctx context.Context, id uint) error
}

func (m *MockBatteryRepository) Create(ctx context.Context, battery *domain.Battery) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, battery)
	}
	return nil
}

func (m *MockBatteryRepository) FindAll(ctx context.Context) ([]domain.Battery, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return []domain.Battery{}, nil
}

func (m *MockBatteryRepository) FindByID(ctx context.Context, id uint) (*domain.Battery, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockBatteryRepository) FindByStationID(ctx context.Context, stationID uint) ([]domain.Battery, error) {
	if m.FindByStationIDFunc != nil {
		return m.FindByStationIDFunc(ctx, stationID)
	}
	return []domain.Battery{}, nil
}

func (m *MockBatteryRepository) UpdateColumns(ctx context.Context, id uint, cols map[string]interface{}) error {
	if m.UpdateColumnsFunc != nil {
		return m.UpdateColumnsFunc(ctx, id, cols)
	}
	return nil
}

func (m *MockBatteryRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockSlotRepository is a mock implementation of SlotRepository
type MockSlotRepository struct {
	CreateFunc          func(ctx context.Context, slot *domain.Slot) error
	FindAllFunc         func(ctx context.Context) ([]domain.Slot, error)
	FindByIDFunc        func(ctx context.Context, id uint) (*domain.Slot, error)
	FindByStationIDFunc func(ctx context.Context, stationID uint) ([]domain.Slot, error)
	UpdateColumnsFunc   func(ctx context.Context, id uint, cols map[string]interface{}) error
	DeleteFunc          func(ctx context.Context, id uint) error
}

func (m *MockSlotRepository) Create(ctx context.Context, slot *domain.Slot) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, slot)
	}
	return nil
}

func (m *MockSlotRepository) FindAll(ctx context.Context) ([]domain.Slot, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return []domain.Slot{}, nil
}

func (m *MockSlotRepository) FindByID(ctx context.Context, id uint) (*domain.Slot, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockSlotRepository) FindByStationID(ctx context.Context, stationID uint) ([]domain.Slot, error) {
	if m.FindByStationIDFunc != nil {
		return m.FindByStationIDFunc(ctx, stationID)
	}
	return []domain.Slot{}, nil
}

func (m *MockSlotRepository) UpdateColumns(ctx context.Context, id uint, cols map[string]interface{}) error {
	if m.UpdateColumnsFunc != nil {
		return m.UpdateColumnsFunc(ctx, id, cols)
	}
	return nil
}

func (m *MockSlotRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockHealthLogRepository is a mock implementation of HealthLogRepository
type MockHealthLogRepository struct {
	CreateFunc          func(ctx context.Context, log *domain.BatteryHealthLog) error
	FindAllFunc         func(ctx context.Context) ([]domain.BatteryHealthLog, error)
	FindByIDFunc        func(ctx context.Context, id uint) (*domain.BatteryHealthLog, error)
	FindByBatteryIDFunc func(ctx context.Context, batteryID uint) ([]domain.BatteryHealthLog, error)
	UpdateColumnsFunc   func(ctx context.Context, id uint, cols map[string]interface{}) error
	DeleteFunc          func(ctx context.Context, id uint) error
}

func (m *MockHealthLogRepository) Create(ctx context.Context, log *domain.BatteryHealthLog) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, log)
	}
	return nil
}

func (m *MockHealthLogRepository) FindAll(ctx context.Context) ([]domain.BatteryHealthLog, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return []domain.BatteryHealthLog{}, nil
}

func (m *MockHealthLogRepository) FindByID(ctx context.Context, id uint) (*domain.BatteryHealthLog, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockHealthLogRepository) FindByBatteryID(ctx context.Context, batteryID uint) ([]domain.BatteryHealthLog, error) {
	if m.FindByBatteryIDFunc != nil {
		return m.FindByBatteryIDFunc(ctx, batteryID)
	}
	return []domain.BatteryHealthLog{}, nil
}

func (m *MockHealthLogRepository) UpdateColumns(ctx context.Context, id uint, cols map[string]interface{}) error {
	if m.UpdateColumnsFunc != nil {
		return m.UpdateColumnsFunc(ctx, id, cols)
	}
	return nil
}

func (m *MockHealthLogRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockSwapRepository is a mock implementation of SwapRepository
type MockSwapRepository struct {
	CreateFunc        func(ctx context.Context, swap *domain.Swap) error
	FindAllFunc       func(ctx context.Context) ([]domain.Swap, error)
	FindByIDFunc      func(ctx context.Context, id uint) (*domain.Swap, error)
	FindByUserIDFunc  func(ctx context.Context, userID uint) ([]domain.Swap, error)
	UpdateColumnsFunc func(ctx context.Context, id uint, cols map[string]interface{}) error
	DeleteFunc        func(ctx context.Context, id uint) error
}

func (m *MockSwapRepository) Create(ctx context.Context, swap *domain.Swap) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, swap)
	}
	return nil
}

func (m *MockSwapRepository) FindAll(ctx context.Context) ([]domain.Swap, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return []domain.Swap{}, nil
}

func (m *MockSwapRepository) FindByID(ctx context.Context, id uint) (*domain.Swap, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockSwapRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.Swap, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return []domain.Swap{}, nil
}

func (m *MockSwapRepository) UpdateColumns(ctx context.Context, id uint, cols map[string]interface{}) error {
	if m.UpdateColumnsFunc != nil {
		return m.UpdateColumnsFunc(ctx, id, cols)
	}
	return nil
}

func (m *MockSwapRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockBillingRepository is a mock implementation of BillingRepository
type MockBillingRepository struct {
	CreateFunc        func(ctx context.Context, billing *domain.MonthlyBilling) error
	FindAllFunc       func(ctx context.Context) ([]domain.MonthlyBilling, error)
	FindByIDFunc      func(ctx context.Context, id uint) (*domain.MonthlyBilling, error)
	FindByUserIDFunc  func(ctx context.Context, userID uint) ([]domain.MonthlyBilling, error)
	FindUnpaidFunc    func(ctx context.Context) ([]domain.MonthlyBilling, error)
	UpdateColumnsFunc func(ctx context.Context, id uint, cols map[string]interface{}) error
	DeleteFunc        func(ctx context.Context, id uint) error
}

func (m *MockBillingRepository) Create(ctx context.Context, billing *domain.MonthlyBilling) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, billing)
	}
	return nil
}

func (m *MockBillingRepository) FindAll(ctx context.Context) ([]domain.MonthlyBilling, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return []domain.MonthlyBilling{}, nil
}

func (m *MockBillingRepository) FindByID(ctx context.Context, id uint) (*domain.MonthlyBilling, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockBillingRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.MonthlyBilling, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return []domain.MonthlyBilling{}, nil
}

func (m *MockBillingRepository) FindUnpaid(ctx context.Context) ([]domain.MonthlyBilling, error) {
	if m.FindUnpaidFunc != nil {
		return m.FindUnpaidFunc(ctx)
	}
	return []domain.MonthlyBilling{}, nil
}

func (m *MockBillingRepository) UpdateColumns(ctx context.Context, id uint, cols map[string]interface{}) error {
	if m.UpdateColumnsFunc != nil {
		return m.UpdateColumnsFunc(ctx, id, cols)
	}
	return nil
}

func (m *MockBillingRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}
