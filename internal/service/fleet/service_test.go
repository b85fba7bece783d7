package fleet

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/seu-repo/bss-ve/internal/adapter/queue"
	"github.com/seu-repo/bss-ve/internal/domain"
	"github.com/seu-repo/bss-ve/internal/mocks"
)

func newTestLogger() *zap.Logger {
	logger, _ := zap.NewDevelopment()
	return logger
}

func uintPtr(v uint) *uint { return &v }

func TestCreateStation_MissingName(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service := NewService(&mocks.MockStationRepository{}, &mocks.MockBatteryRepository{}, &mocks.MockSlotRepository{}, &mocks.MockHealthLogRepository{}, mocks.NewMockMessageQueue(), newTestLogger())

	// Act
	_, err := service.CreateStation(ctx, &domain.Station{})

	// Assert
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("expected ValidationError, got %T", err)
	}
}

func TestCreateBattery_StationNotFound(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockStations := &mocks.MockStationRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Station, error) {
			return nil, domain.NewNotFoundError("station", id)
		},
	}
	service := NewService(mockStations, &mocks.MockBatteryRepository{}, &mocks.MockSlotRepository{}, &mocks.MockHealthLogRepository{}, mocks.NewMockMessageQueue(), newTestLogger())

	// Act
	_, err := service.CreateBattery(ctx, &domain.Battery{
		SerialNumber: "BAT-001",
		Status:       domain.BatteryStatusAvailable,
		StationID:    uintPtr(99),
	})

	// Assert
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("expected NotFoundError, got %T", err)
	}
}

func TestCreateBattery_UnassignedIsAllowed(t *testing.T) {
	// Arrange
	ctx := context.Background()

	var savedBattery *domain.Battery
	mockBatteries := &mocks.MockBatteryRepository{
		CreateFunc: func(ctx context.Context, battery *domain.Battery) error {
			savedBattery = battery
			return nil
		},
	}
	service := NewService(&mocks.MockStationRepository{}, mockBatteries, &mocks.MockSlotRepository{}, &mocks.MockHealthLogRepository{}, mocks.NewMockMessageQueue(), newTestLogger())

	// Act
	battery, err := service.CreateBattery(ctx, &domain.Battery{
		SerialNumber: "BAT-001",
		Status:       domain.BatteryStatusAvailable,
	})

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if battery.StationID != nil {
		t.Error("expected battery to stay unassigned")
	}
	if savedBattery == nil {
		t.Error("expected battery to be saved")
	}
}

func TestCreateSlot_DefaultsToEmpty(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockStations := &mocks.MockStationRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Station, error) {
			return &domain.Station{ID: id, Name: "Centro"}, nil
		},
	}
	service := NewService(mockStations, &mocks.MockBatteryRepository{}, &mocks.MockSlotRepository{}, &mocks.MockHealthLogRepository{}, mocks.NewMockMessageQueue(), newTestLogger())

	// Act
	slot, err := service.CreateSlot(ctx, &domain.Slot{StationID: 1, SlotNumber: 3})

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if slot.Status != domain.SlotStatusEmpty {
		t.Errorf("expected default status 'empty', got '%s'", slot.Status)
	}
}

func TestCreateSlot_MissingFields(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service := NewService(&mocks.MockStationRepository{}, &mocks.MockBatteryRepository{}, &mocks.MockSlotRepository{}, &mocks.MockHealthLogRepository{}, mocks.NewMockMessageQueue(), newTestLogger())

	// Act
	_, err := service.CreateSlot(ctx, &domain.Slot{StationID: 1})

	// Assert
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("expected ValidationError, got %T", err)
	}
}

func TestAssignBattery_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()

	mockSlots := &mocks.MockSlotRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Slot, error) {
			return &domain.Slot{ID: id, StationID: 1, SlotNumber: 2, Status: domain.SlotStatusEmpty}, nil
		},
	}
	mockBatteries := &mocks.MockBatteryRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Battery, error) {
			return &domain.Battery{ID: id, SerialNumber: "BAT-001"}, nil
		},
	}
	var updatedCols map[string]interface{}
	mockSlots.UpdateColumnsFunc = func(ctx context.Context, id uint, cols map[string]interface{}) error {
		updatedCols = cols
		return nil
	}
	mockQueue := mocks.NewMockMessageQueue()

	service := NewService(&mocks.MockStationRepository{}, mockBatteries, mockSlots, &mocks.MockHealthLogRepository{}, mockQueue, newTestLogger())

	// Act
	err := service.AssignBattery(ctx, 5, 10)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updatedCols["battery_id"] != uint(10) {
		t.Errorf("expected battery_id 10, got %v", updatedCols["battery_id"])
	}
	if updatedCols["status"] != domain.SlotStatusOccupied {
		t.Errorf("expected status 'occupied', got %v", updatedCols["status"])
	}
	if _, ok := updatedCols["last_updated"]; !ok {
		t.Error("expected last_updated to be touched")
	}

	messages := mockQueue.GetPublishedMessages(queue.SubjectSlotAssigned)
	if len(messages) != 1 {
		t.Fatalf("expected 1 slot.assigned message, got %d", len(messages))
	}
	var event map[string]interface{}
	if err := json.Unmarshal(messages[0], &event); err != nil {
		t.Fatalf("failed to decode event: %v", err)
	}
	if event["slot_id"].(float64) != 5 {
		t.Errorf("expected slot_id 5 in event, got %v", event["slot_id"])
	}
}

func TestAssignBattery_BatteryNotFound(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockSlots := &mocks.MockSlotRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Slot, error) {
			return &domain.Slot{ID: id, StationID: 1}, nil
		},
	}
	mockBatteries := &mocks.MockBatteryRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Battery, error) {
			return nil, domain.NewNotFoundError("battery", id)
		},
	}
	mockQueue := mocks.NewMockMessageQueue()
	service := NewService(&mocks.MockStationRepository{}, mockBatteries, mockSlots, &mocks.MockHealthLogRepository{}, mockQueue, newTestLogger())

	// Act
	err := service.AssignBattery(ctx, 5, 99)

	// Assert
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("expected NotFoundError, got %T", err)
	}
	if len(mockQueue.GetPublishedMessages(queue.SubjectSlotAssigned)) != 0 {
		t.Error("expected no event on failed assignment")
	}
}

func TestRemoveBattery_EmptiesSlot(t *testing.T) {
	// Arrange
	ctx := context.Background()

	var updatedCols map[string]interface{}
	mockSlots := &mocks.MockSlotRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Slot, error) {
			return &domain.Slot{
				ID:         id,
				StationID:  1,
				BatteryID:  uintPtr(10),
				Status:     domain.SlotStatusOccupied,
				IsCharging: true,
			}, nil
		},
		UpdateColumnsFunc: func(ctx context.Context, id uint, cols map[string]interface{}) error {
			updatedCols = cols
			return nil
		},
	}
	mockQueue := mocks.NewMockMessageQueue()
	service := NewService(&mocks.MockStationRepository{}, &mocks.MockBatteryRepository{}, mockSlots, &mocks.MockHealthLogRepository{}, mockQueue, newTestLogger())

	// Act
	err := service.RemoveBattery(ctx, 5)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updatedCols["battery_id"] != nil {
		t.Errorf("expected battery_id cleared, got %v", updatedCols["battery_id"])
	}
	if updatedCols["status"] != domain.SlotStatusEmpty {
		t.Errorf("expected status 'empty', got %v", updatedCols["status"])
	}
	if updatedCols["is_charging"] != false {
		t.Errorf("expected is_charging false, got %v", updatedCols["is_charging"])
	}

	messages := mockQueue.GetPublishedMessages(queue.SubjectSlotReleased)
	if len(messages) != 1 {
		t.Errorf("expected 1 slot.released message, got %d", len(messages))
	}
}

func TestUpdateSlot_NullBatteryClearsColumn(t *testing.T) {
	// Arrange
	ctx := context.Background()

	var updatedCols map[string]interface{}
	mockSlots := &mocks.MockSlotRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Slot, error) {
			return &domain.Slot{ID: id, StationID: 1, BatteryID: uintPtr(10)}, nil
		},
		UpdateColumnsFunc: func(ctx context.Context, id uint, cols map[string]interface{}) error {
			updatedCols = cols
			return nil
		},
	}
	service := NewService(&mocks.MockStationRepository{}, &mocks.MockBatteryRepository{}, mockSlots, &mocks.MockHealthLogRepository{}, mocks.NewMockMessageQueue(), newTestLogger())

	// Act
	err := service.UpdateSlot(ctx, 5, domain.Fields{"battery_id": json.RawMessage("null")})

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	v, ok := updatedCols["battery_id"]
	if !ok {
		t.Fatal("expected battery_id column to be updated")
	}
	if v.(*uint) != nil {
		t.Errorf("expected nil battery id, got %v", v)
	}
}

func TestUpdateSlot_NullStationRejected(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockSlots := &mocks.MockSlotRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Slot, error) {
			return &domain.Slot{ID: id, StationID: 1}, nil
		},
	}
	service := NewService(&mocks.MockStationRepository{}, &mocks.MockBatteryRepository{}, mockSlots, &mocks.MockHealthLogRepository{}, mocks.NewMockMessageQueue(), newTestLogger())

	// Act
	err := service.UpdateSlot(ctx, 5, domain.Fields{"station_id": json.RawMessage("null")})

	// Assert
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("expected ValidationError, got %T", err)
	}
}

func TestCreateHealthLog_MissingBattery(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service := NewService(&mocks.MockStationRepository{}, &mocks.MockBatteryRepository{}, &mocks.MockSlotRepository{}, &mocks.MockHealthLogRepository{}, mocks.NewMockMessageQueue(), newTestLogger())

	// Act
	_, err := service.CreateHealthLog(ctx, &domain.BatteryHealthLog{})

	// Assert
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("expected ValidationError, got %T", err)
	}
}

func TestCreateHealthLog_BatteryNotFound(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockBatteries := &mocks.MockBatteryRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Battery, error) {
			return nil, domain.NewNotFoundError("battery", id)
		},
	}
	service := NewService(&mocks.MockStationRepository{}, mockBatteries, &mocks.MockSlotRepository{}, &mocks.MockHealthLogRepository{}, mocks.NewMockMessageQueue(), newTestLogger())

	// Act
	_, err := service.CreateHealthLog(ctx, &domain.BatteryHealthLog{BatteryID: 99})

	// Assert
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("expected NotFoundError, got %T", err)
	}
}

func TestListStationBatteries_StationNotFound(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockStations := &mocks.MockStationRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Station, error) {
			return nil, domain.NewNotFoundError("station", id)
		},
	}
	service := NewService(mockStations, &mocks.MockBatteryRepository{}, &mocks.MockSlotRepository{}, &mocks.MockHealthLogRepository{}, mocks.NewMockMessageQueue(), newTestLogger())

	// Act
	_, err := service.ListStationBatteries(ctx, 99)

	// Assert
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("expected NotFoundError, got %T", err)
	}
}
