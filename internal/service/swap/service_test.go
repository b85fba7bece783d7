package swap

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

func TestCreateSwap_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()

	mockUsers := &mocks.MockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.User, error) {
			return &domain.User{ID: id, Name: "Ana"}, nil
		},
	}
	mockBatteries := &mocks.MockBatteryRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Battery, error) {
			return &domain.Battery{ID: id}, nil
		},
	}
	mockStations := &mocks.MockStationRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Station, error) {
			return &domain.Station{ID: id}, nil
		},
	}
	var savedSwap *domain.Swap
	mockSwaps := &mocks.MockSwapRepository{
		CreateFunc: func(ctx context.Context, swap *domain.Swap) error {
			swap.ID = 42
			savedSwap = swap
			return nil
		},
	}
	mockQueue := mocks.NewMockMessageQueue()

	service := NewService(mockSwaps, mockUsers, mockBatteries, mockStations, mockQueue, newTestLogger())

	// Act
	swap, err := service.CreateSwap(ctx, &domain.Swap{
		UserID:          1,
		IssuedBatteryID: uintPtr(10),
		PickupStationID: uintPtr(2),
	})

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if swap.ID != 42 {
		t.Errorf("expected swap ID 42, got %d", swap.ID)
	}
	if savedSwap == nil {
		t.Error("expected swap to be saved")
	}

	messages := mockQueue.GetPublishedMessages(queue.SubjectSwapRecorded)
	if len(messages) != 1 {
		t.Fatalf("expected 1 swap.recorded message, got %d", len(messages))
	}
	var event domain.Swap
	if err := json.Unmarshal(messages[0], &event); err != nil {
		t.Fatalf("failed to decode event: %v", err)
	}
	if event.UserID != 1 {
		t.Errorf("expected user_id 1 in event, got %d", event.UserID)
	}
}

func TestCreateSwap_MissingUser(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service := NewService(&mocks.MockSwapRepository{}, &mocks.MockUserRepository{}, &mocks.MockBatteryRepository{}, &mocks.MockStationRepository{}, mocks.NewMockMessageQueue(), newTestLogger())

	// Act
	_, err := service.CreateSwap(ctx, &domain.Swap{})

	// Assert
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("expected ValidationError, got %T", err)
	}
}

func TestCreateSwap_UserNotFound(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUsers := &mocks.MockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.User, error) {
			return nil, domain.NewNotFoundError("user", id)
		},
	}
	mockQueue := mocks.NewMockMessageQueue()
	service := NewService(&mocks.MockSwapRepository{}, mockUsers, &mocks.MockBatteryRepository{}, &mocks.MockStationRepository{}, mockQueue, newTestLogger())

	// Act
	_, err := service.CreateSwap(ctx, &domain.Swap{UserID: 99})

	// Assert
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("expected NotFoundError, got %T", err)
	}
	if len(mockQueue.GetPublishedMessages(queue.SubjectSwapRecorded)) != 0 {
		t.Error("expected no event on failed create")
	}
}

func TestCreateSwap_IssuedBatteryNotFound(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUsers := &mocks.MockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.User, error) {
			return &domain.User{ID: id}, nil
		},
	}
	mockBatteries := &mocks.MockBatteryRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Battery, error) {
			return nil, domain.NewNotFoundError("battery", id)
		},
	}
	service := NewService(&mocks.MockSwapRepository{}, mockUsers, mockBatteries, &mocks.MockStationRepository{}, mocks.NewMockMessageQueue(), newTestLogger())

	// Act
	_, err := service.CreateSwap(ctx, &domain.Swap{UserID: 1, IssuedBatteryID: uintPtr(99)})

	// Assert
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("expected NotFoundError, got %T", err)
	}
}

func TestUpdateSwap_NullBatteryClearsColumn(t *testing.T) {
	// Arrange
	ctx := context.Background()

	var updatedCols map[string]interface{}
	mockSwaps := &mocks.MockSwapRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Swap, error) {
			return &domain.Swap{ID: id, UserID: 1, ReturnedBatteryID: uintPtr(10)}, nil
		},
		UpdateColumnsFunc: func(ctx context.Context, id uint, cols map[string]interface{}) error {
			updatedCols = cols
			return nil
		},
	}
	service := NewService(mockSwaps, &mocks.MockUserRepository{}, &mocks.MockBatteryRepository{}, &mocks.MockStationRepository{}, mocks.NewMockMessageQueue(), newTestLogger())

	// Act
	err := service.UpdateSwap(ctx, 1, domain.Fields{"returned_battery_id": json.RawMessage("null")})

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	v, ok := updatedCols["returned_battery_id"]
	if !ok {
		t.Fatal("expected returned_battery_id column to be updated")
	}
	if v.(*uint) != nil {
		t.Errorf("expected nil battery id, got %v", v)
	}
}

func TestUpdateSwap_NullUserRejected(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockSwaps := &mocks.MockSwapRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Swap, error) {
			return &domain.Swap{ID: id, UserID: 1}, nil
		},
	}
	service := NewService(mockSwaps, &mocks.MockUserRepository{}, &mocks.MockBatteryRepository{}, &mocks.MockStationRepository{}, mocks.NewMockMessageQueue(), newTestLogger())

	// Act
	err := service.UpdateSwap(ctx, 1, domain.Fields{"user_id": json.RawMessage("null")})

	// Assert
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("expected ValidationError, got %T", err)
	}
}

func TestUpdateSwap_BadTimestamp(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockSwaps := &mocks.MockSwapRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Swap, error) {
			return &domain.Swap{ID: id, UserID: 1}, nil
		},
	}
	service := NewService(mockSwaps, &mocks.MockUserRepository{}, &mocks.MockBatteryRepository{}, &mocks.MockStationRepository{}, mocks.NewMockMessageQueue(), newTestLogger())

	// Act
	err := service.UpdateSwap(ctx, 1, domain.Fields{"start_time": json.RawMessage(`"not a time"`)})

	// Assert
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("expected ValidationError, got %T", err)
	}
}

func TestListUserSwaps_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUsers := &mocks.MockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.User, error) {
			return &domain.User{ID: id}, nil
		},
	}
	mockSwaps := &mocks.MockSwapRepository{
		FindByUserIDFunc: func(ctx context.Context, userID uint) ([]domain.Swap, error) {
			return []domain.Swap{{ID: 1, UserID: userID}, {ID: 2, UserID: userID}}, nil
		},
	}
	service := NewService(mockSwaps, mockUsers, &mocks.MockBatteryRepository{}, &mocks.MockStationRepository{}, mocks.NewMockMessageQueue(), newTestLogger())

	// Act
	swaps, err := service.ListUserSwaps(ctx, 1)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(swaps) != 2 {
		t.Errorf("expected 2 swaps, got %d", len(swaps))
	}
}
