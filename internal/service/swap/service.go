package swap

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/seu-repo/bss-ve/internal/adapter/queue"
	"github.com/seu-repo/bss-ve/internal/domain"
	"github.com/seu-repo/bss-ve/internal/observability/telemetry"
	"github.com/seu-repo/bss-ve/internal/ports"
)

// Service records battery-swap transactions. Every referenced row is
// validated before the swap is persisted.
type Service struct {
	swaps     ports.SwapRepository
	users     ports.UserRepository
	batteries ports.BatteryRepository
	stations  ports.StationRepository
	mq        queue.MessageQueue
	log       *zap.Logger
}

func NewService(
	swaps ports.SwapRepository,
	users ports.UserRepository,
	batteries ports.BatteryRepository,
	stations ports.StationRepository,
	mq queue.MessageQueue,
	log *zap.Logger,
) ports.SwapService {
	return &Service{
		swaps:     swaps,
		users:     users,
		batteries: batteries,
		stations:  stations,
		mq:        mq,
		log:       log,
	}
}

func (s *Service) CreateSwap(ctx context.Context, swap *domain.Swap) (*domain.Swap, error) {
	if swap.UserID == 0 {
		return nil, domain.NewValidationError("Missing required field: user_id")
	}
	if _, err := s.users.FindByID(ctx, swap.UserID); err != nil {
		return nil, err
	}
	if swap.IssuedBatteryID != nil {
		if _, err := s.batteries.FindByID(ctx, *swap.IssuedBatteryID); err != nil {
			return nil, err
		}
	}
	if swap.ReturnedBatteryID != nil {
		if _, err := s.batteries.FindByID(ctx, *swap.ReturnedBatteryID); err != nil {
			return nil, err
		}
	}
	if swap.PickupStationID != nil {
		if _, err := s.stations.FindByID(ctx, *swap.PickupStationID); err != nil {
			return nil, err
		}
	}
	if swap.DepositStationID != nil {
		if _, err := s.stations.FindByID(ctx, *swap.DepositStationID); err != nil {
			return nil, err
		}
	}

	if err := s.swaps.Create(ctx, swap); err != nil {
		return nil, err
	}
	telemetry.SwapsRecorded.Inc()

	if data, err := json.Marshal(swap); err == nil {
		if err := s.mq.Publish(queue.SubjectSwapRecorded, data); err != nil {
			s.log.Error("Failed to publish swap event", zap.Uint("swap_id", swap.ID), zap.Error(err))
		}
	}
	return swap, nil
}

func (s *Service) ListSwaps(ctx context.Context) ([]domain.Swap, error) {
	return s.swaps.FindAll(ctx)
}

func (s *Service) GetSwap(ctx context.Context, id uint) (*domain.Swap, error) {
	return s.swaps.FindByID(ctx, id)
}

func (s *Service) ListUserSwaps(ctx context.Context, userID uint) ([]domain.Swap, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.swaps.FindByUserID(ctx, userID)
}

func (s *Service) UpdateSwap(ctx context.Context, id uint, fields domain.Fields) error {
	if _, err := s.swaps.FindByID(ctx, id); err != nil {
		return err
	}

	cols := map[string]interface{}{}
	if fields.Has("user_id") {
		v, err := fields.Uint("user_id")
		if err != nil {
			return err
		}
		if v == nil {
			return domain.NewValidationError("field user_id cannot be null")
		}
		if _, err := s.users.FindByID(ctx, *v); err != nil {
			return err
		}
		cols["user_id"] = *v
	}
	for _, key := range []string{"issued_battery_id", "returned_battery_id"} {
		if !fields.Has(key) {
			continue
		}
		v, err := fields.Uint(key)
		if err != nil {
			return err
		}
		if v != nil {
			if _, err := s.batteries.FindByID(ctx, *v); err != nil {
				return err
			}
		}
		cols[key] = v
	}
	for _, key := range []string{"pickup_station_id", "deposit_station_id"} {
		if !fields.Has(key) {
			continue
		}
		v, err := fields.Uint(key)
		if err != nil {
			return err
		}
		if v != nil {
			if _, err := s.stations.FindByID(ctx, *v); err != nil {
				return err
			}
		}
		cols[key] = v
	}
	for _, key := range []string{"start_time", "end_time"} {
		if !fields.Has(key) {
			continue
		}
		v, err := fields.Time(key)
		if err != nil {
			return err
		}
		cols[key] = v
	}
	for _, key := range []string{"battery_percentage_start", "battery_percentage_end", "ah_used"} {
		if !fields.Has(key) {
			continue
		}
		v, err := fields.Float(key)
		if err != nil {
			return err
		}
		cols[key] = v
	}
	if len(cols) == 0 {
		return nil
	}
	return s.swaps.UpdateColumns(ctx, id, cols)
}

func (s *Service) DeleteSwap(ctx context.Context, id uint) error {
	if _, err := s.swaps.FindByID(ctx, id); err != nil {
		return err
	}
	return s.swaps.Delete(ctx, id)
}
