package fleet

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/seu-repo/bss-ve/internal/adapter/queue"
	"github.com/seu-repo/bss-ve/internal/domain"
	"github.com/seu-repo/bss-ve/internal/observability/telemetry"
	"github.com/seu-repo/bss-ve/internal/ports"
)

// Service manages stations, slots, batteries and BMS health logs.
type Service struct {
	stations  ports.StationRepository
	batteries ports.BatteryRepository
	slots     ports.SlotRepository
	logs      ports.HealthLogRepository
	mq        queue.MessageQueue
	log       *zap.Logger
}

func NewService(
	stations ports.StationRepository,
	batteries ports.BatteryRepository,
	slots ports.SlotRepository,
	logs ports.HealthLogRepository,
	mq queue.MessageQueue,
	log *zap.Logger,
) ports.FleetService {
	return &Service{
		stations:  stations,
		batteries: batteries,
		slots:     slots,
		logs:      logs,
		mq:        mq,
		log:       log,
	}
}

// Stations

func (s *Service) CreateStation(ctx context.Context, station *domain.Station) (*domain.Station, error) {
	if station.Name == "" {
		return nil, domain.NewValidationError("Missing required field: name")
	}
	if err := s.stations.Create(ctx, station); err != nil {
		return nil, err
	}
	return station, nil
}

func (s *Service) ListStations(ctx context.Context) ([]domain.Station, error) {
	return s.stations.FindAll(ctx)
}

func (s *Service) GetStation(ctx context.Context, id uint) (*domain.Station, error) {
	return s.stations.FindByID(ctx, id)
}

func (s *Service) UpdateStation(ctx context.Context, id uint, fields domain.Fields) error {
	if _, err := s.stations.FindByID(ctx, id); err != nil {
		return err
	}

	cols := map[string]interface{}{}
	if fields.Has("name") {
		v, err := fields.String("name")
		if err != nil {
			return err
		}
		if v == nil {
			return domain.NewValidationError("field name cannot be null")
		}
		cols["name"] = *v
	}
	if fields.Has("location") {
		v, err := fields.String("location")
		if err != nil {
			return err
		}
		cols["location"] = v
	}
	if len(cols) == 0 {
		return nil
	}
	return s.stations.UpdateColumns(ctx, id, cols)
}

func (s *Service) DeleteStation(ctx context.Context, id uint) error {
	if _, err := s.stations.FindByID(ctx, id); err != nil {
		return err
	}
	return s.stations.Delete(ctx, id)
}

func (s *Service) ListStationBatteries(ctx context.Context, stationID uint) ([]domain.Battery, error) {
	if _, err := s.stations.FindByID(ctx, stationID); err != nil {
		return nil, err
	}
	return s.batteries.FindByStationID(ctx, stationID)
}

func (s *Service) ListStationSlots(ctx context.Context, stationID uint) ([]domain.Slot, error) {
	if _, err := s.stations.FindByID(ctx, stationID); err != nil {
		return nil, err
	}
	return s.slots.FindByStationID(ctx, stationID)
}

// Batteries

func (s *Service) CreateBattery(ctx context.Context, battery *domain.Battery) (*domain.Battery, error) {
	if battery.SerialNumber == "" || battery.Status == "" {
		return nil, domain.NewValidationError("Missing required fields: serial_number, status")
	}
	if battery.StationID != nil {
		if _, err := s.stations.FindByID(ctx, *battery.StationID); err != nil {
			return nil, err
		}
	}
	if err := s.batteries.Create(ctx, battery); err != nil {
		return nil, err
	}
	return battery, nil
}

func (s *Service) ListBatteries(ctx context.Context) ([]domain.Battery, error) {
	return s.batteries.FindAll(ctx)
}

func (s *Service) GetBattery(ctx context.Context, id uint) (*domain.Battery, error) {
	return s.batteries.FindByID(ctx, id)
}

func (s *Service) UpdateBattery(ctx context.Context, id uint, fields domain.Fields) error {
	if _, err := s.batteries.FindByID(ctx, id); err != nil {
		return err
	}

	cols := map[string]interface{}{}
	if fields.Has("station_id") {
		v, err := fields.Uint("station_id")
		if err != nil {
			return err
		}
		if v != nil {
			if _, err := s.stations.FindByID(ctx, *v); err != nil {
				return err
			}
		}
		cols["station_id"] = v
	}
	for _, key := range []string{"status", "serial_number"} {
		if !fields.Has(key) {
			continue
		}
		v, err := fields.String(key)
		if err != nil {
			return err
		}
		if v == nil {
			return domain.NewValidationError("field %s cannot be null", key)
		}
		cols[key] = *v
	}
	for _, key := range []string{"battery_type", "manufacture_date"} {
		if !fields.Has(key) {
			continue
		}
		v, err := fields.String(key)
		if err != nil {
			return err
		}
		cols[key] = v
	}
	if fields.Has("battery_capacity") {
		v, err := fields.Float("battery_capacity")
		if err != nil {
			return err
		}
		cols["battery_capacity"] = v
	}
	if len(cols) == 0 {
		return nil
	}
	return s.batteries.UpdateColumns(ctx, id, cols)
}

func (s *Service) DeleteBattery(ctx context.Context, id uint) error {
	if _, err := s.batteries.FindByID(ctx, id); err != nil {
		return err
	}
	return s.batteries.Delete(ctx, id)
}

// Slots

func (s *Service) CreateSlot(ctx context.Context, slot *domain.Slot) (*domain.Slot, error) {
	if slot.StationID == 0 || slot.SlotNumber == 0 {
		return nil, domain.NewValidationError("Missing required fields: station_id, slot_number")
	}
	if _, err := s.stations.FindByID(ctx, slot.StationID); err != nil {
		return nil, err
	}
	if slot.BatteryID != nil {
		if _, err := s.batteries.FindByID(ctx, *slot.BatteryID); err != nil {
			return nil, err
		}
	}
	if slot.Status == "" {
		slot.Status = domain.SlotStatusEmpty
	}
	if err := s.slots.Create(ctx, slot); err != nil {
		return nil, err
	}
	if slot.Status == domain.SlotStatusOccupied {
		telemetry.SlotsOccupied.Inc()
	}
	return slot, nil
}

func (s *Service) ListSlots(ctx context.Context) ([]domain.Slot, error) {
	return s.slots.FindAll(ctx)
}

func (s *Service) GetSlot(ctx context.Context, id uint) (*domain.Slot, error) {
	return s.slots.FindByID(ctx, id)
}

func (s *Service) UpdateSlot(ctx context.Context, id uint, fields domain.Fields) error {
	if _, err := s.slots.FindByID(ctx, id); err != nil {
		return err
	}

	cols := map[string]interface{}{}
	if fields.Has("station_id") {
		v, err := fields.Uint("station_id")
		if err != nil {
			return err
		}
		if v == nil {
			return domain.NewValidationError("field station_id cannot be null")
		}
		if _, err := s.stations.FindByID(ctx, *v); err != nil {
			return err
		}
		cols["station_id"] = *v
	}
	if fields.Has("battery_id") {
		v, err := fields.Uint("battery_id")
		if err != nil {
			return err
		}
		if v != nil {
			if _, err := s.batteries.FindByID(ctx, *v); err != nil {
				return err
			}
		}
		cols["battery_id"] = v
	}
	if fields.Has("slot_number") {
		v, err := fields.Int("slot_number")
		if err != nil {
			return err
		}
		if v == nil {
			return domain.NewValidationError("field slot_number cannot be null")
		}
		cols["slot_number"] = *v
	}
	if fields.Has("status") {
		v, err := fields.String("status")
		if err != nil {
			return err
		}
		if v == nil {
			return domain.NewValidationError("field status cannot be null")
		}
		cols["status"] = *v
	}
	if fields.Has("is_charging") {
		v, err := fields.Bool("is_charging")
		if err != nil {
			return err
		}
		if v == nil {
			return domain.NewValidationError("field is_charging cannot be null")
		}
		cols["is_charging"] = *v
	}
	if len(cols) == 0 {
		return nil
	}
	cols["last_updated"] = time.Now()
	return s.slots.UpdateColumns(ctx, id, cols)
}

func (s *Service) DeleteSlot(ctx context.Context, id uint) error {
	if _, err := s.slots.FindByID(ctx, id); err != nil {
		return err
	}
	return s.slots.Delete(ctx, id)
}

// AssignBattery puts a battery into a slot and marks the slot occupied.
func (s *Service) AssignBattery(ctx context.Context, slotID, batteryID uint) error {
	slot, err := s.slots.FindByID(ctx, slotID)
	if err != nil {
		return err
	}
	if _, err := s.batteries.FindByID(ctx, batteryID); err != nil {
		return err
	}

	cols := map[string]interface{}{
		"battery_id":   batteryID,
		"status":       domain.SlotStatusOccupied,
		"last_updated": time.Now(),
	}
	if err := s.slots.UpdateColumns(ctx, slotID, cols); err != nil {
		return err
	}

	if slot.Status != domain.SlotStatusOccupied {
		telemetry.SlotsOccupied.Inc()
	}
	s.publish(queue.SubjectSlotAssigned, map[string]interface{}{
		"slot_id":    slotID,
		"station_id": slot.StationID,
		"battery_id": batteryID,
	})
	return nil
}

// RemoveBattery empties a slot and stops charging.
func (s *Service) RemoveBattery(ctx context.Context, slotID uint) error {
	slot, err := s.slots.FindByID(ctx, slotID)
	if err != nil {
		return err
	}

	cols := map[string]interface{}{
		"battery_id":   nil,
		"status":       domain.SlotStatusEmpty,
		"is_charging":  false,
		"last_updated": time.Now(),
	}
	if err := s.slots.UpdateColumns(ctx, slotID, cols); err != nil {
		return err
	}

	if slot.Status == domain.SlotStatusOccupied {
		telemetry.SlotsOccupied.Dec()
	}
	s.publish(queue.SubjectSlotReleased, map[string]interface{}{
		"slot_id":    slotID,
		"station_id": slot.StationID,
		"battery_id": slot.BatteryID,
	})
	return nil
}

// Health logs

func (s *Service) CreateHealthLog(ctx context.Context, hlog *domain.BatteryHealthLog) (*domain.BatteryHealthLog, error) {
	if hlog.BatteryID == 0 {
		return nil, domain.NewValidationError("Missing required field: battery_id")
	}
	if _, err := s.batteries.FindByID(ctx, hlog.BatteryID); err != nil {
		return nil, err
	}
	if err := s.logs.Create(ctx, hlog); err != nil {
		return nil, err
	}
	telemetry.HealthLogsIngested.Inc()
	return hlog, nil
}

func (s *Service) ListHealthLogs(ctx context.Context) ([]domain.BatteryHealthLog, error) {
	return s.logs.FindAll(ctx)
}

func (s *Service) GetHealthLog(ctx context.Context, id uint) (*domain.BatteryHealthLog, error) {
	return s.logs.FindByID(ctx, id)
}

func (s *Service) ListBatteryHealthLogs(ctx context.Context, batteryID uint) ([]domain.BatteryHealthLog, error) {
	if _, err := s.batteries.FindByID(ctx, batteryID); err != nil {
		return nil, err
	}
	return s.logs.FindByBatteryID(ctx, batteryID)
}

func (s *Service) UpdateHealthLog(ctx context.Context, id uint, fields domain.Fields) error {
	if _, err := s.logs.FindByID(ctx, id); err != nil {
		return err
	}

	cols := map[string]interface{}{}
	if fields.Has("battery_id") {
		v, err := fields.Uint("battery_id")
		if err != nil {
			return err
		}
		if v == nil {
			return domain.NewValidationError("field battery_id cannot be null")
		}
		if _, err := s.batteries.FindByID(ctx, *v); err != nil {
			return err
		}
		cols["battery_id"] = *v
	}
	for _, key := range []string{
		"soh_percent", "pack_voltage", "cell_voltage_min", "cell_voltage_max",
		"cell_voltage_diff", "max_temp", "ambient_temp", "humidity", "internal_resist",
	} {
		if !fields.Has(key) {
			continue
		}
		v, err := fields.Float(key)
		if err != nil {
			return err
		}
		cols[key] = v
	}
	if fields.Has("cycle_count") {
		v, err := fields.Int("cycle_count")
		if err != nil {
			return err
		}
		cols["cycle_count"] = v
	}
	if fields.Has("error_code") {
		v, err := fields.String("error_code")
		if err != nil {
			return err
		}
		cols["error_code"] = v
	}
	if len(cols) == 0 {
		return nil
	}
	return s.logs.UpdateColumns(ctx, id, cols)
}

func (s *Service) DeleteHealthLog(ctx context.Context, id uint) error {
	if _, err := s.logs.FindByID(ctx, id); err != nil {
		return err
	}
	return s.logs.Delete(ctx, id)
}

func (s *Service) publish(subject string, payload map[string]interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	if err := s.mq.Publish(subject, data); err != nil {
		s.log.Error("Failed to publish event", zap.String("subject", subject), zap.Error(err))
	}
}
