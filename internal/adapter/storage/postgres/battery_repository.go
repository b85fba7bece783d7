package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/seu-repo/bss-ve/internal/domain"
	"github.com/seu-repo/bss-ve/internal/ports"
)

type BatteryRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewBatteryRepository(db *gorm.DB, log *zap.Logger) ports.BatteryRepository {
	return &BatteryRepository{
		db:  db,
		log: log,
	}
}

func (r *BatteryRepository) Create(ctx context.Context, battery *domain.Battery) error {
	if err := r.db.WithContext(ctx).Create(battery).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.NewConflictError("serial_number already registered")
		}
		return err
	}
	return nil
}

func (r *BatteryRepository) FindAll(ctx context.Context) ([]domain.Battery, error) {
	var batteries []domain.Battery
	if err := r.db.WithContext(ctx).Order("id").Find(&batteries).Error; err != nil {
		return nil, err
	}
	return batteries, nil
}

func (r *BatteryRepository) FindByID(ctx context.Context, id uint) (*domain.Battery, error) {
	var battery domain.Battery
	if err := r.db.WithContext(ctx).First(&battery, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("battery", id)
		}
		return nil, err
	}
	return &battery, nil
}

func (r *BatteryRepository) FindByStationID(ctx context.Context, stationID uint) ([]domain.Battery, error) {
	var batteries []domain.Battery
	if err := r.db.WithContext(ctx).Where("station_id = ?", stationID).Order("id").Find(&batteries).Error; err != nil {
		return nil, err
	}
	return batteries, nil
}

func (r *BatteryRepository) UpdateColumns(ctx context.Context, id uint, cols map[string]interface{}) error {
	err := r.db.WithContext(ctx).Model(&domain.Battery{}).Where("id = ?", id).Updates(cols).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.NewConflictError("serial_number already registered")
	}
	return err
}

func (r *BatteryRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Delete(&domain.Battery{}, id).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return domain.NewConflictError("battery is referenced by existing records")
	}
	return err
}
