package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/seu-repo/bss-ve/internal/domain"
	"github.com/seu-repo/bss-ve/internal/ports"
)

type HealthLogRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewHealthLogRepository(db *gorm.DB, log *zap.Logger) ports.HealthLogRepository {
	return &HealthLogRepository{
		db:  db,
		log: log,
	}
}

func (r *HealthLogRepository) Create(ctx context.Context, hlog *domain.BatteryHealthLog) error {
	return r.db.WithContext(ctx).Create(hlog).Error
}

func (r *HealthLogRepository) FindAll(ctx context.Context) ([]domain.BatteryHealthLog, error) {
	var logs []domain.BatteryHealthLog
	err := r.db.WithContext(ctx).
		Preload("Battery").
		Order("id").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *HealthLogRepository) FindByID(ctx context.Context, id uint) (*domain.BatteryHealthLog, error) {
	var hlog domain.BatteryHealthLog
	err := r.db.WithContext(ctx).
		Preload("Battery").
		First(&hlog, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("battery health log", id)
		}
		return nil, err
	}
	return &hlog, nil
}

func (r *HealthLogRepository) FindByBatteryID(ctx context.Context, batteryID uint) ([]domain.BatteryHealthLog, error) {
	var logs []domain.BatteryHealthLog
	err := r.db.WithContext(ctx).
		Preload("Battery").
		Where("battery_id = ?", batteryID).
		Order("created_at desc").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *HealthLogRepository) UpdateColumns(ctx context.Context, id uint, cols map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&domain.BatteryHealthLog{}).Where("id = ?", id).Updates(cols).Error
}

func (r *HealthLogRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.BatteryHealthLog{}, id).Error
}
