package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/seu-repo/bss-ve/internal/domain"
	"github.com/seu-repo/bss-ve/internal/ports"
)

type SlotRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewSlotRepository(db *gorm.DB, log *zap.Logger) ports.SlotRepository {
	return &SlotRepository{
		db:  db,
		log: log,
	}
}

func (r *SlotRepository) Create(ctx context.Context, slot *domain.Slot) error {
	return r.db.WithContext(ctx).Create(slot).Error
}

func (r *SlotRepository) FindAll(ctx context.Context) ([]domain.Slot, error) {
	var slots []domain.Slot
	err := r.db.WithContext(ctx).
		Preload("Station").
		Preload("Battery").
		Order("id").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *SlotRepository) FindByID(ctx context.Context, id uint) (*domain.Slot, error) {
	var slot domain.Slot
	err := r.db.WithContext(ctx).
		Preload("Station").
		Preload("Battery").
		First(&slot, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("slot", id)
		}
		return nil, err
	}
	return &slot, nil
}

func (r *SlotRepository) FindByStationID(ctx context.Context, stationID uint) ([]domain.Slot, error) {
	var slots []domain.Slot
	err := r.db.WithContext(ctx).
		Preload("Station").
		Preload("Battery").
		Where("station_id = ?", stationID).
		Order("slot_number").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *SlotRepository) UpdateColumns(ctx context.Context, id uint, cols map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&domain.Slot{}).Where("id = ?", id).Updates(cols).Error
}

func (r *SlotRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Delete(&domain.Slot{}, id).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return domain.NewConflictError("slot is referenced by existing records")
	}
	return err
}
