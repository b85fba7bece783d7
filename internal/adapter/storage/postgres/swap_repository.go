package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/seu-repo/bss-ve/internal/domain"
	"github.com/seu-repo/bss-ve/internal/ports"
)

type SwapRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewSwapRepository(db *gorm.DB, log *zap.Logger) ports.SwapRepository {
	return &SwapRepository{
		db:  db,
		log: log,
	}
}

func (r *SwapRepository) Create(ctx context.Context, swap *domain.Swap) error {
	return r.db.WithContext(ctx).Create(swap).Error
}

func (r *SwapRepository) FindAll(ctx context.Context) ([]domain.Swap, error) {
	var swaps []domain.Swap
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("id").
		Find(&swaps).Error
	if err != nil {
		return nil, err
	}
	return swaps, nil
}

func (r *SwapRepository) FindByID(ctx context.Context, id uint) (*domain.Swap, error) {
	var swap domain.Swap
	err := r.db.WithContext(ctx).
		Preload("User").
		First(&swap, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("swap", id)
		}
		return nil, err
	}
	return &swap, nil
}

func (r *SwapRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.Swap, error) {
	var swaps []domain.Swap
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		Order("id").
		Find(&swaps).Error
	if err != nil {
		return nil, err
	}
	return swaps, nil
}

func (r *SwapRepository) UpdateColumns(ctx context.Context, id uint, cols map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&domain.Swap{}).Where("id = ?", id).Updates(cols).Error
}

func (r *SwapRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Swap{}, id).Error
}
