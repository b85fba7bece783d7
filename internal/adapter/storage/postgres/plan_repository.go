package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/seu-repo/bss-ve/internal/domain"
	"github.com/seu-repo/bss-ve/internal/ports"
)

type SubscriptionPlanRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewSubscriptionPlanRepository(db *gorm.DB, log *zap.Logger) ports.SubscriptionPlanRepository {
	return &SubscriptionPlanRepository{
		db:  db,
		log: log,
	}
}

func (r *SubscriptionPlanRepository) Create(ctx context.Context, plan *domain.SubscriptionPlan) error {
	if err := r.db.WithContext(ctx).Create(plan).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.NewConflictError("subscription plan already exists")
		}
		return err
	}
	return nil
}

func (r *SubscriptionPlanRepository) FindAll(ctx context.Context) ([]domain.SubscriptionPlan, error) {
	var plans []domain.SubscriptionPlan
	if err := r.db.WithContext(ctx).Order("id").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *SubscriptionPlanRepository) FindByID(ctx context.Context, id uint) (*domain.SubscriptionPlan, error) {
	var plan domain.SubscriptionPlan
	if err := r.db.WithContext(ctx).First(&plan, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("subscription plan", id)
		}
		return nil, err
	}
	return &plan, nil
}

func (r *SubscriptionPlanRepository) UpdateColumns(ctx context.Context, id uint, cols map[string]interface{}) error {
	err := r.db.WithContext(ctx).Model(&domain.SubscriptionPlan{}).Where("id = ?", id).Updates(cols).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.NewConflictError("subscription plan already exists")
	}
	return err
}

func (r *SubscriptionPlanRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Delete(&domain.SubscriptionPlan{}, id).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return domain.NewConflictError("subscription plan is referenced by existing users")
	}
	return err
}
