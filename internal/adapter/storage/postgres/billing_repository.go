package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/seu-repo/bss-ve/internal/domain"
	"github.com/seu-repo/bss-ve/internal/ports"
)

type BillingRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewBillingRepository(db *gorm.DB, log *zap.Logger) ports.BillingRepository {
	return &BillingRepository{
		db:  db,
		log: log,
	}
}

func (r *BillingRepository) Create(ctx context.Context, billing *domain.MonthlyBilling) error {
	return r.db.WithContext(ctx).Create(billing).Error
}

func (r *BillingRepository) FindAll(ctx context.Context) ([]domain.MonthlyBilling, error) {
	var billings []domain.MonthlyBilling
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("id").
		Find(&billings).Error
	if err != nil {
		return nil, err
	}
	return billings, nil
}

func (r *BillingRepository) FindByID(ctx context.Context, id uint) (*domain.MonthlyBilling, error) {
	var billing domain.MonthlyBilling
	err := r.db.WithContext(ctx).
		Preload("User").
		First(&billing, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("billing record", id)
		}
		return nil, err
	}
	return &billing, nil
}

func (r *BillingRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.MonthlyBilling, error) {
	var billings []domain.MonthlyBilling
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		Order("billing_month desc").
		Find(&billings).Error
	if err != nil {
		return nil, err
	}
	return billings, nil
}

// FindUnpaid returns rows whose payment_status is unpaid, pending or never
// set. NULL is included because legacy rows predate the status column.
func (r *BillingRepository) FindUnpaid(ctx context.Context) ([]domain.MonthlyBilling, error) {
	var billings []domain.MonthlyBilling
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("payment_status IN ? OR payment_status IS NULL",
			[]domain.PaymentStatus{domain.PaymentStatusUnpaid, domain.PaymentStatusPending}).
		Order("id").
		Find(&billings).Error
	if err != nil {
		return nil, err
	}
	return billings, nil
}

func (r *BillingRepository) UpdateColumns(ctx context.Context, id uint, cols map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&domain.MonthlyBilling{}).Where("id = ?", id).Updates(cols).Error
}

func (r *BillingRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.MonthlyBilling{}, id).Error
}
