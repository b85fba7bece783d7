package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/seu-repo/bss-ve/internal/domain"
	"github.com/seu-repo/bss-ve/internal/ports"
)

type RFIDCardRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewRFIDCardRepository(db *gorm.DB, log *zap.Logger) ports.RFIDCardRepository {
	return &RFIDCardRepository{
		db:  db,
		log: log,
	}
}

func (r *RFIDCardRepository) Create(ctx context.Context, card *domain.RFIDCard) error {
	if err := r.db.WithContext(ctx).Create(card).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.NewConflictError("rfid_code already registered")
		}
		return err
	}
	return nil
}

func (r *RFIDCardRepository) FindAll(ctx context.Context) ([]domain.RFIDCard, error) {
	var cards []domain.RFIDCard
	if err := r.db.WithContext(ctx).Preload("User").Order("id").Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

func (r *RFIDCardRepository) FindByID(ctx context.Context, id uint) (*domain.RFIDCard, error) {
	var card domain.RFIDCard
	if err := r.db.WithContext(ctx).Preload("User").First(&card, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("rfid card", id)
		}
		return nil, err
	}
	return &card, nil
}

func (r *RFIDCardRepository) FindByCode(ctx context.Context, code string) (*domain.RFIDCard, error) {
	var card domain.RFIDCard
	if err := r.db.WithContext(ctx).Preload("User").First(&card, "rfid_code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("rfid card", nil)
		}
		return nil, err
	}
	return &card, nil
}

func (r *RFIDCardRepository) UpdateColumns(ctx context.Context, id uint, cols map[string]interface{}) error {
	err := r.db.WithContext(ctx).Model(&domain.RFIDCard{}).Where("id = ?", id).Updates(cols).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.NewConflictError("rfid_code already registered")
	}
	return err
}

func (r *RFIDCardRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Delete(&domain.RFIDCard{}, id).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return domain.NewConflictError("rfid card is referenced by existing records")
	}
	return err
}
