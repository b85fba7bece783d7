package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/seu-repo/bss-ve/internal/domain"
	"github.com/seu-repo/bss-ve/internal/ports"
)

type StationRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewStationRepository(db *gorm.DB, log *zap.Logger) ports.StationRepository {
	return &StationRepository{
		db:  db,
		log: log,
	}
}

func (r *StationRepository) Create(ctx context.Context, station *domain.Station) error {
	return r.db.WithContext(ctx).Create(station).Error
}

func (r *StationRepository) FindAll(ctx context.Context) ([]domain.Station, error) {
	var stations []domain.Station
	if err := r.db.WithContext(ctx).Order("id").Find(&stations).Error; err != nil {
		return nil, err
	}
	return stations, nil
}

func (r *StationRepository) FindByID(ctx context.Context, id uint) (*domain.Station, error) {
	var station domain.Station
	if err := r.db.WithContext(ctx).First(&station, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("station", id)
		}
		return nil, err
	}
	return &station, nil
}

func (r *StationRepository) UpdateColumns(ctx context.Context, id uint, cols map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&domain.Station{}).Where("id = ?", id).Updates(cols).Error
}

func (r *StationRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Delete(&domain.Station{}, id).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return domain.NewConflictError("station is referenced by existing records")
	}
	return err
}
