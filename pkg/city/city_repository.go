package city

import (
	"context"

	"github.com/Smadden00/sophsAppAPI/entities"
	"gorm.io/gorm"
)

type (
	CityRepository interface {
		GetCitiesByState(ctx context.Context, stateCode string) ([]*entities.City, error)
	}

	cityRepository struct {
		db *gorm.DB
	}
)

func NewCityRepository(db *gorm.DB) CityRepository {
	return &cityRepository{db: db}
}

func (r *cityRepository) GetCitiesByState(ctx context.Context, stateCode string) ([]*entities.City, error) {
	var cities []*entities.City
	if err := r.db.WithContext(ctx).
		Where("state_code = ?", stateCode).
		Order("city asc").
		Find(&cities).Error; err != nil {
		return nil, err
	}
	return cities, nil
}
