package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/nickross327/culturecompass-app-sub000/internal/models/db_models"
)

type CountryRepository interface {
	List(ctx context.Context, page int, pageSize int) ([]db_models.Country, error)
	FindByName(ctx context.Context, name string) (*db_models.Country, error)
	SearchByKeyword(ctx context.Context, keyword string, page int, pageSize int) ([]db_models.Country, error)
}

type countryRepository struct {
	db *gorm.DB
}

func NewCountryRepository(db *gorm.DB) CountryRepository {
	return &countryRepository{db: db}
}

func (r *countryRepository) List(ctx context.Context, page int, pageSize int) ([]db_models.Country, error) {
	var countries []db_models.Country
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&countries).Error
	return countries, err
}

func (r *countryRepository) FindByName(ctx context.Context, name string) (*db_models.Country, error) {
	var country db_models.Country
	err := r.db.WithContext(ctx).First(&country, "LOWER(name) = LOWER(?)", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &country, nil
}

func (r *countryRepository) SearchByKeyword(ctx context.Context, keyword string, page int, pageSize int) ([]db_models.Country, error) {
	var countries []db_models.Country
	err := r.db.WithContext(ctx).
		Where("name ILIKE ? OR language ILIKE ?", "%"+keyword+"%", "%"+keyword+"%").
		Order("name ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&countries).Error
	return countries, err
}
