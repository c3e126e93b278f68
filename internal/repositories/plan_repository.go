package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/nickross327/culturecompass-app-sub000/internal/models/db_models"
)

type PlanRepository interface {
	ListActive(ctx context.Context) ([]db_models.Plan, error)
	FindByCode(ctx context.Context, code string) (*db_models.Plan, error)
}

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) ListActive(ctx context.Context) ([]db_models.Plan, error) {
	var plans []db_models.Plan
	err := r.db.WithContext(ctx).
		Where("is_active = TRUE").
		Order("price_minor ASC").
		Find(&plans).Error
	return plans, err
}

func (r *planRepository) FindByCode(ctx context.Context, code string) (*db_models.Plan, error) {
	var plan db_models.Plan
	err := r.db.WithContext(ctx).First(&plan, "code = ? AND is_active = TRUE", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}
