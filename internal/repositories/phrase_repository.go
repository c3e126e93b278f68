package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nickross327/culturecompass-app-sub000/internal/models/db_models"
)

type PhraseRepository interface {
	FindByID(ctx context.Context, id string) (*db_models.Phrase, error)
	ListByCountryID(ctx context.Context, countryID uuid.UUID, category string) ([]db_models.Phrase, error)
	ListByIDs(ctx context.Context, ids []string) ([]db_models.Phrase, error)
}

type phraseRepository struct {
	db *gorm.DB
}

func NewPhraseRepository(db *gorm.DB) PhraseRepository {
	return &phraseRepository{db: db}
}

func (r *phraseRepository) FindByID(ctx context.Context, id string) (*db_models.Phrase, error) {
	var phrase db_models.Phrase
	err := r.db.WithContext(ctx).First(&phrase, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &phrase, nil
}

func (r *phraseRepository) ListByCountryID(ctx context.Context, countryID uuid.UUID, category string) ([]db_models.Phrase, error) {
	var phrases []db_models.Phrase
	q := r.db.WithContext(ctx).Where("country_id = ?", countryID)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	err := q.Order("category ASC, english_phrase ASC").Find(&phrases).Error
	return phrases, err
}

func (r *phraseRepository) ListByIDs(ctx context.Context, ids []string) ([]db_models.Phrase, error) {
	var phrases []db_models.Phrase
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&phrases).Error
	return phrases, err
}
