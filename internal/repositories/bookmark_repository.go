package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nickross327/culturecompass-app-sub000/internal/models/db_models"
)

type BookmarkRepository interface {
	InsertBookmark(ctx context.Context, bookmark *db_models.PhraseBookmark) error
	ListBookmarks(ctx context.Context, accountID uuid.UUID) ([]db_models.PhraseBookmark, error)
	FindBookmark(ctx context.Context, accountID, phraseID uuid.UUID) (*db_models.PhraseBookmark, error)
	DeleteBookmark(ctx context.Context, accountID uuid.UUID, bookmarkID string) error

	InsertFavorite(ctx context.Context, favorite *db_models.CountryFavorite) error
	ListFavorites(ctx context.Context, accountID uuid.UUID) ([]db_models.CountryFavorite, error)
	FindFavorite(ctx context.Context, accountID, countryID uuid.UUID) (*db_models.CountryFavorite, error)
	DeleteFavorite(ctx context.Context, accountID uuid.UUID, favoriteID string) error
}

type bookmarkRepository struct {
	db *gorm.DB
}

func NewBookmarkRepository(db *gorm.DB) BookmarkRepository {
	return &bookmarkRepository{db: db}
}

func (r *bookmarkRepository) InsertBookmark(ctx context.Context, bookmark *db_models.PhraseBookmark) error {
	return r.db.WithContext(ctx).Create(bookmark).Error
}

func (r *bookmarkRepository) ListBookmarks(ctx context.Context, accountID uuid.UUID) ([]db_models.PhraseBookmark, error) {
	var bookmarks []db_models.PhraseBookmark
	err := r.db.WithContext(ctx).
		Preload("Phrase").
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&bookmarks).Error
	return bookmarks, err
}

func (r *bookmarkRepository) FindBookmark(ctx context.Context, accountID, phraseID uuid.UUID) (*db_models.PhraseBookmark, error) {
	var bookmark db_models.PhraseBookmark
	err := r.db.WithContext(ctx).
		First(&bookmark, "account_id = ? AND phrase_id = ?", accountID, phraseID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bookmark, nil
}

func (r *bookmarkRepository) DeleteBookmark(ctx context.Context, accountID uuid.UUID, bookmarkID string) error {
	res := r.db.WithContext(ctx).
		Where("account_id = ? AND id = ?", accountID, bookmarkID).
		Delete(&db_models.PhraseBookmark{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *bookmarkRepository) InsertFavorite(ctx context.Context, favorite *db_models.CountryFavorite) error {
	return r.db.WithContext(ctx).Create(favorite).Error
}

func (r *bookmarkRepository) ListFavorites(ctx context.Context, accountID uuid.UUID) ([]db_models.CountryFavorite, error) {
	var favorites []db_models.CountryFavorite
	err := r.db.WithContext(ctx).
		Preload("Country").
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&favorites).Error
	return favorites, err
}

func (r *bookmarkRepository) FindFavorite(ctx context.Context, accountID, countryID uuid.UUID) (*db_models.CountryFavorite, error) {
	var favorite db_models.CountryFavorite
	err := r.db.WithContext(ctx).
		First(&favorite, "account_id = ? AND country_id = ?", accountID, countryID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &favorite, nil
}

func (r *bookmarkRepository) DeleteFavorite(ctx context.Context, accountID uuid.UUID, favoriteID string) error {
	res := r.db.WithContext(ctx).
		Where("account_id = ? AND id = ?", accountID, favoriteID).
		Delete(&db_models.CountryFavorite{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
