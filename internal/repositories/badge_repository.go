package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nickross327/culturecompass-app-sub000/internal/models/db_models"
)

type BadgeRepository interface {
	ListBadges(ctx context.Context) ([]db_models.Badge, error)
	ListUserBadges(ctx context.Context, accountID uuid.UUID) ([]db_models.UserBadge, error)
	InsertUserBadge(ctx context.Context, userBadge *db_models.UserBadge) error

	FindStats(ctx context.Context, accountID uuid.UUID) (*db_models.UserStats, error)
	InsertStats(ctx context.Context, stats *db_models.UserStats) error
	IncrementStat(ctx context.Context, accountID uuid.UUID, column string, delta int) error
}

type badgeRepository struct {
	db *gorm.DB
}

func NewBadgeRepository(db *gorm.DB) BadgeRepository {
	return &badgeRepository{db: db}
}

func (r *badgeRepository) ListBadges(ctx context.Context) ([]db_models.Badge, error) {
	var badges []db_models.Badge
	err := r.db.WithContext(ctx).Order("threshold ASC").Find(&badges).Error
	return badges, err
}

func (r *badgeRepository) ListUserBadges(ctx context.Context, accountID uuid.UUID) ([]db_models.UserBadge, error) {
	var userBadges []db_models.UserBadge
	err := r.db.WithContext(ctx).
		Preload("Badge").
		Where("account_id = ?", accountID).
		Find(&userBadges).Error
	return userBadges, err
}

func (r *badgeRepository) InsertUserBadge(ctx context.Context, userBadge *db_models.UserBadge) error {
	return r.db.WithContext(ctx).Create(userBadge).Error
}

func (r *badgeRepository) FindStats(ctx context.Context, accountID uuid.UUID) (*db_models.UserStats, error) {
	var stats db_models.UserStats
	err := r.db.WithContext(ctx).First(&stats, "account_id = ?", accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &stats, nil
}

func (r *badgeRepository) InsertStats(ctx context.Context, stats *db_models.UserStats) error {
	return r.db.WithContext(ctx).Create(stats).Error
}

func (r *badgeRepository) IncrementStat(ctx context.Context, accountID uuid.UUID, column string, delta int) error {
	return r.db.WithContext(ctx).
		Model(&db_models.UserStats{}).
		Where("account_id = ?", accountID).
		UpdateColumn(column, gorm.Expr(column+" + ?", delta)).Error
}
