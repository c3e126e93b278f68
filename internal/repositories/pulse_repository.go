package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nickross327/culturecompass-app-sub000/internal/models/db_models"
)

type PulseRepository interface {
	InsertTip(ctx context.Context, tip *db_models.PulseTip) error
	FindTip(ctx context.Context, tipID string) (*db_models.PulseTip, error)
	ListTips(ctx context.Context, countryName string, page, pageSize int) ([]db_models.PulseTip, error)

	// Upvote records the vote and bumps the counter in one transaction;
	// a second vote from the same account fails.
	Upvote(ctx context.Context, tipID, accountID uuid.UUID) error
	HasUpvoted(ctx context.Context, tipID, accountID uuid.UUID) (bool, error)

	InsertReport(ctx context.Context, report *db_models.PulseReport) error
}

type pulseRepository struct {
	db *gorm.DB
}

func NewPulseRepository(db *gorm.DB) PulseRepository {
	return &pulseRepository{db: db}
}

func (r *pulseRepository) InsertTip(ctx context.Context, tip *db_models.PulseTip) error {
	return r.db.WithContext(ctx).Create(tip).Error
}

func (r *pulseRepository) FindTip(ctx context.Context, tipID string) (*db_models.PulseTip, error) {
	var tip db_models.PulseTip
	err := r.db.WithContext(ctx).First(&tip, "id = ?", tipID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tip, nil
}

func (r *pulseRepository) ListTips(ctx context.Context, countryName string, page, pageSize int) ([]db_models.PulseTip, error) {
	var tips []db_models.PulseTip
	q := r.db.WithContext(ctx)
	if countryName != "" {
		q = q.Where("country_name = ?", countryName)
	}
	err := q.Order("upvotes DESC, created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&tips).Error
	return tips, err
}

func (r *pulseRepository) Upvote(ctx context.Context, tipID, accountID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		vote := db_models.PulseUpvote{TipID: tipID, AccountID: accountID}
		if err := tx.Create(&vote).Error; err != nil {
			return err
		}
		return tx.Model(&db_models.PulseTip{}).
			Where("id = ?", tipID).
			UpdateColumn("upvotes", gorm.Expr("upvotes + 1")).Error
	})
}

func (r *pulseRepository) HasUpvoted(ctx context.Context, tipID, accountID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.PulseUpvote{}).
		Where("tip_id = ? AND account_id = ?", tipID, accountID).
		Count(&count).Error
	return count > 0, err
}

func (r *pulseRepository) InsertReport(ctx context.Context, report *db_models.PulseReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}
