package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/nickross327/culturecompass-app-sub000/internal/models/db_models"
	"github.com/nickross327/culturecompass-app-sub000/internal/models/response_models"
	"github.com/nickross327/culturecompass-app-sub000/internal/repositories"
	"github.com/nickross327/culturecompass-app-sub000/pkg/utils"
)

type BadgeServiceInterface interface {
	// GetAchievements returns stats plus the full badge catalog with
	// earned flags. The stats row is created on first read.
	GetAchievements(ctx context.Context, accountID string) (*response_models.AchievementsResponse, error)

	// IncrementStat bumps a stats counter and awards any badge whose
	// threshold the new value crosses.
	IncrementStat(ctx context.Context, accountID string, metric string) error

	// EvaluateMetric awards badges for metrics held outside UserStats
	// (shares live on the account).
	EvaluateMetric(ctx context.Context, accountID uuid.UUID, metric string, value int) error
}

type BadgeService struct {
	badgeRepo repositories.BadgeRepository
	clock     utils.Clock
}

func NewBadgeService(badgeRepo repositories.BadgeRepository, clock utils.Clock) BadgeServiceInterface {
	return &BadgeService{
		badgeRepo: badgeRepo,
		clock:     clock,
	}
}

var statColumns = map[string]string{
	db_models.MetricPhrasesViewed:    "phrases_viewed",
	db_models.MetricCountriesVisited: "countries_visited",
	db_models.MetricBookmarksCreated: "bookmarks_created",
}

func (b *BadgeService) GetAchievements(ctx context.Context, accountID string) (*response_models.AchievementsResponse, error) {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	stats, err := b.ensureStats(ctx, id)
	if err != nil {
		return nil, err
	}

	badges, err := b.badgeRepo.ListBadges(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	userBadges, err := b.badgeRepo.ListUserBadges(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	earned := make(map[uuid.UUID]int64, len(userBadges))
	for _, ub := range userBadges {
		earned[ub.BadgeID] = ub.EarnedAt
	}

	resp := &response_models.AchievementsResponse{
		Stats: response_models.StatsResponse{
			PhrasesViewed:    stats.PhrasesViewed,
			CountriesVisited: stats.CountriesVisited,
			BookmarksCreated: stats.BookmarksCreated,
			UpvotesReceived:  stats.UpvotesReceived,
		},
	}

	for _, badge := range badges {
		br := response_models.BadgeResponse{
			Code:        badge.Code,
			Name:        badge.Name,
			Description: badge.Description,
			Icon:        badge.Icon,
			Metric:      badge.Metric,
			Threshold:   badge.Threshold,
		}
		if earnedAt, ok := earned[badge.ID]; ok {
			br.Earned = true
			br.EarnedAt = earnedAt
		}
		resp.Badges = append(resp.Badges, br)
	}

	return resp, nil
}

func (b *BadgeService) IncrementStat(ctx context.Context, accountID string, metric string) error {
	column, ok := statColumns[metric]
	if !ok {
		return utils.ErrInvalidInput
	}

	id, err := uuid.Parse(accountID)
	if err != nil {
		return utils.ErrInvalidInput
	}

	if _, err := b.ensureStats(ctx, id); err != nil {
		return err
	}

	if err := b.badgeRepo.IncrementStat(ctx, id, column, 1); err != nil {
		return utils.ErrDatabaseError
	}

	stats, err := b.badgeRepo.FindStats(ctx, id)
	if err != nil || stats == nil {
		return utils.ErrDatabaseError
	}

	value := 0
	switch metric {
	case db_models.MetricPhrasesViewed:
		value = stats.PhrasesViewed
	case db_models.MetricCountriesVisited:
		value = stats.CountriesVisited
	case db_models.MetricBookmarksCreated:
		value = stats.BookmarksCreated
	}

	return b.EvaluateMetric(ctx, id, metric, value)
}

func (b *BadgeService) EvaluateMetric(ctx context.Context, accountID uuid.UUID, metric string, value int) error {
	badges, err := b.badgeRepo.ListBadges(ctx)
	if err != nil {
		return utils.ErrDatabaseError
	}

	userBadges, err := b.badgeRepo.ListUserBadges(ctx, accountID)
	if err != nil {
		return utils.ErrDatabaseError
	}

	held := make(map[uuid.UUID]bool, len(userBadges))
	for _, ub := range userBadges {
		held[ub.BadgeID] = true
	}

	for _, badge := range badges {
		if badge.Metric != metric || held[badge.ID] || value < badge.Threshold {
			continue
		}
		userBadge := &db_models.UserBadge{
			AccountID: accountID,
			BadgeID:   badge.ID,
			EarnedAt:  b.clock.Now().Unix(),
		}
		if err := b.badgeRepo.InsertUserBadge(ctx, userBadge); err != nil {
			return utils.ErrDatabaseError
		}
	}

	return nil
}

func (b *BadgeService) ensureStats(ctx context.Context, accountID uuid.UUID) (*db_models.UserStats, error) {
	stats, err := b.badgeRepo.FindStats(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if stats != nil {
		return stats, nil
	}

	stats = &db_models.UserStats{AccountID: accountID}
	if err := b.badgeRepo.InsertStats(ctx, stats); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return stats, nil
}
