package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/nickross327/culturecompass-app-sub000/internal/models/db_models"
	"github.com/nickross327/culturecompass-app-sub000/internal/models/request_models"
	"github.com/nickross327/culturecompass-app-sub000/internal/models/response_models"
	"github.com/nickross327/culturecompass-app-sub000/internal/repositories"
	"github.com/nickross327/culturecompass-app-sub000/pkg/utils"
)

type PulseServiceInterface interface {
	CreateTip(ctx context.Context, accountID string, request request_models.CreateTipRequest) (*response_models.TipResponse, error)
	ListTips(ctx context.Context, countryName string, page, pageSize int) ([]response_models.TipResponse, error)
	UpvoteTip(ctx context.Context, accountID string, tipID string) error
	ReportTip(ctx context.Context, accountID string, tipID string, reason string) error
}

type PulseService struct {
	pulseRepo repositories.PulseRepository
	badges    BadgeServiceInterface
}

func NewPulseService(pulseRepo repositories.PulseRepository, badges BadgeServiceInterface) PulseServiceInterface {
	return &PulseService{
		pulseRepo: pulseRepo,
		badges:    badges,
	}
}

func (p *PulseService) CreateTip(ctx context.Context, accountID string, request request_models.CreateTipRequest) (*response_models.TipResponse, error) {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return nil, utils.ErrLoginRequired
	}

	tip := &db_models.PulseTip{
		AccountID:   id,
		CountryName: request.CountryName,
		Category:    request.Category,
		Content:     request.Content,
	}
	if err := p.pulseRepo.InsertTip(ctx, tip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toTipResponse(tip)
	return &resp, nil
}

func (p *PulseService) ListTips(ctx context.Context, countryName string, page, pageSize int) ([]response_models.TipResponse, error) {
	if page <= 0 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize <= 0 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	tips, err := p.pulseRepo.ListTips(ctx, countryName, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TipResponse, 0, len(tips))
	for i := range tips {
		out = append(out, toTipResponse(&tips[i]))
	}
	return out, nil
}

func (p *PulseService) UpvoteTip(ctx context.Context, accountID string, tipID string) error {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return utils.ErrLoginRequired
	}

	tip, err := p.pulseRepo.FindTip(ctx, tipID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if tip == nil {
		return utils.ErrTipNotFound
	}

	voted, err := p.pulseRepo.HasUpvoted(ctx, tip.ID, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if voted {
		return utils.ErrAlreadyUpvoted
	}

	if err := p.pulseRepo.Upvote(ctx, tip.ID, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (p *PulseService) ReportTip(ctx context.Context, accountID string, tipID string, reason string) error {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return utils.ErrLoginRequired
	}

	tip, err := p.pulseRepo.FindTip(ctx, tipID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if tip == nil {
		return utils.ErrTipNotFound
	}

	report := &db_models.PulseReport{
		TipID:     tip.ID,
		AccountID: id,
		Reason:    reason,
	}
	if err := p.pulseRepo.InsertReport(ctx, report); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func toTipResponse(tip *db_models.PulseTip) response_models.TipResponse {
	return response_models.TipResponse{
		ID:          tip.ID.String(),
		CountryName: tip.CountryName,
		Category:    tip.Category,
		Content:     tip.Content,
		Upvotes:     tip.Upvotes,
		CreatedAt:   tip.CreatedAt,
	}
}
