package services

import (
	"context"
	"log"
	"time"

	"github.com/nickross327/culturecompass-app-sub000/internal/models/db_models"
	"github.com/nickross327/culturecompass-app-sub000/internal/models/request_models"
	"github.com/nickross327/culturecompass-app-sub000/internal/models/response_models"
	"github.com/nickross327/culturecompass-app-sub000/internal/repositories"
	mem "github.com/nickross327/culturecompass-app-sub000/pkg/memcache"
	"github.com/nickross327/culturecompass-app-sub000/pkg/utils"
)

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error)
	GetAccount(ctx context.Context, accountID string) (*response_models.AccountResponse, error)
	StartTrial(ctx context.Context, accountID string) (*response_models.AccountResponse, error)
	CompleteShare(ctx context.Context, accountID string) (int, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, request request_models.ResetPasswordRequest) error
	RequestDeletion(ctx context.Context, accountID string) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	entitlement EntitlementServiceInterface
	badges      BadgeServiceInterface
	mailService IMailService
	resetTokens mem.ResetTokenStore
	clock       utils.Clock
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	entitlement EntitlementServiceInterface,
	badges BadgeServiceInterface,
	mailService IMailService,
	resetTokens mem.ResetTokenStore,
	clock utils.Clock,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		entitlement: entitlement,
		badges:      badges,
		mailService: mailService,
		resetTokens: resetTokens,
		clock:       clock,
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	existing, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	referralCode, err := utils.GenerateReferralCode(8)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Name:         request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Role:         "user",
		ReferralCode: referralCode,
	}

	// Referral attribution is best-effort: a bad code does not block signup.
	if request.ReferralCode != "" {
		inviter, err := a.accountRepo.FindByReferralCode(ctx, request.ReferralCode)
		if err == nil && inviter != nil {
			newAccount.ReferredBy = inviter.ReferralCode
		}
	}

	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		return utils.ErrDatabaseError
	}

	if err := a.mailService.SendWelcome(newAccount.Email); err != nil {
		log.Printf("welcome mail to %s failed: %v", newAccount.Email, err)
	}

	return nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.AccountLoginResponse{
		Token:      token,
		HasPremium: a.entitlement.HasPremium(account, a.clock.Now()),
	}, nil
}

func (a *AccountService) GetAccount(ctx context.Context, accountID string) (*response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return a.toResponse(account), nil
}

// StartTrial is one-shot: a trial that has ever started, or been consumed,
// cannot start again.
func (a *AccountService) StartTrial(ctx context.Context, accountID string) (*response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	if account.TrialUsed {
		return nil, utils.ErrTrialAlreadyUsed
	}
	if account.TrialStartedAt != nil {
		return nil, utils.ErrTrialAlreadyStarted
	}

	now := a.clock.Now().Unix()
	account.TrialStartedAt = &now
	if err := a.accountRepo.Update(ctx, account); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return a.toResponse(account), nil
}

func (a *AccountService) CompleteShare(ctx context.Context, accountID string) (int, error) {
	account, err := a.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	if account == nil {
		return 0, utils.ErrAccountNotFound
	}

	account.SharesCompleted++
	if err := a.accountRepo.Update(ctx, account); err != nil {
		return 0, utils.ErrDatabaseError
	}

	if err := a.badges.EvaluateMetric(ctx, account.ID, db_models.MetricSharesCompleted, account.SharesCompleted); err != nil {
		log.Printf("badge evaluation after share failed for %s: %v", accountID, err)
	}

	return account.SharesCompleted, nil
}

func (a *AccountService) ForgotPassword(ctx context.Context, email string) error {
	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		// Do not reveal whether the email exists.
		return nil
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return utils.ErrDatabaseError
	}

	a.resetTokens.Set(token, account.Email, 30*time.Minute)

	if err := a.mailService.SendResetPassword(account.Email, token); err != nil {
		log.Printf("reset mail to %s failed: %v", account.Email, err)
	}
	return nil
}

func (a *AccountService) ResetPassword(ctx context.Context, request request_models.ResetPasswordRequest) error {
	email := a.resetTokens.Consume(request.Token)
	if email == "" {
		return utils.ErrInvalidResetToken
	}

	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	hashed, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}

	return a.accountRepo.UpdateFields(ctx, account.ID.String(), map[string]interface{}{
		"password_hash": hashed,
	})
}

// RequestDeletion marks the account; the actual purge runs out of band so
// support can intervene within the grace window.
func (a *AccountService) RequestDeletion(ctx context.Context, accountID string) error {
	account, err := a.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	now := a.clock.Now().Unix()
	if err := a.accountRepo.UpdateFields(ctx, accountID, map[string]interface{}{
		"deletion_requested_at": now,
	}); err != nil {
		return utils.ErrDatabaseError
	}

	if err := a.mailService.SendDeletionScheduled(account.Email); err != nil {
		log.Printf("deletion mail to %s failed: %v", account.Email, err)
	}
	return nil
}

func (a *AccountService) toResponse(account *db_models.Account) *response_models.AccountResponse {
	resp := &response_models.AccountResponse{
		ID:              account.ID.String(),
		Name:            account.Name,
		Email:           account.Email,
		Role:            account.Role,
		ProMember:       account.ProMember,
		HasPremium:      a.entitlement.HasPremium(account, a.clock.Now()),
		TrialUsed:       account.TrialUsed,
		ReferralCode:    account.ReferralCode,
		SharesCompleted: account.SharesCompleted,
	}
	if account.TrialStartedAt != nil {
		resp.TrialStartedAt = utils.FormatRFC3339(utils.FromUnixSeconds(*account.TrialStartedAt))
		if ends := a.entitlement.TrialEndsAt(account); ends != nil {
			resp.TrialEndsAt = utils.FormatRFC3339(*ends)
		}
	}
	return resp
}
