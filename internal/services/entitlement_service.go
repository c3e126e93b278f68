package services

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/nickross327/culturecompass-app-sub000/internal/models/db_models"
	"github.com/nickross327/culturecompass-app-sub000/internal/repositories"
	"github.com/nickross327/culturecompass-app-sub000/pkg/utils"
)

// TrialWindow is how long a started trial grants premium access. The
// boundary is exact: start+7d-1s passes, start+7d does not.
const TrialWindow = 7 * 24 * time.Hour

type EntitlementServiceInterface interface {
	// HasPremium is the one premium predicate. Every gate in the service
	// goes through here; nothing re-derives trial math on its own.
	HasPremium(account *db_models.Account, now time.Time) bool

	HasPremiumAccess(ctx context.Context, accountID string) (bool, error)

	// AuthorizeCountry decides whether the viewer may read a country
	// guide. Returns nil, ErrLoginRequired (anonymous, non-free country)
	// or ErrPremiumRequired (signed in, no entitlement).
	AuthorizeCountry(ctx context.Context, accountID string, countryName string) error

	IsFreeCountry(countryName string) bool
	TrialEndsAt(account *db_models.Account) *time.Time
}

type EntitlementService struct {
	accountRepo   repositories.AccountRepository
	clock         utils.Clock
	freeCountries map[string]bool
}

func NewEntitlementService(accountRepo repositories.AccountRepository, clock utils.Clock) EntitlementServiceInterface {
	return &EntitlementService{
		accountRepo:   accountRepo,
		clock:         clock,
		freeCountries: loadFreeCountries(),
	}
}

// defaultFreeCountries are the starter guides anonymous visitors may read.
var defaultFreeCountries = []string{"Japan", "France", "Italy", "Spain", "Thailand"}

func loadFreeCountries() map[string]bool {
	names := defaultFreeCountries
	if env := strings.TrimSpace(os.Getenv("FREE_COUNTRIES")); env != "" {
		names = strings.Split(env, ",")
	}

	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[strings.ToLower(strings.TrimSpace(name))] = true
	}
	return set
}

func (e *EntitlementService) HasPremium(account *db_models.Account, now time.Time) bool {
	if account == nil {
		return false
	}
	if account.ProMember {
		return true
	}
	if account.TrialStartedAt == nil || account.TrialUsed {
		return false
	}
	trialEnd := time.Unix(*account.TrialStartedAt, 0).Add(TrialWindow)
	return now.Before(trialEnd)
}

func (e *EntitlementService) HasPremiumAccess(ctx context.Context, accountID string) (bool, error) {
	if accountID == "" {
		return false, nil
	}

	account, err := e.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	if account == nil {
		return false, nil
	}

	return e.HasPremium(account, e.clock.Now()), nil
}

func (e *EntitlementService) AuthorizeCountry(ctx context.Context, accountID string, countryName string) error {
	if e.IsFreeCountry(countryName) {
		return nil
	}
	if accountID == "" {
		return utils.ErrLoginRequired
	}

	ok, err := e.HasPremiumAccess(ctx, accountID)
	if err != nil {
		return err
	}
	if !ok {
		return utils.ErrPremiumRequired
	}
	return nil
}

func (e *EntitlementService) IsFreeCountry(countryName string) bool {
	return e.freeCountries[strings.ToLower(strings.TrimSpace(countryName))]
}

func (e *EntitlementService) TrialEndsAt(account *db_models.Account) *time.Time {
	if account == nil || account.TrialStartedAt == nil {
		return nil
	}
	t := time.Unix(*account.TrialStartedAt, 0).Add(TrialWindow)
	return &t
}
