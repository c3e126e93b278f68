package services

import (
	"context"
	"log"

	"github.com/nickross327/culturecompass-app-sub000/internal/models/db_models"
	"github.com/nickross327/culturecompass-app-sub000/internal/models/response_models"
	"github.com/nickross327/culturecompass-app-sub000/internal/repositories"
	"github.com/nickross327/culturecompass-app-sub000/pkg/utils"
)

type CountryServiceInterface interface {
	ListCountries(ctx context.Context, page int, pageSize int) ([]response_models.CountrySummary, error)
	SearchCountries(ctx context.Context, keyword string) ([]response_models.CountrySummary, error)
	GetCountryGuide(ctx context.Context, accountID string, name string) (*response_models.CountryDetail, error)
	BuildCountryDetail(country *db_models.Country, phrases []db_models.Phrase) *response_models.CountryDetail
}

type CountryService struct {
	countryRepo repositories.CountryRepository
	phraseRepo  repositories.PhraseRepository
	entitlement EntitlementServiceInterface
	badges      BadgeServiceInterface
}

func NewCountryService(
	countryRepo repositories.CountryRepository,
	phraseRepo repositories.PhraseRepository,
	entitlement EntitlementServiceInterface,
	badges BadgeServiceInterface,
) CountryServiceInterface {
	return &CountryService{
		countryRepo: countryRepo,
		phraseRepo:  phraseRepo,
		entitlement: entitlement,
		badges:      badges,
	}
}

func (c *CountryService) ListCountries(ctx context.Context, page int, pageSize int) ([]response_models.CountrySummary, error) {
	if page <= 0 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize <= 0 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	countries, err := c.countryRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	summaries := make([]response_models.CountrySummary, 0, len(countries))
	for _, country := range DedupCountriesByISO2(countries) {
		summaries = append(summaries, c.summary(&country))
	}
	return summaries, nil
}

func (c *CountryService) SearchCountries(ctx context.Context, keyword string) ([]response_models.CountrySummary, error) {
	if len(keyword) < 2 {
		return nil, utils.ErrInvalidInput
	}

	countries, err := c.countryRepo.SearchByKeyword(ctx, keyword, 1, 50)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	summaries := make([]response_models.CountrySummary, 0, len(countries))
	for _, country := range DedupCountriesByISO2(countries) {
		summaries = append(summaries, c.summary(&country))
	}
	return summaries, nil
}

func (c *CountryService) GetCountryGuide(ctx context.Context, accountID string, name string) (*response_models.CountryDetail, error) {
	if err := c.entitlement.AuthorizeCountry(ctx, accountID, name); err != nil {
		return nil, err
	}

	country, err := c.countryRepo.FindByName(ctx, name)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if country == nil {
		return nil, utils.ErrCountryNotFound
	}

	phrases, err := c.phraseRepo.ListByCountryID(ctx, country.ID, "")
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Best-effort: a stat failure never blocks the guide.
	if accountID != "" {
		if err := c.badges.IncrementStat(ctx, accountID, db_models.MetricCountriesVisited); err != nil {
			log.Printf("countries_visited increment failed for %s: %v", accountID, err)
		}
	}

	detail := c.BuildCountryDetail(country, DedupPhrases(phrases))
	return detail, nil
}

func (c *CountryService) BuildCountryDetail(country *db_models.Country, phrases []db_models.Phrase) *response_models.CountryDetail {
	return &response_models.CountryDetail{
		CountrySummary: c.summary(country),

		GreetingFormal: country.GreetingFormal,
		GreetingCasual: country.GreetingCasual,
		ThankYou:       country.ThankYou,
		Please:         country.Please,

		CulturalDos:          country.CulturalDos,
		CulturalDonts:        country.CulturalDonts,
		DiningEtiquette:      country.DiningEtiquette,
		BusinessEtiquette:    country.BusinessEtiquette,
		DatingEtiquette:      country.DatingEtiquette,
		TippingEtiquette:     country.TippingEtiquette,
		GesturesBodyLanguage: country.GesturesBodyLanguage,
		CulturalHighlights:   country.CulturalHighlights,
		TaxiEtiquette:        country.TaxiEtiquette,
		DressCode:            country.DressCode,
		GiftGiving:           country.GiftGiving,
		LocalSurvivalTips:    country.LocalSurvivalTips,

		Phrases: PhraseResponses(phrases),
	}
}

func (c *CountryService) summary(country *db_models.Country) response_models.CountrySummary {
	return response_models.CountrySummary{
		ID:        country.ID.String(),
		Name:      country.Name,
		ISO2:      country.ISO2,
		FlagEmoji: country.FlagEmoji,
		Language:  country.Language,
		Currency:  country.Currency,
		Free:      c.entitlement.IsFreeCountry(country.Name),
	}
}

// DedupCountriesByISO2 keeps the first-seen country per ISO-2 code. Seed
// data has carried duplicates before; one entry per code reaches clients.
func DedupCountriesByISO2(countries []db_models.Country) []db_models.Country {
	seen := make(map[string]bool, len(countries))
	out := make([]db_models.Country, 0, len(countries))

	for _, country := range countries {
		if country.ISO2 != "" && seen[country.ISO2] {
			continue
		}
		if country.ISO2 != "" {
			seen[country.ISO2] = true
		}
		out = append(out, country)
	}

	return out
}
