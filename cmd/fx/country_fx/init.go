package country_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/nickross327/culturecompass-app-sub000/internal/repositories"
	"github.com/nickross327/culturecompass-app-sub000/internal/services"
)

var Module = fx.Provide(
	provideCountryService, provideCountryRepo,
	providePhraseService, providePhraseRepo)

func provideCountryRepo(db *gorm.DB) repositories.CountryRepository {
	return repositories.NewCountryRepository(db)
}

func providePhraseRepo(db *gorm.DB) repositories.PhraseRepository {
	return repositories.NewPhraseRepository(db)
}

func provideCountryService(
	countryRepo repositories.CountryRepository,
	phraseRepo repositories.PhraseRepository,
	entitlement services.EntitlementServiceInterface,
	badges services.BadgeServiceInterface,
) services.CountryServiceInterface {
	return services.NewCountryService(countryRepo, phraseRepo, entitlement, badges)
}

func providePhraseService(
	phraseRepo repositories.PhraseRepository,
	countryRepo repositories.CountryRepository,
) services.PhraseServiceInterface {
	return services.NewPhraseService(phraseRepo, countryRepo)
}
