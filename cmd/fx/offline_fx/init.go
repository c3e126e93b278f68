package offline_fx

import (
	"go.uber.org/fx"

	"github.com/nickross327/culturecompass-app-sub000/internal/repositories"
	"github.com/nickross327/culturecompass-app-sub000/internal/services"
	"github.com/nickross327/culturecompass-app-sub000/pkg/utils"
)

var Module = fx.Provide(provideOfflineService)

func provideOfflineService(
	cache services.GuideCache,
	countryRepo repositories.CountryRepository,
	phraseRepo repositories.PhraseRepository,
	accountRepo repositories.AccountRepository,
	countries services.CountryServiceInterface,
	events services.EventServiceInterface,
	clock utils.Clock,
) services.OfflineServiceInterface {
	return services.NewOfflineService(cache, countryRepo, phraseRepo, accountRepo, countries, events, clock)
}
