package entitlement_fx

import (
	"go.uber.org/fx"

	"github.com/nickross327/culturecompass-app-sub000/internal/repositories"
	"github.com/nickross327/culturecompass-app-sub000/internal/services"
	"github.com/nickross327/culturecompass-app-sub000/pkg/middleware"
	"github.com/nickross327/culturecompass-app-sub000/pkg/utils"
)

var Module = fx.Provide(
	provideEntitlementService, providePremiumChecker)

func provideEntitlementService(accountRepo repositories.AccountRepository, clock utils.Clock) services.EntitlementServiceInterface {
	return services.NewEntitlementService(accountRepo, clock)
}

func providePremiumChecker(entitlement services.EntitlementServiceInterface) middleware.PremiumChecker {
	return entitlement
}
