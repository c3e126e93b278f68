package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/nickross327/culturecompass-app-sub000/internal/repositories"
	"github.com/nickross327/culturecompass-app-sub000/internal/services"
	mem "github.com/nickross327/culturecompass-app-sub000/pkg/memcache"
	"github.com/nickross327/culturecompass-app-sub000/pkg/utils"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	entitlement services.EntitlementServiceInterface,
	badges services.BadgeServiceInterface,
	mailService services.IMailService,
	resetTokens mem.ResetTokenStore,
	clock utils.Clock,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, entitlement, badges, mailService, resetTokens, clock)
}
