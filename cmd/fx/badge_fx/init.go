package badge_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/nickross327/culturecompass-app-sub000/internal/repositories"
	"github.com/nickross327/culturecompass-app-sub000/internal/services"
	"github.com/nickross327/culturecompass-app-sub000/pkg/utils"
)

var Module = fx.Provide(
	provideBadgeService, provideBadgeRepo)

func provideBadgeRepo(db *gorm.DB) repositories.BadgeRepository {
	return repositories.NewBadgeRepository(db)
}

func provideBadgeService(badgeRepo repositories.BadgeRepository, clock utils.Clock) services.BadgeServiceInterface {
	return services.NewBadgeService(badgeRepo, clock)
}
