package pulse_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/nickross327/culturecompass-app-sub000/internal/repositories"
	"github.com/nickross327/culturecompass-app-sub000/internal/services"
)

var Module = fx.Provide(
	providePulseService, providePulseRepo)

func providePulseRepo(db *gorm.DB) repositories.PulseRepository {
	return repositories.NewPulseRepository(db)
}

func providePulseService(pulseRepo repositories.PulseRepository, badges services.BadgeServiceInterface) services.PulseServiceInterface {
	return services.NewPulseService(pulseRepo, badges)
}
