package event_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/nickross327/culturecompass-app-sub000/internal/services"
)

var Module = fx.Provide(provideEventService)

func provideEventService(db *gorm.DB) services.EventServiceInterface {
	return services.NewEventService(db)
}
