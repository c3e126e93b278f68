package controllers_fx

import (
	"go.uber.org/fx"

	"github.com/nickross327/culturecompass-app-sub000/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewCountryController),
	fx.Provide(controllers.NewBookmarkController),
	fx.Provide(controllers.NewAchievementsController),
	fx.Provide(controllers.NewPulseController),
	fx.Provide(controllers.NewAssistantController),
	fx.Provide(controllers.NewPaymentController),
	fx.Provide(controllers.NewOfflineController))
