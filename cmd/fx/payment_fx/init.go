package payment_fx

import (
	"log"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/nickross327/culturecompass-app-sub000/internal/repositories"
	"github.com/nickross327/culturecompass-app-sub000/internal/services"
)

var Module = fx.Provide(
	providePaymentService, providePlanRepo)

func providePlanRepo(db *gorm.DB) repositories.PlanRepository {
	return repositories.NewPlanRepository(db)
}

func providePaymentService(
	db *gorm.DB,
	planRepo repositories.PlanRepository,
	accountRepo repositories.AccountRepository,
) services.PaymentServiceInterface {
	instance, err := services.NewPaymentService(db, planRepo, accountRepo, services.LoadStripeConfig())
	if err != nil {
		log.Printf("Error initializing PaymentService: %v", err)
	}
	return instance
}
