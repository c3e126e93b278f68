package mail_fx

import (
	"log"

	"go.uber.org/fx"

	"github.com/nickross327/culturecompass-app-sub000/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService() services.IMailService {
	mailService, err := services.NewSMTPMailService(services.LoadSMTPConfig())
	if err != nil {
		log.Printf("Failed to initialize SMTP mail service: %v", err)
	}
	return mailService
}
