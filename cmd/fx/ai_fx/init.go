package ai_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"github.com/nickross327/culturecompass-app-sub000/pkg/utils"
)

var Module = fx.Provide(provideAIClient)

// AI_PROVIDER selects openai or gemini; the key and model follow it.
func provideAIClient() utils.AIClientInterface {
	provider := os.Getenv("AI_PROVIDER")
	if provider == "" {
		provider = "openai"
	}

	client, err := utils.NewAIClient(provider, os.Getenv("AI_API_KEY"), os.Getenv("AI_MODEL"))
	if err != nil {
		log.Fatalf("Failed to initialize AI client (%s): %v", provider, err)
	}
	return client
}
