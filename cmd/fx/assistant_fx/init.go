package assistant_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/nickross327/culturecompass-app-sub000/internal/repositories"
	"github.com/nickross327/culturecompass-app-sub000/internal/services"
	mem "github.com/nickross327/culturecompass-app-sub000/pkg/memcache"
	"github.com/nickross327/culturecompass-app-sub000/pkg/utils"
)

var Module = fx.Provide(
	provideAssistantService, provideEmbeddingRepo)

func provideEmbeddingRepo(db *gorm.DB) repositories.EmbeddingRepository {
	return repositories.NewEmbeddingRepository(db)
}

func provideAssistantService(
	aiClient utils.AIClientInterface,
	embeddingRepo repositories.EmbeddingRepository,
	sessions mem.ChatSessionStore,
	events services.EventServiceInterface,
) services.AssistantServiceInterface {
	return services.NewAssistantService(aiClient, embeddingRepo, sessions, events)
}
