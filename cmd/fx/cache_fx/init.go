package cache_fx

import (
	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"

	"github.com/nickross327/culturecompass-app-sub000/internal/infra"
	"github.com/nickross327/culturecompass-app-sub000/internal/services"
)

var Module = fx.Provide(
	provideRedis, provideGuideCache)

func provideRedis() *redis.Client {
	return infra.InitRedis()
}

func provideGuideCache(client *redis.Client) services.GuideCache {
	return services.NewGuideCache(client)
}
