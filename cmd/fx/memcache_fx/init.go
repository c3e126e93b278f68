package memcache_fx

import (
	"go.uber.org/fx"

	mem "github.com/nickross327/culturecompass-app-sub000/pkg/memcache"
)

var Module = fx.Provide(
	provideResetTokens, provideChatSessions)

func provideResetTokens() mem.ResetTokenStore {
	return mem.NewResetTokens()
}

func provideChatSessions() mem.ChatSessionStore {
	return mem.NewChatSessions()
}
