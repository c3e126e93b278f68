package bookmark_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/nickross327/culturecompass-app-sub000/internal/repositories"
	"github.com/nickross327/culturecompass-app-sub000/internal/services"
)

var Module = fx.Provide(
	provideBookmarkService, provideBookmarkRepo)

func provideBookmarkRepo(db *gorm.DB) repositories.BookmarkRepository {
	return repositories.NewBookmarkRepository(db)
}

func provideBookmarkService(
	bookmarkRepo repositories.BookmarkRepository,
	phraseRepo repositories.PhraseRepository,
	countryRepo repositories.CountryRepository,
	entitlement services.EntitlementServiceInterface,
	badges services.BadgeServiceInterface,
) services.BookmarkServiceInterface {
	return services.NewBookmarkService(bookmarkRepo, phraseRepo, countryRepo, entitlement, badges)
}
