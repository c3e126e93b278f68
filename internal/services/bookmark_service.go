package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/nickross327/culturecompass-app-sub000/internal/models/db_models"
	"github.com/nickross327/culturecompass-app-sub000/internal/models/request_models"
	"github.com/nickross327/culturecompass-app-sub000/internal/models/response_models"
	"github.com/nickross327/culturecompass-app-sub000/internal/repositories"
	"github.com/nickross327/culturecompass-app-sub000/pkg/utils"
)

type BookmarkServiceInterface interface {
	CreateBookmark(ctx context.Context, accountID string, request request_models.CreateBookmarkRequest) (*response_models.BookmarkResponse, error)
	ListBookmarks(ctx context.Context, accountID string) ([]response_models.BookmarkResponse, error)
	DeleteBookmark(ctx context.Context, accountID string, bookmarkID string) error

	CreateFavorite(ctx context.Context, accountID string, request request_models.CreateFavoriteRequest) (*response_models.FavoriteResponse, error)
	ListFavorites(ctx context.Context, accountID string) ([]response_models.FavoriteResponse, error)
	DeleteFavorite(ctx context.Context, accountID string, favoriteID string) error
}

type BookmarkService struct {
	bookmarkRepo repositories.BookmarkRepository
	phraseRepo   repositories.PhraseRepository
	countryRepo  repositories.CountryRepository
	entitlement  EntitlementServiceInterface
	badges       BadgeServiceInterface
}

func NewBookmarkService(
	bookmarkRepo repositories.BookmarkRepository,
	phraseRepo repositories.PhraseRepository,
	countryRepo repositories.CountryRepository,
	entitlement EntitlementServiceInterface,
	badges BadgeServiceInterface,
) BookmarkServiceInterface {
	return &BookmarkService{
		bookmarkRepo: bookmarkRepo,
		phraseRepo:   phraseRepo,
		countryRepo:  countryRepo,
		entitlement:  entitlement,
		badges:       badges,
	}
}

func (b *BookmarkService) CreateBookmark(ctx context.Context, accountID string, request request_models.CreateBookmarkRequest) (*response_models.BookmarkResponse, error) {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return nil, utils.ErrLoginRequired
	}

	phrase, err := b.phraseRepo.FindByID(ctx, request.PhraseID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if phrase == nil {
		return nil, utils.ErrPhraseNotFound
	}

	existing, err := b.bookmarkRepo.FindBookmark(ctx, id, phrase.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrBookmarkExists
	}

	bookmark := &db_models.PhraseBookmark{
		AccountID:   id,
		PhraseID:    phrase.ID,
		CountryName: phrase.CountryName,
		Notes:       request.Notes,
	}
	if err := b.bookmarkRepo.InsertBookmark(ctx, bookmark); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if err := b.badges.IncrementStat(ctx, accountID, db_models.MetricBookmarksCreated); err != nil {
		log.Printf("bookmarks_created increment failed for %s: %v", accountID, err)
	}

	bookmark.Phrase = *phrase
	resp := toBookmarkResponse(bookmark)
	return &resp, nil
}

func (b *BookmarkService) ListBookmarks(ctx context.Context, accountID string) ([]response_models.BookmarkResponse, error) {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return nil, utils.ErrLoginRequired
	}

	bookmarks, err := b.bookmarkRepo.ListBookmarks(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.BookmarkResponse, 0, len(bookmarks))
	for i := range bookmarks {
		out = append(out, toBookmarkResponse(&bookmarks[i]))
	}
	return out, nil
}

func (b *BookmarkService) DeleteBookmark(ctx context.Context, accountID string, bookmarkID string) error {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return utils.ErrLoginRequired
	}

	if err := b.bookmarkRepo.DeleteBookmark(ctx, id, bookmarkID); err != nil {
		return utils.ErrBookmarkNotFound
	}
	return nil
}

func (b *BookmarkService) CreateFavorite(ctx context.Context, accountID string, request request_models.CreateFavoriteRequest) (*response_models.FavoriteResponse, error) {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return nil, utils.ErrLoginRequired
	}

	country, err := b.countryRepo.FindByName(ctx, request.CountryName)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if country == nil {
		return nil, utils.ErrCountryNotFound
	}

	existing, err := b.bookmarkRepo.FindFavorite(ctx, id, country.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrFavoriteExists
	}

	favorite := &db_models.CountryFavorite{
		AccountID: id,
		CountryID: country.ID,
	}
	if err := b.bookmarkRepo.InsertFavorite(ctx, favorite); err != nil {
		return nil, utils.ErrDatabaseError
	}

	favorite.Country = *country
	resp := b.toFavoriteResponse(favorite)
	return &resp, nil
}

func (b *BookmarkService) ListFavorites(ctx context.Context, accountID string) ([]response_models.FavoriteResponse, error) {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return nil, utils.ErrLoginRequired
	}

	favorites, err := b.bookmarkRepo.ListFavorites(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.FavoriteResponse, 0, len(favorites))
	for i := range favorites {
		out = append(out, b.toFavoriteResponse(&favorites[i]))
	}
	return out, nil
}

func (b *BookmarkService) DeleteFavorite(ctx context.Context, accountID string, favoriteID string) error {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return utils.ErrLoginRequired
	}

	if err := b.bookmarkRepo.DeleteFavorite(ctx, id, favoriteID); err != nil {
		return utils.ErrBookmarkNotFound
	}
	return nil
}

func toBookmarkResponse(bookmark *db_models.PhraseBookmark) response_models.BookmarkResponse {
	return response_models.BookmarkResponse{
		ID:          bookmark.ID.String(),
		CountryName: bookmark.CountryName,
		Notes:       bookmark.Notes,
		CreatedAt:   bookmark.CreatedAt,
		Phrase: response_models.PhraseResponse{
			ID:                    bookmark.Phrase.ID.String(),
			EnglishPhrase:         bookmark.Phrase.EnglishPhrase,
			LocalPhrase:           bookmark.Phrase.LocalPhrase,
			PhoneticPronunciation: bookmark.Phrase.PhoneticPronunciation,
			Category:              bookmark.Phrase.Category,
			FormalityLevel:        bookmark.Phrase.FormalityLevel,
			CountryName:           bookmark.Phrase.CountryName,
		},
	}
}

func (b *BookmarkService) toFavoriteResponse(favorite *db_models.CountryFavorite) response_models.FavoriteResponse {
	return response_models.FavoriteResponse{
		ID:        favorite.ID.String(),
		CreatedAt: favorite.CreatedAt,
		Country: response_models.CountrySummary{
			ID:        favorite.Country.ID.String(),
			Name:      favorite.Country.Name,
			ISO2:      favorite.Country.ISO2,
			FlagEmoji: favorite.Country.FlagEmoji,
			Language:  favorite.Country.Language,
			Currency:  favorite.Country.Currency,
			Free:      b.entitlement.IsFreeCountry(favorite.Country.Name),
		},
	}
}
