package services

import (
	"context"
	"strings"

	"github.com/nickross327/culturecompass-app-sub000/internal/models/db_models"
	"github.com/nickross327/culturecompass-app-sub000/internal/models/response_models"
	"github.com/nickross327/culturecompass-app-sub000/internal/repositories"
	"github.com/nickross327/culturecompass-app-sub000/pkg/utils"
)

type PhraseServiceInterface interface {
	ListByCountry(ctx context.Context, countryName string, category string) ([]response_models.PhraseResponse, error)
}

type PhraseService struct {
	phraseRepo  repositories.PhraseRepository
	countryRepo repositories.CountryRepository
}

func NewPhraseService(phraseRepo repositories.PhraseRepository, countryRepo repositories.CountryRepository) PhraseServiceInterface {
	return &PhraseService{
		phraseRepo:  phraseRepo,
		countryRepo: countryRepo,
	}
}

func (p *PhraseService) ListByCountry(ctx context.Context, countryName string, category string) ([]response_models.PhraseResponse, error) {
	country, err := p.countryRepo.FindByName(ctx, countryName)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if country == nil {
		return nil, utils.ErrCountryNotFound
	}

	phrases, err := p.phraseRepo.ListByCountryID(ctx, country.ID, category)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return PhraseResponses(DedupPhrases(phrases)), nil
}

// DedupPhrases drops duplicates sharing (english_phrase, local_phrase,
// category), keeping the first seen. Seed imports occasionally double up
// rows; the guide should never show the same line twice.
func DedupPhrases(phrases []db_models.Phrase) []db_models.Phrase {
	seen := make(map[string]bool, len(phrases))
	out := make([]db_models.Phrase, 0, len(phrases))

	for _, phrase := range phrases {
		key := strings.ToLower(phrase.EnglishPhrase) + "|" +
			strings.ToLower(phrase.LocalPhrase) + "|" +
			strings.ToLower(phrase.Category)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, phrase)
	}

	return out
}

func PhraseResponses(phrases []db_models.Phrase) []response_models.PhraseResponse {
	out := make([]response_models.PhraseResponse, 0, len(phrases))
	for _, phrase := range phrases {
		out = append(out, response_models.PhraseResponse{
			ID:                    phrase.ID.String(),
			EnglishPhrase:         phrase.EnglishPhrase,
			LocalPhrase:           phrase.LocalPhrase,
			PhoneticPronunciation: phrase.PhoneticPronunciation,
			Category:              phrase.Category,
			FormalityLevel:        phrase.FormalityLevel,
			CountryName:           phrase.CountryName,
		})
	}
	return out
}
