package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/nickross327/culturecompass-app-sub000/internal/models/response_models"
	"github.com/nickross327/culturecompass-app-sub000/internal/repositories"
	"github.com/nickross327/culturecompass-app-sub000/pkg/utils"
)

// OfflinePackTTL is how long a downloaded guide pack stays valid. Stale
// packs are never served; the database is the fallback of last resort.
const OfflinePackTTL = 30 * 24 * time.Hour

// offlineKeyPrefix matches the storage namespace the mobile clients
// already use for downloaded guides.
const offlineKeyPrefix = "offline_country_v2_"

// GuideCache is the TTL blob store behind offline packs. Implemented on
// Redis in production, in memory in tests.
type GuideCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type redisGuideCache struct {
	client *redis.Client
}

func NewGuideCache(client *redis.Client) GuideCache {
	return &redisGuideCache{client: client}
}

func (r *redisGuideCache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (r *redisGuideCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *redisGuideCache) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

type OfflineServiceInterface interface {
	// DownloadPack snapshots a country guide for offline use. Paid
	// membership only; an active trial does not unlock downloads.
	DownloadPack(ctx context.Context, accountID string, countryName string) (*response_models.OfflinePack, error)

	// GetPack serves the cached snapshot while valid, deleting expired or
	// corrupt entries and rebuilding from the database.
	GetPack(ctx context.Context, accountID string, countryName string) (*response_models.OfflinePack, error)
}

type OfflineService struct {
	cache       GuideCache
	countryRepo repositories.CountryRepository
	phraseRepo  repositories.PhraseRepository
	accountRepo repositories.AccountRepository
	countries   CountryServiceInterface
	events      EventServiceInterface
	clock       utils.Clock
}

func NewOfflineService(
	cache GuideCache,
	countryRepo repositories.CountryRepository,
	phraseRepo repositories.PhraseRepository,
	accountRepo repositories.AccountRepository,
	countries CountryServiceInterface,
	events EventServiceInterface,
	clock utils.Clock,
) OfflineServiceInterface {
	return &OfflineService{
		cache:       cache,
		countryRepo: countryRepo,
		phraseRepo:  phraseRepo,
		accountRepo: accountRepo,
		countries:   countries,
		events:      events,
		clock:       clock,
	}
}

func PackKey(countryName string) string {
	return offlineKeyPrefix + strings.ToLower(strings.TrimSpace(countryName))
}

func (o *OfflineService) DownloadPack(ctx context.Context, accountID string, countryName string) (*response_models.OfflinePack, error) {
	if err := o.requireProMember(ctx, accountID); err != nil {
		return nil, err
	}

	pack, err := o.buildPack(ctx, countryName)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(pack)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if err := o.cache.Set(ctx, PackKey(countryName), string(payload), OfflinePackTTL); err != nil {
		// The client still gets its pack; only the cached copy is lost.
		log.Printf("offline pack cache write failed for %s: %v", countryName, err)
	}

	o.events.Record(accountID, "offline_download", "offline", countryName)

	return pack, nil
}

func (o *OfflineService) GetPack(ctx context.Context, accountID string, countryName string) (*response_models.OfflinePack, error) {
	if err := o.requireProMember(ctx, accountID); err != nil {
		return nil, err
	}

	key := PackKey(countryName)

	raw, found, err := o.cache.Get(ctx, key)
	if err != nil {
		log.Printf("offline pack cache read failed for %s: %v", countryName, err)
	} else if found {
		var pack response_models.OfflinePack
		if err := json.Unmarshal([]byte(raw), &pack); err != nil {
			// Corrupt entries are a cache miss, never fatal.
			log.Printf("offline pack for %s is corrupt, dropping: %v", countryName, err)
			_ = o.cache.Delete(ctx, key)
		} else if o.clock.Now().Unix() < pack.ExpiresAt {
			return &pack, nil
		} else {
			_ = o.cache.Delete(ctx, key)
		}
	}

	return o.buildPack(ctx, countryName)
}

func (o *OfflineService) requireProMember(ctx context.Context, accountID string) error {
	if accountID == "" {
		return utils.ErrLoginRequired
	}
	account, err := o.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrLoginRequired
	}
	if !account.ProMember {
		return utils.ErrPremiumRequired
	}
	return nil
}

func (o *OfflineService) buildPack(ctx context.Context, countryName string) (*response_models.OfflinePack, error) {
	country, err := o.countryRepo.FindByName(ctx, countryName)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if country == nil {
		return nil, utils.ErrCountryNotFound
	}

	phrases, err := o.phraseRepo.ListByCountryID(ctx, country.ID, "")
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	deduped := DedupPhrases(phrases)
	detail := o.countries.BuildCountryDetail(country, deduped)

	now := o.clock.Now()
	return &response_models.OfflinePack{
		Country:      *detail,
		Phrases:      PhraseResponses(deduped),
		DownloadedAt: now.Unix(),
		ExpiresAt:    now.Add(OfflinePackTTL).Unix(),
	}, nil
}
