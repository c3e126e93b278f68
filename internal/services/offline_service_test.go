package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/nickross327/culturecompass-app-sub000/internal/models/db_models"
	"github.com/nickross327/culturecompass-app-sub000/internal/models/response_models"
	"github.com/nickross327/culturecompass-app-sub000/pkg/utils"
)

func newOfflineFixture(t *testing.T, now time.Time) (*OfflineService, *fakeGuideCache, *fakeClock, *db_models.Account, db_models.Country) {
	t.Helper()

	country := db_models.Country{
		Name:     "Portugal",
		ISO2:     "PT",
		Language: "Portuguese",
	}
	country.ID = uuid.New()

	phrase := db_models.Phrase{
		CountryID:     country.ID,
		CountryName:   "Portugal",
		EnglishPhrase: "Thank you",
		LocalPhrase:   "Obrigado",
		Category:      "basics",
	}
	phrase.ID = uuid.New()

	pro := &db_models.Account{ProMember: true}
	pro.ID = uuid.New()

	accountRepo := newFakeAccountRepo(pro)
	countryRepo := &fakeCountryRepo{countries: []db_models.Country{country}}
	phraseRepo := &fakePhraseRepo{phrases: []db_models.Phrase{phrase}}
	clock := &fakeClock{now: now}
	cache := newFakeGuideCache()

	countries := NewCountryService(countryRepo, phraseRepo, NewEntitlementService(accountRepo, clock), &fakeBadges{})

	svc := NewOfflineService(cache, countryRepo, phraseRepo, accountRepo, countries, &fakeEvents{}, clock)
	return svc.(*OfflineService), cache, clock, pro, country
}

func TestDownloadPackRequiresProMembership(t *testing.T) {
	now := time.Now()
	svc, _, _, _, _ := newOfflineFixture(t, now)

	t.Run("anonymous", func(t *testing.T) {
		_, err := svc.DownloadPack(context.Background(), "", "Portugal")
		if !errors.Is(err, utils.ErrLoginRequired) {
			t.Fatalf("expected ErrLoginRequired, got %v", err)
		}
	})

	t.Run("trial member", func(t *testing.T) {
		start := now.Unix()
		trialer := &db_models.Account{TrialStartedAt: &start}
		trialer.ID = uuid.New()
		_ = svc.accountRepo.Insert(context.Background(), trialer)

		_, err := svc.DownloadPack(context.Background(), trialer.ID.String(), "Portugal")
		if !errors.Is(err, utils.ErrPremiumRequired) {
			t.Fatalf("trial should not unlock downloads, got %v", err)
		}
	})
}

func TestDownloadPackWritesCache(t *testing.T) {
	now := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	svc, cache, _, pro, _ := newOfflineFixture(t, now)

	pack, err := svc.DownloadPack(context.Background(), pro.ID.String(), "Portugal")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pack.DownloadedAt != now.Unix() {
		t.Fatalf("downloaded_at = %d, want %d", pack.DownloadedAt, now.Unix())
	}
	if want := now.Add(OfflinePackTTL).Unix(); pack.ExpiresAt != want {
		t.Fatalf("expires_at = %d, want %d", pack.ExpiresAt, want)
	}

	key := PackKey("Portugal")
	raw, ok := cache.data[key]
	if !ok {
		t.Fatalf("expected cache entry under %q", key)
	}
	if ttl := cache.sets[key]; ttl != OfflinePackTTL {
		t.Fatalf("cache ttl = %v, want %v", ttl, OfflinePackTTL)
	}

	var cached response_models.OfflinePack
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		t.Fatalf("cached pack is not valid JSON: %v", err)
	}
	if cached.Country.Name != "Portugal" {
		t.Fatalf("cached country = %q, want Portugal", cached.Country.Name)
	}
}

func TestPackKeyNormalizesCountryName(t *testing.T) {
	if got := PackKey("  South Korea "); got != "offline_country_v2_south korea" {
		t.Fatalf("PackKey = %q", got)
	}
}

func TestGetPackServesCachedCopy(t *testing.T) {
	now := time.Now()
	svc, cache, _, pro, _ := newOfflineFixture(t, now)

	cached := response_models.OfflinePack{
		DownloadedAt: now.Add(-time.Hour).Unix(),
		ExpiresAt:    now.Add(time.Hour).Unix(),
	}
	cached.Country.Name = "Portugal (cached)"
	raw, _ := json.Marshal(cached)
	cache.data[PackKey("Portugal")] = string(raw)

	pack, err := svc.GetPack(context.Background(), pro.ID.String(), "Portugal")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pack.Country.Name != "Portugal (cached)" {
		t.Fatalf("expected the cached snapshot, got %q", pack.Country.Name)
	}
}

func TestGetPackRebuildsExpiredEntry(t *testing.T) {
	now := time.Now()
	svc, cache, _, pro, _ := newOfflineFixture(t, now)

	expired := response_models.OfflinePack{
		DownloadedAt: now.Add(-31 * 24 * time.Hour).Unix(),
		ExpiresAt:    now.Add(-24 * time.Hour).Unix(),
	}
	expired.Country.Name = "Portugal (stale)"
	raw, _ := json.Marshal(expired)
	key := PackKey("Portugal")
	cache.data[key] = string(raw)

	pack, err := svc.GetPack(context.Background(), pro.ID.String(), "Portugal")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pack.Country.Name != "Portugal" {
		t.Fatalf("expected a rebuilt pack, got %q", pack.Country.Name)
	}
	if len(cache.deletes) != 1 || cache.deletes[0] != key {
		t.Fatalf("expired entry should be deleted, deletes = %v", cache.deletes)
	}
}

func TestGetPackDropsCorruptEntry(t *testing.T) {
	now := time.Now()
	svc, cache, _, pro, _ := newOfflineFixture(t, now)

	key := PackKey("Portugal")
	cache.data[key] = "{not json"

	pack, err := svc.GetPack(context.Background(), pro.ID.String(), "Portugal")
	if err != nil {
		t.Fatalf("corrupt cache should fall through to the database, got %v", err)
	}
	if pack.Country.Name != "Portugal" {
		t.Fatalf("expected a rebuilt pack, got %q", pack.Country.Name)
	}
	if len(cache.deletes) != 1 || cache.deletes[0] != key {
		t.Fatalf("corrupt entry should be deleted, deletes = %v", cache.deletes)
	}
}

func TestGetPackUnknownCountry(t *testing.T) {
	now := time.Now()
	svc, _, _, pro, _ := newOfflineFixture(t, now)

	_, err := svc.GetPack(context.Background(), pro.ID.String(), "Atlantis")
	if !errors.Is(err, utils.ErrCountryNotFound) {
		t.Fatalf("expected ErrCountryNotFound, got %v", err)
	}
}
