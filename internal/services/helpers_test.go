package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"

	"github.com/nickross327/culturecompass-app-sub000/internal/models/db_models"
	"github.com/nickross327/culturecompass-app-sub000/internal/models/response_models"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

type fakeAccountRepo struct {
	mu       sync.Mutex
	accounts map[string]*db_models.Account
	failAll  bool
}

func newFakeAccountRepo(accounts ...*db_models.Account) *fakeAccountRepo {
	repo := &fakeAccountRepo{accounts: make(map[string]*db_models.Account)}
	for _, a := range accounts {
		repo.accounts[a.ID.String()] = a
	}
	return repo
}

var errFakeDB = errors.New("fake db failure")

func (f *fakeAccountRepo) Insert(_ context.Context, account *db_models.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return errFakeDB
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	f.accounts[account.ID.String()] = account
	return nil
}

func (f *fakeAccountRepo) FindByID(_ context.Context, id string) (*db_models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return nil, errFakeDB
	}
	return f.accounts[id], nil
}

func (f *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return nil, errFakeDB
	}
	for _, a := range f.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByReferralCode(_ context.Context, code string) (*db_models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.accounts {
		if a.ReferralCode == code {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByStripeCustomerID(_ context.Context, customerID string) (*db_models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.accounts {
		if a.StripeCustomerID == customerID {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) Update(_ context.Context, account *db_models.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return errFakeDB
	}
	f.accounts[account.ID.String()] = account
	return nil
}

func (f *fakeAccountRepo) UpdateFields(_ context.Context, id string, fields map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	account, ok := f.accounts[id]
	if !ok {
		return errFakeDB
	}
	if v, ok := fields["password_hash"]; ok {
		account.PasswordHash = v.(string)
	}
	if v, ok := fields["deletion_requested_at"]; ok {
		ts := v.(int64)
		account.DeletionRequestedAt = &ts
	}
	if v, ok := fields["stripe_customer_id"]; ok {
		account.StripeCustomerID = v.(string)
	}
	return nil
}

type fakeCountryRepo struct {
	countries []db_models.Country
	fail      bool
}

func (f *fakeCountryRepo) List(_ context.Context, page, pageSize int) ([]db_models.Country, error) {
	if f.fail {
		return nil, errFakeDB
	}
	return f.countries, nil
}

func (f *fakeCountryRepo) FindByName(_ context.Context, name string) (*db_models.Country, error) {
	if f.fail {
		return nil, errFakeDB
	}
	for i := range f.countries {
		if strings.EqualFold(f.countries[i].Name, name) {
			return &f.countries[i], nil
		}
	}
	return nil, nil
}

func (f *fakeCountryRepo) SearchByKeyword(_ context.Context, keyword string, page, pageSize int) ([]db_models.Country, error) {
	if f.fail {
		return nil, errFakeDB
	}
	return f.countries, nil
}

type fakePhraseRepo struct {
	phrases []db_models.Phrase
}

func (f *fakePhraseRepo) FindByID(_ context.Context, id string) (*db_models.Phrase, error) {
	for i := range f.phrases {
		if f.phrases[i].ID.String() == id {
			return &f.phrases[i], nil
		}
	}
	return nil, nil
}

func (f *fakePhraseRepo) ListByCountryID(_ context.Context, countryID uuid.UUID, category string) ([]db_models.Phrase, error) {
	out := make([]db_models.Phrase, 0, len(f.phrases))
	for _, p := range f.phrases {
		if p.CountryID == countryID && (category == "" || p.Category == category) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePhraseRepo) ListByIDs(_ context.Context, ids []string) ([]db_models.Phrase, error) {
	return f.phrases, nil
}

type fakeBadges struct {
	mu         sync.Mutex
	increments []string
	evaluated  []string
}

func (f *fakeBadges) GetAchievements(context.Context, string) (*response_models.AchievementsResponse, error) {
	return &response_models.AchievementsResponse{}, nil
}

func (f *fakeBadges) IncrementStat(_ context.Context, accountID string, metric string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.increments = append(f.increments, metric)
	return nil
}

func (f *fakeBadges) EvaluateMetric(_ context.Context, _ uuid.UUID, metric string, value int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.evaluated = append(f.evaluated, metric)
	return nil
}

type fakeEvents struct {
	mu       sync.Mutex
	recorded []string
}

func (f *fakeEvents) Record(accountID, eventType, feature, countryName string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recorded = append(f.recorded, eventType+"/"+feature)
}

type fakeMail struct {
	mu         sync.Mutex
	welcomes   []string
	resets     map[string]string // email -> token
	deletions  []string
	failResets bool
}

func newFakeMail() *fakeMail {
	return &fakeMail{resets: make(map[string]string)}
}

func (f *fakeMail) SendWelcome(to string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.welcomes = append(f.welcomes, to)
	return nil
}

func (f *fakeMail) SendResetPassword(to, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failResets {
		return errors.New("smtp down")
	}
	f.resets[to] = token
	return nil
}

func (f *fakeMail) SendDeletionScheduled(to string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletions = append(f.deletions, to)
	return nil
}

type fakeGuideCache struct {
	mu      sync.Mutex
	data    map[string]string
	deletes []string
	sets    map[string]time.Duration
	failGet bool
}

func newFakeGuideCache() *fakeGuideCache {
	return &fakeGuideCache{
		data: make(map[string]string),
		sets: make(map[string]time.Duration),
	}
}

func (f *fakeGuideCache) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failGet {
		return "", false, errors.New("cache down")
	}
	val, ok := f.data[key]
	return val, ok, nil
}

func (f *fakeGuideCache) Set(_ context.Context, key, value string, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
	f.sets[key] = ttl
	return nil
}

func (f *fakeGuideCache) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, key)
	f.deletes = append(f.deletes, key)
	return nil
}

type fakeAIClient struct {
	completeResponses []string
	completeErr       error
	jsonResponses     []string
	jsonErr           error
	jsonCalls         int
	embedErr          error
}

func (f *fakeAIClient) Complete(context.Context, string, string) (string, error) {
	if f.completeErr != nil {
		return "", f.completeErr
	}
	if len(f.completeResponses) == 0 {
		return "", errors.New("no canned response")
	}
	resp := f.completeResponses[0]
	if len(f.completeResponses) > 1 {
		f.completeResponses = f.completeResponses[1:]
	}
	return resp, nil
}

func (f *fakeAIClient) CompleteJSON(context.Context, string, string) (string, error) {
	f.jsonCalls++
	if f.jsonErr != nil {
		return "", f.jsonErr
	}
	if len(f.jsonResponses) == 0 {
		return "", errors.New("no canned response")
	}
	resp := f.jsonResponses[0]
	if len(f.jsonResponses) > 1 {
		f.jsonResponses = f.jsonResponses[1:]
	}
	return resp, nil
}

func (f *fakeAIClient) GetEmbedding(context.Context, string) (pgvector.Vector, error) {
	if f.embedErr != nil {
		return pgvector.Vector{}, f.embedErr
	}
	return pgvector.NewVector(make([]float32, 1536)), nil
}

func (f *fakeAIClient) Close() error { return nil }

type fakeEmbeddingRepo struct {
	embeddings []db_models.PhraseEmbedding
}

func (f *fakeEmbeddingRepo) ListSimilar(pgvector.Vector, string, int) ([]db_models.PhraseEmbedding, error) {
	return f.embeddings, nil
}

func (f *fakeEmbeddingRepo) Upsert(db_models.PhraseEmbedding) error { return nil }

type fakePulseRepo struct {
	mu      sync.Mutex
	tips    map[string]*db_models.PulseTip
	votes   map[string]bool // tipID/accountID
	reports []*db_models.PulseReport
}

func newFakePulseRepo(tips ...*db_models.PulseTip) *fakePulseRepo {
	repo := &fakePulseRepo{
		tips:  make(map[string]*db_models.PulseTip),
		votes: make(map[string]bool),
	}
	for _, tip := range tips {
		repo.tips[tip.ID.String()] = tip
	}
	return repo
}

func (f *fakePulseRepo) InsertTip(_ context.Context, tip *db_models.PulseTip) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if tip.ID == uuid.Nil {
		tip.ID = uuid.New()
	}
	f.tips[tip.ID.String()] = tip
	return nil
}

func (f *fakePulseRepo) FindTip(_ context.Context, tipID string) (*db_models.PulseTip, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tips[tipID], nil
}

func (f *fakePulseRepo) ListTips(_ context.Context, countryName string, page, pageSize int) ([]db_models.PulseTip, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]db_models.PulseTip, 0, len(f.tips))
	for _, tip := range f.tips {
		if countryName == "" || tip.CountryName == countryName {
			out = append(out, *tip)
		}
	}
	return out, nil
}

func (f *fakePulseRepo) Upvote(_ context.Context, tipID, accountID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := tipID.String() + "/" + accountID.String()
	if f.votes[key] {
		return errFakeDB
	}
	f.votes[key] = true
	f.tips[tipID.String()].Upvotes++
	return nil
}

func (f *fakePulseRepo) HasUpvoted(_ context.Context, tipID, accountID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.votes[tipID.String()+"/"+accountID.String()], nil
}

func (f *fakePulseRepo) InsertReport(_ context.Context, report *db_models.PulseReport) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reports = append(f.reports, report)
	return nil
}

type fakeBookmarkRepo struct {
	mu        sync.Mutex
	bookmarks []*db_models.PhraseBookmark
	favorites []*db_models.CountryFavorite
}

func (f *fakeBookmarkRepo) InsertBookmark(_ context.Context, bookmark *db_models.PhraseBookmark) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if bookmark.ID == uuid.Nil {
		bookmark.ID = uuid.New()
	}
	f.bookmarks = append(f.bookmarks, bookmark)
	return nil
}

func (f *fakeBookmarkRepo) ListBookmarks(_ context.Context, accountID uuid.UUID) ([]db_models.PhraseBookmark, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]db_models.PhraseBookmark, 0, len(f.bookmarks))
	for _, b := range f.bookmarks {
		if b.AccountID == accountID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookmarkRepo) FindBookmark(_ context.Context, accountID, phraseID uuid.UUID) (*db_models.PhraseBookmark, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookmarks {
		if b.AccountID == accountID && b.PhraseID == phraseID {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookmarkRepo) DeleteBookmark(_ context.Context, accountID uuid.UUID, bookmarkID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, b := range f.bookmarks {
		if b.AccountID == accountID && b.ID.String() == bookmarkID {
			f.bookmarks = append(f.bookmarks[:i], f.bookmarks[i+1:]...)
			return nil
		}
	}
	return errFakeDB
}

func (f *fakeBookmarkRepo) InsertFavorite(_ context.Context, favorite *db_models.CountryFavorite) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if favorite.ID == uuid.Nil {
		favorite.ID = uuid.New()
	}
	f.favorites = append(f.favorites, favorite)
	return nil
}

func (f *fakeBookmarkRepo) ListFavorites(_ context.Context, accountID uuid.UUID) ([]db_models.CountryFavorite, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]db_models.CountryFavorite, 0, len(f.favorites))
	for _, fav := range f.favorites {
		if fav.AccountID == accountID {
			out = append(out, *fav)
		}
	}
	return out, nil
}

func (f *fakeBookmarkRepo) FindFavorite(_ context.Context, accountID, countryID uuid.UUID) (*db_models.CountryFavorite, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, fav := range f.favorites {
		if fav.AccountID == accountID && fav.CountryID == countryID {
			return fav, nil
		}
	}
	return nil, nil
}

func (f *fakeBookmarkRepo) DeleteFavorite(_ context.Context, accountID uuid.UUID, favoriteID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, fav := range f.favorites {
		if fav.AccountID == accountID && fav.ID.String() == favoriteID {
			f.favorites = append(f.favorites[:i], f.favorites[i+1:]...)
			return nil
		}
	}
	return errFakeDB
}

type fakeBadgeRepo struct {
	mu         sync.Mutex
	badges     []db_models.Badge
	userBadges []db_models.UserBadge
	stats      map[string]*db_models.UserStats
}

func newFakeBadgeRepo(badges ...db_models.Badge) *fakeBadgeRepo {
	return &fakeBadgeRepo{
		badges: badges,
		stats:  make(map[string]*db_models.UserStats),
	}
}

func (f *fakeBadgeRepo) ListBadges(context.Context) ([]db_models.Badge, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.badges, nil
}

func (f *fakeBadgeRepo) ListUserBadges(_ context.Context, accountID uuid.UUID) ([]db_models.UserBadge, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]db_models.UserBadge, 0, len(f.userBadges))
	for _, ub := range f.userBadges {
		if ub.AccountID == accountID {
			out = append(out, ub)
		}
	}
	return out, nil
}

func (f *fakeBadgeRepo) InsertUserBadge(_ context.Context, userBadge *db_models.UserBadge) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.userBadges = append(f.userBadges, *userBadge)
	return nil
}

func (f *fakeBadgeRepo) FindStats(_ context.Context, accountID uuid.UUID) (*db_models.UserStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stats[accountID.String()], nil
}

func (f *fakeBadgeRepo) InsertStats(_ context.Context, stats *db_models.UserStats) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stats[stats.AccountID.String()] = stats
	return nil
}

func (f *fakeBadgeRepo) IncrementStat(_ context.Context, accountID uuid.UUID, column string, delta int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stats, ok := f.stats[accountID.String()]
	if !ok {
		return errFakeDB
	}
	switch column {
	case "phrases_viewed":
		stats.PhrasesViewed += delta
	case "countries_visited":
		stats.CountriesVisited += delta
	case "bookmarks_created":
		stats.BookmarksCreated += delta
	}
	return nil
}
