package services

import (
	"context"
	"errors"
	"testing"

	"github.com/nickross327/culturecompass-app-sub000/internal/models/db_models"
	"github.com/nickross327/culturecompass-app-sub000/internal/models/request_models"
	mem "github.com/nickross327/culturecompass-app-sub000/pkg/memcache"
	"github.com/nickross327/culturecompass-app-sub000/pkg/utils"
)

func newAssistantFixture(ai *fakeAIClient) (AssistantServiceInterface, *fakeEvents, mem.ChatSessionStore) {
	events := &fakeEvents{}
	sessions := mem.NewChatSessions()
	svc := NewAssistantService(ai, &fakeEmbeddingRepo{}, sessions, events)
	return svc, events, sessions
}

func TestConciergeAnswersAndRemembersTurn(t *testing.T) {
	ai := &fakeAIClient{completeResponses: []string{"Bow slightly when greeting elders."}}
	svc, events, sessions := newAssistantFixture(ai)

	resp, err := svc.Concierge(context.Background(), "acct-1", request_models.ConciergeRequest{
		CountryName: "Japan",
		Message:     "How do I greet someone older than me?",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Answer != "Bow slightly when greeting elders." {
		t.Fatalf("unexpected answer: %q", resp.Answer)
	}

	history := sessions.History("acct-1")
	if len(history) != 1 || history[0].Answer != resp.Answer {
		t.Fatalf("turn not recorded in session: %+v", history)
	}
	if len(events.recorded) != 1 || events.recorded[0] != "assistant_call/concierge" {
		t.Fatalf("usage event not recorded: %v", events.recorded)
	}
}

func TestConciergeFallsBackWhenModelFails(t *testing.T) {
	ai := &fakeAIClient{completeErr: errors.New("provider timeout")}
	svc, _, sessions := newAssistantFixture(ai)

	resp, err := svc.Concierge(context.Background(), "acct-1", request_models.ConciergeRequest{
		CountryName: "Japan",
		Message:     "Is tipping expected?",
	})
	if err != nil {
		t.Fatalf("model failures must not surface as errors, got %v", err)
	}
	if resp.Answer != ConciergeFallback {
		t.Fatalf("expected the fallback answer, got %q", resp.Answer)
	}
	if len(sessions.History("acct-1")) != 0 {
		t.Fatalf("failed turns must not pollute the session history")
	}
}

func TestConciergeIncludesRetrievedSources(t *testing.T) {
	ai := &fakeAIClient{completeResponses: []string{"Use both hands for business cards."}}
	events := &fakeEvents{}
	embedding := db_models.PhraseEmbedding{
		SourceID:   "p1",
		SourceKind: "phrase",
		Text:       "Meishi are exchanged with both hands.",
	}
	svc := NewAssistantService(ai, &fakeEmbeddingRepo{embeddings: []db_models.PhraseEmbedding{embedding}}, mem.NewChatSessions(), events)

	resp, err := svc.Concierge(context.Background(), "acct-1", request_models.ConciergeRequest{
		CountryName: "Japan",
		Message:     "business card etiquette?",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Sources) != 1 || resp.Sources[0] != "phrase:p1" {
		t.Fatalf("sources = %v, want [phrase:p1]", resp.Sources)
	}
}

const validItineraryJSON = `{
	"destination": "Kyoto",
	"duration_days": 2,
	"days": [
		{"day": 1, "activities": [
			{"start_time": "09:00", "end_time": "11:00", "activity": "Fushimi Inari", "what_to_do": "Walk the torii gates early"}
		]},
		{"day": 2, "activities": [
			{"start_time": "10:00", "end_time": "12:00", "activity": "Tea ceremony", "what_to_do": "Book a morning session"}
		]}
	]
}`

func TestPlannerParsesValidItinerary(t *testing.T) {
	ai := &fakeAIClient{jsonResponses: []string{validItineraryJSON}}
	svc, _, _ := newAssistantFixture(ai)

	itinerary, err := svc.Planner(context.Background(), "acct-1", request_models.PlannerRequest{
		Prompt: "2 days in Kyoto for temples",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(itinerary.Days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(itinerary.Days))
	}
	if itinerary.Days[0].Date == "" || itinerary.Days[1].Date == "" {
		t.Fatalf("dates must be filled server-side")
	}
	if ai.jsonCalls != 1 {
		t.Fatalf("valid response should not trigger a retry, calls = %d", ai.jsonCalls)
	}
}

func TestPlannerRetriesOnceThenFails(t *testing.T) {
	ai := &fakeAIClient{jsonResponses: []string{"{broken", "{still broken"}}
	svc, _, _ := newAssistantFixture(ai)

	_, err := svc.Planner(context.Background(), "acct-1", request_models.PlannerRequest{
		Prompt: "3 days in Lisbon",
	})
	if !errors.Is(err, utils.ErrUnexpectedBehaviorOfAI) {
		t.Fatalf("expected ErrUnexpectedBehaviorOfAI, got %v", err)
	}
	if ai.jsonCalls != 2 {
		t.Fatalf("expected exactly one retry, calls = %d", ai.jsonCalls)
	}
}

func TestPlannerRejectsWrongDayCount(t *testing.T) {
	// Model returns 2 days for a 5-day request, twice.
	ai := &fakeAIClient{jsonResponses: []string{validItineraryJSON, validItineraryJSON}}
	svc, _, _ := newAssistantFixture(ai)

	_, err := svc.Planner(context.Background(), "acct-1", request_models.PlannerRequest{
		Prompt: "trip to Kyoto",
		Days:   5,
	})
	if !errors.Is(err, utils.ErrUnexpectedBehaviorOfAI) {
		t.Fatalf("expected ErrUnexpectedBehaviorOfAI, got %v", err)
	}
}

func TestExtractDayCount(t *testing.T) {
	cases := []struct {
		prompt string
		want   int
	}{
		{"5 days in Rome", 5},
		{"a 3-day food tour", 3},
		{"10 day adventure", 10},
		{"weekend in Paris", 1},
		{"", 1},
	}
	for _, tc := range cases {
		if got := extractDayCount(tc.prompt); got != tc.want {
			t.Fatalf("extractDayCount(%q) = %d, want %d", tc.prompt, got, tc.want)
		}
	}
}

func TestTranslateReturnsStructuredResult(t *testing.T) {
	ai := &fakeAIClient{jsonResponses: []string{
		`{"translation": "Merci beaucoup", "phonetic": "mehr-SEE boh-KOO", "notes": "Safe in any setting."}`,
	}}
	svc, _, _ := newAssistantFixture(ai)

	resp, err := svc.Translate(context.Background(), "acct-1", request_models.TranslateRequest{
		Text:        "Thank you very much",
		CountryName: "France",
		Tone:        "formal",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Translation != "Merci beaucoup" {
		t.Fatalf("translation = %q", resp.Translation)
	}
}

func TestTranslateRejectsEmptyTranslation(t *testing.T) {
	ai := &fakeAIClient{jsonResponses: []string{`{"translation": ""}`, `{"translation": ""}`}}
	svc, _, _ := newAssistantFixture(ai)

	_, err := svc.Translate(context.Background(), "acct-1", request_models.TranslateRequest{
		Text:        "Hello",
		CountryName: "France",
	})
	if !errors.Is(err, utils.ErrUnexpectedBehaviorOfAI) {
		t.Fatalf("expected ErrUnexpectedBehaviorOfAI, got %v", err)
	}
}

func TestPackingListFillsDestination(t *testing.T) {
	ai := &fakeAIClient{jsonResponses: []string{
		`{"categories": [{"category": "Clothing", "items": ["Modest shoulders-covered top"]}]}`,
	}}
	svc, _, _ := newAssistantFixture(ai)

	list, err := svc.PackingList(context.Background(), "acct-1", request_models.PackingRequest{
		Destination:  "Morocco",
		DurationDays: 7,
		Season:       "summer",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list.Destination != "Morocco" {
		t.Fatalf("destination should be backfilled, got %q", list.Destination)
	}
	if len(list.Categories) != 1 {
		t.Fatalf("expected 1 category, got %d", len(list.Categories))
	}
}
