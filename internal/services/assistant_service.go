package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	mem "github.com/nickross327/culturecompass-app-sub000/pkg/memcache"
	"github.com/nickross327/culturecompass-app-sub000/pkg/utils"

	"github.com/nickross327/culturecompass-app-sub000/internal/models/request_models"
	"github.com/nickross327/culturecompass-app-sub000/internal/models/response_models"
	"github.com/nickross327/culturecompass-app-sub000/internal/repositories"
)

// ConciergeFallback is returned whenever the model call fails. Text
// endpoints degrade to this rather than erroring; travelers mid-trip get a
// polite miss, not a 500.
const ConciergeFallback = "I'm sorry, the cultural concierge is unavailable right now. Please try again in a moment."

const chatSessionTTL = 30 * time.Minute

type AssistantServiceInterface interface {
	Concierge(ctx context.Context, accountID string, request request_models.ConciergeRequest) (*response_models.ConciergeResponse, error)
	Planner(ctx context.Context, accountID string, request request_models.PlannerRequest) (*response_models.ItineraryResponse, error)
	Translate(ctx context.Context, accountID string, request request_models.TranslateRequest) (*response_models.TranslationResponse, error)
	PackingList(ctx context.Context, accountID string, request request_models.PackingRequest) (*response_models.PackingListResponse, error)
}

type AssistantService struct {
	aiClient      utils.AIClientInterface
	embeddingRepo repositories.EmbeddingRepository
	sessions      mem.ChatSessionStore
	events        EventServiceInterface
}

func NewAssistantService(
	aiClient utils.AIClientInterface,
	embeddingRepo repositories.EmbeddingRepository,
	sessions mem.ChatSessionStore,
	events EventServiceInterface,
) AssistantServiceInterface {
	return &AssistantService{
		aiClient:      aiClient,
		embeddingRepo: embeddingRepo,
		sessions:      sessions,
		events:        events,
	}
}

func (a *AssistantService) Concierge(ctx context.Context, accountID string, request request_models.ConciergeRequest) (*response_models.ConciergeResponse, error) {
	a.events.Record(accountID, "assistant_call", "concierge", request.CountryName)

	snippets, sources := a.retrieveContext(ctx, request.CountryName, request.Message)

	var prompt strings.Builder
	if len(snippets) > 0 {
		prompt.WriteString("Relevant local knowledge:\n")
		for _, s := range snippets {
			fmt.Fprintf(&prompt, "- %s\n", s)
		}
		prompt.WriteString("\n")
	}
	for _, turn := range a.sessions.History(accountID) {
		fmt.Fprintf(&prompt, "Traveler asked: %s\nYou answered: %s\n", turn.Question, turn.Answer)
	}
	fmt.Fprintf(&prompt, "\nTraveler's question about %s: %s", request.CountryName, request.Message)

	system := fmt.Sprintf(
		"You are a cultural etiquette concierge for travelers in %s. "+
			"Answer concisely in plain text with practical, respectful advice. "+
			"Never invent customs; if unsure, say so.", request.CountryName)

	answer, err := a.aiClient.Complete(ctx, system, prompt.String())
	if err != nil {
		log.Printf("concierge completion failed: %v", err)
		return &response_models.ConciergeResponse{Answer: ConciergeFallback}, nil
	}

	a.sessions.Append(accountID, mem.ChatTurn{Question: request.Message, Answer: answer}, chatSessionTTL)

	return &response_models.ConciergeResponse{
		Answer:  answer,
		Sources: sources,
	}, nil
}

func (a *AssistantService) Planner(ctx context.Context, accountID string, request request_models.PlannerRequest) (*response_models.ItineraryResponse, error) {
	if strings.TrimSpace(request.Prompt) == "" {
		return nil, utils.ErrInvalidInput
	}

	a.events.Record(accountID, "assistant_call", "planner", "")

	dayCount := request.Days
	if dayCount == 0 {
		dayCount = extractDayCount(request.Prompt)
	}
	if dayCount < 1 || dayCount > 30 {
		return nil, utils.ErrInvalidInput
	}

	system := "You are a travel-itinerary planner. Return JSON only, no markdown, no prose."
	prompt := fmt.Sprintf(`Create a %d-day itinerary for this request: %q

Return JSON in this exact shape:
{
  "destination": "string",
  "duration_days": %d,
  "days": [
    {
      "day": 1,
      "activities": [
        {"start_time":"09:00","end_time":"11:00","activity":"string","what_to_do":"string"}
      ]
    }
  ]
}

Hard constraints:
- Exactly %d entries in "days", day numbered 1..%d with no gaps.
- 2-5 activities per day, times formatted HH:MM, start_time < end_time.
- Keep activities culturally specific to the destination.`,
		dayCount, request.Prompt, dayCount, dayCount, dayCount)

	itinerary, err := a.completeItinerary(ctx, system, prompt, dayCount)
	if err != nil {
		// One retry; models occasionally return truncated JSON.
		itinerary, err = a.completeItinerary(ctx, system, prompt, dayCount)
	}
	if err != nil {
		log.Printf("planner generation failed: %v", err)
		return nil, utils.ErrUnexpectedBehaviorOfAI
	}

	// Dates are filled server-side so the model never controls them.
	start := time.Now()
	for i := range itinerary.Days {
		itinerary.Days[i].Date = start.AddDate(0, 0, itinerary.Days[i].Day-1).Format("2006-01-02")
	}

	return itinerary, nil
}

func (a *AssistantService) completeItinerary(ctx context.Context, system, prompt string, dayCount int) (*response_models.ItineraryResponse, error) {
	raw, err := a.aiClient.CompleteJSON(ctx, system, prompt)
	if err != nil {
		return nil, err
	}

	var itinerary response_models.ItineraryResponse
	if err := json.Unmarshal([]byte(raw), &itinerary); err != nil {
		return nil, fmt.Errorf("itinerary parse: %w", err)
	}
	if err := validateItinerary(&itinerary, dayCount); err != nil {
		return nil, err
	}
	return &itinerary, nil
}

func (a *AssistantService) Translate(ctx context.Context, accountID string, request request_models.TranslateRequest) (*response_models.TranslationResponse, error) {
	a.events.Record(accountID, "assistant_call", "translator", request.CountryName)

	tone := request.Tone
	if tone == "" {
		tone = "casual"
	}

	snippets, _ := a.retrieveContext(ctx, request.CountryName, request.Text)

	var prompt strings.Builder
	if len(snippets) > 0 {
		prompt.WriteString("Reference phrases from the phrasebook:\n")
		for _, s := range snippets {
			fmt.Fprintf(&prompt, "- %s\n", s)
		}
		prompt.WriteString("\n")
	}
	fmt.Fprintf(&prompt, "Translate into the local language of %s, %s register: %q\n", request.CountryName, tone, request.Text)
	prompt.WriteString(`Return JSON: {"translation":"...","phonetic":"...","notes":"one short usage note"}`)

	system := "You are a phrasebook translator for travelers. Return JSON only."

	raw, err := a.aiClient.CompleteJSON(ctx, system, prompt.String())
	if err != nil {
		raw, err = a.aiClient.CompleteJSON(ctx, system, prompt.String())
	}
	if err != nil {
		log.Printf("translation failed: %v", err)
		return nil, utils.ErrUnexpectedBehaviorOfAI
	}

	var translation response_models.TranslationResponse
	if err := json.Unmarshal([]byte(raw), &translation); err != nil || translation.Translation == "" {
		return nil, utils.ErrUnexpectedBehaviorOfAI
	}
	return &translation, nil
}

func (a *AssistantService) PackingList(ctx context.Context, accountID string, request request_models.PackingRequest) (*response_models.PackingListResponse, error) {
	a.events.Record(accountID, "assistant_call", "packing", request.Destination)

	season := request.Season
	if season == "" {
		season = "any season"
	}

	prompt := fmt.Sprintf(`Build a packing checklist for %d days in %s (%s).
Include any dress-code items the local culture expects.
Return JSON: {"destination":"%s","categories":[{"category":"string","items":["string"]}]}`,
		request.DurationDays, request.Destination, season, request.Destination)

	system := "You are a travel packing assistant. Return JSON only."

	raw, err := a.aiClient.CompleteJSON(ctx, system, prompt)
	if err != nil {
		raw, err = a.aiClient.CompleteJSON(ctx, system, prompt)
	}
	if err != nil {
		log.Printf("packing list failed: %v", err)
		return nil, utils.ErrUnexpectedBehaviorOfAI
	}

	var list response_models.PackingListResponse
	if err := json.Unmarshal([]byte(raw), &list); err != nil || len(list.Categories) == 0 {
		return nil, utils.ErrUnexpectedBehaviorOfAI
	}
	if list.Destination == "" {
		list.Destination = request.Destination
	}
	return &list, nil
}

// retrieveContext pulls phrasebook/tip snippets semantically close to the
// query. Retrieval failures degrade to an empty context, never an error.
func (a *AssistantService) retrieveContext(ctx context.Context, countryName, query string) ([]string, []string) {
	vector, err := a.aiClient.GetEmbedding(ctx, query)
	if err != nil {
		log.Printf("context embedding failed: %v", err)
		return nil, nil
	}

	embeddings, err := a.embeddingRepo.ListSimilar(vector, countryName, 15)
	if err != nil {
		log.Printf("context retrieval failed: %v", err)
		return nil, nil
	}

	snippets := make([]string, 0, len(embeddings))
	sources := make([]string, 0, len(embeddings))
	for _, e := range embeddings {
		snippets = append(snippets, e.Text)
		sources = append(sources, e.SourceKind+":"+e.SourceID)
	}
	return snippets, sources
}

var dayCountPattern = regexp.MustCompile(`(\d+)[\s-]*day`)

// extractDayCount reads "3 days", "3-day", etc. from a prompt, defaulting
// to a single day.
func extractDayCount(prompt string) int {
	matches := dayCountPattern.FindStringSubmatch(strings.ToLower(prompt))
	if len(matches) >= 2 {
		if n, err := strconv.Atoi(matches[1]); err == nil && n >= 1 {
			return n
		}
	}
	return 1
}

var timePattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

func validateItinerary(itinerary *response_models.ItineraryResponse, dayCount int) error {
	if len(itinerary.Days) != dayCount {
		return fmt.Errorf("expected %d days, got %d", dayCount, len(itinerary.Days))
	}
	for i, day := range itinerary.Days {
		if day.Day != i+1 {
			return fmt.Errorf("day numbering gap at position %d", i)
		}
		if len(day.Activities) == 0 {
			return fmt.Errorf("day %d has no activities", day.Day)
		}
		for _, act := range day.Activities {
			if !timePattern.MatchString(act.StartTime) || !timePattern.MatchString(act.EndTime) {
				return fmt.Errorf("day %d has malformed times", day.Day)
			}
			if strings.TrimSpace(act.Activity) == "" {
				return fmt.Errorf("day %d has an empty activity", day.Day)
			}
		}
	}
	if itinerary.DurationDays == 0 {
		itinerary.DurationDays = dayCount
	}
	return nil
}
