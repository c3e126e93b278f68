package services

import (
	"testing"

	"github.com/google/uuid"

	"github.com/nickross327/culturecompass-app-sub000/internal/models/db_models"
)

func phrase(english, local, category string) db_models.Phrase {
	p := db_models.Phrase{
		EnglishPhrase: english,
		LocalPhrase:   local,
		Category:      category,
	}
	p.ID = uuid.New()
	return p
}

func TestDedupPhrases(t *testing.T) {
	t.Run("drops exact duplicates keeping the first", func(t *testing.T) {
		first := phrase("Hello", "Bonjour", "greetings")
		second := phrase("Hello", "Bonjour", "greetings")

		out := DedupPhrases([]db_models.Phrase{first, second})
		if len(out) != 1 {
			t.Fatalf("expected 1 phrase, got %d", len(out))
		}
		if out[0].ID != first.ID {
			t.Fatalf("expected the first-seen phrase to survive")
		}
	})

	t.Run("matching is case insensitive", func(t *testing.T) {
		out := DedupPhrases([]db_models.Phrase{
			phrase("Hello", "Bonjour", "greetings"),
			phrase("HELLO", "BONJOUR", "Greetings"),
		})
		if len(out) != 1 {
			t.Fatalf("expected 1 phrase, got %d", len(out))
		}
	})

	t.Run("same text in different categories is kept", func(t *testing.T) {
		out := DedupPhrases([]db_models.Phrase{
			phrase("Excuse me", "Pardon", "greetings"),
			phrase("Excuse me", "Pardon", "dining"),
		})
		if len(out) != 2 {
			t.Fatalf("expected 2 phrases, got %d", len(out))
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if out := DedupPhrases(nil); len(out) != 0 {
			t.Fatalf("expected empty output, got %d", len(out))
		}
	})
}

func TestDedupCountriesByISO2(t *testing.T) {
	japan := db_models.Country{Name: "Japan", ISO2: "JP"}
	japan.ID = uuid.New()
	japanDupe := db_models.Country{Name: "Japan (duplicate)", ISO2: "JP"}
	japanDupe.ID = uuid.New()
	france := db_models.Country{Name: "France", ISO2: "FR"}
	france.ID = uuid.New()
	noCode := db_models.Country{Name: "Unknown"}
	noCode.ID = uuid.New()
	noCode2 := db_models.Country{Name: "Also Unknown"}
	noCode2.ID = uuid.New()

	out := DedupCountriesByISO2([]db_models.Country{japan, japanDupe, france, noCode, noCode2})

	if len(out) != 4 {
		t.Fatalf("expected 4 countries, got %d", len(out))
	}
	if out[0].Name != "Japan" {
		t.Fatalf("expected first-seen Japan to survive, got %q", out[0].Name)
	}
	// Countries without an ISO code are never collapsed into each other.
	if out[2].Name != "Unknown" || out[3].Name != "Also Unknown" {
		t.Fatalf("codeless countries should all be kept: %+v", out)
	}
}
