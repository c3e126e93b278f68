package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type Phrase struct {
	BaseModel
	EnglishPhrase         string
	LocalPhrase           string
	PhoneticPronunciation string
	Category              string `gorm:"index"`
	FormalityLevel        string

	CountryID uuid.UUID `gorm:"type:uuid;index"`
	// CountryName is kept for API compatibility with older clients that
	// keyed phrases by name; lookups join on CountryID.
	CountryName string `gorm:"index"`
}

// PhraseEmbedding backs semantic retrieval for the assistant. One row per
// phrase or community tip, keyed by the source record id.
type PhraseEmbedding struct {
	SourceID    string `gorm:"primaryKey;column:source_id"`
	SourceKind  string `gorm:"index"` // "phrase" | "tip"
	CountryName string `gorm:"index"`
	Text        string
	Embedding   pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt   time.Time       `gorm:"autoCreateTime"`
}
