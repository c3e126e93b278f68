package repositories

import (
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"github.com/nickross327/culturecompass-app-sub000/internal/models/db_models"
)

type EmbeddingRepository interface {
	ListSimilar(vector pgvector.Vector, countryName string, limit int) ([]db_models.PhraseEmbedding, error)
	Upsert(embedding db_models.PhraseEmbedding) error
}

type embeddingRepository struct {
	db *gorm.DB
}

func NewEmbeddingRepository(db *gorm.DB) EmbeddingRepository {
	return &embeddingRepository{db: db}
}

// ListSimilar returns embeddings within 0.7 cosine similarity of the query
// vector, nearest first. countryName narrows the search when set.
func (r *embeddingRepository) ListSimilar(vector pgvector.Vector, countryName string, limit int) ([]db_models.PhraseEmbedding, error) {
	if limit <= 0 {
		limit = 15
	}

	var results []db_models.PhraseEmbedding

	query := `
        SELECT *, (1 - (embedding <=> $1)) AS similarity
        FROM phrase_embeddings
        WHERE (1 - (embedding <=> $1)) > 0.7
          AND ($2 = '' OR country_name = $2)
        ORDER BY embedding <=> $1
        LIMIT $3
    `

	err := r.db.Raw(query, vector.String(), countryName, limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *embeddingRepository) Upsert(embedding db_models.PhraseEmbedding) error {
	return r.db.Save(&embedding).Error
}
