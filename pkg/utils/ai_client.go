package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/pgvector/pgvector-go"
)

// AIClientInterface abstracts the LLM provider. Complete returns free text,
// CompleteJSON returns a raw JSON document (already stripped of markdown
// fences), GetEmbedding returns a 1536-dim vector for similarity search.
type AIClientInterface interface {
	Complete(ctx context.Context, system string, user string) (string, error)
	CompleteJSON(ctx context.Context, system string, user string) (string, error)
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
	Close() error
}

// NewAIClient builds the configured provider client.
func NewAIClient(provider, apiKey, model string) (AIClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIClient(apiKey, model), nil
	case "gemini":
		return NewGeminiClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}

// CleanJSONResponse strips markdown fences and surrounding prose from a
// model response and returns just the first complete JSON value.
func CleanJSONResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	objStart := strings.Index(response, "{")
	arrStart := strings.Index(response, "[")

	if objStart != -1 && (arrStart == -1 || objStart < arrStart) {
		if end := findMatching(response, objStart, '{', '}'); end != -1 {
			response = response[objStart : end+1]
		}
	} else if arrStart != -1 {
		if end := findMatching(response, arrStart, '[', ']'); end != -1 {
			response = response[arrStart : end+1]
		}
	}

	return strings.TrimSpace(response)
}

// findMatching walks the string from start, tracking string literals and
// escapes, and returns the index of the balancing close delimiter.
func findMatching(s string, start int, open, close byte) int {
	if start >= len(s) || s[start] != open {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
