package utils

import "testing"

func TestCleanJSONResponse(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bare object",
			in:   `{"answer": "yes"}`,
			want: `{"answer": "yes"}`,
		},
		{
			name: "markdown fenced",
			in:   "```json\n{\"answer\": \"yes\"}\n```",
			want: `{"answer": "yes"}`,
		},
		{
			name: "uppercase fence",
			in:   "```JSON\n{\"answer\": \"yes\"}\n```",
			want: `{"answer": "yes"}`,
		},
		{
			name: "surrounding prose",
			in:   `Sure, here is your itinerary: {"days": []} Hope that helps!`,
			want: `{"days": []}`,
		},
		{
			name: "nested objects",
			in:   `prefix {"a": {"b": {"c": 1}}} suffix`,
			want: `{"a": {"b": {"c": 1}}}`,
		},
		{
			name: "braces inside string literals",
			in:   `{"note": "use } and { carefully"}`,
			want: `{"note": "use } and { carefully"}`,
		},
		{
			name: "escaped quote inside string",
			in:   `{"note": "she said \"hi}\" to me"}`,
			want: `{"note": "she said \"hi}\" to me"}`,
		},
		{
			name: "array payload",
			in:   "Here you go:\n[1, 2, 3]",
			want: `[1, 2, 3]`,
		},
		{
			name: "object before array wins",
			in:   `{"items": [1, 2]} [3]`,
			want: `{"items": [1, 2]}`,
		},
		{
			name: "unbalanced object left as-is",
			in:   `{"broken": `,
			want: `{"broken":`,
		},
		{
			name: "no json at all",
			in:   "I cannot answer that.",
			want: "I cannot answer that.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CleanJSONResponse(tc.in); got != tc.want {
				t.Fatalf("CleanJSONResponse(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestFindMatching(t *testing.T) {
	t.Run("start not on open delimiter", func(t *testing.T) {
		if got := findMatching(`x{}`, 0, '{', '}'); got != -1 {
			t.Fatalf("got %d, want -1", got)
		}
	})

	t.Run("start past end", func(t *testing.T) {
		if got := findMatching(`{}`, 5, '{', '}'); got != -1 {
			t.Fatalf("got %d, want -1", got)
		}
	})

	t.Run("matches at depth", func(t *testing.T) {
		s := `{"a": {"b": 1}}`
		if got := findMatching(s, 0, '{', '}'); got != len(s)-1 {
			t.Fatalf("got %d, want %d", got, len(s)-1)
		}
	})

	t.Run("never closed", func(t *testing.T) {
		if got := findMatching(`{"a": {"b": 1}`, 0, '{', '}'); got != -1 {
			t.Fatalf("got %d, want -1", got)
		}
	})
}

func TestNewAIClientUnknownProvider(t *testing.T) {
	if _, err := NewAIClient("watson", "key", "model"); err == nil {
		t.Fatalf("expected an error for an unsupported provider")
	}
}
