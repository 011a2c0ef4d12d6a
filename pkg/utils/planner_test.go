package utils

import "testing"

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain json untouched",
			input: `{"title": "Trip"}`,
			want:  `{"title": "Trip"}`,
		},
		{
			name:  "markdown fences stripped",
			input: "```json\n{\"title\": \"Trip\"}\n```",
			want:  `{"title": "Trip"}`,
		},
		{
			name:  "prose prefix stripped",
			input: `Here's the itinerary: {"title": "Trip"}`,
			want:  `{"title": "Trip"}`,
		},
		{
			name:  "trailing prose stripped",
			input: `{"title": "Trip"} Hope you enjoy it!`,
			want:  `{"title": "Trip"}`,
		},
		{
			name:  "braces inside strings ignored",
			input: `{"note": "use {curly} braces"} extra`,
			want:  `{"note": "use {curly} braces"}`,
		},
		{
			name:  "escaped quotes inside strings",
			input: `{"note": "say \"hi\" {ok}"} trailing`,
			want:  `{"note": "say \"hi\" {ok}"}`,
		},
		{
			name:  "array payload",
			input: "```\n[1, 2, 3]\n```",
			want:  `[1, 2, 3]`,
		},
		{
			name:  "nested objects",
			input: `noise {"a": {"b": {"c": 1}}} noise`,
			want:  `{"a": {"b": {"c": 1}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanJSONResponse(tt.input); got != tt.want {
				t.Errorf("CleanJSONResponse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
