package utils

import (
	"context"
	"fmt"
	"strings"
)

// PlannerClientInterface is the generative-AI capability behind itinerary
// generation: given a structured prompt it returns a cleaned JSON document,
// or an error. Callers make exactly one attempt and treat every error the
// same way.
type PlannerClientInterface interface {
	GenerateItineraryJSON(ctx context.Context, prompt string) (string, error)
}

// NewPlannerClient creates either a Gemini or an OpenAI planner client
// based on config.
func NewPlannerClient(provider, apiKey, model string) (PlannerClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIPlannerClient(apiKey, model), nil
	case "gemini":
		return NewGeminiPlannerClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported planner provider: %s. Use 'openai' or 'gemini'", provider)
	}
}

// CleanJSONResponse strips markdown fences and prose the model may wrap
// around the JSON document, then narrows the text down to the first
// balanced object or array.
func CleanJSONResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")

	prefixes := []string{
		"Here's the itinerary:",
		"Here is the itinerary:",
		"Here's your itinerary:",
		"Itinerary:",
	}
	response = strings.TrimSpace(response)
	for _, prefix := range prefixes {
		if strings.HasPrefix(response, prefix) {
			response = strings.TrimPrefix(response, prefix)
			break
		}
	}
	response = strings.TrimSpace(response)

	objStart := strings.Index(response, "{")
	arrStart := strings.Index(response, "[")

	if objStart != -1 && (arrStart == -1 || objStart < arrStart) {
		if objEnd := findMatchingDelimiter(response, objStart, '{', '}'); objEnd != -1 {
			response = response[objStart : objEnd+1]
		}
	} else if arrStart != -1 {
		if arrEnd := findMatchingDelimiter(response, arrStart, '[', ']'); arrEnd != -1 {
			response = response[arrStart : arrEnd+1]
		}
	}

	return strings.TrimSpace(response)
}

// findMatchingDelimiter returns the index of the closing delimiter matching
// the opening one at start, skipping string literals, or -1.
func findMatchingDelimiter(s string, start int, open, close byte) int {
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
