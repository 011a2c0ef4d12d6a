package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// plannerCallTimeout bounds a single upstream generation call. A timeout is
// indistinguishable from any other planner failure for callers.
const plannerCallTimeout = 30 * time.Second

// GeminiPlannerClient generates itineraries with Google's Gemini models.
type GeminiPlannerClient struct {
	client *genai.Client
	model  string
}

func NewGeminiPlannerClient(apiKey, model string) (*GeminiPlannerClient, error) {
	if model == "" {
		model = "gemini-1.5-pro"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiPlannerClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiPlannerClient) GenerateItineraryJSON(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(0.7)
	model.ResponseMIMEType = "application/json"

	ctxWithTimeout, cancel := context.WithTimeout(ctx, plannerCallTimeout)
	defer cancel()

	resp, err := model.GenerateContent(ctxWithTimeout, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated by Gemini")
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	content = CleanJSONResponse(content)

	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("gemini returned invalid JSON")
	}

	return content, nil
}

func (c *GeminiPlannerClient) Close() error {
	return c.client.Close()
}
