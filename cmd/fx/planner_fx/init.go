package planner_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"yatra/pkg/utils"
)

var Module = fx.Provide(
	providePlannerClient)

// providePlannerClient builds the configured generative-AI client. A
// missing API key is a startup error, never a silent default.
func providePlannerClient() utils.PlannerClientInterface {
	provider := os.Getenv("PLANNER_PROVIDER")
	if provider == "" {
		provider = "gemini"
	}

	var apiKey, model string
	switch provider {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = os.Getenv("OPENAI_MODEL")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when PLANNER_PROVIDER=openai")
		}
	default:
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = os.Getenv("GEMINI_MODEL")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required")
		}
	}

	client, err := utils.NewPlannerClient(provider, apiKey, model)
	if err != nil {
		log.Fatalf("Failed to initialize planner client: %v", err)
	}
	return client
}
