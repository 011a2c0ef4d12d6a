package itinerary_fx

import (
	"go.uber.org/fx"

	"yatra/internal/api/controllers"
	"yatra/internal/repositories"
	"yatra/internal/services"
	"yatra/pkg/utils"
)

var Module = fx.Provide(
	provideItineraryService, provideItineraryController)

func provideItineraryService(planner utils.PlannerClientInterface, store repositories.ItineraryRepository) services.ItineraryServiceInterface {
	return services.NewItineraryService(planner, store)
}

func provideItineraryController(itineraryService services.ItineraryServiceInterface) *controllers.ItineraryController {
	return controllers.NewItineraryController(itineraryService)
}
