package store_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"yatra/internal/infra"
	"yatra/internal/repositories"
)

var Module = fx.Provide(
	provideStores, provideItineraryRepo, provideAccountRepo)

// stores bundles both repositories so backend selection happens once.
type stores struct {
	itineraries repositories.ItineraryRepository
	accounts    repositories.AccountRepository
}

// provideStores picks postgres when POSTGRES_URL is set, otherwise the
// non-durable in-memory store. The choice is logged so an operator can
// tell which mode the process runs in.
func provideStores() *stores {
	if os.Getenv("POSTGRES_URL") == "" {
		log.Println("POSTGRES_URL not set, using in-memory itinerary store")
		return &stores{
			itineraries: repositories.NewItineraryMemoryRepository(),
			accounts:    repositories.NewAccountMemoryRepository(),
		}
	}

	db := infra.InitPostgresql()
	log.Println("Using PostgreSQL itinerary store")
	return &stores{
		itineraries: repositories.NewItineraryPostgresRepository(db),
		accounts:    repositories.NewAccountPostgresRepository(db),
	}
}

func provideItineraryRepo(s *stores) repositories.ItineraryRepository {
	return s.itineraries
}

func provideAccountRepo(s *stores) repositories.AccountRepository {
	return s.accounts
}
