package repositories

import (
	"context"
	"sync"
	"time"

	"yatra/internal/models/db_models"
)

// itineraryMemoryRepository is the non-durable development backend. The
// mutex serializes the counter so concurrent saves never share an id.
type itineraryMemoryRepository struct {
	mu          sync.Mutex
	itineraries map[uint]db_models.Itinerary
	nextID      uint
}

func NewItineraryMemoryRepository() ItineraryRepository {
	return &itineraryMemoryRepository{
		itineraries: make(map[uint]db_models.Itinerary),
		nextID:      1,
	}
}

func (r *itineraryMemoryRepository) SaveItinerary(ctx context.Context, itinerary *db_models.Itinerary) (*db_models.Itinerary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	itinerary.ID = r.nextID
	r.nextID++
	itinerary.CreatedAt = time.Now()

	r.itineraries[itinerary.ID] = *itinerary
	return itinerary, nil
}

func (r *itineraryMemoryRepository) GetItineraryByID(ctx context.Context, id int) (*db_models.Itinerary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id < 1 {
		return nil, nil
	}
	itinerary, ok := r.itineraries[uint(id)]
	if !ok {
		return nil, nil
	}
	return &itinerary, nil
}

func (r *itineraryMemoryRepository) ListItineraries(ctx context.Context, userID *uint) ([]db_models.Itinerary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	itineraries := make([]db_models.Itinerary, 0, len(r.itineraries))
	for _, itinerary := range r.itineraries {
		if userID != nil && (itinerary.UserID == nil || *itinerary.UserID != *userID) {
			continue
		}
		itineraries = append(itineraries, itinerary)
	}
	return itineraries, nil
}
