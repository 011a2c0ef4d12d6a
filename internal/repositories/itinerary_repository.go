package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"yatra/internal/models/db_models"
	"yatra/pkg/utils"
)

// ItineraryRepository persists itineraries. The store owns identifier
// assignment: SaveItinerary gives the row the next unused integer id
// (monotonic from 1, serialized under concurrent saves) and stamps
// CreatedAt. GetItineraryByID returns (nil, nil) for a missing id so a
// not-found is never conflated with a store failure.
type ItineraryRepository interface {
	SaveItinerary(ctx context.Context, itinerary *db_models.Itinerary) (*db_models.Itinerary, error)
	GetItineraryByID(ctx context.Context, id int) (*db_models.Itinerary, error)
	ListItineraries(ctx context.Context, userID *uint) ([]db_models.Itinerary, error)
}

func NewItineraryPostgresRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryPostgresRepository{db: db}
}

type itineraryPostgresRepository struct {
	db *gorm.DB
}

func (r *itineraryPostgresRepository) SaveItinerary(ctx context.Context, itinerary *db_models.Itinerary) (*db_models.Itinerary, error) {
	if r.db == nil {
		return nil, utils.ErrStoreNotConfigured
	}

	itinerary.ID = 0
	if err := r.db.WithContext(ctx).Create(itinerary).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return itinerary, nil
}

func (r *itineraryPostgresRepository) GetItineraryByID(ctx context.Context, id int) (*db_models.Itinerary, error) {
	if r.db == nil {
		return nil, utils.ErrStoreNotConfigured
	}

	var itinerary db_models.Itinerary
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&itinerary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return &itinerary, nil
}

func (r *itineraryPostgresRepository) ListItineraries(ctx context.Context, userID *uint) ([]db_models.Itinerary, error) {
	if r.db == nil {
		return nil, utils.ErrStoreNotConfigured
	}

	query := r.db.WithContext(ctx)
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}

	var itineraries []db_models.Itinerary
	if err := query.Find(&itineraries).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return itineraries, nil
}
