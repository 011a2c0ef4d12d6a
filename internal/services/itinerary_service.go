package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"gorm.io/datatypes"

	"yatra/internal/models/db_models"
	"yatra/internal/models/request_models"
	"yatra/internal/models/response_models"
	"yatra/internal/repositories"
	"yatra/pkg/utils"
)

const itineraryPromptTemplate = `You are an expert travel planner with deep knowledge of Indian locations. You create detailed, realistic itineraries based on user preferences.

Generate a personalized hangout itinerary for %s.

Preferences:
- Activities: %s
- Duration: %s
- Budget: %s
- Maximum travel distance: %s
- Transportation: %s

Please generate a complete itinerary with realistic locations, descriptions, and timeline.
The response must be valid JSON format only (no markdown, no code blocks) and include:
1. A title and description for the itinerary
2. The location
3. A list of 6 activities (2 morning, 2 afternoon, 2 evening) with:
   - Unique ID (string)
   - Time (e.g., "9:00 AM")
   - Title
   - Description
   - Location (street address and neighborhood)
   - Price category (use "₹" for budget, "₹₹" for moderate, "₹₹₹" for expensive)
   - Rating (e.g., "4.8 ★")
   - Type (one of: "exploring", "eating", "historical", "cafe")
   - Time of day category ("morning", "afternoon", or "evening")
4. Three relevant recommended similar adventures with id, title, description, rating, and duration.

Make activities specific to the location, realistic, and based on actual venues. Include exact addresses.
Format all times appropriately. Make sure descriptions are engaging and 1-2 sentences long.
Focus on authentic Indian experiences.

Return only valid JSON without any markdown formatting or code blocks.`

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, req request_models.GenerateItineraryRequest) (*response_models.ItineraryResponse, error)
	SaveItinerary(ctx context.Context, rawItinerary json.RawMessage) (*response_models.SaveItineraryResult, error)
	GetItineraryByID(ctx context.Context, id int) (*response_models.StoredItinerary, error)
	ListItineraries(ctx context.Context, userID *uint) ([]response_models.StoredItinerary, error)
}

type ItineraryService struct {
	planner utils.PlannerClientInterface
	store   repositories.ItineraryRepository
}

func NewItineraryService(planner utils.PlannerClientInterface, store repositories.ItineraryRepository) ItineraryServiceInterface {
	return &ItineraryService{
		planner: planner,
		store:   store,
	}
}

// GenerateItinerary asks the planner once for a personalized itinerary and
// falls back to the canned catalog when the planner errors or returns
// unparseable output. The result is persisted best-effort: a store failure
// is logged and the itinerary is returned without an id.
func (s *ItineraryService) GenerateItinerary(ctx context.Context, req request_models.GenerateItineraryRequest) (*response_models.ItineraryResponse, error) {
	if err := validateGenerateRequest(req); err != nil {
		return nil, err
	}

	log.Printf("Generating itinerary for %s", req.LocationData.Location)

	itinerary := s.planItinerary(ctx, req)

	row, err := itineraryToRow(itinerary, nil)
	if err != nil {
		log.Printf("Error saving generated itinerary (non-fatal): %v", err)
		return itinerary, nil
	}
	saved, err := s.store.SaveItinerary(ctx, row)
	if err != nil {
		log.Printf("Error saving generated itinerary (non-fatal): %v", err)
		return itinerary, nil
	}

	itinerary.ID = int(saved.ID)
	log.Printf("Generated itinerary saved with ID: %d", saved.ID)
	return itinerary, nil
}

// planItinerary runs the single planner attempt. Any failure yields the
// catalog entry for the requested location.
func (s *ItineraryService) planItinerary(ctx context.Context, req request_models.GenerateItineraryRequest) *response_models.ItineraryResponse {
	prompt := buildItineraryPrompt(req)

	raw, err := s.planner.GenerateItineraryJSON(ctx, prompt)
	if err != nil {
		log.Printf("Planner error, using fallback data: %v", err)
		return s.fallback(req)
	}

	var itinerary response_models.ItineraryResponse
	if err := json.Unmarshal([]byte(raw), &itinerary); err != nil {
		log.Printf("Planner returned unparseable itinerary, using fallback data: %v", err)
		return s.fallback(req)
	}

	enrichImages(&itinerary)
	itinerary.ID = 0
	itinerary.Source = "planner"
	log.Printf("Successfully generated personalized itinerary for %s", req.LocationData.Location)
	return &itinerary
}

func (s *ItineraryService) fallback(req request_models.GenerateItineraryRequest) *response_models.ItineraryResponse {
	log.Printf("Using pre-configured itinerary data for %s", req.LocationData.Location)
	itinerary := FallbackItinerary(req.LocationData.Location, req.Preferences)
	itinerary.Source = "fallback"
	return &itinerary
}

// SaveItinerary validates a client-supplied itinerary document field by
// field and persists it under a fresh id. Unknown fields inside activities
// and recommendations are preserved.
func (s *ItineraryService) SaveItinerary(ctx context.Context, rawItinerary json.RawMessage) (*response_models.SaveItineraryResult, error) {
	if err := validateRawItinerary(rawItinerary); err != nil {
		return nil, err
	}

	var itinerary response_models.ItineraryResponse
	if err := json.Unmarshal(rawItinerary, &itinerary); err != nil {
		return nil, utils.NewValidationError("Invalid itinerary data: malformed itinerary")
	}

	// A resave always creates a new record.
	itinerary.ID = 0

	row, err := itineraryToRow(&itinerary, nil)
	if err != nil {
		return nil, err
	}
	saved, err := s.store.SaveItinerary(ctx, row)
	if err != nil {
		return nil, err
	}

	log.Printf("Itinerary saved successfully with ID: %d", saved.ID)
	return &response_models.SaveItineraryResult{
		ID:        int(saved.ID),
		Message:   "Itinerary saved successfully",
		Itinerary: itinerary,
	}, nil
}

func (s *ItineraryService) GetItineraryByID(ctx context.Context, id int) (*response_models.StoredItinerary, error) {
	row, err := s.store.GetItineraryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, utils.ErrItineraryNotFound
	}
	return rowToStored(row)
}

func (s *ItineraryService) ListItineraries(ctx context.Context, userID *uint) ([]response_models.StoredItinerary, error) {
	rows, err := s.store.ListItineraries(ctx, userID)
	if err != nil {
		return nil, err
	}

	itineraries := make([]response_models.StoredItinerary, 0, len(rows))
	for i := range rows {
		stored, err := rowToStored(&rows[i])
		if err != nil {
			return nil, err
		}
		itineraries = append(itineraries, *stored)
	}
	return itineraries, nil
}

func validateGenerateRequest(req request_models.GenerateItineraryRequest) error {
	if len(req.Preferences.HangoutTypes) == 0 {
		return utils.NewValidationError("preferences.hangoutTypes must not be empty")
	}
	for _, hangoutType := range req.Preferences.HangoutTypes {
		if strings.TrimSpace(hangoutType) == "" {
			return utils.NewValidationError("preferences.hangoutTypes must not contain empty values")
		}
	}
	if strings.TrimSpace(req.Preferences.Duration) == "" {
		return utils.NewValidationError("preferences.duration is required")
	}
	if strings.TrimSpace(req.Preferences.Budget) == "" {
		return utils.NewValidationError("preferences.budget is required")
	}
	if strings.TrimSpace(req.LocationData.Location) == "" {
		return utils.NewValidationError("locationData.location is required")
	}
	if strings.TrimSpace(req.LocationData.Distance) == "" {
		return utils.NewValidationError("locationData.distance is required")
	}
	return nil
}

// validateRawItinerary enforces the shape checks clients depend on for
// precise error messages: title and location present and non-empty,
// activities and recommendations present as JSON arrays.
func validateRawItinerary(rawItinerary json.RawMessage) error {
	var fields map[string]json.RawMessage
	if len(rawItinerary) == 0 || json.Unmarshal(rawItinerary, &fields) != nil || fields == nil {
		return utils.NewValidationError("Invalid itinerary data: missing title or location")
	}

	if !hasNonEmptyString(fields, "title") || !hasNonEmptyString(fields, "location") {
		return utils.NewValidationError("Invalid itinerary data: missing title or location")
	}
	if !isJSONArray(fields["activities"]) {
		return utils.NewValidationError("Invalid itinerary data: activities must be an array")
	}
	if !isJSONArray(fields["recommendations"]) {
		return utils.NewValidationError("Invalid itinerary data: recommendations must be an array")
	}
	return nil
}

func hasNonEmptyString(fields map[string]json.RawMessage, key string) bool {
	raw, ok := fields[key]
	if !ok {
		return false
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return false
	}
	return value != ""
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return strings.HasPrefix(trimmed, "[")
}

func buildItineraryPrompt(req request_models.GenerateItineraryRequest) string {
	return fmt.Sprintf(itineraryPromptTemplate,
		req.LocationData.Location,
		strings.Join(req.Preferences.HangoutTypes, ", "),
		req.Preferences.Duration,
		req.Preferences.Budget,
		req.LocationData.Distance,
		strings.Join(req.LocationData.Transportation, ", "),
	)
}

// enrichImages fills missing image URLs. Activities get an image matching
// their type (empty types count as cafes); recommendations default to
// landmark imagery.
func enrichImages(itinerary *response_models.ItineraryResponse) {
	for i := range itinerary.Activities {
		if itinerary.Activities[i].Image != "" {
			continue
		}
		activityType := itinerary.Activities[i].Type
		if activityType == "" {
			activityType = "cafe"
		}
		itinerary.Activities[i].Image = utils.PickImageForCategory(utils.CategoryForActivityType(activityType))
	}
	for i := range itinerary.Recommendations {
		if itinerary.Recommendations[i].Image == "" {
			itinerary.Recommendations[i].Image = utils.PickImageForCategory("historical landmarks")
		}
	}
}

func itineraryToRow(itinerary *response_models.ItineraryResponse, userID *uint) (*db_models.Itinerary, error) {
	activities, err := json.Marshal(itinerary.Activities)
	if err != nil {
		return nil, err
	}
	if itinerary.Activities == nil {
		activities = []byte("[]")
	}
	recommendations, err := json.Marshal(itinerary.Recommendations)
	if err != nil {
		return nil, err
	}
	if itinerary.Recommendations == nil {
		recommendations = []byte("[]")
	}

	return &db_models.Itinerary{
		UserID:          userID,
		Title:           itinerary.Title,
		Description:     itinerary.Description,
		Location:        itinerary.Location,
		Activities:      datatypes.JSON(activities),
		Recommendations: datatypes.JSON(recommendations),
	}, nil
}

func rowToStored(row *db_models.Itinerary) (*response_models.StoredItinerary, error) {
	stored := &response_models.StoredItinerary{
		ID:          int(row.ID),
		Title:       row.Title,
		Description: row.Description,
		Location:    row.Location,
		CreatedAt:   row.CreatedAt,
	}

	if len(row.Activities) > 0 {
		if err := json.Unmarshal(row.Activities, &stored.Activities); err != nil {
			return nil, fmt.Errorf("%w: corrupt activities payload for itinerary %d", utils.ErrDatabaseError, row.ID)
		}
	}
	if len(row.Recommendations) > 0 {
		if err := json.Unmarshal(row.Recommendations, &stored.Recommendations); err != nil {
			return nil, fmt.Errorf("%w: corrupt recommendations payload for itinerary %d", utils.ErrDatabaseError, row.ID)
		}
	}
	if stored.Activities == nil {
		stored.Activities = []response_models.Activity{}
	}
	if stored.Recommendations == nil {
		stored.Recommendations = []response_models.Recommendation{}
	}
	return stored, nil
}
