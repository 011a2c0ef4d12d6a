package response_models

import (
	"encoding/json"
	"time"
)

// Activity is one scheduled stop in an itinerary. The planner is allowed to
// invent extra fields; those are kept in Extra and round-trip through
// marshaling untouched.
type Activity struct {
	ID          string `json:"id"`
	Time        string `json:"time"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Image       string `json:"image"`
	Price       string `json:"price"`
	Rating      string `json:"rating"`
	Type        string `json:"type"`
	TimeOfDay   string `json:"timeOfDay"`

	Extra map[string]json.RawMessage `json:"-"`
}

var activityKeys = []string{
	"id", "time", "title", "description", "location",
	"image", "price", "rating", "type", "timeOfDay",
}

func (a *Activity) UnmarshalJSON(data []byte) error {
	type activityAlias Activity
	var known activityAlias
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}
	extra, err := unknownFields(data, activityKeys)
	if err != nil {
		return err
	}
	*a = Activity(known)
	a.Extra = extra
	return nil
}

func (a Activity) MarshalJSON() ([]byte, error) {
	type activityAlias Activity
	return marshalWithExtra(activityAlias(a), a.Extra)
}

// Recommendation is a suggested alternative experience shown alongside an
// itinerary. Same unknown-field handling as Activity.
type Recommendation struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Rating      string `json:"rating"`
	Duration    string `json:"duration"`

	Extra map[string]json.RawMessage `json:"-"`
}

var recommendationKeys = []string{
	"id", "title", "description", "image", "rating", "duration",
}

func (r *Recommendation) UnmarshalJSON(data []byte) error {
	type recommendationAlias Recommendation
	var known recommendationAlias
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}
	extra, err := unknownFields(data, recommendationKeys)
	if err != nil {
		return err
	}
	*r = Recommendation(known)
	r.Extra = extra
	return nil
}

func (r Recommendation) MarshalJSON() ([]byte, error) {
	type recommendationAlias Recommendation
	return marshalWithExtra(recommendationAlias(r), r.Extra)
}

// unknownFields collects the JSON keys of data not covered by knownKeys.
func unknownFields(data []byte, knownKeys []string) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	for _, key := range knownKeys {
		delete(fields, key)
	}
	if len(fields) == 0 {
		return nil, nil
	}
	return fields, nil
}

// marshalWithExtra merges the preserved unknown fields back into the
// marshaled known fields. Known fields win on key collisions.
func marshalWithExtra(known interface{}, extra map[string]json.RawMessage) ([]byte, error) {
	base, err := json.Marshal(known)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return base, nil
	}
	var merged map[string]json.RawMessage
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	for key, value := range extra {
		if _, ok := merged[key]; !ok {
			merged[key] = value
		}
	}
	return json.Marshal(merged)
}

// ItineraryResponse is the wire shape of a generated or re-saved
// itinerary. ID is present only when persistence succeeded. Source records
// which path produced the itinerary (planner vs fallback) and is
// deliberately log-only, never serialized. Top-level fields the planner
// invents get the same Extra treatment as Activity and Recommendation.
type ItineraryResponse struct {
	ID              int              `json:"id,omitempty"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Location        string           `json:"location"`
	Activities      []Activity       `json:"activities"`
	Recommendations []Recommendation `json:"recommendations"`

	Source string `json:"-"`

	Extra map[string]json.RawMessage `json:"-"`
}

var itineraryKeys = []string{
	"id", "title", "description", "location", "activities", "recommendations",
}

func (r *ItineraryResponse) UnmarshalJSON(data []byte) error {
	type itineraryAlias ItineraryResponse
	var known itineraryAlias
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}
	extra, err := unknownFields(data, itineraryKeys)
	if err != nil {
		return err
	}
	*r = ItineraryResponse(known)
	r.Extra = extra
	return nil
}

func (r ItineraryResponse) MarshalJSON() ([]byte, error) {
	type itineraryAlias ItineraryResponse
	return marshalWithExtra(itineraryAlias(r), r.Extra)
}

type SaveItineraryResult struct {
	ID        int               `json:"id"`
	Message   string            `json:"message"`
	Itinerary ItineraryResponse `json:"itinerary"`
}

// StoredItinerary is the normalized shape of a persisted record.
type StoredItinerary struct {
	ID              int              `json:"id"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Location        string           `json:"location"`
	Activities      []Activity       `json:"activities"`
	Recommendations []Recommendation `json:"recommendations"`
	CreatedAt       time.Time        `json:"createdAt"`
}

type AccountResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}
