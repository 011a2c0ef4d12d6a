package request_models

import "encoding/json"

type PreferenceInput struct {
	HangoutTypes []string `json:"hangoutTypes"`
	Duration     string   `json:"duration"`
	Budget       string   `json:"budget"`
}

type LocationInput struct {
	Location       string   `json:"location"`
	Distance       string   `json:"distance"`
	Transportation []string `json:"transportation"`
}

type GenerateItineraryRequest struct {
	Preferences  PreferenceInput `json:"preferences"`
	LocationData LocationInput   `json:"locationData"`
}

// SaveItineraryRequest keeps the itinerary raw: field-level validation and
// id stripping happen in the service, which also preserves unknown fields.
type SaveItineraryRequest struct {
	Itinerary json.RawMessage `json:"itinerary"`
}
