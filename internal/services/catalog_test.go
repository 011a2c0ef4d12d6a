package services

import (
	"strings"
	"testing"

	"yatra/internal/models/request_models"
)

func catalogPrefs() request_models.PreferenceInput {
	return request_models.PreferenceInput{
		HangoutTypes: []string{"Cafes", "Historical Sites"},
		Duration:     "Full day",
		Budget:       "Moderate",
	}
}

func TestFallbackItineraryShape(t *testing.T) {
	locations := append(CatalogKeys(), "some unknown town")

	for _, location := range locations {
		itinerary := FallbackItinerary(location, catalogPrefs())

		if len(itinerary.Activities) != 6 {
			t.Fatalf("location %q: got %d activities, want 6", location, len(itinerary.Activities))
		}
		if len(itinerary.Recommendations) != 3 {
			t.Fatalf("location %q: got %d recommendations, want 3", location, len(itinerary.Recommendations))
		}

		counts := map[string]int{}
		for _, activity := range itinerary.Activities {
			counts[activity.TimeOfDay]++
			if activity.Image == "" {
				t.Errorf("location %q: activity %q has no image", location, activity.Title)
			}
		}
		for _, slot := range []string{"morning", "afternoon", "evening"} {
			if counts[slot] != 2 {
				t.Errorf("location %q: got %d %s activities, want 2", location, counts[slot], slot)
			}
		}
	}
}

func TestFallbackItineraryMatchesLocationSubstring(t *testing.T) {
	tests := []struct {
		location string
		want     string
	}{
		{"Delhi", "Delhi"},
		{"South Delhi, near Saket", "Delhi"},
		{"NOIDA sector 62", "Noida"},
		{"old jaipur city", "Jaipur"},
		{"Mussoorie Mall Road", "Mussoorie"},
		{"Bangalore", "Delhi"},
		{"", "Delhi"},
	}

	for _, tt := range tests {
		itinerary := FallbackItinerary(tt.location, catalogPrefs())
		if itinerary.Location != tt.want {
			t.Errorf("FallbackItinerary(%q).Location = %q, want %q", tt.location, itinerary.Location, tt.want)
		}
	}
}

func TestFallbackItineraryInterpolatesPreferences(t *testing.T) {
	prefs := request_models.PreferenceInput{
		HangoutTypes: []string{"Cafes", "Shopping"},
		Duration:     "Half day",
		Budget:       "Budget-Friendly",
	}

	itinerary := FallbackItinerary("Delhi", prefs)

	if !strings.HasPrefix(itinerary.Title, "Half day") {
		t.Errorf("title %q does not start with duration", itinerary.Title)
	}
	if !strings.Contains(itinerary.Description, "budget-friendly") {
		t.Errorf("description %q does not contain lowercased budget", itinerary.Description)
	}
	if !strings.Contains(itinerary.Description, "cafes, shopping") {
		t.Errorf("description %q does not contain lowercased hangout types", itinerary.Description)
	}
}
