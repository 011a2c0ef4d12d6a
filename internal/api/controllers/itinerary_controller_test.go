package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"yatra/internal/repositories"
	"yatra/internal/services"
)

type stubPlanner struct {
	err error
}

func (s *stubPlanner) GenerateItineraryJSON(ctx context.Context, prompt string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return `{"title": "Planner Trip", "description": "d", "location": "Delhi", "activities": [], "recommendations": []}`, nil
}

func newTestRouter(planner *stubPlanner) *gin.Engine {
	gin.SetMode(gin.TestMode)

	store := repositories.NewItineraryMemoryRepository()
	itineraryService := services.NewItineraryService(planner, store)
	controller := NewItineraryController(itineraryService)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/generate-itinerary", controller.GenerateItineraryHandler)
	api.POST("/save-itinerary", controller.SaveItineraryHandler)
	api.GET("/itinerary/:id", controller.GetItineraryHandler)
	api.GET("/itineraries", controller.ListItinerariesHandler)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode error body %q: %v", w.Body.String(), err)
	}
	return payload.Message
}

const generateBody = `{
	"preferences": {"hangoutTypes": ["Cafes"], "duration": "Full day", "budget": "Moderate"},
	"locationData": {"location": "Delhi", "distance": "10 km", "transportation": ["Metro"]}
}`

func TestGenerateItineraryEndpoint(t *testing.T) {
	r := newTestRouter(&stubPlanner{})

	w := doJSON(t, r, http.MethodPost, "/api/generate-itinerary", generateBody)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var itinerary struct {
		ID    int    `json:"id"`
		Title string `json:"title"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &itinerary); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if itinerary.ID != 1 {
		t.Errorf("id = %d, want 1", itinerary.ID)
	}
	if itinerary.Title != "Planner Trip" {
		t.Errorf("title = %q", itinerary.Title)
	}
}

func TestGenerateItineraryEndpointFallsBack(t *testing.T) {
	r := newTestRouter(&stubPlanner{err: errors.New("quota exceeded")})

	w := doJSON(t, r, http.MethodPost, "/api/generate-itinerary", generateBody)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var itinerary struct {
		Location   string            `json:"location"`
		Activities []json.RawMessage `json:"activities"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &itinerary); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if itinerary.Location != "Delhi" {
		t.Errorf("fallback location = %q", itinerary.Location)
	}
	if len(itinerary.Activities) != 6 {
		t.Errorf("fallback activities = %d, want 6", len(itinerary.Activities))
	}
}

func TestGenerateItineraryEndpointRejectsInvalidInput(t *testing.T) {
	r := newTestRouter(&stubPlanner{})

	w := doJSON(t, r, http.MethodPost, "/api/generate-itinerary", `{"preferences": {"hangoutTypes": []}}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/generate-itinerary", `not json`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for malformed body", w.Code)
	}
	if got := decodeMessage(t, w); got != "Invalid request format" {
		t.Errorf("message = %q", got)
	}
}

func TestSaveItineraryEndpoint(t *testing.T) {
	r := newTestRouter(&stubPlanner{})

	w := doJSON(t, r, http.MethodPost, "/api/save-itinerary", `{
		"itinerary": {"title": "Trip", "location": "Delhi", "activities": [], "recommendations": []}
	}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var result struct {
		ID      int    `json:"id"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.ID != 1 || result.Message != "Itinerary saved successfully" {
		t.Errorf("result = %+v", result)
	}
}

func TestSaveItineraryEndpointValidationMessages(t *testing.T) {
	r := newTestRouter(&stubPlanner{})

	tests := []struct {
		body    string
		message string
	}{
		{`{"itinerary": {"location": "Delhi"}}`, "Invalid itinerary data: missing title or location"},
		{`{"itinerary": {"title": "Trip", "location": "Delhi", "activities": 5, "recommendations": []}}`, "Invalid itinerary data: activities must be an array"},
		{`{"itinerary": {"title": "Trip", "location": "Delhi", "activities": [], "recommendations": "x"}}`, "Invalid itinerary data: recommendations must be an array"},
	}

	for _, tt := range tests {
		w := doJSON(t, r, http.MethodPost, "/api/save-itinerary", tt.body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", tt.body, w.Code)
			continue
		}
		if got := decodeMessage(t, w); got != tt.message {
			t.Errorf("body %s: message = %q, want %q", tt.body, got, tt.message)
		}
	}
}

func TestGetItineraryEndpointErrors(t *testing.T) {
	r := newTestRouter(&stubPlanner{})

	w := doJSON(t, r, http.MethodGet, "/api/itinerary/abc", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("non-numeric id: status = %d, want 400", w.Code)
	}
	if got := decodeMessage(t, w); got != "Invalid itinerary ID" {
		t.Errorf("message = %q", got)
	}

	w = doJSON(t, r, http.MethodGet, "/api/itinerary/999999", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing id: status = %d, want 404", w.Code)
	}
	if got := decodeMessage(t, w); got != "Itinerary not found" {
		t.Errorf("message = %q", got)
	}
}

func TestListItinerariesEndpoint(t *testing.T) {
	r := newTestRouter(&stubPlanner{})

	doJSON(t, r, http.MethodPost, "/api/generate-itinerary", generateBody)
	doJSON(t, r, http.MethodPost, "/api/generate-itinerary", generateBody)

	w := doJSON(t, r, http.MethodGet, "/api/itineraries", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var itineraries []json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &itineraries); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(itineraries) != 2 {
		t.Errorf("got %d itineraries, want 2", len(itineraries))
	}

	w = doJSON(t, r, http.MethodGet, "/api/itineraries?userId=abc", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad userId: status = %d, want 400", w.Code)
	}
}
