package utils

import (
	"strings"
	"testing"
)

func TestPickImageForCategoryReturnsMemberURL(t *testing.T) {
	for _, category := range ImageCategories() {
		for i := 0; i < 10; i++ {
			url := PickImageForCategory(category)
			if !IsKnownImage(category, url) {
				t.Fatalf("category %q returned foreign url %q", category, url)
			}
			if !strings.HasPrefix(url, "https://images.unsplash.com/") {
				t.Fatalf("category %q returned non-unsplash url %q", category, url)
			}
		}
	}
}

func TestPickImageForCategoryUnknownFallsBackToCafe(t *testing.T) {
	url := PickImageForCategory("deep sea diving")
	if !IsKnownImage("cafe atmosphere", url) {
		t.Fatalf("unknown category returned %q, want cafe atmosphere image", url)
	}
}

func TestCategoryForActivityType(t *testing.T) {
	tests := []struct {
		activityType string
		want         string
	}{
		{"exploring", "city exploration"},
		{"eating", "restaurant dining"},
		{"historical", "historical landmarks"},
		{"cafe", "cafe atmosphere"},
		{"CAFE", "cafe atmosphere"},
		{"trekking", "people enjoying outings"},
		{"", "people enjoying outings"},
	}

	for _, tt := range tests {
		if got := CategoryForActivityType(tt.activityType); got != tt.want {
			t.Errorf("CategoryForActivityType(%q) = %q, want %q", tt.activityType, got, tt.want)
		}
	}
}
