package utils

import (
	"math/rand"
	"strings"
)

// Curated Unsplash images per visual category. Activities and
// recommendations that arrive without an image get one of these.
var categoryImages = map[string][]string{
	"cafe atmosphere": {
		"https://images.unsplash.com/photo-1525610553991-2bede1a236e2?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=640",
		"https://images.unsplash.com/photo-1521017432531-fbd92d768814?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=640",
		"https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=640",
	},
	"historical landmarks": {
		"https://images.unsplash.com/photo-1585135497273-1a86b09fe70e?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=640",
		"https://images.unsplash.com/photo-1548013146-72479768bada?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=640",
		"https://images.unsplash.com/photo-1524492412937-b28074a5d7da?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=640",
	},
	"restaurant dining": {
		"https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=640",
		"https://images.unsplash.com/photo-1550966871-3ed3cdb5ed0c?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=640",
		"https://images.unsplash.com/photo-1424847651672-bf20a4b0982b?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=640",
	},
	"city exploration": {
		"https://images.unsplash.com/photo-1477959858617-67f85cf4f1df?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=640",
		"https://images.unsplash.com/photo-1480714378408-67cf0d13bc1b?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=640",
		"https://images.unsplash.com/photo-1519830105440-63603408ebe0?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=640",
	},
	"people enjoying outings": {
		"https://images.unsplash.com/photo-1516450360452-9312f5e86fc7?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=640",
		"https://images.unsplash.com/photo-1471560090527-d1af5e4e6eb6?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=640",
		"https://images.unsplash.com/photo-1536625737227-92a1fc042e7e?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=640",
	},
}

var activityTypeCategories = map[string]string{
	"exploring":  "city exploration",
	"eating":     "restaurant dining",
	"historical": "historical landmarks",
	"cafe":       "cafe atmosphere",
}

// PickImageForCategory returns a random image URL for the given category.
// Unknown categories fall back to the cafe atmosphere list, so a URL is
// always returned.
func PickImageForCategory(category string) string {
	images, ok := categoryImages[category]
	if !ok {
		images = categoryImages["cafe atmosphere"]
	}
	return images[rand.Intn(len(images))]
}

// CategoryForActivityType translates an activity type into an image
// category. Unrecognized types map to "people enjoying outings".
func CategoryForActivityType(activityType string) string {
	if category, ok := activityTypeCategories[strings.ToLower(activityType)]; ok {
		return category
	}
	return "people enjoying outings"
}

// ImageCategories lists the known category names.
func ImageCategories() []string {
	names := make([]string, 0, len(categoryImages))
	for name := range categoryImages {
		names = append(names, name)
	}
	return names
}

// IsKnownImage reports whether url belongs to the given category's list.
func IsKnownImage(category, url string) bool {
	images, ok := categoryImages[category]
	if !ok {
		images = categoryImages["cafe atmosphere"]
	}
	for _, candidate := range images {
		if candidate == url {
			return true
		}
	}
	return false
}
