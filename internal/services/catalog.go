package services

import (
	"fmt"
	"strings"

	"yatra/internal/models/request_models"
	"yatra/internal/models/response_models"
	"yatra/pkg/utils"
)

// The canned catalog backs every generation request the planner cannot
// serve. Lookup never fails: unknown locations get the default entry.
// Titles and descriptions are re-interpolated from the caller's
// preferences at lookup time; everything else in an entry is static.

const defaultCatalogKey = "delhi"

// Checked in priority order; first substring match wins.
var catalogKeys = []string{"delhi", "noida", "jaipur", "mussoorie"}

var catalogBuilders = map[string]func(request_models.PreferenceInput) response_models.ItineraryResponse{
	"delhi":     delhiItinerary,
	"noida":     noidaItinerary,
	"jaipur":    jaipurItinerary,
	"mussoorie": mussoorieItinerary,
}

// FallbackItinerary returns the catalog entry best matching locationText,
// with title and description reflecting the caller's preferences.
func FallbackItinerary(locationText string, prefs request_models.PreferenceInput) response_models.ItineraryResponse {
	key := defaultCatalogKey
	lower := strings.ToLower(locationText)
	for _, candidate := range catalogKeys {
		if strings.Contains(lower, candidate) {
			key = candidate
			break
		}
	}
	return catalogBuilders[key](prefs)
}

// CatalogKeys lists the known location keys in priority order.
func CatalogKeys() []string {
	keys := make([]string, len(catalogKeys))
	copy(keys, catalogKeys)
	return keys
}

func joinedHangoutTypes(prefs request_models.PreferenceInput) string {
	return strings.ToLower(strings.Join(prefs.HangoutTypes, ", "))
}

func delhiItinerary(prefs request_models.PreferenceInput) response_models.ItineraryResponse {
	return response_models.ItineraryResponse{
		Title:       fmt.Sprintf("%s Adventure in Delhi", prefs.Duration),
		Description: fmt.Sprintf("Enjoy a %s itinerary exploring the best of Delhi with a focus on %s.", strings.ToLower(prefs.Budget), joinedHangoutTypes(prefs)),
		Location:    "Delhi",
		Activities: []response_models.Activity{
			{
				ID:          "act1",
				Time:        "9:00 AM",
				Title:       "Morning Chai at Connaught Place",
				Description: "Start your day with a traditional chai and breakfast at one of the iconic cafes in this colonial-era shopping district.",
				Location:    "Connaught Place, New Delhi",
				Image:       utils.PickImageForCategory("cafe atmosphere"),
				Price:       "₹",
				Rating:      "4.6 ★",
				TimeOfDay:   "morning",
				Type:        "cafe",
			},
			{
				ID:          "act2",
				Time:        "11:00 AM",
				Title:       "Visit Humayun's Tomb",
				Description: "Explore this UNESCO World Heritage site with its stunning Mughal architecture and beautiful gardens.",
				Location:    "Mathura Road, Nizamuddin, New Delhi",
				Image:       utils.PickImageForCategory("historical landmarks"),
				Price:       "₹₹",
				Rating:      "4.8 ★",
				TimeOfDay:   "morning",
				Type:        "historical",
			},
			{
				ID:          "act3",
				Time:        "1:30 PM",
				Title:       "Lunch at Karim's",
				Description: "Enjoy authentic Mughlai cuisine at this legendary restaurant known for its kebabs and curries.",
				Location:    "16, Gali Kababian, Jama Masjid, Old Delhi",
				Image:       utils.PickImageForCategory("restaurant dining"),
				Price:       "₹₹",
				Rating:      "4.7 ★",
				TimeOfDay:   "afternoon",
				Type:        "eating",
			},
			{
				ID:          "act4",
				Time:        "3:30 PM",
				Title:       "Shop at Dilli Haat",
				Description: "Browse handcrafted items, textiles, and souvenirs from across India at this open-air market.",
				Location:    "INA Market, New Delhi",
				Image:       utils.PickImageForCategory("city exploration"),
				Price:       "₹",
				Rating:      "4.5 ★",
				TimeOfDay:   "afternoon",
				Type:        "exploring",
			},
			{
				ID:          "act5",
				Time:        "6:30 PM",
				Title:       "Sunset at India Gate",
				Description: "Watch the sunset and see the monument beautifully lit up as evening falls.",
				Location:    "Rajpath, New Delhi",
				Image:       utils.PickImageForCategory("historical landmarks"),
				Price:       "Free",
				Rating:      "4.9 ★",
				TimeOfDay:   "evening",
				Type:        "historical",
			},
			{
				ID:          "act6",
				Time:        "8:00 PM",
				Title:       "Dinner at Bukhara",
				Description: "Experience one of Delhi's finest dining venues known for its Northwest Frontier cuisine and tandoori dishes.",
				Location:    "ITC Maurya, Diplomatic Enclave, Sardar Patel Marg",
				Image:       utils.PickImageForCategory("restaurant dining"),
				Price:       "₹₹₹",
				Rating:      "4.8 ★",
				TimeOfDay:   "evening",
				Type:        "eating",
			},
		},
		Recommendations: []response_models.Recommendation{
			{
				ID:          "rec1",
				Title:       "Historical Delhi Tour",
				Description: "A full-day tour covering Red Fort, Qutub Minar, and other historical monuments in Delhi.",
				Image:       utils.PickImageForCategory("historical landmarks"),
				Rating:      "4.7 ★",
				Duration:    "Full day",
			},
			{
				ID:          "rec2",
				Title:       "Food Walk in Old Delhi",
				Description: "Sample the best street food Delhi has to offer in the narrow lanes of Chandni Chowk.",
				Image:       utils.PickImageForCategory("restaurant dining"),
				Rating:      "4.9 ★",
				Duration:    "3-4 hours",
			},
			{
				ID:          "rec3",
				Title:       "Day Trip to Agra",
				Description: "Visit the magnificent Taj Mahal and Agra Fort on a day trip from Delhi.",
				Image:       utils.PickImageForCategory("historical landmarks"),
				Rating:      "4.8 ★",
				Duration:    "Full day",
			},
		},
	}
}

func noidaItinerary(prefs request_models.PreferenceInput) response_models.ItineraryResponse {
	return response_models.ItineraryResponse{
		Title:       fmt.Sprintf("%s Urban Experience in Noida", prefs.Duration),
		Description: fmt.Sprintf("Discover the perfect blend of modernity and culture in Noida with this %s itinerary focused on %s.", strings.ToLower(prefs.Budget), joinedHangoutTypes(prefs)),
		Location:    "Noida",
		Activities: []response_models.Activity{
			{
				ID:          "act1",
				Time:        "9:30 AM",
				Title:       "Breakfast at Gardens Galleria Mall",
				Description: "Start your day with breakfast at one of the many cafes in this premium shopping destination.",
				Location:    "Gardens Galleria Mall, Sector 38, Noida",
				Image:       utils.PickImageForCategory("cafe atmosphere"),
				Price:       "₹₹",
				Rating:      "4.3 ★",
				TimeOfDay:   "morning",
				Type:        "cafe",
			},
			{
				ID:          "act2",
				Time:        "11:30 AM",
				Title:       "Visit Okhla Bird Sanctuary",
				Description: "Explore this urban oasis which is home to over 300 bird species and provides a respite from the city's hustle.",
				Location:    "Okhla Bird Sanctuary, Sector 95, Noida",
				Image:       utils.PickImageForCategory("city exploration"),
				Price:       "₹",
				Rating:      "4.4 ★",
				TimeOfDay:   "morning",
				Type:        "exploring",
			},
			{
				ID:          "act3",
				Time:        "2:00 PM",
				Title:       "Lunch at Sector 18 Market",
				Description: "Enjoy a variety of cuisines at one of the many renowned restaurants in Noida's premier shopping district.",
				Location:    "Sector 18 Market, Noida",
				Image:       utils.PickImageForCategory("restaurant dining"),
				Price:       "₹₹",
				Rating:      "4.5 ★",
				TimeOfDay:   "afternoon",
				Type:        "eating",
			},
			{
				ID:          "act4",
				Time:        "4:00 PM",
				Title:       "Shopping at DLF Mall of India",
				Description: "Browse through one of India's largest shopping malls featuring international and domestic brands.",
				Location:    "DLF Mall of India, Sector 18, Noida",
				Image:       utils.PickImageForCategory("city exploration"),
				Price:       "₹₹₹",
				Rating:      "4.7 ★",
				TimeOfDay:   "afternoon",
				Type:        "exploring",
			},
			{
				ID:          "act5",
				Time:        "7:00 PM",
				Title:       "Evening Walk at Noida Golf Course",
				Description: "Enjoy the sunset views at the beautifully maintained Noida Golf Course.",
				Location:    "Noida Golf Course, Sector 38, Noida",
				Image:       utils.PickImageForCategory("city exploration"),
				Price:       "Free",
				Rating:      "4.6 ★",
				TimeOfDay:   "evening",
				Type:        "exploring",
			},
			{
				ID:          "act6",
				Time:        "8:30 PM",
				Title:       "Dinner at The Great India Place",
				Description: "Conclude your day with dinner at one of the popular restaurants in this vibrant mall.",
				Location:    "The Great India Place, Sector 38A, Noida",
				Image:       utils.PickImageForCategory("restaurant dining"),
				Price:       "₹₹",
				Rating:      "4.4 ★",
				TimeOfDay:   "evening",
				Type:        "eating",
			},
		},
		Recommendations: []response_models.Recommendation{
			{
				ID:          "rec1",
				Title:       "Gaming Day at Worlds of Wonder",
				Description: "Enjoy a fun-filled day at this amusement park and water park complex.",
				Image:       utils.PickImageForCategory("people enjoying outings"),
				Rating:      "4.5 ★",
				Duration:    "Full day",
			},
			{
				ID:          "rec2",
				Title:       "Noida Art & Cultural Tour",
				Description: "Discover the growing art scene in Noida with visits to galleries and cultural centers.",
				Image:       utils.PickImageForCategory("historical landmarks"),
				Rating:      "4.3 ★",
				Duration:    "Half day",
			},
			{
				ID:          "rec3",
				Title:       "Wellness Day at Sector 104",
				Description: "Indulge in spa treatments and wellness activities in Noida's luxury spas.",
				Image:       utils.PickImageForCategory("cafe atmosphere"),
				Rating:      "4.7 ★",
				Duration:    "Half day",
			},
		},
	}
}

func jaipurItinerary(prefs request_models.PreferenceInput) response_models.ItineraryResponse {
	return response_models.ItineraryResponse{
		Title:       fmt.Sprintf("%s Royal Experience in Jaipur", prefs.Duration),
		Description: fmt.Sprintf("Experience the Pink City's royal heritage and vibrant culture with this %s itinerary focused on %s.", strings.ToLower(prefs.Budget), joinedHangoutTypes(prefs)),
		Location:    "Jaipur",
		Activities: []response_models.Activity{
			{
				ID:          "act1",
				Time:        "8:30 AM",
				Title:       "Breakfast at Lakshmi Misthan Bhandar",
				Description: "Start your day with authentic Rajasthani breakfast at this iconic sweet shop and restaurant.",
				Location:    "Johari Bazaar Road, Jaipur",
				Image:       utils.PickImageForCategory("cafe atmosphere"),
				Price:       "₹",
				Rating:      "4.6 ★",
				TimeOfDay:   "morning",
				Type:        "cafe",
			},
			{
				ID:          "act2",
				Time:        "10:00 AM",
				Title:       "Explore Amber Fort",
				Description: "Visit this magnificent fort complex with its stunning architecture, intricate carvings, and breathtaking views.",
				Location:    "Amer, Jaipur",
				Image:       utils.PickImageForCategory("historical landmarks"),
				Price:       "₹₹",
				Rating:      "4.9 ★",
				TimeOfDay:   "morning",
				Type:        "historical",
			},
			{
				ID:          "act3",
				Time:        "1:30 PM",
				Title:       "Lunch at Chokhi Dhani",
				Description: "Experience authentic Rajasthani cuisine in this village-themed restaurant.",
				Location:    "Tonk Road, Jaipur",
				Image:       utils.PickImageForCategory("restaurant dining"),
				Price:       "₹₹",
				Rating:      "4.7 ★",
				TimeOfDay:   "afternoon",
				Type:        "eating",
			},
			{
				ID:          "act4",
				Time:        "3:30 PM",
				Title:       "Shopping at Johari Bazaar",
				Description: "Browse through colorful textiles, jewelry, and handicrafts in this traditional market.",
				Location:    "Johari Bazaar, Jaipur",
				Image:       utils.PickImageForCategory("city exploration"),
				Price:       "₹₹",
				Rating:      "4.5 ★",
				TimeOfDay:   "afternoon",
				Type:        "exploring",
			},
			{
				ID:          "act5",
				Time:        "6:00 PM",
				Title:       "Sunset at Nahargarh Fort",
				Description: "Enjoy panoramic views of the Pink City as the sun sets behind the Aravalli hills.",
				Location:    "Nahargarh Fort, Jaipur",
				Image:       utils.PickImageForCategory("historical landmarks"),
				Price:       "₹",
				Rating:      "4.8 ★",
				TimeOfDay:   "evening",
				Type:        "historical",
			},
			{
				ID:          "act6",
				Time:        "8:30 PM",
				Title:       "Dinner at 1135 AD",
				Description: "Dine like royalty in this opulent restaurant located within Amber Fort.",
				Location:    "Amber Fort, Jaipur",
				Image:       utils.PickImageForCategory("restaurant dining"),
				Price:       "₹₹₹",
				Rating:      "4.8 ★",
				TimeOfDay:   "evening",
				Type:        "eating",
			},
		},
		Recommendations: []response_models.Recommendation{
			{
				ID:          "rec1",
				Title:       "Elephant Safari at Amer",
				Description: "Experience a royal elephant ride at the iconic Amber Fort, just like the Maharajas once did.",
				Image:       utils.PickImageForCategory("historical landmarks"),
				Rating:      "4.6 ★",
				Duration:    "Half day",
			},
			{
				ID:          "rec2",
				Title:       "Hot Air Balloon Ride",
				Description: "Soar above the Pink City for a breathtaking aerial view of palaces and forts.",
				Image:       utils.PickImageForCategory("city exploration"),
				Rating:      "4.9 ★",
				Duration:    "3 hours",
			},
			{
				ID:          "rec3",
				Title:       "Block Printing Workshop",
				Description: "Learn the traditional art of Rajasthani block printing from local artisans.",
				Image:       utils.PickImageForCategory("people enjoying outings"),
				Rating:      "4.7 ★",
				Duration:    "Half day",
			},
		},
	}
}

func mussoorieItinerary(prefs request_models.PreferenceInput) response_models.ItineraryResponse {
	return response_models.ItineraryResponse{
		Title:       fmt.Sprintf("%s Mountain Retreat in Mussoorie", prefs.Duration),
		Description: fmt.Sprintf("Escape to the Queen of Hills with this refreshing %s itinerary focused on %s.", strings.ToLower(prefs.Budget), joinedHangoutTypes(prefs)),
		Location:    "Mussoorie",
		Activities: []response_models.Activity{
			{
				ID:          "act1",
				Time:        "8:00 AM",
				Title:       "Breakfast at Landour Bakehouse",
				Description: "Start your day with freshly baked treats and coffee at this charming bakery in Landour.",
				Location:    "Landour, Mussoorie",
				Image:       utils.PickImageForCategory("cafe atmosphere"),
				Price:       "₹₹",
				Rating:      "4.7 ★",
				TimeOfDay:   "morning",
				Type:        "cafe",
			},
			{
				ID:          "act2",
				Time:        "10:00 AM",
				Title:       "Walk on Camel's Back Road",
				Description: "Enjoy a scenic stroll on this picturesque road with beautiful mountain views.",
				Location:    "Camel's Back Road, Mussoorie",
				Image:       utils.PickImageForCategory("city exploration"),
				Price:       "Free",
				Rating:      "4.5 ★",
				TimeOfDay:   "morning",
				Type:        "exploring",
			},
			{
				ID:          "act3",
				Time:        "1:00 PM",
				Title:       "Lunch at Café Ivy",
				Description: "Savor delicious food with panoramic views of the Doon Valley.",
				Location:    "Mall Road, Mussoorie",
				Image:       utils.PickImageForCategory("restaurant dining"),
				Price:       "₹₹",
				Rating:      "4.6 ★",
				TimeOfDay:   "afternoon",
				Type:        "eating",
			},
			{
				ID:          "act4",
				Time:        "3:00 PM",
				Title:       "Visit Company Garden",
				Description: "Explore this beautiful garden with a mini lake, fountain, and various flower species.",
				Location:    "Company Garden, Mussoorie",
				Image:       utils.PickImageForCategory("city exploration"),
				Price:       "₹",
				Rating:      "4.4 ★",
				TimeOfDay:   "afternoon",
				Type:        "exploring",
			},
			{
				ID:          "act5",
				Time:        "5:30 PM",
				Title:       "Sunset at Gun Hill",
				Description: "Take the cable car to Gun Hill for spectacular sunset views over the Himalayas.",
				Location:    "Gun Hill, Mussoorie",
				Image:       utils.PickImageForCategory("city exploration"),
				Price:       "₹₹",
				Rating:      "4.7 ★",
				TimeOfDay:   "evening",
				Type:        "exploring",
			},
			{
				ID:          "act6",
				Time:        "8:00 PM",
				Title:       "Dinner at Little Llama Café",
				Description: "End your day with delicious food at this cozy café known for its warm ambiance.",
				Location:    "Mall Road, Mussoorie",
				Image:       utils.PickImageForCategory("restaurant dining"),
				Price:       "₹₹",
				Rating:      "4.5 ★",
				TimeOfDay:   "evening",
				Type:        "eating",
			},
		},
		Recommendations: []response_models.Recommendation{
			{
				ID:          "rec1",
				Title:       "Trek to Lal Tibba",
				Description: "Hike to the highest point in Mussoorie for unparalleled views of the Himalayan ranges.",
				Image:       utils.PickImageForCategory("city exploration"),
				Rating:      "4.8 ★",
				Duration:    "Half day",
			},
			{
				ID:          "rec2",
				Title:       "Literary Tour of Landour",
				Description: "Visit the homes and haunts of famous authors who made Mussoorie their home.",
				Image:       utils.PickImageForCategory("historical landmarks"),
				Rating:      "4.6 ★",
				Duration:    "3-4 hours",
			},
			{
				ID:          "rec3",
				Title:       "Day Trip to Kempty Falls",
				Description: "Enjoy a refreshing day at this beautiful waterfall just outside Mussoorie.",
				Image:       utils.PickImageForCategory("city exploration"),
				Rating:      "4.5 ★",
				Duration:    "Half day",
			},
		},
	}
}
