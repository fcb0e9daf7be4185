package suggest

import "travel-planner/domain"

// fallbackTable is served whenever the suggestion service is unreachable,
// returns a bad status, or sends a malformed body. The user never sees a
// suggestion error.
var fallbackTable = map[domain.ActivityType][]Suggestion{
	domain.TypeCultural: {
		{Name: "Art Gallery Visit", Description: "Explore local contemporary art", Duration: 2, Cost: 15},
		{Name: "Historical Walking Tour", Description: "Discover the city's rich history", Duration: 3, Cost: 25},
		{Name: "Museum Exhibition", Description: "View special cultural exhibitions", Duration: 2.5, Cost: 20},
	},
	domain.TypeFood: {
		{Name: "Local Food Market Tour", Description: "Explore vibrant local food markets", Duration: 2, Cost: 35},
		{Name: "Cooking Class", Description: "Learn to prepare authentic local dishes", Duration: 3, Cost: 60},
		{Name: "Wine Tasting", Description: "Sample local wines and learn traditions", Duration: 1.5, Cost: 40},
	},
	domain.TypeTour: {
		{Name: "City Bus Tour", Description: "Comprehensive city overview", Duration: 3, Cost: 30},
		{Name: "Boat Cruise", Description: "Scenic waterway tour", Duration: 2, Cost: 25},
		{Name: "Walking Tour", Description: "Guided neighborhood exploration", Duration: 2.5, Cost: 20},
	},
	domain.TypeRecreational: {
		{Name: "Park Picnic", Description: "Relax in beautiful green spaces", Duration: 2, Cost: 15},
		{Name: "Shopping District", Description: "Browse local shops and boutiques", Duration: 3, Cost: 50},
		{Name: "Spa Experience", Description: "Pamper yourself with treatments", Duration: 2, Cost: 80},
	},
	domain.TypeAdventure: {
		{Name: "Hiking Trail", Description: "Scenic outdoor adventure", Duration: 4, Cost: 25},
		{Name: "Water Sports", Description: "Exciting aquatic activities", Duration: 3, Cost: 60},
		{Name: "Rock Climbing", Description: "Challenge yourself on climbing walls", Duration: 2.5, Cost: 45},
	},
}

// FallbackSuggestions returns the built-in candidates for an activity type,
// defaulting to the Cultural set for unrecognized types.
func FallbackSuggestions(t domain.ActivityType) []Suggestion {
	if s, ok := fallbackTable[t]; ok {
		return append([]Suggestion(nil), s...)
	}
	return append([]Suggestion(nil), fallbackTable[domain.TypeCultural]...)
}
