// README: Prompt construction; the JSON schema shown to the model is the parsing contract.
package itinerary

import (
	"fmt"
	"strings"
)

// systemPrompt pins the model into JSON-only mode for every call.
const systemPrompt = "You are a travel itinerary assistant that returns only JSON."

// promptTemplate demands the exact result shape. The key names and nesting
// must stay in sync with the Result/Place/Hotel/Day structs: downstream
// parsing depends on the model echoing these keys.
const promptTemplate = `
Create a %s-day travel itinerary for %d people visiting %s on a %s budget, tailored for %s.
Use real, famous places and hotels that actually exist in %s.
Please include 4-5 different hotels with varying price ranges and amenities.

Return a valid JSON object with this structure (ONLY the JSON, no other text):

{
    "places": [
        {
            "name": "Place Name (use real place names in %s)",
            "time": "2-3 hours",
            "details": "Brief description",
            "location": "Google Maps URL (clickable) for the place, e.g. https://www.google.com/maps/place/...",
            "coordinates": {"lat": 0.0, "lng": 0.0},
            "pricing": "Entry fee info",
            "bestTime": "Best time to visit"
        }
    ],
    "hotels": [
        {
            "name": "Hotel Name (use real hotels in %s)",
            "address": "Real address in %s",
            "location": "Google Maps URL for the hotel (clickable)",
            "coordinates": {"lat": 0.0, "lng": 0.0},
            "price": "Price range",
            "rating": "4.5/5",
            "amenities": [],
            "description": "Brief description"
        }
    ],
    "transportation": ["Transportation option 1"],
    "costs": ["Accommodation: ₹X"],
    "itinerary": [{"day": 1, "activities": ["Morning: Activity"]}]
}

Return ONLY the JSON object as shown above. Do not include any explanatory text.
`

// buildPrompt renders the generation request for one chunk. days <= 0 means
// the day count is unknown (unparseable input dates); the exact-count
// directive is then omitted.
func buildPrompt(req Request, days int) string {
	travelWith := req.TravelWith
	if travelWith == "" {
		travelWith = req.Preferences
	}
	if travelWith == "" {
		travelWith = "travelers' preferences"
	}
	budget := req.Budget
	if budget == "" {
		budget = "unspecified"
	}
	dayPart := "multi"
	if days > 0 {
		dayPart = fmt.Sprintf("%d", days)
	}

	var b strings.Builder
	fmt.Fprintf(&b, promptTemplate,
		dayPart, req.Travelers, req.Destination, budget, travelWith,
		req.Destination, req.Destination, req.Destination, req.Destination)
	if days > 0 {
		fmt.Fprintf(&b, "\nIMPORTANT: The 'itinerary' array MUST contain EXACTLY %d objects. Number 'day' fields sequentially from 1 to %d.\n", days, days)
	}
	return b.String()
}

// retryPrompt amends a prompt after a day-count mismatch, restating the
// required count.
func retryPrompt(base string, got, want int) string {
	return base + fmt.Sprintf("\nYou returned %d days but required %d. Return EXACTLY %d days now, keep same style.\n", got, want, want)
}
