// README: Deterministic fallback and error results; never calls out anywhere.
package itinerary

// fillerPool feeds the round-robin filler itinerary used when the model
// output is unusable.
var fillerPool = [...]string{
	"Relax at the hotel and enjoy amenities",
	"Explore a nearby local market",
	"Try popular local snacks at a street food stall",
	"Take a short guided walking tour",
	"Visit a local museum or cultural center",
	"Enjoy a sunset viewpoint",
	"Spend time at a popular shopping area",
}

// fillerActivities returns n activities drawn round-robin from fillerPool.
func fillerActivities(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fillerPool[i%len(fillerPool)]
	}
	return out
}

// fillerDays builds days numbered 1..n with two filler activities each.
// n < 1 is coerced to a single day.
func fillerDays(n int) []Day {
	if n < 1 {
		n = 1
	}
	days := make([]Day, n)
	for i := range days {
		days[i] = Day{Day: i + 1, Activities: fillerActivities(2)}
	}
	return days
}

// fallbackResult is returned when the model output stayed unparseable after
// the retry. It is fixed and non-randomized so callers always get the same
// structurally valid sample.
func fallbackResult(days int) Result {
	return Result{
		Places: []Place{{
			Name:        "Burj Khalifa",
			Details:     "Iconic Dubai landmark",
			Time:        "Morning",
			Pricing:     "₹2800",
			BestTime:    "Evening",
			Location:    "https://www.google.com/maps/place/Burj+Khalifa",
			Coordinates: Coordinates{Lat: 25.1972, Lng: 55.2744},
		}},
		Hotels: []Hotel{{
			Name:        "Atlantis The Palm",
			Address:     "Crescent Rd, The Palm Jumeirah, Dubai",
			Location:    "https://www.google.com/maps/place/Atlantis+The+Palm+Dubai",
			Coordinates: Coordinates{Lat: 25.1304, Lng: 55.1171},
			Price:       "₹29000/night",
			Rating:      "4.8/5",
			Amenities:   []string{"Wi-Fi", "Pool", "Beach"},
			Description: "Luxury beachfront hotel with ocean views.",
		}},
		Transportation: []string{"Metro", "Taxi"},
		Costs:          []string{"Accommodation: ₹58000", "Food: ₹20000"},
		Itinerary:      fillerDays(days),
		Error:          "model returned invalid JSON",
		Warning:        "Model returned invalid JSON; returning fallback/sample itinerary.",
		Source:         SourceFallback,
	}
}

// errorResult is returned when the completion call itself failed. All lists
// are empty except for a one-activity-per-day filler itinerary.
func errorResult(err error, days int) Result {
	if days < 1 {
		days = 1
	}
	itin := make([]Day, days)
	for i := range itin {
		itin[i] = Day{Day: i + 1, Activities: []string{"Fallback activity"}}
	}
	return Result{
		Places:         []Place{},
		Hotels:         []Hotel{},
		Transportation: []string{},
		Costs:          []string{},
		Itinerary:      itin,
		Error:          err.Error(),
		Warning:        "Server error: " + err.Error(),
		Source:         SourceError,
	}
}
