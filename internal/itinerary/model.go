// README: Itinerary domain types; the Result shape is the API contract with the frontend.
package itinerary

// Source classifies how a Result was produced.
const (
	SourceAI       = "ai"
	SourcePartial  = "partial"
	SourceFallback = "fallback"
	SourceError    = "error"
)

// Coordinates is a lat/lng pair as echoed by the model.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Place is one sightseeing entry. Beyond coordinate enrichment the pipeline
// carries places through untouched.
type Place struct {
	Name        string      `json:"name"`
	Time        string      `json:"time,omitempty"`
	Details     string      `json:"details,omitempty"`
	Location    string      `json:"location,omitempty"`
	Coordinates Coordinates `json:"coordinates"`
	Pricing     string      `json:"pricing,omitempty"`
	BestTime    string      `json:"bestTime,omitempty"`
}

// Hotel is one accommodation entry, carried through untouched.
type Hotel struct {
	Name        string      `json:"name"`
	Address     string      `json:"address,omitempty"`
	Location    string      `json:"location,omitempty"`
	Coordinates Coordinates `json:"coordinates"`
	Price       string      `json:"price,omitempty"`
	Rating      string      `json:"rating,omitempty"`
	Amenities   []string    `json:"amenities"`
	Description string      `json:"description,omitempty"`
}

// Day is one itinerary day. Within a merged Result day numbers are
// contiguous and start at 1.
type Day struct {
	Day        int      `json:"day"`
	Activities []string `json:"activities"`
}

// Result is the unit produced by a single generation chunk and also by the
// merge of all chunks. Warning/Source/Error are only set on anomalies; a
// clean generation carries none of them.
type Result struct {
	Places         []Place  `json:"places"`
	Hotels         []Hotel  `json:"hotels"`
	Transportation []string `json:"transportation"`
	Costs          []string `json:"costs"`
	Itinerary      []Day    `json:"itinerary"`
	Warning        string   `json:"warning,omitempty"`
	Source         string   `json:"source,omitempty"`
	Error          string   `json:"error,omitempty"`
}

// Request holds the caller-supplied trip parameters for one generation call.
// Travelers is passed through as supplied; the model copes with odd values.
type Request struct {
	Destination string
	Travelers   int
	StartDate   string
	EndDate     string
	Preferences string
	Budget      string
	TravelWith  string
}
