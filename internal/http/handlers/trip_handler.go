// README: Trip handlers for generate/list/get.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tripgen/internal/http/middleware"
	"tripgen/internal/modules/trip"
)

// Long ranges mean several sequential model calls, each with its own
// timeout, so the request budget has to be generous.
const generateTimeout = 5 * time.Minute

type TripHandler struct {
	trips *trip.Service
}

func NewTripHandler(svc *trip.Service) *TripHandler {
	return &TripHandler{trips: svc}
}

type generateTripReq struct {
	Destination string `json:"destination"`
	// Location is an accepted alias for destination kept for older clients.
	Location    string `json:"location"`
	Travelers   int    `json:"travelers"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Preferences string `json:"preferences"`
	Budget      string `json:"budget"`
	TravelWith  string `json:"travelWith"`
}

type tripPayload struct {
	ID          string `json:"id"`
	Destination string `json:"destination"`
	Travelers   int    `json:"travelers"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Preferences string `json:"preferences,omitempty"`
	Budget      string `json:"budget,omitempty"`
	TravelWith  string `json:"travelWith,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

func toTripPayload(t *trip.Trip) tripPayload {
	return tripPayload{
		ID:          t.ID,
		Destination: t.Destination,
		Travelers:   t.Travelers,
		StartDate:   t.StartDate,
		EndDate:     t.EndDate,
		Preferences: t.Preferences,
		Budget:      t.Budget,
		TravelWith:  t.TravelWith,
		CreatedAt:   t.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func (h *TripHandler) Generate(c *gin.Context) {
	var req generateTripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	dest := req.Destination
	if dest == "" {
		dest = req.Location
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), generateTimeout)
	defer cancel()

	res, t, err := h.trips.Generate(ctx, trip.GenerateCommand{
		UserID:      middleware.CallerUID(c),
		Destination: dest,
		Travelers:   req.Travelers,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Preferences: req.Preferences,
		Budget:      req.Budget,
		TravelWith:  req.TravelWith,
	})
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"message": "Itinerary generated successfully!",
		"trip_id": t.ID,
		"data":    res,
	})
}

func (h *TripHandler) List(c *gin.Context) {
	trips, err := h.trips.List(c.Request.Context(), middleware.CallerUID(c))
	if err != nil {
		writeTripError(c, err)
		return
	}
	payload := make([]tripPayload, 0, len(trips))
	for i := range trips {
		payload = append(payload, toTripPayload(&trips[i]))
	}
	writeJSON(c, http.StatusOK, gin.H{"trips": payload})
}

func (h *TripHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing trip id")
		return
	}
	t, err := h.trips.Get(c.Request.Context(), middleware.CallerUID(c), id)
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"trip": toTripPayload(t)})
}
