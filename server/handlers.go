package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-planner/domain"
	"travel-planner/places"
)

func (s *Server) planTrip(c *gin.Context) {
	var req domain.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	it, err := s.generator.BuildItinerary(c.Request.Context(), req)
	if err != nil {
		c.JSON(502, gin.H{"error": "Failed to generate itinerary: " + err.Error()})
		return
	}

	s.session.SetCurrent(it, float64(req.Budget))
	c.JSON(200, it)
}

func (s *Server) modifyActivity(c *gin.Context) {
	var req domain.ModifyActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	// the generator falls back internally; this endpoint never reports a
	// suggestion failure
	c.JSON(200, s.generator.ReplacementActivities(c.Request.Context(), req))
}

func (s *Server) getConfig(c *gin.Context) {
	c.JSON(200, gin.H{"google_maps_api_key": s.mapsAPIKey})
}

func (s *Server) geocode(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		c.JSON(400, gin.H{"error": "missing address"})
		return
	}
	if !s.mapsEnabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "map features are disabled"})
		return
	}

	loc, err := s.places.Geocode(c.Request.Context(), address)
	if err != nil {
		s.placeError(c, err, address)
		return
	}
	c.JSON(200, loc)
}

func (s *Server) searchPlace(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(400, gin.H{"error": "missing name"})
		return
	}
	if !s.mapsEnabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "map features are disabled"})
		return
	}

	// qualify with the current trip destination unless the caller overrides
	destination := c.Query("destination")
	if destination == "" {
		if it, ok := s.session.Current(); ok {
			destination = it.Destination
		}
	}

	place, err := s.places.Search(c.Request.Context(), name, destination)
	if err != nil {
		s.placeError(c, err, name)
		return
	}
	c.JSON(200, place)
}

func (s *Server) placeDetails(c *gin.Context) {
	placeID := c.Query("place_id")
	if placeID == "" {
		c.JSON(400, gin.H{"error": "missing place_id"})
		return
	}
	if !s.mapsEnabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "map features are disabled"})
		return
	}

	details, err := s.places.GetDetails(c.Request.Context(), placeID)
	if err != nil {
		s.placeError(c, err, placeID)
		return
	}
	c.JSON(200, details)
}

func (s *Server) mapsEnabled() bool {
	return s.places != nil && s.places.Enabled()
}

func (s *Server) placeError(c *gin.Context, err error, subject string) {
	if errors.Is(err, places.ErrPlaceNotFound) {
		c.JSON(404, gin.H{"error": fmt.Sprintf("Location not found for %q", subject)})
		return
	}
	c.JSON(502, gin.H{"error": err.Error()})
}
