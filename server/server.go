// Package server exposes the HTTP surface: itinerary generation, activity
// replacement, runtime config, and the map-provider proxy.
package server

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"travel-planner/domain"
	"travel-planner/places"
	"travel-planner/session"
)

// Generator produces itineraries and replacement candidates.
type Generator interface {
	BuildItinerary(ctx context.Context, req domain.PlanRequest) (*domain.Itinerary, error)
	ReplacementActivities(ctx context.Context, req domain.ModifyActivityRequest) domain.ReplacementActivityList
}

// PlaceFinder is the map-provider boundary the handlers call through.
type PlaceFinder interface {
	Enabled() bool
	Geocode(ctx context.Context, address string) (places.Location, error)
	Search(ctx context.Context, name, destination string) (*places.Place, error)
	GetDetails(ctx context.Context, placeID string) (*places.Details, error)
}

// Server wires the session, the generator and the map provider into one
// gin application.
type Server struct {
	session   *session.PlanSession
	generator Generator
	places    PlaceFinder

	mapsAPIKey  string
	frontendDir string
}

func New(s *session.PlanSession, g Generator, p PlaceFinder, mapsAPIKey, frontendDir string) *Server {
	return &Server{
		session:     s,
		generator:   g,
		places:      p,
		mapsAPIKey:  mapsAPIKey,
		frontendDir: frontendDir,
	}
}

// Router builds the gin engine with CORS, static frontend, and the API
// routes.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8080", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if s.frontendDir != "" {
		r.Static("/web", s.frontendDir)
		r.GET("/", func(c *gin.Context) {
			c.Redirect(302, "/web/")
		})
	}

	r.POST("/plan-trip", s.planTrip)
	r.POST("/modify-activity", s.modifyActivity)

	api := r.Group("/api")
	{
		api.GET("/config", s.getConfig)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok", "time": time.Now()})
		})
		api.GET("/places/geocode", s.geocode)
		api.GET("/places/search", s.searchPlace)
		api.GET("/places/details", s.placeDetails)
	}

	return r
}
