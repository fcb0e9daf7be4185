package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"travel-planner/agent"
	"travel-planner/places"
	"travel-planner/server"
	"travel-planner/session"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment as-is")
	}

	geminiKey := os.Getenv("GEMINI_API_KEY")
	if geminiKey == "" {
		log.Fatal("GEMINI_API_KEY is required")
	}
	mapsKey := os.Getenv("GOOGLE_MAPS_API_KEY")
	if mapsKey == "" {
		log.Println("GOOGLE_MAPS_API_KEY not set, map features disabled")
	}

	frontendDir := "./frontend"
	if _, err := os.Stat(frontendDir); err != nil {
		frontendDir = ""
	}

	srv := server.New(
		session.NewPlanSession(),
		agent.NewPlanner(geminiKey),
		places.NewClient(mapsKey),
		mapsKey,
		frontendDir,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server running on http://localhost:%s", port)
	if frontendDir != "" {
		log.Printf("Frontend: http://localhost:%s/web", port)
	}
	log.Printf("API: http://localhost:%s/api", port)
	if err := srv.Router().Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
