package main

import (
	"fmt"
	"log"
	"os"

	"baseball-sim/internal/api/handlers"
	"baseball-sim/internal/api/middleware"
	"baseball-sim/internal/data"
	"baseball-sim/internal/sim"

	"github.com/gin-gonic/gin"
)

func main() {
	// Get configuration from environment
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	// Load the roster; fall back to a generated league when no file exists.
	playersPath := data.GetDefaultPlayersPath()
	list, err := data.LoadPlayers(playersPath)
	if err != nil {
		log.Printf("No roster at %s (%v), generating a synthetic league", playersPath, err)
		list = data.GenerateLeague(nil, sim.NewSeededRNG(1))
	}
	log.Printf("Loaded %d players across %d teams", len(list.Players), len(list.Teams()))

	// Set up Gin router
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// Apply middleware
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	// Initialize handlers
	gameHandler := handlers.NewGameHandler(list)
	seasonHandler := handlers.NewSeasonHandler(list)
	playersHandler := handlers.NewPlayersHandler(list)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/game", gameHandler.SimulateGame)

		api.POST("/seasons", seasonHandler.CreateSeason)
		api.GET("/seasons", seasonHandler.ListSeasons)
		api.GET("/seasons/:id", seasonHandler.GetSeason)
		api.POST("/seasons/:id/control", seasonHandler.ControlSeason)
		api.DELETE("/seasons/:id", seasonHandler.DeleteSeason)
		api.GET("/seasons/:id/standings", seasonHandler.GetStandings)
		api.GET("/seasons/:id/injuries", seasonHandler.GetInjuries)
		api.GET("/seasons/:id/games", seasonHandler.GetGames)
		api.GET("/seasons/:id/rankings", seasonHandler.RankPlayers)

		api.GET("/teams", playersHandler.ListTeams)
		api.GET("/players", playersHandler.ListPlayers)
	}

	// Start server
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
