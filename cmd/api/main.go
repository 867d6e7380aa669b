package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"tea-engine/internal/api/handlers"
	"tea-engine/internal/api/middleware"
	"tea-engine/internal/catalog"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	cat := catalog.MustLoad()

	router := gin.New()
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS())

	teaHandler := handlers.NewTEAHandler(cat, log)
	techHandler := handlers.NewTechnologyHandler(cat)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/tea/calculate", teaHandler.Calculate)
		api.POST("/tea/quick-lcoe", teaHandler.QuickLCOE)
		api.POST("/tea/compare", teaHandler.Compare)
		api.POST("/tea/sensitivity", teaHandler.Sensitivity)

		api.GET("/technologies", techHandler.List)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Info().Str("addr", addr).Msg("starting API server")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
