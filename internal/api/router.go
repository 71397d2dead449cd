package api

import (
	"github.com/gin-gonic/gin"

	"github.com/tacticlab/momentum-engine/internal/api/handlers"
	"github.com/tacticlab/momentum-engine/internal/api/middleware"
	"github.com/tacticlab/momentum-engine/internal/engine"
	"github.com/tacticlab/momentum-engine/internal/services"
	"github.com/tacticlab/momentum-engine/pkg/config"
)

// SetupRoutes configures all API routes on the given router group.
func SetupRoutes(group *gin.RouterGroup, eng *engine.Engine, cache *services.CacheService, cfg *config.Config) {
	sweepService := services.NewSweepService(eng)

	simulationHandler := handlers.NewSimulationHandler(eng, cache, cfg)
	sweepHandler := handlers.NewSweepHandler(sweepService)
	catalogHandler := handlers.NewCatalogHandler(eng)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	group.GET("/players", catalogHandler.GetPlayers)
	group.GET("/formations", catalogHandler.GetFormations)

	// Simulation endpoints carry the rate limit; they are the expensive
	// surface.
	simGroup := group.Group("")
	simGroup.Use(limiter.Middleware())
	{
		simGroup.POST("/simulate", simulationHandler.RunSimulation)
		simGroup.POST("/sweep", sweepHandler.RunSweep)
	}
}
