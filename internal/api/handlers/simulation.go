package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/tacticlab/momentum-engine/internal/engine"
	"github.com/tacticlab/momentum-engine/internal/metrics"
	"github.com/tacticlab/momentum-engine/internal/models"
	"github.com/tacticlab/momentum-engine/internal/services"
	"github.com/tacticlab/momentum-engine/pkg/config"
	"github.com/tacticlab/momentum-engine/pkg/utils"
)

type SimulationHandler struct {
	engine *engine.Engine
	cache  *services.CacheService
	cfg    *config.Config
}

func NewSimulationHandler(eng *engine.Engine, cache *services.CacheService, cfg *config.Config) *SimulationHandler {
	return &SimulationHandler{
		engine: eng,
		cache:  cache,
		cfg:    cfg,
	}
}

type simulateRequest struct {
	Formation         string  `json:"formation"`
	Tactic            string  `json:"tactic"`
	OpponentFormation string  `json:"formation_b"`
	OpponentTactic    string  `json:"tactic_b"`
	Iterations        int     `json:"iterations"`
	CrowdNoise        float64 `json:"crowd_noise"`
	MinutesElapsed    float64 `json:"minutes_elapsed"`
	Seed              int64   `json:"seed"`
}

func (r *simulateRequest) applyDefaults(cfg *config.Config) {
	if r.Formation == "" {
		r.Formation = "4-3-3"
	}
	if r.OpponentFormation == "" {
		r.OpponentFormation = "4-4-2"
	}
	if r.Tactic == "" {
		r.Tactic = "balanced"
	}
	if r.OpponentTactic == "" {
		r.OpponentTactic = "balanced"
	}
	if r.Iterations == 0 {
		r.Iterations = cfg.DefaultIterations
	}
	if r.CrowdNoise == 0 {
		r.CrowdNoise = 75.0
	}
}

// RunSimulation executes a full Monte Carlo scenario and returns the
// assembled match report.
func (h *SimulationHandler) RunSimulation(c *gin.Context) {
	var req simulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}
	req.applyDefaults(h.cfg)

	if req.CrowdNoise < 0 || req.CrowdNoise > 120 {
		utils.SendValidationError(c, "Crowd noise must be between 0-120 dB", "")
		return
	}

	ctx := c.Request.Context()

	// Seeded runs bypass the cache: the caller asked for a specific
	// random stream, not a representative report.
	cacheKey := services.ReportCacheKey(req.Formation, req.Tactic, req.OpponentFormation, req.OpponentTactic, req.Iterations, req.CrowdNoise)
	if req.Seed == 0 {
		var cached models.MatchReport
		if err := h.cache.Get(ctx, cacheKey, &cached); err == nil {
			metrics.CacheHits.WithLabelValues("hit").Inc()
			cached.RequestID = c.GetString("request_id")
			utils.SendSuccess(c, cached)
			return
		} else if err != redis.Nil {
			logrus.WithError(err).Warn("report cache lookup failed")
		}
		metrics.CacheHits.WithLabelValues("miss").Inc()
	}

	start := time.Now()
	report, err := h.engine.RunScenario(ctx, engine.ScenarioRequest{
		Formation:         req.Formation,
		Tactic:            req.Tactic,
		OpponentFormation: req.OpponentFormation,
		OpponentTactic:    req.OpponentTactic,
		Iterations:        req.Iterations,
		CrowdNoise:        req.CrowdNoise,
		MinutesElapsed:    req.MinutesElapsed,
		Seed:              req.Seed,
	})
	if err != nil {
		metrics.SimulationsTotal.WithLabelValues("error").Inc()
		if errors.Is(err, engine.ErrInvalidArgument) {
			utils.SendValidationError(c, "Invalid simulation parameters", err.Error())
			return
		}
		utils.SendInternalError(c, "Simulation failed: "+err.Error())
		return
	}

	metrics.SimulationsTotal.WithLabelValues("ok").Inc()
	metrics.SimulationIterations.Observe(float64(report.Iterations))
	metrics.SimulationDuration.Observe(time.Since(start).Seconds())

	coherence, _ := h.engine.CoherenceFor(req.Formation)
	match := services.AssembleMatchReport(report, coherence, req.Tactic)
	match.RequestID = c.GetString("request_id")

	if req.Seed == 0 && !report.Partial {
		ttl := time.Duration(h.cfg.CacheTTLSeconds) * time.Second
		if err := h.cache.SetWithRetry(ctx, cacheKey, match, ttl, 3); err != nil {
			logrus.WithError(err).Warn("failed to cache match report")
		}
	}

	utils.SendSuccess(c, match)
}
