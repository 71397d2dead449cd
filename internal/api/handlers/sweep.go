package handlers

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/tacticlab/momentum-engine/internal/engine"
	"github.com/tacticlab/momentum-engine/internal/metrics"
	"github.com/tacticlab/momentum-engine/internal/services"
	"github.com/tacticlab/momentum-engine/pkg/utils"
)

type SweepHandler struct {
	sweep *services.SweepService
}

func NewSweepHandler(sweep *services.SweepService) *SweepHandler {
	return &SweepHandler{sweep: sweep}
}

type sweepRequest struct {
	OpponentFormation string  `json:"formation_b"`
	OpponentTactic    string  `json:"tactic_b"`
	Iterations        int     `json:"iterations"`
	CrowdNoise        float64 `json:"crowd_noise"`
	RankBy            string  `json:"rank_by"`
	Seed              int64   `json:"seed"`
}

// RunSweep ranks every formation x tactic pairing against a fixed
// opponent setup.
func (h *SweepHandler) RunSweep(c *gin.Context) {
	var req sweepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}
	if req.OpponentFormation == "" {
		req.OpponentFormation = "4-4-2"
	}
	if req.OpponentTactic == "" {
		req.OpponentTactic = "balanced"
	}
	if req.Iterations == 0 {
		req.Iterations = 100
	}
	if req.CrowdNoise == 0 {
		req.CrowdNoise = 75.0
	}

	result, err := h.sweep.Run(c.Request.Context(), services.SweepRequest{
		OpponentFormation: req.OpponentFormation,
		OpponentTactic:    req.OpponentTactic,
		Iterations:        req.Iterations,
		CrowdNoise:        req.CrowdNoise,
		RankBy:            req.RankBy,
		Seed:              req.Seed,
	})
	if err != nil {
		metrics.SweepsTotal.WithLabelValues("error").Inc()
		switch {
		case errors.Is(err, engine.ErrInvalidArgument):
			utils.SendValidationError(c, "Invalid sweep parameters", err.Error())
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			utils.SendError(c, 499, utils.NewAppError(utils.ErrCodeInternal, "Sweep cancelled"))
		default:
			utils.SendInternalError(c, "Sweep failed: "+err.Error())
		}
		return
	}

	metrics.SweepsTotal.WithLabelValues("ok").Inc()
	utils.SendSuccess(c, result)
}
