package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacticlab/momentum-engine/internal/engine"
	"github.com/tacticlab/momentum-engine/internal/models"
)

func newSweepService(t *testing.T) *SweepService {
	t.Helper()
	catalog := models.Catalog{
		Formations: map[string]float64{
			"4-3-3": 0.87,
			"4-4-2": 0.84,
			"5-3-2": 0.78,
		},
		Tactics: map[string]models.TacticModifiers{
			"balanced":   {Momentum: 1.0, OffBall: 1.0, Possession: 1.0},
			"aggressive": {Momentum: 1.20, OffBall: 0.85, Possession: 0.95},
		},
	}
	return NewSweepService(engine.NewEngine(catalog, engine.DefaultRoster()))
}

func baseSweepRequest() SweepRequest {
	return SweepRequest{
		OpponentFormation: "4-4-2",
		OpponentTactic:    "balanced",
		Iterations:        20,
		CrowdNoise:        80.0,
		Seed:              41,
	}
}

func TestSweepCoversEveryCombo(t *testing.T) {
	svc := newSweepService(t)

	result, err := svc.Run(context.Background(), baseSweepRequest())
	require.NoError(t, err)

	require.Len(t, result.Combos, 6)
	assert.Equal(t, "xg", result.RankBy)
	assert.Equal(t, 20, result.IterationsPerCombo)

	seen := make(map[string]bool, len(result.Combos))
	for i, c := range result.Combos {
		assert.Equal(t, i+1, c.Rank)
		seen[c.Formation+"/"+c.Tactic] = true
	}
	assert.Len(t, seen, 6)
}

func TestSweepRanksByRequestedMetric(t *testing.T) {
	svc := newSweepService(t)

	req := baseSweepRequest()
	req.RankBy = "momentum"
	result, err := svc.Run(context.Background(), req)
	require.NoError(t, err)
	for i := 1; i < len(result.Combos); i++ {
		assert.GreaterOrEqual(t, result.Combos[i-1].MomentumPMU, result.Combos[i].MomentumPMU)
	}

	req.RankBy = "risk"
	result, err = svc.Run(context.Background(), req)
	require.NoError(t, err)
	// Risk ranks ascending; everything else descending.
	for i := 1; i < len(result.Combos); i++ {
		assert.LessOrEqual(t, result.Combos[i-1].TurnoverRisk, result.Combos[i].TurnoverRisk)
	}
}

func TestSweepBaselineDeltas(t *testing.T) {
	svc := newSweepService(t)

	result, err := svc.Run(context.Background(), baseSweepRequest())
	require.NoError(t, err)

	var baseline *SweepCombo
	for i := range result.Combos {
		if result.Combos[i].IsBaseline {
			baseline = &result.Combos[i]
			break
		}
	}
	require.NotNil(t, baseline)
	assert.Equal(t, "4-3-3", baseline.Formation)
	assert.Equal(t, "balanced", baseline.Tactic)
	assert.Zero(t, baseline.XGDelta)
	assert.Zero(t, baseline.GoalProbDelta)
	assert.Zero(t, baseline.MomentumDelta)

	for _, c := range result.Combos {
		assert.InDelta(t, c.XG-baseline.XG, c.XGDelta, 1e-9)
		assert.InDelta(t, c.MomentumPMU-baseline.MomentumPMU, c.MomentumDelta, 1e-9)
	}
}

func TestSweepSeededRunsReproduce(t *testing.T) {
	svc := newSweepService(t)

	first, err := svc.Run(context.Background(), baseSweepRequest())
	require.NoError(t, err)
	second, err := svc.Run(context.Background(), baseSweepRequest())
	require.NoError(t, err)

	assert.Equal(t, first.Combos, second.Combos)
}

func TestSweepRejectsBadInput(t *testing.T) {
	svc := newSweepService(t)

	req := baseSweepRequest()
	req.RankBy = "vibes"
	_, err := svc.Run(context.Background(), req)
	assert.ErrorIs(t, err, engine.ErrInvalidArgument)

	req = baseSweepRequest()
	req.Iterations = 0
	_, err = svc.Run(context.Background(), req)
	assert.ErrorIs(t, err, engine.ErrInvalidArgument)

	req = baseSweepRequest()
	req.OpponentTactic = "park-the-bus"
	_, err = svc.Run(context.Background(), req)
	assert.ErrorIs(t, err, engine.ErrInvalidArgument)
}

func TestSweepCapsPerComboIterations(t *testing.T) {
	svc := newSweepService(t)

	req := baseSweepRequest()
	req.Iterations = 10000
	result, err := svc.Run(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, sweepIterationCap, result.IterationsPerCombo)
}

func TestSweepCancellation(t *testing.T) {
	svc := newSweepService(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := svc.Run(ctx, baseSweepRequest())
	assert.Nil(t, result)
	assert.ErrorIs(t, err, context.Canceled)
}
