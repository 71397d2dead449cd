package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacticlab/momentum-engine/internal/models"
)

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	return NewEngine(models.DefaultCatalog(), DefaultRoster(), opts...)
}

func TestDrawEventCountsWithinRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		counts := drawEventCounts(rng)
		require.Len(t, counts, 4)
		assert.GreaterOrEqual(t, counts[models.EventPass], 10)
		assert.LessOrEqual(t, counts[models.EventPass], 24)
		assert.GreaterOrEqual(t, counts[models.EventTackle], 3)
		assert.LessOrEqual(t, counts[models.EventTackle], 10)
		assert.GreaterOrEqual(t, counts[models.EventShot], 1)
		assert.LessOrEqual(t, counts[models.EventShot], 4)
		assert.GreaterOrEqual(t, counts[models.EventInterception], 2)
		assert.LessOrEqual(t, counts[models.EventInterception], 6)
	}
}

func TestSimulateIterationInvariants(t *testing.T) {
	e := newTestEngine(t)
	m, err := e.resolveMatchup("4-3-3", "balanced", "4-4-2", "balanced")
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	env := environment{crowdNoise: 75, minutesElapsed: 45}

	for i := 0; i < 200; i++ {
		res := e.simulateIteration(rng, m, env)

		require.Len(t, res.MomentumA, 11)
		require.Len(t, res.MomentumB, 11)
		for _, pmu := range append(res.MomentumA, res.MomentumB...) {
			assert.GreaterOrEqual(t, pmu, 0.0)
			assert.LessOrEqual(t, pmu, 100.0)
		}

		assert.GreaterOrEqual(t, res.GoalProbability, 0.0)
		assert.LessOrEqual(t, res.GoalProbability, 0.5)

		for _, profile := range []models.PressureProfile{res.PressureA, res.PressureB} {
			assert.GreaterOrEqual(t, profile.Possession, 0.0)
			assert.Less(t, profile.Possession, 1.0)
			assert.GreaterOrEqual(t, profile.OffBall, 0.0)
			assert.Less(t, profile.OffBall, 1.0)
			assert.GreaterOrEqual(t, profile.Transition, 0.0)
			assert.Less(t, profile.Transition, 0.35)
		}
	}
}

func TestSimulateIterationTacticScalesMomentum(t *testing.T) {
	e := newTestEngine(t)
	env := environment{crowdNoise: 75, minutesElapsed: 45}

	aggressive, err := e.resolveMatchup("4-3-3", "aggressive", "4-4-2", "balanced")
	require.NoError(t, err)
	defensive, err := e.resolveMatchup("4-3-3", "defensive", "4-4-2", "balanced")
	require.NoError(t, err)

	// Same seed, same draws; only the tactic multiplier differs.
	resAggressive := e.simulateIteration(rand.New(rand.NewSource(11)), aggressive, env)
	resDefensive := e.simulateIteration(rand.New(rand.NewSource(11)), defensive, env)

	assert.Greater(t, resAggressive.AvgPMUTeamA, resDefensive.AvgPMUTeamA)
}

func TestGoalProbabilityFavorsTeamUnderEvaluation(t *testing.T) {
	e := newTestEngine(t)
	env := environment{crowdNoise: 75, minutesElapsed: 45}
	m, err := e.resolveMatchup("4-3-3", "balanced", "4-4-2", "balanced")
	require.NoError(t, err)

	// With identical tactics the 50/60 denominators keep the probability
	// strictly positive whenever both sides have momentum.
	rng := rand.New(rand.NewSource(3))
	positive := 0
	for i := 0; i < 100; i++ {
		if e.simulateIteration(rng, m, env).GoalProbability > 0 {
			positive++
		}
	}
	assert.Equal(t, 100, positive)
}
