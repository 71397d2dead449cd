package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tacticlab/momentum-engine/internal/models"
)

func TestDeriveOutcomeDistributionSumsToOne(t *testing.T) {
	for _, delta := range []float64{-40, -10, -0.5, 0, 0.5, 10, 40} {
		dist := deriveOutcomeDistribution(delta)
		sum := dist.TeamAWins + dist.Draws + dist.TeamBWins
		assert.InDelta(t, 1.0, sum, 1e-9, "delta=%v", delta)
		assert.GreaterOrEqual(t, dist.TeamAWins, 0.0)
		assert.GreaterOrEqual(t, dist.Draws, 0.0)
		assert.GreaterOrEqual(t, dist.TeamBWins, 0.0)
	}
}

func TestDeriveOutcomeDistributionMonotoneInDelta(t *testing.T) {
	prev := deriveOutcomeDistribution(-30)
	for _, delta := range []float64{-10, 0, 10, 30} {
		dist := deriveOutcomeDistribution(delta)
		assert.Greater(t, dist.TeamAWins, prev.TeamAWins)
		assert.Less(t, dist.TeamBWins, prev.TeamBWins)
		prev = dist
	}
}

func TestDeriveOutcomeDistributionSymmetry(t *testing.T) {
	dist := deriveOutcomeDistribution(0)
	assert.InDelta(t, dist.TeamAWins, dist.TeamBWins, 1e-9)
	assert.InDelta(t, baseDrawShare, dist.Draws, 1e-9)

	// The draw share thins out as either side runs away with it.
	far := deriveOutcomeDistribution(25)
	assert.Less(t, far.Draws, dist.Draws)
}

func TestAssembleMatchReport(t *testing.T) {
	report := &models.SimulationReport{
		Iterations:      500,
		AvgPMUTeamA:     62.0,
		AvgPMUTeamB:     55.0,
		AvgPMU:          58.5,
		PeakPMU:         88.0,
		GoalProbability: 0.14,
		Elapsed:         750 * time.Millisecond,
	}

	match := AssembleMatchReport(report, 0.87, "balanced")

	assert.InDelta(t, 0.42, match.XG, 1e-9)
	assert.InDelta(t, 7.0, match.MomentumAdvantage, 1e-9)
	assert.InDelta(t, 13.0, match.TurnoverRisk, 1e-9)
	assert.Equal(t, "LOW", match.RiskLevel)
	assert.InDelta(t, 0.75, match.ElapsedSeconds, 1e-9)
	assert.Equal(t, 500, match.Iterations)
}

func TestAssembleMatchReportAggressiveTacticRaisesRisk(t *testing.T) {
	report := &models.SimulationReport{AvgPMUTeamA: 50, AvgPMUTeamB: 50}

	balanced := AssembleMatchReport(report, 0.78, "balanced")
	aggressive := AssembleMatchReport(report, 0.78, "aggressive")

	assert.InDelta(t, 20.0, aggressive.TurnoverRisk-balanced.TurnoverRisk, 1e-9)
	assert.Equal(t, "MODERATE", balanced.RiskLevel)
	assert.Equal(t, "HIGH", aggressive.RiskLevel)
}

func TestRiskLevelBands(t *testing.T) {
	cases := []struct {
		risk  float64
		level string
	}{
		{5, "LOW"},
		{20, "LOW"},
		{20.1, "MODERATE"},
		{40, "MODERATE"},
		{40.1, "HIGH"},
		{60, "HIGH"},
		{60.1, "CRITICAL"},
		{95, "CRITICAL"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.level, riskLevel(tc.risk), "risk=%v", tc.risk)
	}
}
