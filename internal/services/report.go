package services

import (
	"math"

	"github.com/tacticlab/momentum-engine/internal/models"
)

// xgPerGoalProb converts the averaged 30-second-window goal probability
// into a full-match expected-goals figure.
const xgPerGoalProb = 3.0

// outcomeShapeK controls how sharply the win share responds to the
// momentum delta in the logistic split.
const outcomeShapeK = 0.12

// baseDrawShare is the draw probability at zero momentum delta; it thins
// out as either side pulls away.
const baseDrawShare = 0.28

// AssembleMatchReport wraps an engine report into the externally served
// schema: xG, the win/draw/loss split, and the risk analytics the
// dashboard consumes. Pure derivation; the engine report is not mutated.
func AssembleMatchReport(report *models.SimulationReport, coherenceA float64, tactic string) models.MatchReport {
	delta := report.AvgPMUTeamA - report.AvgPMUTeamB

	outcome := deriveOutcomeDistribution(delta)

	turnoverRisk := (1.0-coherenceA)*100.0 + aggressionPenalty(tactic)

	return models.MatchReport{
		SimulationReport:    *report,
		XG:                  report.GoalProbability * xgPerGoalProb,
		OutcomeDistribution: outcome,
		MomentumAdvantage:   delta,
		TurnoverRisk:        turnoverRisk,
		RiskLevel:           riskLevel(turnoverRisk),
		ElapsedSeconds:      report.Elapsed.Seconds(),
	}
}

// deriveOutcomeDistribution splits win/draw/loss shares from the mean
// momentum delta. A logistic curve assigns the non-draw mass; the draw
// share shrinks as the delta grows. Shares always sum to 1.
func deriveOutcomeDistribution(delta float64) models.OutcomeDistribution {
	winLean := 1.0 / (1.0 + math.Exp(-outcomeShapeK*delta))
	draw := baseDrawShare / (1.0 + math.Abs(delta)*0.05)
	nonDraw := 1.0 - draw
	return models.OutcomeDistribution{
		TeamAWins: nonDraw * winLean,
		Draws:     draw,
		TeamBWins: nonDraw * (1.0 - winLean),
	}
}

func aggressionPenalty(tactic string) float64 {
	if tactic == "aggressive" {
		return 20.0
	}
	return 0.0
}

func riskLevel(turnoverRisk float64) string {
	switch {
	case turnoverRisk > 60:
		return "CRITICAL"
	case turnoverRisk > 40:
		return "HIGH"
	case turnoverRisk > 20:
		return "MODERATE"
	default:
		return "LOW"
	}
}
