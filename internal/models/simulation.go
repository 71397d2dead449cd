package models

import "time"

// PressureProfile is a team's pressure distribution for one iteration or
// averaged across a run. Values are probability-like in [0,1). The two
// teams' profiles are deliberately not a zero-sum split.
type PressureProfile struct {
	Possession float64 `json:"possession"`
	OffBall    float64 `json:"offBall"`
	Transition float64 `json:"transition"`
}

// IterationResult is the output of one randomized pass over the roster.
// Transient: folded into the run accumulator and discarded.
type IterationResult struct {
	MomentumA       []float64 // per-player PMU, team A, roster order
	MomentumB       []float64
	AvgPMUTeamA     float64
	AvgPMUTeamB     float64
	PressureA       PressureProfile
	PressureB       PressureProfile
	GoalProbability float64 // [0, 0.5]
}

// PlayerMomentum is one leaderboard row: a player's mean PMU across all
// iterations of a run.
type PlayerMomentum struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Position Position `json:"position"`
	Team     string   `json:"team"`
	PMU      float64  `json:"pmu"`
}

// SimulationReport is the run's only long-lived output. Immutable after
// construction; owned by the caller.
type SimulationReport struct {
	Iterations      int              `json:"iterations"`
	Partial         bool             `json:"partial,omitempty"`
	AvgPMU          float64          `json:"avgPMU"`
	AvgPMUTeamA     float64          `json:"avgPMU_A"`
	AvgPMUTeamB     float64          `json:"avgPMU_B"`
	PeakPMU         float64          `json:"peakPMU"`
	StdPMU          float64          `json:"stdPMU"`
	GoalProbability float64          `json:"goalProbability"`
	TeamAPressure   PressureProfile  `json:"teamAPressure"`
	TeamBPressure   PressureProfile  `json:"teamBPressure"`
	PlayerMomentum  []PlayerMomentum `json:"playerMomentum"`
	Elapsed         time.Duration    `json:"-"`
	Seed            int64            `json:"-"`
}

// Progress is delivered to the optional progress callback during a run.
type Progress struct {
	Completed     int
	Total         int
	AvgPMUSoFar   float64
	GoalProbSoFar float64
	Elapsed       time.Duration
}

// OutcomeDistribution is the win/draw/loss probability split, derived by
// the report assembly layer from the momentum delta. Sums to 1.
type OutcomeDistribution struct {
	TeamAWins float64 `json:"teamA_wins"`
	Draws     float64 `json:"draws"`
	TeamBWins float64 `json:"teamB_wins"`
}

// MatchReport is the externally served schema: the engine report plus the
// collaborator-derived metrics (xG, outcome split, risk analytics).
type MatchReport struct {
	SimulationReport
	XG                  float64             `json:"xg"`
	OutcomeDistribution OutcomeDistribution `json:"outcomeDistribution"`
	MomentumAdvantage   float64             `json:"momentum_advantage_team_a"`
	TurnoverRisk        float64             `json:"turnover_risk"`
	RiskLevel           string              `json:"overall_risk_level"`
	ElapsedSeconds      float64             `json:"elapsed_seconds"`
	RequestID           string              `json:"request_id,omitempty"`
}
