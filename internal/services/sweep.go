package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tacticlab/momentum-engine/internal/engine"
	"github.com/tacticlab/momentum-engine/internal/models"
	"github.com/tacticlab/momentum-engine/pkg/logger"
)

const (
	baselineFormation = "4-3-3"
	baselineTactic    = "balanced"

	// Per-combo iteration ceiling keeps a full sweep bounded.
	sweepIterationCap = 300
)

var validRankMetrics = map[string]bool{
	"xg":        true,
	"goal_prob": true,
	"momentum":  true,
	"risk":      true,
}

// SweepRequest sweeps every formation x tactic pairing in the catalog
// against a fixed opponent setup.
type SweepRequest struct {
	OpponentFormation string
	OpponentTactic    string
	Iterations        int
	CrowdNoise        float64
	RankBy            string
	Seed              int64
}

// SweepCombo is one ranked row of the sweep result.
type SweepCombo struct {
	Rank            int     `json:"rank"`
	Formation       string  `json:"formation"`
	Tactic          string  `json:"tactic"`
	XG              float64 `json:"xg"`
	XGDelta         float64 `json:"xg_delta"`
	GoalProbability float64 `json:"goal_probability"`
	GoalProbDelta   float64 `json:"goal_prob_delta"`
	MomentumPMU     float64 `json:"momentum_pmu"`
	MomentumDelta   float64 `json:"momentum_delta"`
	TurnoverRisk    float64 `json:"turnover_risk"`
	IsBaseline      bool    `json:"is_baseline"`
}

// SweepResult carries the ranked combos plus the baseline they are
// measured against.
type SweepResult struct {
	Combos             []SweepCombo `json:"combos"`
	BaselineFormation  string       `json:"baseline_formation"`
	BaselineTactic     string       `json:"baseline_tactic"`
	IterationsPerCombo int          `json:"iterations_per_combo"`
	RankBy             string       `json:"rank_by"`
	ElapsedSeconds     float64      `json:"elapsed_seconds"`
}

// SweepService ranks counterfactual formation/tactic pairings on top of
// the Monte Carlo engine.
type SweepService struct {
	engine *engine.Engine
	log    *logrus.Entry
}

func NewSweepService(eng *engine.Engine) *SweepService {
	return &SweepService{
		engine: eng,
		log:    logger.WithService("sweep"),
	}
}

// Run executes the sweep. Each combo is one engine run with a seed derived
// from the request seed, so a seeded sweep is reproducible. Cancelling the
// context aborts between combos; a cancelled sweep returns the context
// error and no ranking, mirroring the engine's no-partial-state contract.
func (s *SweepService) Run(ctx context.Context, req SweepRequest) (*SweepResult, error) {
	rankBy := req.RankBy
	if rankBy == "" {
		rankBy = "xg"
	}
	if !validRankMetrics[rankBy] {
		return nil, fmt.Errorf("%w: rank_by must be one of xg, goal_prob, momentum, risk", engine.ErrInvalidArgument)
	}

	iterations := req.Iterations
	if iterations <= 0 {
		return nil, fmt.Errorf("%w: iterations must be positive", engine.ErrInvalidArgument)
	}
	if iterations > sweepIterationCap {
		iterations = sweepIterationCap
	}

	catalog := s.engine.Catalog()
	formations := sortedKeys(catalog.Formations)
	tactics := sortedTacticKeys(catalog.Tactics)

	start := time.Now()
	combos := make([]SweepCombo, 0, len(formations)*len(tactics))

	comboIndex := int64(0)
	for _, formation := range formations {
		for _, tactic := range tactics {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}

			comboIndex++
			seed := req.Seed
			if seed != 0 {
				seed += comboIndex
			}

			report, err := s.engine.RunScenario(ctx, engine.ScenarioRequest{
				Formation:         formation,
				Tactic:            tactic,
				OpponentFormation: req.OpponentFormation,
				OpponentTactic:    req.OpponentTactic,
				Iterations:        iterations,
				CrowdNoise:        req.CrowdNoise,
				Seed:              seed,
			})
			if err != nil {
				return nil, err
			}

			coherence, _ := s.engine.CoherenceFor(formation)
			match := AssembleMatchReport(report, coherence, tactic)

			combos = append(combos, SweepCombo{
				Formation:       formation,
				Tactic:          tactic,
				XG:              match.XG,
				GoalProbability: report.GoalProbability,
				MomentumPMU:     report.AvgPMUTeamA,
				TurnoverRisk:    match.TurnoverRisk,
				IsBaseline:      formation == baselineFormation && tactic == baselineTactic,
			})
		}
	}

	applyBaselineDeltas(combos)
	rankCombos(combos, rankBy)

	s.log.WithFields(logrus.Fields{
		"combos":     len(combos),
		"iterations": iterations,
		"rank_by":    rankBy,
	}).Info("sweep complete")

	return &SweepResult{
		Combos:             combos,
		BaselineFormation:  baselineFormation,
		BaselineTactic:     baselineTactic,
		IterationsPerCombo: iterations,
		RankBy:             rankBy,
		ElapsedSeconds:     time.Since(start).Seconds(),
	}, nil
}

func applyBaselineDeltas(combos []SweepCombo) {
	var baseXG, baseGoalProb, baseMomentum float64
	for _, c := range combos {
		if c.IsBaseline {
			baseXG = c.XG
			baseGoalProb = c.GoalProbability
			baseMomentum = c.MomentumPMU
			break
		}
	}
	for i := range combos {
		combos[i].XGDelta = combos[i].XG - baseXG
		combos[i].GoalProbDelta = combos[i].GoalProbability - baseGoalProb
		combos[i].MomentumDelta = combos[i].MomentumPMU - baseMomentum
	}
}

func rankCombos(combos []SweepCombo, rankBy string) {
	sort.SliceStable(combos, func(i, j int) bool {
		switch rankBy {
		case "goal_prob":
			return combos[i].GoalProbability > combos[j].GoalProbability
		case "momentum":
			return combos[i].MomentumPMU > combos[j].MomentumPMU
		case "risk":
			// Lower risk ranks first.
			return combos[i].TurnoverRisk < combos[j].TurnoverRisk
		default:
			return combos[i].XG > combos[j].XG
		}
	})
	for i := range combos {
		combos[i].Rank = i + 1
	}
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedTacticKeys(m map[string]models.TacticModifiers) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
