package engine

import (
	"math/rand"

	"github.com/tacticlab/momentum-engine/internal/models"
)

// Per-iteration uniform draw ranges for the four sampled event categories.
// These draws are the engine's only source of randomness inside an
// iteration; everything downstream is a pure function of them.
var eventDrawRanges = []struct {
	event models.EventType
	min   int
	max   int
}{
	{models.EventPass, 10, 24},
	{models.EventTackle, 3, 10},
	{models.EventShot, 1, 4},
	{models.EventInterception, 2, 6},
}

const (
	// Team B hears the away end: slightly quieter than the team A value.
	crowdNoiseAwayOffset = 3.0

	defaultMinutesElapsed = 45.0

	transitionCeiling = 0.35
)

// environment carries the per-run ambient inputs to the momentum formula.
type environment struct {
	crowdNoise     float64
	minutesElapsed float64
}

// drawEventCounts samples the iteration's shared event mix.
func drawEventCounts(rng *rand.Rand) models.EventCounts {
	counts := make(models.EventCounts, len(eventDrawRanges))
	for _, r := range eventDrawRanges {
		counts[r.event] = r.min + rng.Intn(r.max-r.min+1)
	}
	return counts
}

// simulateIteration runs one randomized pass over both squads: a shared
// event mix is drawn, every player's momentum is computed and scaled by
// the tactic multiplier, team pressure triples are sampled, and a goal
// probability is derived from the team momentum averages.
func (e *Engine) simulateIteration(rng *rand.Rand, m matchup, env environment) models.IterationResult {
	events := drawEventCounts(rng)

	res := models.IterationResult{
		MomentumA: make([]float64, len(e.teamA)),
		MomentumB: make([]float64, len(e.teamB)),
	}

	sumA := 0.0
	for i, p := range e.teamA {
		pmu := ComputeMomentum(p, events, env.crowdNoise, env.minutesElapsed)
		pmu = clamp(pmu*m.tacticA.Momentum, 0.0, 100.0)
		res.MomentumA[i] = pmu
		sumA += pmu
	}
	sumB := 0.0
	awayNoise := clamp(env.crowdNoise-crowdNoiseAwayOffset, minCrowdNoise, maxCrowdNoise)
	for i, p := range e.teamB {
		pmu := ComputeMomentum(p, events, awayNoise, env.minutesElapsed)
		pmu = clamp(pmu*m.tacticB.Momentum, 0.0, 100.0)
		res.MomentumB[i] = pmu
		sumB += pmu
	}
	res.AvgPMUTeamA = sumA / float64(len(e.teamA))
	res.AvgPMUTeamB = sumB / float64(len(e.teamB))

	// Team A's pressure scales with its own tactic; team B's uses the
	// reciprocal multipliers so the pair stays a loose complement rather
	// than two independent draws.
	res.PressureA = drawPressure(rng, m.coherenceA, m.tacticA.OffBall, m.tacticA.Possession)
	res.PressureB = drawPressure(rng, m.coherenceB, 1.0/m.tacticA.OffBall, 1.0/m.tacticA.Possession)

	// Asymmetric denominators (50 vs 60) skew the baseline toward the
	// team under evaluation. Deliberate; do not symmetrize.
	res.GoalProbability = clamp((res.AvgPMUTeamA/50.0-res.AvgPMUTeamB/60.0)*0.15, 0.0, 0.5)

	return res
}

// drawPressure samples a pressure triple. Possession and off-ball blend
// formation coherence with the tactic multiplier; transition is an
// unmodified narrow draw. All values stay probability-like.
func drawPressure(rng *rand.Rand, coherence, offBallMult, possessionMult float64) models.PressureProfile {
	offBallFactor := (0.6 + coherence*0.4) * offBallMult
	possessionFactor := (0.5 + coherence*0.5) * possessionMult
	return models.PressureProfile{
		Possession: clamp(rng.Float64()*possessionFactor, 0.0, 0.9999),
		OffBall:    clamp(rng.Float64()*offBallFactor, 0.0, 0.9999),
		Transition: rng.Float64() * transitionCeiling,
	}
}
