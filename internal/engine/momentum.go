package engine

import "github.com/tacticlab/momentum-engine/internal/models"

// PMU baseline energy per position.
var baseEnergy = map[models.Position]float64{
	models.Goalkeeper: 8.0,
	models.Defender:   12.0,
	models.Midfielder: 15.0,
	models.Forward:    18.0,
}

// Signed base impact per event type, in PMU units before scaling.
var eventBaseImpacts = map[models.EventType]float64{
	models.EventPass:           2.0,
	models.EventKeyPass:        3.5,
	models.EventThroughBall:    4.0,
	models.EventCross:          2.5,
	models.EventTackle:         5.0,
	models.EventTackleWon:      6.0,
	models.EventInterception:   3.0,
	models.EventClearance:      2.0,
	models.EventShot:           4.0,
	models.EventShotOnTarget:   5.5,
	models.EventGoal:           15.0,
	models.EventGoalConceded:   -10.0,
	models.EventSave:           5.0,
	models.EventFoul:           -3.0,
	models.EventYellowCard:     -4.0,
	models.EventRedCard:        -12.0,
	models.EventTurnover:       -2.5,
	models.EventDribble:        3.0,
	models.EventDribbleSuccess: 4.5,
	models.EventPress:          1.5,
}

const (
	// eventScale calibrates summed event impact so a typical iteration's
	// event mix keeps raw momentum inside the 0-100 band instead of
	// saturating the clamp.
	eventScale = 0.25

	// crowdScale caps the crowd term at the max crowd impact in PMU units.
	crowdScale = 8.0

	// fatigueScale is the full-match fatigue penalty for a zero-resilience
	// player, in PMU units.
	fatigueScale = 15.0

	minCrowdNoise = 0.0
	maxCrowdNoise = 120.0
	matchMinutes  = 90.0
)

// ComputeMomentum maps a player's attributes, an iteration's event mix,
// crowd noise and elapsed time to a PMU value clamped to [0,100].
//
//	raw = (baseEnergy + eventImpact + crowdImpact - fatigue) * resilience
//
// Resilience appears three times on purpose: it dampens crowd sensitivity,
// dampens fatigue, and multiplies the final value. It is the single knob
// separating player archetypes. The function is total: out-of-range inputs
// are clamped, never rejected.
func ComputeMomentum(p models.Player, events models.EventCounts, crowdNoise, minutesElapsed float64) float64 {
	resilience := p.ResilienceFactor()

	base := baseEnergy[p.Position]
	if base == 0 {
		base = 12.0
	}
	// Skill lifts baseline energy by up to ~30%.
	base *= 1.0 + (p.Skill/10.0)*0.3

	eventImpact := 0.0
	for evt, count := range events {
		if count <= 0 {
			continue
		}
		eventImpact += float64(count) * eventBaseImpacts[evt] * eventScale
	}

	crowdNoise = clamp(crowdNoise, minCrowdNoise, maxCrowdNoise)
	crowdImpact := (crowdNoise / 100.0) * (1.0 - resilience*0.3) * crowdScale

	minutesElapsed = clamp(minutesElapsed, 0, matchMinutes)
	fatigue := (minutesElapsed / matchMinutes) * (1.0 - resilience*0.5) * fatigueScale

	raw := (base + eventImpact + crowdImpact - fatigue) * resilience
	return clamp(raw, 0.0, 100.0)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
