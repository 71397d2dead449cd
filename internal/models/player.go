package models

// Position is a player's positional category on the pitch.
type Position string

const (
	Goalkeeper Position = "GK"
	Defender   Position = "DEF"
	Midfielder Position = "MID"
	Forward    Position = "FWD"
)

// ResilienceTier buckets players by how much their momentum resists
// crowd noise and fatigue. Maps to a coefficient in (0,1].
type ResilienceTier string

const (
	TierRookie      ResilienceTier = "rookie"
	TierYoung       ResilienceTier = "young"
	TierExperienced ResilienceTier = "experienced"
	TierVeteran     ResilienceTier = "veteran"
)

// ResilienceFactor returns the momentum-persistence coefficient for a tier.
func (t ResilienceTier) ResilienceFactor() float64 {
	switch t {
	case TierVeteran:
		return 0.90
	case TierExperienced:
		return 0.75
	case TierYoung:
		return 0.60
	case TierRookie:
		return 0.45
	default:
		return 0.70
	}
}

// Player is an immutable roster slot. Created once at startup and shared
// read-only across iterations; simulation state never lives on the player.
type Player struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Team       string         `json:"team"` // "A" or "B"
	Position   Position       `json:"position"`
	Resilience ResilienceTier `json:"resilience_tier"`
	Skill      float64        `json:"skill"` // 0-10 scouting grade
	Speed      float64        `json:"speed"`
}

// ResilienceFactor is a convenience passthrough to the tier's coefficient.
func (p Player) ResilienceFactor() float64 {
	return p.Resilience.ResilienceFactor()
}

// EventType identifies a discrete match event.
type EventType string

const (
	EventPass           EventType = "pass"
	EventKeyPass        EventType = "key_pass"
	EventThroughBall    EventType = "through_ball"
	EventCross          EventType = "cross"
	EventTackle         EventType = "tackle"
	EventTackleWon      EventType = "tackle_won"
	EventInterception   EventType = "interception"
	EventClearance      EventType = "clearance"
	EventShot           EventType = "shot"
	EventShotOnTarget   EventType = "shot_on_target"
	EventGoal           EventType = "goal"
	EventGoalConceded   EventType = "goal_conceded"
	EventSave           EventType = "save"
	EventFoul           EventType = "foul"
	EventYellowCard     EventType = "yellow_card"
	EventRedCard        EventType = "red_card"
	EventTurnover       EventType = "turnover"
	EventDribble        EventType = "dribble"
	EventDribbleSuccess EventType = "dribble_success"
	EventPress          EventType = "press"
)

// EventCounts maps event types to occurrence counts for one iteration.
// Ephemeral: drawn, consumed by the momentum formula, discarded.
type EventCounts map[EventType]int
