package models

// TacticModifiers are the three scaling factors a named tactical style
// applies: player momentum, off-ball pressure, and possession pressure.
type TacticModifiers struct {
	Momentum   float64 `json:"momentum"`
	OffBall    float64 `json:"off_ball"`
	Possession float64 `json:"possession"`
}

// Catalog is the injected configuration the engine consumes: formation
// coherence constants and tactic multiplier sets. Supplied at construction
// so tests can run against synthetic tables.
type Catalog struct {
	Formations map[string]float64         `json:"formations"`
	Tactics    map[string]TacticModifiers `json:"tactics"`
}

// DefaultCatalog returns the production formation and tactic tables.
func DefaultCatalog() Catalog {
	return Catalog{
		Formations: map[string]float64{
			"4-3-3":   0.87,
			"3-5-2":   0.82,
			"5-3-2":   0.85,
			"4-2-4":   0.78,
			"4-4-2":   0.84,
			"3-4-3":   0.80,
			"4-2-3-1": 0.86,
			"4-1-4-1": 0.83,
			"4-3-2-1": 0.82,
		},
		Tactics: map[string]TacticModifiers{
			"aggressive": {Momentum: 1.20, OffBall: 0.85, Possession: 0.95},
			"balanced":   {Momentum: 1.00, OffBall: 1.00, Possession: 1.00},
			"defensive":  {Momentum: 0.75, OffBall: 1.25, Possession: 0.80},
			"possession": {Momentum: 1.15, OffBall: 0.80, Possession: 1.20},
		},
	}
}
