package engine

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/tacticlab/momentum-engine/internal/models"
	"github.com/tacticlab/momentum-engine/pkg/logger"
)

// MaxIterations is the hard ceiling on Monte Carlo iterations per run.
const MaxIterations = 2000

// Engine runs Monte Carlo momentum simulations over a fixed roster.
// The roster and catalogs are read-only after construction and safe for
// concurrent use.
type Engine struct {
	catalog models.Catalog
	roster  []models.Player
	teamA   []models.Player
	teamB   []models.Player
	workers int
	log     *logrus.Entry
}

// Option configures an Engine.
type Option func(*Engine)

// WithWorkers sets the simulation worker count. Zero or negative means
// runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(e *Engine) {
		e.workers = n
	}
}

// NewEngine builds an engine around an injected catalog and roster.
func NewEngine(catalog models.Catalog, roster []models.Player, opts ...Option) *Engine {
	e := &Engine{
		catalog: catalog,
		roster:  roster,
		log:     logger.WithService("engine"),
	}
	e.teamA, e.teamB = splitRoster(roster)
	for _, opt := range opts {
		opt(e)
	}
	if e.workers <= 0 {
		e.workers = runtime.NumCPU()
	}
	return e
}

// Catalog returns the engine's injected configuration tables.
func (e *Engine) Catalog() models.Catalog {
	return e.catalog
}

// Roster returns the fixed 22-player roster in definition order.
func (e *Engine) Roster() []models.Player {
	return e.roster
}

// matchup holds a resolved formation/tactic pairing for both sides.
type matchup struct {
	coherenceA float64
	coherenceB float64
	tacticA    models.TacticModifiers
	tacticB    models.TacticModifiers
}

// ResolveMatchup validates formation and tactic names against the catalog
// and returns InvalidArgument-style errors for unknown keys. Formation
// strings absent from the catalog fall back to the heuristic coherence
// score as long as they parse as a formation.
func (e *Engine) resolveMatchup(formationA, tacticA, formationB, tacticB string) (matchup, error) {
	cohA, err := e.CoherenceFor(formationA)
	if err != nil {
		return matchup{}, err
	}
	cohB, err := e.CoherenceFor(formationB)
	if err != nil {
		return matchup{}, err
	}
	tmodA, ok := e.catalog.Tactics[strings.ToLower(tacticA)]
	if !ok {
		return matchup{}, fmt.Errorf("unknown tactic %q", tacticA)
	}
	tmodB, ok := e.catalog.Tactics[strings.ToLower(tacticB)]
	if !ok {
		return matchup{}, fmt.Errorf("unknown tactic %q", tacticB)
	}
	return matchup{
		coherenceA: cohA,
		coherenceB: cohB,
		tacticA:    tmodA,
		tacticB:    tmodB,
	}, nil
}

// CoherenceFor returns the coherence constant for a formation. Catalog
// entries win; anything else is scored heuristically: balanced lines and
// three-line shapes score higher, spread between line sizes costs.
// Result is clamped to [0.70, 0.92].
func (e *Engine) CoherenceFor(formation string) (float64, error) {
	if coh, ok := e.catalog.Formations[formation]; ok {
		return coh, nil
	}

	parts := strings.Split(formation, "-")
	if len(parts) < 2 || len(parts) > 5 {
		return 0, fmt.Errorf("unknown formation %q", formation)
	}
	lines := make([]float64, 0, len(parts))
	total := 0
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 || n > 6 {
			return 0, fmt.Errorf("unknown formation %q", formation)
		}
		total += n
		lines = append(lines, float64(n))
	}
	if total != 10 {
		return 0, fmt.Errorf("formation %q must field 10 outfield players", formation)
	}

	mean := float64(total) / float64(len(lines))
	variance := 0.0
	for _, l := range lines {
		variance += (l - mean) * (l - mean)
	}
	variance /= float64(len(lines))

	layerPenalty := 0.015 * absFloat(float64(len(lines))-3)
	variancePenalty := variance * 0.018
	score := 0.88 - layerPenalty - variancePenalty
	return clamp(score, 0.70, 0.92), nil
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
