package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/tacticlab/momentum-engine/internal/models"
)

// ErrInvalidArgument marks request validation failures; the API layer
// translates it to a 400.
var ErrInvalidArgument = errors.New("invalid argument")

// leaderboardSize caps the playerMomentum ranking in the report.
const leaderboardSize = 8

// iterationSeedMix decorrelates per-iteration RNG streams derived from
// the run seed (splitmix64 increment).
const iterationSeedMix = int64(-7046029254386353131) // 0x9E3779B97F4A7C15 as int64

// ScenarioRequest describes one Monte Carlo run.
type ScenarioRequest struct {
	Formation         string
	Tactic            string
	OpponentFormation string
	OpponentTactic    string
	Iterations        int
	CrowdNoise        float64
	MinutesElapsed    float64 // 0 means the default mid-match 45

	// Seed fixes the random stream for reproducible runs; 0 draws a seed
	// from the clock.
	Seed int64

	// OnProgress, when set, is invoked roughly every ProgressEvery
	// completed iterations. It must return quickly; the engine never
	// blocks on it.
	OnProgress    func(models.Progress)
	ProgressEvery int
}

// RunScenario executes the request's iterations and reduces them into a
// SimulationReport. Iterations are independent, so they fan out over the
// worker pool; a single reducer folds results in iteration order, which
// makes a seeded run bit-identical across executions regardless of worker
// scheduling. Cancelling the context stops dispatching and returns the
// fold of completed iterations with Partial set.
func (e *Engine) RunScenario(ctx context.Context, req ScenarioRequest) (*models.SimulationReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req.Iterations <= 0 {
		return nil, fmt.Errorf("%w: iterations must be positive", ErrInvalidArgument)
	}
	if req.Iterations > MaxIterations {
		return nil, fmt.Errorf("%w: iterations max is %d", ErrInvalidArgument, MaxIterations)
	}

	m, err := e.resolveMatchup(req.Formation, req.Tactic, req.OpponentFormation, req.OpponentTactic)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidArgument, err)
	}

	env := environment{
		crowdNoise:     clamp(req.CrowdNoise, minCrowdNoise, maxCrowdNoise),
		minutesElapsed: req.MinutesElapsed,
	}
	if env.minutesElapsed <= 0 {
		env.minutesElapsed = defaultMinutesElapsed
	}
	env.minutesElapsed = clamp(env.minutesElapsed, 0, matchMinutes)

	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	start := time.Now()

	results := make([]models.IterationResult, req.Iterations)
	completed := make([]bool, req.Iterations)

	workers := e.workers
	if workers > req.Iterations {
		workers = req.Iterations
	}

	workCh := make(chan int)
	tracker := newProgressTracker(req)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range workCh {
				rng := rand.New(rand.NewSource(seed ^ (int64(i)+1)*iterationSeedMix))
				results[i] = e.simulateIteration(rng, m, env)
				completed[i] = true
				tracker.record(results[i], start)
			}
		}()
	}

	cancelled := false
dispatch:
	for i := 0; i < req.Iterations; i++ {
		select {
		case <-ctx.Done():
			cancelled = true
			break dispatch
		case workCh <- i:
		}
	}
	close(workCh)
	wg.Wait()

	report := e.reduce(results, completed)
	report.Partial = cancelled && report.Iterations < req.Iterations
	report.Seed = seed
	report.Elapsed = time.Since(start)

	if report.Iterations == 0 {
		// Cancelled before anything finished: nothing to report.
		return nil, ctx.Err()
	}

	e.log.WithFields(map[string]interface{}{
		"iterations": report.Iterations,
		"partial":    report.Partial,
		"elapsed_ms": report.Elapsed.Milliseconds(),
	}).Debug("scenario run complete")

	return report, nil
}

// reduce folds completed iteration results, in iteration order, into the
// final report. The fold is a sum/max/count accumulation, so two batches
// reduced separately and merged by weighted average agree with a single
// pass over the concatenation.
func (e *Engine) reduce(results []models.IterationResult, completed []bool) *models.SimulationReport {
	acc := newAccumulator(len(e.teamA), len(e.teamB))
	comboAvgs := make([]float64, 0, len(results))

	for i, res := range results {
		if !completed[i] {
			continue
		}
		acc.add(res)
		comboAvgs = append(comboAvgs, (res.AvgPMUTeamA+res.AvgPMUTeamB)/2.0)
	}

	report := acc.finalize()
	if len(comboAvgs) > 1 {
		report.StdPMU = stat.StdDev(comboAvgs, nil)
	}
	report.PlayerMomentum = e.leaderboard(acc)
	return report
}

// accumulator carries the running fold state for one scenario run.
type accumulator struct {
	n           int
	sumAvgA     float64
	sumAvgB     float64
	sumGoalProb float64
	peakPMU     float64
	sumPressA   models.PressureProfile
	sumPressB   models.PressureProfile
	sumPlayerA  []float64
	sumPlayerB  []float64
}

func newAccumulator(teamASize, teamBSize int) *accumulator {
	return &accumulator{
		sumPlayerA: make([]float64, teamASize),
		sumPlayerB: make([]float64, teamBSize),
	}
}

func (a *accumulator) add(res models.IterationResult) {
	a.n++
	a.sumAvgA += res.AvgPMUTeamA
	a.sumAvgB += res.AvgPMUTeamB
	a.sumGoalProb += res.GoalProbability
	a.sumPressA.Possession += res.PressureA.Possession
	a.sumPressA.OffBall += res.PressureA.OffBall
	a.sumPressA.Transition += res.PressureA.Transition
	a.sumPressB.Possession += res.PressureB.Possession
	a.sumPressB.OffBall += res.PressureB.OffBall
	a.sumPressB.Transition += res.PressureB.Transition
	for i, pmu := range res.MomentumA {
		a.sumPlayerA[i] += pmu
		if pmu > a.peakPMU {
			a.peakPMU = pmu
		}
	}
	for i, pmu := range res.MomentumB {
		a.sumPlayerB[i] += pmu
		if pmu > a.peakPMU {
			a.peakPMU = pmu
		}
	}
}

// merge folds another accumulator in; the sums stay associative so batch
// runs combine exactly like a single pass.
func (a *accumulator) merge(b *accumulator) {
	a.n += b.n
	a.sumAvgA += b.sumAvgA
	a.sumAvgB += b.sumAvgB
	a.sumGoalProb += b.sumGoalProb
	a.sumPressA.Possession += b.sumPressA.Possession
	a.sumPressA.OffBall += b.sumPressA.OffBall
	a.sumPressA.Transition += b.sumPressA.Transition
	a.sumPressB.Possession += b.sumPressB.Possession
	a.sumPressB.OffBall += b.sumPressB.OffBall
	a.sumPressB.Transition += b.sumPressB.Transition
	for i := range a.sumPlayerA {
		a.sumPlayerA[i] += b.sumPlayerA[i]
	}
	for i := range a.sumPlayerB {
		a.sumPlayerB[i] += b.sumPlayerB[i]
	}
	if b.peakPMU > a.peakPMU {
		a.peakPMU = b.peakPMU
	}
}

func (a *accumulator) finalize() *models.SimulationReport {
	report := &models.SimulationReport{
		Iterations: a.n,
		PeakPMU:    a.peakPMU,
	}
	if a.n == 0 {
		return report
	}
	n := float64(a.n)
	report.AvgPMUTeamA = a.sumAvgA / n
	report.AvgPMUTeamB = a.sumAvgB / n
	report.AvgPMU = (report.AvgPMUTeamA + report.AvgPMUTeamB) / 2.0
	report.GoalProbability = a.sumGoalProb / n
	report.TeamAPressure = models.PressureProfile{
		Possession: a.sumPressA.Possession / n,
		OffBall:    a.sumPressA.OffBall / n,
		Transition: a.sumPressA.Transition / n,
	}
	report.TeamBPressure = models.PressureProfile{
		Possession: a.sumPressB.Possession / n,
		OffBall:    a.sumPressB.OffBall / n,
		Transition: a.sumPressB.Transition / n,
	}
	return report
}

// leaderboard ranks every rostered player by mean PMU descending and
// keeps the top entries. The stable sort breaks ties by roster
// definition order, so identical draws produce identical rankings.
func (e *Engine) leaderboard(acc *accumulator) []models.PlayerMomentum {
	if acc.n == 0 {
		return nil
	}
	n := float64(acc.n)

	entries := make([]models.PlayerMomentum, 0, len(e.roster))
	idxA, idxB := 0, 0
	for _, p := range e.roster {
		var mean float64
		if p.Team == "A" {
			mean = acc.sumPlayerA[idxA] / n
			idxA++
		} else {
			mean = acc.sumPlayerB[idxB] / n
			idxB++
		}
		entries = append(entries, models.PlayerMomentum{
			ID:       p.ID,
			Name:     p.Name,
			Position: p.Position,
			Team:     p.Team,
			PMU:      mean,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].PMU > entries[j].PMU
	})

	if len(entries) > leaderboardSize {
		entries = entries[:leaderboardSize]
	}
	return entries
}

// progressTracker throttles progress callbacks to every K iterations and
// keeps the cheap running metrics the callback carries.
type progressTracker struct {
	mu          sync.Mutex
	cb          func(models.Progress)
	every       int
	total       int
	completed   int
	sumCombo    float64
	sumGoalProb float64
}

func newProgressTracker(req ScenarioRequest) *progressTracker {
	every := req.ProgressEvery
	if every <= 0 {
		every = 50
	}
	return &progressTracker{
		cb:    req.OnProgress,
		every: every,
		total: req.Iterations,
	}
}

func (t *progressTracker) record(res models.IterationResult, start time.Time) {
	if t.cb == nil {
		return
	}
	t.mu.Lock()
	t.completed++
	t.sumCombo += (res.AvgPMUTeamA + res.AvgPMUTeamB) / 2.0
	t.sumGoalProb += res.GoalProbability
	fire := t.completed%t.every == 0 || t.completed == t.total
	progress := models.Progress{
		Completed:     t.completed,
		Total:         t.total,
		AvgPMUSoFar:   t.sumCombo / float64(t.completed),
		GoalProbSoFar: t.sumGoalProb / float64(t.completed),
		Elapsed:       time.Since(start),
	}
	t.mu.Unlock()

	if fire {
		t.cb(progress)
	}
}
