package season

import (
	"fmt"
	"sync"

	"baseball-sim/internal/game"
	"baseball-sim/internal/model"
	"baseball-sim/internal/roster"
	"baseball-sim/internal/sim"
	"baseball-sim/internal/stats"
)

// Config tunes a season run.
type Config struct {
	GamesPerTeam int `yaml:"games_per_team" json:"games_per_team"`
	// Workers bounds the parallel games per day. 0 means one worker per matchup.
	Workers     int `yaml:"workers" json:"workers"`
	RotationLen int `yaml:"rotation_len" json:"rotation_len"`

	// Seed makes the season reproducible. 0 draws a random seed.
	Seed uint64 `yaml:"seed" json:"seed"`
	// SharedRNG trades worker-local generators for one locked generator,
	// buying bit-for-bit cross-run reproducibility at some lock contention.
	SharedRNG bool `yaml:"shared_rng" json:"shared_rng"`

	Game   game.Config  `yaml:"game" json:"game"`
	Injury InjuryConfig `yaml:"injury" json:"injury"`
}

func (c Config) withDefaults() Config {
	if c.GamesPerTeam <= 0 {
		c.GamesPerTeam = 162
	}
	if c.RotationLen <= 0 {
		c.RotationLen = 5
	}
	return c
}

// Scheduler drives a season day by day: run the day's independent games on a
// bounded worker pool, merge results into the shared store as sole consumer of
// the completion channel, update standings and injury clocks, advance the day
// pointer. Control operations act between day boundaries only; a game in
// progress always runs to completion.
type Scheduler struct {
	cfg      Config
	store    *stats.Store
	engine   *game.Engine
	baseline *stats.BaselineCache
	sink     Sink
	atBat    game.EventFn

	schedule []Day
	teams    []string

	mu      sync.Mutex
	cond    *sync.Cond
	day     int
	records map[string]Record
	paused  bool
	steps   int
	busy    bool
	stopped bool
	started bool
	exited  bool
	err     error
	done    chan struct{}

	sharedRNG sim.RandomSource
}

// NewScheduler builds a paused scheduler over the given store and team list.
// Call Start (or Step) to begin simulating.
func NewScheduler(store *stats.Store, teams []string, cfg Config, sink Sink, atBat game.EventFn) (*Scheduler, error) {
	cfg = cfg.withDefaults()
	schedule, err := RoundRobin(teams, cfg.GamesPerTeam)
	if err != nil {
		return nil, err
	}
	if sink == nil {
		sink = NopSink{}
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(len(teams))*1e9 + 7 // arbitrary but stable fallback
	}
	s := &Scheduler{
		cfg:      cfg,
		store:    store,
		engine:   game.NewEngine(sim.NewModel(0), cfg.Game),
		baseline: &stats.BaselineCache{},
		sink:     sink,
		atBat:    atBat,
		schedule: schedule,
		teams:    teams,
		records:  make(map[string]Record, len(teams)),
		paused:   true,
		done:     make(chan struct{}),
	}
	for _, t := range teams {
		s.records[t] = Record{}
	}
	if cfg.SharedRNG {
		s.sharedRNG = sim.NewLockedRNG(sim.NewSeededRNG(seed))
	}
	s.cond = sync.NewCond(&s.mu)
	return s, nil
}

// Start begins (or resumes) continuous simulation. Idempotent; starting a
// finished or stopped season is a no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loopExitedLocked() {
		return
	}
	s.ensureLoopLocked()
	s.paused = false
	s.cond.Broadcast()
}

// Pause stops after the current day settles. Pausing while paused is a no-op.
func (s *Scheduler) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = true
	s.steps = 0
	s.cond.Broadcast()
}

// Resume is Start by another name, matching the control-surface contract.
func (s *Scheduler) Resume() { s.Start() }

// Step simulates exactly n days and then auto-pauses, even if more days
// remain. Step with n <= 0, or on a finished or stopped season, is a no-op.
func (s *Scheduler) Step(n int) {
	if n <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loopExitedLocked() {
		return
	}
	s.ensureLoopLocked()
	s.paused = true
	s.steps = n
	s.cond.Broadcast()
}

// Stop ends the run. The in-flight day (if any) finishes settling first, so
// standings and stat state are never corrupted. Idempotent.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	s.cond.Broadcast()
	if !s.started {
		s.started = true
		s.exited = true
		close(s.done)
	}
}

// WaitIdle blocks until the scheduler settles: no day in flight, no pending
// steps, and either paused or finished. Useful for synchronous callers that
// step the season and then inspect state.
func (s *Scheduler) WaitIdle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for !s.exited && (s.busy || s.steps > 0 || (!s.paused && s.started && !s.finishedLocked())) {
		s.cond.Wait()
	}
}

func (s *Scheduler) finishedLocked() bool {
	return s.stopped || s.day >= len(s.schedule) || s.err != nil
}

// loopExitedLocked reports whether the run loop has already returned, so late
// control calls can land as no-ops instead of parking state nobody will clear.
func (s *Scheduler) loopExitedLocked() bool {
	return s.exited
}

// Done is closed when the run loop exits (stopped or schedule exhausted).
func (s *Scheduler) Done() <-chan struct{} { return s.done }

// Err reports the first fatal error the run loop hit, if any.
func (s *Scheduler) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Day returns the current day pointer (days completed so far).
func (s *Scheduler) Day() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.day
}

// Paused reports whether the scheduler is idle between days.
func (s *Scheduler) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused && s.steps == 0
}

// TotalDays returns the schedule length.
func (s *Scheduler) TotalDays() int { return len(s.schedule) }

// Standings returns the current standings snapshot.
func (s *Scheduler) Standings() []Standing {
	s.mu.Lock()
	recs := make(map[string]Record, len(s.records))
	for t, r := range s.records {
		recs[t] = r
	}
	s.mu.Unlock()
	return ComputeStandings(recs)
}

// Injuries returns the current league injury report.
func (s *Scheduler) Injuries() []InjurySnapshot { return InjuryList(s.store) }

func (s *Scheduler) ensureLoopLocked() {
	if s.started {
		return
	}
	s.started = true
	go s.loop()
}

func (s *Scheduler) loop() {
	defer close(s.done)
	for {
		s.mu.Lock()
		for s.paused && s.steps == 0 && !s.stopped {
			s.cond.Wait()
		}
		if s.stopped || s.day >= len(s.schedule) || s.err != nil {
			s.steps = 0
			s.exited = true
			s.cond.Broadcast()
			s.mu.Unlock()
			return
		}
		day := s.day
		matchups := s.schedule[day]
		s.busy = true
		s.mu.Unlock()

		err := s.simDay(day, matchups)

		s.mu.Lock()
		s.busy = false
		if err != nil && s.err == nil {
			s.err = err
		}
		s.day++
		if s.steps > 0 {
			s.steps--
			if s.steps == 0 {
				s.paused = true
			}
		}
		finished := s.day >= len(s.schedule) || s.err != nil
		if finished {
			s.steps = 0
			s.exited = true
		}
		s.cond.Broadcast()
		s.mu.Unlock()
		if finished {
			return
		}
	}
}

type gameResult struct {
	matchup Matchup
	box     *model.BoxScore
	err     error
}

// simDay executes one day: pre-game recovery and injury rolls, the day's
// games on the worker pool, merges, standings, baseline invalidation.
func (s *Scheduler) simDay(day int, matchups []Matchup) error {
	s.sink.DayStarted(day, matchups)

	dayRNG := s.rngFor(day, len(matchups))
	advanceRecovery(s.store, s.cfg.Injury, dayRNG, s.sink, day)
	rollInjuries(s.store, s.cfg.Injury, dayRNG, s.sink, day)

	base, err := s.baseline.Current(s.store)
	if err != nil {
		return fmt.Errorf("day %d: %w", day, err)
	}

	workers := s.cfg.Workers
	if workers <= 0 || workers > len(matchups) {
		workers = len(matchups)
	}
	tasks := make(chan int)
	results := make(chan gameResult)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			rng := s.workerRNG(day, worker)
			for i := range tasks {
				m := matchups[i]
				box, err := s.playMatchup(m, day, base, rng)
				results <- gameResult{matchup: m, box: box, err: err}
			}
		}(w)
	}
	go func() {
		for i := range matchups {
			tasks <- i
		}
		close(tasks)
		wg.Wait()
		close(results)
	}()

	// sole consumer: merges never interleave on the same player's counters.
	// On a merge error, keep draining so the workers can finish and exit.
	var dayErr error
	for res := range results {
		if res.err != nil {
			s.sink.GameFailed(day, res.matchup, res.err)
			continue
		}
		if dayErr != nil {
			continue
		}
		if err := s.store.ApplyGameDeltas(res.box.Deltas); err != nil {
			dayErr = fmt.Errorf("day %d merge: %w", day, err)
			continue
		}
		s.recordResult(res.box)
		s.sink.GameCompleted(day, res.box)
	}
	if dayErr != nil {
		return dayErr
	}

	// recompute only after every merge has settled, never mid-aggregate
	s.baseline.Invalidate()

	s.sink.DayCompleted(day, s.Standings())
	return nil
}

func (s *Scheduler) playMatchup(m Matchup, day int, base stats.Baseline, rng sim.RandomSource) (*model.BoxScore, error) {
	away, err := roster.Build(s.store, m.Away, s.cfg.RotationLen)
	if err != nil {
		return nil, err
	}
	home, err := roster.Build(s.store, m.Home, s.cfg.RotationLen)
	if err != nil {
		return nil, err
	}
	return s.engine.Play(s.store, base, away, home, day, rng, s.atBat)
}

func (s *Scheduler) recordResult(box *model.BoxScore) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := s.records[box.Winner()]
	w.Wins++
	s.records[box.Winner()] = w
	l := s.records[box.Loser()]
	l.Losses++
	s.records[box.Loser()] = l
}

// rngFor returns the generator for day-level rolls (injuries, recovery).
func (s *Scheduler) rngFor(day, _ int) sim.RandomSource {
	if s.sharedRNG != nil {
		return s.sharedRNG
	}
	return sim.NewSeededRNG(s.seed() + uint64(day)*1_000_003)
}

// workerRNG returns a per-worker generator, or the shared locked one when
// bit-for-bit reproducibility across runs was requested.
func (s *Scheduler) workerRNG(day, worker int) sim.RandomSource {
	if s.sharedRNG != nil {
		return s.sharedRNG
	}
	return sim.NewSeededRNG(s.seed() + uint64(day)*1_000_003 + uint64(worker)*7919 + 1)
}

func (s *Scheduler) seed() uint64 {
	if s.cfg.Seed != 0 {
		return s.cfg.Seed
	}
	return uint64(len(s.teams))*1e9 + 7
}
