package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"baseball-sim/internal/model"
	"baseball-sim/internal/roster"
	"baseball-sim/internal/sim"
	"baseball-sim/internal/stats"
)

// ErrInningCap means a game hit the configured extra-innings ceiling while
// still tied. With real statistics this is effectively unreachable; it guards
// against unbounded simulation on degenerate all-tie random data.
var ErrInningCap = errors.New("game exceeded max innings while tied")

// Config tunes a single game's mechanics.
type Config struct {
	// MaxInnings caps extra innings. 0 uses the default of 30.
	MaxInnings int `yaml:"max_innings" json:"max_innings"`

	// FatigueStart is the fraction of a pitcher's expected workload at which
	// fatigue begins to inflate batter-positive rates.
	FatigueStart float64 `yaml:"fatigue_start" json:"fatigue_start"`
	// FatigueRate is the rate inflation per unit of workload past FatigueStart.
	FatigueRate float64 `yaml:"fatigue_rate" json:"fatigue_rate"`
	// FatigueSub is the fatigue factor at which the engine requests a reliever.
	FatigueSub float64 `yaml:"fatigue_sub" json:"fatigue_sub"`

	// ExtraInningsRunner places the previous batter on second from the 10th on.
	ExtraInningsRunner bool `yaml:"extra_innings_runner" json:"extra_innings_runner"`

	// StealAttempts enables pre-pitch stolen-base situations.
	StealAttempts bool `yaml:"steal_attempts" json:"steal_attempts"`

	Baserunning BaserunningConfig `yaml:"baserunning" json:"baserunning"`
}

// withDefaults fills zero values without mutating the receiver.
func (c Config) withDefaults() Config {
	if c.MaxInnings <= 0 {
		c.MaxInnings = 30
	}
	if c.FatigueStart <= 0 {
		c.FatigueStart = 0.70
	}
	if c.FatigueRate <= 0 {
		c.FatigueRate = 0.25
	}
	if c.FatigueSub <= 0 {
		c.FatigueSub = 1.06
	}
	return c
}

// EventFn receives every at-bat event. A nil EventFn discards play-by-play.
type EventFn func(model.AtBatEvent)

// Engine drives single games to completion. It is stateless across games and
// safe to share between a day's parallel workers; per-game state lives in run.
type Engine struct {
	model *sim.Model
	cfg   Config
}

// NewEngine builds a game engine around an outcome model.
func NewEngine(m *sim.Model, cfg Config) *Engine {
	return &Engine{model: m, cfg: cfg.withDefaults()}
}

// side is the per-team in-game state.
type side struct {
	team       *roster.Team
	batIdx     int
	pitcher    model.PlayerID
	pitcherBF  int
	expectedBF float64
	lastBatter model.PlayerID
	runs       int
	hits       int
	line       []int
}

// run owns one game's mutable state from first pitch to box score.
type run struct {
	eng            *Engine
	store          *stats.Store
	base           stats.Baseline
	rng            sim.RandomSource
	events         EventFn
	deltas         map[model.PlayerID]*model.StatDelta
	away           *side
	home           *side
	inning         int
	winningPitcher model.PlayerID
	losingPitcher  model.PlayerID
}

// Play simulates one full game between two lineup cards and returns the
// immutable box score. gameNum selects the rotation starter. Execution is
// strictly sequential within a game; concurrency lives a level up.
func (e *Engine) Play(store *stats.Store, base stats.Baseline, away, home *roster.Team, gameNum int, rng sim.RandomSource, events EventFn) (*model.BoxScore, error) {
	r := &run{
		eng:    e,
		store:  store,
		base:   base,
		rng:    rng,
		events: events,
		deltas: make(map[model.PlayerID]*model.StatDelta),
		inning: 1,
	}
	var err error
	if r.away, err = r.newSide(away, gameNum); err != nil {
		return nil, err
	}
	if r.home, err = r.newSide(home, gameNum); err != nil {
		return nil, err
	}

	for {
		if r.inning > e.cfg.MaxInnings {
			return nil, fmt.Errorf("%w: %s at %s after %d", ErrInningCap, away.Name, home.Name, e.cfg.MaxInnings)
		}
		if err := r.halfInning(r.away, r.home, model.TopHalf); err != nil {
			return nil, err
		}
		// home team skips the bottom of the 9th (or later) with the lead
		if r.inning >= 9 && r.home.runs > r.away.runs {
			break
		}
		if err := r.halfInning(r.home, r.away, model.BottomHalf); err != nil {
			return nil, err
		}
		if r.inning >= 9 && r.away.runs != r.home.runs {
			break
		}
		r.inning++
	}

	return r.finish(gameNum)
}

func (r *run) newSide(t *roster.Team, gameNum int) (*side, error) {
	if len(t.Lineup) < roster.LineupSize {
		return nil, fmt.Errorf("%w: team %q", roster.ErrEmptyLineup, t.Name)
	}
	starter, err := t.Starter(gameNum)
	if err != nil {
		return nil, err
	}
	s := &side{team: t, pitcher: starter}
	s.expectedBF = r.expectedBF(starter)
	pd := r.delta(starter)
	pd.Pitching.G++
	pd.Pitching.GS++
	return s, nil
}

// expectedBF estimates a pitcher's per-appearance workload in batters faced.
func (r *run) expectedBF(id model.PlayerID) float64 {
	p, ok := r.store.Read(id)
	if !ok || p.PriorPitching.G == 0 || p.PriorPitching.BF == 0 {
		return 18 // about 4.5 innings for an unknown arm
	}
	bf := float64(p.PriorPitching.BF) / float64(p.PriorPitching.G)
	if bf < 3 {
		bf = 3
	}
	return bf
}

func (r *run) delta(id model.PlayerID) *model.StatDelta {
	d, ok := r.deltas[id]
	if !ok {
		d = &model.StatDelta{}
		r.deltas[id] = d
	}
	return d
}

// fatigue returns the defense's current pitcher fatigue multiplier.
func (r *run) fatigue(def *side) float64 {
	used := float64(def.pitcherBF) / def.expectedBF
	return sim.FatigueFactor(used, r.eng.cfg.FatigueStart, r.eng.cfg.FatigueRate)
}

// checkPitchingChange swaps in a reliever once the current arm is past the
// substitution bound. An empty bullpen is a normal state: the pitcher stays
// in and keeps degrading rather than failing the game.
func (r *run) checkPitchingChange(def *side) {
	if r.fatigue(def) < r.eng.cfg.FatigueSub {
		return
	}
	relief, ok := def.team.NextReliever()
	if !ok {
		// empty pen: the tired arm stays in and keeps degrading
		return
	}
	def.pitcher = relief
	def.pitcherBF = 0
	def.expectedBF = r.expectedBF(relief)
	r.delta(relief).Pitching.G++
}

// stealAttempt resolves a pre-pitch stolen-base situation: runner on first,
// second open. Attempt and success odds scale from the runner's SB/CS profile.
func (r *run) stealAttempt(off, def *side, bs *model.BaseState) {
	if !r.eng.cfg.StealAttempts || bs.First == 0 || bs.Second != 0 {
		return
	}
	runner, ok := r.store.Read(bs.First)
	if !ok {
		return
	}
	b := runner.PriorBatting
	onBase := b.H + b.BB
	attempts := b.SB + b.CS
	if onBase == 0 || attempts == 0 {
		return
	}
	// steal attempts per time on base, nudged up to land near observed rates
	if r.rng.Float64() > float64(attempts)/float64(onBase)*1.7 {
		return
	}
	if r.rng.Float64() <= float64(b.SB)/float64(attempts) {
		bs.Second = bs.First
		bs.First = 0
		r.delta(runner.ID).Batting.SB++
	} else {
		bs.First = 0
		bs.Outs++
		r.delta(runner.ID).Batting.CS++
		// the out belongs to the pitcher's line like any other
		r.delta(def.pitcher).Pitching.Outs++
	}
}

// halfInning runs the offense until three accumulated outs (or a walk-off).
func (r *run) halfInning(off, def *side, half model.Half) error {
	bs := model.BaseState{}
	if r.eng.cfg.ExtraInningsRunner && r.inning > 9 && off.lastBatter != 0 {
		bs.Second = off.lastBatter
	}
	inningRuns := 0

	for bs.Outs < 3 {
		r.checkPitchingChange(def)
		r.stealAttempt(off, def, &bs)
		if bs.Outs >= 3 {
			break // caught stealing can end the half-inning
		}

		batter, err := r.nextBatter(off)
		if err != nil {
			return err
		}
		pitcher, ok := r.store.Read(def.pitcher)
		if !ok {
			return fmt.Errorf("game: pitcher %d missing from store", def.pitcher)
		}

		outcome, err := r.eng.model.Sample(&batter, &pitcher, r.base, r.fatigue(def), r.rng)
		if err != nil {
			return err
		}

		next, scored, outs := Advance(bs, outcome, batter.ID, r.eng.cfg.Baserunning)
		// a double play with two already down only records the third out
		if bs.Outs+outs > 3 {
			outs = 3 - bs.Outs
		}
		next.Outs = bs.Outs + outs
		bs = next
		runs := len(scored)

		r.recordAtBat(off, def, batter.ID, outcome, scored, outs)
		inningRuns += runs
		off.lastBatter = batter.ID

		if r.events != nil {
			r.events(model.AtBatEvent{
				Inning:     r.inning,
				Half:       half,
				Batter:     batter.ID,
				Pitcher:    def.pitcher,
				Outcome:    outcome,
				RunsScored: runs,
				Bases:      bs,
				AwayScore:  r.away.runs,
				HomeScore:  r.home.runs,
			})
		}

		// walk-off: the home team wins the moment it takes a late lead
		if half == model.BottomHalf && r.inning >= 9 && r.home.runs > r.away.runs {
			break
		}
	}

	off.line = append(off.line, inningRuns)
	return nil
}

func (r *run) nextBatter(off *side) (model.Player, error) {
	id := off.team.Lineup[off.batIdx%len(off.team.Lineup)]
	off.batIdx++
	p, ok := r.store.Read(id)
	if !ok {
		return model.Player{}, fmt.Errorf("%w: batter %d missing from store", roster.ErrEmptyLineup, id)
	}
	return p, nil
}

// recordAtBat books the counting-stat deltas and score movement for one play.
func (r *run) recordAtBat(off, def *side, batter model.PlayerID, outcome model.Outcome, scored []model.PlayerID, outs int) {
	runs := len(scored)
	bd := &r.delta(batter).Batting
	bd.PA++
	if outcome.CountsAsAB() {
		bd.AB++
	}
	switch outcome {
	case model.OutcomeSingle:
		bd.H++
	case model.OutcomeDouble:
		bd.H++
		bd.Doubles++
	case model.OutcomeTriple:
		bd.H++
		bd.Triples++
	case model.OutcomeHomeRun:
		bd.H++
		bd.HR++
	case model.OutcomeWalk:
		bd.BB++
	case model.OutcomeHitByPitch:
		bd.HBP++
	case model.OutcomeStrikeout:
		bd.SO++
	case model.OutcomeSacFly:
		bd.SF++
	case model.OutcomeDoublePlay:
		bd.DP++
	}
	bd.RBI += runs
	for _, id := range scored {
		r.delta(id).Batting.R++
	}

	pd := &r.delta(def.pitcher).Pitching
	pd.BF++
	pd.Outs += outs
	pd.R += runs
	switch outcome {
	case model.OutcomeSingle, model.OutcomeDouble, model.OutcomeTriple, model.OutcomeHomeRun:
		pd.H++
		if outcome == model.OutcomeDouble {
			pd.Doubles++
		}
		if outcome == model.OutcomeTriple {
			pd.Triples++
		}
		if outcome == model.OutcomeHomeRun {
			pd.HR++
		}
		off.hits++
	case model.OutcomeWalk:
		pd.BB++
	case model.OutcomeHitByPitch:
		pd.HBP++
	case model.OutcomeStrikeout:
		pd.SO++
	}
	def.pitcherBF++
	r.delta(def.pitcher).ConditionDelta -= 1.5 // per-batter workload cost
	r.delta(batter).ConditionDelta -= 0.1

	// pitcher-of-record tracking: the last lead change decides W/L
	if runs > 0 {
		wasTrailingOrTied := off.runs <= r.otherRuns(off)
		off.runs += runs
		if wasTrailingOrTied && off.runs > r.otherRuns(off) {
			r.winningPitcher = off.pitcherOfRecord()
			r.losingPitcher = def.pitcher
		}
	}
}

func (r *run) otherRuns(s *side) int {
	if s == r.away {
		return r.home.runs
	}
	return r.away.runs
}

// pitcherOfRecord is the side's current pitcher (the one resting while the
// side bats); good enough for a sim without mid-inning offensive substitution.
func (s *side) pitcherOfRecord() model.PlayerID { return s.pitcher }

func (r *run) finish(gameNum int) (*model.BoxScore, error) {
	// credit decisions
	if r.winningPitcher != 0 {
		r.delta(r.winningPitcher).Pitching.W++
	}
	if r.losingPitcher != 0 {
		r.delta(r.losingPitcher).Pitching.L++
	}
	winner := r.home
	if r.away.runs > r.home.runs {
		winner = r.away
	}
	// a closing reliever who is not the winning pitcher earns a save in a
	// three-run-or-closer final
	if winner.pitcher != r.winningPitcher && abs(r.away.runs-r.home.runs) <= 3 {
		r.delta(winner.pitcher).Pitching.SV++
	}
	for _, id := range r.away.team.Lineup {
		r.delta(id).Batting.G++
	}
	for _, id := range r.home.team.Lineup {
		r.delta(id).Batting.G++
	}

	box := &model.BoxScore{
		GameID:         uuid.NewString(),
		Away:           r.away.team.Name,
		Home:           r.home.team.Name,
		AwayLine:       r.away.line,
		HomeLine:       r.home.line,
		AwayRuns:       r.away.runs,
		HomeRuns:       r.home.runs,
		AwayHits:       r.away.hits,
		HomeHits:       r.home.hits,
		Innings:        r.inning,
		WinningPitcher: r.winningPitcher,
		LosingPitcher:  r.losingPitcher,
		Deltas:         r.deltas,
	}
	if box.AwayRuns == box.HomeRuns {
		return nil, fmt.Errorf("game %d finished tied, engine invariant broken", gameNum)
	}
	return box, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
