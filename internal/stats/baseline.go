package stats

import (
	"errors"
	"sync"

	"baseball-sim/internal/model"
)

// ErrEmptyLeague means the aggregate had no plate appearances to derive rates
// from. That is corrupt input statistics upstream, not a simulation condition.
var ErrEmptyLeague = errors.New("league baseline: no plate appearances in aggregate")

// Baseline holds cached league-average rates per outcome category, the
// odds-ratio model's reference point. Rates are per plate appearance and
// cover the full outcome set including the generic-out residual.
type Baseline struct {
	PA    int
	Rates map[model.Outcome]float64
}

// Rate returns the league rate for one category.
func (b Baseline) Rate(o model.Outcome) float64 {
	return b.Rates[o]
}

// ComputeBaseline aggregates counting stats (prior profile plus accumulated
// season) across every batter and derives per-category league rates.
func ComputeBaseline(players []model.Player) (Baseline, error) {
	var agg model.BattingStats
	for i := range players {
		agg.Add(players[i].PriorBatting)
		agg.Add(players[i].SeasonBatting)
	}
	if agg.PA <= 0 {
		return Baseline{}, ErrEmptyLeague
	}
	pa := float64(agg.PA)
	rates := map[model.Outcome]float64{
		model.OutcomeSingle:     float64(agg.Singles()) / pa,
		model.OutcomeDouble:     float64(agg.Doubles) / pa,
		model.OutcomeTriple:     float64(agg.Triples) / pa,
		model.OutcomeHomeRun:    float64(agg.HR) / pa,
		model.OutcomeWalk:       float64(agg.BB) / pa,
		model.OutcomeHitByPitch: float64(agg.HBP) / pa,
		model.OutcomeStrikeout:  float64(agg.SO) / pa,
		model.OutcomeSacFly:     float64(agg.SF) / pa,
		model.OutcomeDoublePlay: float64(agg.DP) / pa,
	}
	// Generic in-play out is the residual of everything else.
	sum := 0.0
	for _, r := range rates {
		sum += r
	}
	residual := 1 - sum
	if residual < 0 {
		residual = 0
	}
	rates[model.OutcomeInPlayOut] = residual
	return Baseline{PA: agg.PA, Rates: rates}, nil
}

// BaselineCache keeps the league baseline between explicit invalidations.
// The scheduler invalidates once per day after all merges settle, so staleness
// is bounded by one day and a partially merged aggregate is never observed.
type BaselineCache struct {
	mu    sync.RWMutex
	cur   Baseline
	valid bool
}

// Invalidate marks the cached baseline stale.
func (c *BaselineCache) Invalidate() {
	c.mu.Lock()
	c.valid = false
	c.mu.Unlock()
}

// Current returns the cached baseline, recomputing from the store on demand.
func (c *BaselineCache) Current(s *Store) (Baseline, error) {
	c.mu.RLock()
	if c.valid {
		b := c.cur
		c.mu.RUnlock()
		return b, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid {
		return c.cur, nil
	}
	b, err := ComputeBaseline(s.Players())
	if err != nil {
		return Baseline{}, err
	}
	c.cur = b
	c.valid = true
	return b, nil
}
