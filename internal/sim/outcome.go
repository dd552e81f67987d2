package sim

import (
	"errors"
	"fmt"
	"math"

	"baseball-sim/internal/model"
	"baseball-sim/internal/stats"
)

// ErrBadDistribution means the adjusted outcome rates failed to renormalize to
// a finite positive sum. That signals corrupt input statistics upstream and is
// fatal for the affected game, never silently recovered.
var ErrBadDistribution = errors.New("outcome distribution failed to renormalize")

// DefaultFloor is the small positive probability floor applied per category to
// avoid zero-probability lock-in.
const DefaultFloor = 1e-4

// Weighted is one category of a normalized outcome distribution.
type Weighted struct {
	Outcome model.Outcome
	P       float64
}

// Model computes the odds-ratio at-bat distribution for a matchup and samples
// from it. A single Model is shared by every game; it holds no per-game state.
type Model struct {
	Floor float64
}

// NewModel returns a model with the given probability floor (0 uses the default).
func NewModel(floor float64) *Model {
	if floor <= 0 {
		floor = DefaultFloor
	}
	return &Model{Floor: floor}
}

// batterRate returns the batter's per-PA rate for one category, with ok=false
// when the denominator is zero (no plate appearances on record).
func batterRate(b model.BattingStats, o model.Outcome) (float64, bool) {
	if b.PA <= 0 {
		return 0, false
	}
	pa := float64(b.PA)
	switch o {
	case model.OutcomeSingle:
		return float64(b.Singles()) / pa, true
	case model.OutcomeDouble:
		return float64(b.Doubles) / pa, true
	case model.OutcomeTriple:
		return float64(b.Triples) / pa, true
	case model.OutcomeHomeRun:
		return float64(b.HR) / pa, true
	case model.OutcomeWalk:
		return float64(b.BB) / pa, true
	case model.OutcomeHitByPitch:
		return float64(b.HBP) / pa, true
	case model.OutcomeStrikeout:
		return float64(b.SO) / pa, true
	case model.OutcomeSacFly:
		return float64(b.SF) / pa, true
	case model.OutcomeDoublePlay:
		return float64(b.DP) / pa, true
	}
	return 0, false
}

// pitcherRate returns the pitcher's per-batter-faced allowed rate for one
// category. Categories pitchers don't record (SF, DP) report ok=false and fall
// back to a neutral factor.
func pitcherRate(p model.PitchingStats, o model.Outcome) (float64, bool) {
	if p.BF <= 0 {
		return 0, false
	}
	bf := float64(p.BF)
	switch o {
	case model.OutcomeSingle:
		return float64(p.Singles()) / bf, true
	case model.OutcomeDouble:
		return float64(p.Doubles) / bf, true
	case model.OutcomeTriple:
		return float64(p.Triples) / bf, true
	case model.OutcomeHomeRun:
		return float64(p.HR) / bf, true
	case model.OutcomeWalk:
		return float64(p.BB) / bf, true
	case model.OutcomeHitByPitch:
		return float64(p.HBP) / bf, true
	case model.OutcomeStrikeout:
		return float64(p.SO) / bf, true
	}
	return 0, false
}

// batterPositive marks the categories a good batter (or a tired pitcher)
// inflates. Context multipliers apply asymmetrically: scaling every category
// equally would cancel out in renormalization.
func batterPositive(o model.Outcome) bool {
	return o.OnBase()
}

// Distribution computes the normalized matchup distribution over the full
// outcome set. fatigue is the pitcher's current workload multiplier
// (1.0 = fresh); it inflates batter-positive categories.
func (m *Model) Distribution(batter, pitcher *model.Player, base stats.Baseline, fatigue float64) ([]Weighted, error) {
	if fatigue < 1.0 {
		fatigue = 1.0
	}
	bCtx := ContextFactor(batter)
	pCtx := ContextFactor(pitcher)

	cats := model.Outcomes()
	out := make([]Weighted, len(cats))
	sum := 0.0
	for i, c := range cats {
		league := base.Rate(c)

		bFac := 1.0 // zero denominator substitutes the league rate unmodified
		if r, ok := batterRate(batter.PriorBatting, c); ok && league > 0 {
			bFac = r / league
		}
		pFac := 1.0
		if r, ok := pitcherRate(pitcher.PriorPitching, c); ok && league > 0 {
			pFac = r / league
		}

		adj := league * bFac * pFac
		if batterPositive(c) {
			// strong batter and tired pitcher push these up, strong pitcher down
			adj *= bCtx * fatigue
			if pCtx > 0 {
				adj /= pCtx
			}
		} else if c == model.OutcomeStrikeout {
			// strong pitcher pushes strikeouts up, strong batter down
			adj *= pCtx
			if bCtx > 0 {
				adj /= bCtx
			}
		}

		if adj < m.Floor {
			adj = m.Floor
		}
		out[i] = Weighted{Outcome: c, P: adj}
		sum += adj
	}

	if !(sum > 0) || math.IsInf(sum, 0) || math.IsNaN(sum) {
		return nil, fmt.Errorf("%w: sum=%v batter=%d pitcher=%d", ErrBadDistribution, sum, batter.ID, pitcher.ID)
	}
	for i := range out {
		out[i].P /= sum
	}
	return out, nil
}

// Sample draws one at-bat outcome from the matchup distribution using the
// provided source. With a fixed seed and fixed inputs the draw is
// reproducible across runs.
func (m *Model) Sample(batter, pitcher *model.Player, base stats.Baseline, fatigue float64, rng RandomSource) (model.Outcome, error) {
	dist, err := m.Distribution(batter, pitcher, base, fatigue)
	if err != nil {
		return "", err
	}
	roll := rng.Float64()
	acc := 0.0
	for _, w := range dist {
		acc += w.P
		if roll < acc {
			return w.Outcome, nil
		}
	}
	// float accumulation can leave a sliver below 1.0; the last category owns it
	return dist[len(dist)-1].Outcome, nil
}
