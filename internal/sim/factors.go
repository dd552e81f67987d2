package sim

import "baseball-sim/internal/model"

// peakAge is the center of the aging curve. Production climbs toward it and
// declines past it; the slopes follow the preprocessor's age adjustment.
const peakAge = 27

// ageFactor returns the age-curve multiplier for a player's context factor.
func ageFactor(age int) float64 {
	if age <= 0 {
		return 1.0
	}
	d := age - peakAge
	switch {
	case d < 0:
		// young players approach peak at ~0.6% per year
		f := 1.0 + float64(d)*0.006
		if f < 0.85 {
			f = 0.85
		}
		return f
	case d > 0:
		// decline past peak at ~0.9% per year
		f := 1.0 - float64(d)*0.009
		if f < 0.70 {
			f = 0.70
		}
		return f
	}
	return 1.0
}

// injuryFactor applies the lingering performance penalty from a substantial
// injury plus a day-to-day discount while the player is gutting it out.
// Game outcomes only; derived value metrics never fold this in.
func injuryFactor(p *model.Player) float64 {
	f := 1.0 - p.Injury.PerfPenalty
	if p.Injury.Status == model.DayToDay {
		f *= 0.95
	}
	if f < 0.5 {
		f = 0.5
	}
	return f
}

// streakFactor folds the hot/cold multiplier in, clamped to a narrow band so
// a streak nudges rather than dominates the matchup.
func streakFactor(p *model.Player) float64 {
	s := p.Streak
	if s == 0 {
		return 1.0
	}
	if s < 0.9 {
		s = 0.9
	}
	if s > 1.1 {
		s = 1.1
	}
	return s
}

// conditionFactor discounts short rest. Fully rested is neutral; a fully
// gassed player loses up to 10%.
func conditionFactor(p *model.Player) float64 {
	c := p.Condition
	if c <= 0 {
		return 0.90
	}
	if c >= 100 {
		return 1.0
	}
	return 0.90 + 0.10*(c/100)
}

// ContextFactor combines age curve, injury penalty, rest, and streak into the
// single per-player multiplier the odds-ratio model applies to positive outcomes.
func ContextFactor(p *model.Player) float64 {
	return ageFactor(p.Age) * injuryFactor(p) * conditionFactor(p) * streakFactor(p)
}

// FatigueFactor converts a pitcher's in-game workload into a rate inflation
// applied to hitter-positive categories once condition drops past the start
// threshold. Mirrors the tired-pitcher OBP bump the matchup model expects.
func FatigueFactor(conditionUsed, startPct, rate float64) float64 {
	if conditionUsed <= startPct {
		return 1.0
	}
	return 1.0 + (conditionUsed-startPct)*rate
}
