package season

import (
	"math"

	"baseball-sim/internal/model"
	"baseball-sim/internal/sim"
	"baseball-sim/internal/stats"
)

// InjuryConfig controls daily injury rolls and recovery.
type InjuryConfig struct {
	// Season-long injury rates by role (fraction of players hurt per season).
	PitcherRate float64 `yaml:"pitcher_rate" json:"pitcher_rate"`
	BatterRate  float64 `yaml:"batter_rate" json:"batter_rate"`
	// AgeAdjust is the extra season-long rate per year of age above 20.
	AgeAdjust float64 `yaml:"age_adjust" json:"age_adjust"`
	// SeasonDays converts season-long rates to per-day odds.
	SeasonDays int `yaml:"season_days" json:"season_days"`
	// DayToDayMax is the longest absence still treated as day-to-day rather
	// than a long-term list stint.
	DayToDayMax int `yaml:"day_to_day_max" json:"day_to_day_max"`
	// ConditionRecovery is the daily condition regain for a rested player.
	ConditionRecovery float64 `yaml:"condition_recovery" json:"condition_recovery"`
}

func (c InjuryConfig) withDefaults() InjuryConfig {
	if c.PitcherRate <= 0 {
		c.PitcherRate = 0.275
	}
	if c.BatterRate <= 0 {
		c.BatterRate = 0.137
	}
	if c.AgeAdjust <= 0 {
		c.AgeAdjust = 0.00328
	}
	if c.SeasonDays <= 0 {
		c.SeasonDays = 162
	}
	if c.DayToDayMax <= 0 {
		c.DayToDayMax = 5
	}
	if c.ConditionRecovery <= 0 {
		c.ConditionRecovery = 20
	}
	return c
}

// Injury description pools, bucketed by absence length in days.
var (
	pitcherInjuries = map[string][2]int{
		"UCL Tear":                {120, 210},
		"Rotator Cuff Tear":       {60, 120},
		"Shoulder Impingement":    {30, 60},
		"Forearm Strain":          {15, 30},
		"Elbow Inflammation":      {15, 30},
		"Biceps Tendinitis":       {15, 25},
		"Blister":                 {5, 12},
		"Finger Strain":           {7, 15},
		"Back Spasms":             {7, 14},
		"Neck Stiffness":          {5, 10},
	}
	batterInjuries = map[string][2]int{
		"Hamstring Tear":     {30, 60},
		"Broken Wrist":       {30, 50},
		"Oblique Strain":     {15, 30},
		"Quad Strain":        {15, 25},
		"Ankle Sprain":       {15, 30},
		"Back Spasms":        {7, 14},
		"Finger Sprain":      {7, 14},
		"Hip Soreness":       {5, 12},
		"Foot Contusion":     {5, 10},
		"Illness":            {3, 7},
	}
)

// perDayOdds converts a season-long injury rate into a per-day probability.
func perDayOdds(seasonRate float64, seasonDays int) float64 {
	if seasonRate <= 0 {
		return 0
	}
	if seasonRate >= 1 {
		seasonRate = 0.99
	}
	return 1 - math.Pow(1-seasonRate, 1/float64(seasonDays))
}

// pickInjury draws a description whose typical duration brackets days.
func pickInjury(pool map[string][2]int, days int, rng sim.RandomSource) string {
	best := ""
	// deterministic-ish pick: closest bracket wins, rng breaks ties by skip
	bestDist := math.MaxInt32
	for name, span := range pool {
		mid := (span[0] + span[1]) / 2
		dist := mid - days
		if dist < 0 {
			dist = -dist
		}
		if dist < bestDist || (dist == bestDist && rng.Float64() < 0.5) {
			best = name
			bestDist = dist
		}
	}
	if best == "" {
		return "Undisclosed Injury"
	}
	return best
}

// rollInjuries runs the daily injury check for every healthy player. Older
// players get hurt more often; substantial injuries leave a lingering
// performance penalty. Emits one snapshot per new injury.
func rollInjuries(store *stats.Store, cfg InjuryConfig, rng sim.RandomSource, sink Sink, day int) {
	cfg = cfg.withDefaults()
	store.MutateAll(func(p *model.Player) {
		if p.Injury.Status != model.Healthy {
			return
		}
		rate := cfg.BatterRate
		pool := batterInjuries
		avgLen := 15.0
		if p.Role == model.RolePitcher {
			rate = cfg.PitcherRate
			pool = pitcherInjuries
			avgLen = 32.0
		}
		if p.Age > 20 {
			rate += float64(p.Age-20) * cfg.AgeAdjust
		}
		if rng.Float64() > perDayOdds(rate, cfg.SeasonDays) {
			return
		}
		// absence length: half-normal around the role average
		days := int(math.Abs((rng.Float64()+rng.Float64()-1)*avgLen) + avgLen/2)
		if days < 1 {
			days = 1
		}
		p.Injury = model.Injury{
			Status:        model.DayToDay,
			Description:   pickInjury(pool, days, rng),
			DaysRemaining: days,
		}
		if days > cfg.DayToDayMax {
			p.Injury.Status = model.LongTerm
		}
		if days >= 30 {
			// lasting 0-20% performance hit from a substantial injury
			p.Injury.PerfPenalty += rng.Float64() * 0.2
			if p.Injury.PerfPenalty > 0.4 {
				p.Injury.PerfPenalty = 0.4
			}
		}
		sink.InjuryUpdated(day, InjurySnapshot{
			Player:        p.ID,
			Name:          p.Name,
			Team:          p.Team,
			Status:        p.Injury.Status,
			Description:   p.Injury.Description,
			DaysRemaining: p.Injury.DaysRemaining,
		})
	})
}

// advanceRecovery decrements every injured player's clock and returns anyone
// whose counter reaches zero to health. Also regenerates condition and drifts
// hot/cold streaks, age-slowed, for the whole league.
func advanceRecovery(store *stats.Store, cfg InjuryConfig, rng sim.RandomSource, sink Sink, day int) {
	cfg = cfg.withDefaults()
	store.MutateAll(func(p *model.Player) {
		if p.Injury.Status != model.Healthy {
			p.Injury.DaysRemaining--
			if p.Injury.DaysRemaining <= 0 {
				p.Injury = model.Injury{Status: model.Healthy, PerfPenalty: p.Injury.PerfPenalty}
				sink.InjuryUpdated(day, InjurySnapshot{
					Player: p.ID,
					Name:   p.Name,
					Team:   p.Team,
					Status: model.Healthy,
				})
			}
			return
		}
		// rest: older players recover more slowly
		rec := cfg.ConditionRecovery * (1 - float64(p.Age-20)/100)
		if rec < 2 {
			rec = 2
		}
		p.Condition += rec
		if p.Condition > 100 {
			p.Condition = 100
		}
		// streak drifts back toward neutral with a small daily jitter
		p.Streak += (1.0-p.Streak)*0.25 + (rng.Float64()-0.5)*0.04
	})
}

// InjuryList returns the current league-wide injury report.
func InjuryList(store *stats.Store) []InjurySnapshot {
	var out []InjurySnapshot
	for _, p := range store.Players() {
		if p.Injury.Status == model.Healthy {
			continue
		}
		out = append(out, InjurySnapshot{
			Player:        p.ID,
			Name:          p.Name,
			Team:          p.Team,
			Status:        p.Injury.Status,
			Description:   p.Injury.Description,
			DaysRemaining: p.Injury.DaysRemaining,
		})
	}
	return out
}
