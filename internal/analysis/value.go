package analysis

import (
	"baseball-sim/internal/model"
	"baseball-sim/internal/stats"
)

// runsPerWin converts a run differential into wins. The conventional
// ten-runs-a-win shorthand is accurate enough at season scale.
const runsPerWin = 10.0

// Linear weights (runs above average per event) for the batting side.
var runValues = map[model.Outcome]float64{
	model.OutcomeSingle:     0.47,
	model.OutcomeDouble:     0.77,
	model.OutcomeTriple:     1.04,
	model.OutcomeHomeRun:    1.40,
	model.OutcomeWalk:       0.31,
	model.OutcomeHitByPitch: 0.33,
	model.OutcomeStrikeout:  -0.09,
	model.OutcomeDoublePlay: -0.46,
}

// PlayerValue is a player-level season summary you can use for ranking.
// It carries both raw rate stats and a single wins-above-replacement style
// number derived from linear weights against the league baseline.
type PlayerValue struct {
	Player model.PlayerID `json:"player"`
	Name   string         `json:"name"`
	Team   string         `json:"team"`
	Role   model.Role     `json:"role"`

	// Batting rates (zero for pure pitchers).
	AVG float64 `json:"avg"`
	OBP float64 `json:"obp"`
	SLG float64 `json:"slg"`
	OPS float64 `json:"ops"`

	// Pitching rates (zero for pure batters). RA9 is runs allowed per nine
	// innings; WHIP is walks plus hits per inning pitched.
	RA9  float64 `json:"ra9"`
	WHIP float64 `json:"whip"`

	// RunsAboveAvg is the linear-weights run contribution versus a
	// league-average player given the same opportunities.
	RunsAboveAvg float64 `json:"runs_above_avg"`

	// WAR is RunsAboveAvg plus a replacement-level offset, in wins.
	WAR float64 `json:"war"`
}

// ComputeValue summarizes one player's season against the league baseline.
// Two-way players are valued on both sides; the run contributions add.
func ComputeValue(p *model.Player, base stats.Baseline) PlayerValue {
	v := PlayerValue{
		Player: p.ID,
		Name:   p.Name,
		Team:   p.Team,
		Role:   p.Role,
	}
	v.battingSide(p.SeasonBatting, base)
	v.pitchingSide(p.SeasonPitching, base)
	v.WAR = v.RunsAboveAvg/runsPerWin + v.replacementOffset(p)
	return v
}

func (v *PlayerValue) battingSide(b model.BattingStats, base stats.Baseline) {
	if b.PA == 0 {
		return
	}
	if b.AB > 0 {
		v.AVG = float64(b.H) / float64(b.AB)
		tb := b.Singles() + 2*b.Doubles + 3*b.Triples + 4*b.HR
		v.SLG = float64(tb) / float64(b.AB)
	}
	v.OBP = float64(b.H+b.BB+b.HBP) / float64(b.PA)
	v.OPS = v.OBP + v.SLG

	// runs above what a league-average batter produces in the same PA
	counts := map[model.Outcome]int{
		model.OutcomeSingle:     b.Singles(),
		model.OutcomeDouble:     b.Doubles,
		model.OutcomeTriple:     b.Triples,
		model.OutcomeHomeRun:    b.HR,
		model.OutcomeWalk:       b.BB,
		model.OutcomeHitByPitch: b.HBP,
		model.OutcomeStrikeout:  b.SO,
		model.OutcomeDoublePlay: b.DP,
	}
	pa := float64(b.PA)
	for o, w := range runValues {
		v.RunsAboveAvg += w * (float64(counts[o]) - base.Rate(o)*pa)
	}
	// baserunning value: a steal gains about a fifth of a run, a caught
	// stealing costs about double that
	v.RunsAboveAvg += 0.2*float64(b.SB) - 0.4*float64(b.CS)
}

func (v *PlayerValue) pitchingSide(p model.PitchingStats, base stats.Baseline) {
	if p.BF == 0 {
		return
	}
	if p.Outs > 0 {
		ip := float64(p.Outs) / 3
		v.RA9 = float64(p.R) / ip * 9
		v.WHIP = float64(p.BB+p.H) / ip
	}
	// league runs per batter faced, from the run values of the baseline mix
	leagueRunsPerBF := 0.0
	for o, w := range runValues {
		leagueRunsPerBF += w * base.Rate(o)
	}
	actual := 0.0
	counts := map[model.Outcome]int{
		model.OutcomeSingle:     p.Singles(),
		model.OutcomeDouble:     p.Doubles,
		model.OutcomeTriple:     p.Triples,
		model.OutcomeHomeRun:    p.HR,
		model.OutcomeWalk:       p.BB,
		model.OutcomeHitByPitch: p.HBP,
		model.OutcomeStrikeout:  p.SO,
	}
	for o, w := range runValues {
		actual += w * float64(counts[o])
	}
	// pitchers are credited with runs prevented, so the sign flips
	v.RunsAboveAvg += leagueRunsPerBF*float64(p.BF) - actual
}

// replacementOffset credits playing time itself: an average regular is worth
// roughly two wins over a replacement-level fill-in across a full season.
func (v *PlayerValue) replacementOffset(p *model.Player) float64 {
	bShare := float64(p.SeasonBatting.PA) / 650
	pShare := float64(p.SeasonPitching.BF) / 800
	return 2.0 * (bShare + pShare)
}
