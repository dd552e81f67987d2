package model

// Half of an inning.
type Half string

const (
	TopHalf    Half = "TOP"
	BottomHalf Half = "BOTTOM"
)

// AtBatEvent is one row of play-by-play output. Delivered through a
// caller-supplied callback so the engine stays output-medium-agnostic.
type AtBatEvent struct {
	Inning     int      `json:"inning"`
	Half       Half     `json:"half"`
	Batter     PlayerID `json:"batter"`
	Pitcher    PlayerID `json:"pitcher"`
	Outcome    Outcome  `json:"outcome"`
	RunsScored int      `json:"runs_scored"`
	// Bases is the base state after the play resolved.
	Bases     BaseState `json:"bases"`
	AwayScore int       `json:"away_score"`
	HomeScore int       `json:"home_score"`
}

// StatDelta is the immutable per-player counting-stat change from one game.
// Deltas are additive: merging them is commutative and associative, so the
// season totals are independent of game completion order.
type StatDelta struct {
	Batting  BattingStats  `json:"batting"`
	Pitching PitchingStats `json:"pitching"`
	// ConditionDelta is the fatigue cost of this game's workload (negative).
	ConditionDelta float64 `json:"condition_delta,omitempty"`
}

// Add accumulates another delta into this one.
func (d *StatDelta) Add(o StatDelta) {
	d.Batting.Add(o.Batting)
	d.Pitching.Add(o.Pitching)
	d.ConditionDelta += o.ConditionDelta
}

// BoxScore is the immutable per-game result record.
type BoxScore struct {
	GameID string `json:"game_id,omitempty"`

	Away string `json:"away"`
	Home string `json:"home"`

	// Line scores hold runs per inning; index 0 is the 1st inning.
	AwayLine []int `json:"away_line"`
	HomeLine []int `json:"home_line"`

	AwayRuns int `json:"away_runs"`
	HomeRuns int `json:"home_runs"`
	AwayHits int `json:"away_hits"`
	HomeHits int `json:"home_hits"`

	Innings int `json:"innings"`

	WinningPitcher PlayerID `json:"winning_pitcher,omitempty"`
	LosingPitcher  PlayerID `json:"losing_pitcher,omitempty"`

	// Deltas carry every participating player's counting-stat change.
	Deltas map[PlayerID]*StatDelta `json:"deltas"`
}

// Winner returns the winning team name. Ties cannot happen in a finished game.
func (b *BoxScore) Winner() string {
	if b.AwayRuns > b.HomeRuns {
		return b.Away
	}
	return b.Home
}

// Loser returns the losing team name.
func (b *BoxScore) Loser() string {
	if b.AwayRuns > b.HomeRuns {
		return b.Home
	}
	return b.Away
}
