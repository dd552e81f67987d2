package model

// PlayerID is a stable identity for one player for the lifetime of a season.
// Zero is reserved for "no player" (empty base, no decision yet).
type PlayerID int64

// Role distinguishes the two stat profiles a player can carry.
type Role string

const (
	RoleBatter  Role = "BATTER"
	RolePitcher Role = "PITCHER"
)

// InjuryStatus tracks where a player sits on the availability ladder.
type InjuryStatus string

const (
	Healthy  InjuryStatus = "HEALTHY"
	DayToDay InjuryStatus = "DAY_TO_DAY"
	LongTerm InjuryStatus = "LONG_TERM" // on the injured list with a remaining-days counter
)

// Injury captures a player's current injury state. DaysRemaining counts down
// once per simulated day; reaching zero transitions the player back to Healthy.
type Injury struct {
	Status        InjuryStatus `json:"status"`
	Description   string       `json:"description,omitempty"`
	DaysRemaining int          `json:"days_remaining,omitempty"`
	// PerfPenalty is a lingering multiplier applied to the player's context
	// factor after a substantial (30+ day) injury. 0 means no penalty.
	PerfPenalty float64 `json:"perf_penalty,omitempty"`
}

// BattingStats are counting stats. Rates for the outcome model are always
// derived from these at read time so merged game deltas flow through directly.
type BattingStats struct {
	G       int `json:"g"`
	PA      int `json:"pa"`
	AB      int `json:"ab"`
	R       int `json:"r"`
	H       int `json:"h"`
	Doubles int `json:"2b"`
	Triples int `json:"3b"`
	HR      int `json:"hr"`
	RBI     int `json:"rbi"`
	BB      int `json:"bb"`
	SO      int `json:"so"`
	HBP     int `json:"hbp"`
	SF      int `json:"sf"`
	DP      int `json:"dp"`
	SB      int `json:"sb"`
	CS      int `json:"cs"`
}

// Add accumulates another stat line into this one.
func (b *BattingStats) Add(o BattingStats) {
	b.G += o.G
	b.PA += o.PA
	b.AB += o.AB
	b.R += o.R
	b.H += o.H
	b.Doubles += o.Doubles
	b.Triples += o.Triples
	b.HR += o.HR
	b.RBI += o.RBI
	b.BB += o.BB
	b.SO += o.SO
	b.HBP += o.HBP
	b.SF += o.SF
	b.DP += o.DP
	b.SB += o.SB
	b.CS += o.CS
}

// Singles is derived; only extra-base hits are counted separately.
func (b BattingStats) Singles() int {
	return b.H - b.Doubles - b.Triples - b.HR
}

// PitchingStats are counting stats from the pitcher's side of the plate.
// Outs is innings pitched expressed as outs recorded (3 per inning).
type PitchingStats struct {
	G       int `json:"g"`
	GS      int `json:"gs"`
	W       int `json:"w"`
	L       int `json:"l"`
	SV      int `json:"sv"`
	BF      int `json:"bf"` // batters faced
	Outs    int `json:"outs"`
	R       int `json:"r"`
	H       int `json:"h"`
	Doubles int `json:"2b"`
	Triples int `json:"3b"`
	HR      int `json:"hr"`
	BB      int `json:"bb"`
	SO      int `json:"so"`
	HBP     int `json:"hbp"`
}

// Add accumulates another pitching line into this one.
func (p *PitchingStats) Add(o PitchingStats) {
	p.G += o.G
	p.GS += o.GS
	p.W += o.W
	p.L += o.L
	p.SV += o.SV
	p.BF += o.BF
	p.Outs += o.Outs
	p.R += o.R
	p.H += o.H
	p.Doubles += o.Doubles
	p.Triples += o.Triples
	p.HR += o.HR
	p.BB += o.BB
	p.SO += o.SO
	p.HBP += o.HBP
}

// Singles is derived from total hits allowed.
func (p PitchingStats) Singles() int {
	return p.H - p.Doubles - p.Triples - p.HR
}

// Player bundles identity, observable rate inputs, and mutable season state.
// Counting stats and condition are mutated by game merges; injury clocks are
// mutated by the season scheduler between days.
type Player struct {
	ID   PlayerID `json:"id"`
	Name string   `json:"name"`
	Team string   `json:"team"`
	Role Role     `json:"role"`
	Age  int      `json:"age"`

	// Salary is informational; the simulation core never reads it.
	Salary float64 `json:"salary,omitempty"`

	// Condition is a 0-100 rest/fatigue scalar. 100 is fully rested.
	Condition float64 `json:"condition"`

	// Streak is a hot/cold multiplier centered at 1.0, nudged by recent results.
	Streak float64 `json:"streak"`

	Injury Injury `json:"injury"`

	// Prior holds the rate-bearing profile the outcome model reads
	// (historical stats loaded at season start, never mutated in-season).
	PriorBatting  BattingStats  `json:"prior_batting"`
	PriorPitching PitchingStats `json:"prior_pitching"`

	// Season holds accumulated current-season counting stats.
	SeasonBatting  BattingStats  `json:"season_batting"`
	SeasonPitching PitchingStats `json:"season_pitching"`
}

// Available reports whether a player can be written into a lineup today.
// Day-to-day players stay available and play through it at reduced
// effectiveness; only a long-term list stint takes them off the card.
func (p *Player) Available() bool {
	return p.Injury.Status != LongTerm
}
