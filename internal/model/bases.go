package model

// BaseState is the occupancy of the three bases plus the out count for the
// current half-inning. Zero PlayerID means the base is empty.
//
// Outs stays in 0..2 while the half-inning is live; reaching 3 is a terminal
// transition owned by the game engine, not a steady state represented here.
type BaseState struct {
	First  PlayerID `json:"first,omitempty"`
	Second PlayerID `json:"second,omitempty"`
	Third  PlayerID `json:"third,omitempty"`
	Outs   int      `json:"outs"`
}

// Runners counts occupied bases.
func (b BaseState) Runners() int {
	n := 0
	if b.First != 0 {
		n++
	}
	if b.Second != 0 {
		n++
	}
	if b.Third != 0 {
		n++
	}
	return n
}

// Loaded reports bases loaded.
func (b BaseState) Loaded() bool {
	return b.First != 0 && b.Second != 0 && b.Third != 0
}

// Empty reports no runners on.
func (b BaseState) Empty() bool {
	return b.Runners() == 0
}

// Describe renders the runner configuration for play-by-play output.
func (b BaseState) Describe() string {
	switch {
	case b.Empty():
		return "bases empty"
	case b.Loaded():
		return "bases loaded"
	}
	s := ""
	add := func(name string) {
		if s != "" {
			s += ", "
		}
		s += name
	}
	if b.First != 0 {
		add("1st")
	}
	if b.Second != 0 {
		add("2nd")
	}
	if b.Third != 0 {
		add("3rd")
	}
	if b.Runners() == 1 {
		return "runner on " + s
	}
	return "runners on " + s
}
