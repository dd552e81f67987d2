package model

// Outcome is one discrete at-bat result. Keep these values stable; they are
// intended for event output and CSV export.
type Outcome string

const (
	OutcomeSingle     Outcome = "1B"
	OutcomeDouble     Outcome = "2B"
	OutcomeTriple     Outcome = "3B"
	OutcomeHomeRun    Outcome = "HR"
	OutcomeWalk       Outcome = "BB"
	OutcomeHitByPitch Outcome = "HBP"
	OutcomeStrikeout  Outcome = "SO"
	OutcomeSacFly     Outcome = "SF"
	OutcomeDoublePlay Outcome = "DP"
	// OutcomeInPlayOut is the residual generic out (ground out, fly out, line out).
	OutcomeInPlayOut Outcome = "IPO"
)

// Outcomes lists every category in a fixed order. The sampler walks this
// slice, so the ordering is part of run-to-run reproducibility with a fixed seed.
func Outcomes() []Outcome {
	return []Outcome{
		OutcomeSingle, OutcomeDouble, OutcomeTriple, OutcomeHomeRun,
		OutcomeWalk, OutcomeHitByPitch, OutcomeStrikeout,
		OutcomeSacFly, OutcomeDoublePlay, OutcomeInPlayOut,
	}
}

// IsHit reports whether the outcome counts as a base hit.
func (o Outcome) IsHit() bool {
	switch o {
	case OutcomeSingle, OutcomeDouble, OutcomeTriple, OutcomeHomeRun:
		return true
	}
	return false
}

// OnBase reports whether the batter reached base safely.
func (o Outcome) OnBase() bool {
	return o.IsHit() || o == OutcomeWalk || o == OutcomeHitByPitch
}

// Outs returns the outs charged directly by the outcome itself.
// Never more than 2: the half-inning ceiling belongs to the game engine.
func (o Outcome) Outs() int {
	switch o {
	case OutcomeStrikeout, OutcomeSacFly, OutcomeInPlayOut:
		return 1
	case OutcomeDoublePlay:
		return 2
	}
	return 0
}

// BatterBases returns how many bases the batter takes on a safe outcome.
func (o Outcome) BatterBases() int {
	switch o {
	case OutcomeSingle, OutcomeWalk, OutcomeHitByPitch:
		return 1
	case OutcomeDouble:
		return 2
	case OutcomeTriple:
		return 3
	case OutcomeHomeRun:
		return 4
	}
	return 0
}

// CountsAsAB reports whether the plate appearance charges an official at-bat.
func (o Outcome) CountsAsAB() bool {
	switch o {
	case OutcomeWalk, OutcomeHitByPitch, OutcomeSacFly:
		return false
	}
	return true
}
