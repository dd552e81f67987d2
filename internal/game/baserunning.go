package game

import "baseball-sim/internal/model"

// BaserunningConfig tunes the deterministic advancement heuristics.
type BaserunningConfig struct {
	// Aggressive sends the runner on first to third on a two-out single.
	Aggressive bool `yaml:"aggressive" json:"aggressive"`
}

// Advance resolves runner movement for one at-bat outcome and returns the new
// state, the players who crossed the plate, and the outs recorded on the play.
//
// It is deterministic: all randomness lives in the outcome model. The returned
// state keeps the caller's out count untouched; outs recorded here are returned
// separately because ending the half-inning is the game engine's decision.
// Runs scored never exceed runners-on-base + 1 and outs never exceed 2.
func Advance(bs model.BaseState, outcome model.Outcome, batter model.PlayerID, cfg BaserunningConfig) (model.BaseState, []model.PlayerID, int) {
	var scored []model.PlayerID
	outs := 0
	next := model.BaseState{Outs: bs.Outs}

	score := func(id model.PlayerID) {
		if id != 0 {
			scored = append(scored, id)
		}
	}

	switch outcome {
	case model.OutcomeWalk, model.OutcomeHitByPitch:
		// Batter takes first; runners move only when forced from behind.
		next = bs
		if bs.First != 0 {
			if bs.Second != 0 {
				if bs.Third != 0 {
					score(bs.Third)
					next.Third = 0
				}
				next.Third = bs.Second
			}
			next.Second = bs.First
		}
		next.First = batter

	case model.OutcomeSingle:
		score(bs.Third)
		score(bs.Second)
		if bs.First != 0 {
			if cfg.Aggressive && bs.Outs == 2 {
				next.Third = bs.First
			} else {
				next.Second = bs.First
			}
		}
		next.First = batter

	case model.OutcomeDouble:
		score(bs.Third)
		score(bs.Second)
		if bs.First != 0 {
			next.Third = bs.First
		}
		next.Second = batter

	case model.OutcomeTriple:
		score(bs.Third)
		score(bs.Second)
		score(bs.First)
		next.Third = batter

	case model.OutcomeHomeRun:
		score(bs.Third)
		score(bs.Second)
		score(bs.First)
		score(batter)

	case model.OutcomeStrikeout, model.OutcomeInPlayOut:
		next = bs
		outs = 1

	case model.OutcomeDoublePlay:
		// Lead runner and batter are out; remaining runners hold.
		next = bs
		outs = 1
		switch {
		case bs.Third != 0:
			next.Third = 0
			outs = 2
		case bs.Second != 0:
			next.Second = 0
			outs = 2
		case bs.First != 0:
			next.First = 0
			outs = 2
		}

	case model.OutcomeSacFly:
		next = bs
		outs = 1
		if bs.Third != 0 && bs.Outs < 2 {
			score(bs.Third)
			next.Third = 0
		}

	default:
		next = bs
	}

	return next, scored, outs
}
