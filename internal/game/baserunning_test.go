package game

import (
	"testing"

	"baseball-sim/internal/model"
)

const (
	r1 = model.PlayerID(11)
	r2 = model.PlayerID(12)
	r3 = model.PlayerID(13)
	bt = model.PlayerID(99)
)

func TestWalkForcesOnlyForcedRunners(t *testing.T) {
	// Runner on third with first open: nobody is forced.
	bs := model.BaseState{Third: r3}
	next, scored, outs := Advance(bs, model.OutcomeWalk, bt, BaserunningConfig{})
	if len(scored) != 0 || outs != 0 {
		t.Fatalf("scored=%v outs=%d, want none", scored, outs)
	}
	if next.First != bt || next.Third != r3 {
		t.Fatalf("state = %+v, want batter on first, runner held at third", next)
	}
}

func TestWalkWithBasesLoadedScoresOne(t *testing.T) {
	bs := model.BaseState{First: r1, Second: r2, Third: r3}
	next, scored, _ := Advance(bs, model.OutcomeWalk, bt, BaserunningConfig{})
	if len(scored) != 1 || scored[0] != r3 {
		t.Fatalf("scored = %v, want just the runner from third", scored)
	}
	if next.First != bt || next.Second != r1 || next.Third != r2 {
		t.Fatalf("state = %+v after bases-loaded walk", next)
	}
}

func TestSingleScoresSecondAndThird(t *testing.T) {
	bs := model.BaseState{First: r1, Second: r2, Third: r3}
	next, scored, _ := Advance(bs, model.OutcomeSingle, bt, BaserunningConfig{})
	if len(scored) != 2 {
		t.Fatalf("scored %d runners, want 2", len(scored))
	}
	if next.First != bt || next.Second != r1 || next.Third != 0 {
		t.Fatalf("state = %+v, want batter on first, r1 on second", next)
	}
}

func TestAggressiveSingleTakesThirdWithTwoOuts(t *testing.T) {
	bs := model.BaseState{First: r1, Outs: 2}
	next, _, _ := Advance(bs, model.OutcomeSingle, bt, BaserunningConfig{Aggressive: true})
	if next.Third != r1 {
		t.Fatalf("state = %+v, want runner from first on third", next)
	}
}

func TestHomeRunClearsBases(t *testing.T) {
	bs := model.BaseState{First: r1, Second: r2, Third: r3}
	next, scored, outs := Advance(bs, model.OutcomeHomeRun, bt, BaserunningConfig{})
	if len(scored) != 4 || outs != 0 {
		t.Fatalf("scored=%v outs=%d, want 4 and 0", scored, outs)
	}
	if !next.Empty() {
		t.Fatalf("bases not cleared: %+v", next)
	}
}

func TestDoublePlayRemovesLeadRunner(t *testing.T) {
	bs := model.BaseState{First: r1, Second: r2}
	next, scored, outs := Advance(bs, model.OutcomeDoublePlay, bt, BaserunningConfig{})
	if outs != 2 {
		t.Fatalf("outs = %d, want 2", outs)
	}
	if len(scored) != 0 {
		t.Fatalf("scored = %v, want none", scored)
	}
	if next.Second != 0 || next.First != r1 {
		t.Fatalf("state = %+v, want lead runner removed, first held", next)
	}
}

func TestDoublePlayWithBasesEmptyIsOneOut(t *testing.T) {
	_, _, outs := Advance(model.BaseState{}, model.OutcomeDoublePlay, bt, BaserunningConfig{})
	if outs != 1 {
		t.Fatalf("outs = %d, want 1 with nobody to double off", outs)
	}
}

func TestSacFlyScoresThirdOnlyBeforeTwoOuts(t *testing.T) {
	bs := model.BaseState{Third: r3, Outs: 1}
	next, scored, outs := Advance(bs, model.OutcomeSacFly, bt, BaserunningConfig{})
	if outs != 1 || len(scored) != 1 || scored[0] != r3 {
		t.Fatalf("outs=%d scored=%v, want sac fly run", outs, scored)
	}
	if next.Third != 0 {
		t.Fatalf("third not cleared: %+v", next)
	}

	bs = model.BaseState{Third: r3, Outs: 2}
	_, scored, _ = Advance(bs, model.OutcomeSacFly, bt, BaserunningConfig{})
	if len(scored) != 0 {
		t.Fatalf("scored = %v with two outs, want none", scored)
	}
}

func TestRunsNeverExceedRunnersPlusOne(t *testing.T) {
	states := []model.BaseState{
		{},
		{First: r1},
		{First: r1, Second: r2},
		{First: r1, Second: r2, Third: r3},
		{Third: r3},
		{Second: r2, Third: r3},
	}
	for _, bs := range states {
		for _, o := range model.Outcomes() {
			_, scored, outs := Advance(bs, o, bt, BaserunningConfig{})
			if len(scored) > bs.Runners()+1 {
				t.Errorf("%s from %+v scored %d with %d on", o, bs, len(scored), bs.Runners())
			}
			if outs > 2 {
				t.Errorf("%s from %+v recorded %d outs on one play", o, bs, outs)
			}
		}
	}
}
