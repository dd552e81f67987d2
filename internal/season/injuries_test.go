package season

import (
	"testing"

	"baseball-sim/internal/model"
)

// fixedRNG always returns the same value.
type fixedRNG struct{ v float64 }

func (f fixedRNG) Float64() float64 { return f.v }

func TestPerDayOdds(t *testing.T) {
	if got := perDayOdds(0, 162); got != 0 {
		t.Errorf("zero rate gives %v", got)
	}
	low := perDayOdds(0.137, 162)
	high := perDayOdds(0.275, 162)
	if low <= 0 || high >= 1 {
		t.Fatalf("odds out of range: %v, %v", low, high)
	}
	if high <= low {
		t.Errorf("higher season rate gave lower daily odds: %v <= %v", high, low)
	}
}

func TestRollInjuriesCertainHit(t *testing.T) {
	store := leagueStore(t, "A")
	// rng at zero makes every roll succeed.
	rollInjuries(store, InjuryConfig{PitcherRate: 0.99, BatterRate: 0.99}, fixedRNG{0}, NopSink{}, 0)

	for _, p := range store.Players() {
		if p.Injury.Status == model.Healthy {
			t.Fatalf("player %d survived a certain injury roll", p.ID)
		}
		if p.Injury.DaysRemaining < 1 {
			t.Fatalf("player %d injured for %d days", p.ID, p.Injury.DaysRemaining)
		}
		if p.Injury.Description == "" {
			t.Fatalf("player %d injured without a description", p.ID)
		}
	}
}

func TestRollInjuriesSkipsAlreadyInjured(t *testing.T) {
	store := leagueStore(t, "A")
	store.Mutate(1, func(p *model.Player) {
		p.Injury = model.Injury{Status: model.LongTerm, Description: "Hamstring Tear", DaysRemaining: 40}
	})
	rollInjuries(store, InjuryConfig{PitcherRate: 0.99, BatterRate: 0.99}, fixedRNG{0}, NopSink{}, 0)

	p, _ := store.Read(1)
	if p.Injury.DaysRemaining != 40 || p.Injury.Description != "Hamstring Tear" {
		t.Fatalf("existing injury was rerolled: %+v", p.Injury)
	}
}

func TestAdvanceRecoveryHealsAtZero(t *testing.T) {
	store := leagueStore(t, "A")
	store.Mutate(1, func(p *model.Player) {
		p.Injury = model.Injury{Status: model.DayToDay, Description: "Illness", DaysRemaining: 1, PerfPenalty: 0.1}
	})
	store.Mutate(2, func(p *model.Player) {
		p.Injury = model.Injury{Status: model.LongTerm, Description: "Broken Wrist", DaysRemaining: 10}
	})

	var healed []model.PlayerID
	sink := &recordingSink{onInjury: func(s InjurySnapshot) {
		if s.Status == model.Healthy {
			healed = append(healed, s.Player)
		}
	}}
	advanceRecovery(store, InjuryConfig{}, fixedRNG{0.5}, sink, 5)

	p1, _ := store.Read(1)
	if p1.Injury.Status != model.Healthy {
		t.Fatalf("player 1 still %s", p1.Injury.Status)
	}
	if p1.Injury.PerfPenalty != 0.1 {
		t.Errorf("lingering penalty lost on recovery: %v", p1.Injury.PerfPenalty)
	}
	p2, _ := store.Read(2)
	if p2.Injury.Status != model.LongTerm || p2.Injury.DaysRemaining != 9 {
		t.Fatalf("player 2 clock = %+v, want 9 days left", p2.Injury)
	}
	if len(healed) != 1 || healed[0] != 1 {
		t.Errorf("healed notifications = %v, want just player 1", healed)
	}
}

func TestAdvanceRecoveryRegainsCondition(t *testing.T) {
	store := leagueStore(t, "A")
	store.Mutate(1, func(p *model.Player) { p.Condition = 40 })
	advanceRecovery(store, InjuryConfig{}, fixedRNG{0.5}, NopSink{}, 0)

	p, _ := store.Read(1)
	if p.Condition <= 40 {
		t.Errorf("condition did not recover: %v", p.Condition)
	}
	if p.Condition > 100 {
		t.Errorf("condition overshot: %v", p.Condition)
	}
}

func TestInjuryList(t *testing.T) {
	store := leagueStore(t, "A")
	if got := InjuryList(store); len(got) != 0 {
		t.Fatalf("fresh league has %d injuries", len(got))
	}
	store.Mutate(3, func(p *model.Player) {
		p.Injury = model.Injury{Status: model.DayToDay, Description: "Back Spasms", DaysRemaining: 2}
	})
	got := InjuryList(store)
	if len(got) != 1 || got[0].Player != 3 || got[0].Description != "Back Spasms" {
		t.Fatalf("InjuryList = %+v", got)
	}
}

// recordingSink forwards injury events to a callback.
type recordingSink struct {
	NopSink
	onInjury func(InjurySnapshot)
}

func (r *recordingSink) InjuryUpdated(_ int, s InjurySnapshot) {
	if r.onInjury != nil {
		r.onInjury(s)
	}
}
