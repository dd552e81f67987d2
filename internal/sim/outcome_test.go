package sim

import (
	"math"
	"testing"

	"baseball-sim/internal/model"
	"baseball-sim/internal/stats"
)

func testBaseline() stats.Baseline {
	return stats.Baseline{
		PA: 10000,
		Rates: map[model.Outcome]float64{
			model.OutcomeSingle:     0.145,
			model.OutcomeDouble:     0.045,
			model.OutcomeTriple:     0.004,
			model.OutcomeHomeRun:    0.031,
			model.OutcomeWalk:       0.085,
			model.OutcomeHitByPitch: 0.011,
			model.OutcomeStrikeout:  0.220,
			model.OutcomeSacFly:     0.007,
			model.OutcomeDoublePlay: 0.018,
			model.OutcomeInPlayOut:  0.434,
		},
	}
}

func averageBatter() *model.Player {
	return &model.Player{
		ID: 1, Age: 27, Condition: 100, Streak: 1.0,
		Injury: model.Injury{Status: model.Healthy},
		PriorBatting: model.BattingStats{
			PA: 600, AB: 540, H: 135, Doubles: 27, Triples: 2, HR: 19,
			BB: 51, SO: 132, HBP: 7, SF: 4, DP: 11,
		},
	}
}

func averagePitcher() *model.Player {
	return &model.Player{
		ID: 2, Age: 27, Condition: 100, Streak: 1.0, Role: model.RolePitcher,
		Injury: model.Injury{Status: model.Healthy},
		PriorPitching: model.PitchingStats{
			G: 30, BF: 750, Outs: 540, H: 165, Doubles: 33, Triples: 3,
			HR: 23, BB: 64, SO: 165, HBP: 8, R: 85,
		},
	}
}

func TestDistributionNormalized(t *testing.T) {
	m := NewModel(0)
	dist, err := m.Distribution(averageBatter(), averagePitcher(), testBaseline(), 1.0)
	if err != nil {
		t.Fatalf("Distribution: %v", err)
	}
	if len(dist) != len(model.Outcomes()) {
		t.Fatalf("got %d categories, want %d", len(dist), len(model.Outcomes()))
	}
	sum := 0.0
	for _, w := range dist {
		if w.P < 0 {
			t.Errorf("%s has negative probability %v", w.Outcome, w.P)
		}
		sum += w.P
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("probabilities sum to %v, want 1", sum)
	}
}

func TestDistributionZeroPAUsesLeagueRates(t *testing.T) {
	m := NewModel(0)
	rookie := &model.Player{ID: 3, Age: 27, Condition: 100, Streak: 1.0,
		Injury: model.Injury{Status: model.Healthy}}
	base := testBaseline()

	dist, err := m.Distribution(rookie, averagePitcher(), base, 1.0)
	if err != nil {
		t.Fatalf("Distribution: %v", err)
	}
	// With no batter history, shape should follow the pitcher-adjusted league
	// rates; the HR category must not collapse to the floor.
	for _, w := range dist {
		if w.Outcome == model.OutcomeHomeRun && w.P < base.Rate(model.OutcomeHomeRun)/3 {
			t.Errorf("HR probability %v collapsed despite neutral fallback", w.P)
		}
	}
}

func TestFatigueInflatesOnBase(t *testing.T) {
	m := NewModel(0)
	b, p, base := averageBatter(), averagePitcher(), testBaseline()

	fresh, err := m.Distribution(b, p, base, 1.0)
	if err != nil {
		t.Fatalf("fresh: %v", err)
	}
	tired, err := m.Distribution(b, p, base, 1.3)
	if err != nil {
		t.Fatalf("tired: %v", err)
	}
	onBase := func(dist []Weighted) float64 {
		s := 0.0
		for _, w := range dist {
			if w.Outcome.OnBase() {
				s += w.P
			}
		}
		return s
	}
	if onBase(tired) <= onBase(fresh) {
		t.Errorf("on-base mass did not rise with fatigue: fresh=%v tired=%v",
			onBase(fresh), onBase(tired))
	}
}

func TestSampleDeterministicForSeed(t *testing.T) {
	m := NewModel(0)
	b, p, base := averageBatter(), averagePitcher(), testBaseline()

	draw := func() []model.Outcome {
		rng := NewSeededRNG(99)
		out := make([]model.Outcome, 50)
		for i := range out {
			o, err := m.Sample(b, p, base, 1.0, rng)
			if err != nil {
				t.Fatalf("Sample: %v", err)
			}
			out[i] = o
		}
		return out
	}
	a, bseq := draw(), draw()
	for i := range a {
		if a[i] != bseq[i] {
			t.Fatalf("draw %d differs: %s vs %s", i, a[i], bseq[i])
		}
	}
}

func TestSampleConvergesOnDistribution(t *testing.T) {
	m := NewModel(0)
	b, p, base := averageBatter(), averagePitcher(), testBaseline()

	dist, err := m.Distribution(b, p, base, 1.0)
	if err != nil {
		t.Fatalf("Distribution: %v", err)
	}
	want := map[model.Outcome]float64{}
	for _, w := range dist {
		want[w.Outcome] = w.P
	}

	const n = 200000
	rng := NewSeededRNG(7)
	counts := map[model.Outcome]int{}
	for i := 0; i < n; i++ {
		o, err := m.Sample(b, p, base, 1.0, rng)
		if err != nil {
			t.Fatalf("Sample: %v", err)
		}
		counts[o]++
	}
	for o, w := range want {
		got := float64(counts[o]) / n
		if math.Abs(got-w) > 0.01 {
			t.Errorf("%s: sampled %v, want about %v", o, got, w)
		}
	}
}

func TestDistributionBadInputIsFatal(t *testing.T) {
	m := NewModel(0)
	base := stats.Baseline{PA: 1, Rates: map[model.Outcome]float64{
		model.OutcomeSingle: math.Inf(1),
	}}
	_, err := m.Distribution(averageBatter(), averagePitcher(), base, 1.0)
	if err == nil {
		t.Fatal("expected ErrBadDistribution for non-finite rates")
	}
}
