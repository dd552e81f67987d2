package season

import (
	"testing"
	"time"

	"baseball-sim/internal/model"
	"baseball-sim/internal/stats"
)

func leagueStore(t *testing.T, teams ...string) *stats.Store {
	t.Helper()
	var players []model.Player
	id := model.PlayerID(1)
	for _, team := range teams {
		for i := 0; i < 10; i++ {
			players = append(players, model.Player{
				ID: id, Name: "B", Team: team, Role: model.RoleBatter, Age: 27,
				PriorBatting: model.BattingStats{
					PA: 600, AB: 540, H: 140, Doubles: 28, Triples: 3, HR: 18,
					BB: 50, SO: 130, HBP: 6, SF: 4, DP: 10, SB: 8, CS: 3,
				},
			})
			id++
		}
		for i := 0; i < 4; i++ {
			players = append(players, model.Player{
				ID: id, Name: "P", Team: team, Role: model.RolePitcher, Age: 27,
				PriorPitching: model.PitchingStats{
					G: 30, GS: 30, BF: 780, Outs: 560, H: 170, Doubles: 34,
					Triples: 3, HR: 22, BB: 62, SO: 170, HBP: 8, R: 88,
				},
			})
			id++
		}
	}
	store, err := stats.NewStore(players)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store
}

func newTestScheduler(t *testing.T, store *stats.Store, teams []string, games int) *Scheduler {
	t.Helper()
	// Injuries off so short tests never lose a lineup to the injured list.
	cfg := Config{
		GamesPerTeam: games,
		Seed:         12345,
		Injury:       InjuryConfig{PitcherRate: 1e-9, BatterRate: 1e-9, AgeAdjust: 1e-12},
	}
	sched, err := NewScheduler(store, teams, cfg, nil, nil)
	if err != nil {
		t.Fatalf("NewScheduler: %v", err)
	}
	return sched
}

func TestStepAdvancesAndPauses(t *testing.T) {
	teams := []string{"A", "B"}
	sched := newTestScheduler(t, leagueStore(t, teams...), teams, 10)

	sched.Step(1)
	sched.WaitIdle()
	if got := sched.Day(); got != 1 {
		t.Fatalf("Day = %d after Step(1), want 1", got)
	}
	if !sched.Paused() {
		t.Fatal("scheduler did not auto-pause after stepping")
	}

	sched.Step(3)
	sched.WaitIdle()
	if got := sched.Day(); got != 4 {
		t.Fatalf("Day = %d after Step(3), want 4", got)
	}
	if err := sched.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}
}

func TestStepIgnoresNonPositive(t *testing.T) {
	teams := []string{"A", "B"}
	sched := newTestScheduler(t, leagueStore(t, teams...), teams, 4)
	sched.Step(0)
	sched.Step(-3)
	sched.WaitIdle()
	if got := sched.Day(); got != 0 {
		t.Fatalf("Day = %d, want 0", got)
	}
}

func TestRunToCompletion(t *testing.T) {
	teams := []string{"A", "B"}
	store := leagueStore(t, teams...)
	sched := newTestScheduler(t, store, teams, 6)

	sched.Start()
	select {
	case <-sched.Done():
	case <-time.After(30 * time.Second):
		t.Fatal("season did not finish")
	}
	if err := sched.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}
	if got := sched.Day(); got != 6 {
		t.Fatalf("Day = %d, want 6", got)
	}

	// One decision per game: total wins and losses both equal games played.
	wins, losses := 0, 0
	for _, s := range sched.Standings() {
		wins += s.Wins
		losses += s.Losses
	}
	if wins != 6 || losses != 6 {
		t.Errorf("wins=%d losses=%d, want 6 each", wins, losses)
	}
}

func TestMergedTotalsMatchDecisions(t *testing.T) {
	teams := []string{"A", "B", "C", "D"}
	store := leagueStore(t, teams...)
	sched := newTestScheduler(t, store, teams, 8)

	sched.Step(8)
	sched.WaitIdle()
	if err := sched.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}

	// Per-game deltas merged into the store must agree with the standings.
	var w, l int
	for _, p := range store.Players() {
		w += p.SeasonPitching.W
		l += p.SeasonPitching.L
	}
	var sw, sl int
	for _, s := range sched.Standings() {
		sw += s.Wins
		sl += s.Losses
	}
	if w != sw || l != sl {
		t.Errorf("store says %d-%d, standings say %d-%d", w, l, sw, sl)
	}
	if sw == 0 {
		t.Error("no games recorded")
	}
}

func TestControlIdempotence(t *testing.T) {
	teams := []string{"A", "B"}
	sched := newTestScheduler(t, leagueStore(t, teams...), teams, 4)

	// Pausing while paused and resuming while running must be accepted.
	sched.Pause()
	sched.Pause()
	if !sched.Paused() {
		t.Fatal("not paused")
	}
	sched.Step(1)
	sched.WaitIdle()
	sched.Stop()
	sched.Stop()
	select {
	case <-sched.Done():
	case <-time.After(10 * time.Second):
		t.Fatal("Stop did not settle")
	}
	// Control after stop is a no-op, not a panic.
	sched.Start()
	sched.Step(2)
	sched.Pause()
	if got := sched.Day(); got != 1 {
		t.Fatalf("Day = %d after stop, want 1", got)
	}
}

func TestControlAfterFinishIsNoOp(t *testing.T) {
	teams := []string{"A", "B"}
	sched := newTestScheduler(t, leagueStore(t, teams...), teams, 2)

	sched.Start()
	select {
	case <-sched.Done():
	case <-time.After(30 * time.Second):
		t.Fatal("season did not finish")
	}

	// Late control calls must not park pending steps nobody will consume.
	sched.Step(1)
	sched.Start()
	idle := make(chan struct{})
	go func() {
		sched.WaitIdle()
		close(idle)
	}()
	select {
	case <-idle:
	case <-time.After(5 * time.Second):
		t.Fatal("WaitIdle hung after the season finished")
	}
	if got := sched.Day(); got != 2 {
		t.Fatalf("Day = %d after finish, want 2", got)
	}
}

// countingSink tallies per-game outcomes. The scheduler delivers events from
// a single goroutine, so plain counters are fine.
type countingSink struct {
	NopSink
	completed int
	failed    int
}

func (s *countingSink) GameCompleted(int, *model.BoxScore) { s.completed++ }
func (s *countingSink) GameFailed(int, Matchup, error)     { s.failed++ }

func TestGameFailureDoesNotAbortDay(t *testing.T) {
	teams := []string{"A", "B", "C", "D"}
	players := leagueStore(t, "A", "B", "C").Players()
	// Team D dresses only five batters, so its games can never be built.
	id := model.PlayerID(1000)
	for i := 0; i < 5; i++ {
		players = append(players, model.Player{
			ID: id, Name: "B", Team: "D", Role: model.RoleBatter, Age: 27,
			PriorBatting: model.BattingStats{PA: 600, AB: 540, H: 140, BB: 50},
		})
		id++
	}
	players = append(players, model.Player{
		ID: id, Name: "P", Team: "D", Role: model.RolePitcher, Age: 27,
		PriorPitching: model.PitchingStats{G: 30, BF: 700, Outs: 560},
	})
	store, err := stats.NewStore(players)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	sink := &countingSink{}
	cfg := Config{
		GamesPerTeam: 2,
		Seed:         12345,
		Injury:       InjuryConfig{PitcherRate: 1e-9, BatterRate: 1e-9, AgeAdjust: 1e-12},
	}
	sched, err := NewScheduler(store, teams, cfg, sink, nil)
	if err != nil {
		t.Fatalf("NewScheduler: %v", err)
	}

	sched.Step(1)
	sched.WaitIdle()
	if err := sched.Err(); err != nil {
		t.Fatalf("one unbuildable game aborted the day: %v", err)
	}
	if got := sched.Day(); got != 1 {
		t.Fatalf("Day = %d, want 1", got)
	}
	if sink.failed != 1 || sink.completed != 1 {
		t.Errorf("failed=%d completed=%d, want one of each", sink.failed, sink.completed)
	}
	// The healthy matchup's result still lands in the standings.
	wins := 0
	for _, s := range sched.Standings() {
		wins += s.Wins
	}
	if wins != 1 {
		t.Errorf("standings show %d wins, want 1", wins)
	}
}

func TestStopBeforeStart(t *testing.T) {
	teams := []string{"A", "B"}
	sched := newTestScheduler(t, leagueStore(t, teams...), teams, 4)
	sched.Stop()
	select {
	case <-sched.Done():
	case <-time.After(time.Second):
		t.Fatal("Done not closed after Stop on an unstarted scheduler")
	}
}

func TestSeededSeasonIsReproducible(t *testing.T) {
	teams := []string{"A", "B", "C", "D"}
	run := func() []Standing {
		store := leagueStore(t, teams...)
		cfg := Config{
			GamesPerTeam: 10,
			Workers:      1, // single worker keeps matchup-to-stream pairing fixed
			Seed:         777,
			Injury:       InjuryConfig{PitcherRate: 1e-9, BatterRate: 1e-9, AgeAdjust: 1e-12},
		}
		sched, err := NewScheduler(store, teams, cfg, nil, nil)
		if err != nil {
			t.Fatalf("NewScheduler: %v", err)
		}
		sched.Step(10)
		sched.WaitIdle()
		if err := sched.Err(); err != nil {
			t.Fatalf("Err: %v", err)
		}
		return sched.Standings()
	}
	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("standings differ at %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}
