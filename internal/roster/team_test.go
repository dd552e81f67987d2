package roster

import (
	"errors"
	"testing"

	"baseball-sim/internal/model"
	"baseball-sim/internal/stats"
)

func buildStore(t *testing.T, batters, pitchers int) *stats.Store {
	t.Helper()
	var players []model.Player
	id := model.PlayerID(1)
	for i := 0; i < batters; i++ {
		players = append(players, model.Player{
			ID: id, Name: "B", Team: "Club", Role: model.RoleBatter, Age: 27,
			// later ids hit better, so lineup order is checkable
			PriorBatting: model.BattingStats{PA: 600, AB: 550, H: 120 + i*5, BB: 40, HR: 10},
		})
		id++
	}
	for i := 0; i < pitchers; i++ {
		players = append(players, model.Player{
			ID: id, Name: "P", Team: "Club", Role: model.RolePitcher, Age: 27,
			PriorPitching: model.PitchingStats{G: 30, BF: 700, Outs: 600 - i*50},
		})
		id++
	}
	store, err := stats.NewStore(players)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store
}

func TestBuildOrdersLineupByOPS(t *testing.T) {
	store := buildStore(t, 12, 8)
	team, err := Build(store, "Club", 5)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(team.Lineup) != LineupSize {
		t.Fatalf("lineup has %d slots", len(team.Lineup))
	}
	// Best hitter (highest id among batters, ids 1..12) bats first.
	if team.Lineup[0] != 12 {
		t.Errorf("leadoff = %d, want the best hitter (12)", team.Lineup[0])
	}
	if len(team.Rotation) != 5 || len(team.Bullpen) != 3 {
		t.Errorf("staff split = %d rotation / %d bullpen, want 5/3",
			len(team.Rotation), len(team.Bullpen))
	}
}

func TestBuildSkipsLongTermInjured(t *testing.T) {
	store := buildStore(t, 11, 6)
	// The best hitter goes on the long-term list; the next-best is day-to-day.
	store.Mutate(11, func(p *model.Player) { p.Injury.Status = model.LongTerm })
	store.Mutate(10, func(p *model.Player) { p.Injury.Status = model.DayToDay })

	team, err := Build(store, "Club", 5)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for _, id := range team.Lineup {
		if id == 11 {
			t.Errorf("long-term injured player %d written into the lineup", id)
		}
	}
	// Day-to-day players stay in the lineup and play degraded.
	if team.Lineup[0] != 10 {
		t.Errorf("leadoff = %d, want the day-to-day hitter (10) still on the card", team.Lineup[0])
	}
}

func TestBuildErrors(t *testing.T) {
	store := buildStore(t, 5, 3)
	if _, err := Build(store, "Club", 5); !errors.Is(err, ErrEmptyLineup) {
		t.Errorf("short bench: err = %v, want ErrEmptyLineup", err)
	}
	if _, err := Build(store, "Ghost", 5); err == nil {
		t.Error("unknown team accepted")
	}

	store = buildStore(t, 9, 0)
	if _, err := Build(store, "Club", 5); !errors.Is(err, ErrNoStarter) {
		t.Errorf("no pitchers: err = %v, want ErrNoStarter", err)
	}
}

func TestStarterRotates(t *testing.T) {
	store := buildStore(t, 9, 5)
	team, err := Build(store, "Club", 3)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	first, _ := team.Starter(0)
	again, _ := team.Starter(3)
	if first != again {
		t.Errorf("rotation of 3 should repeat every third game: %d vs %d", first, again)
	}
	second, _ := team.Starter(1)
	if second == first {
		t.Error("consecutive games used the same starter")
	}
}

func TestNextRelieverExhausts(t *testing.T) {
	store := buildStore(t, 9, 4)
	team, err := Build(store, "Club", 3)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(team.Bullpen) != 1 {
		t.Fatalf("bullpen size = %d, want 1", len(team.Bullpen))
	}
	if _, ok := team.NextReliever(); !ok {
		t.Fatal("first reliever unavailable")
	}
	if _, ok := team.NextReliever(); ok {
		t.Fatal("empty pen still handing out arms")
	}
}
