package stats

import (
	"sync"
	"testing"

	"baseball-sim/internal/model"
)

func twoPlayers() []model.Player {
	return []model.Player{
		{ID: 1, Name: "Batter", Team: "A", Role: model.RoleBatter, Age: 27,
			PriorBatting: model.BattingStats{PA: 600, AB: 540, H: 140, BB: 50, SO: 120, HR: 20, Doubles: 25, Triples: 2, HBP: 5, SF: 4, DP: 9}},
		{ID: 2, Name: "Pitcher", Team: "A", Role: model.RolePitcher, Age: 27,
			PriorPitching: model.PitchingStats{G: 30, BF: 700, Outs: 520}},
	}
}

func TestNewStoreRejectsBadIdentity(t *testing.T) {
	if _, err := NewStore([]model.Player{{ID: 0, Name: "X"}}); err == nil {
		t.Error("zero id accepted")
	}
	if _, err := NewStore([]model.Player{{ID: 1}, {ID: 1}}); err == nil {
		t.Error("duplicate id accepted")
	}
}

func TestNewStoreDefaults(t *testing.T) {
	s, err := NewStore([]model.Player{{ID: 1, Name: "X"}})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	p, ok := s.Read(1)
	if !ok {
		t.Fatal("player missing")
	}
	if p.Condition != 100 || p.Streak != 1.0 || p.Injury.Status != model.Healthy {
		t.Errorf("defaults not applied: %+v", p)
	}
}

func TestReadReturnsCopy(t *testing.T) {
	s, _ := NewStore(twoPlayers())
	p, _ := s.Read(1)
	p.SeasonBatting.H = 999
	again, _ := s.Read(1)
	if again.SeasonBatting.H != 0 {
		t.Error("Read exposed live state")
	}
}

func TestApplyDeltaClampsCondition(t *testing.T) {
	s, _ := NewStore(twoPlayers())
	if err := s.ApplyDelta(1, model.StatDelta{ConditionDelta: -500}); err != nil {
		t.Fatalf("ApplyDelta: %v", err)
	}
	p, _ := s.Read(1)
	if p.Condition != 0 {
		t.Errorf("Condition = %v, want clamp at 0", p.Condition)
	}
	if err := s.ApplyDelta(99, model.StatDelta{}); err == nil {
		t.Error("unknown player accepted")
	}
}

func TestConcurrentGameMergesAddUp(t *testing.T) {
	s, _ := NewStore(twoPlayers())

	const games = 200
	var wg sync.WaitGroup
	for g := 0; g < games; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			deltas := map[model.PlayerID]*model.StatDelta{
				1: {Batting: model.BattingStats{PA: 4, AB: 3, H: 1}},
				2: {Pitching: model.PitchingStats{BF: 4, Outs: 3}},
			}
			if err := s.ApplyGameDeltas(deltas); err != nil {
				t.Errorf("ApplyGameDeltas: %v", err)
			}
		}()
	}
	wg.Wait()

	b, _ := s.Read(1)
	if b.SeasonBatting.PA != 4*games || b.SeasonBatting.H != games {
		t.Errorf("batting totals = %+v, want %d PA / %d H", b.SeasonBatting, 4*games, games)
	}
	p, _ := s.Read(2)
	if p.SeasonPitching.BF != 4*games {
		t.Errorf("pitching BF = %d, want %d", p.SeasonPitching.BF, 4*games)
	}
}

func TestPlayersSortedCopies(t *testing.T) {
	s, _ := NewStore(twoPlayers())
	players := s.Players()
	if len(players) != 2 || players[0].ID != 1 || players[1].ID != 2 {
		t.Fatalf("Players() = %+v", players)
	}
	players[0].Name = "mutated"
	p, _ := s.Read(1)
	if p.Name == "mutated" {
		t.Error("Players exposed live state")
	}
}
