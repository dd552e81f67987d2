package roster

import (
	"errors"
	"fmt"
	"sort"

	"baseball-sim/internal/model"
	"baseball-sim/internal/stats"
)

// ErrEmptyLineup means a team could not field nine available batters. That is
// a roster-construction defect and fatal for the affected game.
var ErrEmptyLineup = errors.New("roster: not enough available batters for a lineup")

// ErrNoStarter means a team has no available starting pitcher.
var ErrNoStarter = errors.New("roster: no available starting pitcher")

// LineupSize is the batting order length.
const LineupSize = 9

// Team is the per-game lineup card: batting order, rotation, and bullpen.
// The game engine consumes it read-only except for bullpen draws; each game
// gets its own instance, so no synchronization is needed here.
type Team struct {
	Name     string
	Lineup   []model.PlayerID // batting order, LineupSize entries
	Rotation []model.PlayerID // starters in rotation order
	Bullpen  []model.PlayerID // relief, consumed front to back

	nextRelief int
}

// Build assembles a lineup card for one team from the shared store, using only
// players available today. Batters are ordered by prior-season OPS, pitchers
// by prior workload.
func Build(s *stats.Store, name string, rotationLen int) (*Team, error) {
	if rotationLen <= 0 {
		rotationLen = 5
	}
	players := s.TeamPlayers(name)
	if len(players) == 0 {
		return nil, fmt.Errorf("roster: no players for team %q", name)
	}

	var batters, pitchers []model.Player
	for _, p := range players {
		if !p.Available() {
			continue
		}
		if p.Role == model.RolePitcher {
			pitchers = append(pitchers, p)
		} else {
			batters = append(batters, p)
		}
	}
	sort.Slice(batters, func(i, j int) bool {
		return ops(batters[i].PriorBatting) > ops(batters[j].PriorBatting)
	})
	sort.Slice(pitchers, func(i, j int) bool {
		return pitchers[i].PriorPitching.Outs > pitchers[j].PriorPitching.Outs
	})

	if len(batters) < LineupSize {
		return nil, fmt.Errorf("%w: team %q has %d", ErrEmptyLineup, name, len(batters))
	}
	if len(pitchers) == 0 {
		return nil, fmt.Errorf("%w: team %q", ErrNoStarter, name)
	}

	t := &Team{Name: name}
	for i := 0; i < LineupSize; i++ {
		t.Lineup = append(t.Lineup, batters[i].ID)
	}
	n := rotationLen
	if n > len(pitchers) {
		n = len(pitchers)
	}
	for i := 0; i < n; i++ {
		t.Rotation = append(t.Rotation, pitchers[i].ID)
	}
	for i := n; i < len(pitchers); i++ {
		t.Bullpen = append(t.Bullpen, pitchers[i].ID)
	}
	return t, nil
}

// Starter returns the rotation arm for the given game number.
func (t *Team) Starter(gameNum int) (model.PlayerID, error) {
	if len(t.Rotation) == 0 {
		return 0, fmt.Errorf("%w: team %q", ErrNoStarter, t.Name)
	}
	if gameNum < 0 {
		gameNum = 0
	}
	return t.Rotation[gameNum%len(t.Rotation)], nil
}

// NextReliever hands out the next bullpen arm. ok=false when the pen is empty,
// which is a normal anticipated state: the current pitcher stays in, degraded.
func (t *Team) NextReliever() (model.PlayerID, bool) {
	if t.nextRelief >= len(t.Bullpen) {
		return 0, false
	}
	id := t.Bullpen[t.nextRelief]
	t.nextRelief++
	return id, true
}

func ops(b model.BattingStats) float64 {
	if b.PA == 0 || b.AB == 0 {
		return 0
	}
	obp := float64(b.H+b.BB+b.HBP) / float64(b.PA)
	slg := float64(b.Singles()+2*b.Doubles+3*b.Triples+4*b.HR) / float64(b.AB)
	return obp + slg
}
