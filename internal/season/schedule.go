package season

import (
	"errors"
	"fmt"
)

// byeTeam marks the hole in a round-robin over an odd team count. The paired
// team simply has the day off.
const byeTeam = "BYE"

// Matchup is one scheduled game.
type Matchup struct {
	Away string `json:"away"`
	Home string `json:"home"`
}

// Day is the set of matchups played on one simulated day.
type Day []Matchup

// ErrNotEnoughTeams means a schedule cannot be built.
var ErrNotEnoughTeams = errors.New("schedule: need at least two teams")

// RoundRobin builds a schedule of gamesPerTeam days using the circle method:
// one slot is fixed, the rest rotate each day, so no team ever plays itself
// and every pairing recurs evenly. Home/away flips between cycles (and
// alternates within a day) to keep the split roughly even.
func RoundRobin(teams []string, gamesPerTeam int) ([]Day, error) {
	if len(teams) < 2 {
		return nil, ErrNotEnoughTeams
	}
	if gamesPerTeam <= 0 {
		return nil, fmt.Errorf("schedule: gamesPerTeam must be positive, got %d", gamesPerTeam)
	}
	ring := make([]string, len(teams))
	copy(ring, teams)
	if len(ring)%2 == 1 {
		ring = append(ring, byeTeam)
	}
	n := len(ring)
	roundsPerCycle := n - 1

	var schedule []Day
	cycle := 0
	for len(schedule) < gamesPerTeam {
		for round := 0; round < roundsPerCycle && len(schedule) < gamesPerTeam; round++ {
			day := make(Day, 0, n/2)
			for i := 0; i < n/2; i++ {
				a, b := ring[i], ring[n-1-i]
				if a == byeTeam || b == byeTeam {
					continue
				}
				// flip orientation by cycle, round, and pair index for balance
				if (cycle+round+i)%2 == 0 {
					day = append(day, Matchup{Away: a, Home: b})
				} else {
					day = append(day, Matchup{Away: b, Home: a})
				}
			}
			schedule = append(schedule, day)
			// rotate all but the first slot
			last := ring[n-1]
			copy(ring[2:], ring[1:n-1])
			ring[1] = last
		}
		cycle++
	}
	return schedule, nil
}
