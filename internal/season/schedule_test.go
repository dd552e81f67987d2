package season

import (
	"errors"
	"testing"
)

func TestRoundRobinEveryTeamPlaysEveryDay(t *testing.T) {
	teams := []string{"A", "B", "C", "D"}
	schedule, err := RoundRobin(teams, 12)
	if err != nil {
		t.Fatalf("RoundRobin: %v", err)
	}
	if len(schedule) != 12 {
		t.Fatalf("schedule has %d days, want 12", len(schedule))
	}
	for day, matchups := range schedule {
		if len(matchups) != 2 {
			t.Fatalf("day %d has %d games, want 2", day, len(matchups))
		}
		seen := map[string]bool{}
		for _, m := range matchups {
			if m.Away == m.Home {
				t.Fatalf("day %d: %s plays itself", day, m.Away)
			}
			if seen[m.Away] || seen[m.Home] {
				t.Fatalf("day %d: a team is scheduled twice", day)
			}
			seen[m.Away] = true
			seen[m.Home] = true
		}
	}
}

func TestRoundRobinOddTeamsGetByes(t *testing.T) {
	teams := []string{"A", "B", "C"}
	schedule, err := RoundRobin(teams, 6)
	if err != nil {
		t.Fatalf("RoundRobin: %v", err)
	}
	games := map[string]int{}
	for _, day := range schedule {
		if len(day) != 1 {
			t.Fatalf("three teams should produce one game per day, got %d", len(day))
		}
		for _, m := range day {
			games[m.Away]++
			games[m.Home]++
		}
	}
	// Byes mean uneven totals are fine, but nobody plays a phantom team.
	for team := range games {
		if team == byeTeam {
			t.Fatal("bye marker leaked into the schedule")
		}
	}
}

func TestRoundRobinHomeAwayRoughlyBalanced(t *testing.T) {
	teams := []string{"A", "B", "C", "D", "E", "F"}
	schedule, err := RoundRobin(teams, 60)
	if err != nil {
		t.Fatalf("RoundRobin: %v", err)
	}
	home := map[string]int{}
	total := map[string]int{}
	for _, day := range schedule {
		for _, m := range day {
			home[m.Home]++
			total[m.Home]++
			total[m.Away]++
		}
	}
	for _, team := range teams {
		share := float64(home[team]) / float64(total[team])
		if share < 0.35 || share > 0.65 {
			t.Errorf("%s plays %d/%d at home (%.2f), want near half", team, home[team], total[team], share)
		}
	}
}

func TestRoundRobinRejectsBadInput(t *testing.T) {
	if _, err := RoundRobin([]string{"A"}, 10); !errors.Is(err, ErrNotEnoughTeams) {
		t.Errorf("one team: err = %v, want ErrNotEnoughTeams", err)
	}
	if _, err := RoundRobin([]string{"A", "B"}, 0); err == nil {
		t.Error("zero games accepted")
	}
}
