package data

import (
	"fmt"
	"time"

	"baseball-sim/internal/model"
	"baseball-sim/internal/sim"
)

// Default league shape for generated rosters.
const (
	BattersPerTeam  = 12
	PitchersPerTeam = 11
)

// DefaultTeams is the built-in city pool for generated leagues.
var DefaultTeams = []string{
	"Portland", "Austin", "Nashville", "Charlotte",
	"Sacramento", "Columbus", "Raleigh", "Omaha",
}

var firstNames = []string{
	"Alex", "Ben", "Carlos", "Derek", "Eddie", "Felix", "Gabe", "Hank",
	"Ivan", "Jorge", "Kyle", "Luis", "Marcus", "Nate", "Oscar", "Pedro",
	"Quinn", "Rafael", "Sam", "Tony", "Victor", "Wade", "Yadier", "Zack",
}

var lastNames = []string{
	"Alvarez", "Brooks", "Castillo", "Dawson", "Ellis", "Fuentes",
	"Graham", "Hernandez", "Ibarra", "Jenkins", "Keller", "Lucero",
	"Maldonado", "Nunez", "Ortega", "Price", "Quintana", "Reyes",
	"Santos", "Turner", "Urias", "Vazquez", "Walsh", "Young",
}

// GenerateLeague builds a synthetic roster: every team gets a full lineup's
// worth of batters and a rotation plus bullpen of pitchers, each with a prior
// stat profile drawn around league-typical rates. Deterministic for a fixed rng.
func GenerateLeague(teams []string, rng sim.RandomSource) *PlayerList {
	if len(teams) == 0 {
		teams = DefaultTeams
	}
	list := &PlayerList{
		League:    "Generated League",
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	id := model.PlayerID(1)
	for _, team := range teams {
		for i := 0; i < BattersPerTeam; i++ {
			list.Players = append(list.Players, generateBatter(id, team, rng))
			id++
		}
		for i := 0; i < PitchersPerTeam; i++ {
			// first PitchersPerTeam/2 arms get starter workloads
			starter := i < PitchersPerTeam/2
			list.Players = append(list.Players, generatePitcher(id, team, starter, rng))
			id++
		}
	}
	return list
}

func generateName(rng sim.RandomSource) string {
	f := firstNames[int(rng.Float64()*float64(len(firstNames)))]
	l := lastNames[int(rng.Float64()*float64(len(lastNames)))]
	return fmt.Sprintf("%s %s", f, l)
}

func generateAge(rng sim.RandomSource) int {
	// roughly triangular around the late 20s
	return 21 + int((rng.Float64()+rng.Float64())*7)
}

// jitter returns rate scaled by a skill multiplier in [1-spread, 1+spread].
func jitter(rate, spread float64, rng sim.RandomSource) float64 {
	return rate * (1 + (rng.Float64()*2-1)*spread)
}

func generateBatter(id model.PlayerID, team string, rng sim.RandomSource) model.Player {
	pa := 450 + int(rng.Float64()*200)
	fpa := float64(pa)

	// league-typical per-PA rates, jittered per player
	h := int(fpa * jitter(0.230, 0.20, rng))
	doubles := int(float64(h) * jitter(0.20, 0.25, rng))
	triples := int(float64(h) * jitter(0.02, 0.5, rng))
	hr := int(fpa * jitter(0.030, 0.50, rng))
	bb := int(fpa * jitter(0.085, 0.30, rng))
	so := int(fpa * jitter(0.220, 0.25, rng))
	hbp := int(fpa * jitter(0.010, 0.5, rng))
	sf := int(fpa * jitter(0.007, 0.5, rng))
	dp := int(fpa * jitter(0.018, 0.4, rng))
	sb := int(fpa * jitter(0.015, 0.9, rng))
	cs := sb / 3

	prior := model.BattingStats{
		G:       int(fpa / 4.2),
		PA:      pa,
		AB:      pa - bb - hbp - sf,
		H:       h + hr,
		Doubles: doubles,
		Triples: triples,
		HR:      hr,
		BB:      bb,
		SO:      so,
		HBP:     hbp,
		SF:      sf,
		DP:      dp,
		SB:      sb,
		CS:      cs,
		R:       int(fpa * 0.12),
		RBI:     int(fpa * 0.12),
	}
	return model.Player{
		ID:           id,
		Name:         generateName(rng),
		Team:         team,
		Role:         model.RoleBatter,
		Age:          generateAge(rng),
		Salary:       700_000 + rng.Float64()*9_000_000,
		Condition:    100,
		Streak:       1.0,
		Injury:       model.Injury{Status: model.Healthy},
		PriorBatting: prior,
	}
}

func generatePitcher(id model.PlayerID, team string, starter bool, rng sim.RandomSource) model.Player {
	g := 28 + int(rng.Float64()*8)
	bfPerG := 8.0 + rng.Float64()*4 // reliever workload
	gs := 0
	if starter {
		bfPerG = 22.0 + rng.Float64()*6
		gs = g
	}
	bf := int(float64(g) * bfPerG)
	fbf := float64(bf)

	h := int(fbf * jitter(0.225, 0.15, rng))
	doubles := int(float64(h) * 0.20)
	triples := int(float64(h) * 0.02)
	hr := int(fbf * jitter(0.028, 0.40, rng))
	bb := int(fbf * jitter(0.080, 0.30, rng))
	so := int(fbf * jitter(0.230, 0.30, rng))
	hbp := int(fbf * jitter(0.010, 0.5, rng))

	prior := model.PitchingStats{
		G:       g,
		GS:      gs,
		BF:      bf,
		Outs:    int(fbf * 0.72),
		H:       h + hr,
		Doubles: doubles,
		Triples: triples,
		HR:      hr,
		BB:      bb,
		SO:      so,
		HBP:     hbp,
		R:       int(fbf * 0.115),
	}
	return model.Player{
		ID:            id,
		Name:          generateName(rng),
		Team:          team,
		Role:          model.RolePitcher,
		Age:           generateAge(rng),
		Salary:        700_000 + rng.Float64()*12_000_000,
		Condition:     100,
		Streak:        1.0,
		Injury:        model.Injury{Status: model.Healthy},
		PriorPitching: prior,
	}
}
