package main

import (
	"flag"
	"fmt"

	"baseball-sim/internal/data"
	"baseball-sim/internal/game"
	"baseball-sim/internal/model"
	"baseball-sim/internal/roster"
	"baseball-sim/internal/sim"
	"baseball-sim/internal/stats"
)

// Demo:
// - Generate a small synthetic league
// - Play one game between the first two teams with full play-by-play
// - Show how the store, outcome model, and game engine fit together
func main() {
	seed := flag.Uint64("seed", 42, "RNG seed (same seed, same game)")
	n := flag.Int("n", 20, "Number of at-bats to print in detail")
	flag.Parse()

	rng := sim.NewSeededRNG(*seed)
	list := data.GenerateLeague([]string{"Portland", "Austin"}, rng)

	store, err := stats.NewStore(list.Players)
	if err != nil {
		panic(err)
	}
	away, err := roster.Build(store, "Portland", 5)
	if err != nil {
		panic(err)
	}
	home, err := roster.Build(store, "Austin", 5)
	if err != nil {
		panic(err)
	}
	base, err := stats.ComputeBaseline(store.Players())
	if err != nil {
		panic(err)
	}

	fmt.Printf("League of %d players, baseline over %d PA\n", store.Len(), base.PA)
	fmt.Printf("%s at %s (seed %d)\n\n", away.Name, home.Name, *seed)

	printed := 0
	engine := game.NewEngine(sim.NewModel(0), game.Config{StealAttempts: true})
	box, err := engine.Play(store, base, away, home, 0, rng, func(e model.AtBatEvent) {
		if printed >= *n {
			return
		}
		printed++
		half := "top"
		if e.Half == model.BottomHalf {
			half = "bot"
		}
		batter, _ := store.Read(e.Batter)
		pitcher, _ := store.Read(e.Pitcher)
		fmt.Printf("%3s %2d  %-20s vs %-20s  %-4s  %s  [%d-%d]\n",
			half, e.Inning, batter.Name, pitcher.Name, e.Outcome,
			e.Bases.Describe(), e.AwayScore, e.HomeScore)
	})
	if err != nil {
		panic(err)
	}

	fmt.Printf("\n(first %d at-bats shown)\n\n", printed)
	fmt.Printf("Final: %s %d, %s %d in %d innings\n",
		box.Away, box.AwayRuns, box.Home, box.HomeRuns, box.Innings)
	fmt.Printf("Hits: %s %d, %s %d\n", box.Away, box.AwayHits, box.Home, box.HomeHits)
	if wp, ok := store.Read(box.WinningPitcher); ok {
		fmt.Printf("Winning pitcher: %s\n", wp.Name)
	}
	if lp, ok := store.Read(box.LosingPitcher); ok {
		fmt.Printf("Losing pitcher: %s\n", lp.Name)
	}
}
