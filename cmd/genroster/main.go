package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"baseball-sim/internal/data"
	"baseball-sim/internal/model"
	"baseball-sim/internal/sim"
)

func main() {
	var (
		teams      = flag.String("teams", "", "Comma-separated team names (default: built-in city pool)")
		outputPath = flag.String("output", "", "Output file path (default: ./data/players.json)")
		seedFile   = flag.String("seed-roster", "", "Path to existing roster to carry players over from")
		seed       = flag.Uint64("seed", 1, "RNG seed for generated stat profiles")
	)
	flag.Parse()

	if *outputPath == "" {
		*outputPath = data.GetDefaultPlayersPath()
	}

	var teamNames []string
	if *teams != "" {
		for _, t := range strings.Split(*teams, ",") {
			t = strings.TrimSpace(t)
			if t != "" {
				teamNames = append(teamNames, t)
			}
		}
	}

	list := data.GenerateLeague(teamNames, sim.NewSeededRNG(*seed))
	fmt.Printf("Generated %d players across %d teams\n", len(list.Players), len(list.Teams()))

	// Carry over an existing roster's players; generated teams it already
	// covers are dropped in favor of the real ones.
	if *seedFile != "" {
		existing, err := data.LoadPlayers(*seedFile)
		if err != nil {
			log.Fatalf("Failed to load seed roster: %v", err)
		}
		covered := map[string]bool{}
		for _, t := range existing.Teams() {
			covered[t] = true
		}
		nextID := model.PlayerID(0)
		for i := range existing.Players {
			if existing.Players[i].ID > nextID {
				nextID = existing.Players[i].ID
			}
		}
		kept := list.Players[:0]
		for _, p := range list.Players {
			if !covered[p.Team] {
				nextID++
				p.ID = nextID // keep ids unique across both rosters
				kept = append(kept, p)
			}
		}
		list.Players = append(existing.Players, kept...)
		fmt.Printf("Carried over %d players from %s\n", len(existing.Players), *seedFile)
	}

	if err := data.SavePlayers(list, *outputPath); err != nil {
		log.Fatalf("Failed to save roster: %v", err)
	}

	fmt.Printf("Saved %d players to %s\n", len(list.Players), *outputPath)
}
