package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"baseball-sim/internal/analysis"
	"baseball-sim/internal/config"
	"baseball-sim/internal/data"
	"baseball-sim/internal/game"
	"baseball-sim/internal/model"
	"baseball-sim/internal/roster"
	"baseball-sim/internal/season"
	"baseball-sim/internal/sim"
	"baseball-sim/internal/stats"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "game":
		cmdGame(os.Args[2:])
	case "season":
		cmdSeason(os.Args[2:])
	case "rank":
		cmdRank(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli game --config examples/config.yaml --away Portland --home Austin --seed 42")
	fmt.Println("  cli season --config examples/config.yaml --days 0 --out results/")
	fmt.Println("  cli rank --config examples/config.yaml --days 30 --limit 15")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - game prints a line score and play-by-play for one game")
	fmt.Println("  - season simulates the schedule (--days 0 = full) and writes standings/stats CSV")
	fmt.Println("  - rank simulates then prints players by wins above replacement")
}

func loadLeague(cfgPath string) (*config.Config, *data.PlayerList) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		panic(err)
	}
	list, err := data.LoadPlayers(cfg.Players)
	if err != nil {
		panic(err)
	}
	return cfg, list
}

func cmdGame(args []string) {
	fs := flag.NewFlagSet("game", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	awayName := fs.String("away", "", "Away team")
	homeName := fs.String("home", "", "Home team")
	seed := fs.Uint64("seed", 0, "RNG seed (0 = random)")
	_ = fs.Parse(args)

	if *cfgPath == "" || *awayName == "" || *homeName == "" {
		fmt.Println("--config, --away and --home are required")
		os.Exit(2)
	}

	cfg, list := loadLeague(*cfgPath)
	store, err := stats.NewStore(list.Players)
	if err != nil {
		panic(err)
	}
	away, err := roster.Build(store, *awayName, cfg.Season.RotationLen)
	if err != nil {
		panic(err)
	}
	home, err := roster.Build(store, *homeName, cfg.Season.RotationLen)
	if err != nil {
		panic(err)
	}
	base, err := stats.ComputeBaseline(store.Players())
	if err != nil {
		panic(err)
	}

	var rng sim.RandomSource
	if *seed != 0 {
		rng = sim.NewSeededRNG(*seed)
	} else {
		rng = sim.NewRNG()
	}

	engine := game.NewEngine(sim.NewModel(0), cfg.Season.Game)
	box, err := engine.Play(store, base, away, home, 0, rng, func(e model.AtBatEvent) {
		half := "top"
		if e.Half == model.BottomHalf {
			half = "bot"
		}
		name := playerName(store, e.Batter)
		fmt.Printf("%3s %2d  %-22s %-4s  %d run(s)  %s  [%d-%d]\n",
			half, e.Inning, name, e.Outcome, e.RunsScored, e.Bases.Describe(), e.AwayScore, e.HomeScore)
	})
	if err != nil {
		panic(err)
	}

	fmt.Println()
	printLineScore(box)
}

func cmdSeason(args []string) {
	fs := flag.NewFlagSet("season", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	days := fs.Int("days", 0, "Limit to first N days (0 = full schedule)")
	outDir := fs.String("out", "results", "Output directory for CSV files")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	store, sched := runSeason(*cfgPath, *days, &consoleSink{})

	standings := sched.Standings()
	fmt.Printf("\nFinal standings after %d day(s):\n", sched.Day())
	printStandings(standings)

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		panic(err)
	}
	players := store.Players()
	if err := data.WriteStandingsCSV(filepath.Join(*outDir, "standings.csv"), standings); err != nil {
		panic(err)
	}
	if err := data.WriteBattingCSV(filepath.Join(*outDir, "batting.csv"), players); err != nil {
		panic(err)
	}
	if err := data.WritePitchingCSV(filepath.Join(*outDir, "pitching.csv"), players); err != nil {
		panic(err)
	}
	fmt.Printf("Wrote standings.csv, batting.csv, pitching.csv to %s\n", *outDir)
}

func cmdRank(args []string) {
	fs := flag.NewFlagSet("rank", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	days := fs.Int("days", 30, "Days to simulate before ranking (0 = full schedule)")
	limit := fs.Int("limit", 10, "Players to print")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	store, _ := runSeason(*cfgPath, *days, season.NopSink{})

	players := store.Players()
	base, err := stats.ComputeBaseline(players)
	if err != nil {
		panic(err)
	}
	ranked := analysis.RankByWAR(players, base)

	fmt.Printf("%-4s %-22s %-12s %-8s %-7s %-7s %-7s\n", "rank", "player", "team", "role", "ops", "ra9", "war")
	for i, r := range ranked {
		if i >= *limit {
			break
		}
		fmt.Printf("%-4d %-22s %-12s %-8s %-7.3f %-7.2f %-7.2f\n",
			i+1, r.Name, r.Team, r.Role, r.OPS, r.RA9, r.WAR)
	}
}

// runSeason simulates days of the configured season synchronously and returns
// the mutated store alongside the scheduler.
func runSeason(cfgPath string, days int, sink season.Sink) (*stats.Store, *season.Scheduler) {
	cfg, list := loadLeague(cfgPath)
	store, err := stats.NewStore(list.Players)
	if err != nil {
		panic(err)
	}
	sched, err := season.NewScheduler(store, list.Teams(), cfg.Season, sink, nil)
	if err != nil {
		panic(err)
	}
	if days > 0 {
		sched.Step(days)
		sched.WaitIdle()
	} else {
		sched.Start()
		<-sched.Done()
	}
	if err := sched.Err(); err != nil {
		panic(err)
	}
	return store, sched
}

type consoleSink struct {
	season.NopSink
}

func (consoleSink) DayCompleted(day int, standings []season.Standing) {
	if (day+1)%10 != 0 {
		return
	}
	leader := standings[0]
	fmt.Printf("day %3d  leader: %s (%d-%d)\n", day+1, leader.Team, leader.Wins, leader.Losses)
}

func (consoleSink) InjuryUpdated(day int, snap season.InjurySnapshot) {
	if snap.Status == model.Healthy {
		return
	}
	fmt.Printf("day %3d  injury: %s (%s) %s, %d day(s)\n",
		day+1, snap.Name, snap.Team, snap.Description, snap.DaysRemaining)
}

func playerName(store *stats.Store, id model.PlayerID) string {
	if p, ok := store.Read(id); ok {
		return p.Name
	}
	return fmt.Sprintf("#%d", id)
}

func printLineScore(box *model.BoxScore) {
	fmt.Printf("%-12s", "")
	for i := 1; i <= box.Innings; i++ {
		fmt.Printf("%3d", i)
	}
	fmt.Printf("  |  R  H\n")
	printLine(box.Away, box.AwayLine, box.AwayRuns, box.AwayHits, box.Innings)
	printLine(box.Home, box.HomeLine, box.HomeRuns, box.HomeHits, box.Innings)
	fmt.Printf("\nFinal: %s %d, %s %d (%d innings)\n",
		box.Winner(), maxInt(box.AwayRuns, box.HomeRuns),
		box.Loser(), minInt(box.AwayRuns, box.HomeRuns), box.Innings)
}

func printLine(team string, line []int, runs, hits, innings int) {
	fmt.Printf("%-12s", team)
	for i := 0; i < innings; i++ {
		if i < len(line) {
			fmt.Printf("%3d", line[i])
		} else {
			fmt.Printf("%3s", "x") // home half skipped with the lead
		}
	}
	fmt.Printf("  |%3d%3d\n", runs, hits)
}

func printStandings(standings []season.Standing) {
	fmt.Printf("%-14s %-5s %-5s %-7s %-5s\n", "team", "w", "l", "pct", "gb")
	for _, s := range standings {
		fmt.Printf("%-14s %-5d %-5d %-7.3f %-5.1f\n", s.Team, s.Wins, s.Losses, s.Pct, s.GamesBack)
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
