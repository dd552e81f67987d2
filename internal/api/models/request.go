package models

// GameRequest represents the request body for simulating a single game
type GameRequest struct {
	Away string `json:"away" binding:"required"`
	Home string `json:"home" binding:"required"`
	// Seed makes the game reproducible; 0 draws a random seed.
	Seed    uint64      `json:"seed,omitempty"`
	Config  GameConfig  `json:"config,omitempty"`
	Options GameOptions `json:"options,omitempty"`
}

// GameConfig contains per-game rule overrides
type GameConfig struct {
	MaxInnings         int     `json:"max_innings,omitempty"`
	FatigueStart       float64 `json:"fatigue_start,omitempty"`
	FatigueRate        float64 `json:"fatigue_rate,omitempty"`
	FatigueSub         float64 `json:"fatigue_sub,omitempty"`
	ExtraInningsRunner bool    `json:"extra_innings_runner,omitempty"`
	StealAttempts      bool    `json:"steal_attempts,omitempty"`
	AggressiveRunning  bool    `json:"aggressive_running,omitempty"`
}

// GameOptions contains optional game parameters
type GameOptions struct {
	IncludeEvents bool `json:"include_events,omitempty"` // default: false
}

// SeasonRequest represents a request to create a season run
type SeasonRequest struct {
	// Teams selects a subset of the loaded roster; empty means every team.
	Teams        []string     `json:"teams,omitempty"`
	GamesPerTeam int          `json:"games_per_team,omitempty"`
	Workers      int          `json:"workers,omitempty"`
	Seed         uint64       `json:"seed,omitempty"`
	Game         GameConfig   `json:"game,omitempty"`
	Injury       InjuryConfig `json:"injury,omitempty"`
	// Autostart begins simulating immediately instead of waiting for a
	// control request.
	Autostart bool `json:"autostart,omitempty"`
}

// InjuryConfig contains injury model overrides
type InjuryConfig struct {
	PitcherRate float64 `json:"pitcher_rate,omitempty"`
	BatterRate  float64 `json:"batter_rate,omitempty"`
	AgeAdjust   float64 `json:"age_adjust,omitempty"`
}

// ControlRequest represents a season control action
type ControlRequest struct {
	Action string `json:"action" binding:"required"` // "start", "pause", "resume", "step", "stop"
	Steps  int    `json:"steps,omitempty"`           // for "step"; default 1
}

// RankRequest represents a request to rank players by value
type RankRequest struct {
	Role  string `form:"role,omitempty"`  // "BATTER", "PITCHER", or empty for all
	Team  string `form:"team,omitempty"`  // filter by team
	Limit int    `form:"limit,omitempty"` // default: 10
}
