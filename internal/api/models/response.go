package models

import (
	"baseball-sim/internal/model"
	"baseball-sim/internal/season"
)

// GameResponse represents the response from a single-game simulation
type GameResponse struct {
	Status string             `json:"status"`
	Box    *model.BoxScore    `json:"box"`
	Events []model.AtBatEvent `json:"events,omitempty"`
}

// SeasonResponse represents the state of a season run
type SeasonResponse struct {
	ID        string            `json:"id"`
	Status    string            `json:"status"` // "paused", "running", "finished", "failed"
	Day       int               `json:"day"`
	TotalDays int               `json:"total_days"`
	Teams     []string          `json:"teams"`
	Standings []season.Standing `json:"standings"`
	Error     string            `json:"error,omitempty"`
}

// SeasonListResponse lists active season runs
type SeasonListResponse struct {
	Seasons []SeasonResponse `json:"seasons"`
}

// StandingsResponse represents a standings snapshot
type StandingsResponse struct {
	Day       int               `json:"day"`
	Standings []season.Standing `json:"standings"`
}

// InjuryResponse represents the league injury report
type InjuryResponse struct {
	Day      int                     `json:"day"`
	Injuries []season.InjurySnapshot `json:"injuries"`
}

// GamesResponse lists recent completed games for a season
type GamesResponse struct {
	Games []*model.BoxScore `json:"games"`
}

// RankResponse represents the response from ranking players
type RankResponse struct {
	Rankings []Ranking `json:"rankings"`
}

// Ranking represents one ranked player
type Ranking struct {
	Rank   int            `json:"rank"`
	Player model.PlayerID `json:"player"`
	Name   string         `json:"name"`
	Team   string         `json:"team"`
	Role   model.Role     `json:"role"`
	OPS    float64        `json:"ops"`
	RA9    float64        `json:"ra9"`
	WAR    float64        `json:"war"`
}

// TeamInfo represents one team in the loaded roster
type TeamInfo struct {
	Name     string `json:"name"`
	Batters  int    `json:"batters"`
	Pitchers int    `json:"pitchers"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
