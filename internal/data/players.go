package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"baseball-sim/internal/model"
)

// PlayerList is the on-disk roster shape.
type PlayerList struct {
	League    string         `json:"league"`
	UpdatedAt string         `json:"updated_at"` // ISO 8601 timestamp
	Players   []model.Player `json:"players"`
}

// LoadPlayers loads a roster from a JSON file
func LoadPlayers(filePath string) (*PlayerList, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read players file: %w", err)
	}

	var list PlayerList
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("failed to parse players file: %w", err)
	}

	return &list, nil
}

// SavePlayers saves a roster to a JSON file
func SavePlayers(list *PlayerList, filePath string) error {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	raw, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal players: %w", err)
	}

	if err := os.WriteFile(filePath, raw, 0644); err != nil {
		return fmt.Errorf("failed to write players file: %w", err)
	}

	return nil
}

// GetDefaultPlayersPath returns the default path for the roster file
func GetDefaultPlayersPath() string {
	// Try environment variable first
	if path := os.Getenv("PLAYERS_FILE"); path != "" {
		return path
	}
	// Default to data/players.json in project root
	return "./data/players.json"
}

// Teams returns the distinct team names in a roster, in first-seen order.
func (l *PlayerList) Teams() []string {
	seen := map[string]bool{}
	var out []string
	for i := range l.Players {
		t := l.Players[i].Team
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
