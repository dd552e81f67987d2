package season

import "baseball-sim/internal/model"

// Sink receives season lifecycle events. The scheduler emits unconditionally
// and stays ignorant of the consumer: console, API collector, and test
// harness all implement the same hooks.
type Sink interface {
	DayStarted(day int, matchups []Matchup)
	GameCompleted(day int, box *model.BoxScore)
	// GameFailed reports a game that could not be simulated (fatal
	// configuration error for that game; the rest of the day proceeds).
	GameFailed(day int, m Matchup, err error)
	DayCompleted(day int, standings []Standing)
	InjuryUpdated(day int, snapshot InjurySnapshot)
}

// InjurySnapshot is one row of the daily injury report.
type InjurySnapshot struct {
	Player        model.PlayerID     `json:"player"`
	Name          string             `json:"name"`
	Team          string             `json:"team"`
	Status        model.InjuryStatus `json:"status"`
	Description   string             `json:"description,omitempty"`
	DaysRemaining int                `json:"days_remaining"`
}

// NopSink discards every event.
type NopSink struct{}

func (NopSink) DayStarted(int, []Matchup)          {}
func (NopSink) GameCompleted(int, *model.BoxScore) {}
func (NopSink) GameFailed(int, Matchup, error)     {}
func (NopSink) DayCompleted(int, []Standing)       {}
func (NopSink) InjuryUpdated(int, InjurySnapshot)  {}
