package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"baseball-sim/internal/game"
	"baseball-sim/internal/season"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Players points at the roster JSON the simulation loads its league from.
	Players string `yaml:"players"`
	// Optional: load season parameters from a separate YAML (e.g. examples/seasons/*.yaml).
	// If both SeasonFile and Season are provided, Season overrides SeasonFile.
	SeasonFile string        `yaml:"season_file"`
	Season     season.Config `yaml:"season"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If season_file is set, load it and merge in any explicit overrides from c.Season.
	if c.SeasonFile != "" {
		seasonPath := c.SeasonFile
		if !filepath.IsAbs(seasonPath) {
			// Prefer interpreting relative paths as relative to the config file directory,
			// but fall back to the provided path (relative to cwd) if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), seasonPath)
			if _, err := os.Stat(cand); err == nil {
				seasonPath = cand
			}
		}
		loaded, err := loadSeasonFile(seasonPath)
		if err != nil {
			return nil, err
		}
		c.Season = MergeSeason(loaded, c.Season)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Players == "" {
		return errors.New("players is required")
	}
	if c.Season.GamesPerTeam < 0 {
		return fmt.Errorf("season.games_per_team must not be negative, got %d", c.Season.GamesPerTeam)
	}
	if c.Season.Workers < 0 {
		return fmt.Errorf("season.workers must not be negative, got %d", c.Season.Workers)
	}
	g := c.Season.Game
	if g.FatigueStart < 0 || g.FatigueStart > 1 {
		return fmt.Errorf("season.game.fatigue_start must be in [0,1], got %g", g.FatigueStart)
	}
	if g.FatigueRate < 0 {
		return fmt.Errorf("season.game.fatigue_rate must not be negative, got %g", g.FatigueRate)
	}
	if g.FatigueSub != 0 && g.FatigueSub < 1 {
		return fmt.Errorf("season.game.fatigue_sub must be at least 1, got %g", g.FatigueSub)
	}
	if g.MaxInnings < 0 {
		return fmt.Errorf("season.game.max_innings must not be negative, got %d", g.MaxInnings)
	}
	return nil
}

type seasonFileWrapper struct {
	Season season.Config `yaml:"season"`
}

func loadSeasonFile(path string) (season.Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return season.Config{}, err
	}
	var w seasonFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return season.Config{}, err
	}
	return w.Season, nil
}

// MergeSeason overlays non-zero fields from override onto base.
// This is used when loading a season file and then applying overrides from the request.
func MergeSeason(base, override season.Config) season.Config {
	out := base
	if override.GamesPerTeam != 0 {
		out.GamesPerTeam = override.GamesPerTeam
	}
	if override.Workers != 0 {
		out.Workers = override.Workers
	}
	if override.RotationLen != 0 {
		out.RotationLen = override.RotationLen
	}
	if override.Seed != 0 {
		out.Seed = override.Seed
	}
	if override.SharedRNG {
		out.SharedRNG = true
	}
	out.Game = mergeGame(out.Game, override.Game)
	out.Injury = mergeInjury(out.Injury, override.Injury)
	return out
}

func mergeGame(base, override game.Config) game.Config {
	out := base
	if override.MaxInnings != 0 {
		out.MaxInnings = override.MaxInnings
	}
	if override.FatigueStart != 0 {
		out.FatigueStart = override.FatigueStart
	}
	if override.FatigueRate != 0 {
		out.FatigueRate = override.FatigueRate
	}
	if override.FatigueSub != 0 {
		out.FatigueSub = override.FatigueSub
	}
	if override.ExtraInningsRunner {
		out.ExtraInningsRunner = true
	}
	if override.StealAttempts {
		out.StealAttempts = true
	}
	if override.Baserunning.Aggressive {
		out.Baserunning.Aggressive = true
	}
	return out
}

func mergeInjury(base, override season.InjuryConfig) season.InjuryConfig {
	out := base
	if override.PitcherRate != 0 {
		out.PitcherRate = override.PitcherRate
	}
	if override.BatterRate != 0 {
		out.BatterRate = override.BatterRate
	}
	if override.AgeAdjust != 0 {
		out.AgeAdjust = override.AgeAdjust
	}
	if override.SeasonDays != 0 {
		out.SeasonDays = override.SeasonDays
	}
	if override.DayToDayMax != 0 {
		out.DayToDayMax = override.DayToDayMax
	}
	if override.ConditionRecovery != 0 {
		out.ConditionRecovery = override.ConditionRecovery
	}
	return out
}
