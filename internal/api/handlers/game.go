package handlers

import (
	"errors"
	"net/http"

	"baseball-sim/internal/api/models"
	"baseball-sim/internal/data"
	"baseball-sim/internal/game"
	"baseball-sim/internal/model"
	"baseball-sim/internal/roster"
	"baseball-sim/internal/sim"
	"baseball-sim/internal/stats"

	"github.com/gin-gonic/gin"
)

// GameHandler handles single-game simulation requests
type GameHandler struct {
	roster *data.PlayerList
}

// NewGameHandler creates a new game handler over the loaded roster
func NewGameHandler(list *data.PlayerList) *GameHandler {
	return &GameHandler{roster: list}
}

// SimulateGame handles POST /api/v1/game
func (h *GameHandler) SimulateGame(c *gin.Context) {
	var req models.GameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	// Exhibition games run against a private copy of the roster so the
	// shared list is never mutated.
	store, err := stats.NewStore(h.roster.Players)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "ROSTER_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	away, err := roster.Build(store, req.Away, 5)
	if err != nil {
		respondTeamError(c, req.Away, err)
		return
	}
	home, err := roster.Build(store, req.Home, 5)
	if err != nil {
		respondTeamError(c, req.Home, err)
		return
	}

	base, err := stats.ComputeBaseline(store.Players())
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "EMPTY_LEAGUE",
				Message: err.Error(),
			},
		})
		return
	}

	var rng sim.RandomSource
	if req.Seed != 0 {
		rng = sim.NewSeededRNG(req.Seed)
	} else {
		rng = sim.NewRNG()
	}

	var events []model.AtBatEvent
	var eventFn game.EventFn
	if req.Options.IncludeEvents {
		eventFn = func(e model.AtBatEvent) { events = append(events, e) }
	}

	engine := game.NewEngine(sim.NewModel(0), GameConfigFromRequest(req.Config))
	box, err := engine.Play(store, base, away, home, 0, rng, eventFn)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "GAME_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.GameResponse{
		Status: "completed",
		Box:    box,
		Events: events,
	})
}

func respondTeamError(c *gin.Context, team string, err error) {
	code := "INVALID_TEAM"
	if errors.Is(err, roster.ErrEmptyLineup) || errors.Is(err, roster.ErrNoStarter) {
		code = "ROSTER_TOO_SMALL"
	}
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
			Details: map[string]interface{}{"team": team},
		},
	})
}

// GameConfigFromRequest converts request overrides to engine config.
func GameConfigFromRequest(g models.GameConfig) game.Config {
	return game.Config{
		MaxInnings:         g.MaxInnings,
		FatigueStart:       g.FatigueStart,
		FatigueRate:        g.FatigueRate,
		FatigueSub:         g.FatigueSub,
		ExtraInningsRunner: g.ExtraInningsRunner,
		StealAttempts:      g.StealAttempts,
		Baserunning:        game.BaserunningConfig{Aggressive: g.AggressiveRunning},
	}
}
