package handlers

import (
	"fmt"
	"net/http"
	"sync"

	"baseball-sim/internal/analysis"
	"baseball-sim/internal/api/models"
	"baseball-sim/internal/data"
	"baseball-sim/internal/model"
	"baseball-sim/internal/season"
	"baseball-sim/internal/stats"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// recentGames bounds the per-season box score ring the API serves.
const recentGames = 50

// gameCollector implements season.Sink, keeping the most recent box scores
// for the games endpoint. Day and injury events are served straight from the
// scheduler, so only completions are retained here.
type gameCollector struct {
	mu    sync.Mutex
	boxes []*model.BoxScore
}

func (g *gameCollector) DayStarted(int, []season.Matchup) {}

func (g *gameCollector) GameCompleted(_ int, box *model.BoxScore) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.boxes = append(g.boxes, box)
	if len(g.boxes) > recentGames {
		g.boxes = g.boxes[len(g.boxes)-recentGames:]
	}
}

func (g *gameCollector) GameFailed(int, season.Matchup, error)    {}
func (g *gameCollector) DayCompleted(int, []season.Standing)      {}
func (g *gameCollector) InjuryUpdated(int, season.InjurySnapshot) {}

func (g *gameCollector) recent() []*model.BoxScore {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]*model.BoxScore, len(g.boxes))
	copy(out, g.boxes)
	return out
}

// seasonRun bundles one live season: its scheduler, its private stat store,
// and the event collector feeding the games endpoint.
type seasonRun struct {
	id        string
	teams     []string
	store     *stats.Store
	sched     *season.Scheduler
	collector *gameCollector
}

func (r *seasonRun) status() string {
	select {
	case <-r.sched.Done():
		if r.sched.Err() != nil {
			return "failed"
		}
		return "finished"
	default:
	}
	if r.sched.Paused() {
		return "paused"
	}
	return "running"
}

func (r *seasonRun) toResponse() models.SeasonResponse {
	resp := models.SeasonResponse{
		ID:        r.id,
		Status:    r.status(),
		Day:       r.sched.Day(),
		TotalDays: r.sched.TotalDays(),
		Teams:     r.teams,
		Standings: r.sched.Standings(),
	}
	if err := r.sched.Err(); err != nil {
		resp.Error = err.Error()
	}
	return resp
}

// SeasonHandler manages season runs keyed by id
type SeasonHandler struct {
	roster *data.PlayerList

	mu   sync.Mutex
	runs map[string]*seasonRun
}

// NewSeasonHandler creates a new season handler over the loaded roster
func NewSeasonHandler(list *data.PlayerList) *SeasonHandler {
	return &SeasonHandler{roster: list, runs: make(map[string]*seasonRun)}
}

// CreateSeason handles POST /api/v1/seasons
func (h *SeasonHandler) CreateSeason(c *gin.Context) {
	var req models.SeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	teams := req.Teams
	if len(teams) == 0 {
		teams = h.roster.Teams()
	}

	// Each season mutates its own copy of the roster.
	store, err := stats.NewStore(h.playersFor(teams))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "ROSTER_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	cfg := season.Config{
		GamesPerTeam: req.GamesPerTeam,
		Workers:      req.Workers,
		Seed:         req.Seed,
		Game:         GameConfigFromRequest(req.Game),
		Injury: season.InjuryConfig{
			PitcherRate: req.Injury.PitcherRate,
			BatterRate:  req.Injury.BatterRate,
			AgeAdjust:   req.Injury.AgeAdjust,
		},
	}

	collector := &gameCollector{}
	sched, err := season.NewScheduler(store, teams, cfg, collector, nil)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_SEASON",
				Message: err.Error(),
			},
		})
		return
	}

	run := &seasonRun{
		id:        uuid.NewString(),
		teams:     teams,
		store:     store,
		sched:     sched,
		collector: collector,
	}
	h.mu.Lock()
	h.runs[run.id] = run
	h.mu.Unlock()

	if req.Autostart {
		sched.Start()
	}
	c.JSON(http.StatusCreated, run.toResponse())
}

// ListSeasons handles GET /api/v1/seasons
func (h *SeasonHandler) ListSeasons(c *gin.Context) {
	h.mu.Lock()
	runs := make([]*seasonRun, 0, len(h.runs))
	for _, r := range h.runs {
		runs = append(runs, r)
	}
	h.mu.Unlock()

	resp := models.SeasonListResponse{Seasons: make([]models.SeasonResponse, 0, len(runs))}
	for _, r := range runs {
		resp.Seasons = append(resp.Seasons, r.toResponse())
	}
	c.JSON(http.StatusOK, resp)
}

// GetSeason handles GET /api/v1/seasons/:id
func (h *SeasonHandler) GetSeason(c *gin.Context) {
	run, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, run.toResponse())
}

// ControlSeason handles POST /api/v1/seasons/:id/control
func (h *SeasonHandler) ControlSeason(c *gin.Context) {
	run, ok := h.lookup(c)
	if !ok {
		return
	}
	var req models.ControlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	// Control actions are idempotent; repeating one in the current state is
	// always accepted.
	switch req.Action {
	case "start", "resume":
		run.sched.Start()
	case "pause":
		run.sched.Pause()
	case "step":
		steps := req.Steps
		if steps <= 0 {
			steps = 1
		}
		run.sched.Step(steps)
	case "stop":
		run.sched.Stop()
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_ACTION",
				Message: fmt.Sprintf("unknown action %q", req.Action),
			},
		})
		return
	}
	c.JSON(http.StatusOK, run.toResponse())
}

// DeleteSeason handles DELETE /api/v1/seasons/:id
func (h *SeasonHandler) DeleteSeason(c *gin.Context) {
	run, ok := h.lookup(c)
	if !ok {
		return
	}
	run.sched.Stop()
	h.mu.Lock()
	delete(h.runs, run.id)
	h.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// GetStandings handles GET /api/v1/seasons/:id/standings
func (h *SeasonHandler) GetStandings(c *gin.Context) {
	run, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.StandingsResponse{
		Day:       run.sched.Day(),
		Standings: run.sched.Standings(),
	})
}

// GetInjuries handles GET /api/v1/seasons/:id/injuries
func (h *SeasonHandler) GetInjuries(c *gin.Context) {
	run, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.InjuryResponse{
		Day:      run.sched.Day(),
		Injuries: run.sched.Injuries(),
	})
}

// GetGames handles GET /api/v1/seasons/:id/games
func (h *SeasonHandler) GetGames(c *gin.Context) {
	run, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.GamesResponse{Games: run.collector.recent()})
}

// RankPlayers handles GET /api/v1/seasons/:id/rankings
func (h *SeasonHandler) RankPlayers(c *gin.Context) {
	run, ok := h.lookup(c)
	if !ok {
		return
	}
	var req models.RankRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}
	limit := req.Limit
	if limit <= 0 {
		limit = 10
	}

	players := run.store.Players()
	base, err := stats.ComputeBaseline(players)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "EMPTY_LEAGUE",
				Message: err.Error(),
			},
		})
		return
	}

	ranked := analysis.RankByWAR(players, base)
	resp := models.RankResponse{Rankings: make([]models.Ranking, 0, limit)}
	rank := 0
	for _, v := range ranked {
		if req.Role != "" && string(v.Role) != req.Role {
			continue
		}
		if req.Team != "" && v.Team != req.Team {
			continue
		}
		rank++
		resp.Rankings = append(resp.Rankings, models.Ranking{
			Rank:   rank,
			Player: v.Player,
			Name:   v.Name,
			Team:   v.Team,
			Role:   v.Role,
			OPS:    v.OPS,
			RA9:    v.RA9,
			WAR:    v.WAR,
		})
		if rank >= limit {
			break
		}
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SeasonHandler) lookup(c *gin.Context) (*seasonRun, bool) {
	id := c.Param("id")
	h.mu.Lock()
	run, ok := h.runs[id]
	h.mu.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SEASON_NOT_FOUND",
				Message: fmt.Sprintf("no season with id %q", id),
			},
		})
		return nil, false
	}
	return run, true
}

// playersFor filters the loaded roster down to the requested teams.
func (h *SeasonHandler) playersFor(teams []string) []model.Player {
	want := make(map[string]bool, len(teams))
	for _, t := range teams {
		want[t] = true
	}
	var out []model.Player
	for i := range h.roster.Players {
		if want[h.roster.Players[i].Team] {
			out = append(out, h.roster.Players[i])
		}
	}
	return out
}
