package handlers

import (
	"net/http"

	"baseball-sim/internal/api/models"
	"baseball-sim/internal/data"
	"baseball-sim/internal/model"

	"github.com/gin-gonic/gin"
)

// PlayersHandler serves the loaded roster
type PlayersHandler struct {
	roster *data.PlayerList
}

// NewPlayersHandler creates a new players handler
func NewPlayersHandler(list *data.PlayerList) *PlayersHandler {
	return &PlayersHandler{roster: list}
}

// ListTeams handles GET /api/v1/teams
func (h *PlayersHandler) ListTeams(c *gin.Context) {
	counts := map[string]*models.TeamInfo{}
	var order []string
	for i := range h.roster.Players {
		p := &h.roster.Players[i]
		info, ok := counts[p.Team]
		if !ok {
			info = &models.TeamInfo{Name: p.Team}
			counts[p.Team] = info
			order = append(order, p.Team)
		}
		if p.Role == model.RolePitcher {
			info.Pitchers++
		} else {
			info.Batters++
		}
	}
	out := make([]models.TeamInfo, 0, len(order))
	for _, t := range order {
		out = append(out, *counts[t])
	}
	c.JSON(http.StatusOK, gin.H{"teams": out})
}

// ListPlayers handles GET /api/v1/players
func (h *PlayersHandler) ListPlayers(c *gin.Context) {
	team := c.Query("team")
	role := c.Query("role")

	var out []model.Player
	for i := range h.roster.Players {
		p := h.roster.Players[i]
		if team != "" && p.Team != team {
			continue
		}
		if role != "" && string(p.Role) != role {
			continue
		}
		out = append(out, p)
	}
	c.JSON(http.StatusOK, gin.H{"players": out, "count": len(out)})
}
