package season

import "sort"

// Record is one team's win/loss tally.
type Record struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}

// Standing is one row of the standings snapshot.
type Standing struct {
	Team      string  `json:"team"`
	Wins      int     `json:"wins"`
	Losses    int     `json:"losses"`
	Pct       float64 `json:"pct"`
	GamesBack float64 `json:"games_back"`
}

// ComputeStandings sorts teams by winning percentage and fills in games back
// relative to the leader: GB = ((leaderW - W) + (L - leaderL)) / 2.
func ComputeStandings(records map[string]Record) []Standing {
	out := make([]Standing, 0, len(records))
	for team, r := range records {
		s := Standing{Team: team, Wins: r.Wins, Losses: r.Losses}
		if g := r.Wins + r.Losses; g > 0 {
			s.Pct = float64(r.Wins) / float64(g)
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Pct != out[j].Pct {
			return out[i].Pct > out[j].Pct
		}
		if out[i].Wins != out[j].Wins {
			return out[i].Wins > out[j].Wins
		}
		return out[i].Team < out[j].Team
	})
	if len(out) > 0 {
		lead := out[0]
		for i := range out {
			out[i].GamesBack = float64((lead.Wins-out[i].Wins)+(out[i].Losses-lead.Losses)) / 2
		}
	}
	return out
}
