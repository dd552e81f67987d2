package analysis

import (
	"sort"

	"baseball-sim/internal/model"
	"baseball-sim/internal/stats"
)

type RankedValue struct {
	PlayerValue
}

// RankByWAR computes values for every player and sorts descending by WAR.
func RankByWAR(players []model.Player, base stats.Baseline) []RankedValue {
	out := make([]RankedValue, 0, len(players))
	for i := range players {
		v := ComputeValue(&players[i], base)
		out = append(out, RankedValue{PlayerValue: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].WAR != out[j].WAR {
			return out[i].WAR > out[j].WAR
		}
		return out[i].Player < out[j].Player
	})
	return out
}
