package data

import (
	"encoding/csv"
	"os"
	"strconv"

	"baseball-sim/internal/model"
	"baseball-sim/internal/season"
)

// WriteStandingsCSV writes a standings snapshot.
func WriteStandingsCSV(path string, standings []season.Standing) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"team", "wins", "losses", "pct", "games_back"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, s := range standings {
		row := []string{
			s.Team,
			strconv.Itoa(s.Wins),
			strconv.Itoa(s.Losses),
			fmtFloat(s.Pct),
			fmtFloat(s.GamesBack),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// WriteBattingCSV writes every batter's accumulated season line.
func WriteBattingCSV(path string, players []model.Player) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"id", "name", "team", "g", "pa", "ab", "r", "h", "2b", "3b", "hr",
		"rbi", "bb", "so", "hbp", "sf", "dp", "sb", "cs",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for i := range players {
		p := &players[i]
		b := p.SeasonBatting
		if b.PA == 0 {
			continue
		}
		row := []string{
			strconv.FormatInt(int64(p.ID), 10),
			p.Name,
			p.Team,
			strconv.Itoa(b.G),
			strconv.Itoa(b.PA),
			strconv.Itoa(b.AB),
			strconv.Itoa(b.R),
			strconv.Itoa(b.H),
			strconv.Itoa(b.Doubles),
			strconv.Itoa(b.Triples),
			strconv.Itoa(b.HR),
			strconv.Itoa(b.RBI),
			strconv.Itoa(b.BB),
			strconv.Itoa(b.SO),
			strconv.Itoa(b.HBP),
			strconv.Itoa(b.SF),
			strconv.Itoa(b.DP),
			strconv.Itoa(b.SB),
			strconv.Itoa(b.CS),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// WritePitchingCSV writes every pitcher's accumulated season line.
func WritePitchingCSV(path string, players []model.Player) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"id", "name", "team", "g", "gs", "w", "l", "sv", "bf", "outs",
		"r", "h", "hr", "bb", "so", "hbp",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for i := range players {
		p := &players[i]
		s := p.SeasonPitching
		if s.BF == 0 {
			continue
		}
		row := []string{
			strconv.FormatInt(int64(p.ID), 10),
			p.Name,
			p.Team,
			strconv.Itoa(s.G),
			strconv.Itoa(s.GS),
			strconv.Itoa(s.W),
			strconv.Itoa(s.L),
			strconv.Itoa(s.SV),
			strconv.Itoa(s.BF),
			strconv.Itoa(s.Outs),
			strconv.Itoa(s.R),
			strconv.Itoa(s.H),
			strconv.Itoa(s.HR),
			strconv.Itoa(s.BB),
			strconv.Itoa(s.SO),
			strconv.Itoa(s.HBP),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 3, 64)
}
