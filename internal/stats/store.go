package stats

import (
	"fmt"
	"sort"
	"sync"

	"baseball-sim/internal/model"
)

// Store is the shared, synchronized statistics service for a season.
//
// All of a day's concurrently running games read player profiles through Read
// and settle their results through ApplyGameDeltas. The raw table is never
// exposed for unguarded mutation; every method holds the lock for the full
// critical section, so at-most-one-writer-at-a-time holds for any player.
type Store struct {
	mu      sync.RWMutex
	players map[model.PlayerID]*model.Player
}

// NewStore builds a store from an initial roster. Player identity must be
// unique; duplicates are a roster-construction defect.
func NewStore(players []model.Player) (*Store, error) {
	s := &Store{players: make(map[model.PlayerID]*model.Player, len(players))}
	for i := range players {
		p := players[i]
		if p.ID == 0 {
			return nil, fmt.Errorf("player %q has zero id", p.Name)
		}
		if _, dup := s.players[p.ID]; dup {
			return nil, fmt.Errorf("duplicate player id %d (%s)", p.ID, p.Name)
		}
		if p.Condition == 0 {
			p.Condition = 100
		}
		if p.Streak == 0 {
			p.Streak = 1.0
		}
		if p.Injury.Status == "" {
			p.Injury.Status = model.Healthy
		}
		s.players[p.ID] = &p
	}
	return s, nil
}

// Read returns a copy of one player's record.
func (s *Store) Read(id model.PlayerID) (model.Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.players[id]
	if !ok {
		return model.Player{}, false
	}
	return *p, true
}

// ApplyDelta merges a single player's counting-stat delta.
func (s *Store) ApplyDelta(id model.PlayerID, delta model.StatDelta) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applyLocked(id, delta)
}

// ApplyGameDeltas merges a whole game's deltas as one critical section, so
// merges from different games never interleave on the same player's counters.
func (s *Store) ApplyGameDeltas(deltas map[model.PlayerID]*model.StatDelta) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, d := range deltas {
		if err := s.applyLocked(id, *d); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) applyLocked(id model.PlayerID, delta model.StatDelta) error {
	p, ok := s.players[id]
	if !ok {
		return fmt.Errorf("apply delta: unknown player id %d", id)
	}
	p.SeasonBatting.Add(delta.Batting)
	p.SeasonPitching.Add(delta.Pitching)
	p.Condition += delta.ConditionDelta
	if p.Condition < 0 {
		p.Condition = 0
	}
	if p.Condition > 100 {
		p.Condition = 100
	}
	return nil
}

// Mutate runs fn against the live record under the write lock. Used by the
// season scheduler for injury clocks and daily recovery; fn must not retain
// the pointer past the call.
func (s *Store) Mutate(id model.PlayerID, fn func(*model.Player)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.players[id]
	if !ok {
		return false
	}
	fn(p)
	return true
}

// MutateAll runs fn against every live record under one write lock, in id
// order so seeded random mutation sequences reproduce across runs.
func (s *Store) MutateAll(fn func(*model.Player)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]model.PlayerID, 0, len(s.players))
	for id := range s.players {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		fn(s.players[id])
	}
}

// Players returns copies of every record, ordered by id for stable iteration.
func (s *Store) Players() []model.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Player, 0, len(s.players))
	for _, p := range s.players {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// TeamPlayers returns copies of one team's records, ordered by id.
func (s *Store) TeamPlayers(team string) []model.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Player, 0, 32)
	for _, p := range s.players {
		if p.Team == team {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of players in the store.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.players)
}
