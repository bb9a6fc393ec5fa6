package store

import (
	"context"
	"fmt"

	"mathventure/ent/sessionevent"
)

// Totals aggregates the whole log in Go rather than SQL; the per-level
// breakdown needs every attempt row anyway and the data set is one
// player's practice history.
func (r *eventRepo) Totals(ctx context.Context) (TotalStats, error) {
	stats := TotalStats{ByLevel: make(map[int]LevelTally)}

	sessions, err := r.client.SessionEvent.Query().
		Where(sessionevent.Action("end")).
		All(ctx)
	if err != nil {
		return TotalStats{}, fmt.Errorf("query sessions: %w", err)
	}
	stats.Sessions = len(sessions)
	for _, s := range sessions {
		if s.BestStreak > stats.BestStreak {
			stats.BestStreak = s.BestStreak
		}
	}

	attempts, err := r.client.AttemptEvent.Query().All(ctx)
	if err != nil {
		return TotalStats{}, fmt.Errorf("query attempts: %w", err)
	}
	stats.Attempts = len(attempts)
	for _, a := range attempts {
		tally := stats.ByLevel[a.Difficulty]
		tally.Total++
		if a.Correct {
			tally.Correct++
			stats.Correct++
		}
		stats.ByLevel[a.Difficulty] = tally
	}
	return stats, nil
}
