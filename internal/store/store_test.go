package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceIsGloballyMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next sequence: %v", err)
		}
		if seq <= prev {
			t.Fatalf("sequence %d not greater than previous %d", seq, prev)
		}
		prev = seq
	}
}

// recordSession appends a start event, n attempts, and an end event.
func recordSession(t *testing.T, repo EventRepo, id, player string, correct, total int) {
	t.Helper()
	ctx := context.Background()

	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:     id,
		Action:        "start",
		Player:        player,
		StartingLevel: 2,
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}
	for i := 0; i < total; i++ {
		err := repo.AppendAttemptEvent(ctx, AttemptEventData{
			SessionID:     id,
			Question:      "3 + 4",
			CorrectAnswer: 7,
			UserAnswer:    7,
			Correct:       i < correct,
			TimeMs:        1500,
			Difficulty:    2,
		})
		if err != nil {
			t.Fatalf("append attempt %d: %v", i, err)
		}
	}
	err = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:      id,
		Action:         "end",
		Player:         player,
		StartingLevel:  2,
		FinalLevel:     3,
		PuzzlesServed:  total,
		CorrectAnswers: correct,
		BestStreak:     correct,
		DurationSecs:   90,
	})
	if err != nil {
		t.Fatalf("append end: %v", err)
	}
}

func TestRecentSessionsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	recordSession(t, repo, "sess-1", "ada", 3, 5)
	recordSession(t, repo, "sess-2", "ada", 5, 5)

	records, err := repo.RecentSessions(ctx, 10)
	if err != nil {
		t.Fatalf("recent sessions: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d sessions, want 2", len(records))
	}
	if records[0].SessionID != "sess-2" || records[1].SessionID != "sess-1" {
		t.Fatalf("wrong order: %q then %q", records[0].SessionID, records[1].SessionID)
	}
	if records[0].CorrectAnswers != 5 || records[0].FinalLevel != 3 {
		t.Fatalf("unexpected record: %+v", records[0])
	}
}

func TestRecentSessionsIgnoresStarts(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// Abandoned session: start with no end.
	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:     "sess-open",
		Action:        "start",
		StartingLevel: 1,
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}

	records, err := repo.RecentSessions(ctx, 10)
	if err != nil {
		t.Fatalf("recent sessions: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("got %d sessions, want 0", len(records))
	}
}

func TestSessionAttemptsInPlayOrder(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	recordSession(t, repo, "sess-1", "ada", 2, 4)

	attempts, err := repo.SessionAttempts(ctx, "sess-1")
	if err != nil {
		t.Fatalf("session attempts: %v", err)
	}
	if len(attempts) != 4 {
		t.Fatalf("got %d attempts, want 4", len(attempts))
	}
	if !attempts[0].Correct || attempts[3].Correct {
		t.Fatalf("order lost: %+v", attempts)
	}
}

func TestSessionTransitionsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendTransitionEvent(ctx, TransitionEventData{
		SessionID:        "sess-1",
		FromLevel:        2,
		ToLevel:          3,
		Decision:         "INCREASE",
		PerformanceScore: 0.94,
		RecentAccuracy:   1.0,
		RecentAvgTime:    4.2,
		Reason:           "High performance (accuracy: 100.0%, avg time: 4.2s)",
	})
	if err != nil {
		t.Fatalf("append transition: %v", err)
	}

	transitions, err := repo.SessionTransitions(ctx, "sess-1")
	if err != nil {
		t.Fatalf("session transitions: %v", err)
	}
	if len(transitions) != 1 {
		t.Fatalf("got %d transitions, want 1", len(transitions))
	}
	tr := transitions[0]
	if tr.FromLevel != 2 || tr.ToLevel != 3 || tr.Decision != "INCREASE" {
		t.Fatalf("unexpected transition: %+v", tr)
	}
}

func TestTotals(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	recordSession(t, repo, "sess-1", "ada", 3, 5)
	recordSession(t, repo, "sess-2", "ada", 4, 5)

	stats, err := repo.Totals(ctx)
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if stats.Sessions != 2 || stats.Attempts != 10 || stats.Correct != 7 {
		t.Fatalf("totals = %+v", stats)
	}
	if stats.BestStreak != 4 {
		t.Fatalf("best streak = %d, want 4", stats.BestStreak)
	}
	tally := stats.ByLevel[2]
	if tally.Total != 10 || tally.Correct != 7 {
		t.Fatalf("level tally = %+v", tally)
	}
}
