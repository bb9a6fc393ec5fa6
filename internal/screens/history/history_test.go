package history

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"mathventure/internal/store"
)

type stubRepo struct {
	sessions    []store.SessionRecord
	transitions map[string][]store.TransitionRecord
	attempts    map[string][]store.AttemptRecord

	attemptQueries []string
}

func (r *stubRepo) AppendSessionEvent(context.Context, store.SessionEventData) error { return nil }
func (r *stubRepo) AppendAttemptEvent(context.Context, store.AttemptEventData) error { return nil }
func (r *stubRepo) AppendTransitionEvent(context.Context, store.TransitionEventData) error {
	return nil
}

func (r *stubRepo) RecentSessions(_ context.Context, limit int) ([]store.SessionRecord, error) {
	if len(r.sessions) > limit {
		return r.sessions[:limit], nil
	}
	return r.sessions, nil
}

func (r *stubRepo) SessionAttempts(_ context.Context, sessionID string) ([]store.AttemptRecord, error) {
	r.attemptQueries = append(r.attemptQueries, sessionID)
	return r.attempts[sessionID], nil
}

func (r *stubRepo) SessionTransitions(_ context.Context, sessionID string) ([]store.TransitionRecord, error) {
	return r.transitions[sessionID], nil
}

func (r *stubRepo) Totals(context.Context) (store.TotalStats, error) {
	return store.TotalStats{}, nil
}

func loadedScreen(t *testing.T, repo *stubRepo) *HistoryScreen {
	t.Helper()
	s := New(repo)
	msg := s.Init()()
	updated, _ := s.Update(msg)
	return updated.(*HistoryScreen)
}

func testRepo() *stubRepo {
	return &stubRepo{
		sessions: []store.SessionRecord{{
			SessionID:      "s1",
			Player:         "Ada",
			StartingLevel:  1,
			FinalLevel:     2,
			PuzzlesServed:  10,
			CorrectAnswers: 8,
			BestStreak:     5,
			DurationSecs:   95,
			EndedAt:        time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
		}},
		transitions: map[string][]store.TransitionRecord{
			"s1": {
				{FromLevel: 1, ToLevel: 2, Decision: "INCREASE", Reason: "Excellent performance! Moving up."},
				{FromLevel: 2, ToLevel: 2, Decision: "MAINTAIN", Reason: "Performance is appropriate for current level"},
			},
		},
		attempts: map[string][]store.AttemptRecord{
			"s1": {
				{Question: "7 + 5", CorrectAnswer: 12, UserAnswer: 12, Correct: true, TimeMs: 3100, Difficulty: 1},
				{Question: "9 - 4", CorrectAnswer: 5, UserAnswer: 6, Correct: false, TimeMs: 8000, Difficulty: 1},
			},
		},
	}
}

func TestListsFinishedSessions(t *testing.T) {
	s := loadedScreen(t, testRepo())

	view := s.View(100, 30)
	for _, want := range []string{"Ada", "8/10 correct (80%)", "1:35", "Easy → Medium"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestExpandLoadsAttempts(t *testing.T) {
	repo := testRepo()
	s := loadedScreen(t, repo)

	updated, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = updated.(*HistoryScreen)
	if cmd == nil {
		t.Fatal("expected an attempt load command on first expand")
	}
	updated, _ = s.Update(cmd())
	s = updated.(*HistoryScreen)

	if len(repo.attemptQueries) != 1 || repo.attemptQueries[0] != "s1" {
		t.Fatalf("attempt queries = %v, want [s1]", repo.attemptQueries)
	}

	view := s.View(100, 30)
	for _, want := range []string{"✓ 7 + 5 = 12", "✗ 9 - 4 = 5  (answered 6)", "Excellent performance", "Best streak: 5"} {
		if !strings.Contains(view, want) {
			t.Errorf("expanded view missing %q", want)
		}
	}
	if strings.Contains(view, "appropriate for current level") {
		t.Error("expanded view should not show maintain decisions")
	}
}

func TestExpandReusesLoadedAttempts(t *testing.T) {
	repo := testRepo()
	s := loadedScreen(t, repo)

	updated, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = updated.(*HistoryScreen)
	updated, _ = s.Update(cmd())
	s = updated.(*HistoryScreen)

	// Collapse and re-expand; the cached attempts serve the second view.
	updated, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = updated.(*HistoryScreen)
	updated, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = updated.(*HistoryScreen)

	if cmd != nil {
		t.Fatal("second expand should not refetch")
	}
	if len(repo.attemptQueries) != 1 {
		t.Fatalf("attempt queries = %d, want 1", len(repo.attemptQueries))
	}
}
