package web

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"mathventure/internal/puzzlegen"
	"mathventure/internal/store"
)

// stubRepo records appended events in memory.
type stubRepo struct {
	sessions    []store.SessionEventData
	attempts    []store.AttemptEventData
	transitions []store.TransitionEventData
	recent      []store.SessionRecord
}

func (r *stubRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	r.sessions = append(r.sessions, data)
	return nil
}

func (r *stubRepo) AppendAttemptEvent(_ context.Context, data store.AttemptEventData) error {
	r.attempts = append(r.attempts, data)
	return nil
}

func (r *stubRepo) AppendTransitionEvent(_ context.Context, data store.TransitionEventData) error {
	r.transitions = append(r.transitions, data)
	return nil
}

func (r *stubRepo) RecentSessions(context.Context, int) ([]store.SessionRecord, error) {
	return r.recent, nil
}

func (r *stubRepo) SessionAttempts(context.Context, string) ([]store.AttemptRecord, error) {
	return nil, nil
}

func (r *stubRepo) SessionTransitions(context.Context, string) ([]store.TransitionRecord, error) {
	return nil, nil
}

func (r *stubRepo) Totals(context.Context) (store.TotalStats, error) {
	return store.TotalStats{}, nil
}

func newTestServer(t *testing.T) (*Server, *stubRepo) {
	t.Helper()
	repo := &stubRepo{}
	gen := puzzlegen.New(rand.New(rand.NewSource(11)))
	srv, err := New(zap.NewNop(), repo, gen)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv, repo
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func postForm(t *testing.T, h http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHomePage(t *testing.T) {
	srv, _ := newTestServer(t)
	w := get(t, srv.Handler(), "/")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Start practice") {
		t.Error("home page missing start form")
	}
}

func TestPlayWithoutSessionRedirects(t *testing.T) {
	srv, _ := newTestServer(t)
	w := get(t, srv.Handler(), "/play")
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/" {
		t.Fatalf("expected redirect to /, got %d %q", w.Code, w.Header().Get("Location"))
	}
}

func TestStartSessionRejectsBadLevel(t *testing.T) {
	srv, _ := newTestServer(t)
	w := postForm(t, srv.Handler(), "/session", url.Values{
		"level": {"Impossible"},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestFullSessionFlow(t *testing.T) {
	srv, repo := newTestServer(t)
	h := srv.Handler()

	w := postForm(t, h, "/session", url.Values{
		"player": {"Ada"},
		"level":  {"Easy"},
		"count":  {"5"},
	})
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/play" {
		t.Fatalf("start session: %d %q", w.Code, w.Header().Get("Location"))
	}
	if len(repo.sessions) != 1 || repo.sessions[0].Action != "start" {
		t.Fatalf("start event not recorded: %+v", repo.sessions)
	}

	for i := 0; i < 5; i++ {
		w := get(t, h, "/play")
		if w.Code != http.StatusOK {
			t.Fatalf("play page %d: status %d", i, w.Code)
		}

		srv.mu.Lock()
		answer := srv.round.sess.Current().Answer
		srv.mu.Unlock()

		w = postForm(t, h, "/answer", url.Values{
			"answer": {fmt.Sprint(answer)},
		})
		if w.Code != http.StatusSeeOther {
			t.Fatalf("answer %d: status %d", i, w.Code)
		}
		want := "/play"
		if i == 4 {
			want = "/summary"
		}
		if got := w.Header().Get("Location"); got != want {
			t.Fatalf("answer %d redirect = %q, want %q", i, got, want)
		}
	}

	w = get(t, h, "/summary")
	if w.Code != http.StatusOK {
		t.Fatalf("summary: status %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Nice work, Ada!") {
		t.Error("summary missing player greeting")
	}
	if !strings.Contains(body, "100%") {
		t.Error("summary missing accuracy")
	}

	if len(repo.attempts) != 5 {
		t.Errorf("recorded %d attempts, want 5", len(repo.attempts))
	}
	// The engine is consulted on the third attempt only; attempt five ends
	// the session with nothing left to adjust for.
	if len(repo.transitions) != 1 {
		t.Errorf("recorded %d transitions, want 1", len(repo.transitions))
	}
	last := repo.sessions[len(repo.sessions)-1]
	if last.Action != "end" || last.CorrectAnswers != 5 {
		t.Errorf("end event = %+v", last)
	}
}

func TestEndEarly(t *testing.T) {
	srv, repo := newTestServer(t)
	h := srv.Handler()

	postForm(t, h, "/session", url.Values{
		"player": {"Ada"},
		"level":  {"Medium"},
		"count":  {"10"},
	})

	srv.mu.Lock()
	answer := srv.round.sess.Current().Answer
	srv.mu.Unlock()
	postForm(t, h, "/answer", url.Values{"answer": {fmt.Sprint(answer)}})

	w := postForm(t, h, "/end", nil)
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/summary" {
		t.Fatalf("end early: %d %q", w.Code, w.Header().Get("Location"))
	}

	last := repo.sessions[len(repo.sessions)-1]
	if last.Action != "end" || last.PuzzlesServed != 1 {
		t.Errorf("end event = %+v", last)
	}

	srv.mu.Lock()
	round := srv.round
	srv.mu.Unlock()
	if round != nil {
		t.Error("round still active after early end")
	}
}

func TestHistoryPage(t *testing.T) {
	srv, repo := newTestServer(t)
	repo.recent = []store.SessionRecord{{
		SessionID:      "sess-1",
		Player:         "Ada",
		StartingLevel:  1,
		FinalLevel:     2,
		PuzzlesServed:  10,
		CorrectAnswers: 8,
		BestStreak:     5,
		DurationSecs:   120,
		EndedAt:        time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}}

	w := get(t, srv.Handler(), "/history")
	if w.Code != http.StatusOK {
		t.Fatalf("history: status %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Ada") || !strings.Contains(body, "8/10") {
		t.Error("history page missing session row")
	}
}
