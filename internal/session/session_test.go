package session

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"mathventure/internal/puzzlegen"
	"mathventure/internal/quiz"
)

var t0 = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func newSession(t *testing.T, cfg Config) *Session {
	t.Helper()
	gen := puzzlegen.New(rand.New(rand.NewSource(7)))
	s, err := New(cfg, gen, t0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

// answer plays one full turn, right or wrong as requested.
func answer(t *testing.T, s *Session, correct bool, elapsed time.Duration) Outcome {
	t.Helper()
	p, err := s.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	a := p.Answer
	if !correct {
		a++
	}
	out, err := s.Submit(a, elapsed, t0)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	return out
}

func TestConfigValidation(t *testing.T) {
	gen := puzzlegen.New(rand.New(rand.NewSource(1)))
	cases := []struct {
		name string
		cfg  Config
	}{
		{"level too low", Config{StartLevel: 0, PuzzleCount: 10, AdjustEvery: 3}},
		{"level too high", Config{StartLevel: 5, PuzzleCount: 10, AdjustEvery: 3}},
		{"count too low", Config{StartLevel: quiz.Easy, PuzzleCount: 4, AdjustEvery: 3}},
		{"count too high", Config{StartLevel: quiz.Easy, PuzzleCount: 51, AdjustEvery: 3}},
		{"negative cadence", Config{StartLevel: quiz.Easy, PuzzleCount: 10, AdjustEvery: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.cfg, gen, t0); err == nil {
				t.Fatalf("expected error for %+v", tc.cfg)
			}
		})
	}
}

func TestDefaultsApplied(t *testing.T) {
	s := newSession(t, Config{StartLevel: quiz.Medium})
	if got := s.Config().PuzzleCount; got != DefaultPuzzleCount {
		t.Fatalf("PuzzleCount = %d, want %d", got, DefaultPuzzleCount)
	}
	if got := s.Config().AdjustEvery; got != DefaultAdjustEvery {
		t.Fatalf("AdjustEvery = %d, want %d", got, DefaultAdjustEvery)
	}
}

func TestNextIsIdempotentUntilSubmit(t *testing.T) {
	s := newSession(t, Config{StartLevel: quiz.Easy, PuzzleCount: 5})
	p1, err := s.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	p2, err := s.Next()
	if err != nil {
		t.Fatalf("Next again: %v", err)
	}
	if p1 != p2 {
		t.Fatalf("second Next dealt a new puzzle: %v vs %v", p1, p2)
	}
	if s.Served() != 1 {
		t.Fatalf("Served = %d, want 1", s.Served())
	}
}

func TestSubmitWithoutNext(t *testing.T) {
	s := newSession(t, Config{StartLevel: quiz.Easy, PuzzleCount: 5})
	if _, err := s.Submit(1, time.Second, t0); !errors.Is(err, ErrNoActivePuzzle) {
		t.Fatalf("err = %v, want ErrNoActivePuzzle", err)
	}
}

func TestAdjustCadence(t *testing.T) {
	s := newSession(t, Config{StartLevel: quiz.Easy, PuzzleCount: 9, AdjustEvery: 3})
	for i := 1; i <= 9; i++ {
		out := answer(t, s, true, 2*time.Second)
		fired := out.Transition != nil
		// Every third attempt triggers the engine except the last one,
		// where no puzzles remain to benefit from the change.
		want := i%3 == 0 && i < 9
		if fired != want {
			t.Fatalf("attempt %d: transition fired = %v, want %v", i, fired, want)
		}
	}
	if !s.Done() {
		t.Fatal("session should be complete after final answer")
	}
}

func TestFastCorrectRunClimbs(t *testing.T) {
	s := newSession(t, Config{StartLevel: quiz.Easy, PuzzleCount: 10})
	var last *quiz.Transition
	for i := 0; i < 6; i++ {
		out := answer(t, s, true, 2*time.Second)
		if out.Transition != nil {
			last = out.Transition
		}
	}
	if last == nil {
		t.Fatal("expected at least one transition")
	}
	if s.Level() != quiz.Hard {
		t.Fatalf("level after two perfect blocks = %v, want %v", s.Level(), quiz.Hard)
	}
	if last.Decision != quiz.DecisionIncrease {
		t.Fatalf("last decision = %q, want increase", last.Decision)
	}
}

func TestCompleteSessionRejectsMoreTurns(t *testing.T) {
	s := newSession(t, Config{StartLevel: quiz.Medium, PuzzleCount: 5})
	for i := 0; i < 5; i++ {
		answer(t, s, i%2 == 0, 4*time.Second)
	}
	if _, err := s.Next(); !errors.Is(err, ErrComplete) {
		t.Fatalf("Next after completion: %v, want ErrComplete", err)
	}
	if _, err := s.Submit(0, time.Second, t0); !errors.Is(err, ErrComplete) {
		t.Fatalf("Submit after completion: %v, want ErrComplete", err)
	}
}

func TestOutcomeReportsStreak(t *testing.T) {
	s := newSession(t, Config{StartLevel: quiz.Easy, PuzzleCount: 5})
	out := answer(t, s, true, time.Second)
	if !out.Correct || out.Streak != 1 {
		t.Fatalf("first turn: correct=%v streak=%d", out.Correct, out.Streak)
	}
	out = answer(t, s, false, time.Second)
	if out.Correct || out.Streak != 0 {
		t.Fatalf("wrong turn: correct=%v streak=%d", out.Correct, out.Streak)
	}
}

func TestMidSessionSummary(t *testing.T) {
	s := newSession(t, Config{StartLevel: quiz.Easy, PuzzleCount: 10})
	answer(t, s, true, 2*time.Second)
	answer(t, s, false, 4*time.Second)
	sum := s.Summary(t0.Add(time.Minute))
	if sum.TotalPuzzles != 2 || sum.Correct != 1 {
		t.Fatalf("summary = %+v", sum)
	}
	if sum.Duration != time.Minute {
		t.Fatalf("duration = %v, want 1m", sum.Duration)
	}
}
