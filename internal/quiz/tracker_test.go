package quiz

import (
	"errors"
	"testing"
	"time"
)

func attempt(correct bool, elapsed time.Duration, d Difficulty) Attempt {
	return Attempt{
		Question:      "2 + 2",
		CorrectAnswer: 4,
		UserAnswer:    4,
		Correct:       correct,
		Elapsed:       elapsed,
		Difficulty:    d,
		Timestamp:     time.Now(),
	}
}

func record(t *testing.T, tr *Tracker, a Attempt) {
	t.Helper()
	if err := tr.Record(a); err != nil {
		t.Fatalf("record: %v", err)
	}
}

func TestRecentEmptyLog(t *testing.T) {
	tr := NewTracker(time.Now())
	snap := tr.Recent(3)

	if snap.TotalCount != 0 || snap.CorrectCount != 0 {
		t.Errorf("counts = %d/%d, want 0/0", snap.CorrectCount, snap.TotalCount)
	}
	if snap.Accuracy != 0.0 {
		t.Errorf("Accuracy = %v, want 0.0", snap.Accuracy)
	}
	if snap.AvgTime != 0 {
		t.Errorf("AvgTime = %v, want 0", snap.AvgTime)
	}
}

func TestRecentWindowBound(t *testing.T) {
	tr := NewTracker(time.Now())
	for i := 0; i < 5; i++ {
		record(t, tr, attempt(true, time.Second, Medium))
	}

	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 1},
		{3, 3},
		{5, 5},
		{10, 5},
	}
	for _, tt := range tests {
		if got := tr.Recent(tt.n).TotalCount; got != tt.want {
			t.Errorf("Recent(%d).TotalCount = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestRecentStats(t *testing.T) {
	tr := NewTracker(time.Now())
	record(t, tr, attempt(true, 2*time.Second, Medium))
	record(t, tr, attempt(false, 4*time.Second, Medium))
	record(t, tr, attempt(true, 6*time.Second, Medium))

	snap := tr.Recent(3)
	if snap.CorrectCount != 2 {
		t.Errorf("CorrectCount = %d, want 2", snap.CorrectCount)
	}
	if want := 2.0 / 3.0; snap.Accuracy != want {
		t.Errorf("Accuracy = %v, want %v", snap.Accuracy, want)
	}
	if snap.AvgTime != 4*time.Second {
		t.Errorf("AvgTime = %v, want 4s", snap.AvgTime)
	}

	// Only the last two should count for n=2.
	snap = tr.Recent(2)
	if snap.CorrectCount != 1 || snap.TotalCount != 2 {
		t.Errorf("Recent(2) = %d/%d, want 1/2", snap.CorrectCount, snap.TotalCount)
	}
	if snap.AvgTime != 5*time.Second {
		t.Errorf("Recent(2).AvgTime = %v, want 5s", snap.AvgTime)
	}
}

func TestStreakInvariant(t *testing.T) {
	tr := NewTracker(time.Now())
	pattern := []bool{true, true, false, true, true, true, false, true}

	for _, correct := range pattern {
		record(t, tr, attempt(correct, time.Second, Easy))
		if tr.BestStreak() < tr.CurrentStreak() {
			t.Fatalf("best streak %d < current streak %d", tr.BestStreak(), tr.CurrentStreak())
		}
	}

	if tr.BestStreak() != 3 {
		t.Errorf("BestStreak = %d, want 3", tr.BestStreak())
	}
	if tr.CurrentStreak() != 1 {
		t.Errorf("CurrentStreak = %d, want 1", tr.CurrentStreak())
	}
}

func TestStreakResetOnIncorrect(t *testing.T) {
	tr := NewTracker(time.Now())
	record(t, tr, attempt(true, time.Second, Easy))
	record(t, tr, attempt(true, time.Second, Easy))
	record(t, tr, attempt(false, time.Second, Easy))

	if tr.CurrentStreak() != 0 {
		t.Errorf("CurrentStreak = %d, want 0 after incorrect", tr.CurrentStreak())
	}
	if tr.BestStreak() != 2 {
		t.Errorf("BestStreak = %d, want 2", tr.BestStreak())
	}
}

func TestRecordNegativeElapsed(t *testing.T) {
	tr := NewTracker(time.Now())
	err := tr.Record(attempt(true, -time.Second, Medium))
	if !errors.Is(err, ErrNegativeTime) {
		t.Fatalf("err = %v, want ErrNegativeTime", err)
	}
	if tr.Len() != 0 {
		t.Errorf("Len = %d, want 0 after rejected attempt", tr.Len())
	}
}

func TestRecordInvalidDifficulty(t *testing.T) {
	tr := NewTracker(time.Now())
	for _, d := range []Difficulty{0, 5, -1} {
		err := tr.Record(attempt(true, time.Second, d))
		if !errors.Is(err, ErrLevelRange) {
			t.Errorf("Record(difficulty=%d) err = %v, want ErrLevelRange", int(d), err)
		}
	}
}

func TestByDifficulty(t *testing.T) {
	tr := NewTracker(time.Now())
	// Scenario E: 2 attempts at level 1, 3 at level 2.
	record(t, tr, attempt(true, 2*time.Second, Easy))
	record(t, tr, attempt(false, 4*time.Second, Easy))
	record(t, tr, attempt(true, 3*time.Second, Medium))
	record(t, tr, attempt(true, 5*time.Second, Medium))
	record(t, tr, attempt(false, 7*time.Second, Medium))

	stats := tr.ByDifficulty()
	if len(stats) != 2 {
		t.Fatalf("groups = %d, want 2", len(stats))
	}

	easy := stats[Easy]
	if easy.Correct != 1 || easy.Total != 2 {
		t.Errorf("easy = %d/%d, want 1/2", easy.Correct, easy.Total)
	}
	if easy.Accuracy != 0.5 {
		t.Errorf("easy accuracy = %v, want 0.5", easy.Accuracy)
	}
	if easy.AvgTime != 3*time.Second {
		t.Errorf("easy avg time = %v, want 3s", easy.AvgTime)
	}

	medium := stats[Medium]
	if medium.Correct != 2 || medium.Total != 3 {
		t.Errorf("medium = %d/%d, want 2/3", medium.Correct, medium.Total)
	}
	if medium.AvgTime != 5*time.Second {
		t.Errorf("medium avg time = %v, want 5s", medium.AvgTime)
	}

	sum := 0
	for _, s := range stats {
		sum += s.Total
	}
	if sum != tr.Len() {
		t.Errorf("group totals sum = %d, want %d", sum, tr.Len())
	}
}

func TestAttemptsReturnsCopy(t *testing.T) {
	tr := NewTracker(time.Now())
	record(t, tr, attempt(true, time.Second, Easy))

	attempts := tr.Attempts()
	attempts[0].Correct = false

	if !tr.Attempts()[0].Correct {
		t.Error("mutating the returned slice changed the log")
	}
}
