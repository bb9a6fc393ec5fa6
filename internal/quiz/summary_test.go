package quiz

import (
	"strings"
	"testing"
	"time"
)

func TestSummaryEmptySession(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	tr := NewTracker(start)

	s := tr.Summary(start.Add(30 * time.Second))
	if s.TotalPuzzles != 0 || s.Correct != 0 || s.Incorrect != 0 {
		t.Errorf("counts = %d/%d/%d, want zeros", s.TotalPuzzles, s.Correct, s.Incorrect)
	}
	if s.Accuracy != 0.0 || s.AvgTime != 0 {
		t.Errorf("accuracy/avg = %v/%v, want zeros", s.Accuracy, s.AvgTime)
	}
	if s.Duration != 30*time.Second {
		t.Errorf("Duration = %v, want 30s", s.Duration)
	}
}

func TestSummaryRollup(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	tr := NewTracker(start)

	record(t, tr, attempt(true, 4*time.Second, Easy))
	record(t, tr, attempt(true, 6*time.Second, Easy))
	record(t, tr, attempt(false, 8*time.Second, Medium))
	record(t, tr, attempt(true, 10*time.Second, Medium))

	s := tr.Summary(start.Add(2 * time.Minute))
	if s.TotalPuzzles != 4 {
		t.Errorf("TotalPuzzles = %d, want 4", s.TotalPuzzles)
	}
	if s.Correct != 3 || s.Incorrect != 1 {
		t.Errorf("correct/incorrect = %d/%d, want 3/1", s.Correct, s.Incorrect)
	}
	if s.Accuracy != 0.75 {
		t.Errorf("Accuracy = %v, want 0.75", s.Accuracy)
	}
	if s.AvgTime != 7*time.Second {
		t.Errorf("AvgTime = %v, want 7s", s.AvgTime)
	}
	if s.Duration != 2*time.Minute {
		t.Errorf("Duration = %v, want 2m", s.Duration)
	}
	if s.BestStreak != 2 || s.CurrentStreak != 1 {
		t.Errorf("streaks = %d/%d, want best 2 current 1", s.BestStreak, s.CurrentStreak)
	}
	if len(s.ByDifficulty) != 2 {
		t.Errorf("breakdown groups = %d, want 2", len(s.ByDifficulty))
	}
}

func TestSummaryMidSession(t *testing.T) {
	start := time.Now()
	tr := NewTracker(start)
	record(t, tr, attempt(true, time.Second, Easy))

	// Summarizing repeatedly must not disturb the log.
	first := tr.Summary(start.Add(time.Minute))
	second := tr.Summary(start.Add(time.Minute))
	if first.TotalPuzzles != second.TotalPuzzles || first.Accuracy != second.Accuracy {
		t.Error("repeated summaries disagree")
	}
}

func TestRecommendationBands(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		accuracy float64
		contains string
	}{
		{"too few puzzles", 3, 1.0, "Complete more puzzles"},
		{"excellent", 10, 0.9, "Excellent work"},
		{"great", 10, 0.75, "Great progress"},
		{"learning", 10, 0.55, "accuracy before speed"},
		{"basics", 10, 0.3, "review the basics"},
	}
	for _, tt := range tests {
		s := SessionSummary{TotalPuzzles: tt.total, Accuracy: tt.accuracy}
		got := Recommendation(s, Medium)
		if !strings.Contains(got, tt.contains) {
			t.Errorf("%s: Recommendation = %q, want substring %q", tt.name, got, tt.contains)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in   string
		want Difficulty
	}{
		{"easy", Easy},
		{"Medium", Medium},
		{"HARD", Hard},
		{"expert", Expert},
		{"1", Easy},
		{"4", Expert},
		{" 2 ", Medium},
	}
	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if err != nil {
			t.Errorf("ParseDifficulty(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseDifficulty("impossible"); err == nil {
		t.Error("ParseDifficulty(impossible) succeeded, want error")
	}
}

func TestDifficultyString(t *testing.T) {
	if got := Hard.String(); got != "Hard" {
		t.Errorf("String = %q, want Hard", got)
	}
	if got := Difficulty(9).String(); got != "Level 9" {
		t.Errorf("String = %q, want Level 9", got)
	}
}
