package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"mathventure/internal/quiz"
)

func testSummary() quiz.SessionSummary {
	return quiz.SessionSummary{
		TotalPuzzles:  10,
		Correct:       8,
		Incorrect:     2,
		Accuracy:      0.8,
		AvgTime:       6 * time.Second,
		CurrentStreak: 3,
		BestStreak:    5,
		Duration:      4 * time.Minute,
		ByDifficulty: map[quiz.Difficulty]quiz.LevelStats{
			quiz.Easy:   {Correct: 3, Total: 3, Accuracy: 1.0, AvgTime: 4 * time.Second},
			quiz.Medium: {Correct: 5, Total: 7, Accuracy: 5.0 / 7.0, AvgTime: 7 * time.Second},
		},
	}
}

func testTransitions() []quiz.Transition {
	return []quiz.Transition{
		{From: quiz.Easy, To: quiz.Medium, Decision: quiz.DecisionIncrease},
		{From: quiz.Medium, To: quiz.Medium, Decision: quiz.DecisionMaintain},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New("Ada", quiz.Medium, testSummary(), testTransitions())
	if s.Title() != "Results" {
		t.Errorf("Title = %q, want %q", s.Title(), "Results")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New("Ada", quiz.Medium, testSummary(), testTransitions())
	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty summary view")
	}
	for _, want := range []string{"Ada", "Puzzles: 10", "Best streak: 5", "Easy", "Medium"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_ShowsOnlyLevelChanges(t *testing.T) {
	s := New("Ada", quiz.Medium, testSummary(), testTransitions())
	view := s.View(80, 24)
	if !strings.Contains(view, "Easy → Medium") {
		t.Error("view missing the level change")
	}
	if strings.Contains(view, "Medium → Medium") {
		t.Error("maintain decision should not be listed")
	}
}

func TestSummaryScreen_Navigation(t *testing.T) {
	s := New("Ada", quiz.Medium, testSummary(), nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_Recommendation(t *testing.T) {
	s := New("Ada", quiz.Medium, testSummary(), nil)
	view := s.View(80, 24)
	if !strings.Contains(view, quiz.Recommendation(testSummary(), quiz.Medium)) {
		t.Error("view missing the next-session recommendation")
	}
}
