package quiz

import (
	"fmt"
	"time"
)

// SessionSummary is a frozen end-of-session rollup. It is a pure function
// of the attempt log plus the session start time, and is valid at any
// point including before the first attempt.
type SessionSummary struct {
	TotalPuzzles  int
	Correct       int
	Incorrect     int
	Accuracy      float64
	AvgTime       time.Duration
	CurrentStreak int
	BestStreak    int
	Duration      time.Duration
	ByDifficulty  map[Difficulty]LevelStats
}

// Summary computes the rollup as of now.
func (t *Tracker) Summary(now time.Time) SessionSummary {
	s := SessionSummary{
		TotalPuzzles:  len(t.attempts),
		CurrentStreak: t.currentStreak,
		BestStreak:    t.bestStreak,
		Duration:      now.Sub(t.start),
		ByDifficulty:  t.ByDifficulty(),
	}
	if s.TotalPuzzles == 0 {
		return s
	}

	var total time.Duration
	for _, a := range t.attempts {
		if a.Correct {
			s.Correct++
		}
		total += a.Elapsed
	}
	s.Incorrect = s.TotalPuzzles - s.Correct
	s.Accuracy = float64(s.Correct) / float64(s.TotalPuzzles)
	s.AvgTime = total / time.Duration(s.TotalPuzzles)
	return s
}

// Recommendation maps the overall accuracy into coarse next-session advice.
func Recommendation(s SessionSummary, level Difficulty) string {
	if s.TotalPuzzles < 5 {
		return "Complete more puzzles to get personalized recommendations."
	}

	switch {
	case s.Accuracy >= 0.85:
		return fmt.Sprintf("Excellent work! You're mastering %s level. Keep challenging yourself!", level)
	case s.Accuracy >= 0.70:
		return fmt.Sprintf("Great progress! Continue practicing at %s level to build confidence.", level)
	case s.Accuracy >= 0.50:
		return fmt.Sprintf("You're learning! Focus on accuracy before speed. Current level: %s", level)
	default:
		return fmt.Sprintf("Take your time and review the basics. You're currently at %s level.", level)
	}
}
