package quiz

import (
	"fmt"
	"time"
)

// Attempt is one answered puzzle. Attempts are immutable once recorded;
// the tracker owns them for the lifetime of a session.
type Attempt struct {
	Question      string
	CorrectAnswer int
	UserAnswer    int
	Correct       bool
	Elapsed       time.Duration
	Difficulty    Difficulty
	Timestamp     time.Time
}

// Snapshot is a derived view over the most recent attempts. An empty log
// yields the zero snapshot (accuracy 0, avg time 0) rather than NaN.
type Snapshot struct {
	Accuracy     float64
	AvgTime      time.Duration
	CorrectCount int
	TotalCount   int
}

// LevelStats aggregates attempts recorded at a single difficulty level.
type LevelStats struct {
	Correct  int
	Total    int
	Accuracy float64
	AvgTime  time.Duration
}

// Tracker maintains the append-only attempt log for one session along
// with the running correct-answer streak. It never measures time itself;
// elapsed times and the session start are supplied by the caller.
type Tracker struct {
	start         time.Time
	attempts      []Attempt
	currentStreak int
	bestStreak    int
}

// NewTracker creates a tracker for a session that began at start.
func NewTracker(start time.Time) *Tracker {
	return &Tracker{start: start}
}

// Record appends an attempt and updates the streak. It fails fast on
// invariant violations: a negative elapsed time or an out-of-range
// difficulty indicate a bug in the caller.
func (t *Tracker) Record(a Attempt) error {
	if a.Elapsed < 0 {
		return fmt.Errorf("record attempt: %w (%v)", ErrNegativeTime, a.Elapsed)
	}
	if !a.Difficulty.Valid() {
		return fmt.Errorf("record attempt: %w (%d)", ErrLevelRange, int(a.Difficulty))
	}

	t.attempts = append(t.attempts, a)

	if a.Correct {
		t.currentStreak++
		if t.currentStreak > t.bestStreak {
			t.bestStreak = t.currentStreak
		}
	} else {
		t.currentStreak = 0
	}
	return nil
}

// Recent returns a snapshot over the last min(n, Len()) attempts.
func (t *Tracker) Recent(n int) Snapshot {
	if n <= 0 || len(t.attempts) == 0 {
		return Snapshot{}
	}

	recent := t.attempts
	if n < len(recent) {
		recent = recent[len(recent)-n:]
	}

	var correct int
	var total time.Duration
	for _, a := range recent {
		if a.Correct {
			correct++
		}
		total += a.Elapsed
	}

	count := len(recent)
	return Snapshot{
		Accuracy:     float64(correct) / float64(count),
		AvgTime:      total / time.Duration(count),
		CorrectCount: correct,
		TotalCount:   count,
	}
}

// ByDifficulty groups all recorded attempts by difficulty level.
func (t *Tracker) ByDifficulty() map[Difficulty]LevelStats {
	totals := make(map[Difficulty]time.Duration)
	stats := make(map[Difficulty]LevelStats)

	for _, a := range t.attempts {
		s := stats[a.Difficulty]
		s.Total++
		if a.Correct {
			s.Correct++
		}
		totals[a.Difficulty] += a.Elapsed
		stats[a.Difficulty] = s
	}

	for d, s := range stats {
		s.Accuracy = float64(s.Correct) / float64(s.Total)
		s.AvgTime = totals[d] / time.Duration(s.Total)
		stats[d] = s
	}
	return stats
}

// Len returns the number of recorded attempts.
func (t *Tracker) Len() int {
	return len(t.attempts)
}

// Attempts returns a copy of the attempt log.
func (t *Tracker) Attempts() []Attempt {
	out := make([]Attempt, len(t.attempts))
	copy(out, t.attempts)
	return out
}

// CurrentStreak returns the current consecutive-correct count.
func (t *Tracker) CurrentStreak() int {
	return t.currentStreak
}

// BestStreak returns the best consecutive-correct count this session.
func (t *Tracker) BestStreak() int {
	return t.bestStreak
}

// Start returns the session start time supplied at construction.
func (t *Tracker) Start() time.Time {
	return t.start
}
