package quiz

import (
	"fmt"
	"time"
)

// Rule thresholds for difficulty transitions. Increases require a full
// window of evidence; decreases trigger on less data so that a struggling
// learner is caught sooner.
const (
	// WindowSize is the number of recent attempts the engine evaluates.
	WindowSize = 3

	accuracyUp       = 0.80
	accuracyDown     = 0.40
	ceilingAccuracy  = 0.90
	timeWeight       = 0.30
	minDecreaseCount = 2
)

// expectedTime is the target response time per difficulty level.
var expectedTime = map[Difficulty]time.Duration{
	Easy:   10 * time.Second,
	Medium: 15 * time.Second,
	Hard:   20 * time.Second,
	Expert: 30 * time.Second,
}

// Decision is the outcome of one Adjust call.
type Decision string

const (
	DecisionIncrease Decision = "INCREASE"
	DecisionDecrease Decision = "DECREASE"
	DecisionMaintain Decision = "MAINTAIN"
)

// Transition records one difficulty decision and its justification.
// Transitions are immutable and accumulate in the engine's history.
type Transition struct {
	From             Difficulty
	To               Difficulty
	Decision         Decision
	PerformanceScore float64
	RecentAccuracy   float64
	RecentAvgTime    time.Duration
	Reason           string
}

// Engine holds the active difficulty level and decides transitions from
// windowed performance statistics. It is cadence-agnostic: the caller
// decides when to invoke Adjust.
type Engine struct {
	level   Difficulty
	history []Transition
}

// NewEngine creates an engine starting at the given level.
func NewEngine(start Difficulty) (*Engine, error) {
	if !start.Valid() {
		return nil, fmt.Errorf("new engine: %w (%d)", ErrLevelRange, int(start))
	}
	return &Engine{level: start}, nil
}

// Level returns the active difficulty level.
func (e *Engine) Level() Difficulty {
	return e.level
}

// History returns a copy of all transitions decided so far.
func (e *Engine) History() []Transition {
	out := make([]Transition, len(e.history))
	copy(out, e.history)
	return out
}

// PerformanceScore blends accuracy with a coarse time band into [0,1].
// An empty snapshot scores a neutral 0.5. Both suspiciously-fast and slow
// responses are informative, so the time component is banded rather than
// continuous.
func PerformanceScore(snap Snapshot, level Difficulty) float64 {
	if snap.TotalCount == 0 {
		return 0.5
	}

	ratio := snap.AvgTime.Seconds() / expectedTime[level].Seconds()
	var timeScore float64
	switch {
	case ratio < 0.5:
		timeScore = 1.0 // very fast, likely too easy
	case ratio < 1.0:
		timeScore = 0.8
	case ratio < 1.5:
		timeScore = 0.6
	default:
		timeScore = 0.3 // slow, likely too hard
	}

	return snap.Accuracy*(1-timeWeight) + timeScore*timeWeight
}

// shouldIncrease requires a full window of attempts, then high accuracy
// with reasonable time, or exceptional accuracy regardless of time.
func shouldIncrease(snap Snapshot, level Difficulty) bool {
	if snap.TotalCount < WindowSize {
		return false
	}
	expected := expectedTime[level].Seconds()
	if snap.Accuracy >= accuracyUp && snap.AvgTime.Seconds() < expected*1.2 {
		return true
	}
	return snap.Accuracy >= ceilingAccuracy
}

// shouldDecrease triggers on low accuracy, or moderate accuracy paired
// with very slow responses. It needs only two attempts of evidence.
func shouldDecrease(snap Snapshot, level Difficulty) bool {
	if snap.TotalCount < minDecreaseCount {
		return false
	}
	if snap.Accuracy < accuracyDown {
		return true
	}
	return snap.Accuracy < 0.60 && snap.AvgTime.Seconds() > expectedTime[level].Seconds()*2.0
}

// Adjust evaluates the recent window and moves the level at most one step.
// Increase is always checked before decrease: when boundary accuracy values
// satisfy both, the engine biases toward more challenge. This ordering is
// intentional. At the range boundaries the raw condition is ignored and the
// decision stays MAINTAIN; clamping happens by guarding the step, never
// after the fact.
func (e *Engine) Adjust(t *Tracker) (Transition, error) {
	if !e.level.Valid() {
		return Transition{}, fmt.Errorf("adjust: %w (%d)", ErrLevelRange, int(e.level))
	}

	snap := t.Recent(WindowSize)
	from := e.level

	decision := DecisionMaintain
	reason := "Performance is appropriate for current level"

	switch {
	case shouldIncrease(snap, from):
		if from < MaxDifficulty {
			e.level++
			decision = DecisionIncrease
			reason = fmt.Sprintf("High performance (accuracy: %.1f%%, avg time: %.1fs)",
				snap.Accuracy*100, snap.AvgTime.Seconds())
		}
	case shouldDecrease(snap, from):
		if from > MinDifficulty {
			e.level--
			decision = DecisionDecrease
			reason = fmt.Sprintf("Struggling (accuracy: %.1f%%, avg time: %.1fs)",
				snap.Accuracy*100, snap.AvgTime.Seconds())
		}
	}

	tr := Transition{
		From:             from,
		To:               e.level,
		Decision:         decision,
		PerformanceScore: PerformanceScore(snap, from),
		RecentAccuracy:   snap.Accuracy,
		RecentAvgTime:    snap.AvgTime,
		Reason:           reason,
	}
	e.history = append(e.history, tr)
	return tr, nil
}
