package quiz

import (
	"errors"
	"testing"
	"time"
)

func newTestEngine(t *testing.T, start Difficulty) *Engine {
	t.Helper()
	e, err := NewEngine(start)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return e
}

func TestNewEngineInvalidLevel(t *testing.T) {
	for _, d := range []Difficulty{0, 5} {
		if _, err := NewEngine(d); !errors.Is(err, ErrLevelRange) {
			t.Errorf("NewEngine(%d) err = %v, want ErrLevelRange", int(d), err)
		}
	}
}

func TestPerformanceScoreNeutralOnEmpty(t *testing.T) {
	// Scenario D: empty window scores neutral.
	if got := PerformanceScore(Snapshot{}, Medium); got != 0.5 {
		t.Errorf("PerformanceScore(empty) = %v, want 0.5", got)
	}
}

func TestPerformanceScoreTimeBands(t *testing.T) {
	// Expected time for Medium is 15s; bands switch at 7.5s, 15s, 22.5s.
	tests := []struct {
		name    string
		avgTime time.Duration
		want    float64
	}{
		{"very fast", 5 * time.Second, 1.0*timeWeight + 1.0*(1-timeWeight)},
		{"good", 10 * time.Second, 0.8*timeWeight + 1.0*(1-timeWeight)},
		{"acceptable", 20 * time.Second, 0.6*timeWeight + 1.0*(1-timeWeight)},
		{"slow", 40 * time.Second, 0.3*timeWeight + 1.0*(1-timeWeight)},
	}
	for _, tt := range tests {
		snap := Snapshot{Accuracy: 1.0, AvgTime: tt.avgTime, CorrectCount: 3, TotalCount: 3}
		got := PerformanceScore(snap, Medium)
		if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("%s: PerformanceScore = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestPerformanceScoreRange(t *testing.T) {
	accuracies := []float64{0.0, 0.25, 0.5, 0.75, 1.0}
	times := []time.Duration{0, time.Second, 10 * time.Second, time.Minute, time.Hour}

	for _, level := range AllDifficulties() {
		for _, acc := range accuracies {
			for _, avg := range times {
				snap := Snapshot{Accuracy: acc, AvgTime: avg, TotalCount: 3}
				got := PerformanceScore(snap, level)
				if got < 0.0 || got > 1.0 {
					t.Errorf("PerformanceScore(acc=%v, avg=%v, level=%v) = %v, outside [0,1]",
						acc, avg, level, got)
				}
			}
		}
	}
}

func TestShouldIncrease(t *testing.T) {
	tests := []struct {
		name string
		snap Snapshot
		want bool
	}{
		{"insufficient data", Snapshot{Accuracy: 1.0, AvgTime: 5 * time.Second, TotalCount: 2}, false},
		{"high accuracy fast", Snapshot{Accuracy: 1.0, AvgTime: 5 * time.Second, TotalCount: 3}, true},
		{"high accuracy within 1.2x", Snapshot{Accuracy: 0.8, AvgTime: 17 * time.Second, TotalCount: 3}, true},
		{"high accuracy too slow", Snapshot{Accuracy: 0.8, AvgTime: 20 * time.Second, TotalCount: 3}, false},
		{"ceiling accuracy overrides time", Snapshot{Accuracy: 0.95, AvgTime: time.Minute, TotalCount: 3}, true},
		{"moderate accuracy", Snapshot{Accuracy: 0.67, AvgTime: 5 * time.Second, TotalCount: 3}, false},
	}
	for _, tt := range tests {
		if got := shouldIncrease(tt.snap, Medium); got != tt.want {
			t.Errorf("%s: shouldIncrease = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestShouldDecrease(t *testing.T) {
	tests := []struct {
		name string
		snap Snapshot
		want bool
	}{
		{"insufficient data", Snapshot{Accuracy: 0.0, TotalCount: 1}, false},
		{"low accuracy with two attempts", Snapshot{Accuracy: 0.0, AvgTime: 5 * time.Second, TotalCount: 2}, true},
		{"below threshold", Snapshot{Accuracy: 0.33, AvgTime: 10 * time.Second, TotalCount: 3}, true},
		{"moderate accuracy very slow", Snapshot{Accuracy: 0.5, AvgTime: 45 * time.Second, TotalCount: 3}, true},
		{"moderate accuracy normal time", Snapshot{Accuracy: 0.5, AvgTime: 15 * time.Second, TotalCount: 3}, false},
		{"good accuracy", Snapshot{Accuracy: 0.8, AvgTime: 10 * time.Second, TotalCount: 3}, false},
	}
	for _, tt := range tests {
		if got := shouldDecrease(tt.snap, Medium); got != tt.want {
			t.Errorf("%s: shouldDecrease = %v, want %v", tt.name, got, tt.want)
		}
	}
}

// Scenario A: three fast correct answers at Medium trigger an increase.
func TestAdjustIncrease(t *testing.T) {
	e := newTestEngine(t, Medium)
	tr := NewTracker(time.Now())
	for i := 0; i < 3; i++ {
		record(t, tr, attempt(true, 5*time.Second, Medium))
	}

	trans, err := e.Adjust(tr)
	if err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if trans.Decision != DecisionIncrease {
		t.Errorf("Decision = %s, want INCREASE", trans.Decision)
	}
	if trans.From != Medium || trans.To != Hard {
		t.Errorf("transition %v -> %v, want Medium -> Hard", trans.From, trans.To)
	}
	if e.Level() != Hard {
		t.Errorf("Level = %v, want Hard", e.Level())
	}
	if trans.RecentAccuracy != 1.0 {
		t.Errorf("RecentAccuracy = %v, want 1.0", trans.RecentAccuracy)
	}
}

// Scenario B: two incorrect answers are enough to decrease, below the
// full window size.
func TestAdjustDecreaseOnTwoAttempts(t *testing.T) {
	e := newTestEngine(t, Hard)
	tr := NewTracker(time.Now())
	record(t, tr, attempt(false, 10*time.Second, Hard))
	record(t, tr, attempt(false, 10*time.Second, Hard))

	trans, err := e.Adjust(tr)
	if err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if trans.Decision != DecisionDecrease {
		t.Errorf("Decision = %s, want DECREASE", trans.Decision)
	}
	if trans.To != Medium {
		t.Errorf("To = %v, want Medium", trans.To)
	}
}

// Scenario C: at the top level the raw increase condition is ignored and
// the decision stays MAINTAIN.
func TestAdjustBoundaryGuardAtMax(t *testing.T) {
	e := newTestEngine(t, Expert)
	tr := NewTracker(time.Now())
	for i := 0; i < 3; i++ {
		record(t, tr, attempt(true, 5*time.Second, Expert))
	}

	trans, err := e.Adjust(tr)
	if err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if trans.Decision != DecisionMaintain {
		t.Errorf("Decision = %s, want MAINTAIN at max level", trans.Decision)
	}
	if trans.Reason != "Performance is appropriate for current level" {
		t.Errorf("Reason = %q, want the generic maintain reason", trans.Reason)
	}
	if e.Level() != Expert {
		t.Errorf("Level = %v, want Expert", e.Level())
	}
}

func TestAdjustBoundaryGuardAtMin(t *testing.T) {
	e := newTestEngine(t, Easy)
	tr := NewTracker(time.Now())
	record(t, tr, attempt(false, 10*time.Second, Easy))
	record(t, tr, attempt(false, 10*time.Second, Easy))

	trans, err := e.Adjust(tr)
	if err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if trans.Decision != DecisionMaintain {
		t.Errorf("Decision = %s, want MAINTAIN at min level", trans.Decision)
	}
	if e.Level() != Easy {
		t.Errorf("Level = %v, want Easy", e.Level())
	}
}

func TestAdjustClamping(t *testing.T) {
	e := newTestEngine(t, Medium)
	tr := NewTracker(time.Now())
	for i := 0; i < 3; i++ {
		record(t, tr, attempt(true, 2*time.Second, Medium))
	}

	// Repeated increase-worthy windows never push past Expert.
	for i := 0; i < 10; i++ {
		if _, err := e.Adjust(tr); err != nil {
			t.Fatalf("adjust: %v", err)
		}
		if e.Level() > MaxDifficulty {
			t.Fatalf("level %d exceeds max", int(e.Level()))
		}
	}
	if e.Level() != Expert {
		t.Errorf("Level = %v, want Expert after repeated increases", e.Level())
	}

	// And repeated decrease-worthy windows never push below Easy.
	tr = NewTracker(time.Now())
	record(t, tr, attempt(false, 10*time.Second, Expert))
	record(t, tr, attempt(false, 10*time.Second, Expert))
	for i := 0; i < 10; i++ {
		if _, err := e.Adjust(tr); err != nil {
			t.Fatalf("adjust: %v", err)
		}
		if e.Level() < MinDifficulty {
			t.Fatalf("level %d below min", int(e.Level()))
		}
	}
	if e.Level() != Easy {
		t.Errorf("Level = %v, want Easy after repeated decreases", e.Level())
	}
}

// Increase is evaluated before decrease: whenever the increase rule
// fires, the decrease rule is never consulted. The closest realizable
// conflict signal is ceiling accuracy paired with pathologically slow
// responses (slowness alone argues for a decrease); the engine must
// still choose INCREASE.
func TestIncreasePrecedence(t *testing.T) {
	snap := Snapshot{Accuracy: 1.0, AvgTime: 40 * time.Second, CorrectCount: 3, TotalCount: 3}
	if !shouldIncrease(snap, Medium) {
		t.Fatal("precondition: shouldIncrease must be true")
	}

	e := newTestEngine(t, Medium)
	tr := NewTracker(time.Now())
	for i := 0; i < 3; i++ {
		record(t, tr, attempt(true, 40*time.Second, Medium))
	}
	trans, err := e.Adjust(tr)
	if err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if trans.Decision != DecisionIncrease {
		t.Errorf("Decision = %s, want INCREASE when signals conflict", trans.Decision)
	}
}

func TestAdjustEmptyWindowMaintains(t *testing.T) {
	e := newTestEngine(t, Medium)
	tr := NewTracker(time.Now())

	trans, err := e.Adjust(tr)
	if err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if trans.Decision != DecisionMaintain {
		t.Errorf("Decision = %s, want MAINTAIN on empty window", trans.Decision)
	}
	if trans.PerformanceScore != 0.5 {
		t.Errorf("PerformanceScore = %v, want neutral 0.5", trans.PerformanceScore)
	}
}

func TestTransitionHistoryAppendOnly(t *testing.T) {
	e := newTestEngine(t, Medium)
	tr := NewTracker(time.Now())

	for i := 0; i < 4; i++ {
		if _, err := e.Adjust(tr); err != nil {
			t.Fatalf("adjust: %v", err)
		}
	}

	history := e.History()
	if len(history) != 4 {
		t.Fatalf("history length = %d, want 4", len(history))
	}

	// Mutating the copy must not affect the engine.
	history[0].Decision = DecisionIncrease
	if e.History()[0].Decision != DecisionMaintain {
		t.Error("mutating the returned history changed engine state")
	}
}

func TestAdjustReasonEmbedsFigures(t *testing.T) {
	e := newTestEngine(t, Medium)
	tr := NewTracker(time.Now())
	for i := 0; i < 3; i++ {
		record(t, tr, attempt(true, 5*time.Second, Medium))
	}

	trans, err := e.Adjust(tr)
	if err != nil {
		t.Fatalf("adjust: %v", err)
	}
	want := "High performance (accuracy: 100.0%, avg time: 5.0s)"
	if trans.Reason != want {
		t.Errorf("Reason = %q, want %q", trans.Reason, want)
	}
}
