package store

import (
	"context"
	"time"
)

// SessionEventData is one session lifecycle row. Start events carry the
// player and opening level; end events fill in the roll-up fields.
type SessionEventData struct {
	SessionID      string
	Action         string // "start" or "end"
	Player         string
	StartingLevel  int
	FinalLevel     int
	PuzzlesServed  int
	CorrectAnswers int
	BestStreak     int
	DurationSecs   int
}

// AttemptEventData is one answered puzzle.
type AttemptEventData struct {
	SessionID     string
	Question      string
	CorrectAnswer int
	UserAnswer    int
	Correct       bool
	TimeMs        int
	Difficulty    int
}

// TransitionEventData is one difficulty decision.
type TransitionEventData struct {
	SessionID        string
	FromLevel        int
	ToLevel          int
	Decision         string
	PerformanceScore float64
	RecentAccuracy   float64
	RecentAvgTime    float64
	Reason           string
}

// SessionRecord is a finished session as read back from the log.
type SessionRecord struct {
	SessionID      string
	Player         string
	StartingLevel  int
	FinalLevel     int
	PuzzlesServed  int
	CorrectAnswers int
	BestStreak     int
	DurationSecs   int
	EndedAt        time.Time
}

// AttemptRecord is an answered puzzle as read back from the log.
type AttemptRecord struct {
	Question      string
	CorrectAnswer int
	UserAnswer    int
	Correct       bool
	TimeMs        int
	Difficulty    int
	Timestamp     time.Time
}

// TransitionRecord is a difficulty decision as read back from the log.
type TransitionRecord struct {
	FromLevel int
	ToLevel   int
	Decision  string
	Reason    string
	Timestamp time.Time
}

// LevelTally aggregates attempts dealt at one difficulty.
type LevelTally struct {
	Correct int
	Total   int
}

// TotalStats is the all-time roll-up across every recorded session.
type TotalStats struct {
	Sessions   int
	Attempts   int
	Correct    int
	BestStreak int
	ByLevel    map[int]LevelTally
}

// EventRepo provides append and query access to the session log.
type EventRepo interface {
	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	AppendAttemptEvent(ctx context.Context, data AttemptEventData) error
	AppendTransitionEvent(ctx context.Context, data TransitionEventData) error

	// RecentSessions returns up to limit finished sessions, newest first.
	RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error)

	// SessionAttempts returns a session's attempts in play order.
	SessionAttempts(ctx context.Context, sessionID string) ([]AttemptRecord, error)

	// SessionTransitions returns a session's difficulty decisions in order.
	SessionTransitions(ctx context.Context, sessionID string) ([]TransitionRecord, error)

	// Totals aggregates every recorded session.
	Totals(ctx context.Context) (TotalStats, error)
}
