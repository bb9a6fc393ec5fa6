// Package session drives a single practice run: it deals puzzles, scores
// answers, and asks the rule engine whether the difficulty should move.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mathventure/internal/puzzlegen"
	"mathventure/internal/quiz"
)

const (
	DefaultPuzzleCount = 10
	DefaultAdjustEvery = 3

	MinPuzzleCount = 5
	MaxPuzzleCount = 50
)

var (
	// ErrComplete is returned by Next and Submit once every puzzle in the
	// session has been answered.
	ErrComplete = errors.New("session complete")

	// ErrNoActivePuzzle is returned by Submit when no puzzle has been dealt
	// since the last answer.
	ErrNoActivePuzzle = errors.New("no active puzzle")
)

// Config describes a run before it starts.
type Config struct {
	Player      string
	StartLevel  quiz.Difficulty
	PuzzleCount int
	AdjustEvery int
}

func (c Config) validate() error {
	if !c.StartLevel.Valid() {
		return fmt.Errorf("start level %d: %w", int(c.StartLevel), quiz.ErrLevelRange)
	}
	if c.PuzzleCount < MinPuzzleCount || c.PuzzleCount > MaxPuzzleCount {
		return fmt.Errorf("puzzle count %d outside [%d, %d]", c.PuzzleCount, MinPuzzleCount, MaxPuzzleCount)
	}
	if c.AdjustEvery < 1 {
		return fmt.Errorf("adjust cadence %d must be positive", c.AdjustEvery)
	}
	return nil
}

// Outcome reports the result of one answered puzzle. Transition is non-nil
// only on the attempts where the engine was consulted.
type Outcome struct {
	Correct    bool
	Answer     int
	Streak     int
	Transition *quiz.Transition
}

// Session owns the turn loop for one sitting. It is not safe for concurrent
// use; callers serialize access.
type Session struct {
	id      string
	cfg     Config
	gen     *puzzlegen.Generator
	tracker *quiz.Tracker
	engine  *quiz.Engine

	current *puzzlegen.Puzzle
	served  int
}

// New validates cfg and opens a fresh session at cfg.StartLevel.
func New(cfg Config, gen *puzzlegen.Generator, start time.Time) (*Session, error) {
	if cfg.PuzzleCount == 0 {
		cfg.PuzzleCount = DefaultPuzzleCount
	}
	if cfg.AdjustEvery == 0 {
		cfg.AdjustEvery = DefaultAdjustEvery
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	engine, err := quiz.NewEngine(cfg.StartLevel)
	if err != nil {
		return nil, err
	}
	return &Session{
		id:      uuid.NewString(),
		cfg:     cfg,
		gen:     gen,
		tracker: quiz.NewTracker(start),
		engine:  engine,
	}, nil
}

func (s *Session) ID() string              { return s.id }
func (s *Session) Config() Config          { return s.cfg }
func (s *Session) Level() quiz.Difficulty  { return s.engine.Level() }
func (s *Session) Served() int             { return s.served }
func (s *Session) Answered() int           { return s.tracker.Len() }
func (s *Session) Tracker() *quiz.Tracker  { return s.tracker }
func (s *Session) Current() *puzzlegen.Puzzle { return s.current }

// Done reports whether every puzzle in the run has been answered.
func (s *Session) Done() bool {
	return s.tracker.Len() >= s.cfg.PuzzleCount
}

// Next deals the next puzzle at the current difficulty.
func (s *Session) Next() (puzzlegen.Puzzle, error) {
	if s.Done() {
		return puzzlegen.Puzzle{}, ErrComplete
	}
	if s.current != nil {
		return *s.current, nil
	}
	p, err := s.gen.Generate(s.engine.Level())
	if err != nil {
		return puzzlegen.Puzzle{}, err
	}
	s.current = &p
	s.served++
	return p, nil
}

// Submit scores answer against the active puzzle, records the attempt, and
// consults the rule engine on cadence boundaries. The engine is skipped after
// the final puzzle since there is nothing left to adjust for.
func (s *Session) Submit(answer int, elapsed time.Duration, at time.Time) (Outcome, error) {
	if s.Done() {
		return Outcome{}, ErrComplete
	}
	if s.current == nil {
		return Outcome{}, ErrNoActivePuzzle
	}
	p := *s.current
	correct := answer == p.Answer
	err := s.tracker.Record(quiz.Attempt{
		Question:      p.Question,
		CorrectAnswer: p.Answer,
		UserAnswer:    answer,
		Correct:       correct,
		Elapsed:       elapsed,
		Difficulty:    p.Difficulty,
		Timestamp:     at,
	})
	if err != nil {
		return Outcome{}, err
	}
	s.current = nil

	out := Outcome{
		Correct: correct,
		Answer:  p.Answer,
		Streak:  s.tracker.CurrentStreak(),
	}
	if s.tracker.Len()%s.cfg.AdjustEvery == 0 && s.tracker.Len() < s.cfg.PuzzleCount {
		tr, err := s.engine.Adjust(s.tracker)
		if err != nil {
			return Outcome{}, err
		}
		out.Transition = &tr
	}
	return out, nil
}

// Summary rolls up the run so far. It is valid mid-session; abandoning a run
// summarizes only the answered puzzles.
func (s *Session) Summary(now time.Time) quiz.SessionSummary {
	return s.tracker.Summary(now)
}

// Transitions returns every difficulty decision made during the run.
func (s *Session) Transitions() []quiz.Transition {
	return s.engine.History()
}
