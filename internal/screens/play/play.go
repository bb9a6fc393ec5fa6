// Package play runs the active practice round: deal, answer, feedback,
// difficulty checks, and the hand-off to the results screen.
package play

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"mathventure/internal/puzzlegen"
	"mathventure/internal/quiz"
	"mathventure/internal/router"
	"mathventure/internal/screen"
	"mathventure/internal/screens/summary"
	"mathventure/internal/session"
	"mathventure/internal/store"
	"mathventure/internal/ui/components"
	"mathventure/internal/ui/layout"
)

// PlayScreen implements screen.Screen for the active round.
type PlayScreen struct {
	cfg  session.Config
	gen  *puzzlegen.Generator
	repo store.EventRepo

	sess          *session.Session
	input         components.TextInput
	questionStart time.Time
	elapsed       time.Duration

	showingFeedback bool
	lastOutcome     session.Outcome
	showingConfirm  bool
	errMsg          string
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)

// New creates a new PlayScreen for the given configuration.
func New(cfg session.Config, gen *puzzlegen.Generator, repo store.EventRepo) *PlayScreen {
	return &PlayScreen{
		cfg:   cfg,
		gen:   gen,
		repo:  repo,
		input: components.NewTextInput("Type your answer...", true, 6),
	}
}

func (p *PlayScreen) Init() tea.Cmd {
	return tea.Batch(p.initSession(), p.input.Init())
}

func (p *PlayScreen) Title() string {
	return "Practice"
}

func (p *PlayScreen) KeyHints() []layout.KeyHint {
	if p.showingConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if p.showingFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "End early"},
	}
}

// initSession creates the session and records the start event.
func (p *PlayScreen) initSession() tea.Cmd {
	return func() tea.Msg {
		sess, err := session.New(p.cfg, p.gen, time.Now())
		if err != nil {
			return sessionReadyMsg{Err: err}
		}
		if p.repo != nil {
			_ = p.repo.AppendSessionEvent(context.Background(), store.SessionEventData{
				SessionID:     sess.ID(),
				Action:        "start",
				Player:        sess.Config().Player,
				StartingLevel: int(sess.Config().StartLevel),
			})
		}
		return sessionReadyMsg{Sess: sess}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

func (p *PlayScreen) statusCmd() tea.Cmd {
	level := p.sess.Level().String()
	streak := p.sess.Tracker().CurrentStreak()
	return func() tea.Msg {
		return screen.StatusMsg{Level: level, Streak: streak}
	}
}

func (p *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionReadyMsg:
		if msg.Err != nil {
			p.errMsg = msg.Err.Error()
			return p, nil
		}
		p.sess = msg.Sess
		if _, err := p.sess.Next(); err != nil {
			p.errMsg = err.Error()
			return p, nil
		}
		p.questionStart = time.Now()
		return p, tea.Batch(tickCmd(), p.statusCmd())

	case timerTickMsg:
		if p.sess == nil || p.sess.Done() {
			return p, nil
		}
		if !p.showingFeedback && !p.showingConfirm {
			p.elapsed = time.Since(p.questionStart)
		}
		return p, tickCmd()

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	if p.sess != nil && !p.showingFeedback && !p.showingConfirm {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}

	return p, nil
}

func (p *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if p.sess == nil {
		return p, nil
	}

	if p.showingConfirm {
		switch msg.String() {
		case "y", "Y":
			return p.finish()
		case "n", "N", "esc":
			p.showingConfirm = false
			p.questionStart = time.Now().Add(-p.elapsed)
		}
		return p, nil
	}

	if p.showingFeedback {
		p.showingFeedback = false
		if p.sess.Done() {
			return p.finish()
		}
		if _, err := p.sess.Next(); err != nil {
			p.errMsg = err.Error()
			return p, nil
		}
		p.input.Reset()
		p.questionStart = time.Now()
		p.elapsed = 0
		return p, p.statusCmd()
	}

	switch msg.String() {
	case "esc":
		p.showingConfirm = true
		return p, nil
	case "enter":
		return p.submit()
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p *PlayScreen) submit() (screen.Screen, tea.Cmd) {
	answer, err := p.input.NumericValue()
	if err != nil {
		// Empty or junk input; keep waiting.
		return p, nil
	}

	puzzle := p.sess.Current()
	if puzzle == nil {
		return p, nil
	}
	elapsed := time.Since(p.questionStart)

	outcome, err := p.sess.Submit(answer, elapsed, time.Now())
	if err != nil {
		p.errMsg = err.Error()
		return p, nil
	}

	p.lastOutcome = outcome
	p.showingFeedback = true
	p.input.Submit(outcome.Correct)

	cmds := []tea.Cmd{p.statusCmd()}
	if p.repo != nil {
		cmds = append(cmds, p.persistAttempt(*puzzle, answer, outcome, elapsed))
		if outcome.Transition != nil {
			cmds = append(cmds, p.persistTransition(*outcome.Transition))
		}
	}
	return p, tea.Batch(cmds...)
}

func (p *PlayScreen) persistAttempt(puzzle puzzlegen.Puzzle, answer int, out session.Outcome, elapsed time.Duration) tea.Cmd {
	id := p.sess.ID()
	return func() tea.Msg {
		_ = p.repo.AppendAttemptEvent(context.Background(), store.AttemptEventData{
			SessionID:     id,
			Question:      puzzle.Question,
			CorrectAnswer: puzzle.Answer,
			UserAnswer:    answer,
			Correct:       out.Correct,
			TimeMs:        int(elapsed.Milliseconds()),
			Difficulty:    int(puzzle.Difficulty),
		})
		return nil
	}
}

func (p *PlayScreen) persistTransition(tr quiz.Transition) tea.Cmd {
	id := p.sess.ID()
	return func() tea.Msg {
		_ = p.repo.AppendTransitionEvent(context.Background(), store.TransitionEventData{
			SessionID:        id,
			FromLevel:        int(tr.From),
			ToLevel:          int(tr.To),
			Decision:         string(tr.Decision),
			PerformanceScore: tr.PerformanceScore,
			RecentAccuracy:   tr.RecentAccuracy,
			RecentAvgTime:    tr.RecentAvgTime.Seconds(),
			Reason:           tr.Reason,
		})
		return nil
	}
}

// finish records the end event and swaps in the results screen.
func (p *PlayScreen) finish() (screen.Screen, tea.Cmd) {
	now := time.Now()
	sum := p.sess.Summary(now)
	level := p.sess.Level()
	player := p.sess.Config().Player
	transitions := p.sess.Transitions()

	var persist tea.Cmd
	if p.repo != nil {
		id := p.sess.ID()
		cfg := p.sess.Config()
		persist = func() tea.Msg {
			_ = p.repo.AppendSessionEvent(context.Background(), store.SessionEventData{
				SessionID:      id,
				Action:         "end",
				Player:         cfg.Player,
				StartingLevel:  int(cfg.StartLevel),
				FinalLevel:     int(level),
				PuzzlesServed:  sum.TotalPuzzles,
				CorrectAnswers: sum.Correct,
				BestStreak:     sum.BestStreak,
				DurationSecs:   int(sum.Duration.Seconds()),
			})
			return nil
		}
	}

	replace := func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: summary.New(player, level, sum, transitions),
		}
	}
	return p, tea.Batch(persist, replace)
}
