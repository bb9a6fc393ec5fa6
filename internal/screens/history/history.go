package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"mathventure/internal/quiz"
	"mathventure/internal/router"
	"mathventure/internal/screen"
	"mathventure/internal/store"
	"mathventure/internal/ui/layout"
	"mathventure/internal/ui/theme"
)

type historyLoadedMsg struct {
	Sessions    []store.SessionRecord
	Transitions map[string][]store.TransitionRecord // sessionID → transitions
	Err         error
}

type attemptsLoadedMsg struct {
	SessionID string
	Attempts  []store.AttemptRecord
}

// HistoryScreen lists past sessions, newest first, with expandable detail.
type HistoryScreen struct {
	eventRepo   store.EventRepo
	sessions    []store.SessionRecord
	transitions map[string][]store.TransitionRecord
	attempts    map[string][]store.AttemptRecord // loaded on first expand
	selected    int
	expanded    map[int]bool
	loaded      bool
	errMsg      string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		attempts:  make(map[string][]store.AttemptRecord),
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		sessions, err := s.eventRepo.RecentSessions(ctx, 50)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		transitions := make(map[string][]store.TransitionRecord)
		for _, sess := range sessions {
			trs, err := s.eventRepo.SessionTransitions(ctx, sess.SessionID)
			if err != nil {
				continue
			}
			transitions[sess.SessionID] = trs
		}

		return historyLoadedMsg{Sessions: sessions, Transitions: transitions}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
			s.transitions = msg.Transitions
		}
		s.loaded = true
		return s, nil

	case attemptsLoadedMsg:
		s.attempts[msg.SessionID] = msg.Attempts
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			if s.expanded[s.selected] && s.selected < len(s.sessions) {
				if id := s.sessions[s.selected].SessionID; s.attempts[id] == nil {
					return s, s.loadAttempts(id)
				}
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) loadAttempts(sessionID string) tea.Cmd {
	return func() tea.Msg {
		attempts, err := s.eventRepo.SessionAttempts(context.Background(), sessionID)
		if err != nil {
			return attemptsLoadedMsg{SessionID: sessionID}
		}
		return attemptsLoadedMsg{SessionID: sessionID, Attempts: attempts}
	}
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No sessions yet. Start practicing!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, sess := range s.sessions {
		dateStr := sess.EndedAt.Format("Jan 02, 2006")
		mins := sess.DurationSecs / 60
		secs := sess.DurationSecs % 60
		durationStr := fmt.Sprintf("%d:%02d", mins, secs)

		var accuracy float64
		if sess.PuzzlesServed > 0 {
			accuracy = float64(sess.CorrectAnswers) / float64(sess.PuzzlesServed) * 100
		}

		line := fmt.Sprintf("%s  %s  %d/%d correct (%.0f%%)  %s  %s → %s",
			dateStr,
			sess.Player,
			sess.CorrectAnswers,
			sess.PuzzlesServed,
			accuracy,
			durationStr,
			quiz.Difficulty(sess.StartingLevel),
			quiz.Difficulty(sess.FinalLevel),
		)

		if i == s.selected {
			b.WriteString(theme.Selected.Render("  ▸ " + line))
		} else {
			b.WriteString(theme.Unselected.Render("    " + line))
		}
		b.WriteString("\n")

		if s.expanded[i] {
			for _, at := range s.attempts[sess.SessionID] {
				mark := "✓"
				result := fmt.Sprintf("%s = %d", at.Question, at.CorrectAnswer)
				if !at.Correct {
					mark = "✗"
					result += fmt.Sprintf("  (answered %d)", at.UserAnswer)
				}
				detail := fmt.Sprintf("      %s %s  %.1fs", mark, result, float64(at.TimeMs)/1000)
				b.WriteString(theme.Hint.Render(detail))
				b.WriteString("\n")
			}
			for _, tr := range s.transitions[sess.SessionID] {
				if tr.Decision == "MAINTAIN" {
					continue
				}
				detail := fmt.Sprintf("      %s → %s  %s",
					quiz.Difficulty(tr.FromLevel),
					quiz.Difficulty(tr.ToLevel),
					tr.Reason,
				)
				b.WriteString(theme.Hint.Render(detail))
				b.WriteString("\n")
			}
			if sess.BestStreak > 0 {
				b.WriteString(theme.Hint.Render(
					fmt.Sprintf("      Best streak: %d", sess.BestStreak)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}
