// Package setup collects the session options before a round starts: player
// name, starting difficulty, and puzzle count.
package setup

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"mathventure/internal/puzzlegen"
	"mathventure/internal/quiz"
	"mathventure/internal/router"
	"mathventure/internal/screen"
	"mathventure/internal/screens/play"
	"mathventure/internal/session"
	"mathventure/internal/store"
	"mathventure/internal/ui/components"
	"mathventure/internal/ui/layout"
	"mathventure/internal/ui/theme"
)

type step int

const (
	stepName step = iota
	stepLevel
	stepCount
)

// SetupScreen walks through the pre-session form one field at a time.
type SetupScreen struct {
	gen  *puzzlegen.Generator
	repo store.EventRepo

	step       step
	nameInput  components.TextInput
	levelMenu  components.Menu
	countInput components.TextInput

	name   string
	level  quiz.Difficulty
	errMsg string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a new SetupScreen.
func New(gen *puzzlegen.Generator, repo store.EventRepo) *SetupScreen {
	s := &SetupScreen{
		gen:        gen,
		repo:       repo,
		nameInput:  components.NewTextInput("Your name...", false, 20),
		countInput: components.NewTextInput(fmt.Sprintf("%d", session.DefaultPuzzleCount), true, 2),
	}

	items := make([]components.MenuItem, 0, len(quiz.AllDifficulties()))
	for _, d := range quiz.AllDifficulties() {
		level := d
		items = append(items, components.MenuItem{
			Label: level.String(),
			Action: func() tea.Cmd {
				s.level = level
				s.step = stepCount
				return s.countInput.Init()
			},
		})
	}
	s.levelMenu = components.NewMenu(items)

	return s
}

func (s *SetupScreen) Init() tea.Cmd {
	return s.nameInput.Init()
}

func (s *SetupScreen) Title() string {
	return "New Session"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	switch s.step {
	case stepLevel:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose level"},
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)

	// Esc steps back through the form, then out to the menu.
	if isKey && kmsg.String() == "esc" {
		switch s.step {
		case stepName:
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case stepLevel:
			s.step = stepName
		case stepCount:
			s.step = stepLevel
		}
		s.errMsg = ""
		return s, nil
	}

	switch s.step {
	case stepName:
		if isKey && kmsg.String() == "enter" {
			s.name = strings.TrimSpace(s.nameInput.Value())
			if s.name == "" {
				s.name = "Player"
			}
			s.step = stepLevel
			return s, nil
		}
		var cmd tea.Cmd
		s.nameInput, cmd = s.nameInput.Update(msg)
		return s, cmd

	case stepLevel:
		var cmd tea.Cmd
		s.levelMenu, cmd = s.levelMenu.Update(msg)
		return s, cmd

	case stepCount:
		if isKey && kmsg.String() == "enter" {
			return s.startSession()
		}
		var cmd tea.Cmd
		s.countInput, cmd = s.countInput.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *SetupScreen) startSession() (screen.Screen, tea.Cmd) {
	count := session.DefaultPuzzleCount
	if s.countInput.Value() != "" {
		n, err := s.countInput.NumericValue()
		if err != nil {
			s.errMsg = "Puzzle count must be a number"
			return s, nil
		}
		count = n
	}
	if count < session.MinPuzzleCount || count > session.MaxPuzzleCount {
		s.errMsg = fmt.Sprintf("Puzzle count must be between %d and %d",
			session.MinPuzzleCount, session.MaxPuzzleCount)
		return s, nil
	}

	cfg := session.Config{
		Player:      s.name,
		StartLevel:  s.level,
		PuzzleCount: count,
	}
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: play.New(cfg, s.gen, s.repo)}
	}
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Set up your session"))
	b.WriteString("\n\n")

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	switch s.step {
	case stepName:
		b.WriteString(center.Render("Who is playing?"))
		b.WriteString("\n\n")
		b.WriteString(center.Render(s.nameInput.View()))

	case stepLevel:
		b.WriteString(center.Render(fmt.Sprintf("Hi %s! Pick a starting level:", s.name)))
		b.WriteString("\n\n")
		b.WriteString(center.Render(s.levelMenu.View()))

	case stepCount:
		b.WriteString(center.Render(fmt.Sprintf("Starting at %s. How many puzzles? (%d-%d)",
			s.level, session.MinPuzzleCount, session.MaxPuzzleCount)))
		b.WriteString("\n\n")
		b.WriteString(center.Render(s.countInput.View()))
	}

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(center.Render(theme.Incorrect.Render(s.errMsg)))
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Center, b.String())
}
