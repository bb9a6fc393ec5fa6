// Package summary shows the results screen after a round ends.
package summary

import (
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"mathventure/internal/quiz"
	"mathventure/internal/router"
	"mathventure/internal/screen"
	"mathventure/internal/ui/layout"
	"mathventure/internal/ui/theme"
)

// SummaryScreen displays the session results and the next-session advice.
type SummaryScreen struct {
	player      string
	level       quiz.Difficulty
	summary     quiz.SessionSummary
	transitions []quiz.Transition
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(player string, level quiz.Difficulty, sum quiz.SessionSummary, transitions []quiz.Transition) *SummaryScreen {
	return &SummaryScreen{
		player:      player,
		level:       level,
		summary:     sum,
		transitions: transitions,
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		return screen.StatusMsg{Level: s.level.String(), Streak: s.summary.CurrentStreak}
	}
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary

	var b strings.Builder
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("Nice work, %s!", s.player)))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(center.Foreground(theme.TextDim).Render(
		fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Puzzles: %d        Correct: %d        Accuracy: %.0f%%",
		sum.TotalPuzzles, sum.Correct, sum.Accuracy*100)
	b.WriteString(center.Foreground(theme.Text).Render(statsLine))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Text).Render(
		fmt.Sprintf("Best streak: %d        Avg time: %.1fs", sum.BestStreak, sum.AvgTime.Seconds())))
	b.WriteString("\n\n")

	b.WriteString(renderDivider(width, "By level"))

	levels := make([]quiz.Difficulty, 0, len(sum.ByDifficulty))
	for d := range sum.ByDifficulty {
		levels = append(levels, d)
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i] < levels[j] })
	for _, d := range levels {
		st := sum.ByDifficulty[d]
		line := fmt.Sprintf("%-8s %d/%d correct   %.0f%%   %.1fs avg",
			d, st.Correct, st.Total, st.Accuracy*100, st.AvgTime.Seconds())
		b.WriteString(center.Foreground(theme.Text).Render(line))
		b.WriteString("\n")
	}

	if len(s.transitions) > 0 {
		b.WriteString("\n")
		b.WriteString(renderDivider(width, "Difficulty"))
		for _, tr := range s.transitions {
			if tr.Decision == quiz.DecisionMaintain {
				continue
			}
			b.WriteString(center.Foreground(theme.Secondary).Render(
				fmt.Sprintf("%s → %s", tr.From, tr.To)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(center.Render(theme.Hint.Render(
		quiz.Recommendation(sum, s.level))))

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Center, b.String())
}

func renderDivider(width int, label string) string {
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(label)) +
		"\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, divider) + "\n\n"
}
