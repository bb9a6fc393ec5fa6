package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"mathventure/internal/quiz"
	"mathventure/internal/ui/components"
	"mathventure/internal/ui/theme"
)

func (p *PlayScreen) View(width, height int) string {
	if p.errMsg != "" {
		return renderError(width, height, p.errMsg)
	}
	if p.sess == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Setting up..."))
	}
	if p.showingConfirm {
		return renderQuitConfirm(width, height)
	}
	if p.showingFeedback {
		return p.renderFeedback(width, height)
	}
	return p.renderQuestion(width, height)
}

func (p *PlayScreen) renderQuestion(width, height int) string {
	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Puzzle %d/%d", p.sess.Served(), p.sess.Config().PuzzleCount))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s  %ds",
			p.sess.Level(),
			int(p.elapsed.Seconds()),
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")

	count := p.sess.Config().PuzzleCount
	bar := components.NewProgressBar("", float64(p.sess.Answered())/float64(count), false, max(width-4, 4))
	b.WriteString("  " + bar.View())
	b.WriteString("\n\n\n")

	puzzle := p.sess.Current()
	if puzzle != nil {
		b.WriteString(theme.Puzzle.Width(width).Render(puzzle.Question + " = ?"))
	}
	b.WriteString("\n\n")

	answerLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Answer: " + p.input.View())
	b.WriteString(answerLine)

	return b.String()
}

func (p *PlayScreen) renderFeedback(width, height int) string {
	var b strings.Builder
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	b.WriteString("\n\n")
	if p.lastOutcome.Correct {
		b.WriteString(center.Render(theme.Correct.Render("Correct!")))
		if p.lastOutcome.Streak >= 3 {
			b.WriteString("\n")
			b.WriteString(center.Render(theme.Hint.Render(
				fmt.Sprintf("%d in a row!", p.lastOutcome.Streak))))
		}
	} else {
		b.WriteString(center.Render(theme.Incorrect.Render("Not quite.")))
		b.WriteString("\n")
		b.WriteString(center.Render(fmt.Sprintf("The answer was %d", p.lastOutcome.Answer)))
	}

	if tr := p.lastOutcome.Transition; tr != nil && tr.Decision != quiz.DecisionMaintain {
		b.WriteString("\n\n")
		var head string
		if tr.Decision == quiz.DecisionIncrease {
			head = fmt.Sprintf("Level up! %s → %s", tr.From, tr.To)
		} else {
			head = fmt.Sprintf("Easing off: %s → %s", tr.From, tr.To)
		}
		b.WriteString(theme.Banner.Width(width).Render(head))
		b.WriteString("\n")
		b.WriteString(center.Render(theme.Hint.Render(tr.Reason)))
	}

	b.WriteString("\n\n")
	b.WriteString(center.Render(theme.Hint.Render("Press any key to continue")))

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Center, b.String())
}

func renderQuitConfirm(width, height int) string {
	content := theme.Card.Render(
		lipgloss.NewStyle().Bold(true).Foreground(theme.Text).Render("End this session early?") +
			"\n\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Your answered puzzles still count."),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func renderError(width, height int, msg string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Incorrect.Render("Something went wrong")+"\n\n"+
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(msg))
}
