package play

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"mathventure/internal/puzzlegen"
	"mathventure/internal/quiz"
	"mathventure/internal/session"
)

func readyScreen(t *testing.T, count int) *PlayScreen {
	t.Helper()
	cfg := session.Config{Player: "Ada", StartLevel: quiz.Easy, PuzzleCount: count}
	gen := puzzlegen.New(rand.New(rand.NewSource(3)))
	sess, err := session.New(cfg, gen, time.Now())
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}

	p := New(cfg, gen, nil)
	updated, _ := p.Update(sessionReadyMsg{Sess: sess})
	return updated.(*PlayScreen)
}

func pressEnter(t *testing.T, p *PlayScreen) *PlayScreen {
	t.Helper()
	updated, _ := p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return updated.(*PlayScreen)
}

func typeAnswer(t *testing.T, p *PlayScreen, answer int) {
	t.Helper()
	for _, r := range fmt.Sprint(answer) {
		p.input, _ = p.input.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestSessionReadyDealsFirstPuzzle(t *testing.T) {
	p := readyScreen(t, 5)
	if p.sess == nil {
		t.Fatal("session not wired")
	}
	if p.sess.Current() == nil {
		t.Fatal("no puzzle dealt")
	}
	if p.sess.Served() != 1 {
		t.Fatalf("served = %d, want 1", p.sess.Served())
	}
}

func TestQuestionViewShowsProgressBar(t *testing.T) {
	p := readyScreen(t, 5)

	lines := strings.Split(p.View(80, 24), "\n")
	if len(lines) < 2 {
		t.Fatalf("unexpected view shape: %d lines", len(lines))
	}
	// Indent plus a bar spanning the frame width.
	if got := lipgloss.Width(lines[1]); got != 78 {
		t.Errorf("progress line width = %d, want 78", got)
	}
}

func TestSubmitCorrectShowsFeedback(t *testing.T) {
	p := readyScreen(t, 5)
	typeAnswer(t, p, p.sess.Current().Answer)

	p = pressEnter(t, p)

	if !p.showingFeedback {
		t.Fatal("expected feedback after submit")
	}
	if !p.lastOutcome.Correct {
		t.Fatal("expected correct outcome")
	}

	view := p.View(80, 24)
	if !strings.Contains(view, "Correct!") {
		t.Error("feedback view missing result")
	}
}

func TestSubmitWrongShowsAnswer(t *testing.T) {
	p := readyScreen(t, 5)
	wrong := p.sess.Current().Answer + 1
	typeAnswer(t, p, wrong)

	p = pressEnter(t, p)

	if p.lastOutcome.Correct {
		t.Fatal("expected incorrect outcome")
	}
	view := p.View(80, 24)
	if !strings.Contains(view, fmt.Sprintf("The answer was %d", p.lastOutcome.Answer)) {
		t.Error("feedback view missing the correct answer")
	}
}

func TestFeedbackAdvancesToNextPuzzle(t *testing.T) {
	p := readyScreen(t, 5)
	typeAnswer(t, p, p.sess.Current().Answer)
	p = pressEnter(t, p)

	updated, _ := p.Update(tea.KeyPressMsg{Code: ' ', Text: " "})
	p = updated.(*PlayScreen)

	if p.showingFeedback {
		t.Fatal("feedback should clear on key press")
	}
	if p.sess.Served() != 2 {
		t.Fatalf("served = %d, want 2", p.sess.Served())
	}
	if p.input.Value() != "" {
		t.Fatalf("input not reset: %q", p.input.Value())
	}
}

func TestEscOpensQuitConfirm(t *testing.T) {
	p := readyScreen(t, 5)

	updated, _ := p.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	p = updated.(*PlayScreen)
	if !p.showingConfirm {
		t.Fatal("expected quit confirmation")
	}

	updated, _ = p.Update(tea.KeyPressMsg{Code: 'n', Text: "n"})
	p = updated.(*PlayScreen)
	if p.showingConfirm {
		t.Fatal("confirmation should close on n")
	}
}

func TestQuitConfirmEndsSession(t *testing.T) {
	p := readyScreen(t, 5)

	updated, _ := p.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	p = updated.(*PlayScreen)
	_, cmd := p.Update(tea.KeyPressMsg{Code: 'y', Text: "y"})
	if cmd == nil {
		t.Fatal("expected a command ending the session")
	}
}

func TestFinalAnswerEndsSession(t *testing.T) {
	p := readyScreen(t, 5)

	for i := 0; i < 5; i++ {
		typeAnswer(t, p, p.sess.Current().Answer)
		p = pressEnter(t, p)
		if !p.showingFeedback {
			t.Fatalf("attempt %d: expected feedback", i+1)
		}
		if i < 4 {
			updated, _ := p.Update(tea.KeyPressMsg{Code: ' ', Text: " "})
			p = updated.(*PlayScreen)
		}
	}

	if !p.sess.Done() {
		t.Fatal("session should be complete")
	}
	_, cmd := p.Update(tea.KeyPressMsg{Code: ' ', Text: " "})
	if cmd == nil {
		t.Fatal("expected a command swapping in the results screen")
	}
}
