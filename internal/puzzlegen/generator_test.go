package puzzlegen

import (
	"errors"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"mathventure/internal/quiz"
)

func newTestGenerator(seed int64) *Generator {
	return New(rand.New(rand.NewSource(seed)))
}

func TestGenerateOpInvariants(t *testing.T) {
	g := newTestGenerator(1)

	for _, d := range quiz.AllDifficulties() {
		for _, op := range AllOperations() {
			for i := 0; i < 200; i++ {
				p, err := g.GenerateOp(d, op)
				if err != nil {
					t.Fatalf("GenerateOp(%v, %s): %v", d, op, err)
				}
				if p.Difficulty != d {
					t.Fatalf("Difficulty = %v, want %v", p.Difficulty, d)
				}

				switch op {
				case OpAddition:
					if p.Answer != p.Left+p.Right {
						t.Fatalf("%s: answer %d", p.Question, p.Answer)
					}
				case OpSubtraction:
					if p.Answer != p.Left-p.Right {
						t.Fatalf("%s: answer %d", p.Question, p.Answer)
					}
					if p.Answer < 0 {
						t.Fatalf("%s: negative result", p.Question)
					}
				case OpMultiplication:
					if p.Answer != p.Left*p.Right {
						t.Fatalf("%s: answer %d", p.Question, p.Answer)
					}
				case OpDivision:
					if p.Right == 0 {
						t.Fatalf("%s: zero divisor", p.Question)
					}
					if p.Left%p.Right != 0 {
						t.Fatalf("%s: not exact", p.Question)
					}
					if p.Answer != p.Left/p.Right {
						t.Fatalf("%s: answer %d", p.Question, p.Answer)
					}
				}
			}
		}
	}
}

func TestGenerateOperandRanges(t *testing.T) {
	g := newTestGenerator(7)

	for i := 0; i < 500; i++ {
		p, err := g.GenerateOp(quiz.Easy, OpAddition)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if p.Left < 1 || p.Left > 10 || p.Right < 1 || p.Right > 10 {
			t.Fatalf("easy addition operands out of range: %s", p.Question)
		}
	}

	for i := 0; i < 500; i++ {
		p, err := g.GenerateOp(quiz.Expert, OpMultiplication)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if p.Left < 15 || p.Left > 50 || p.Right < 10 || p.Right > 25 {
			t.Fatalf("expert multiplication operands out of range: %s", p.Question)
		}
	}
}

func TestGenerateQuestionFormat(t *testing.T) {
	g := newTestGenerator(3)
	p, err := g.GenerateOp(quiz.Medium, OpMultiplication)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parts := strings.Split(p.Question, " ")
	if len(parts) != 3 {
		t.Fatalf("Question = %q, want three space-separated tokens", p.Question)
	}
	if parts[1] != string(OpMultiplication) {
		t.Errorf("operator token = %q, want %q", parts[1], OpMultiplication)
	}
	if left, err := strconv.Atoi(parts[0]); err != nil || left != p.Left {
		t.Errorf("left token = %q, want %d", parts[0], p.Left)
	}
}

func TestGenerateInvalidDifficulty(t *testing.T) {
	g := newTestGenerator(1)
	if _, err := g.Generate(quiz.Difficulty(0)); !errors.Is(err, quiz.ErrLevelRange) {
		t.Errorf("err = %v, want ErrLevelRange", err)
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	a := newTestGenerator(42)
	b := newTestGenerator(42)

	for i := 0; i < 20; i++ {
		pa, err := a.Generate(quiz.Hard)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		pb, err := b.Generate(quiz.Hard)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if pa != pb {
			t.Fatalf("same seed diverged: %v vs %v", pa, pb)
		}
	}
}
