package puzzlegen

import (
	"fmt"
	"math/rand"

	"mathventure/internal/quiz"
)

// Generator produces arithmetic puzzles from per-difficulty operand
// ranges. It is a pure sampler over its rand source; injecting a seeded
// source makes generation deterministic for tests.
type Generator struct {
	rng *rand.Rand
}

// New creates a generator drawing from rng.
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate produces a puzzle at the given difficulty with a randomly
// chosen operation.
func (g *Generator) Generate(difficulty quiz.Difficulty) (Puzzle, error) {
	ops := AllOperations()
	return g.GenerateOp(difficulty, ops[g.rng.Intn(len(ops))])
}

// GenerateOp produces a puzzle for a specific operation. Subtraction
// never goes negative; division is constructed exact by sampling the
// quotient and deriving the dividend.
func (g *Generator) GenerateOp(difficulty quiz.Difficulty, op Operation) (Puzzle, error) {
	if !difficulty.Valid() {
		return Puzzle{}, fmt.Errorf("generate puzzle: %w (%d)", quiz.ErrLevelRange, int(difficulty))
	}
	r, ok := ranges[difficulty][op]
	if !ok {
		return Puzzle{}, fmt.Errorf("generate puzzle: unsupported operation %q", op)
	}

	var left, right, answer int
	switch op {
	case OpAddition:
		left = g.intn(r.leftMin, r.leftMax)
		right = g.intn(r.rightMin, r.rightMax)
		answer = left + right

	case OpSubtraction:
		left = g.intn(r.leftMin, r.leftMax)
		rightMax := r.rightMax
		if left < rightMax {
			rightMax = left
		}
		right = g.intn(r.rightMin, rightMax)
		answer = left - right

	case OpMultiplication:
		left = g.intn(r.leftMin, r.leftMax)
		right = g.intn(r.rightMin, r.rightMax)
		answer = left * right

	case OpDivision:
		divMin := r.rightMin
		if divMin < 1 {
			divMin = 1
		}
		right = g.intn(divMin, r.rightMax)
		maxQuotient := r.leftMax / right
		if maxQuotient < 1 {
			maxQuotient = 1
		}
		answer = g.intn(1, maxQuotient)
		left = right * answer
	}

	return Puzzle{
		Question:   fmt.Sprintf("%d %s %d", left, op, right),
		Answer:     answer,
		Operation:  op,
		Difficulty: difficulty,
		Left:       left,
		Right:      right,
	}, nil
}

// intn samples uniformly from [lo, hi]. A degenerate range collapses to lo.
func (g *Generator) intn(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}
