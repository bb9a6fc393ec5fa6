package puzzlegen

import "mathventure/internal/quiz"

// Operation is an arithmetic operation.
type Operation string

const (
	OpAddition       Operation = "+"
	OpSubtraction    Operation = "-"
	OpMultiplication Operation = "×"
	OpDivision       Operation = "÷"
)

// AllOperations returns the supported operations.
func AllOperations() []Operation {
	return []Operation{OpAddition, OpSubtraction, OpMultiplication, OpDivision}
}

// Puzzle represents a generated arithmetic puzzle ready for display.
type Puzzle struct {
	// Question is the prompt shown to the learner, e.g. "12 × 7".
	Question string

	// Answer is the single correct integer answer.
	Answer int

	// Operation is the arithmetic operation used.
	Operation Operation

	// Difficulty is the level the puzzle was generated for.
	Difficulty quiz.Difficulty

	// Operands as they appear in the question.
	Left, Right int
}

// operandRange bounds the two operands for one difficulty+operation pair.
type operandRange struct {
	leftMin, leftMax   int
	rightMin, rightMax int
}

// ranges holds the operand bounds per difficulty level and operation.
// Division bounds apply to the divisor; the dividend is constructed so
// division is always exact.
var ranges = map[quiz.Difficulty]map[Operation]operandRange{
	quiz.Easy: {
		OpAddition:       {1, 10, 1, 10},
		OpSubtraction:    {1, 10, 1, 10},
		OpMultiplication: {1, 5, 1, 5},
		OpDivision:       {1, 5, 1, 5},
	},
	quiz.Medium: {
		OpAddition:       {10, 50, 10, 50},
		OpSubtraction:    {10, 50, 10, 50},
		OpMultiplication: {2, 12, 2, 12},
		OpDivision:       {2, 12, 2, 12},
	},
	quiz.Hard: {
		OpAddition:       {50, 200, 50, 200},
		OpSubtraction:    {50, 200, 10, 100},
		OpMultiplication: {10, 25, 2, 15},
		OpDivision:       {10, 20, 2, 10},
	},
	quiz.Expert: {
		OpAddition:       {100, 1000, 100, 1000},
		OpSubtraction:    {100, 1000, 50, 500},
		OpMultiplication: {15, 50, 10, 25},
		OpDivision:       {20, 100, 5, 20},
	},
}
