package quiz

import (
	"fmt"
	"strings"
)

// Difficulty is a bounded puzzle difficulty level. Levels form a total
// order (Easy < Medium < Hard < Expert) and the engine moves between
// adjacent levels only.
type Difficulty int

const (
	Easy   Difficulty = 1
	Medium Difficulty = 2
	Hard   Difficulty = 3
	Expert Difficulty = 4

	MinDifficulty = Easy
	MaxDifficulty = Expert
)

var difficultyNames = map[Difficulty]string{
	Easy:   "Easy",
	Medium: "Medium",
	Hard:   "Hard",
	Expert: "Expert",
}

// Valid reports whether d is within the supported range.
func (d Difficulty) Valid() bool {
	return d >= MinDifficulty && d <= MaxDifficulty
}

func (d Difficulty) String() string {
	if name, ok := difficultyNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Level %d", int(d))
}

// ParseDifficulty accepts a level name ("easy", "Expert") or its numeric
// form ("1".."4").
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "1":
		return Easy, nil
	case "medium", "2":
		return Medium, nil
	case "hard", "3":
		return Hard, nil
	case "expert", "4":
		return Expert, nil
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}

// AllDifficulties returns the levels in ascending order.
func AllDifficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard, Expert}
}
