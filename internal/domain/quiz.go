package domain

import (
	"fmt"
	"strings"
	"time"
)

// Difficulty represents a quiz difficulty level
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// IsValid reports whether the difficulty is one of easy, medium, hard.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// ParseDifficulty normalizes a difficulty string, defaulting to medium.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy
	case "hard":
		return DifficultyHard
	default:
		return DifficultyMedium
	}
}

// NumDistractors is the required distractor count per question.
// With the correct answer this yields the fixed four answer options.
const NumDistractors = 3

// maxDistractorLengthDelta bounds how much a distractor's length may
// differ from the correct answer, so wrong options are not obvious.
const maxDistractorLengthDelta = 200

// QuizQuestion is a generated multiple-choice quiz question.
type QuizQuestion struct {
	QuizID        string
	ObjectiveID   string
	Stem          string
	CorrectAnswer string
	Distractors   []string
	Explanation   string
	Difficulty    Difficulty
	GeneratedAt   time.Time
}

// Validate enforces the quality rules for a quiz question: a real
// question stem, a non-empty answer, exactly three unique plausible
// distractors that do not contain the correct answer, and a meaningful
// explanation.
func (q *QuizQuestion) Validate() error {
	if len(strings.TrimSpace(q.Stem)) < 10 {
		return NewValidationError("question stem must be at least 10 characters long")
	}
	if !strings.HasSuffix(strings.TrimSpace(q.Stem), "?") {
		return NewValidationError("question stem must end with a question mark")
	}
	if strings.TrimSpace(q.CorrectAnswer) == "" {
		return NewValidationError("correct answer cannot be empty")
	}
	if len(q.Distractors) != NumDistractors {
		return NewValidationError(fmt.Sprintf("exactly %d distractors required, got %d", NumDistractors, len(q.Distractors)))
	}
	seen := make(map[string]bool, len(q.Distractors))
	for i, distractor := range q.Distractors {
		if strings.TrimSpace(distractor) == "" {
			return NewValidationError(fmt.Sprintf("distractor %d cannot be empty", i+1))
		}
		if seen[distractor] {
			return NewValidationError("distractors must be unique")
		}
		seen[distractor] = true
		if distractor == q.CorrectAnswer {
			return NewValidationError("correct answer must not appear in distractors")
		}
		delta := len(distractor) - len(q.CorrectAnswer)
		if delta < 0 {
			delta = -delta
		}
		if delta > maxDistractorLengthDelta {
			return NewValidationError("distractor length must be similar to the correct answer")
		}
	}
	if len(strings.TrimSpace(q.Explanation)) < 15 {
		return NewValidationError("explanation must be at least 15 characters long")
	}
	return nil
}
