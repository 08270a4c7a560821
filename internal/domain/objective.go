package domain

import (
	"fmt"
	"regexp"
	"time"
)

// objectiveIDPattern matches objective identifiers such as LO-001.
var objectiveIDPattern = regexp.MustCompile(`^LO-\d{3}$`)

// IsValidObjectiveID reports whether id has the LO-NNN format.
func IsValidObjectiveID(id string) bool {
	return objectiveIDPattern.MatchString(id)
}

// FormatObjectiveID builds the canonical objective identifier for a
// 1-based position, e.g. FormatObjectiveID(1) == "LO-001".
func FormatObjectiveID(position int) string {
	return fmt.Sprintf("LO-%03d", position)
}

// LearningObjective is a single learning objective following Bloom's Taxonomy.
type LearningObjective struct {
	ID          string
	Verb        string
	Content     string
	Level       BloomLevel
	Explanation string
	Topic       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate validates the learning objective
func (o *LearningObjective) Validate() error {
	if !IsValidObjectiveID(o.ID) {
		return NewValidationError(fmt.Sprintf("objective id %q does not match LO-NNN", o.ID))
	}
	if o.Verb == "" {
		return NewValidationError("verb is required")
	}
	if o.Content == "" {
		return NewValidationError("content is required")
	}
	if !o.Level.IsValid() {
		return NewValidationError(fmt.Sprintf("level %q is not a Bloom level", o.Level))
	}
	if !ValidateVerb(o.Verb, o.Level) {
		return NewValidationError(fmt.Sprintf("verb %q is not approved for level %q", o.Verb, o.Level))
	}
	return nil
}

// Statement renders the objective as "{verb} {content}", the form used
// in quiz generation prompts.
func (o *LearningObjective) Statement() string {
	return o.Verb + " " + o.Content
}

// CourseStructure is a course topic with its generated learning objectives.
type CourseStructure struct {
	Topic      string
	Objectives []*LearningObjective
}

// Validate validates the course structure and every objective in it.
func (c *CourseStructure) Validate() error {
	if c.Topic == "" {
		return NewValidationError("topic is required")
	}
	if len(c.Objectives) == 0 {
		return NewValidationError("at least one objective is required")
	}
	for _, obj := range c.Objectives {
		if err := obj.Validate(); err != nil {
			return err
		}
	}
	return nil
}
