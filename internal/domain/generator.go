package domain

import "context"

// ObjectiveGenerator defines the interface for generating course
// structures with Bloom's Taxonomy learning objectives from an LLM.
type ObjectiveGenerator interface {
	// GenerateObjectives produces numObjectives learning objectives for the
	// topic and target audience. When includeExplanations is set, each
	// objective carries a short explanation of its verb choice.
	GenerateObjectives(
		ctx context.Context,
		topic string,
		targetAudience string,
		numObjectives int,
		includeExplanations bool,
	) (*CourseStructure, error)
}

// QuizGenerator defines the interface for generating multiple-choice
// quiz questions from a learning objective.
type QuizGenerator interface {
	// GenerateQuiz produces one quiz question for the objective at the
	// requested difficulty. The returned question has no QuizID or
	// GeneratedAt; the caller assigns those.
	GenerateQuiz(
		ctx context.Context,
		objective *LearningObjective,
		difficulty Difficulty,
	) (*QuizQuestion, error)
}

// LLMHealthChecker reports connectivity and model information for the
// backing model server.
type LLMHealthChecker interface {
	// CheckConnection verifies the model server is reachable.
	CheckConnection(ctx context.Context) error

	// ModelVersion returns the configured model name.
	ModelVersion() string
}
