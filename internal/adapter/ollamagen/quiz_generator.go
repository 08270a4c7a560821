package ollamagen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"open-instruct/internal/domain"
	"open-instruct/internal/logger"

	"go.uber.org/zap"
)

// OllamaQuizGenerator implements domain.QuizGenerator using an
// Ollama-served model.
type OllamaQuizGenerator struct {
	client caller
}

// NewQuizGenerator creates a quiz generator on top of client.
func NewQuizGenerator(client *Client) domain.QuizGenerator {
	return &OllamaQuizGenerator{client: client}
}

type quizPayload struct {
	Stem          string   `json:"stem"`
	CorrectAnswer string   `json:"correct_answer"`
	Distractors   []string `json:"distractors"`
	Explanation   string   `json:"explanation"`
}

// GenerateQuiz implements domain.QuizGenerator.
// The returned question passes the domain quality rules; QuizID and
// GeneratedAt are left for the caller. Callers retry on error.
func (g *OllamaQuizGenerator) GenerateQuiz(
	ctx context.Context,
	objective *domain.LearningObjective,
	difficulty domain.Difficulty,
) (*domain.QuizQuestion, error) {
	prompt := buildQuizPrompt(objective, difficulty)

	rawResponse, err := g.client.Call(ctx, prompt)
	if err != nil {
		return nil, err
	}

	jsonStr, err := extractJSONObject(rawResponse)
	if err != nil {
		logger.Get().Warn("No JSON object in quiz response",
			zap.String("objective_id", objective.ID),
			zap.String("raw_response", truncate(rawResponse, 500)))
		return nil, err
	}

	var payload quizPayload
	if err := json.Unmarshal([]byte(jsonStr), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse quiz JSON: %w", err)
	}

	question := &domain.QuizQuestion{
		ObjectiveID:   objective.ID,
		Stem:          strings.TrimSpace(payload.Stem),
		CorrectAnswer: strings.TrimSpace(payload.CorrectAnswer),
		Distractors:   payload.Distractors,
		Explanation:   strings.TrimSpace(payload.Explanation),
		Difficulty:    difficulty,
	}

	if err := question.Validate(); err != nil {
		return nil, fmt.Errorf("generated quiz failed validation: %w", err)
	}
	return question, nil
}

func buildQuizPrompt(objective *domain.LearningObjective, difficulty domain.Difficulty) string {
	return fmt.Sprintf(`You are an expert assessment writer. Create one %s multiple-choice quiz
question testing this learning objective: "%s" (Bloom level: %s).

Respond with ONLY a JSON object in the following format:
{
    "stem": "the question text, ending with a question mark",
    "correct_answer": "the single correct answer",
    "distractors": ["wrong option 1", "wrong option 2", "wrong option 3"],
    "explanation": "why the correct answer is correct"
}

Rules:
1. Exactly 3 distractors, all unique, none equal to the correct answer.
2. Distractors must be plausible but clearly incorrect, similar in length to the correct answer.
3. The stem must be a clear question of at least 10 characters ending with "?".
4. The explanation must be at least 15 characters and teach the underlying concept.`,
		difficulty, objective.Statement(), objective.Level)
}
