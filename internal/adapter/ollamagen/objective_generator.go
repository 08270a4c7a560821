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

// caller abstracts the model call so generators can be tested without a
// running model server.
type caller interface {
	Call(ctx context.Context, prompt string) (string, error)
}

// OllamaObjectiveGenerator implements domain.ObjectiveGenerator using an
// Ollama-served model.
type OllamaObjectiveGenerator struct {
	client caller
}

// NewObjectiveGenerator creates an objective generator on top of client.
func NewObjectiveGenerator(client *Client) domain.ObjectiveGenerator {
	return &OllamaObjectiveGenerator{client: client}
}

type objectivePayload struct {
	Verb        string `json:"verb"`
	Content     string `json:"content"`
	Level       string `json:"level"`
	Explanation string `json:"explanation,omitempty"`
}

type courseStructurePayload struct {
	Topic      string             `json:"topic"`
	Objectives []objectivePayload `json:"objectives"`
}

// GenerateObjectives implements domain.ObjectiveGenerator.
// The returned structure has positional ids (LO-001..) and every verb
// validated against the approved Bloom table. Callers retry on error.
func (g *OllamaObjectiveGenerator) GenerateObjectives(
	ctx context.Context,
	topic string,
	targetAudience string,
	numObjectives int,
	includeExplanations bool,
) (*domain.CourseStructure, error) {
	prompt := buildObjectivesPrompt(topic, targetAudience, numObjectives, includeExplanations)

	rawResponse, err := g.client.Call(ctx, prompt)
	if err != nil {
		return nil, err
	}

	jsonStr, err := extractJSONObject(rawResponse)
	if err != nil {
		logger.Get().Warn("No JSON object in objectives response",
			zap.String("topic", topic),
			zap.String("raw_response", truncate(rawResponse, 500)))
		return nil, err
	}

	var payload courseStructurePayload
	if err := json.Unmarshal([]byte(jsonStr), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse objectives JSON: %w", err)
	}

	if len(payload.Objectives) != numObjectives {
		return nil, fmt.Errorf("expected %d objectives, got %d", numObjectives, len(payload.Objectives))
	}

	structure := &domain.CourseStructure{
		Topic:      topic,
		Objectives: make([]*domain.LearningObjective, 0, numObjectives),
	}
	for i, obj := range payload.Objectives {
		objective := &domain.LearningObjective{
			ID:      domain.FormatObjectiveID(i + 1),
			Verb:    strings.ToLower(strings.TrimSpace(obj.Verb)),
			Content: strings.TrimSpace(obj.Content),
			Level:   domain.BloomLevel(strings.TrimSpace(obj.Level)),
			Topic:   topic,
		}
		if includeExplanations {
			objective.Explanation = strings.TrimSpace(obj.Explanation)
		}
		structure.Objectives = append(structure.Objectives, objective)
	}

	if err := structure.Validate(); err != nil {
		return nil, fmt.Errorf("generated objectives failed validation: %w", err)
	}
	return structure, nil
}

func buildObjectivesPrompt(topic, targetAudience string, numObjectives int, includeExplanations bool) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, `You are an expert instructional designer. Create exactly %d learning objectives
for a course on "%s" aimed at: %s.

The objectives must follow Bloom's Taxonomy, progressing from lower to higher cognitive
levels. Each objective uses exactly one action verb, and the verb MUST come from the
approved list for its level:

`, numObjectives, topic, targetAudience)

	for _, level := range domain.BloomLevels {
		fmt.Fprintf(&sb, "%s: %s\n", level, strings.Join(domain.ApprovedVerbs(level), ", "))
	}

	explanationField := ""
	if includeExplanations {
		explanationField = `,
      "explanation": "one sentence on why this verb and level fit"`
	}

	fmt.Fprintf(&sb, `
Respond with ONLY a JSON object in the following format:
{
  "topic": "%s",
  "objectives": [
    {
      "verb": "explain",
      "content": "the objective content, without the verb",
      "level": "Understand"%s
    }
  ]
}

Rules:
1. Exactly %d objectives.
2. "level" is one of: Remember, Understand, Apply, Analyze, Evaluate, Create.
3. "verb" is lowercase and taken from the approved list for the chosen level.
4. "content" completes the sentence "The learner will be able to {verb} {content}".`,
		topic, explanationField, numObjectives)

	return sb.String()
}
