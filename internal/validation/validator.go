package validation

import (
	"strings"

	"open-instruct/internal/domain"
	"open-instruct/internal/dto"
)

// Objectives request bounds.
const (
	MinObjectives     = 1
	MaxObjectives     = 12
	DefaultObjectives = 6

	maxTopicLength    = 200
	maxAudienceLength = 200

	// Quiz questions always carry four options: the answer plus three
	// distractors.
	RequiredNumOptions = 4
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateGenerateObjectivesRequest validates the objectives generation
// request and applies the default objective count in place.
func (v *Validator) ValidateGenerateObjectivesRequest(req *dto.GenerateObjectivesRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	req.Topic = strings.TrimSpace(req.Topic)
	if req.Topic == "" {
		errors = append(errors, domain.NewMissingFieldError("topic"))
	} else if len(req.Topic) > maxTopicLength {
		errors = append(errors, domain.NewOutOfRangeError("topic", len(req.Topic), 1, maxTopicLength))
	}

	req.TargetAudience = strings.TrimSpace(req.TargetAudience)
	if req.TargetAudience == "" {
		errors = append(errors, domain.NewMissingFieldError("target_audience"))
	} else if len(req.TargetAudience) > maxAudienceLength {
		errors = append(errors, domain.NewOutOfRangeError("target_audience", len(req.TargetAudience), 1, maxAudienceLength))
	}

	if req.NumObjectives == 0 {
		req.NumObjectives = DefaultObjectives
	}
	if req.NumObjectives < MinObjectives || req.NumObjectives > MaxObjectives {
		errors = append(errors, domain.NewOutOfRangeError("num_objectives", req.NumObjectives, MinObjectives, MaxObjectives))
	}

	return errors
}

// ValidateGenerateQuizRequest validates the quiz generation request and
// applies the default difficulty and option count in place.
func (v *Validator) ValidateGenerateQuizRequest(req *dto.GenerateQuizRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	req.ObjectiveID = strings.TrimSpace(req.ObjectiveID)
	if req.ObjectiveID == "" {
		errors = append(errors, domain.NewMissingFieldError("objective_id"))
	} else if !domain.IsValidObjectiveID(req.ObjectiveID) {
		errors = append(errors, domain.NewInvalidFormatError("objective_id", req.ObjectiveID))
	}

	if req.Difficulty == "" {
		req.Difficulty = string(domain.DifficultyMedium)
	} else if !isValidDifficulty(req.Difficulty) {
		errors = append(errors, domain.NewInvalidFormatError("difficulty", req.Difficulty))
	}

	if req.NumOptions == 0 {
		req.NumOptions = RequiredNumOptions
	}
	if req.NumOptions != RequiredNumOptions {
		errors = append(errors, domain.NewOutOfRangeError("num_options", req.NumOptions, RequiredNumOptions, RequiredNumOptions))
	}

	return errors
}

func isValidDifficulty(s string) bool {
	switch domain.Difficulty(strings.ToLower(s)) {
	case domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard:
		return true
	}
	return false
}
