package dto

import "time"

// GenerateObjectivesOptions tunes objectives generation.
type GenerateObjectivesOptions struct {
	ForceCacheBypass    bool `json:"force_cache_bypass"`
	IncludeExplanations bool `json:"include_explanations"`
}

// GenerateObjectivesRequest is the request body for generating learning objectives.
// @Description Request body for generating learning objectives
type GenerateObjectivesRequest struct {
	Topic          string                    `json:"topic"`
	TargetAudience string                    `json:"target_audience"`
	NumObjectives  int                       `json:"num_objectives"`
	Options        GenerateObjectivesOptions `json:"options"`
}

// GenerateQuizRequest is the request body for generating a quiz question.
// @Description Request body for generating a quiz question
type GenerateQuizRequest struct {
	ObjectiveID string `json:"objective_id"`
	Difficulty  string `json:"difficulty"`
	NumOptions  int    `json:"num_options"`
}

// LearningObjectiveResponse represents a single learning objective in the API response
type LearningObjectiveResponse struct {
	ID          string `json:"id"`
	Verb        string `json:"verb"`
	Content     string `json:"content"`
	Level       string `json:"level"`
	Explanation string `json:"explanation,omitempty"`
}

// CourseStructureResponse represents a generated course structure in the API response
type CourseStructureResponse struct {
	Topic        string                      `json:"topic"`
	Objectives   []LearningObjectiveResponse `json:"objectives"`
	GeneratedAt  time.Time                   `json:"generated_at"`
	ModelVersion string                      `json:"model_version"`
	CacheStatus  string                      `json:"cache_status"`
}

// QuizQuestionResponse represents a generated quiz question in the API response
type QuizQuestionResponse struct {
	QuizID        string    `json:"quiz_id"`
	ObjectiveID   string    `json:"objective_id"`
	Stem          string    `json:"stem"`
	CorrectAnswer string    `json:"correct_answer"`
	Distractors   []string  `json:"distractors"`
	Explanation   string    `json:"explanation"`
	Difficulty    string    `json:"difficulty"`
	GeneratedAt   time.Time `json:"generated_at"`
}

// ObjectiveListResponse lists the stored learning objectives.
type ObjectiveListResponse struct {
	Objectives []LearningObjectiveResponse `json:"objectives"`
	Count      int                         `json:"count"`
}
