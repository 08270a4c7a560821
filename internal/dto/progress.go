package dto

import "time"

// GenerationStage is one stage of the generation lifecycle.
type GenerationStage string

const (
	StageIdle        GenerationStage = "idle"
	StageConfiguring GenerationStage = "configuring"
	StageGenerating  GenerationStage = "generating"
	StageValidating  GenerationStage = "validating"
	StageComplete    GenerationStage = "complete"
	StageError       GenerationStage = "error"
)

// stageProgress maps each stage to its percentage. The mapping is
// monotonic across the happy path; complete always reports 100.
var stageProgress = map[GenerationStage]int{
	StageIdle:        0,
	StageConfiguring: 10,
	StageGenerating:  40,
	StageValidating:  80,
	StageComplete:    100,
	StageError:       100,
}

// ProgressForStage returns the percentage for a stage.
func ProgressForStage(stage GenerationStage) int {
	return stageProgress[stage]
}

// GenerationProgress reports the state of a generation request.
// @Description Progress of a generation request
type GenerationProgress struct {
	RequestID string          `json:"request_id"`
	Stage     GenerationStage `json:"stage"`
	Progress  int             `json:"progress"`
	Message   string          `json:"message"`
	UpdatedAt time.Time       `json:"updated_at"`
}
