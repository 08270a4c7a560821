package domain

import "time"

// GenerationKind discriminates recorded generations.
type GenerationKind string

const (
	GenerationObjectives GenerationKind = "objectives"
	GenerationQuiz       GenerationKind = "quiz"
)

// CacheStatus marks whether a generation was served from cache.
type CacheStatus string

const (
	CacheHit  CacheStatus = "hit"
	CacheMiss CacheStatus = "miss"
)

// GenerationRecord is one recorded generation request, the raw material
// for usage and performance analytics.
type GenerationRecord struct {
	ID               string
	Kind             GenerationKind
	Topic            string
	ObjectiveID      string
	Difficulty       string
	CacheStatus      CacheStatus
	Success          bool
	ProcessingTimeMs int64
	CreatedAt        time.Time
}

// Validate validates the generation record
func (r *GenerationRecord) Validate() error {
	if r.ID == "" {
		return NewValidationError("record id is required")
	}
	if r.Kind != GenerationObjectives && r.Kind != GenerationQuiz {
		return NewValidationError("kind must be objectives or quiz")
	}
	return nil
}
