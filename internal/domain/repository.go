package domain

import (
	"context"
	"time"
)

// ObjectiveRepository defines persistence for learning objectives.
// Objective ids are positional (LO-001..LO-NNN), so saving a new course
// upserts over the previous course's objectives with the same ids.
type ObjectiveRepository interface {
	SaveObjectives(ctx context.Context, topic string, objectives []*LearningObjective) error
	GetObjectiveByID(ctx context.Context, id string) (*LearningObjective, error)
	ListObjectives(ctx context.Context) ([]*LearningObjective, error)
}

// UsageStats summarizes generation volume and cache effectiveness.
type UsageStats struct {
	TotalGenerations    int64
	ObjectivesGenerated int64
	QuizzesGenerated    int64
	CacheHitRate        float64
	AvgProcessingTimeMs float64
	LastGenerationAt    *time.Time
}

// PerformanceStats summarizes latency and reliability per generation kind.
type PerformanceStats struct {
	Kind                GenerationKind
	Count               int64
	SuccessCount        int64
	ErrorCount          int64
	AvgProcessingTimeMs float64
	MaxProcessingTimeMs int64
}

// PopularTopic is a topic ranked by generation count.
type PopularTopic struct {
	Topic string
	Count int64
}

// BloomLevelDistribution is the objective count for one Bloom level.
type BloomLevelDistribution struct {
	Level BloomLevel
	Count int64
}

// GenerationRecordRepository persists generation records and serves the
// aggregate queries behind the stats endpoints.
type GenerationRecordRepository interface {
	SaveRecord(ctx context.Context, record *GenerationRecord) error
	GetUsageStats(ctx context.Context) (*UsageStats, error)
	GetPerformanceStats(ctx context.Context) ([]*PerformanceStats, error)
	GetPopularTopics(ctx context.Context, limit int) ([]*PopularTopic, error)
	GetBloomLevelDistribution(ctx context.Context) ([]*BloomLevelDistribution, error)
}
