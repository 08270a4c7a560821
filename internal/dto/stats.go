package dto

import "time"

// PopularTopic is a topic ranked by generation count.
type PopularTopic struct {
	Topic string `json:"topic"`
	Count int64  `json:"count"`
}

// BloomLevelDistribution is the stored objective count for one Bloom level.
type BloomLevelDistribution struct {
	Level string `json:"level"`
	Count int64  `json:"count"`
}

// UsageStatsResponse summarizes generation volume, cache effectiveness,
// popular topics and the Bloom level distribution of stored objectives.
type UsageStatsResponse struct {
	TotalGenerations       int64                    `json:"total_generations"`
	ObjectivesGenerated    int64                    `json:"objectives_generated"`
	QuizzesGenerated       int64                    `json:"quizzes_generated"`
	CacheHitRate           float64                  `json:"cache_hit_rate"`
	AvgProcessingTimeMs    float64                  `json:"avg_processing_time_ms"`
	LastGenerationAt       *time.Time               `json:"last_generation_at,omitempty"`
	PopularTopics          []PopularTopic           `json:"popular_topics"`
	BloomLevelDistribution []BloomLevelDistribution `json:"bloom_level_distribution"`
}

// PerformanceStat is latency and reliability data for one generation kind.
type PerformanceStat struct {
	Kind                string  `json:"kind"`
	Count               int64   `json:"count"`
	SuccessCount        int64   `json:"success_count"`
	ErrorCount          int64   `json:"error_count"`
	AvgProcessingTimeMs float64 `json:"avg_processing_time_ms"`
	MaxProcessingTimeMs int64   `json:"max_processing_time_ms"`
}

// PerformanceStatsResponse groups performance stats per generation kind.
type PerformanceStatsResponse struct {
	Stats []PerformanceStat `json:"stats"`
}
