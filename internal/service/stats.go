package service

import (
	"context"

	"open-instruct/internal/domain"
	"open-instruct/internal/dto"
)

// popularTopicsLimit caps the ranked topic list in usage stats.
const popularTopicsLimit = 10

// StatsService serves generation analytics.
type StatsService interface {
	GetUsageStats(ctx context.Context) (*dto.UsageStatsResponse, error)
	GetPerformanceStats(ctx context.Context) (*dto.PerformanceStatsResponse, error)
}

// statsService implements StatsService
type statsService struct {
	records domain.GenerationRecordRepository
}

// NewStatsService creates a new instance of statsService
func NewStatsService(records domain.GenerationRecordRepository) StatsService {
	return &statsService{records: records}
}

// GetUsageStats implements StatsService.GetUsageStats
func (s *statsService) GetUsageStats(ctx context.Context) (*dto.UsageStatsResponse, error) {
	usage, err := s.records.GetUsageStats(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to aggregate usage stats", err)
	}

	topics, err := s.records.GetPopularTopics(ctx, popularTopicsLimit)
	if err != nil {
		return nil, domain.NewInternalError("Failed to rank popular topics", err)
	}

	distribution, err := s.records.GetBloomLevelDistribution(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to aggregate Bloom level distribution", err)
	}

	response := &dto.UsageStatsResponse{
		TotalGenerations:       usage.TotalGenerations,
		ObjectivesGenerated:    usage.ObjectivesGenerated,
		QuizzesGenerated:       usage.QuizzesGenerated,
		CacheHitRate:           usage.CacheHitRate,
		AvgProcessingTimeMs:    usage.AvgProcessingTimeMs,
		LastGenerationAt:       usage.LastGenerationAt,
		PopularTopics:          make([]dto.PopularTopic, 0, len(topics)),
		BloomLevelDistribution: make([]dto.BloomLevelDistribution, 0, len(distribution)),
	}
	for _, topic := range topics {
		response.PopularTopics = append(response.PopularTopics, dto.PopularTopic{
			Topic: topic.Topic,
			Count: topic.Count,
		})
	}
	for _, level := range distribution {
		response.BloomLevelDistribution = append(response.BloomLevelDistribution, dto.BloomLevelDistribution{
			Level: string(level.Level),
			Count: level.Count,
		})
	}
	return response, nil
}

// GetPerformanceStats implements StatsService.GetPerformanceStats
func (s *statsService) GetPerformanceStats(ctx context.Context) (*dto.PerformanceStatsResponse, error) {
	stats, err := s.records.GetPerformanceStats(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to aggregate performance stats", err)
	}

	response := &dto.PerformanceStatsResponse{Stats: make([]dto.PerformanceStat, 0, len(stats))}
	for _, stat := range stats {
		response.Stats = append(response.Stats, dto.PerformanceStat{
			Kind:                string(stat.Kind),
			Count:               stat.Count,
			SuccessCount:        stat.SuccessCount,
			ErrorCount:          stat.ErrorCount,
			AvgProcessingTimeMs: stat.AvgProcessingTimeMs,
			MaxProcessingTimeMs: stat.MaxProcessingTimeMs,
		})
	}
	return response, nil
}
