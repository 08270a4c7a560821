package service

import (
	"context"
	"time"

	"open-instruct/internal/domain"
	"open-instruct/internal/dto"
	"open-instruct/internal/logger"

	"go.uber.org/zap"
)

// ServiceVersion is reported by the health and root endpoints.
const ServiceVersion = "1.0.0"

// HealthService reports service liveness and dependency health.
type HealthService interface {
	Check(ctx context.Context) *dto.HealthResponse
}

// healthService implements HealthService
type healthService struct {
	checker domain.LLMHealthChecker
	cache   domain.Cache
	started time.Time
}

// NewHealthService creates a new instance of healthService
func NewHealthService(checker domain.LLMHealthChecker, cacheAdapter domain.Cache) HealthService {
	return &healthService{
		checker: checker,
		cache:   cacheAdapter,
		started: time.Now(),
	}
}

// Check implements HealthService.Check. The service is healthy when the
// model server answers, degraded when only the cache does, and in error
// when both are down.
func (s *healthService) Check(ctx context.Context) *dto.HealthResponse {
	response := &dto.HealthResponse{
		Status:        dto.HealthStatusHealthy,
		Version:       ServiceVersion,
		UptimeSeconds: time.Since(s.started).Seconds(),
	}

	if err := s.checker.CheckConnection(ctx); err != nil {
		logger.Get().Warn("Ollama health check failed", zap.Error(err))
		response.Status = dto.HealthStatusDegraded
	} else {
		response.OllamaConnected = true
		response.ModelVersion = s.checker.ModelVersion()
	}

	if s.cache != nil {
		if err := s.cache.Ping(ctx); err != nil {
			logger.Get().Warn("Cache health check failed", zap.Error(err))
			if !response.OllamaConnected {
				response.Status = dto.HealthStatusError
			} else {
				response.Status = dto.HealthStatusDegraded
			}
		}
	}

	return response
}
