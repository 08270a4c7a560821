package service

import (
	"context"
	"encoding/json"
	"time"

	"open-instruct/internal/cache"
	"open-instruct/internal/domain"
	"open-instruct/internal/dto"
	"open-instruct/internal/logger"

	"go.uber.org/zap"
)

// ProgressTracker records the lifecycle stage of generation requests so
// clients can poll progress while a generation is running.
type ProgressTracker interface {
	// SetStage records the stage for a request. Failures are logged and
	// swallowed; progress tracking never fails a generation.
	SetStage(ctx context.Context, requestID string, stage dto.GenerationStage, message string)

	// GetProgress returns the recorded progress, or nil when the request
	// id is unknown or has expired.
	GetProgress(ctx context.Context, requestID string) (*dto.GenerationProgress, error)
}

// progressTracker implements ProgressTracker on top of the cache.
type progressTracker struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewProgressTracker creates a new instance of progressTracker
func NewProgressTracker(cacheAdapter domain.Cache, ttl time.Duration) ProgressTracker {
	if ttl == 0 {
		ttl = 10 * time.Minute
	}
	return &progressTracker{cache: cacheAdapter, ttl: ttl}
}

func progressCacheKey(requestID string) string {
	return cache.GenerateCacheKey("generation", "progress", requestID)
}

// SetStage implements ProgressTracker.SetStage
func (t *progressTracker) SetStage(ctx context.Context, requestID string, stage dto.GenerationStage, message string) {
	if t.cache == nil || requestID == "" {
		return
	}

	progress := dto.GenerationProgress{
		RequestID: requestID,
		Stage:     stage,
		Progress:  dto.ProgressForStage(stage),
		Message:   message,
		UpdatedAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(progress)
	if err != nil {
		logger.Get().Warn("Failed to marshal generation progress",
			zap.Error(err), zap.String("request_id", requestID))
		return
	}

	if err := t.cache.Set(ctx, progressCacheKey(requestID), string(payload), t.ttl); err != nil {
		logger.Get().Warn("Failed to store generation progress",
			zap.Error(err), zap.String("request_id", requestID), zap.String("stage", string(stage)))
	}
}

// GetProgress implements ProgressTracker.GetProgress
func (t *progressTracker) GetProgress(ctx context.Context, requestID string) (*dto.GenerationProgress, error) {
	if t.cache == nil {
		return nil, nil
	}

	payload, err := t.cache.Get(ctx, progressCacheKey(requestID))
	if err != nil {
		if err == domain.ErrCacheMiss {
			return nil, nil
		}
		return nil, err
	}

	var progress dto.GenerationProgress
	if err := json.Unmarshal([]byte(payload), &progress); err != nil {
		return nil, domain.NewInternalError("Failed to decode stored progress", err)
	}
	return &progress, nil
}
