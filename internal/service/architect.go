package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"open-instruct/internal/cache"
	"open-instruct/internal/domain"
	"open-instruct/internal/dto"
	"open-instruct/internal/logger"
	"open-instruct/internal/util"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ArchitectService generates Bloom's Taxonomy learning objectives.
type ArchitectService interface {
	GenerateObjectives(ctx context.Context, requestID string, req *dto.GenerateObjectivesRequest) (*dto.CourseStructureResponse, error)
	ListObjectives(ctx context.Context) (*dto.ObjectiveListResponse, error)
}

// architectService implements ArchitectService
type architectService struct {
	generator    domain.ObjectiveGenerator
	store        ObjectiveStore
	records      domain.GenerationRecordRepository
	progress     ProgressTracker
	cache        domain.Cache
	cacheTTL     time.Duration
	modelVersion string
	breaker      *gobreaker.CircuitBreaker
	sf           singleflight.Group
}

// NewArchitectService creates a new instance of architectService
func NewArchitectService(
	generator domain.ObjectiveGenerator,
	store ObjectiveStore,
	records domain.GenerationRecordRepository,
	progress ProgressTracker,
	cacheAdapter domain.Cache,
	cacheTTL time.Duration,
	modelVersion string,
) ArchitectService {
	return &architectService{
		generator:    generator,
		store:        store,
		records:      records,
		progress:     progress,
		cache:        cacheAdapter,
		cacheTTL:     cacheTTL,
		modelVersion: modelVersion,
		breaker:      newGenerationBreaker("architect"),
	}
}

// objectivesCacheKey derives the cache key from every request field
// that influences the generated structure.
func objectivesCacheKey(req *dto.GenerateObjectivesRequest) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%d|%t",
		req.Topic, req.TargetAudience, req.NumObjectives, req.Options.IncludeExplanations)))
	return cache.GenerateCacheKey("architect", "course", hex.EncodeToString(sum[:])[:16])
}

// GenerateObjectives implements ArchitectService.GenerateObjectives
func (s *architectService) GenerateObjectives(ctx context.Context, requestID string, req *dto.GenerateObjectivesRequest) (*dto.CourseStructureResponse, error) {
	start := time.Now()
	s.progress.SetStage(ctx, requestID, dto.StageConfiguring, "Preparing generation")

	cacheKey := objectivesCacheKey(req)

	if !req.Options.ForceCacheBypass {
		if response := s.lookupCachedCourse(ctx, cacheKey); response != nil {
			logger.Get().Info("Objectives served from cache",
				zap.String("request_id", requestID),
				zap.String("topic", req.Topic))
			s.recordGeneration(ctx, domain.GenerationObjectives, req.Topic, "", "", domain.CacheHit, true, start)
			s.progress.SetStage(ctx, requestID, dto.StageComplete, "Served from cache")
			return response, nil
		}
	}

	s.progress.SetStage(ctx, requestID, dto.StageGenerating, "Generating learning objectives")

	// Collapse concurrent identical requests into one LLM call.
	result, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		return s.generateCourse(ctx, req, cacheKey)
	})
	if err != nil {
		s.recordGeneration(ctx, domain.GenerationObjectives, req.Topic, "", "", domain.CacheMiss, false, start)
		s.progress.SetStage(ctx, requestID, dto.StageError, err.Error())
		return nil, translateGenerationError(err, int(objectivesTimeout.Seconds()))
	}

	response := result.(*dto.CourseStructureResponse)
	s.recordGeneration(ctx, domain.GenerationObjectives, req.Topic, "", "", domain.CacheMiss, true, start)
	s.progress.SetStage(ctx, requestID, dto.StageComplete, "Objectives generated")

	logger.Get().Info("Successfully generated objectives",
		zap.String("request_id", requestID),
		zap.String("topic", req.Topic),
		zap.Int("objective_count", len(response.Objectives)))
	return response, nil
}

// lookupCachedCourse returns the cached course structure with the cache
// status flipped to hit, or nil on any miss or cache failure.
func (s *architectService) lookupCachedCourse(ctx context.Context, cacheKey string) *dto.CourseStructureResponse {
	payload, err := s.cache.Get(ctx, cacheKey)
	if err != nil {
		if err != domain.ErrCacheMiss {
			logger.Get().Error("Course cache read failed", zap.Error(err), zap.String("key", cacheKey))
		}
		return nil
	}

	var response dto.CourseStructureResponse
	if err := json.Unmarshal([]byte(payload), &response); err != nil {
		logger.Get().Warn("Failed to unmarshal cached course structure",
			zap.Error(err), zap.String("key", cacheKey))
		return nil
	}

	response.CacheStatus = string(domain.CacheHit)
	return &response
}

// generateCourse runs one resilient generation, stores the objectives
// and caches the response.
func (s *architectService) generateCourse(ctx context.Context, req *dto.GenerateObjectivesRequest, cacheKey string) (*dto.CourseStructureResponse, error) {
	genCtx, cancel := context.WithTimeout(ctx, objectivesTimeout)
	defer cancel()

	structure, err := generateWithResilience(genCtx, s.breaker, func(ctx context.Context) (*domain.CourseStructure, error) {
		return s.generator.GenerateObjectives(ctx, req.Topic, req.TargetAudience, req.NumObjectives, req.Options.IncludeExplanations)
	})
	if err != nil {
		return nil, err
	}

	if err := s.store.Put(ctx, req.Topic, structure.Objectives); err != nil {
		return nil, domain.NewInternalError("Failed to store generated objectives", err)
	}

	response := toCourseStructureResponse(structure, s.modelVersion)

	if payload, err := json.Marshal(response); err == nil {
		if err := s.cache.Set(ctx, cacheKey, string(payload), s.cacheTTL); err != nil {
			logger.Get().Warn("Failed to cache course structure", zap.Error(err), zap.String("key", cacheKey))
		}
	}

	return response, nil
}

// ListObjectives implements ArchitectService.ListObjectives
func (s *architectService) ListObjectives(ctx context.Context) (*dto.ObjectiveListResponse, error) {
	objectives, err := s.store.List(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list objectives", err)
	}

	response := &dto.ObjectiveListResponse{
		Objectives: make([]dto.LearningObjectiveResponse, 0, len(objectives)),
		Count:      len(objectives),
	}
	for _, obj := range objectives {
		response.Objectives = append(response.Objectives, toObjectiveResponse(obj))
	}
	return response, nil
}

func toObjectiveResponse(obj *domain.LearningObjective) dto.LearningObjectiveResponse {
	return dto.LearningObjectiveResponse{
		ID:          obj.ID,
		Verb:        obj.Verb,
		Content:     obj.Content,
		Level:       string(obj.Level),
		Explanation: obj.Explanation,
	}
}

func toCourseStructureResponse(structure *domain.CourseStructure, modelVersion string) *dto.CourseStructureResponse {
	response := &dto.CourseStructureResponse{
		Topic:        structure.Topic,
		Objectives:   make([]dto.LearningObjectiveResponse, 0, len(structure.Objectives)),
		GeneratedAt:  time.Now().UTC(),
		ModelVersion: modelVersion,
		CacheStatus:  string(domain.CacheMiss),
	}
	for _, obj := range structure.Objectives {
		response.Objectives = append(response.Objectives, toObjectiveResponse(obj))
	}
	return response
}

// recordGeneration writes a generation record for analytics. Failures
// are logged and swallowed; analytics never fail a generation.
func (s *architectService) recordGeneration(ctx context.Context, kind domain.GenerationKind, topic, objectiveID, difficulty string, cacheStatus domain.CacheStatus, success bool, start time.Time) {
	if s.records == nil {
		return
	}

	record := &domain.GenerationRecord{
		ID:               util.NewULID(),
		Kind:             kind,
		Topic:            topic,
		ObjectiveID:      objectiveID,
		Difficulty:       difficulty,
		CacheStatus:      cacheStatus,
		Success:          success,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.records.SaveRecord(ctx, record); err != nil {
		logger.Get().Warn("Failed to save generation record", zap.Error(err), zap.String("kind", string(kind)))
	}
}
