package service

import (
	"context"

	"open-instruct/internal/domain"
	"open-instruct/internal/logger"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

// objectiveStoreCacheSize bounds the in-memory hot cache. Objective ids
// are positional (LO-001..LO-012), so the working set is tiny; the
// headroom covers rapid course switching.
const objectiveStoreCacheSize = 256

// ObjectiveStore serves learning objectives for quiz generation,
// fronting the repository with an in-memory LRU cache.
type ObjectiveStore interface {
	Put(ctx context.Context, topic string, objectives []*domain.LearningObjective) error
	Get(ctx context.Context, objectiveID string) (*domain.LearningObjective, error)
	List(ctx context.Context) ([]*domain.LearningObjective, error)
}

// objectiveStore implements ObjectiveStore
type objectiveStore struct {
	repo domain.ObjectiveRepository
	hot  *lru.Cache[string, *domain.LearningObjective]
}

// NewObjectiveStore creates a new instance of objectiveStore
func NewObjectiveStore(repo domain.ObjectiveRepository) (ObjectiveStore, error) {
	hot, err := lru.New[string, *domain.LearningObjective](objectiveStoreCacheSize)
	if err != nil {
		return nil, err
	}
	return &objectiveStore{repo: repo, hot: hot}, nil
}

// Put persists the objectives and refreshes the hot cache.
func (s *objectiveStore) Put(ctx context.Context, topic string, objectives []*domain.LearningObjective) error {
	if err := s.repo.SaveObjectives(ctx, topic, objectives); err != nil {
		return err
	}
	for _, obj := range objectives {
		s.hot.Add(obj.ID, obj)
	}
	return nil
}

// Get returns the objective or nil when it was never generated.
func (s *objectiveStore) Get(ctx context.Context, objectiveID string) (*domain.LearningObjective, error) {
	if obj, ok := s.hot.Get(objectiveID); ok {
		return obj, nil
	}

	obj, err := s.repo.GetObjectiveByID(ctx, objectiveID)
	if err != nil {
		return nil, err
	}
	if obj != nil {
		s.hot.Add(obj.ID, obj)
	} else {
		logger.Get().Debug("Objective not found in store", zap.String("objective_id", objectiveID))
	}
	return obj, nil
}

// List returns all stored objectives.
func (s *objectiveStore) List(ctx context.Context) ([]*domain.LearningObjective, error) {
	return s.repo.ListObjectives(ctx)
}
