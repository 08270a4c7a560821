package service

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"open-instruct/internal/config"
	"open-instruct/internal/domain"
	"open-instruct/internal/dto"
	"open-instruct/internal/logger"

	"github.com/stretchr/testify/mock"
)

// TestMain initializes the logger for all tests in this package.
func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Level: "error", Env: "development"}); err != nil {
		panic("Failed to initialize logger for tests: " + err.Error())
	}

	exitVal := m.Run()

	_ = logger.Sync()
	os.Exit(exitVal)
}

// --- Mocks ---

type MockObjectiveGenerator struct {
	mock.Mock
}

func (m *MockObjectiveGenerator) GenerateObjectives(ctx context.Context, topic, targetAudience string, numObjectives int, includeExplanations bool) (*domain.CourseStructure, error) {
	args := m.Called(ctx, topic, targetAudience, numObjectives, includeExplanations)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CourseStructure), args.Error(1)
}

type MockQuizGenerator struct {
	mock.Mock
}

func (m *MockQuizGenerator) GenerateQuiz(ctx context.Context, objective *domain.LearningObjective, difficulty domain.Difficulty) (*domain.QuizQuestion, error) {
	args := m.Called(ctx, objective, difficulty)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuizQuestion), args.Error(1)
}

type MockObjectiveStore struct {
	mock.Mock
}

func (m *MockObjectiveStore) Put(ctx context.Context, topic string, objectives []*domain.LearningObjective) error {
	args := m.Called(ctx, topic, objectives)
	return args.Error(0)
}

func (m *MockObjectiveStore) Get(ctx context.Context, objectiveID string) (*domain.LearningObjective, error) {
	args := m.Called(ctx, objectiveID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LearningObjective), args.Error(1)
}

func (m *MockObjectiveStore) List(ctx context.Context) ([]*domain.LearningObjective, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.LearningObjective), args.Error(1)
}

type MockObjectiveRepository struct {
	mock.Mock
}

func (m *MockObjectiveRepository) SaveObjectives(ctx context.Context, topic string, objectives []*domain.LearningObjective) error {
	args := m.Called(ctx, topic, objectives)
	return args.Error(0)
}

func (m *MockObjectiveRepository) GetObjectiveByID(ctx context.Context, id string) (*domain.LearningObjective, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LearningObjective), args.Error(1)
}

func (m *MockObjectiveRepository) ListObjectives(ctx context.Context) ([]*domain.LearningObjective, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.LearningObjective), args.Error(1)
}

type MockRecordRepository struct {
	mock.Mock
}

func (m *MockRecordRepository) SaveRecord(ctx context.Context, record *domain.GenerationRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockRecordRepository) GetUsageStats(ctx context.Context) (*domain.UsageStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UsageStats), args.Error(1)
}

func (m *MockRecordRepository) GetPerformanceStats(ctx context.Context) ([]*domain.PerformanceStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PerformanceStats), args.Error(1)
}

func (m *MockRecordRepository) GetPopularTopics(ctx context.Context, limit int) ([]*domain.PopularTopic, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PopularTopic), args.Error(1)
}

func (m *MockRecordRepository) GetBloomLevelDistribution(ctx context.Context) ([]*domain.BloomLevelDistribution, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.BloomLevelDistribution), args.Error(1)
}

type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) CheckConnection(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockHealthChecker) ModelVersion() string {
	args := m.Called()
	return args.String(0)
}

// fakeCache is an in-memory domain.Cache for service tests.
type fakeCache struct {
	mu      sync.Mutex
	data    map[string]string
	pingErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string]string)}
}

func (c *fakeCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	val, ok := c.data[key]
	if !ok {
		return "", domain.ErrCacheMiss
	}
	return val, nil
}

func (c *fakeCache) Set(ctx context.Context, key, value string, expiration time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *fakeCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *fakeCache) Ping(ctx context.Context) error {
	return c.pingErr
}

// fakeProgress records stages in order so tests can assert lifecycle
// transitions without Redis.
type fakeProgress struct {
	mu     sync.Mutex
	stages []dto.GenerationStage
}

func (p *fakeProgress) SetStage(ctx context.Context, requestID string, stage dto.GenerationStage, message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stages = append(p.stages, stage)
}

func (p *fakeProgress) GetProgress(ctx context.Context, requestID string) (*dto.GenerationProgress, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.stages) == 0 {
		return nil, nil
	}
	stage := p.stages[len(p.stages)-1]
	return &dto.GenerationProgress{RequestID: requestID, Stage: stage, Progress: dto.ProgressForStage(stage)}, nil
}

func (p *fakeProgress) lastStage() dto.GenerationStage {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.stages) == 0 {
		return dto.StageIdle
	}
	return p.stages[len(p.stages)-1]
}
