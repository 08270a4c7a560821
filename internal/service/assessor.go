package service

import (
	"context"
	"time"

	"open-instruct/internal/domain"
	"open-instruct/internal/dto"
	"open-instruct/internal/logger"
	"open-instruct/internal/util"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// AssessorService generates multiple-choice quiz questions for
// previously generated learning objectives.
type AssessorService interface {
	GenerateQuiz(ctx context.Context, requestID string, req *dto.GenerateQuizRequest) (*dto.QuizQuestionResponse, error)
}

// assessorService implements AssessorService
type assessorService struct {
	generator domain.QuizGenerator
	store     ObjectiveStore
	records   domain.GenerationRecordRepository
	progress  ProgressTracker
	breaker   *gobreaker.CircuitBreaker
}

// NewAssessorService creates a new instance of assessorService
func NewAssessorService(
	generator domain.QuizGenerator,
	store ObjectiveStore,
	records domain.GenerationRecordRepository,
	progress ProgressTracker,
) AssessorService {
	return &assessorService{
		generator: generator,
		store:     store,
		records:   records,
		progress:  progress,
		breaker:   newGenerationBreaker("assessor"),
	}
}

// GenerateQuiz implements AssessorService.GenerateQuiz
func (s *assessorService) GenerateQuiz(ctx context.Context, requestID string, req *dto.GenerateQuizRequest) (*dto.QuizQuestionResponse, error) {
	start := time.Now()
	s.progress.SetStage(ctx, requestID, dto.StageConfiguring, "Looking up objective")

	objective, err := s.store.Get(ctx, req.ObjectiveID)
	if err != nil {
		s.progress.SetStage(ctx, requestID, dto.StageError, "Objective lookup failed")
		return nil, domain.NewInternalError("Failed to look up objective", err)
	}
	if objective == nil {
		s.progress.SetStage(ctx, requestID, dto.StageError, "Objective not found")
		return nil, domain.NewObjectiveNotFoundError(req.ObjectiveID)
	}

	difficulty := domain.ParseDifficulty(req.Difficulty)
	s.progress.SetStage(ctx, requestID, dto.StageGenerating, "Generating quiz question")

	genCtx, cancel := context.WithTimeout(ctx, quizTimeout)
	defer cancel()

	question, err := generateWithResilience(genCtx, s.breaker, func(ctx context.Context) (*domain.QuizQuestion, error) {
		return s.generator.GenerateQuiz(ctx, objective, difficulty)
	})
	if err != nil {
		s.recordQuiz(ctx, req.ObjectiveID, difficulty, false, start)
		s.progress.SetStage(ctx, requestID, dto.StageError, err.Error())
		return nil, translateGenerationError(err, int(quizTimeout.Seconds()))
	}

	question.QuizID = util.NewQuizID()
	question.ObjectiveID = objective.ID
	question.GeneratedAt = time.Now().UTC()

	s.recordQuiz(ctx, req.ObjectiveID, difficulty, true, start)
	s.progress.SetStage(ctx, requestID, dto.StageComplete, "Quiz generated")

	logger.Get().Info("Successfully generated quiz",
		zap.String("request_id", requestID),
		zap.String("objective_id", objective.ID),
		zap.String("quiz_id", question.QuizID),
		zap.String("difficulty", string(difficulty)))

	return toQuizQuestionResponse(question), nil
}

func toQuizQuestionResponse(question *domain.QuizQuestion) *dto.QuizQuestionResponse {
	return &dto.QuizQuestionResponse{
		QuizID:        question.QuizID,
		ObjectiveID:   question.ObjectiveID,
		Stem:          question.Stem,
		CorrectAnswer: question.CorrectAnswer,
		Distractors:   question.Distractors,
		Explanation:   question.Explanation,
		Difficulty:    string(question.Difficulty),
		GeneratedAt:   question.GeneratedAt,
	}
}

func (s *assessorService) recordQuiz(ctx context.Context, objectiveID string, difficulty domain.Difficulty, success bool, start time.Time) {
	if s.records == nil {
		return
	}

	record := &domain.GenerationRecord{
		ID:               util.NewULID(),
		Kind:             domain.GenerationQuiz,
		ObjectiveID:      objectiveID,
		Difficulty:       string(difficulty),
		Success:          success,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.records.SaveRecord(ctx, record); err != nil {
		logger.Get().Warn("Failed to save generation record", zap.Error(err), zap.String("kind", string(domain.GenerationQuiz)))
	}
}
