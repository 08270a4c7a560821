package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"open-instruct/internal/domain"
	"open-instruct/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func quizRequest() *dto.GenerateQuizRequest {
	return &dto.GenerateQuizRequest{ObjectiveID: "LO-002", Difficulty: "hard", NumOptions: 4}
}

func storedObjective() *domain.LearningObjective {
	return &domain.LearningObjective{
		ID:      "LO-002",
		Verb:    "explain",
		Content: "channel synchronization",
		Level:   domain.LevelUnderstand,
		Topic:   "Go Concurrency",
	}
}

func generatedQuestion() *domain.QuizQuestion {
	return &domain.QuizQuestion{
		ObjectiveID:   "LO-002",
		Stem:          "Which primitive synchronizes goroutines by passing values?",
		CorrectAnswer: "Channels",
		Distractors:   []string{"Mutexes", "Atomics", "WaitGroups"},
		Explanation:   "Channels transfer ownership of values between goroutines.",
		Difficulty:    domain.DifficultyHard,
	}
}

func TestAssessorService_GenerateQuiz(t *testing.T) {
	generator := new(MockQuizGenerator)
	store := new(MockObjectiveStore)
	records := new(MockRecordRepository)
	progress := &fakeProgress{}
	svc := NewAssessorService(generator, store, records, progress)

	store.On("Get", mock.Anything, "LO-002").Return(storedObjective(), nil).Once()
	generator.On("GenerateQuiz", mock.Anything, mock.Anything, domain.DifficultyHard).
		Return(generatedQuestion(), nil).Once()
	records.On("SaveRecord", mock.Anything, mock.MatchedBy(func(r *domain.GenerationRecord) bool {
		return r.Kind == domain.GenerationQuiz && r.ObjectiveID == "LO-002" && r.Success
	})).Return(nil).Once()

	response, err := svc.GenerateQuiz(context.Background(), "req_test", quizRequest())

	require.NoError(t, err)
	assert.Equal(t, "LO-002", response.ObjectiveID)
	assert.True(t, strings.HasPrefix(response.QuizID, "quiz_"))
	assert.False(t, response.GeneratedAt.IsZero())
	assert.Equal(t, "hard", response.Difficulty)
	assert.Equal(t, dto.StageComplete, progress.lastStage())

	generator.AssertExpectations(t)
	store.AssertExpectations(t)
	records.AssertExpectations(t)
}

func TestAssessorService_GenerateQuiz_ObjectiveNotFound(t *testing.T) {
	generator := new(MockQuizGenerator)
	store := new(MockObjectiveStore)
	progress := &fakeProgress{}
	svc := NewAssessorService(generator, store, new(MockRecordRepository), progress)

	store.On("Get", mock.Anything, "LO-002").Return(nil, nil).Once()

	_, err := svc.GenerateQuiz(context.Background(), "req_test", quizRequest())

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeObjectiveNotFound, domainErr.Code)
	assert.Equal(t, dto.StageError, progress.lastStage())
	generator.AssertNotCalled(t, "GenerateQuiz")
}

func TestAssessorService_GenerateQuiz_LookupFails(t *testing.T) {
	store := new(MockObjectiveStore)
	svc := NewAssessorService(new(MockQuizGenerator), store, new(MockRecordRepository), &fakeProgress{})

	store.On("Get", mock.Anything, "LO-002").Return(nil, errors.New("db down")).Once()

	_, err := svc.GenerateQuiz(context.Background(), "req_test", quizRequest())

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeInternal, domainErr.Code)
}

func TestAssessorService_GenerateQuiz_GeneratorFails(t *testing.T) {
	generator := new(MockQuizGenerator)
	store := new(MockObjectiveStore)
	records := new(MockRecordRepository)
	svc := NewAssessorService(generator, store, records, &fakeProgress{})

	store.On("Get", mock.Anything, "LO-002").Return(storedObjective(), nil).Once()
	generator.On("GenerateQuiz", mock.Anything, mock.Anything, domain.DifficultyHard).
		Return(nil, errors.New("unparseable response")).Times(generationAttempts)
	records.On("SaveRecord", mock.Anything, mock.MatchedBy(func(r *domain.GenerationRecord) bool {
		return r.Kind == domain.GenerationQuiz && !r.Success
	})).Return(nil).Once()

	_, err := svc.GenerateQuiz(context.Background(), "req_test", quizRequest())

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeGenerationFailed, domainErr.Code)
	generator.AssertExpectations(t)
	records.AssertExpectations(t)
}

func TestAssessorService_GenerateQuiz_DefaultsDifficulty(t *testing.T) {
	generator := new(MockQuizGenerator)
	store := new(MockObjectiveStore)
	records := new(MockRecordRepository)
	svc := NewAssessorService(generator, store, records, &fakeProgress{})

	req := quizRequest()
	req.Difficulty = ""

	question := generatedQuestion()
	question.Difficulty = domain.DifficultyMedium

	store.On("Get", mock.Anything, "LO-002").Return(storedObjective(), nil).Once()
	generator.On("GenerateQuiz", mock.Anything, mock.Anything, domain.DifficultyMedium).
		Return(question, nil).Once()
	records.On("SaveRecord", mock.Anything, mock.Anything).Return(nil).Once()

	response, err := svc.GenerateQuiz(context.Background(), "req_test", req)

	require.NoError(t, err)
	assert.Equal(t, "medium", response.Difficulty)
	generator.AssertExpectations(t)
}
