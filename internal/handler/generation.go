package handler

import (
	"open-instruct/internal/domain"
	"open-instruct/internal/dto"
	"open-instruct/internal/logger"
	"open-instruct/internal/middleware"
	"open-instruct/internal/service"
	"open-instruct/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GenerationHandler handles generation-related HTTP requests
type GenerationHandler struct {
	architect service.ArchitectService
	assessor  service.AssessorService
	progress  service.ProgressTracker
	validator *validation.Validator
}

// NewGenerationHandler creates a new GenerationHandler instance
func NewGenerationHandler(
	architect service.ArchitectService,
	assessor service.AssessorService,
	progress service.ProgressTracker,
) *GenerationHandler {
	return &GenerationHandler{
		architect: architect,
		assessor:  assessor,
		progress:  progress,
		validator: validation.NewValidator(),
	}
}

// GenerateObjectives godoc
// @Summary Generate learning objectives
// @Description Generates Bloom's Taxonomy learning objectives for a topic and audience
// @Tags generation
// @Accept json
// @Produce json
// @Param request body dto.GenerateObjectivesRequest true "Generation request"
// @Success 200 {object} dto.SuccessResponse{data=dto.CourseStructureResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Failure 504 {object} dto.ErrorResponse
// @Router /api/v1/generate/objectives [post]
func (h *GenerationHandler) GenerateObjectives(c *fiber.Ctx) error {
	var req dto.GenerateObjectivesRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Warn("Failed to parse objectives request", zap.Error(err))
		return domain.NewValidationError("request body must be valid JSON")
	}

	if errs := h.validator.ValidateGenerateObjectivesRequest(&req); len(errs) > 0 {
		return errs
	}

	requestID := middleware.RequestID(c)
	response, err := h.architect.GenerateObjectives(c.UserContext(), requestID, &req)
	if err != nil {
		return err
	}

	return c.JSON(dto.NewSuccessResponse(response, middleware.ResponseMeta(c)))
}

// GenerateQuiz godoc
// @Summary Generate a quiz question
// @Description Generates a multiple-choice question for a learning objective
// @Tags generation
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuizRequest true "Quiz request"
// @Success 200 {object} dto.SuccessResponse{data=dto.QuizQuestionResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Failure 504 {object} dto.ErrorResponse
// @Router /api/v1/generate/quiz [post]
func (h *GenerationHandler) GenerateQuiz(c *fiber.Ctx) error {
	var req dto.GenerateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Warn("Failed to parse quiz request", zap.Error(err))
		return domain.NewValidationError("request body must be valid JSON")
	}

	if errs := h.validator.ValidateGenerateQuizRequest(&req); len(errs) > 0 {
		return errs
	}

	requestID := middleware.RequestID(c)
	response, err := h.assessor.GenerateQuiz(c.UserContext(), requestID, &req)
	if err != nil {
		return err
	}

	return c.JSON(dto.NewSuccessResponse(response, middleware.ResponseMeta(c)))
}

// ListObjectives godoc
// @Summary List stored learning objectives
// @Description Returns all learning objectives available for quiz generation
// @Tags generation
// @Produce json
// @Success 200 {object} dto.SuccessResponse{data=dto.ObjectiveListResponse}
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/objectives [get]
func (h *GenerationHandler) ListObjectives(c *fiber.Ctx) error {
	response, err := h.architect.ListObjectives(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(dto.NewSuccessResponse(response, middleware.ResponseMeta(c)))
}

// GetProgress godoc
// @Summary Get generation progress
// @Description Returns the progress of a generation request by its request id
// @Tags generation
// @Produce json
// @Param requestId path string true "Request ID"
// @Success 200 {object} dto.SuccessResponse{data=dto.GenerationProgress}
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/generate/progress/{requestId} [get]
func (h *GenerationHandler) GetProgress(c *fiber.Ctx) error {
	requestID := c.Params("requestId")

	progress, err := h.progress.GetProgress(c.UserContext(), requestID)
	if err != nil {
		return err
	}
	if progress == nil {
		return domain.NewError(domain.CodeNotFound,
			"No progress recorded for this request id", nil).
			WithContext("request_id", requestID)
	}

	return c.JSON(dto.NewSuccessResponse(progress, middleware.ResponseMeta(c)))
}
