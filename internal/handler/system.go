package handler

import (
	"net/http"

	"open-instruct/internal/dto"
	"open-instruct/internal/middleware"
	"open-instruct/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SystemHandler handles service info and health HTTP requests
type SystemHandler struct {
	health service.HealthService
}

// NewSystemHandler creates a new SystemHandler instance
func NewSystemHandler(health service.HealthService) *SystemHandler {
	return &SystemHandler{health: health}
}

// Root godoc
// @Summary Service info
// @Description Returns service name, version and entry points
// @Tags system
// @Produce json
// @Success 200 {object} dto.ServiceInfoResponse
// @Router / [get]
func (h *SystemHandler) Root(c *fiber.Ctx) error {
	return c.JSON(dto.ServiceInfoResponse{
		Name:        "Open-Instruct API",
		Version:     service.ServiceVersion,
		Description: "Learning objective and quiz generation powered by a local LLM",
		Docs:        "/swagger/index.html",
		Health:      "/health",
	})
}

// Health godoc
// @Summary Health check
// @Description Reports API, model server and cache health
// @Tags system
// @Produce json
// @Success 200 {object} dto.SuccessResponse{data=dto.HealthResponse}
// @Failure 503 {object} dto.SuccessResponse{data=dto.HealthResponse}
// @Router /health [get]
func (h *SystemHandler) Health(c *fiber.Ctx) error {
	response := h.health.Check(c.UserContext())

	status := http.StatusOK
	if response.Status == dto.HealthStatusError {
		status = http.StatusServiceUnavailable
	}

	return c.Status(status).JSON(dto.NewSuccessResponse(response, middleware.ResponseMeta(c)))
}
