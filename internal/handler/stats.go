package handler

import (
	"open-instruct/internal/dto"
	"open-instruct/internal/middleware"
	"open-instruct/internal/service"

	"github.com/gofiber/fiber/v2"
)

// StatsHandler handles analytics HTTP requests
type StatsHandler struct {
	stats service.StatsService
}

// NewStatsHandler creates a new StatsHandler instance
func NewStatsHandler(stats service.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// GetUsageStats godoc
// @Summary Usage statistics
// @Description Returns generation counts, cache hit rate, popular topics and Bloom level distribution
// @Tags stats
// @Produce json
// @Success 200 {object} dto.SuccessResponse{data=dto.UsageStatsResponse}
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/stats/usage [get]
func (h *StatsHandler) GetUsageStats(c *fiber.Ctx) error {
	response, err := h.stats.GetUsageStats(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(dto.NewSuccessResponse(response, middleware.ResponseMeta(c)))
}

// GetPerformanceStats godoc
// @Summary Performance statistics
// @Description Returns latency and reliability per generation kind
// @Tags stats
// @Produce json
// @Success 200 {object} dto.SuccessResponse{data=dto.PerformanceStatsResponse}
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/stats/performance [get]
func (h *StatsHandler) GetPerformanceStats(c *fiber.Ctx) error {
	response, err := h.stats.GetPerformanceStats(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(dto.NewSuccessResponse(response, middleware.ResponseMeta(c)))
}
