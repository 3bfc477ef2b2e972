package http

import (
	"net/http"
	"strconv"

	"golang-synth-datagen/internal/generator/dto"
	"golang-synth-datagen/internal/generator/service"
	"golang-synth-datagen/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ScheduleHandler handles HTTP requests for recurring generation schedules.
type ScheduleHandler struct {
	schedulerService *service.SchedulerService
	logger           *logger.Logger
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(schedulerService *service.SchedulerService, logger *logger.Logger) *ScheduleHandler {
	return &ScheduleHandler{schedulerService: schedulerService, logger: logger}
}

// RegisterRoutes registers the schedule routes to the Echo group.
func (h *ScheduleHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/schedules", h.CreateSchedule)
	g.GET("/schedules", h.GetAllSchedules)
	g.DELETE("/schedules/:id", h.DeleteSchedule)
}

// CreateSchedule godoc
// @Summary Create a recurring generation schedule
// @Description Create a cron-driven schedule that submits generation jobs
// @Tags schedules
// @Accept  json
// @Produce  json
// @Param   schedule  body    dto.CreateScheduleRequest   true    "Schedule to create"
// @Success 201 {object} entity.GenerationSchedule
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /schedules [post]
func (h *ScheduleHandler) CreateSchedule(c echo.Context) error {
	var req dto.CreateScheduleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	schedule, err := h.schedulerService.Create(c.Request().Context(), &req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusCreated, schedule)
}

// GetAllSchedules godoc
// @Summary Get all schedules
// @Description Get all recurring generation schedules
// @Tags schedules
// @Produce  json
// @Success 200 {array} entity.GenerationSchedule
// @Failure 500 {object} dto.ErrorResponse
// @Router /schedules [get]
func (h *ScheduleHandler) GetAllSchedules(c echo.Context) error {
	schedules, err := h.schedulerService.List(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get all schedules", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get schedules"})
	}
	return c.JSON(http.StatusOK, schedules)
}

// DeleteSchedule godoc
// @Summary Delete a schedule
// @Description Delete a schedule by its ID
// @Tags schedules
// @Produce  json
// @Param   id  path    int true    "Schedule ID"
// @Success 204 {object} nil
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /schedules/{id} [delete]
func (h *ScheduleHandler) DeleteSchedule(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid schedule ID"})
	}

	if err := h.schedulerService.Delete(c.Request().Context(), uint(id)); err != nil {
		h.logger.Error("Failed to delete schedule", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete schedule"})
	}

	return c.NoContent(http.StatusNoContent)
}
