// Package http exposes the generation API over Echo.
package http

import (
	"net/http"
	"strconv"

	"golang-synth-datagen/internal/generator/dto"
	"golang-synth-datagen/internal/generator/service"
	"golang-synth-datagen/pkg/logger"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// GenerationHandler handles HTTP requests for generation jobs.
type GenerationHandler struct {
	jobService       *service.JobService
	generatorService *service.GeneratorService
	logger           *logger.Logger
}

// NewGenerationHandler creates a new GenerationHandler.
func NewGenerationHandler(jobService *service.JobService, generatorService *service.GeneratorService, logger *logger.Logger) *GenerationHandler {
	return &GenerationHandler{jobService: jobService, generatorService: generatorService, logger: logger}
}

// RegisterRoutes registers the generation routes to the Echo group.
func (h *GenerationHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/generations", h.CreateGeneration)
	g.GET("/generations", h.GetAllGenerations)
	g.GET("/generations/:id", h.GetGenerationByID)
	g.GET("/generations/:id/report", h.GetGenerationReport)
	g.GET("/domains", h.GetDomains)
}

// CreateGeneration godoc
// @Summary Submit a generation job
// @Description Validate the request and enqueue a dataset generation job
// @Tags generations
// @Accept  json
// @Produce  json
// @Param   generation  body    dto.CreateJobRequest   true    "Generation to run"
// @Success 201 {object} entity.GenerationJob
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /generations [post]
func (h *GenerationHandler) CreateGeneration(c echo.Context) error {
	var req dto.CreateJobRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	job, err := h.jobService.Submit(c.Request().Context(), &req)
	if err != nil {
		// Validation failures come back before any job row is created.
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusCreated, job)
}

// GetGenerationByID godoc
// @Summary Get a generation job by ID
// @Description Get a single generation job and its current status
// @Tags generations
// @Produce  json
// @Param   id  path    int true    "Job ID"
// @Success 200 {object} entity.GenerationJob
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /generations/{id} [get]
func (h *GenerationHandler) GetGenerationByID(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid job ID"})
	}

	job, err := h.jobService.Get(c.Request().Context(), uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Job not found"})
		}
		h.logger.Error("Failed to get job", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get job"})
	}

	return c.JSON(http.StatusOK, job)
}

// GetAllGenerations godoc
// @Summary Get all generation jobs
// @Description Get all generation jobs, newest first
// @Tags generations
// @Produce  json
// @Success 200 {array} entity.GenerationJob
// @Failure 500 {object} dto.ErrorResponse
// @Router /generations [get]
func (h *GenerationHandler) GetAllGenerations(c echo.Context) error {
	jobs, err := h.jobService.List(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get all jobs", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get jobs"})
	}
	return c.JSON(http.StatusOK, jobs)
}

// GetGenerationReport godoc
// @Summary Get the quality report of a completed generation
// @Description Get the stored quality report for a completed generation job
// @Tags generations
// @Produce  json
// @Param   id  path    int true    "Job ID"
// @Success 200 {object} dto.QualityReport
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /generations/{id}/report [get]
func (h *GenerationHandler) GetGenerationReport(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid job ID"})
	}

	report, err := h.jobService.GetJobReport(c.Request().Context(), uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Job not found"})
		}
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	}

	return c.JSONBlob(http.StatusOK, []byte(report))
}

// GetDomains godoc
// @Summary List generation domains
// @Description List every domain with its available dataset types
// @Tags domains
// @Produce  json
// @Success 200 {array} dto.DomainInfo
// @Router /domains [get]
func (h *GenerationHandler) GetDomains(c echo.Context) error {
	return c.JSON(http.StatusOK, h.generatorService.Domains())
}
