package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"jobboard/internal/auth"
	apperrors "jobboard/internal/errors"
	"jobboard/internal/service"
)

// JobHandler handles job posting CRUD. Ownership is enforced here, before any
// mutation reaches the service; the store layer does not re-check it.
type JobHandler struct {
	jobService service.JobService
}

// NewJobHandler creates a new job handler.
func NewJobHandler(jobService service.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// JobRequest represents the client-settable fields of a job posting. The
// owner is never accepted from the client.
type JobRequest struct {
	Title       string `json:"job_title" validate:"required"`
	Company     string `json:"job_company" validate:"required"`
	CompanyURL  string `json:"job_company_url" validate:"omitempty,url"`
	Location    string `json:"job_location" validate:"required"`
	Description string `json:"job_description" validate:"required"`
	DatePosted  string `json:"job_date_posted" validate:"omitempty,datetime=2006-01-02"`
}

func (r *JobRequest) fields() service.JobFields {
	fields := service.JobFields{
		Title:       r.Title,
		Company:     r.Company,
		CompanyURL:  r.CompanyURL,
		Location:    r.Location,
		Description: r.Description,
	}
	if r.DatePosted != "" {
		// format already validated by the datetime tag
		fields.DatePosted, _ = time.Parse("2006-01-02", r.DatePosted)
	}
	return fields
}

// CreateJob godoc
// @Summary Create job
// @Tags jobs
// @Accept json
// @Produce json
// @Param request body JobRequest true "Job fields"
// @Success 201 {object} model.Job
// @Failure 401 {object} errors.ErrorResponse
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /jobs/create [post]
func (h *JobHandler) CreateJob(c echo.Context) error {
	principal, ok := auth.UserFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Could not validate credentials")
	}

	var req JobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	job, err := h.jobService.CreateJob(c.Request().Context(), req.fields(), principal.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, job)
}

// GetJob godoc
// @Summary Get job
// @Tags jobs
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} model.Job
// @Failure 404 {object} map[string]string
// @Router /jobs/get/{id} [get]
func (h *JobHandler) GetJob(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	job, err := h.jobService.GetJob(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, apperrors.ErrJobNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("Job with this id %d does not exist", id))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, job)
}

// ListJobs godoc
// @Summary Get all jobs
// @Tags jobs
// @Produce json
// @Success 200 {array} model.Job
// @Router /jobs/all [get]
func (h *JobHandler) ListJobs(c echo.Context) error {
	jobs, err := h.jobService.ListActiveJobs(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, jobs)
}

// UpdateJob godoc
// @Summary Update job
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path int true "Job ID"
// @Param request body JobRequest true "Job fields"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /jobs/update/{id} [put]
func (h *JobHandler) UpdateJob(c echo.Context) error {
	principal, ok := auth.UserFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Could not validate credentials")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req JobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	job, err := h.jobService.GetJob(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, apperrors.ErrJobNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("Job with id %d does not exist", id))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if !h.jobService.CanModify(job, principal) {
		return echo.NewHTTPError(http.StatusUnauthorized, "You are not authorized to update.")
	}

	if err := h.jobService.UpdateJob(c.Request().Context(), uint(id), req.fields(), principal.ID); err != nil {
		if errors.Is(err, apperrors.ErrJobNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("Job with id %d does not exist", id))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]string{"detail": "Successfully updated data."})
}

// DeleteJob godoc
// @Summary Delete job
// @Tags jobs
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /jobs/delete/{id} [delete]
func (h *JobHandler) DeleteJob(c echo.Context) error {
	principal, ok := auth.UserFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Could not validate credentials")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	job, err := h.jobService.GetJob(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, apperrors.ErrJobNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("Job with id %d does not exist", id))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if !h.jobService.CanModify(job, principal) {
		return echo.NewHTTPError(http.StatusUnauthorized, "You are not permitted !")
	}

	if err := h.jobService.DeleteJob(c.Request().Context(), uint(id)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]string{"msg": "Job successfully deleted."})
}
