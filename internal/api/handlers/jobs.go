package handlers

import (
	"errors"
	"net/http"

	"ats-api/internal/api/middleware"
	"ats-api/internal/services"
	"ats-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// JobHandler holds dependencies for job operations.
type JobHandler struct {
	service   services.JobService
	validator *validator.Validate
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(service services.JobService, validate *validator.Validate) *JobHandler {
	return &JobHandler{
		service:   service,
		validator: validate,
	}
}

// ListJobs godoc
// @Summary      List jobs
// @Description  All jobs, newest first.
// @Tags         jobs
// @Produce      json
// @Success      200 {array}   dto.JobResponse
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs [get]
// @Security     BearerAuth
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.service.ListJobs(c.Request.Context())
	if err != nil {
		respondInternal(c, err, "Failed to retrieve jobs")
		return
	}

	resp := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		resp = append(resp, MapJobModelToJobResponse(&jobs[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// GetJobByID godoc
// @Summary      Get a job
// @Tags         jobs
// @Produce      json
// @Param        id  path      string  true  "Job ID" Format(uuid)
// @Success      200 {object}  dto.JobResponse
// @Failure      400 {object}  map[string]string "Invalid id"
// @Failure      404 {object}  map[string]string "Job not found"
// @Router       /jobs/{id} [get]
// @Security     BearerAuth
func (h *JobHandler) GetJobByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	job, err := h.service.GetJobByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondMessage(c, http.StatusNotFound, "Job not found")
		} else {
			respondInternal(c, err, "Failed to retrieve job")
		}
		return
	}
	c.JSON(http.StatusOK, MapJobModelToJobResponse(job))
}

// CreateJob godoc
// @Summary      Create a job posting
// @Description  The poster is taken from the auth context. jobType is free text and is canonicalised.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job body      dto.CreateJobRequest true  "Job details"
// @Success      201 {object}  dto.JobResponse "Job created successfully"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) CreateJob(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req dto.CreateJobRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	req.PostedBy = user.ID

	job, err := h.service.CreateJob(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			respondMessage(c, http.StatusBadRequest, validationMessage(err))
		} else {
			respondInternal(c, err, "Failed to create job")
		}
		return
	}

	c.JSON(http.StatusCreated, MapJobModelToJobResponse(job))
}
