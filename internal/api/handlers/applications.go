package handlers

import (
	"errors"
	"log"
	"net/http"

	"ats-api/internal/api/middleware"
	"ats-api/internal/services"
	"ats-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ApplicationHandler holds dependencies for application operations.
type ApplicationHandler struct {
	service   services.ApplicationService
	validator *validator.Validate
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(service services.ApplicationService, validate *validator.Validate) *ApplicationHandler {
	return &ApplicationHandler{service: service, validator: validate}
}

// Apply godoc
// @Summary      Apply to a job
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        jobId path     string                 true "Job ID" Format(uuid)
// @Param        body  body     dto.ApplyToJobRequest  true "Application"
// @Success      200 {object}  dto.ApplicationResponse "Application created with status Pending"
// @Failure      400 {object}  map[string]string "Validation failed or already applied"
// @Failure      403 {object}  map[string]string "Forbidden"
// @Failure      404 {object}  map[string]string "Job not found"
// @Router       /applications/apply/{jobId} [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	jobID, ok := parseIDParam(c, "jobId")
	if !ok {
		return
	}

	var req dto.ApplyToJobRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	req.JobID = jobID
	req.StudentID = user.ID

	app, err := h.service.Apply(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			respondMessage(c, http.StatusNotFound, "Job not found")
		case errors.Is(err, services.ErrAlreadyApplied):
			respondMessage(c, http.StatusBadRequest, "You have already applied to this job")
		case errors.Is(err, services.ErrValidation):
			respondMessage(c, http.StatusBadRequest, validationMessage(err))
		default:
			respondInternal(c, err, "Failed to apply to job")
		}
		return
	}

	c.JSON(http.StatusOK, MapApplicationModelToResponse(app))
}

// ListByJob godoc
// @Summary      List applications to a job
// @Description  Recruiters only see their own jobs. Cover letters are omitted.
// @Tags         applications
// @Produce      json
// @Param        jobId path     string  true "Job ID" Format(uuid)
// @Success      200 {array}   dto.ApplicationResponse
// @Failure      403 {object}  map[string]string "Forbidden"
// @Failure      404 {object}  map[string]string "Job not found"
// @Router       /applications/job/{jobId} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListByJob(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	jobID, ok := parseIDParam(c, "jobId")
	if !ok {
		return
	}

	apps, err := h.service.ListByJob(c.Request.Context(), jobID, user)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			respondMessage(c, http.StatusNotFound, "Job not found")
		case errors.Is(err, services.ErrForbidden):
			respondMessage(c, http.StatusForbidden, "Forbidden")
		default:
			respondInternal(c, err, "Failed to retrieve applications")
		}
		return
	}

	resp := make([]dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		resp = append(resp, MapApplicationWithStudentToResponse(&apps[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// ListMine godoc
// @Summary      List my applications
// @Tags         applications
// @Produce      json
// @Success      200 {array}   dto.ApplicationResponse
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Router       /applications/me [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	apps, err := h.service.ListByStudent(c.Request.Context(), user.ID)
	if err != nil {
		respondInternal(c, err, "Failed to retrieve applications")
		return
	}

	resp := make([]dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		resp = append(resp, MapApplicationWithJobToResponse(&apps[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateStatus godoc
// @Summary      Update application status
// @Description  Allowed for admins and the recruiter who posted the job.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        appId path     string                             true "Application ID" Format(uuid)
// @Param        body  body     dto.UpdateApplicationStatusRequest true "New status"
// @Success      200 {object}  dto.ApplicationResponse
// @Failure      400 {object}  map[string]string "Invalid status"
// @Failure      403 {object}  map[string]string "Forbidden"
// @Failure      404 {object}  map[string]string "Application not found"
// @Failure      409 {object}  map[string]string "Transition not allowed or concurrent update"
// @Router       /applications/{appId}/status [put]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	appID, ok := parseIDParam(c, "appId")
	if !ok {
		return
	}

	// A missing or malformed body leaves Status empty; the service rejects it
	// only after the ownership check.
	var req dto.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("UpdateApplicationStatus: Unreadable body for application %s: %v", appID, err)
		req.Status = ""
	}

	app, err := h.service.UpdateStatus(c.Request.Context(), appID, req.Status, user)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			respondMessage(c, http.StatusNotFound, "Application not found")
		case errors.Is(err, services.ErrForbidden):
			respondMessage(c, http.StatusForbidden, "Forbidden")
		case errors.Is(err, services.ErrValidation):
			respondMessage(c, http.StatusBadRequest, validationMessage(err))
		case errors.Is(err, services.ErrInvalidTransition):
			respondMessage(c, http.StatusConflict, err.Error())
		case errors.Is(err, services.ErrConflict):
			respondMessage(c, http.StatusConflict, "Application was updated concurrently, retry")
		default:
			respondInternal(c, err, "Failed to update application status")
		}
		return
	}

	c.JSON(http.StatusOK, MapApplicationModelToResponse(app))
}

// History godoc
// @Summary      Application status history
// @Tags         applications
// @Produce      json
// @Param        appId path     string  true "Application ID" Format(uuid)
// @Success      200 {array}   dto.StatusEventResponse
// @Failure      403 {object}  map[string]string "Forbidden"
// @Failure      404 {object}  map[string]string "Application not found"
// @Router       /applications/{appId}/history [get]
// @Security     BearerAuth
func (h *ApplicationHandler) History(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	appID, ok := parseIDParam(c, "appId")
	if !ok {
		return
	}

	events, err := h.service.History(c.Request.Context(), appID, user)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			respondMessage(c, http.StatusNotFound, "Application not found")
		case errors.Is(err, services.ErrForbidden):
			respondMessage(c, http.StatusForbidden, "Forbidden")
		default:
			respondInternal(c, err, "Failed to retrieve application history")
		}
		return
	}

	resp := make([]dto.StatusEventResponse, 0, len(events))
	for i := range events {
		resp = append(resp, MapStatusEventToResponse(&events[i]))
	}
	c.JSON(http.StatusOK, resp)
}
