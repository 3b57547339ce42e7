package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"reflect"
	"strings"

	"ats-api/internal/models"
	"ats-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// NewValidator returns a validator that reports fields by their JSON name.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

func FormatValidationErrors(err error) map[string]string {
	errorsMap := make(map[string]string)
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errorsMap["error"] = "Invalid validation error type"
		return errorsMap
	}
	for _, fieldError := range validationErrors {
		fieldName := fieldError.Field()
		errorsMap[fieldName] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fieldName, fieldError.Tag())
		switch fieldError.Tag() {
		case "required":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' is required", fieldName)
		case "email":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a valid email address", fieldName)
		case "min":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at least %s characters long", fieldName, fieldError.Param())
		case "max":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at most %s characters long", fieldName, fieldError.Param())
		case "gte":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at least %s", fieldName, fieldError.Param())
		case "lte":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at most %s", fieldName, fieldError.Param())
		}
	}
	return errorsMap
}

// bindJSON decodes and validates the request body into req, writing a 400
// and returning false on failure.
func bindJSON(c *gin.Context, v *validator.Validate, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	if err := v.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "details": FormatValidationErrors(err)})
		return false
	}
	return true
}

// parseIDParam reads a uuid path parameter, writing a 400 on failure.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid "+name+" format")
		return uuid.Nil, false
	}
	return id, true
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// respondInternal logs err and writes a 500. The error text is only exposed
// when gin runs in debug mode, which the server enables for development.
func respondInternal(c *gin.Context, err error, message string) {
	log.Printf("%s: %v", message, err)
	body := gin.H{"message": message}
	if gin.Mode() == gin.DebugMode {
		body["error"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}

// validationMessage strips the sentinel prefix from a service validation error.
func validationMessage(err error) string {
	msg := err.Error()
	if rest, ok := strings.CutPrefix(msg, "validation failed: "); ok {
		return rest
	}
	return msg
}

// MapUserModelToUserResponse converts a models.User to a dto.UserResponse
func MapUserModelToUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
}

// MapJobModelToJobResponse converts a models.Job to a dto.JobResponse
func MapJobModelToJobResponse(job *models.Job) dto.JobResponse {
	skills := job.RequiredSkills
	if skills == nil {
		skills = []string{}
	}
	return dto.JobResponse{
		ID:                job.ID,
		Title:             job.Title,
		Company:           job.Company,
		Location:          job.Location,
		Salary:            job.Salary,
		JobType:           string(job.JobType),
		Description:       job.Description,
		RequiredSkills:    skills,
		PostedBy:          job.PostedBy,
		ApplicationsCount: job.ApplicationsCount,
		CreatedAt:         job.CreatedAt,
	}
}

// MapApplicationModelToResponse converts a models.Application to a dto.ApplicationResponse
func MapApplicationModelToResponse(app *models.Application) dto.ApplicationResponse {
	return dto.ApplicationResponse{
		ID:          app.ID,
		StudentID:   app.StudentID,
		JobID:       app.JobID,
		RecruiterID: app.RecruiterID,
		Status:      string(app.Status),
		AppliedDate: app.AppliedDate,
		ResumeURL:   app.ResumeURL,
		CoverLetter: app.CoverLetter,
		AIScore:     app.AIScore,
		Analysis:    app.Analysis,
	}
}

// MapApplicationWithJobToResponse is the student's view of an application.
func MapApplicationWithJobToResponse(app *models.ApplicationWithJob) dto.ApplicationResponse {
	resp := MapApplicationModelToResponse(&app.Application)
	resp.Job = &dto.JobSummaryResponse{
		ID:       app.Job.ID,
		Title:    app.Job.Title,
		Company:  app.Job.Company,
		Location: app.Job.Location,
		JobType:  string(app.Job.JobType),
	}
	return resp
}

// MapApplicationWithStudentToResponse is the recruiter's view of an
// application. The cover letter is not included.
func MapApplicationWithStudentToResponse(app *models.ApplicationWithStudent) dto.ApplicationResponse {
	resp := MapApplicationModelToResponse(&app.Application)
	resp.CoverLetter = ""
	resp.Student = &dto.StudentSummaryResponse{
		ID:    app.Student.ID,
		Name:  app.Student.Name,
		Email: app.Student.Email,
		Phone: app.Student.Phone,
	}
	return resp
}

func MapStatusEventToResponse(ev *models.StatusEvent) dto.StatusEventResponse {
	return dto.StatusEventResponse{
		FromStatus: string(ev.FromStatus),
		ToStatus:   string(ev.ToStatus),
		ChangedBy:  ev.ChangedBy,
		ChangedAt:  ev.ChangedAt,
	}
}
