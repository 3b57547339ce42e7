package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ApplyToJobRequest defines the body of POST /applications/apply/:jobId.
type ApplyToJobRequest struct {
	JobID       uuid.UUID       `json:"-"` // From path
	StudentID   uuid.UUID       `json:"-"` // Set from user context
	ResumeURL   string          `json:"resumeUrl" validate:"required,max=500"`
	CoverLetter string          `json:"coverLetter" validate:"omitempty,max=5000"`
	AIScore     *float64        `json:"aiScore" validate:"omitempty,gte=0,lte=100"`
	Analysis    json.RawMessage `json:"analysis"`
}

// UpdateApplicationStatusRequest defines the body of PUT /applications/:appId/status.
// Status carries no validate tag: the service checks it after ownership.
type UpdateApplicationStatusRequest struct {
	Status string `json:"status"`
}

// JobSummaryResponse is the job attached to a student's application.
type JobSummaryResponse struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Company  string    `json:"company"`
	Location string    `json:"location"`
	JobType  string    `json:"jobType"`
}

// StudentSummaryResponse is the applicant attached to a recruiter's view.
type StudentSummaryResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone"`
}

type ApplicationResponse struct {
	ID          uuid.UUID               `json:"id"`
	StudentID   uuid.UUID               `json:"studentId"`
	JobID       uuid.UUID               `json:"jobId"`
	RecruiterID uuid.UUID               `json:"recruiterId"`
	Status      string                  `json:"status"`
	AppliedDate time.Time               `json:"appliedDate"`
	ResumeURL   string                  `json:"resumeUrl"`
	CoverLetter string                  `json:"coverLetter,omitempty"`
	AIScore     *float64                `json:"aiScore,omitempty"`
	Analysis    json.RawMessage         `json:"analysis,omitempty"`
	Job         *JobSummaryResponse     `json:"job,omitempty"`
	Student     *StudentSummaryResponse `json:"student,omitempty"`
}

type StatusEventResponse struct {
	FromStatus string    `json:"fromStatus"`
	ToStatus   string    `json:"toStatus"`
	ChangedBy  uuid.UUID `json:"changedBy"`
	ChangedAt  time.Time `json:"changedAt"`
}
