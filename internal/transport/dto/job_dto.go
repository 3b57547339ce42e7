package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateJobRequest defines the structure for creating a new job posting.
// JobType is free text; the service canonicalises it.
type CreateJobRequest struct {
	Title          string    `json:"title" validate:"required,max=200"`
	Company        string    `json:"company" validate:"required,max=200"`
	Location       string    `json:"location" validate:"omitempty,max=200"`
	Salary         string    `json:"salary" validate:"omitempty,max=100"`
	JobType        string    `json:"jobType" validate:"omitempty,max=50"`
	Description    string    `json:"description" validate:"required"`
	RequiredSkills []string  `json:"requiredSkills" validate:"omitempty,dive,required,max=100"`
	PostedBy       uuid.UUID `json:"-"` // Set internally by handler from auth context
}

// JobResponse defines the standard job data returned to the client.
type JobResponse struct {
	ID                uuid.UUID `json:"id"`
	Title             string    `json:"title"`
	Company           string    `json:"company"`
	Location          string    `json:"location"`
	Salary            string    `json:"salary"`
	JobType           string    `json:"jobType"`
	Description       string    `json:"description"`
	RequiredSkills    []string  `json:"requiredSkills"`
	PostedBy          uuid.UUID `json:"postedBy"`
	ApplicationsCount int       `json:"applicationsCount"`
	CreatedAt         time.Time `json:"createdAt"`
}
