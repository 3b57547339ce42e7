package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// --- Role Enum ---
type Role string

const (
	RoleStudent   Role = "student"
	RoleRecruiter Role = "recruiter"
	RoleAdmin     Role = "admin"
)

// ParseRole matches s case-insensitively against the known roles.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	switch r {
	case RoleStudent, RoleRecruiter, RoleAdmin:
		return r, true
	default:
		return "", false
	}
}

// Scan implements the sql.Scanner interface for Role
func (r *Role) Scan(value interface{}) error {
	strVal, err := scanString(value, "Role")
	if err != nil {
		return err
	}
	parsed, ok := ParseRole(strVal)
	if !ok {
		return fmt.Errorf("invalid Role value: %s", strVal)
	}
	*r = parsed
	return nil
}

// Value implements the driver.Valuer interface for Role
func (r Role) Value() (driver.Value, error) {
	return string(r), nil
}

// --- Job Type Enum ---
type JobType string

const (
	JobTypeFullTime   JobType = "Full-Time"
	JobTypePartTime   JobType = "Part-Time"
	JobTypeInternship JobType = "Internship"
	JobTypeContract   JobType = "Contract"
)

// Scan implements the sql.Scanner interface for JobType
func (jt *JobType) Scan(value interface{}) error {
	strVal, err := scanString(value, "JobType")
	if err != nil {
		return err
	}
	v := JobType(strVal)
	switch v {
	case JobTypeFullTime, JobTypePartTime, JobTypeInternship, JobTypeContract:
		*jt = v
		return nil
	default:
		return fmt.Errorf("invalid JobType value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for JobType
func (jt JobType) Value() (driver.Value, error) {
	return string(jt), nil
}

// --- Application Status Enum ---
type ApplicationStatus string

const (
	StatusPending      ApplicationStatus = "Pending"
	StatusReviewed     ApplicationStatus = "Reviewed"
	StatusInterviewing ApplicationStatus = "Interviewing"
	StatusRejected     ApplicationStatus = "Rejected"
	StatusAccepted     ApplicationStatus = "Accepted"
)

// IsValid reports whether s is one of the five known statuses.
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusReviewed, StatusInterviewing, StatusRejected, StatusAccepted:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed from s.
func (s ApplicationStatus) IsTerminal() bool {
	return s == StatusRejected || s == StatusAccepted
}

// Scan implements the sql.Scanner interface for ApplicationStatus
func (s *ApplicationStatus) Scan(value interface{}) error {
	strVal, err := scanString(value, "ApplicationStatus")
	if err != nil {
		return err
	}
	v := ApplicationStatus(strVal)
	if !v.IsValid() {
		return fmt.Errorf("invalid ApplicationStatus value: %s", strVal)
	}
	*s = v
	return nil
}

// Value implements the driver.Valuer interface for ApplicationStatus
func (s ApplicationStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func scanString(value interface{}, typeName string) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("failed to scan %s: value is not string or []byte", typeName)
	}
}

// User represents an account of any role.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Phone        string    `json:"phone" db:"phone"`
	Role         Role      `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Job is a posting owned by a recruiter or admin.
type Job struct {
	ID                uuid.UUID `json:"id" db:"id"`
	Title             string    `json:"title" db:"title"`
	Company           string    `json:"company" db:"company"`
	Location          string    `json:"location" db:"location"`
	Salary            string    `json:"salary" db:"salary"`
	JobType           JobType   `json:"job_type" db:"job_type"`
	Description       string    `json:"description" db:"description"`
	RequiredSkills    []string  `json:"required_skills" db:"required_skills"`
	PostedBy          uuid.UUID `json:"posted_by" db:"posted_by"`
	ApplicationsCount int       `json:"applications_count" db:"applications_count"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
}

// Application is a student's application to a job. RecruiterID is copied
// from the job's PostedBy when the application is created.
type Application struct {
	ID          uuid.UUID         `json:"id" db:"id"`
	StudentID   uuid.UUID         `json:"student_id" db:"student_id"`
	JobID       uuid.UUID         `json:"job_id" db:"job_id"`
	RecruiterID uuid.UUID         `json:"recruiter_id" db:"recruiter_id"`
	Status      ApplicationStatus `json:"status" db:"status"`
	AppliedDate time.Time         `json:"applied_date" db:"applied_date"`
	ResumeURL   string            `json:"resume_url" db:"resume_url"`
	CoverLetter string            `json:"cover_letter" db:"cover_letter"`
	AIScore     *float64          `json:"ai_score,omitempty" db:"ai_score"`
	Analysis    json.RawMessage   `json:"analysis,omitempty" db:"analysis"`
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at" db:"updated_at"`
}

// JobSummary is the subset of a job shown next to a student's applications.
type JobSummary struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Company  string    `json:"company"`
	Location string    `json:"location"`
	JobType  JobType   `json:"job_type"`
}

// StudentSummary is the subset of a student shown to recruiters.
type StudentSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone"`
}

// ApplicationWithJob pairs an application with its job summary.
type ApplicationWithJob struct {
	Application
	Job JobSummary
}

// ApplicationWithStudent pairs an application with its applicant summary.
type ApplicationWithStudent struct {
	Application
	Student StudentSummary
}

// StatusEvent is one entry of an application's append-only status history.
type StatusEvent struct {
	ID            uuid.UUID         `json:"id" db:"id"`
	ApplicationID uuid.UUID         `json:"application_id" db:"application_id"`
	FromStatus    ApplicationStatus `json:"from_status" db:"from_status"`
	ToStatus      ApplicationStatus `json:"to_status" db:"to_status"`
	ChangedBy     uuid.UUID         `json:"changed_by" db:"changed_by"`
	ChangedAt     time.Time         `json:"changed_at" db:"changed_at"`
}
