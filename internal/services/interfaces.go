package services

import (
	"context"

	"ats-api/internal/models"
	"ats-api/internal/transport/dto"

	"github.com/google/uuid"
)

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID uuid.UUID, role models.Role) (string, error)
}

// UserService defines the interface for user-related business logic.
type UserService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*models.User, string, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, error) // Returns user and token
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	CreateByAdmin(ctx context.Context, req *dto.AdminCreateUserRequest) (*models.User, error)
}

// JobService defines the interface for job-related business logic.
type JobService interface {
	ListJobs(ctx context.Context) ([]models.Job, error)
	GetJobByID(ctx context.Context, id uuid.UUID) (*models.Job, error)
	CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
}

// ApplicationService defines the interface for application business logic.
type ApplicationService interface {
	Apply(ctx context.Context, req *dto.ApplyToJobRequest) (*models.Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID, actor *models.User) ([]models.ApplicationWithStudent, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]models.ApplicationWithJob, error)
	UpdateStatus(ctx context.Context, appID uuid.UUID, status string, actor *models.User) (*models.Application, error)
	History(ctx context.Context, appID uuid.UUID, actor *models.User) ([]models.StatusEvent, error)
}

// ResumeService produces the placeholder analysis for an uploaded resume.
type ResumeService interface {
	Analyze(ctx context.Context, file *dto.UploadedFile) (*dto.ResumeAnalysis, error)
}
