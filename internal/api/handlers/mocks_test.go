package handlers_test

import (
	"context"

	"ats-api/internal/api/middleware"
	"ats-api/internal/models"
	"ats-api/internal/services"
	"ats-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Signup(ctx context.Context, req *dto.SignupRequest) (*models.User, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockUserService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) CreateByAdmin(ctx context.Context, req *dto.AdminCreateUserRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

var _ services.UserService = (*MockUserService)(nil)

type MockJobService struct {
	mock.Mock
}

func (m *MockJobService) ListJobs(ctx context.Context) ([]models.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Job), args.Error(1)
}

func (m *MockJobService) GetJobByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobService) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

var _ services.JobService = (*MockJobService)(nil)

type MockApplicationService struct {
	mock.Mock
}

func (m *MockApplicationService) Apply(ctx context.Context, req *dto.ApplyToJobRequest) (*models.Application, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *MockApplicationService) ListByJob(ctx context.Context, jobID uuid.UUID, actor *models.User) ([]models.ApplicationWithStudent, error) {
	args := m.Called(ctx, jobID, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ApplicationWithStudent), args.Error(1)
}

func (m *MockApplicationService) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]models.ApplicationWithJob, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ApplicationWithJob), args.Error(1)
}

func (m *MockApplicationService) UpdateStatus(ctx context.Context, appID uuid.UUID, status string, actor *models.User) (*models.Application, error) {
	args := m.Called(ctx, appID, status, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *MockApplicationService) History(ctx context.Context, appID uuid.UUID, actor *models.User) ([]models.StatusEvent, error) {
	args := m.Called(ctx, appID, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StatusEvent), args.Error(1)
}

var _ services.ApplicationService = (*MockApplicationService)(nil)

type MockResumeService struct {
	mock.Mock
}

func (m *MockResumeService) Analyze(ctx context.Context, file *dto.UploadedFile) (*dto.ResumeAnalysis, error) {
	args := m.Called(ctx, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ResumeAnalysis), args.Error(1)
}

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// withUser stands in for middleware.Authenticate in handler tests.
func withUser(user *models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user != nil {
			middleware.SetCurrentUser(c, user)
		}
		c.Next()
	}
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}
