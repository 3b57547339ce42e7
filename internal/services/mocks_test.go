package services_test

import (
	"context"

	"ats-api/internal/models"
	"ats-api/internal/storage"
	"ats-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock type for the storage.UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, req *dto.CreateUserRequest, role models.Role) (*models.User, error) {
	args := m.Called(ctx, req, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

var _ storage.UserRepository = (*MockUserRepository)(nil)

// MockJobRepository is a mock type for the storage.JobRepository interface
type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) ListNewestFirst(ctx context.Context) ([]models.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Job), args.Error(1)
}

func (m *MockJobRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepository) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	args := m.Called(ctx, job)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

var _ storage.JobRepository = (*MockJobRepository)(nil)

// MockApplicationRepository is a mock type for the storage.ApplicationRepository interface
type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *MockApplicationRepository) ExistsForStudentAndJob(ctx context.Context, studentID, jobID uuid.UUID) (bool, error) {
	args := m.Called(ctx, studentID, jobID)
	return args.Bool(0), args.Error(1)
}

func (m *MockApplicationRepository) CreateAndCountOnJob(ctx context.Context, app *models.Application) (*models.Application, error) {
	args := m.Called(ctx, app)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *MockApplicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.ApplicationWithStudent, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ApplicationWithStudent), args.Error(1)
}

func (m *MockApplicationRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]models.ApplicationWithJob, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ApplicationWithJob), args.Error(1)
}

func (m *MockApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.ApplicationStatus, changedBy uuid.UUID) (*models.Application, error) {
	args := m.Called(ctx, id, from, to, changedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *MockApplicationRepository) ListStatusEvents(ctx context.Context, applicationID uuid.UUID) ([]models.StatusEvent, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StatusEvent), args.Error(1)
}

var _ storage.ApplicationRepository = (*MockApplicationRepository)(nil)

// MockJobListCache is a mock type for the storage.JobListCache interface
type MockJobListCache struct {
	mock.Mock
}

func (m *MockJobListCache) Get(ctx context.Context) ([]models.Job, int64, bool) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Bool(2)
	}
	return args.Get(0).([]models.Job), args.Get(1).(int64), args.Bool(2)
}

func (m *MockJobListCache) Set(ctx context.Context, generation int64, jobs []models.Job) {
	m.Called(ctx, generation, jobs)
}

func (m *MockJobListCache) Invalidate(ctx context.Context) {
	m.Called(ctx)
}

var _ storage.JobListCache = (*MockJobListCache)(nil)

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(userID uuid.UUID, role models.Role) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}
