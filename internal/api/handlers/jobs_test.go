package handlers_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ats-api/internal/api/handlers"
	"ats-api/internal/models"
	"ats-api/internal/services"
	"ats-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestJobHandler_ListJobs(t *testing.T) {
	svc := new(MockJobService)
	jobs := []models.Job{
		{ID: uuid.New(), Title: "Newest", JobType: models.JobTypeInternship},
		{ID: uuid.New(), Title: "Older", JobType: models.JobTypeFullTime, RequiredSkills: []string{"go"}},
	}
	svc.On("ListJobs", mock.Anything).Return(jobs, nil).Once()

	router := newTestRouter()
	router.GET("/jobs", handlers.NewJobHandler(svc, handlers.NewValidator()).ListJobs)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jobs", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body []dto.JobResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, "Newest", body[0].Title)
	assert.Equal(t, "Internship", body[0].JobType)
	assert.Equal(t, []string{}, body[0].RequiredSkills)
}

func TestJobHandler_GetJobByID(t *testing.T) {
	id := uuid.New()
	tests := []struct {
		name       string
		path       string
		mockSetup  func(svc *MockJobService)
		wantStatus int
	}{
		{
			name: "Found",
			path: "/jobs/" + id.String(),
			mockSetup: func(svc *MockJobService) {
				svc.On("GetJobByID", mock.Anything, id).Return(&models.Job{ID: id}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "Not found",
			path: "/jobs/" + id.String(),
			mockSetup: func(svc *MockJobService) {
				svc.On("GetJobByID", mock.Anything, id).Return(nil, fmt.Errorf("%w: getting job", services.ErrNotFound))
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "Malformed id",
			path:       "/jobs/not-a-uuid",
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "Unexpected error",
			path: "/jobs/" + id.String(),
			mockSetup: func(svc *MockJobService) {
				svc.On("GetJobByID", mock.Anything, id).Return(nil, errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockJobService)
			if tt.mockSetup != nil {
				tt.mockSetup(svc)
			}
			router := newTestRouter()
			router.GET("/jobs/:id", handlers.NewJobHandler(svc, handlers.NewValidator()).GetJobByID)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusInternalServerError {
				assert.NotContains(t, w.Body.String(), "db down")
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestJobHandler_CreateJob(t *testing.T) {
	recruiter := &models.User{ID: uuid.New(), Role: models.RoleRecruiter}

	t.Run("Poster comes from the caller", func(t *testing.T) {
		svc := new(MockJobService)
		svc.On("CreateJob", mock.Anything, mock.MatchedBy(func(r *dto.CreateJobRequest) bool {
			return r.PostedBy == recruiter.ID && r.JobType == "fulltime"
		})).Return(&models.Job{ID: uuid.New(), Title: "Eng", JobType: models.JobTypeFullTime, PostedBy: recruiter.ID}, nil).Once()

		router := newTestRouter()
		router.POST("/jobs", withUser(recruiter), handlers.NewJobHandler(svc, handlers.NewValidator()).CreateJob)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader(
			`{"title":"Eng","company":"Acme","description":"Build","jobType":"fulltime","postedBy":"`+uuid.NewString()+`"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"jobType":"Full-Time"`)
		svc.AssertExpectations(t)
	})

	t.Run("Unknown job type", func(t *testing.T) {
		svc := new(MockJobService)
		svc.On("CreateJob", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("%w: unknown job type %q", services.ErrValidation, "gig")).Once()

		router := newTestRouter()
		router.POST("/jobs", withUser(recruiter), handlers.NewJobHandler(svc, handlers.NewValidator()).CreateJob)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader(`{"title":"Eng","company":"Acme","description":"Build","jobType":"gig"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "unknown job type")
	})

	t.Run("Missing title", func(t *testing.T) {
		svc := new(MockJobService)
		router := newTestRouter()
		router.POST("/jobs", withUser(recruiter), handlers.NewJobHandler(svc, handlers.NewValidator()).CreateJob)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader(`{"company":"Acme","description":"Build"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"title":"Field 'title' is required"`)
		svc.AssertNotCalled(t, "CreateJob", mock.Anything, mock.Anything)
	})
}
