package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"ats-api/internal/models"
	"ats-api/internal/storage"
	"ats-api/internal/transport/dto"

	"github.com/google/uuid"
)

type applicationService struct {
	appRepo storage.ApplicationRepository
	jobRepo storage.JobRepository
	cache   storage.JobListCache
}

// NewApplicationService creates a new instance of ApplicationService.
// cache may be nil; when set it is invalidated after every new application
// because job list entries carry the applications count.
func NewApplicationService(appRepo storage.ApplicationRepository, jobRepo storage.JobRepository, cache storage.JobListCache) ApplicationService {
	return &applicationService{
		appRepo: appRepo,
		jobRepo: jobRepo,
		cache:   cache,
	}
}

// Apply creates a Pending application of req.StudentID to req.JobID.
func (s *applicationService) Apply(ctx context.Context, req *dto.ApplyToJobRequest) (*models.Application, error) {
	analysis, err := normalizeAnalysis(req.Analysis)
	if err != nil {
		return nil, err
	}

	// 1. The job must exist; its poster becomes the application's recruiter
	job, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("fetching job %s for application", req.JobID))
	}

	// 2. One application per student and job
	exists, err := s.appRepo.ExistsForStudentAndJob(ctx, req.StudentID, req.JobID)
	if err != nil {
		return nil, MapRepoError(err, "checking existing application")
	}
	if exists {
		log.Printf("ApplyToJob: Student %s already applied to job %s", req.StudentID, req.JobID)
		return nil, ErrAlreadyApplied
	}

	// 3. Insert and bump the job's counter together
	app, err := s.appRepo.CreateAndCountOnJob(ctx, &models.Application{
		StudentID:   req.StudentID,
		JobID:       job.ID,
		RecruiterID: job.PostedBy,
		Status:      models.StatusPending,
		ResumeURL:   req.ResumeURL,
		CoverLetter: req.CoverLetter,
		AIScore:     req.AIScore,
		Analysis:    analysis,
	})
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			// Lost the race against a concurrent apply from the same student.
			return nil, ErrAlreadyApplied
		}
		return nil, MapRepoError(err, "creating application")
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	log.Printf("Application %s created for job %s by student %s", app.ID, job.ID, req.StudentID)
	return app, nil
}

// normalizeAnalysis accepts an absent/null analysis or a JSON object.
func normalizeAnalysis(raw json.RawMessage) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	if trimmed[0] != '{' || !json.Valid(trimmed) {
		return nil, fmt.Errorf("%w: analysis must be a JSON object", ErrValidation)
	}
	return trimmed, nil
}

// ListByJob returns the applications to a job. Recruiters only see jobs they posted.
func (s *applicationService) ListByJob(ctx context.Context, jobID uuid.UUID, actor *models.User) ([]models.ApplicationWithStudent, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("fetching job %s for listing applications", jobID))
	}

	if actor.Role != models.RoleAdmin && job.PostedBy != actor.ID {
		log.Printf("ListApplicationsByJob: Forbidden attempt by user %s to list applications for job %s owned by %s", actor.ID, jobID, job.PostedBy)
		return nil, ErrForbidden
	}

	apps, err := s.appRepo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("listing applications for job %s", jobID))
	}
	return apps, nil
}

func (s *applicationService) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]models.ApplicationWithJob, error) {
	apps, err := s.appRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("listing applications for student %s", studentID))
	}
	return apps, nil
}

// UpdateStatus moves an application along the status graph. Checks run in
// order: existence, ownership, target value, transition.
func (s *applicationService) UpdateStatus(ctx context.Context, appID uuid.UUID, status string, actor *models.User) (*models.Application, error) {
	app, err := s.appRepo.GetByID(ctx, appID)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("fetching application %s", appID))
	}

	if !canManageApplication(actor, app) {
		log.Printf("UpdateApplicationStatus: Forbidden attempt by user %s on application %s (recruiter %s)", actor.ID, appID, app.RecruiterID)
		return nil, ErrForbidden
	}

	target, ok := parseTargetStatus(status)
	if !ok {
		return nil, fmt.Errorf("%w: status must be one of Reviewed, Interviewing, Rejected, Accepted", ErrValidation)
	}

	if target == app.Status {
		return app, nil
	}

	if !isValidStatusTransition(app.Status, target) {
		log.Printf("UpdateApplicationStatus: Rejected transition %s -> %s for application %s", app.Status, target, appID)
		return nil, fmt.Errorf("%w: cannot move from %s to %s", ErrInvalidTransition, app.Status, target)
	}

	updated, err := s.appRepo.UpdateStatus(ctx, appID, app.Status, target, actor.ID)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("updating status of application %s", appID))
	}

	log.Printf("Application %s moved %s -> %s by user %s", appID, app.Status, target, actor.ID)
	return updated, nil
}

// History returns the status events of an application, oldest first.
func (s *applicationService) History(ctx context.Context, appID uuid.UUID, actor *models.User) ([]models.StatusEvent, error) {
	app, err := s.appRepo.GetByID(ctx, appID)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("fetching application %s", appID))
	}
	if !canManageApplication(actor, app) {
		return nil, ErrForbidden
	}

	events, err := s.appRepo.ListStatusEvents(ctx, appID)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("listing status events of application %s", appID))
	}
	return events, nil
}
