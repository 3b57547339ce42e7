package services

import (
	"context"
	"fmt"
	"log"

	"ats-api/internal/models"
	"ats-api/internal/storage"
	"ats-api/internal/transport/dto"

	"github.com/google/uuid"
)

type jobService struct {
	jobRepo storage.JobRepository
	cache   storage.JobListCache
}

// NewJobService creates a new instance of JobService. cache may be nil.
func NewJobService(jobRepo storage.JobRepository, cache storage.JobListCache) JobService {
	return &jobService{jobRepo: jobRepo, cache: cache}
}

func (s *jobService) ListJobs(ctx context.Context) ([]models.Job, error) {
	// The generation is read before the database so a concurrent write
	// invalidates whatever this call would cache.
	var generation int64
	if s.cache != nil {
		jobs, gen, ok := s.cache.Get(ctx)
		if ok {
			return jobs, nil
		}
		generation = gen
	}

	jobs, err := s.jobRepo.ListNewestFirst(ctx)
	if err != nil {
		log.Printf("JobService: Error listing jobs: %v", err)
		return nil, fmt.Errorf("internal error listing jobs: %w", err)
	}

	if s.cache != nil {
		s.cache.Set(ctx, generation, jobs)
	}
	return jobs, nil
}

func (s *jobService) GetJobByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("getting job %s", id))
	}
	return job, nil
}

func (s *jobService) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	jobType, err := NormalizeJobType(req.JobType)
	if err != nil {
		return nil, err
	}

	skills := req.RequiredSkills
	if skills == nil {
		skills = []string{}
	}

	job, err := s.jobRepo.Create(ctx, &models.Job{
		Title:          req.Title,
		Company:        req.Company,
		Location:       req.Location,
		Salary:         req.Salary,
		JobType:        jobType,
		Description:    req.Description,
		RequiredSkills: skills,
		PostedBy:       req.PostedBy,
	})
	if err != nil {
		log.Printf("JobService: Error creating job: %v", err)
		return nil, MapRepoError(err, "creating job")
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	log.Printf("JobService: Job %s created by %s", job.ID, job.PostedBy)
	return job, nil
}
