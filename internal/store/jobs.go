package store

import (
	"github.com/nivaranatech/opsdesk-api/internal/domain/entity"
	"github.com/nivaranatech/opsdesk-api/internal/domain/enum"
	"github.com/nivaranatech/opsdesk-api/pkg/apperror"
)

// AddJob creates a service job with a generated id and Pending status
func (s *Store) AddJob(input entity.Job) entity.Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	input.ID = s.nextSequenceID(PrefixJob)
	if input.Status == "" {
		input.Status = enum.JobStatusPending
	}
	input.CreatedDate = s.now()
	input.IsActive = true

	s.jobs = append(s.jobs, input)
	return input
}

// UpdateJobStatus moves a job to a new status. CompletedDate and
// DeliveredDate are stamped the first time their status is reached and
// never overwritten on repeat calls.
func (s *Store) UpdateJobStatus(id string, status enum.JobStatus) (entity.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job := s.findJob(id)
	if job == nil {
		return entity.Job{}, apperror.NewNotFoundError("Job")
	}
	if !status.Valid() {
		return entity.Job{}, apperror.NewBadRequestError("Unknown job status")
	}

	now := s.now()
	job.Status = status
	switch status {
	case enum.JobStatusCompleted:
		if job.CompletedDate == nil {
			job.CompletedDate = &now
		}
	case enum.JobStatusDelivered:
		if job.DeliveredDate == nil {
			job.DeliveredDate = &now
		}
	}

	return *job, nil
}

// GetJob returns the job with the given id
func (s *Store) GetJob(id string) (entity.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job := s.findJob(id)
	if job == nil {
		return entity.Job{}, apperror.NewNotFoundError("Job")
	}
	return *job, nil
}

// ListJobs returns all jobs, optionally including inactive ones
func (s *Store) ListJobs(includeInactive bool) []entity.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		if !includeInactive && !j.IsActive {
			continue
		}
		out = append(out, j)
	}
	return out
}

// DeactivateJob soft-deletes a job
func (s *Store) DeactivateJob(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	job := s.findJob(id)
	if job == nil {
		return apperror.NewNotFoundError("Job")
	}
	job.IsActive = false
	return nil
}

func (s *Store) findJob(id string) *entity.Job {
	for i := range s.jobs {
		if s.jobs[i].ID == id {
			return &s.jobs[i]
		}
	}
	return nil
}
