package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "jobboard/internal/errors"
	"jobboard/internal/model"
	"jobboard/internal/repository"
)

// JobFields carries the client-settable fields of a job posting. The owner is
// never part of it; it always comes from the authenticated principal.
type JobFields struct {
	Title       string
	Company     string
	CompanyURL  string
	Location    string
	Description string
	DatePosted  time.Time
}

// JobService exposes job domain operations. Callers of UpdateJob and DeleteJob
// must verify ownership with CanModify first; the service does not re-check.
type JobService interface {
	CreateJob(ctx context.Context, fields JobFields, ownerID uint) (*model.Job, error)
	GetJob(ctx context.Context, id uint) (*model.Job, error)
	ListActiveJobs(ctx context.Context) ([]model.Job, error)
	UpdateJob(ctx context.Context, id uint, fields JobFields, ownerID uint) error
	DeleteJob(ctx context.Context, id uint) error
	CanModify(job *model.Job, principal *model.User) bool
}

type jobService struct {
	repo repository.JobRepository
}

// NewJobService builds a JobService.
func NewJobService(repo repository.JobRepository) JobService {
	return &jobService{repo: repo}
}

// CreateJob persists a new posting owned by ownerID. DatePosted defaults to
// the current date when not supplied.
func (s *jobService) CreateJob(ctx context.Context, fields JobFields, ownerID uint) (*model.Job, error) {
	datePosted := fields.DatePosted
	if datePosted.IsZero() {
		datePosted = today()
	}

	job := &model.Job{
		Title:       fields.Title,
		Company:     fields.Company,
		CompanyURL:  fields.CompanyURL,
		Location:    fields.Location,
		Description: fields.Description,
		DatePosted:  datePosted,
		IsActive:    true,
		OwnerID:     ownerID,
	}
	if err := s.repo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	return job, nil
}

// GetJob returns a job by id regardless of its active flag.
func (s *jobService) GetJob(ctx context.Context, id uint) (*model.Job, error) {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, err
	}
	return job, nil
}

func (s *jobService) ListActiveJobs(ctx context.Context) ([]model.Job, error) {
	return s.repo.ListActive(ctx)
}

// UpdateJob replaces the client-settable fields of a job. The owner id is
// re-stamped from the acting principal, never taken from the client.
func (s *jobService) UpdateJob(ctx context.Context, id uint, fields JobFields, ownerID uint) error {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrJobNotFound
		}
		return err
	}

	job.Title = fields.Title
	job.Company = fields.Company
	job.CompanyURL = fields.CompanyURL
	job.Location = fields.Location
	job.Description = fields.Description
	if !fields.DatePosted.IsZero() {
		job.DatePosted = fields.DatePosted
	}
	job.OwnerID = ownerID

	if err := s.repo.Update(ctx, job); err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	return nil
}

// DeleteJob removes a job regardless of its active flag.
func (s *jobService) DeleteJob(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrJobNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

// CanModify reports whether principal may mutate job: the owner or a superuser.
func (s *jobService) CanModify(job *model.Job, principal *model.User) bool {
	return job.OwnerID == principal.ID || principal.IsSuperuser
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
