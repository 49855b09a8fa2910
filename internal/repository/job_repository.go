package repository

import (
	"context"

	"gorm.io/gorm"

	"jobboard/internal/model"
)

// JobRepository defines job persistence operations. Ownership checks belong to
// the routing layer; nothing here re-verifies the acting principal.
type JobRepository interface {
	Create(ctx context.Context, job *model.Job) error
	Update(ctx context.Context, job *model.Job) error
	FindByID(ctx context.Context, id uint) (*model.Job, error)
	ListActive(ctx context.Context) ([]model.Job, error)
	Delete(ctx context.Context, id uint) error
}

type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository builds a GORM-backed job repository.
func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(ctx context.Context, job *model.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *jobRepository) Update(ctx context.Context, job *model.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

// FindByID looks up a job regardless of its active flag. Only the active-jobs
// listing filters on it.
func (r *jobRepository) FindByID(ctx context.Context, id uint) (*model.Job, error) {
	var job model.Job
	if err := r.db.WithContext(ctx).First(&job, id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) ListActive(ctx context.Context) ([]model.Job, error) {
	var jobs []model.Job
	if err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("id").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Job{}, id).Error
}
