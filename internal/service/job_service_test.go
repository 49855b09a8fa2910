package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "jobboard/internal/errors"
	"jobboard/internal/model"
)

// MockJobRepository is a mock implementation of JobRepository.
type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) Create(ctx context.Context, job *model.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockJobRepository) Update(ctx context.Context, job *model.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockJobRepository) FindByID(ctx context.Context, id uint) (*model.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Job), args.Error(1)
}

func (m *MockJobRepository) ListActive(ctx context.Context) ([]model.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Job), args.Error(1)
}

func (m *MockJobRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestJobService_CreateJob(t *testing.T) {
	t.Run("date posted defaults to today", func(t *testing.T) {
		mockRepo := new(MockJobRepository)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Job")).Return(nil)

		service := NewJobService(mockRepo)
		job, err := service.CreateJob(context.Background(), JobFields{
			Title:       "Engineer",
			Company:     "Acme",
			Location:    "Remote",
			Description: "Build things",
		}, 7)

		assert.NoError(t, err)
		assert.Equal(t, uint(7), job.OwnerID)
		assert.True(t, job.IsActive)
		assert.False(t, job.DatePosted.IsZero())
		assert.Equal(t, time.Now().UTC().Truncate(24*time.Hour), job.DatePosted)
		mockRepo.AssertExpectations(t)
	})

	t.Run("explicit date posted is kept", func(t *testing.T) {
		mockRepo := new(MockJobRepository)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Job")).Return(nil)

		posted := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		service := NewJobService(mockRepo)
		job, err := service.CreateJob(context.Background(), JobFields{
			Title:       "Engineer",
			Company:     "Acme",
			Location:    "Remote",
			Description: "Build things",
			DatePosted:  posted,
		}, 7)

		assert.NoError(t, err)
		assert.Equal(t, posted, job.DatePosted)
	})
}

func TestJobService_GetJob(t *testing.T) {
	t.Run("inactive jobs are still returned by id", func(t *testing.T) {
		mockRepo := new(MockJobRepository)
		mockRepo.On("FindByID", mock.Anything, uint(3)).Return(&model.Job{ID: 3, IsActive: false}, nil)

		service := NewJobService(mockRepo)
		job, err := service.GetJob(context.Background(), 3)
		assert.NoError(t, err)
		assert.False(t, job.IsActive)
	})

	t.Run("missing job", func(t *testing.T) {
		mockRepo := new(MockJobRepository)
		mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		service := NewJobService(mockRepo)
		_, err := service.GetJob(context.Background(), 99)
		assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
	})
}

func TestJobService_UpdateJob(t *testing.T) {
	t.Run("fields replaced and owner re-stamped from principal", func(t *testing.T) {
		mockRepo := new(MockJobRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.Job{
			ID:      1,
			Title:   "Old title",
			OwnerID: 5,
		}, nil)
		mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(job *model.Job) bool {
			return job.Title == "New title" && job.OwnerID == 9
		})).Return(nil)

		service := NewJobService(mockRepo)
		err := service.UpdateJob(context.Background(), 1, JobFields{
			Title:       "New title",
			Company:     "Acme",
			Location:    "Remote",
			Description: "Build things",
		}, 9)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing job", func(t *testing.T) {
		mockRepo := new(MockJobRepository)
		mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		service := NewJobService(mockRepo)
		err := service.UpdateJob(context.Background(), 99, JobFields{}, 9)
		assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
	})
}

func TestJobService_DeleteJob(t *testing.T) {
	t.Run("deletes regardless of active flag", func(t *testing.T) {
		mockRepo := new(MockJobRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.Job{ID: 1, IsActive: false}, nil)
		mockRepo.On("Delete", mock.Anything, uint(1)).Return(nil)

		service := NewJobService(mockRepo)
		assert.NoError(t, service.DeleteJob(context.Background(), 1))
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing job", func(t *testing.T) {
		mockRepo := new(MockJobRepository)
		mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		service := NewJobService(mockRepo)
		assert.ErrorIs(t, service.DeleteJob(context.Background(), 99), apperrors.ErrJobNotFound)
	})
}

func TestJobService_CanModify(t *testing.T) {
	service := NewJobService(new(MockJobRepository))
	job := &model.Job{ID: 1, OwnerID: 5}

	tests := []struct {
		name      string
		principal *model.User
		want      bool
	}{
		{name: "owner", principal: &model.User{ID: 5}, want: true},
		{name: "non-owner", principal: &model.User{ID: 6}, want: false},
		{name: "superuser non-owner", principal: &model.User{ID: 6, IsSuperuser: true}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.CanModify(job, tt.principal))
		})
	}
}
