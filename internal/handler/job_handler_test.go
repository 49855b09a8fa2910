package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"jobboard/internal/auth"
	apperrors "jobboard/internal/errors"
	"jobboard/internal/model"
	"jobboard/internal/service"
)

// testValidator mirrors the router's CustomValidator for handler tests.
type testValidator struct {
	validator *validator.Validate
}

func (tv *testValidator) Validate(i interface{}) error {
	return tv.validator.Struct(i)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	return e
}

// MockJobService is a mock implementation of service.JobService.
type MockJobService struct {
	mock.Mock
}

func (m *MockJobService) CreateJob(ctx context.Context, fields service.JobFields, ownerID uint) (*model.Job, error) {
	args := m.Called(ctx, fields, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Job), args.Error(1)
}

func (m *MockJobService) GetJob(ctx context.Context, id uint) (*model.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Job), args.Error(1)
}

func (m *MockJobService) ListActiveJobs(ctx context.Context) ([]model.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Job), args.Error(1)
}

func (m *MockJobService) UpdateJob(ctx context.Context, id uint, fields service.JobFields, ownerID uint) error {
	args := m.Called(ctx, id, fields, ownerID)
	return args.Error(0)
}

func (m *MockJobService) DeleteJob(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockJobService) CanModify(job *model.Job, principal *model.User) bool {
	args := m.Called(job, principal)
	return args.Bool(0)
}

const jobBody = `{"job_title":"Engineer","job_company":"Acme","job_location":"Remote","job_description":"Build things"}`

func jobRequestContext(t *testing.T, method, body string, principal *model.User, id string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := newTestEcho()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	if principal != nil {
		c.Set(auth.ContextUserKey, principal)
	}
	return c, rec
}

func TestJobHandler_CreateJob(t *testing.T) {
	t.Run("owner comes from the principal", func(t *testing.T) {
		mockSvc := new(MockJobService)
		mockSvc.On("CreateJob", mock.Anything, mock.AnythingOfType("service.JobFields"), uint(7)).
			Return(&model.Job{ID: 1, Title: "Engineer", OwnerID: 7}, nil)

		h := NewJobHandler(mockSvc)
		c, rec := jobRequestContext(t, http.MethodPost, jobBody, &model.User{ID: 7}, "")

		assert.NoError(t, h.CreateJob(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var created model.Job
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.Equal(t, uint(7), created.OwnerID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing required fields", func(t *testing.T) {
		h := NewJobHandler(new(MockJobService))
		c, _ := jobRequestContext(t, http.MethodPost, `{"job_title":"Engineer"}`, &model.User{ID: 7}, "")

		err := h.CreateJob(c)
		he, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusUnprocessableEntity, he.Code)
	})

	t.Run("bad date format", func(t *testing.T) {
		h := NewJobHandler(new(MockJobService))
		body := `{"job_title":"Engineer","job_company":"Acme","job_location":"Remote","job_description":"Build things","job_date_posted":"01/02/2026"}`
		c, _ := jobRequestContext(t, http.MethodPost, body, &model.User{ID: 7}, "")

		err := h.CreateJob(c)
		he, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusUnprocessableEntity, he.Code)
	})
}

func TestJobHandler_GetJob(t *testing.T) {
	t.Run("returns inactive job", func(t *testing.T) {
		mockSvc := new(MockJobService)
		mockSvc.On("GetJob", mock.Anything, uint(3)).Return(&model.Job{ID: 3, IsActive: false}, nil)

		h := NewJobHandler(mockSvc)
		c, rec := jobRequestContext(t, http.MethodGet, "", nil, "3")

		assert.NoError(t, h.GetJob(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing job", func(t *testing.T) {
		mockSvc := new(MockJobService)
		mockSvc.On("GetJob", mock.Anything, uint(99)).Return(nil, apperrors.ErrJobNotFound)

		h := NewJobHandler(mockSvc)
		c, _ := jobRequestContext(t, http.MethodGet, "", nil, "99")

		err := h.GetJob(c)
		he, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusNotFound, he.Code)
	})
}

// Listing filters on the active flag while get-by-id does not; both sides of
// that asymmetry are asserted here.
func TestJobHandler_ListJobs_OnlyActive(t *testing.T) {
	mockSvc := new(MockJobService)
	mockSvc.On("ListActiveJobs", mock.Anything).Return([]model.Job{
		{ID: 1, Title: "Engineer", IsActive: true},
	}, nil)

	h := NewJobHandler(mockSvc)
	c, rec := jobRequestContext(t, http.MethodGet, "", nil, "")

	assert.NoError(t, h.ListJobs(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var jobs []model.Job
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &jobs))
	assert.Len(t, jobs, 1)
	for _, job := range jobs {
		assert.True(t, job.IsActive)
	}
}

func TestJobHandler_UpdateJob(t *testing.T) {
	job := &model.Job{ID: 1, Title: "Engineer", OwnerID: 5}

	t.Run("owner can update", func(t *testing.T) {
		principal := &model.User{ID: 5}
		mockSvc := new(MockJobService)
		mockSvc.On("GetJob", mock.Anything, uint(1)).Return(job, nil)
		mockSvc.On("CanModify", job, principal).Return(true)
		mockSvc.On("UpdateJob", mock.Anything, uint(1), mock.AnythingOfType("service.JobFields"), uint(5)).Return(nil)

		h := NewJobHandler(mockSvc)
		c, rec := jobRequestContext(t, http.MethodPut, jobBody, principal, "1")

		assert.NoError(t, h.UpdateJob(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"detail": "Successfully updated data."}`, rec.Body.String())
		mockSvc.AssertExpectations(t)
	})

	t.Run("non-owner rejected", func(t *testing.T) {
		principal := &model.User{ID: 6}
		mockSvc := new(MockJobService)
		mockSvc.On("GetJob", mock.Anything, uint(1)).Return(job, nil)
		mockSvc.On("CanModify", job, principal).Return(false)

		h := NewJobHandler(mockSvc)
		c, _ := jobRequestContext(t, http.MethodPut, jobBody, principal, "1")

		err := h.UpdateJob(c)
		he, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, he.Code)
		assert.Equal(t, "You are not authorized to update.", he.Message)
	})

	t.Run("superuser can update any job", func(t *testing.T) {
		principal := &model.User{ID: 6, IsSuperuser: true}
		mockSvc := new(MockJobService)
		mockSvc.On("GetJob", mock.Anything, uint(1)).Return(job, nil)
		mockSvc.On("CanModify", job, principal).Return(true)
		mockSvc.On("UpdateJob", mock.Anything, uint(1), mock.AnythingOfType("service.JobFields"), uint(6)).Return(nil)

		h := NewJobHandler(mockSvc)
		c, rec := jobRequestContext(t, http.MethodPut, jobBody, principal, "1")

		assert.NoError(t, h.UpdateJob(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing job", func(t *testing.T) {
		mockSvc := new(MockJobService)
		mockSvc.On("GetJob", mock.Anything, uint(99)).Return(nil, apperrors.ErrJobNotFound)

		h := NewJobHandler(mockSvc)
		c, _ := jobRequestContext(t, http.MethodPut, jobBody, &model.User{ID: 5}, "99")

		err := h.UpdateJob(c)
		he, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusNotFound, he.Code)
	})
}

func TestJobHandler_DeleteJob(t *testing.T) {
	job := &model.Job{ID: 1, Title: "Engineer", OwnerID: 5}

	t.Run("owner can delete", func(t *testing.T) {
		principal := &model.User{ID: 5}
		mockSvc := new(MockJobService)
		mockSvc.On("GetJob", mock.Anything, uint(1)).Return(job, nil)
		mockSvc.On("CanModify", job, principal).Return(true)
		mockSvc.On("DeleteJob", mock.Anything, uint(1)).Return(nil)

		h := NewJobHandler(mockSvc)
		c, rec := jobRequestContext(t, http.MethodDelete, "", principal, "1")

		assert.NoError(t, h.DeleteJob(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"msg": "Job successfully deleted."}`, rec.Body.String())
		mockSvc.AssertExpectations(t)
	})

	t.Run("non-owner rejected", func(t *testing.T) {
		principal := &model.User{ID: 6}
		mockSvc := new(MockJobService)
		mockSvc.On("GetJob", mock.Anything, uint(1)).Return(job, nil)
		mockSvc.On("CanModify", job, principal).Return(false)

		h := NewJobHandler(mockSvc)
		c, _ := jobRequestContext(t, http.MethodDelete, "", principal, "1")

		err := h.DeleteJob(c)
		he, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, he.Code)
		assert.Equal(t, "You are not permitted !", he.Message)
	})

	t.Run("missing job", func(t *testing.T) {
		mockSvc := new(MockJobService)
		mockSvc.On("GetJob", mock.Anything, uint(99)).Return(nil, apperrors.ErrJobNotFound)

		h := NewJobHandler(mockSvc)
		c, _ := jobRequestContext(t, http.MethodDelete, "", &model.User{ID: 5}, "99")

		err := h.DeleteJob(c)
		he, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusNotFound, he.Code)
	})
}
