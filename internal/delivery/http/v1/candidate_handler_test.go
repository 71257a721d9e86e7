package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-candidate-backend/internal/delivery/http/middleware"
	"go-candidate-backend/internal/delivery/http/response"
	v1 "go-candidate-backend/internal/delivery/http/v1"
	"go-candidate-backend/internal/domain"
	"go-candidate-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCandidateUsecase struct {
	mock.Mock
}

func (m *MockCandidateUsecase) Create(ctx context.Context, input *domain.CandidateInput) (*domain.Candidate, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateUsecase) List(ctx context.Context, caller domain.UserIdentity, searchQuery string) ([]domain.Candidate, error) {
	args := m.Called(ctx, caller, searchQuery)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Candidate), args.Error(1)
}

func (m *MockCandidateUsecase) GenerateReport(ctx context.Context, caller domain.UserIdentity) error {
	return m.Called(ctx, caller).Error(0)
}

func (m *MockCandidateUsecase) GetByID(ctx context.Context, id uuid.UUID) (*domain.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateUsecase) Update(ctx context.Context, id uuid.UUID, input *domain.CandidateInput) error {
	return m.Called(ctx, id, input).Error(0)
}

func (m *MockCandidateUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func newTestRouter(uc domain.CandidateUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	v1.NewCandidateHandler(r.Group("/v1"), uc)
	return r
}

func doRequest(r *gin.Engine, method, target string, body []byte) (*httptest.ResponseRecorder, response.Response) {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	var envelope response.Response
	_ = json.Unmarshal(rr.Body.Bytes(), &envelope)
	return rr, envelope
}

func TestCandidateHandlerCreate(t *testing.T) {
	mockUC := new(MockCandidateUsecase)
	r := newTestRouter(mockUC)

	created := &domain.Candidate{ID: uuid.New(), FirstName: "Ana", City: "Austin"}
	mockUC.On("Create", mock.Anything, mock.AnythingOfType("*domain.CandidateInput")).Return(created, nil)

	body := []byte(`{
		"first_name": "Ana", "last_name": "Lee", "email": "ana@x.com",
		"career_level": "Senior", "job_major": "CS", "years_of_experience": 5,
		"degree_type": "BSc", "skills": ["Go"], "nationality": "US",
		"city": "Austin", "salary": 120000.0, "gender": "female"
	}`)

	rr, envelope := doRequest(r, http.MethodPost, "/v1/candidates", body)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, envelope.Success)
	assert.NotEmpty(t, envelope.RequestID)

	data := envelope.Data.(map[string]interface{})
	assert.Equal(t, created.ID.String(), data["id"])
}

func TestCandidateHandlerCreateMalformedBody(t *testing.T) {
	mockUC := new(MockCandidateUsecase)
	r := newTestRouter(mockUC)

	rr, envelope := doRequest(r, http.MethodPost, "/v1/candidates", []byte(`{not json`))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, envelope.Success)
	mockUC.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCandidateHandlerListUnauthorized(t *testing.T) {
	mockUC := new(MockCandidateUsecase)
	r := newTestRouter(mockUC)

	mockUC.On("List", mock.Anything, mock.Anything, "").
		Return(nil, apperror.Unauthorized("Unauthorized user"))

	rr, envelope := doRequest(r, http.MethodGet, "/v1/candidates?first_name=No&last_name=Body&email=no@x.com", nil)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, envelope.Success)
	assert.Equal(t, "Unauthorized user", envelope.Message)
}

func TestCandidateHandlerListPassesCallerAndSearch(t *testing.T) {
	mockUC := new(MockCandidateUsecase)
	r := newTestRouter(mockUC)

	caller := domain.UserIdentity{FirstName: "Bob", LastName: "Smith", Email: "bob@x.com"}
	mockUC.On("List", mock.Anything, caller, "Austin").Return([]domain.Candidate{}, nil)

	rr, _ := doRequest(r, http.MethodGet, "/v1/candidates?first_name=Bob&last_name=Smith&email=bob@x.com&search_query=Austin", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	mockUC.AssertExpectations(t)
}

func TestCandidateHandlerGetByID(t *testing.T) {
	mockUC := new(MockCandidateUsecase)
	r := newTestRouter(mockUC)

	t.Run("invalid uuid is a client error", func(t *testing.T) {
		rr, _ := doRequest(r, http.MethodGet, "/v1/candidates/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockUC.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("unknown id is NotFound", func(t *testing.T) {
		id := uuid.New()
		mockUC.On("GetByID", mock.Anything, id).Return(nil, apperror.NotFound("Candidate not found"))

		rr, envelope := doRequest(r, http.MethodGet, "/v1/candidates/"+id.String(), nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Candidate not found", envelope.Message)
	})
}

func TestCandidateHandlerGenerateReport(t *testing.T) {
	mockUC := new(MockCandidateUsecase)
	r := newTestRouter(mockUC)

	caller := domain.UserIdentity{FirstName: "Bob", LastName: "Smith", Email: "bob@x.com"}
	mockUC.On("GenerateReport", mock.Anything, caller).Return(nil)

	rr, envelope := doRequest(r, http.MethodGet, "/v1/candidates/generate-report?first_name=Bob&last_name=Smith&email=bob@x.com", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Report generated successfully", envelope.Message)
}

func TestCandidateHandlerDelete(t *testing.T) {
	mockUC := new(MockCandidateUsecase)
	r := newTestRouter(mockUC)

	id := uuid.New()
	mockUC.On("Delete", mock.Anything, id).Return(nil)

	rr, envelope := doRequest(r, http.MethodDelete, "/v1/candidates/"+id.String(), nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Candidate Deleted successfully", envelope.Message)
}
