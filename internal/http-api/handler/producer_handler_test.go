package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"winecellar/internal/http-api/models"
	"winecellar/internal/http-api/repository"
	"winecellar/internal/http-api/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProducerService mocks the ProducerService interface
type MockProducerService struct {
	mock.Mock
}

func (m *MockProducerService) List(ctx context.Context, filter repository.ProducerFilter) ([]models.Producer, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Producer), args.Error(1)
}

func (m *MockProducerService) GetByID(ctx context.Context, id string) (*models.Producer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Producer), args.Error(1)
}

func (m *MockProducerService) ListWines(ctx context.Context, producerID string) ([]models.Wine, error) {
	args := m.Called(ctx, producerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Wine), args.Error(1)
}

func TestListProducersEndpoint_CountryFilter(t *testing.T) {
	mockProducerService := new(MockProducerService)
	h := NewProducerHandler(mockProducerService)
	router := setupRouter()
	h.RegisterRoutes(router.Group("/producers"))

	filter := repository.ProducerFilter{Country: "France"}
	producers := []models.Producer{{ID: "prod-1", Name: "Domaine de la Roche", Country: "France"}}
	mockProducerService.On("List", mock.Anything, filter).Return(producers, nil)

	req, _ := http.NewRequest("GET", "/producers?country=France", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []models.Producer
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Len(t, resp, 1)
	mockProducerService.AssertExpectations(t)
}

func TestListProducersEndpoint_UnknownParamIgnored(t *testing.T) {
	mockProducerService := new(MockProducerService)
	h := NewProducerHandler(mockProducerService)
	router := setupRouter()
	h.RegisterRoutes(router.Group("/producers"))

	// region is not an allowlisted filter; the list comes back unfiltered.
	mockProducerService.On("List", mock.Anything, repository.ProducerFilter{}).
		Return([]models.Producer{}, nil)

	req, _ := http.NewRequest("GET", "/producers?region=Burgundy", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockProducerService.AssertExpectations(t)
}

func TestGetProducerEndpoint_MalformedID(t *testing.T) {
	mockProducerService := new(MockProducerService)
	h := NewProducerHandler(mockProducerService)
	router := setupRouter()
	h.RegisterRoutes(router.Group("/producers"))

	mockProducerService.On("GetByID", mock.Anything, "not-a-uuid").Return(nil, service.ErrInvalidID)

	req, _ := http.NewRequest("GET", "/producers/not-a-uuid", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListProducerWinesEndpoint_NotFound(t *testing.T) {
	mockProducerService := new(MockProducerService)
	h := NewProducerHandler(mockProducerService)
	router := setupRouter()
	h.RegisterRoutes(router.Group("/producers"))

	mockProducerService.On("ListWines", mock.Anything, "prod-404").Return(nil, service.ErrProducerNotFound)

	req, _ := http.NewRequest("GET", "/producers/prod-404/wines", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
