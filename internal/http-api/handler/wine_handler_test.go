package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"winecellar/internal/http-api/models"
	"winecellar/internal/http-api/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockWineService mocks the WineService interface
type MockWineService struct {
	mock.Mock
}

func (m *MockWineService) Search(ctx context.Context, query string, sort string) ([]models.Wine, error) {
	args := m.Called(ctx, query, sort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Wine), args.Error(1)
}

func (m *MockWineService) GetByID(ctx context.Context, id string) (*models.Wine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Wine), args.Error(1)
}

func TestSearchWinesEndpoint(t *testing.T) {
	mockWineService := new(MockWineService)
	h := NewWineHandler(mockWineService)
	router := setupRouter()
	h.RegisterRoutes(router.Group("/wines"))

	wines := []models.Wine{
		{ID: "wine-1", Name: "Clos des Brumes", AverageRating: 4.5, RatingsCount: 2},
	}
	mockWineService.On("Search", mock.Anything, "brumes", "average_rating_desc").Return(wines, nil)

	req, _ := http.NewRequest("GET", "/wines?query=brumes&sort=average_rating_desc", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []models.Wine
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Len(t, resp, 1)
	assert.Equal(t, 4.5, resp[0].AverageRating)
	mockWineService.AssertExpectations(t)
}

func TestSearchWinesEndpoint_NoMatchesIsEmptyList(t *testing.T) {
	mockWineService := new(MockWineService)
	h := NewWineHandler(mockWineService)
	router := setupRouter()
	h.RegisterRoutes(router.Group("/wines"))

	mockWineService.On("Search", mock.Anything, "zzzz", "").Return([]models.Wine{}, nil)

	req, _ := http.NewRequest("GET", "/wines?query=zzzz", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestGetWineEndpoint_NotFound(t *testing.T) {
	mockWineService := new(MockWineService)
	h := NewWineHandler(mockWineService)
	router := setupRouter()
	h.RegisterRoutes(router.Group("/wines"))

	mockWineService.On("GetByID", mock.Anything, "wine-404").Return(nil, service.ErrWineNotFound)

	req, _ := http.NewRequest("GET", "/wines/wine-404", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetWineEndpoint_StorageDown(t *testing.T) {
	mockWineService := new(MockWineService)
	h := NewWineHandler(mockWineService)
	router := setupRouter()
	h.RegisterRoutes(router.Group("/wines"))

	mockWineService.On("GetByID", mock.Anything, "wine-1").Return(nil, service.ErrStorageUnavailable)

	req, _ := http.NewRequest("GET", "/wines/wine-1", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "service unavailable", resp["error"])
}
