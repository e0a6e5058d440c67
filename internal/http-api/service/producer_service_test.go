package service

import (
	"context"
	"testing"

	"winecellar/internal/http-api/models"
	"winecellar/internal/http-api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

const testProducerID = "7c8d9e0f-1a2b-3c4d-5e6f-708192a3b4c5"

func TestListProducers_FilterPassedThrough(t *testing.T) {
	mockProducerRepo := new(MockProducerRepository)
	mockWineRepo := new(MockWineRepository)
	producerService := NewProducerService(mockProducerRepo, mockWineRepo)

	filter := repository.ProducerFilter{Country: "France"}
	stored := []models.Producer{{ID: testProducerID, Name: "Domaine de la Roche", Country: "France"}}
	mockProducerRepo.On("List", mock.Anything, filter).Return(stored, nil)

	list, err := producerService.List(context.Background(), filter)

	assert.NoError(t, err)
	assert.Len(t, list, 1)
	mockProducerRepo.AssertExpectations(t)
}

func TestGetProducer_MalformedID(t *testing.T) {
	mockProducerRepo := new(MockProducerRepository)
	mockWineRepo := new(MockWineRepository)
	producerService := NewProducerService(mockProducerRepo, mockWineRepo)

	producer, err := producerService.GetByID(context.Background(), "not-a-uuid")

	assert.ErrorIs(t, err, ErrInvalidID)
	assert.Nil(t, producer)
	mockProducerRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestGetProducer_NotFound(t *testing.T) {
	mockProducerRepo := new(MockProducerRepository)
	mockWineRepo := new(MockWineRepository)
	producerService := NewProducerService(mockProducerRepo, mockWineRepo)

	mockProducerRepo.On("GetByID", mock.Anything, testProducerID).Return(nil, gorm.ErrRecordNotFound)

	producer, err := producerService.GetByID(context.Background(), testProducerID)

	assert.ErrorIs(t, err, ErrProducerNotFound)
	assert.Nil(t, producer)
}

func TestListProducerWines_ProducerMustExist(t *testing.T) {
	mockProducerRepo := new(MockProducerRepository)
	mockWineRepo := new(MockWineRepository)
	producerService := NewProducerService(mockProducerRepo, mockWineRepo)

	mockProducerRepo.On("GetByID", mock.Anything, testProducerID).Return(nil, gorm.ErrRecordNotFound)

	list, err := producerService.ListWines(context.Background(), testProducerID)

	assert.ErrorIs(t, err, ErrProducerNotFound)
	assert.Nil(t, list)
	mockWineRepo.AssertNotCalled(t, "ListByProducer", mock.Anything, mock.Anything)
}

func TestListProducerWines_EmptyCellarIsFine(t *testing.T) {
	mockProducerRepo := new(MockProducerRepository)
	mockWineRepo := new(MockWineRepository)
	producerService := NewProducerService(mockProducerRepo, mockWineRepo)

	mockProducerRepo.On("GetByID", mock.Anything, testProducerID).Return(&models.Producer{ID: testProducerID}, nil)
	mockWineRepo.On("ListByProducer", mock.Anything, testProducerID).Return([]models.Wine{}, nil)

	list, err := producerService.ListWines(context.Background(), testProducerID)

	assert.NoError(t, err)
	assert.Empty(t, list)
	mockProducerRepo.AssertExpectations(t)
	mockWineRepo.AssertExpectations(t)
}
