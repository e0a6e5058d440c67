package service

import (
	"context"

	"winecellar/internal/http-api/models"
	"winecellar/internal/http-api/repository"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByAccessToken(ctx context.Context, token string) (*models.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateAccessToken(ctx context.Context, userID string, token *string) error {
	args := m.Called(ctx, userID, token)
	return args.Error(0)
}

// MockWineRepository mocks the WineRepository interface
type MockWineRepository struct {
	mock.Mock
}

func (m *MockWineRepository) Search(ctx context.Context, query string, sort repository.SortKey) ([]models.Wine, error) {
	args := m.Called(ctx, query, sort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Wine), args.Error(1)
}

func (m *MockWineRepository) GetByID(ctx context.Context, id string) (*models.Wine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Wine), args.Error(1)
}

func (m *MockWineRepository) ListByProducer(ctx context.Context, producerID string) ([]models.Wine, error) {
	args := m.Called(ctx, producerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Wine), args.Error(1)
}

func (m *MockWineRepository) Create(ctx context.Context, w *models.Wine) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

// MockProducerRepository mocks the ProducerRepository interface
type MockProducerRepository struct {
	mock.Mock
}

func (m *MockProducerRepository) List(ctx context.Context, filter repository.ProducerFilter) ([]models.Producer, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Producer), args.Error(1)
}

func (m *MockProducerRepository) GetByID(ctx context.Context, id string) (*models.Producer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Producer), args.Error(1)
}

func (m *MockProducerRepository) Create(ctx context.Context, p *models.Producer) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

// MockFavoriteRepository mocks the FavoriteRepository interface
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Add(ctx context.Context, userID string, wineID string) error {
	args := m.Called(ctx, userID, wineID)
	return args.Error(0)
}

func (m *MockFavoriteRepository) Remove(ctx context.Context, userID string, wineID string) error {
	args := m.Called(ctx, userID, wineID)
	return args.Error(0)
}

func (m *MockFavoriteRepository) ListWines(ctx context.Context, userID string) ([]models.Wine, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Wine), args.Error(1)
}

// MockRatingRepository mocks the RatingRepository interface
type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) Upsert(ctx context.Context, rating *models.Rating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *MockRatingRepository) GetByUserAndWine(ctx context.Context, userID string, wineID string) (*models.Rating, error) {
	args := m.Called(ctx, userID, wineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingRepository) ListByUser(ctx context.Context, userID string) ([]models.Rating, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rating), args.Error(1)
}
