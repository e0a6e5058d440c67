package service

import (
	"context"
	"errors"

	"winecellar/internal/http-api/models"
	"winecellar/internal/http-api/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WineService interface {
	Search(ctx context.Context, query string, sort string) ([]models.Wine, error)
	GetByID(ctx context.Context, id string) (*models.Wine, error)
}

type wineService struct {
	repo repository.WineRepository
}

func NewWineService(repo repository.WineRepository) WineService {
	return &wineService{repo: repo}
}

// Search returns every wine matching the free-text query, in the order
// named by sort. An empty match set is a valid result, not an error.
func (s *wineService) Search(ctx context.Context, query string, sort string) ([]models.Wine, error) {
	list, err := s.repo.Search(ctx, query, repository.ParseSortKey(sort))
	if err != nil {
		return nil, storageErr(err)
	}
	return list, nil
}

func (s *wineService) GetByID(ctx context.Context, id string) (*models.Wine, error) {
	// A malformed id cannot name a wine, so it reads as absent.
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrWineNotFound
	}
	w, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWineNotFound
		}
		return nil, storageErr(err)
	}
	return w, nil
}
