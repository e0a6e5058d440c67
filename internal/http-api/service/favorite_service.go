package service

import (
	"context"
	"errors"

	"winecellar/internal/http-api/models"
	"winecellar/internal/http-api/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FavoriteService interface {
	List(ctx context.Context, userID string) ([]models.Wine, error)
	Add(ctx context.Context, userID string, wineID string) (*models.Wine, error)
	Remove(ctx context.Context, userID string, wineID string) error
}

type favoriteService struct {
	repo     repository.FavoriteRepository
	wineRepo repository.WineRepository
}

func NewFavoriteService(repo repository.FavoriteRepository, wineRepo repository.WineRepository) FavoriteService {
	return &favoriteService{repo: repo, wineRepo: wineRepo}
}

func (s *favoriteService) List(ctx context.Context, userID string) ([]models.Wine, error) {
	list, err := s.repo.ListWines(ctx, userID)
	if err != nil {
		return nil, storageErr(err)
	}
	return list, nil
}

// Add puts the wine into the user's favorites set and returns it.
// Adding a wine that is already a favorite changes nothing and still
// succeeds.
func (s *favoriteService) Add(ctx context.Context, userID string, wineID string) (*models.Wine, error) {
	if _, err := uuid.Parse(wineID); err != nil {
		return nil, ErrWineNotFound
	}
	wine, err := s.wineRepo.GetByID(ctx, wineID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWineNotFound
		}
		return nil, storageErr(err)
	}
	if err := s.repo.Add(ctx, userID, wineID); err != nil {
		return nil, storageErr(err)
	}
	return wine, nil
}

// Remove drops the wine from the favorites set. Removing an id that is
// not a member, or not even a well-formed id, is a no-op success.
func (s *favoriteService) Remove(ctx context.Context, userID string, wineID string) error {
	if _, err := uuid.Parse(wineID); err != nil {
		return nil
	}
	if err := s.repo.Remove(ctx, userID, wineID); err != nil {
		return storageErr(err)
	}
	return nil
}
