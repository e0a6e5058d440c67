package service

import (
	"context"
	"errors"

	"winecellar/internal/http-api/models"
	"winecellar/internal/http-api/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RatingService interface {
	Rate(ctx context.Context, userID string, wineID string, value int) (*models.Rating, error)
	ListByUser(ctx context.Context, userID string) ([]models.Rating, error)
}

type ratingService struct {
	repo     repository.RatingRepository
	wineRepo repository.WineRepository
}

func NewRatingService(repo repository.RatingRepository, wineRepo repository.WineRepository) RatingService {
	return &ratingService{repo: repo, wineRepo: wineRepo}
}

// Rate records the user's rating for a wine: first rate inserts, every
// later rate for the same pair updates the same row. The repository
// upsert is atomic, so concurrent calls cannot create a second record.
func (s *ratingService) Rate(ctx context.Context, userID string, wineID string, value int) (*models.Rating, error) {
	if value < 1 || value > 5 {
		return nil, ErrInvalidRating
	}
	if _, err := uuid.Parse(wineID); err != nil {
		return nil, ErrWineNotFound
	}
	if _, err := s.wineRepo.GetByID(ctx, wineID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWineNotFound
		}
		return nil, storageErr(err)
	}

	rating := &models.Rating{UserID: userID, WineID: wineID, Value: value}
	if err := s.repo.Upsert(ctx, rating); err != nil {
		return nil, storageErr(err)
	}

	// Re-read: on the update path the upserted struct does not carry
	// the surviving row's id and timestamps.
	saved, err := s.repo.GetByUserAndWine(ctx, userID, wineID)
	if err != nil {
		return nil, storageErr(err)
	}
	return saved, nil
}

func (s *ratingService) ListByUser(ctx context.Context, userID string) ([]models.Rating, error) {
	list, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, storageErr(err)
	}
	return list, nil
}
