package repository

import (
	"context"
	"fmt"

	"winecellar/internal/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepository interface {
	Upsert(ctx context.Context, rating *models.Rating) error
	GetByUserAndWine(ctx context.Context, userID string, wineID string) (*models.Rating, error)
	ListByUser(ctx context.Context, userID string) ([]models.Rating, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Upsert writes the rating in a single INSERT ... ON CONFLICT DO UPDATE
// backed by the unique (user_id, wine_id) index. Concurrent calls for
// the same pair therefore converge on one row holding the last value;
// there is no find-then-write window.
func (r *ratingRepository) Upsert(ctx context.Context, rating *models.Rating) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "wine_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(rating).Error
	if err != nil {
		return fmt.Errorf("upsert rating: %w", err)
	}
	return nil
}

func (r *ratingRepository) GetByUserAndWine(ctx context.Context, userID string, wineID string) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND wine_id = ?", userID, wineID).
		First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// ListByUser returns the user's ratings newest-first; the id tie-break
// keeps rows created in the same instant in a deterministic order.
func (r *ratingRepository) ListByUser(ctx context.Context, userID string) ([]models.Rating, error) {
	list := make([]models.Rating, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	return list, nil
}
