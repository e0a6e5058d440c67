package repository

import (
	"context"
	"fmt"

	"winecellar/internal/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavoriteRepository interface {
	Add(ctx context.Context, userID string, wineID string) error
	Remove(ctx context.Context, userID string, wineID string) error
	ListWines(ctx context.Context, userID string) ([]models.Wine, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Add inserts the membership row; ON CONFLICT DO NOTHING makes a
// repeated add a no-op instead of a duplicate or an error.
func (r *favoriteRepository) Add(ctx context.Context, userID string, wineID string) error {
	fav := &models.FavoriteWine{UserID: userID, WineID: wineID}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "wine_id"}},
			DoNothing: true,
		}).
		Create(fav).Error
	if err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}
	return nil
}

// Remove deletes the membership row. Removing an absent pair affects
// zero rows, which still counts as success.
func (r *favoriteRepository) Remove(ctx context.Context, userID string, wineID string) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND wine_id = ?", userID, wineID).
		Delete(&models.FavoriteWine{}).Error
	if err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	return nil
}

// ListWines resolves the membership rows into full wine records in the
// order they were favorited.
func (r *favoriteRepository) ListWines(ctx context.Context, userID string) ([]models.Wine, error) {
	list := make([]models.Wine, 0)
	err := r.db.WithContext(ctx).
		Model(&models.Wine{}).
		Select(wineColumns).
		Joins(ratingAggregates).
		Joins("JOIN favorite_wines ON favorite_wines.wine_id = wines.id").
		Where("favorite_wines.user_id = ?", userID).
		Preload("Producer").
		Order("favorite_wines.added_at ASC, favorite_wines.id ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return list, nil
}
