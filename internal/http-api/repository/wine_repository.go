package repository

import (
	"context"
	"fmt"

	"winecellar/internal/http-api/models"

	"gorm.io/gorm"
)

// ratingAggregates joins each wine with the exact aggregate of its
// rating rows, so average_rating and ratings_count are recomputed on
// every read instead of being maintained by writes.
const ratingAggregates = `LEFT JOIN (
	SELECT wine_id, AVG(value) AS average_rating, COUNT(*) AS ratings_count
	FROM ratings GROUP BY wine_id
) wine_ratings ON wine_ratings.wine_id = wines.id`

const wineColumns = "wines.*, COALESCE(wine_ratings.average_rating, 0) AS average_rating, COALESCE(wine_ratings.ratings_count, 0) AS ratings_count"

type WineRepository interface {
	Search(ctx context.Context, query string, sort SortKey) ([]models.Wine, error)
	GetByID(ctx context.Context, id string) (*models.Wine, error)
	ListByProducer(ctx context.Context, producerID string) ([]models.Wine, error)
	Create(ctx context.Context, w *models.Wine) error
}

type wineRepository struct {
	db *gorm.DB
}

func NewWineRepository(db *gorm.DB) WineRepository {
	return &wineRepository{db: db}
}

// Search performs a case-insensitive substring match of query against
// name, country, origin, grape and type (OR across fields). An empty
// query matches every wine.
func (r *wineRepository) Search(ctx context.Context, query string, sort SortKey) ([]models.Wine, error) {
	list := make([]models.Wine, 0)
	pattern := "%" + escapeLike(query) + "%"

	err := r.db.WithContext(ctx).
		Model(&models.Wine{}).
		Select(wineColumns).
		Joins(ratingAggregates).
		Where("wines.name ILIKE ? OR wines.country ILIKE ? OR wines.origin ILIKE ? OR wines.grape ILIKE ? OR wines.type ILIKE ?",
			pattern, pattern, pattern, pattern, pattern).
		Preload("Producer").
		Order(sort.orderClause()).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("search wines: %w", err)
	}
	return list, nil
}

func (r *wineRepository) GetByID(ctx context.Context, id string) (*models.Wine, error) {
	var w models.Wine
	err := r.db.WithContext(ctx).
		Model(&models.Wine{}).
		Select(wineColumns).
		Joins(ratingAggregates).
		Preload("Producer").
		First(&w, "wines.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *wineRepository) ListByProducer(ctx context.Context, producerID string) ([]models.Wine, error) {
	list := make([]models.Wine, 0)
	err := r.db.WithContext(ctx).
		Model(&models.Wine{}).
		Select(wineColumns).
		Joins(ratingAggregates).
		Where("wines.producer_id = ?", producerID).
		Order("wines.name ASC, wines.id ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("list wines by producer: %w", err)
	}
	return list, nil
}

func (r *wineRepository) Create(ctx context.Context, w *models.Wine) error {
	if err := r.db.WithContext(ctx).Create(w).Error; err != nil {
		return fmt.Errorf("create wine: %w", err)
	}
	return nil
}
