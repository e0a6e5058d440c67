package repository

import (
	"context"
	"fmt"

	"winecellar/internal/http-api/models"

	"gorm.io/gorm"
)

// ProducerFilter holds the allowlisted query filters for producer
// listings. Unknown query params are ignored at the handler.
type ProducerFilter struct {
	Name    string
	Country string
}

type ProducerRepository interface {
	List(ctx context.Context, filter ProducerFilter) ([]models.Producer, error)
	GetByID(ctx context.Context, id string) (*models.Producer, error)
	Create(ctx context.Context, p *models.Producer) error
}

type producerRepository struct {
	db *gorm.DB
}

func NewProducerRepository(db *gorm.DB) ProducerRepository {
	return &producerRepository{db: db}
}

func (r *producerRepository) List(ctx context.Context, filter ProducerFilter) ([]models.Producer, error) {
	list := make([]models.Producer, 0)
	db := r.db.WithContext(ctx).Model(&models.Producer{})
	if filter.Name != "" {
		db = db.Where("name = ?", filter.Name)
	}
	if filter.Country != "" {
		db = db.Where("country = ?", filter.Country)
	}
	if err := db.Order("name ASC, id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list producers: %w", err)
	}
	return list, nil
}

func (r *producerRepository) GetByID(ctx context.Context, id string) (*models.Producer, error) {
	var p models.Producer
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *producerRepository) Create(ctx context.Context, p *models.Producer) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("create producer: %w", err)
	}
	return nil
}
