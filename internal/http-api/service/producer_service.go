package service

import (
	"context"
	"errors"

	"winecellar/internal/http-api/models"
	"winecellar/internal/http-api/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProducerService interface {
	List(ctx context.Context, filter repository.ProducerFilter) ([]models.Producer, error)
	GetByID(ctx context.Context, id string) (*models.Producer, error)
	ListWines(ctx context.Context, producerID string) ([]models.Wine, error)
}

type producerService struct {
	repo     repository.ProducerRepository
	wineRepo repository.WineRepository
}

func NewProducerService(repo repository.ProducerRepository, wineRepo repository.WineRepository) ProducerService {
	return &producerService{repo: repo, wineRepo: wineRepo}
}

func (s *producerService) List(ctx context.Context, filter repository.ProducerFilter) ([]models.Producer, error) {
	list, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, storageErr(err)
	}
	return list, nil
}

// GetByID validates the id before touching storage: a malformed
// producer id is a client error, distinct from an absent producer.
func (s *producerService) GetByID(ctx context.Context, id string) (*models.Producer, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProducerNotFound
		}
		return nil, storageErr(err)
	}
	return p, nil
}

// ListWines returns the producer's wines. A producer with no wines
// yields an empty list, which is a success.
func (s *producerService) ListWines(ctx context.Context, producerID string) ([]models.Wine, error) {
	if _, err := s.GetByID(ctx, producerID); err != nil {
		return nil, err
	}
	list, err := s.wineRepo.ListByProducer(ctx, producerID)
	if err != nil {
		return nil, storageErr(err)
	}
	return list, nil
}
