package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/foodyy-service/internal/domain"
	"github.com/spec-kit/foodyy-service/internal/repository"
	apperrors "github.com/spec-kit/foodyy-service/pkg/util/errorutil"
)

// FoodService manages the catalog.
type FoodService struct {
	foods repository.FoodRepository
}

// NewFoodService builds the service.
func NewFoodService(foods repository.FoodRepository) *FoodService {
	return &FoodService{foods: foods}
}

// List returns the whole catalog.
func (s *FoodService) List(ctx context.Context) ([]domain.Food, error) {
	return s.foods.List(ctx)
}

// GetByID fetches one catalog item.
func (s *FoodService) GetByID(ctx context.Context, id int) (*domain.Food, error) {
	food, err := s.foods.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("food item", nil)
		}
		return nil, err
	}
	return food, nil
}

// Search returns items matching the keyword.
func (s *FoodService) Search(ctx context.Context, keyword string) ([]domain.Food, error) {
	return s.foods.Search(ctx, keyword)
}

// Create adds a catalog item.
func (s *FoodService) Create(ctx context.Context, food *domain.Food) (*domain.Food, error) {
	if food.Name == "" {
		return nil, apperrors.NewValidationError("food name required", nil)
	}
	if err := s.foods.Create(ctx, food); err != nil {
		return nil, err
	}
	return food, nil
}

// Update rewrites a catalog item, keeping the stored image when the update
// carries none.
func (s *FoodService) Update(ctx context.Context, food *domain.Food) (*domain.Food, error) {
	existing, err := s.GetByID(ctx, food.ID)
	if err != nil {
		return nil, err
	}
	if len(food.ImageData) == 0 {
		food.ImageName = existing.ImageName
		food.ImageType = existing.ImageType
		food.ImageData = existing.ImageData
	}
	if err := s.foods.Update(ctx, food); err != nil {
		return nil, err
	}
	return food, nil
}

// Delete removes a catalog item.
func (s *FoodService) Delete(ctx context.Context, id int) error {
	if err := s.foods.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("food item", nil)
		}
		return err
	}
	return nil
}
