package services

import (
	"context"
	"fmt"
	"log/slog"

	apperrors "github.com/mica-edu/assessment-backend/internal/errors"
	"github.com/mica-edu/assessment-backend/internal/events"
	"github.com/mica-edu/assessment-backend/internal/models"
	"github.com/mica-edu/assessment-backend/internal/repositories"
	"github.com/mica-edu/assessment-backend/internal/validator"
)

type CreateCategoryRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	CreatedBy   *string `json:"created_by"`
}

type categoryService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
}

func NewCategoryService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, publisher events.EventPublisher) CategoryService {
	return &categoryService{
		repo:      repo,
		logger:    logger,
		validator: v,
		publisher: publisher,
	}
}

func (s *categoryService) Create(ctx context.Context, req *CreateCategoryRequest) (*models.TestCategory, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "is required", nil)
	}
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, apperrors.ToValidationErrors(err)
	}

	categorySlug := models.SlugifyName(req.Name)

	exists, err := s.repo.Category().ExistsByNameOrSlug(ctx, req.Name, categorySlug)
	if err != nil {
		return nil, fmt.Errorf("failed to check category uniqueness: %w", err)
	}
	if exists {
		return nil, NewConflictError("test category", "name", req.Name)
	}

	category := &models.TestCategory{
		Name:        req.Name,
		Slug:        categorySlug,
		Description: req.Description,
		CreatedBy:   req.CreatedBy,
	}

	if err := s.repo.Category().Create(ctx, category); err != nil {
		// Two concurrent creates can both pass the pre-check; the unique
		// index decides, and the loser surfaces as a conflict.
		if repositories.IsDuplicateKeyError(err) {
			return nil, NewConflictError("test category", "name", req.Name)
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.logger.Info("Test category created", "category_id", category.ID, "slug", category.Slug)

	if err := s.publisher.Publish(ctx, events.EventCategoryCreated, events.CategoryCreatedEvent{
		CategoryID: category.ID,
		Name:       category.Name,
		Slug:       category.Slug,
	}); err != nil {
		s.logger.Warn("Failed to publish category.created event", "error", err)
	}

	return category, nil
}

func (s *categoryService) List(ctx context.Context) ([]*models.TestCategory, error) {
	categories, err := s.repo.Category().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *categoryService) GetBySlug(ctx context.Context, slug string) (*models.TestCategory, error) {
	category, err := s.repo.Category().GetBySlug(ctx, slug)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}
