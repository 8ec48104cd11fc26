package postgres

import (
	"context"

	"github.com/mica-edu/assessment-backend/internal/models"
	"github.com/mica-edu/assessment-backend/internal/repositories"
	"gorm.io/gorm"
)

type CategoryPostgreSQL struct {
	db *gorm.DB
}

func NewCategoryPostgreSQL(db *gorm.DB) repositories.CategoryRepository {
	return &CategoryPostgreSQL{db: db}
}

func (c *CategoryPostgreSQL) Create(ctx context.Context, category *models.TestCategory) error {
	return c.db.WithContext(ctx).Create(category).Error
}

func (c *CategoryPostgreSQL) List(ctx context.Context) ([]*models.TestCategory, error) {
	var categories []*models.TestCategory
	if err := c.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&categories).Error; err != nil {
		return nil, err
	}

	return categories, nil
}

func (c *CategoryPostgreSQL) GetBySlug(ctx context.Context, slug string) (*models.TestCategory, error) {
	var category models.TestCategory
	if err := c.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&category).Error; err != nil {
		return nil, err
	}

	return &category, nil
}

func (c *CategoryPostgreSQL) ExistsByNameOrSlug(ctx context.Context, name, slug string) (bool, error) {
	var count int64
	if err := c.db.WithContext(ctx).
		Model(&models.TestCategory{}).
		Where("name = ? OR slug = ?", name, slug).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}
