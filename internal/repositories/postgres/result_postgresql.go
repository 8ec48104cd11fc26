package postgres

import (
	"context"

	"github.com/mica-edu/assessment-backend/internal/models"
	"github.com/mica-edu/assessment-backend/internal/repositories"
	"gorm.io/gorm"
)

type ResultPostgreSQL struct {
	db *gorm.DB
}

func NewResultPostgreSQL(db *gorm.DB) repositories.ResultRepository {
	return &ResultPostgreSQL{db: db}
}

func (r *ResultPostgreSQL) Create(ctx context.Context, result *models.StudentResult) error {
	return r.db.WithContext(ctx).Create(result).Error
}

func (r *ResultPostgreSQL) GetByRollNo(ctx context.Context, rollNo string) (*models.StudentResult, error) {
	var result models.StudentResult
	if err := r.db.WithContext(ctx).
		Where("roll_no = ?", rollNo).
		First(&result).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *ResultPostgreSQL) List(ctx context.Context, categoryID *uint) ([]*models.StudentResult, error) {
	var results []*models.StudentResult

	query := r.db.WithContext(ctx).Model(&models.StudentResult{})
	if categoryID != nil {
		query = query.Where("test_category_id = ?", *categoryID)
	}

	if err := query.
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}

	return results, nil
}
