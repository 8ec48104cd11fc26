package postgres

import (
	"context"

	"github.com/mica-edu/assessment-backend/internal/models"
	"github.com/mica-edu/assessment-backend/internal/repositories"
	"gorm.io/gorm"
)

type QuestionPostgreSQL struct {
	db *gorm.DB
}

func NewQuestionPostgreSQL(db *gorm.DB) repositories.QuestionRepository {
	return &QuestionPostgreSQL{db: db}
}

func (q *QuestionPostgreSQL) Create(ctx context.Context, question *models.Question) error {
	return q.db.WithContext(ctx).Create(question).Error
}

func (q *QuestionPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Question, error) {
	var question models.Question
	if err := q.db.WithContext(ctx).
		Preload("TestCategory").
		First(&question, id).Error; err != nil {
		return nil, err
	}

	return &question, nil
}

func (q *QuestionPostgreSQL) Update(ctx context.Context, question *models.Question) error {
	// Save writes every column so cleared cross-type fields are persisted as NULL
	return q.db.WithContext(ctx).Save(question).Error
}

func (q *QuestionPostgreSQL) Delete(ctx context.Context, id uint) error {
	res := q.db.WithContext(ctx).Delete(&models.Question{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (q *QuestionPostgreSQL) List(ctx context.Context, filters repositories.QuestionFilters) ([]*models.Question, error) {
	var questions []*models.Question

	query := q.db.WithContext(ctx).Model(&models.Question{})
	query = applyQuestionFilters(query, filters)

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}

	if err := query.
		Order("grade ASC").
		Order("created_at DESC").
		Preload("TestCategory").
		Find(&questions).Error; err != nil {
		return nil, err
	}

	return questions, nil
}

func (q *QuestionPostgreSQL) Count(ctx context.Context, categoryID *uint) (*repositories.QuestionCounts, error) {
	counts := &repositories.QuestionCounts{}

	base := func() *gorm.DB {
		query := q.db.WithContext(ctx).Model(&models.Question{})
		if categoryID != nil {
			query = query.Where("test_category_id = ?", *categoryID)
		}
		return query
	}

	if err := base().Count(&counts.Total).Error; err != nil {
		return nil, err
	}
	if err := base().Where("test_type = ?", models.TestTypeSample).Count(&counts.Sample).Error; err != nil {
		return nil, err
	}
	if err := base().Where("test_type = ?", models.TestTypeLive).Count(&counts.Live).Error; err != nil {
		return nil, err
	}
	if err := base().Distinct("grade").Count(&counts.GradeLevels).Error; err != nil {
		return nil, err
	}
	if err := base().Distinct("type").Count(&counts.QuestionTypes).Error; err != nil {
		return nil, err
	}
	if err := base().Distinct("difficulty").Count(&counts.DifficultyLevels).Error; err != nil {
		return nil, err
	}

	return counts, nil
}

func applyQuestionFilters(query *gorm.DB, filters repositories.QuestionFilters) *gorm.DB {
	if filters.Grade != nil {
		query = query.Where("grade = ?", *filters.Grade)
	}
	if filters.TestType != nil {
		query = query.Where("test_type = ?", *filters.TestType)
	}
	if filters.Type != nil {
		query = query.Where("type = ?", *filters.Type)
	}
	if filters.Difficulty != nil {
		query = query.Where("difficulty = ?", *filters.Difficulty)
	}
	if filters.CategoryID != nil {
		query = query.Where("test_category_id = ?", *filters.CategoryID)
	}
	return query
}
