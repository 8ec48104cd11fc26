package postgres

import (
	"context"

	"github.com/mica-edu/assessment-backend/internal/repositories"
	"gorm.io/gorm"
)

type postgresRepository struct {
	db       *gorm.DB
	category repositories.CategoryRepository
	question repositories.QuestionRepository
	result   repositories.ResultRepository
}

// NewRepository wires the gorm-backed repositories behind the aggregate handle.
func NewRepository(db *gorm.DB) repositories.Repository {
	return &postgresRepository{
		db:       db,
		category: NewCategoryPostgreSQL(db),
		question: NewQuestionPostgreSQL(db),
		result:   NewResultPostgreSQL(db),
	}
}

func (r *postgresRepository) Category() repositories.CategoryRepository {
	return r.category
}

func (r *postgresRepository) Question() repositories.QuestionRepository {
	return r.question
}

func (r *postgresRepository) Result() repositories.ResultRepository {
	return r.result
}

func (r *postgresRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *postgresRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
