package repositories

import (
	"context"
	"errors"

	"github.com/mica-edu/assessment-backend/internal/models"
	"gorm.io/gorm"
)

// ===== SHARED FILTER STRUCTS =====

type QuestionFilters struct {
	Grade      *string                 `json:"grade"`
	TestType   *models.TestType        `json:"test_type"`
	Type       *models.QuestionType    `json:"type"`
	Difficulty *models.DifficultyLevel `json:"difficulty"`
	CategoryID *uint                   `json:"category_id"`
	Limit      int                     `json:"limit"`
}

// QuestionCounts is the aggregate summary over the question store.
type QuestionCounts struct {
	Total            int64 `json:"total"`
	Sample           int64 `json:"sample"`
	Live             int64 `json:"live"`
	GradeLevels      int64 `json:"gradeLevels"`
	QuestionTypes    int64 `json:"questionTypes"`
	DifficultyLevels int64 `json:"difficultyLevels"`
}

// ===== REPOSITORY INTERFACES =====

// CategoryRepository interface for test category operations
type CategoryRepository interface {
	Create(ctx context.Context, category *models.TestCategory) error
	List(ctx context.Context) ([]*models.TestCategory, error)
	GetBySlug(ctx context.Context, slug string) (*models.TestCategory, error)
	ExistsByNameOrSlug(ctx context.Context, name, slug string) (bool, error)
}

// QuestionRepository interface for question-specific operations
type QuestionRepository interface {
	Create(ctx context.Context, question *models.Question) error
	GetByID(ctx context.Context, id uint) (*models.Question, error)
	Update(ctx context.Context, question *models.Question) error
	Delete(ctx context.Context, id uint) error

	List(ctx context.Context, filters QuestionFilters) ([]*models.Question, error)
	Count(ctx context.Context, categoryID *uint) (*QuestionCounts, error)
}

// ResultRepository interface for the student result ledger
type ResultRepository interface {
	Create(ctx context.Context, result *models.StudentResult) error
	GetByRollNo(ctx context.Context, rollNo string) (*models.StudentResult, error)
	List(ctx context.Context, categoryID *uint) ([]*models.StudentResult, error)
}

// Repository aggregates all repositories behind one handle.
type Repository interface {
	Category() CategoryRepository
	Question() QuestionRepository
	Result() ResultRepository

	Ping(ctx context.Context) error
	Close() error
}

// ===== ERROR HELPERS =====

// IsNotFoundError reports whether err is the store's record-not-found error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsDuplicateKeyError reports whether err is a unique-constraint violation.
// The gorm error translator surfaces driver-level violations as
// gorm.ErrDuplicatedKey, which callers treat as the uniqueness backstop.
func IsDuplicateKeyError(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
