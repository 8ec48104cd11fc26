package services

import (
	"context"

	"github.com/mica-edu/assessment-backend/internal/models"
	"github.com/mica-edu/assessment-backend/internal/repositories"
	"github.com/stretchr/testify/mock"
)

// MockCategoryRepository is a mock implementation of CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *models.TestCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]*models.TestCategory, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.TestCategory), args.Error(1)
}

func (m *MockCategoryRepository) GetBySlug(ctx context.Context, slug string) (*models.TestCategory, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TestCategory), args.Error(1)
}

func (m *MockCategoryRepository) ExistsByNameOrSlug(ctx context.Context, name, slug string) (bool, error) {
	args := m.Called(ctx, name, slug)
	return args.Bool(0), args.Error(1)
}

// MockQuestionRepository is a mock implementation of QuestionRepository
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) Create(ctx context.Context, question *models.Question) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

func (m *MockQuestionRepository) GetByID(ctx context.Context, id uint) (*models.Question, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Question), args.Error(1)
}

func (m *MockQuestionRepository) Update(ctx context.Context, question *models.Question) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

func (m *MockQuestionRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQuestionRepository) List(ctx context.Context, filters repositories.QuestionFilters) ([]*models.Question, error) {
	args := m.Called(ctx, filters)
	return args.Get(0).([]*models.Question), args.Error(1)
}

func (m *MockQuestionRepository) Count(ctx context.Context, categoryID *uint) (*repositories.QuestionCounts, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(*repositories.QuestionCounts), args.Error(1)
}

// MockResultRepository is a mock implementation of ResultRepository
type MockResultRepository struct {
	mock.Mock
}

func (m *MockResultRepository) Create(ctx context.Context, result *models.StudentResult) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func (m *MockResultRepository) GetByRollNo(ctx context.Context, rollNo string) (*models.StudentResult, error) {
	args := m.Called(ctx, rollNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StudentResult), args.Error(1)
}

func (m *MockResultRepository) List(ctx context.Context, categoryID *uint) ([]*models.StudentResult, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).([]*models.StudentResult), args.Error(1)
}

// MockRepository aggregates the repository mocks
type MockRepository struct {
	mock.Mock
	categoryRepo *MockCategoryRepository
	questionRepo *MockQuestionRepository
	resultRepo   *MockResultRepository
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		categoryRepo: &MockCategoryRepository{},
		questionRepo: &MockQuestionRepository{},
		resultRepo:   &MockResultRepository{},
	}
}

func (m *MockRepository) Category() repositories.CategoryRepository { return m.categoryRepo }
func (m *MockRepository) Question() repositories.QuestionRepository { return m.questionRepo }
func (m *MockRepository) Result() repositories.ResultRepository     { return m.resultRepo }
func (m *MockRepository) Ping(ctx context.Context) error            { return nil }
func (m *MockRepository) Close() error                              { return nil }
