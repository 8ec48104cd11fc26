package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mica-edu/assessment-backend/internal/models"
	"github.com/mica-edu/assessment-backend/internal/repositories"
)

const (
	sampleTestLimit = 10
	liveTestLimit   = 20
)

type testAssemblyService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewTestAssemblyService(repo repositories.Repository, logger *slog.Logger) TestAssemblyService {
	return &testAssemblyService{
		repo:   repo,
		logger: logger,
	}
}

func (s *testAssemblyService) SampleTest(ctx context.Context, grade string, categorySlug string) ([]*models.Question, error) {
	return s.assemble(ctx, grade, categorySlug, models.TestTypeSample, sampleTestLimit)
}

func (s *testAssemblyService) LiveTest(ctx context.Context, grade string, categorySlug string) ([]*models.Question, error) {
	return s.assemble(ctx, grade, categorySlug, models.TestTypeLive, liveTestLimit)
}

// assemble selects a bounded question set for the grade. A grade-specific
// bank takes priority; when it is empty the "default" grade acts as a
// universal fallback pool so a category can ship a generic bank before
// grade-specific content exists. Selection is deterministic: no shuffling,
// no exclusion across repeated calls.
func (s *testAssemblyService) assemble(ctx context.Context, grade string, categorySlug string, testType models.TestType, limit int) ([]*models.Question, error) {
	if !models.IsValidGrade(grade) {
		return nil, NewValidationError("grade", fmt.Sprintf("invalid grade: %s", grade), grade)
	}

	var categoryID *uint
	if categorySlug != "" {
		category, err := s.repo.Category().GetBySlug(ctx, categorySlug)
		if err != nil {
			if repositories.IsNotFoundError(err) {
				return nil, NewValidationError("testCategory", "does not resolve to a known test category", categorySlug)
			}
			return nil, fmt.Errorf("failed to resolve category slug: %w", err)
		}
		categoryID = &category.ID
	}

	questions, err := s.fetch(ctx, grade, testType, categoryID, limit)
	if err != nil {
		return nil, err
	}

	if len(questions) == 0 && grade != models.GradeDefault {
		s.logger.Debug("No grade-specific questions, falling back to default pool",
			"grade", grade, "test_type", testType)
		return s.fetch(ctx, models.GradeDefault, testType, categoryID, limit)
	}

	return questions, nil
}

func (s *testAssemblyService) fetch(ctx context.Context, grade string, testType models.TestType, categoryID *uint, limit int) ([]*models.Question, error) {
	questions, err := s.repo.Question().List(ctx, repositories.QuestionFilters{
		Grade:      &grade,
		TestType:   &testType,
		CategoryID: categoryID,
		Limit:      limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to assemble %s test: %w", testType, err)
	}
	return questions, nil
}
