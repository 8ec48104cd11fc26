package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mica-edu/assessment-backend/internal/cache"
	apperrors "github.com/mica-edu/assessment-backend/internal/errors"
	"github.com/mica-edu/assessment-backend/internal/events"
	"github.com/mica-edu/assessment-backend/internal/models"
	"github.com/mica-edu/assessment-backend/internal/repositories"
	"github.com/mica-edu/assessment-backend/internal/validator"
)

const (
	countsCacheKeyPrefix = "questions:counts:"
	countsCacheTTL       = time.Minute
)

type CreateQuestionRequest struct {
	TestCategory string `json:"testCategory" validate:"required"`
	TestType     string `json:"testType" validate:"omitempty,test_type"`
	Grade        string `json:"grade" validate:"required,grade_level"`
	Type         string `json:"type" validate:"required,question_type"`
	Question     string `json:"question" validate:"required"`

	Options       []string           `json:"options"`
	CorrectAnswer *string            `json:"correctAnswer"`
	Items         []string           `json:"items"`
	CorrectOrder  []string           `json:"correctOrder"`
	Pairs         []models.MatchPair `json:"pairs"`

	Image      *string  `json:"image" validate:"omitempty,max=500"`
	Difficulty string   `json:"difficulty" validate:"omitempty,difficulty_level"`
	Tags       []string `json:"tags"`
	CreatedBy  *string  `json:"created_by"`
}

// UpdateQuestionRequest carries a partial update; nil fields are untouched.
type UpdateQuestionRequest struct {
	TestCategory *string `json:"testCategory"`
	TestType     *string `json:"testType" validate:"omitempty,test_type"`
	Grade        *string `json:"grade" validate:"omitempty,grade_level"`
	Type         *string `json:"type" validate:"omitempty,question_type"`
	Question     *string `json:"question"`

	Options       []string           `json:"options"`
	CorrectAnswer *string            `json:"correctAnswer"`
	Items         []string           `json:"items"`
	CorrectOrder  []string           `json:"correctOrder"`
	Pairs         []models.MatchPair `json:"pairs"`

	Image      *string  `json:"image" validate:"omitempty,max=500"`
	Difficulty *string  `json:"difficulty" validate:"omitempty,difficulty_level"`
	Tags       []string `json:"tags"`
}

type ListQuestionsRequest struct {
	Grade        string `form:"grade"`
	TestType     string `form:"testType"`
	Type         string `form:"type"`
	Difficulty   string `form:"difficulty"`
	TestCategory string `form:"testCategory"`
}

type questionService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	cache     cache.CacheService
	publisher events.EventPublisher
}

func NewQuestionService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, cacheService cache.CacheService, publisher events.EventPublisher) QuestionService {
	return &questionService{
		repo:      repo,
		logger:    logger,
		validator: v,
		cache:     cacheService,
		publisher: publisher,
	}
}

func (s *questionService) Create(ctx context.Context, req *CreateQuestionRequest) (*models.Question, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, apperrors.ToValidationErrors(err)
	}

	category, err := s.resolveCategorySlug(ctx, req.TestCategory)
	if err != nil {
		return nil, err
	}

	question := &models.Question{
		TestCategoryID: category.ID,
		TestType:       models.TestTypeSample,
		Grade:          req.Grade,
		Type:           models.QuestionType(req.Type),
		Question:       req.Question,
		Options:        req.Options,
		CorrectAnswer:  req.CorrectAnswer,
		Items:          req.Items,
		CorrectOrder:   req.CorrectOrder,
		Pairs:          req.Pairs,
		Image:          req.Image,
		Difficulty:     models.DifficultyMedium,
		Tags:           req.Tags,
		CreatedBy:      req.CreatedBy,
	}
	if req.TestType != "" {
		question.TestType = models.TestType(req.TestType)
	}
	if req.Difficulty != "" {
		question.Difficulty = models.DifficultyLevel(req.Difficulty)
	}

	if err := s.validator.Question().ValidateConditionalFields(question); err != nil {
		return nil, err
	}

	// Only the declared type's fields are stored, even if others were supplied
	question.ClearCrossTypeFields()

	if err := s.repo.Question().Create(ctx, question); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	s.invalidateCounts(ctx)
	s.publishQuestionEvent(ctx, events.EventQuestionCreated, question)

	s.logger.Info("Question created", "question_id", question.ID, "type", question.Type, "grade", question.Grade)

	question.TestCategory = category
	return question, nil
}

func (s *questionService) GetByID(ctx context.Context, id uint) (*models.Question, error) {
	question, err := s.repo.Question().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	return question, nil
}

func (s *questionService) Update(ctx context.Context, id uint, req *UpdateQuestionRequest) (*models.Question, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, apperrors.ToValidationErrors(err)
	}

	question, err := s.repo.Question().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}

	if req.TestCategory != nil {
		category, err := s.resolveCategorySlug(ctx, *req.TestCategory)
		if err != nil {
			return nil, err
		}
		question.TestCategoryID = category.ID
	}
	if req.TestType != nil {
		question.TestType = models.TestType(*req.TestType)
	}
	if req.Grade != nil {
		question.Grade = *req.Grade
	}
	if req.Type != nil {
		question.Type = models.QuestionType(*req.Type)
	}
	if req.Question != nil {
		question.Question = *req.Question
	}
	if req.Options != nil {
		question.Options = req.Options
	}
	if req.CorrectAnswer != nil {
		question.CorrectAnswer = req.CorrectAnswer
	}
	if req.Items != nil {
		question.Items = req.Items
	}
	if req.CorrectOrder != nil {
		question.CorrectOrder = req.CorrectOrder
	}
	if req.Pairs != nil {
		question.Pairs = req.Pairs
	}
	if req.Image != nil {
		question.Image = req.Image
	}
	if req.Difficulty != nil {
		question.Difficulty = models.DifficultyLevel(*req.Difficulty)
	}
	if req.Tags != nil {
		question.Tags = req.Tags
	}

	// The merged record must still satisfy its (possibly new) type
	if err := s.validator.Question().ValidateQuestion(question); err != nil {
		return nil, err
	}
	question.ClearCrossTypeFields()

	// Never write through the preloaded association
	question.TestCategory = nil

	if err := s.repo.Question().Update(ctx, question); err != nil {
		return nil, fmt.Errorf("failed to update question: %w", err)
	}

	s.invalidateCounts(ctx)
	s.publishQuestionEvent(ctx, events.EventQuestionUpdated, question)

	return s.GetByID(ctx, id)
}

func (s *questionService) Delete(ctx context.Context, id uint) error {
	question, err := s.repo.Question().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrQuestionNotFound
		}
		return fmt.Errorf("failed to get question: %w", err)
	}

	if err := s.repo.Question().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrQuestionNotFound
		}
		return fmt.Errorf("failed to delete question: %w", err)
	}

	s.invalidateCounts(ctx)
	s.publishQuestionEvent(ctx, events.EventQuestionDeleted, question)

	s.logger.Info("Question deleted", "question_id", id)
	return nil
}

func (s *questionService) List(ctx context.Context, req *ListQuestionsRequest) ([]*models.Question, error) {
	filters := repositories.QuestionFilters{}

	if req.Grade != "" {
		filters.Grade = &req.Grade
	}
	if req.TestType != "" {
		testType := models.TestType(req.TestType)
		filters.TestType = &testType
	}
	if req.Type != "" {
		questionType := models.QuestionType(req.Type)
		filters.Type = &questionType
	}
	if req.Difficulty != "" {
		difficulty := models.DifficultyLevel(req.Difficulty)
		filters.Difficulty = &difficulty
	}
	if req.TestCategory != "" {
		category, err := s.resolveCategorySlug(ctx, req.TestCategory)
		if err != nil {
			return nil, err
		}
		filters.CategoryID = &category.ID
	}

	questions, err := s.repo.Question().List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return questions, nil
}

func (s *questionService) Count(ctx context.Context, categorySlug string) (*repositories.QuestionCounts, error) {
	var categoryID *uint
	cacheKey := countsCacheKeyPrefix + "all"

	if categorySlug != "" {
		category, err := s.resolveCategorySlug(ctx, categorySlug)
		if err != nil {
			return nil, err
		}
		categoryID = &category.ID
		cacheKey = countsCacheKeyPrefix + categorySlug
	}

	var cached repositories.QuestionCounts
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("Question counts cache read failed", "error", err)
	}

	counts, err := s.repo.Question().Count(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to count questions: %w", err)
	}

	if err := s.cache.Set(ctx, cacheKey, counts, countsCacheTTL); err != nil {
		s.logger.Warn("Question counts cache write failed", "error", err)
	}

	return counts, nil
}

// resolveCategorySlug maps an API-facing category slug to its directory entry.
// An unresolvable slug is a caller mistake, not a missing resource.
func (s *questionService) resolveCategorySlug(ctx context.Context, slug string) (*models.TestCategory, error) {
	category, err := s.repo.Category().GetBySlug(ctx, slug)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, NewValidationError("testCategory", "does not resolve to a known test category", slug)
		}
		return nil, fmt.Errorf("failed to resolve category slug: %w", err)
	}
	return category, nil
}

func (s *questionService) invalidateCounts(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, countsCacheKeyPrefix+"*"); err != nil {
		s.logger.Warn("Failed to invalidate question counts cache", "error", err)
	}
}

func (s *questionService) publishQuestionEvent(ctx context.Context, eventType events.EventType, question *models.Question) {
	if err := s.publisher.Publish(ctx, eventType, events.QuestionChangedEvent{
		QuestionID: question.ID,
		CategoryID: question.TestCategoryID,
		Type:       string(question.Type),
		TestType:   string(question.TestType),
		Grade:      question.Grade,
	}); err != nil {
		s.logger.Warn("Failed to publish question event", "event_type", eventType, "error", err)
	}
}
