package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/mica-edu/assessment-backend/internal/events"
	"github.com/mica-edu/assessment-backend/internal/models"
	"github.com/mica-edu/assessment-backend/internal/repositories"
	"github.com/mica-edu/assessment-backend/internal/validator"
	"gorm.io/datatypes"
)

type SubmitResultRequest struct {
	Student      *StudentInfo      `json:"student" validate:"required"`
	Analysis     *ResultAnalysis   `json:"analysis" validate:"required"`
	Answers      []json.RawMessage `json:"answers"`
	TimeSpent    int               `json:"timeSpent"`
	SubmittedAt  *time.Time        `json:"submittedAt"`
	TestCategory string            `json:"testCategory"`
}

type StudentInfo struct {
	RollNo string `json:"rollNo" validate:"required"`
	Name   string `json:"name" validate:"required"`
}

type ResultAnalysis struct {
	CorrectCount int      `json:"correctCount"`
	Grade        string   `json:"grade"`
	Percentage   *float64 `json:"percentage"`
}

// SubmitResultResponse mirrors the wire shape of the submission endpoint.
// Success=false is not an error: it marks the expected repeat-submission
// case (page reload, double click) where the original record stands.
type SubmitResultResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Result  *models.StudentResult `json:"result,omitempty"`
}

type ResultStatusResponse struct {
	HasTakenTest bool                   `json:"hasTakenTest"`
	Student      *models.StudentSummary `json:"student,omitempty"`
}

type resultService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
}

func NewResultService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, publisher events.EventPublisher) ResultService {
	return &resultService{
		repo:      repo,
		logger:    logger,
		validator: v,
		publisher: publisher,
	}
}

// Submit records a result under the first-submission-wins rule. The lookup
// below only exists to produce a friendly response in the common case; the
// unique index on roll_no is what makes the rule hold when two submissions
// race, so a duplicate-key insert failure gets the same "already recorded"
// outcome instead of surfacing as a storage error.
func (s *resultService) Submit(ctx context.Context, req *SubmitResultRequest) (*SubmitResultResponse, error) {
	if req.Student == nil || req.Student.RollNo == "" || req.Analysis == nil {
		return nil, NewValidationError("student", "rollNo and analysis are required", nil)
	}
	if req.Student.Name == "" {
		return nil, NewValidationError("student.name", "is required", nil)
	}

	existing, err := s.repo.Result().GetByRollNo(ctx, req.Student.RollNo)
	if err != nil && !repositories.IsNotFoundError(err) {
		return nil, fmt.Errorf("failed to check existing result: %w", err)
	}
	if existing != nil {
		return alreadyRecordedResponse(), nil
	}

	var categoryID *uint
	if req.TestCategory != "" {
		category, err := s.repo.Category().GetBySlug(ctx, req.TestCategory)
		if err != nil {
			if repositories.IsNotFoundError(err) {
				return nil, NewValidationError("testCategory", "does not resolve to a known test category", req.TestCategory)
			}
			return nil, fmt.Errorf("failed to resolve category slug: %w", err)
		}
		categoryID = &category.ID
	}

	answers, err := json.Marshal(req.Answers)
	if err != nil {
		return nil, NewValidationError("answers", "must be a JSON array", nil)
	}

	result := &models.StudentResult{
		RollNo:         req.Student.RollNo,
		Name:           req.Student.Name,
		Score:          req.Analysis.CorrectCount,
		Grade:          req.Analysis.Grade,
		Percentage:     req.Analysis.Percentage,
		Answers:        datatypes.JSON(answers),
		TimeSpent:      req.TimeSpent,
		SubmittedAt:    req.SubmittedAt,
		TestCategoryID: categoryID,
	}

	if err := s.repo.Result().Create(ctx, result); err != nil {
		if repositories.IsDuplicateKeyError(err) {
			s.logger.Info("Concurrent duplicate submission rejected by unique index", "roll_no", req.Student.RollNo)
			return alreadyRecordedResponse(), nil
		}
		return nil, fmt.Errorf("failed to save result: %w", err)
	}

	s.logger.Info("Result recorded", "roll_no", result.RollNo, "score", result.Score)

	if err := s.publisher.Publish(ctx, events.EventResultRecorded, events.ResultRecordedEvent{
		ResultID:    result.ID,
		RollNo:      result.RollNo,
		Score:       result.Score,
		Grade:       result.Grade,
		CategoryID:  result.TestCategoryID,
		RecordedAt:  result.CreatedAt,
		SubmittedAt: result.SubmittedAt,
	}); err != nil {
		s.logger.Warn("Failed to publish result.recorded event", "error", err)
	}

	return &SubmitResultResponse{
		Success: true,
		Message: "Score recorded successfully",
		Result:  result,
	}, nil
}

// CheckStatus reports whether a roll number has already taken the test.
// Absence is a normal outcome, never an error.
func (s *resultService) CheckStatus(ctx context.Context, rollNo string) (*ResultStatusResponse, error) {
	result, err := s.repo.Result().GetByRollNo(ctx, rollNo)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return &ResultStatusResponse{HasTakenTest: false}, nil
		}
		return nil, fmt.Errorf("failed to check result status: %w", err)
	}

	summary := result.Summary()
	return &ResultStatusResponse{
		HasTakenTest: true,
		Student:      &summary,
	}, nil
}

func (s *resultService) List(ctx context.Context, categorySlug string) ([]*models.StudentResult, error) {
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

	results, err := s.repo.Result().List(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	return results, nil
}

func alreadyRecordedResponse() *SubmitResultResponse {
	return &SubmitResultResponse{
		Success: false,
		Message: "Score not updated - only first assessment is recorded",
	}
}
