package validator

import (
	"fmt"

	apperrors "github.com/mica-edu/assessment-backend/internal/errors"
	"github.com/mica-edu/assessment-backend/internal/models"
)

// QuestionValidator handles question-specific validation
type QuestionValidator struct{}

// NewQuestionValidator creates a new question validator
func NewQuestionValidator() *QuestionValidator {
	return &QuestionValidator{}
}

// ValidateQuestion validates a complete question object, including the
// type-conditional fields its declared type requires.
func (v *QuestionValidator) ValidateQuestion(question *models.Question) error {
	if question.Question == "" {
		return apperrors.NewValidationError("question", "question text is required", nil)
	}

	if !question.Type.IsValid() {
		return apperrors.NewValidationError("type", fmt.Sprintf("unsupported question type: %s", question.Type), question.Type)
	}

	if !models.IsValidGrade(question.Grade) {
		return apperrors.NewValidationError("grade", fmt.Sprintf("invalid grade: %s", question.Grade), question.Grade)
	}

	return v.ValidateConditionalFields(question)
}

// ValidateConditionalFields checks that every field the question's type
// requires is populated, naming each missing field in the error.
func (v *QuestionValidator) ValidateConditionalFields(question *models.Question) error {
	var missing apperrors.ValidationErrors

	switch question.Type {
	case models.MultipleChoice:
		if len(question.Options) == 0 {
			missing = append(missing, *apperrors.NewValidationError("options", "is required for multiple-choice questions", nil))
		}
		if question.CorrectAnswer == nil || *question.CorrectAnswer == "" {
			missing = append(missing, *apperrors.NewValidationError("correctAnswer", "is required for multiple-choice questions", nil))
		}

	case models.ShortAnswer:
		if question.CorrectAnswer == nil || *question.CorrectAnswer == "" {
			missing = append(missing, *apperrors.NewValidationError("correctAnswer", "is required for short-answer questions", nil))
		}

	case models.DragAndDrop:
		if len(question.Items) == 0 {
			missing = append(missing, *apperrors.NewValidationError("items", "is required for drag-and-drop questions", nil))
		}
		if len(question.CorrectOrder) == 0 {
			missing = append(missing, *apperrors.NewValidationError("correctOrder", "is required for drag-and-drop questions", nil))
		}

	case models.MatchPairs:
		if len(question.Pairs) == 0 {
			missing = append(missing, *apperrors.NewValidationError("pairs", "is required for match-pairs questions", nil))
		}

	default:
		return apperrors.NewValidationError("type", fmt.Sprintf("unsupported question type: %s", question.Type), question.Type)
	}

	if len(missing) > 0 {
		return missing
	}
	return nil
}
