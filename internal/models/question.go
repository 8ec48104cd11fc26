package models

import (
	"time"

	"gorm.io/datatypes"
)

type QuestionType string

const (
	MultipleChoice QuestionType = "multiple-choice"
	ShortAnswer    QuestionType = "short-answer"
	DragAndDrop    QuestionType = "drag-and-drop"
	MatchPairs     QuestionType = "match-pairs"
)

func (t QuestionType) IsValid() bool {
	switch t {
	case MultipleChoice, ShortAnswer, DragAndDrop, MatchPairs:
		return true
	}
	return false
}

type TestType string

const (
	TestTypeSample TestType = "sample"
	TestTypeLive   TestType = "live"
)

func (t TestType) IsValid() bool {
	return t == TestTypeSample || t == TestTypeLive
}

type DifficultyLevel string

const (
	DifficultyEasy   DifficultyLevel = "easy"
	DifficultyMedium DifficultyLevel = "medium"
	DifficultyHard   DifficultyLevel = "hard"
)

func (d DifficultyLevel) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// GradeDefault is the universal fallback pool: categories can ship a generic
// bank under this grade before grade-specific content exists.
const GradeDefault = "default"

// ValidGrades lists the accepted grade buckets.
var ValidGrades = []string{"Grade4", "Grade5", "Grade6", "Grade7", "Grade8", "Grade9", "Grade10", GradeDefault}

func IsValidGrade(grade string) bool {
	for _, g := range ValidGrades {
		if g == grade {
			return true
		}
	}
	return false
}

// MatchPair is one left/right pairing of a match-pairs question.
type MatchPair struct {
	ID    string `json:"id"`
	Left  string `json:"left"`
	Right string `json:"right"`
}

// Question is a polymorphic record: Type is the discriminant, and only the
// conditional fields that Type requires are ever persisted.
//
//	multiple-choice: Options + CorrectAnswer
//	short-answer:    CorrectAnswer
//	drag-and-drop:   Items + CorrectOrder (Options optional)
//	match-pairs:     Pairs
type Question struct {
	ID             uint         `json:"id" gorm:"primaryKey"`
	TestCategoryID uint         `json:"test_category_id" gorm:"not null;index"`
	TestType       TestType     `json:"testType" gorm:"not null;size:20;default:sample;index"`
	Grade          string       `json:"grade" gorm:"not null;size:20;index"`
	Type           QuestionType `json:"type" gorm:"not null;size:30"`
	Question       string       `json:"question" gorm:"not null;type:text"`

	// Type-conditional fields
	Options       datatypes.JSONSlice[string]    `json:"options,omitempty"`
	CorrectAnswer *string                        `json:"correctAnswer,omitempty" gorm:"type:text"`
	Items         datatypes.JSONSlice[string]    `json:"items,omitempty"`
	CorrectOrder  datatypes.JSONSlice[string]    `json:"correctOrder,omitempty"`
	Pairs         datatypes.JSONSlice[MatchPair] `json:"pairs,omitempty"`

	// Optional metadata
	Image      *string                     `json:"image,omitempty" gorm:"size:500"`
	Difficulty DifficultyLevel             `json:"difficulty" gorm:"size:20;default:medium"`
	Tags       datatypes.JSONSlice[string] `json:"tags,omitempty"`
	CreatedBy  *string                     `json:"created_by,omitempty" gorm:"size:100"`
	CreatedAt  time.Time                   `json:"created_at"`
	UpdatedAt  time.Time                   `json:"updated_at"`

	TestCategory *TestCategory `json:"testCategory,omitempty" gorm:"foreignKey:TestCategoryID"`
}

func (Question) TableName() string {
	return "questions"
}

// ClearCrossTypeFields drops every conditional field the declared type does
// not own, so a record never carries another variant's payload.
func (q *Question) ClearCrossTypeFields() {
	switch q.Type {
	case MultipleChoice:
		q.Items = nil
		q.CorrectOrder = nil
		q.Pairs = nil
	case ShortAnswer:
		q.Options = nil
		q.Items = nil
		q.CorrectOrder = nil
		q.Pairs = nil
	case DragAndDrop:
		q.CorrectAnswer = nil
		q.Pairs = nil
	case MatchPairs:
		q.Options = nil
		q.CorrectAnswer = nil
		q.Items = nil
		q.CorrectOrder = nil
	}
}
