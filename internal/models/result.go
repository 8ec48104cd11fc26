package models

import (
	"time"

	"gorm.io/datatypes"
)

// StudentResult is the one-time test result ledger entry for a roll number.
// RollNo is unique across the whole ledger, not per category: a student may
// submit a scored test exactly once, system-wide. The unique index is the
// correctness backstop for concurrent submissions (see result service).
type StudentResult struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	RollNo         string         `json:"rollNo" gorm:"not null;size:50;uniqueIndex"`
	Name           string         `json:"name" gorm:"not null;size:200"`
	Score          int            `json:"score" gorm:"not null"`
	Grade          string         `json:"grade" gorm:"not null;size:20"`
	Percentage     *float64       `json:"percentage,omitempty"`
	Answers        datatypes.JSON `json:"answers" gorm:"not null"`
	TimeSpent      int            `json:"timeSpent" gorm:"not null"`
	SubmittedAt    *time.Time     `json:"submittedAt,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	TestCategoryID *uint          `json:"test_category_id,omitempty" gorm:"index"`

	TestCategory *TestCategory `json:"testCategory,omitempty" gorm:"foreignKey:TestCategoryID"`
}

func (StudentResult) TableName() string {
	return "student_results"
}

// StudentSummary is the subset of a result returned by the status check.
type StudentSummary struct {
	RollNo      string     `json:"rollNo"`
	Name        string     `json:"name"`
	Score       int        `json:"score"`
	Grade       string     `json:"grade"`
	Percentage  *float64   `json:"percentage,omitempty"`
	SubmittedAt *time.Time `json:"submittedAt,omitempty"`
}

// Summary projects the ledger entry into its status-check shape.
func (r *StudentResult) Summary() StudentSummary {
	return StudentSummary{
		RollNo:      r.RollNo,
		Name:        r.Name,
		Score:       r.Score,
		Grade:       r.Grade,
		Percentage:  r.Percentage,
		SubmittedAt: r.SubmittedAt,
	}
}
