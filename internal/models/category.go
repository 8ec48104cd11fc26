package models

import (
	"time"

	"github.com/gosimple/slug"
)

// TestCategory groups questions and results under a stable, URL-safe slug.
type TestCategory struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null;size:200;uniqueIndex" validate:"required,min=1,max=200"`
	Slug        string    `json:"slug" gorm:"not null;size:200;uniqueIndex"`
	Description *string   `json:"description,omitempty" gorm:"type:text" validate:"omitempty,max=1000"`
	CreatedBy   *string   `json:"created_by,omitempty" gorm:"size:100"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (TestCategory) TableName() string {
	return "test_categories"
}

// SlugifyName derives the category slug from its display name.
// The derivation is deterministic and idempotent: the same name always
// produces the same lowercase, URL-safe slug.
func SlugifyName(name string) string {
	return slug.Make(name)
}
