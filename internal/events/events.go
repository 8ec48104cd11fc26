package events

import (
	"time"
)

// EventType represents different types of domain events
type EventType string

const (
	// Category events
	EventCategoryCreated EventType = "category.created"

	// Question events
	EventQuestionCreated EventType = "question.created"
	EventQuestionUpdated EventType = "question.updated"
	EventQuestionDeleted EventType = "question.deleted"

	// Result events
	EventResultRecorded EventType = "result.recorded"
)

// Event is the base structure for all published domain events
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Source    string      `json:"source"`
	Data      interface{} `json:"data"`
}

// Source identifies this service in event metadata.
const Source = "assessment-backend"

type CategoryCreatedEvent struct {
	CategoryID uint   `json:"category_id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
}

type QuestionChangedEvent struct {
	QuestionID uint   `json:"question_id"`
	CategoryID uint   `json:"category_id"`
	Type       string `json:"type"`
	TestType   string `json:"test_type"`
	Grade      string `json:"grade"`
}

type ResultRecordedEvent struct {
	ResultID    uint       `json:"result_id"`
	RollNo      string     `json:"roll_no"`
	Score       int        `json:"score"`
	Grade       string     `json:"grade"`
	CategoryID  *uint      `json:"category_id,omitempty"`
	RecordedAt  time.Time  `json:"recorded_at"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
}
