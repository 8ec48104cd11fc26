package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/mica-edu/assessment-backend/internal/models"
	"github.com/mica-edu/assessment-backend/internal/repositories"
	"github.com/mica-edu/assessment-backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateQuestion(t *testing.T) {
	env := newTestEnv(nil)

	answer := "56"
	env.question.On("Create", mock.Anything, mock.MatchedBy(func(req *services.CreateQuestionRequest) bool {
		return req.TestCategory == "mathematics" && req.Type == "multiple-choice"
	})).Return(&models.Question{
		ID:            10,
		Grade:         "Grade5",
		Type:          models.MultipleChoice,
		Question:      "What is 7 x 8?",
		Options:       []string{"54", "56"},
		CorrectAnswer: &answer,
	}, nil)

	w := env.request(http.MethodPost, "/api/questions", `{
		"testCategory": "mathematics",
		"grade": "Grade5",
		"type": "multiple-choice",
		"question": "What is 7 x 8?",
		"options": ["54", "56"],
		"correctAnswer": "56"
	}`)

	assert.Equal(t, http.StatusCreated, w.Code)

	var question models.Question
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &question))
	assert.Equal(t, uint(10), question.ID)
}

func TestCreateQuestion_MissingConditionalField(t *testing.T) {
	env := newTestEnv(nil)

	env.question.On("Create", mock.Anything, mock.Anything).
		Return(nil, services.NewValidationError("correctAnswer", "is required for multiple-choice questions", nil))

	w := env.request(http.MethodPost, "/api/questions", `{
		"testCategory": "mathematics",
		"grade": "Grade5",
		"type": "multiple-choice",
		"question": "What is 7 x 8?",
		"options": ["54", "56"]
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "correctAnswer")
}

func TestGetQuestion_InvalidID(t *testing.T) {
	env := newTestEnv(nil)

	w := env.request(http.MethodGet, "/api/questions/abc", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env.question.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestGetQuestion_NotFound(t *testing.T) {
	env := newTestEnv(nil)

	env.question.On("GetByID", mock.Anything, uint(404)).Return(nil, services.ErrQuestionNotFound)

	w := env.request(http.MethodGet, "/api/questions/404", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateQuestion(t *testing.T) {
	env := newTestEnv(nil)

	env.question.On("Update", mock.Anything, uint(10), mock.AnythingOfType("*services.UpdateQuestionRequest")).
		Return(&models.Question{ID: 10, Grade: "Grade6"}, nil)

	w := env.request(http.MethodPut, "/api/questions/10", `{"grade": "Grade6"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"grade":"Grade6"`)
}

func TestDeleteQuestion(t *testing.T) {
	env := newTestEnv(nil)

	env.question.On("Delete", mock.Anything, uint(10)).Return(nil)

	w := env.request(http.MethodDelete, "/api/questions/10", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success": true}`, w.Body.String())
}

func TestListQuestions_BindsQueryFilters(t *testing.T) {
	env := newTestEnv(nil)

	env.question.On("List", mock.Anything, mock.MatchedBy(func(req *services.ListQuestionsRequest) bool {
		return req.Grade == "Grade5" && req.TestType == "live" && req.TestCategory == "mathematics"
	})).Return([]*models.Question{{ID: 1}}, nil)

	w := env.request(http.MethodGet, "/api/questions?grade=Grade5&testType=live&testCategory=mathematics", "")

	assert.Equal(t, http.StatusOK, w.Code)
	env.question.AssertExpectations(t)
}

func TestCountQuestions(t *testing.T) {
	env := newTestEnv(nil)

	env.question.On("Count", mock.Anything, "").Return(&repositories.QuestionCounts{
		Total:  42,
		Sample: 30,
		Live:   12,
	}, nil)

	w := env.request(http.MethodGet, "/api/questions/count", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var counts repositories.QuestionCounts
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &counts))
	assert.Equal(t, int64(42), counts.Total)
	assert.Equal(t, int64(12), counts.Live)
}
