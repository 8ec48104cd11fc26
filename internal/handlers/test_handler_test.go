package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/mica-edu/assessment-backend/internal/models"
	"github.com/mica-edu/assessment-backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSampleTest(t *testing.T) {
	env := newTestEnv(nil)

	env.assembly.On("SampleTest", mock.Anything, "Grade5", "").
		Return([]*models.Question{{ID: 1, Grade: "Grade5"}, {ID: 2, Grade: "Grade5"}}, nil)

	w := env.request(http.MethodGet, "/api/sample-test/Grade5", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var questions []models.Question
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &questions))
	assert.Len(t, questions, 2)
}

func TestSampleTest_InvalidGrade(t *testing.T) {
	env := newTestEnv(nil)

	env.assembly.On("SampleTest", mock.Anything, "Grade99", "").
		Return(nil, services.NewValidationError("grade", "invalid grade: Grade99", "Grade99"))

	w := env.request(http.MethodGet, "/api/sample-test/Grade99", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid grade")
}

func TestLiveTest_ScopedToCategory(t *testing.T) {
	env := newTestEnv(nil)

	env.assembly.On("LiveTest", mock.Anything, "Grade8", "mathematics").
		Return([]*models.Question{{ID: 5, Grade: "Grade8"}}, nil)

	w := env.request(http.MethodGet, "/api/live-test/Grade8?testCategory=mathematics", "")

	assert.Equal(t, http.StatusOK, w.Code)
	env.assembly.AssertExpectations(t)
}
