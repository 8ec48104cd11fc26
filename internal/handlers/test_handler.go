package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mica-edu/assessment-backend/internal/services"
	"github.com/mica-edu/assessment-backend/internal/utils"
)

type TestHandler struct {
	BaseHandler
	assemblyService services.TestAssemblyService
}

func NewTestHandler(assemblyService services.TestAssemblyService, logger utils.Logger) *TestHandler {
	return &TestHandler{
		BaseHandler:     NewBaseHandler(logger),
		assemblyService: assemblyService,
	}
}

// SampleTest assembles a practice question set for the grade
func (h *TestHandler) SampleTest(c *gin.Context) {
	grade := c.Param("grade")
	h.LogRequest(c, "Assembling sample test", "grade", grade)

	questions, err := h.assemblyService.SampleTest(c.Request.Context(), grade, c.Query("testCategory"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, questions)
}

// LiveTest assembles a scored question set for the grade
func (h *TestHandler) LiveTest(c *gin.Context) {
	grade := c.Param("grade")
	h.LogRequest(c, "Assembling live test", "grade", grade)

	questions, err := h.assemblyService.LiveTest(c.Request.Context(), grade, c.Query("testCategory"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, questions)
}
