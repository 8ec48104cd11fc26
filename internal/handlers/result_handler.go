package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mica-edu/assessment-backend/internal/services"
	"github.com/mica-edu/assessment-backend/internal/utils"
)

type ResultHandler struct {
	BaseHandler
	resultService services.ResultService
	exportService services.ExportService
}

func NewResultHandler(resultService services.ResultService, exportService services.ExportService, logger utils.Logger) *ResultHandler {
	return &ResultHandler{
		BaseHandler:   NewBaseHandler(logger),
		resultService: resultService,
		exportService: exportService,
	}
}

// SubmitResult records a student's test result. Repeat submissions for the
// same roll number return 200 with success=false rather than an error.
func (h *ResultHandler) SubmitResult(c *gin.Context) {
	h.LogRequest(c, "Submitting result")

	var req services.SubmitResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	resp, err := h.resultService.Submit(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CheckResult reports whether a roll number has already taken the test
func (h *ResultHandler) CheckResult(c *gin.Context) {
	rollNo := c.Param("rollNo")

	status, err := h.resultService.CheckStatus(c.Request.Context(), rollNo)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// ListResults returns all recorded results, newest first
func (h *ResultHandler) ListResults(c *gin.Context) {
	results, err := h.resultService.List(c.Request.Context(), c.Query("testCategory"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

// ExportResults streams the result ledger as an xlsx attachment
func (h *ResultHandler) ExportResults(c *gin.Context) {
	h.LogRequest(c, "Exporting results")

	data, filename, err := h.exportService.ExportResults(c.Request.Context(), c.Query("testCategory"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
