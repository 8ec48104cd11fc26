package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mica-edu/assessment-backend/internal/models"
	"github.com/mica-edu/assessment-backend/internal/repositories"
	"github.com/xuri/excelize/v2"
)

type exportService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewExportService(repo repositories.Repository, logger *slog.Logger) ExportService {
	return &exportService{
		repo:   repo,
		logger: logger,
	}
}

// ExportResults renders the result ledger as an xlsx workbook and returns
// the file contents together with a suggested filename.
func (s *exportService) ExportResults(ctx context.Context, categorySlug string) ([]byte, string, error) {
	var categoryID *uint
	if categorySlug != "" {
		category, err := s.repo.Category().GetBySlug(ctx, categorySlug)
		if err != nil {
			if repositories.IsNotFoundError(err) {
				return nil, "", NewValidationError("testCategory", "does not resolve to a known test category", categorySlug)
			}
			return nil, "", fmt.Errorf("failed to resolve category slug: %w", err)
		}
		categoryID = &category.ID
	}

	results, err := s.repo.Result().List(ctx, categoryID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load results for export: %w", err)
	}

	data, err := resultsToExcel(results)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("results-%s.xlsx", time.Now().Format("2006-01-02"))
	s.logger.Info("Results exported", "rows", len(results), "filename", filename)

	return data, filename, nil
}

func resultsToExcel(results []*models.StudentResult) ([]byte, error) {
	f := excelize.NewFile()
	sheetName := "Results"

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{
		"Roll No", "Name", "Score", "Grade", "Percentage", "Time Spent (s)", "Submitted At", "Recorded At",
	}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for i, result := range results {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), result.RollNo)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), result.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), result.Score)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), result.Grade)
		if result.Percentage != nil {
			f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), *result.Percentage)
		}
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), result.TimeSpent)
		if result.SubmittedAt != nil {
			f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), result.SubmittedAt.Format(time.RFC3339))
		}
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), result.CreatedAt.Format(time.RFC3339))
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}

	return buf.Bytes(), nil
}
