package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/docuvault/field-extractor/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	docsRepo   repository.DocumentRepository
	fieldsRepo repository.DocumentFieldRepository
	jobsRepo   repository.ExtractJobRepository
	logger     *slog.Logger
}

func NewService(docs repository.DocumentRepository, fields repository.DocumentFieldRepository, jobs repository.ExtractJobRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{docsRepo: docs, fieldsRepo: fields, jobsRepo: jobs, logger: logger}
}

// ExportFieldsXLSX returns an XLSX workbook (as bytes) with every stored
// field for the given document, one row per field.
func (s *Service) ExportFieldsXLSX(ctx context.Context, documentID uuid.UUID) ([]byte, error) {
	start := time.Now()

	doc, err := s.docsRepo.GetByID(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	rows, err := s.fieldsRepo.ListByDocument(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("query fields: %w", err)
	}

	// Confidence/review status come from the most recent job, when any ran.
	var confidence float32
	needsReview := false
	if job, err := s.jobsRepo.LatestForDocument(ctx, documentID); err == nil && job != nil {
		if job.ExtractionConfidence != nil {
			confidence = *job.ExtractionConfidence
		}
		needsReview = job.NeedsReview
	}

	f := excelize.NewFile()
	const sheet = "Fields"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Field Name",
		"Value",
		"Source",
		"Extracted At",
		"Document",
		"Confidence",
		"Needs Review",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range rows {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.Name)
		write(2, truncate(r.Value, 140))
		write(3, r.Source)
		if !r.ExtractedAt.IsZero() {
			write(4, r.ExtractedAt.Format("2006-01-02 15:04:05"))
		} else {
			write(4, "")
		}
		write(5, doc.Filename)
		write(6, fmt.Sprintf("%.2f", confidence))
		write(7, needsReview)

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 24) // name
	_ = f.SetColWidth(sheet, "B", "B", 48) // value
	_ = f.SetColWidth(sheet, "C", "C", 14) // source
	_ = f.SetColWidth(sheet, "D", "D", 20) // timestamp
	_ = f.SetColWidth(sheet, "E", "E", 32) // document
	_ = f.SetColWidth(sheet, "F", "G", 14) // confidence/review

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"document_id", documentID.String(),
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
