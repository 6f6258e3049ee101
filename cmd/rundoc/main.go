package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/docuvault/field-extractor/internal/common"
	"github.com/docuvault/field-extractor/internal/fields"
	"github.com/docuvault/field-extractor/internal/llm/gemini"
	"github.com/docuvault/field-extractor/internal/ocr"
	pipeline "github.com/docuvault/field-extractor/internal/pipeline"
	repo "github.com/docuvault/field-extractor/internal/repository"
	"github.com/docuvault/field-extractor/internal/utils"
)

// rundoc runs the full extraction pipeline once for an already-ingested
// document. Useful for reprocessing after prompt or pattern changes.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "rundoc <document-id-uuid>")
		os.Exit(2)
	}
	documentID, err := uuid.Parse(os.Args[1])
	if err != nil {
		logger.Error("invalid document id (must be UUID)", "arg", os.Args[1], "error", err)
		os.Exit(2)
	}

	_ = godotenv.Load()
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	dbResult, err := common.InitDatabase(ctx, cfg, false, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer dbResult.Cleanup()
	entc := dbResult.Client

	docsRepo := repo.NewDocumentRepository(entc, logger)
	jobsRepo := repo.NewExtractJobRepository(entc, logger)
	fieldsRepo := repo.NewDocumentFieldRepository(entc, logger)

	vision, err := gemini.NewClient(ctx, gemini.Config{
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)
	if err != nil {
		logger.Error("create vision client", "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := vision.Close(); cerr != nil {
			logger.Error("close vision client", "error", cerr)
		}
	}()

	extractor := ocr.NewExtractor(ocr.Config{
		Pdftoppm:         cfg.OCR.PdftoppmPath,
		DPI:              cfg.OCR.RenderDPI,
		ArtifactCacheDir: cfg.OCR.ArtifactCacheDir,
	}, vision, logger)

	ocrStage := pipeline.NewOCRStage(docsRepo, jobsRepo, extractor, cfg.LLM.Model, logger)
	parseStage := pipeline.NewParseStage(logger, jobsRepo, fieldsRepo, fields.NewExtractor(logger))
	processor := pipeline.NewProcessor(logger, ocrStage, parseStage)

	start := time.Now()
	jobID, err := processor.ProcessDocument(ctx, documentID)
	dur := time.Since(start)

	if err != nil {
		logger.Error("document processing failed",
			"job_id", jobID, "error", err, "duration_ms", dur.Milliseconds())
		os.Exit(1)
	}

	logger.Info("document processing OK",
		"job_id", jobID,
		"document_id", documentID,
		"duration_ms", dur.Milliseconds(),
	)

	// Summarize what was stored.
	if row, err := jobsRepo.LatestForDocument(ctx, documentID); err == nil && row != nil {
		job := utils.ToExtractJob(row)
		confidence := float32(0)
		if job.ExtractionConfidence != nil {
			confidence = *job.ExtractionConfidence
		}
		logger.Info("job summary",
			"status", utils.StrOrEmpty(job.Status),
			"pages", job.PageCount,
			"confidence", confidence,
			"needs_review", job.NeedsReview,
			"model", job.ModelName,
		)
	}
	if row, err := docsRepo.GetByID(ctx, documentID); err == nil && row != nil {
		doc := utils.ToDocument(row)
		logger.Info("document summary",
			"filename", doc.Filename,
			"ext", doc.FileExt,
			"size_bytes", doc.FileSize,
		)
	}
}
