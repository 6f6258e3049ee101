package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/docuvault/field-extractor/internal/common"
	"github.com/docuvault/field-extractor/internal/export"
	"github.com/docuvault/field-extractor/internal/fields"
	"github.com/docuvault/field-extractor/internal/ingest"
	"github.com/docuvault/field-extractor/internal/llm/gemini"
	"github.com/docuvault/field-extractor/internal/ocr"
	pipeline "github.com/docuvault/field-extractor/internal/pipeline"
	repo "github.com/docuvault/field-extractor/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir   = flag.String("dir", "", "directory to process documents from (required)")
		out   = flag.String("out", "", "output XLSX directory (optional, defaults to parent directory)")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Dir(*dir)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	_ = godotenv.Load()
	cfg := common.LoadConfig()
	if cfg.LLM.APIKey == "" {
		printError("Error: GEMINI_API_KEY is required\n")
		os.Exit(1)
	}

	dbResult, err := common.InitDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
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
		logger.Error("failed to create vision client", "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := vision.Close(); cerr != nil {
			logger.Error("failed to close vision client", "error", cerr)
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

	ingestor := ingest.NewFSIngestor(docsRepo, logger)

	logger.Info("starting ingestion", "dir", *dir)
	results, stats, err := ingestor.IngestDirectory(ctx, *dir, true)
	if err != nil {
		logger.Error("failed to ingest directory", "error", err)
		os.Exit(1)
	}

	var ingested []uuid.UUID
	for _, result := range results {
		if result.Err == "" {
			docID, err := uuid.Parse(result.DocumentID)
			if err != nil {
				logger.Error("failed to parse document ID", "document_id", result.DocumentID, "error", err)
				continue
			}
			ingested = append(ingested, docID)
		}
	}
	logger.Info("ingestion complete",
		"documents_ingested", len(ingested),
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"deduplicated", stats.Deduplicated)

	processed := 0
	failures := 0
	for _, docID := range ingested {
		logger.Info("processing document", "document_id", docID)
		if _, err := processor.ProcessDocument(ctx, docID); err != nil {
			logger.Error("failed to process document", "document_id", docID, "error", err)
			failures++
		} else {
			processed++
		}
	}

	exportService := export.NewService(docsRepo, fieldsRepo, jobsRepo, logger)
	exported := 0
	for _, docID := range ingested {
		xlsxBytes, err := exportService.ExportFieldsXLSX(ctx, docID)
		if err != nil {
			logger.Error("failed to export fields", "document_id", docID, "error", err)
			continue
		}
		path := filepath.Join(*out, docID.String()+"_fields.xlsx")
		if err := os.WriteFile(path, xlsxBytes, 0644); err != nil {
			logger.Error("failed to write output file", "path", path, "error", err)
			continue
		}
		exported++
	}

	logger.Info("batch processing complete",
		"documents_ingested", len(ingested),
		"documents_processed", processed,
		"failures", failures,
		"exported", exported,
		"output_dir", *out)
}
