// Package ocr turns document files into merged JSON via per-page vision
// extraction: PDFs are rasterized with pdftoppm and each page image goes to
// the vision model; images go straight through.
package ocr

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/docuvault/field-extractor/constants"
	"github.com/docuvault/field-extractor/internal/jsonrec"
	"github.com/docuvault/field-extractor/internal/llm"
)

type Config struct {
	Pdftoppm string // binary name or absolute path; if empty -> "pdftoppm"

	DPI      int // rasterization DPI, default 200
	MaxPages int // 0 = no limit

	ArtifactCacheDir string
}

type ExtractionResult struct {
	JSON       string // merged document object, serialized
	Pages      int
	SourceType string // constants.PDF | constants.IMAGE
	Method     string // "pdf-vision" | "image-vision"
	Duration   time.Duration
	Warnings   []string
	Confidence float32
}

type Extractor struct {
	cfg    Config
	runner Runner
	vision llm.VisionExtractor
	merger *jsonrec.Merger
	rec    *jsonrec.Recoverer
	logger *slog.Logger
}

func NewExtractor(cfg Config, vision llm.VisionExtractor, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 200
	}
	if cfg.ArtifactCacheDir == "" {
		cfg.ArtifactCacheDir = "./tmp"
	}
	return &Extractor{
		cfg:    cfg,
		runner: execRunner{},
		vision: vision,
		merger: jsonrec.NewMerger(logger),
		rec:    jsonrec.NewRecoverer(logger),
		logger: logger,
	}
}

// Extract picks a strategy based on file extension.
func (e *Extractor) Extract(ctx context.Context, path string) (ExtractionResult, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	e.logger.Debug("ocr.extract.start", "path", path, "ext", ext, "mime", DetectMIMEType(path))

	switch constants.MapExtToFormat(ext) {
	case constants.PDF:
		res, err := e.extractPDF(ctx, path)
		res.Duration = time.Since(start)
		return res, err
	case constants.IMAGE:
		res, err := e.extractImage(ctx, path)
		res.Duration = time.Since(start)
		return res, err
	default:
		e.logger.Error("ocr.extract.unsupported", "extension", ext)
		return ExtractionResult{}, fmt.Errorf("unsupported extension: %q", ext)
	}
}

func (e *Extractor) extractImage(ctx context.Context, path string) (ExtractionResult, error) {
	img, err := llm.ReadPageImage(path)
	if err != nil {
		return ExtractionResult{SourceType: constants.IMAGE}, err
	}

	text, err := e.vision.ExtractPage(ctx, llm.ExtractRequest{
		Image:      img,
		PageNumber: 1,
		FileHint:   filepath.Base(path),
	})
	if err != nil {
		return ExtractionResult{SourceType: constants.IMAGE}, err
	}

	doc := e.rec.RecoverOrText(text)
	payload, err := json.Marshal(doc)
	if err != nil {
		return ExtractionResult{SourceType: constants.IMAGE}, err
	}

	return ExtractionResult{
		JSON:       string(payload),
		Pages:      1,
		SourceType: constants.IMAGE,
		Method:     "image-vision",
		Confidence: contentConfidence(string(payload)),
	}, nil
}

func (e *Extractor) extractPDF(ctx context.Context, path string) (ExtractionResult, error) {
	images, cleanup, warns, err := e.renderPDFPages(ctx, path)
	if cleanup != nil {
		defer cleanup()
	}
	if err != nil {
		return ExtractionResult{SourceType: constants.PDF, Warnings: warns}, err
	}

	pages := make([]jsonrec.Page, 0, len(images))
	for i, imgPath := range images {
		pageNo := i + 1
		e.logger.Info("ocr.page.start", "path", path, "page", pageNo, "of", len(images))

		img, rerr := llm.ReadPageImage(imgPath)
		if rerr != nil {
			pages = append(pages, jsonrec.Page{Number: pageNo, Err: rerr})
			continue
		}
		text, verr := e.vision.ExtractPage(ctx, llm.ExtractRequest{
			Image:      img,
			PageNumber: pageNo,
			FileHint:   filepath.Base(path),
		})
		pages = append(pages, jsonrec.Page{Number: pageNo, Text: text, Err: verr})
	}

	merged := e.merger.MergeDocument(pages)
	payload, err := json.Marshal(merged)
	if err != nil {
		return ExtractionResult{SourceType: constants.PDF, Warnings: warns}, err
	}

	return ExtractionResult{
		JSON:       string(payload),
		Pages:      len(images),
		SourceType: constants.PDF,
		Method:     "pdf-vision",
		Warnings:   warns,
		Confidence: contentConfidence(string(payload)),
	}, nil
}
