package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/docuvault/field-extractor/gen/proto/docs/v1"
	"github.com/docuvault/field-extractor/internal/async"
	"github.com/docuvault/field-extractor/internal/common"
	"github.com/docuvault/field-extractor/internal/export"
	"github.com/docuvault/field-extractor/internal/fields"
	"github.com/docuvault/field-extractor/internal/ingest"
	"github.com/docuvault/field-extractor/internal/llm/gemini"
	"github.com/docuvault/field-extractor/internal/ocr"
	pipeline "github.com/docuvault/field-extractor/internal/pipeline"
	repo "github.com/docuvault/field-extractor/internal/repository"
	svc "github.com/docuvault/field-extractor/internal/server"
)

func main() {
	// Setup structured logger that outputs messages with variables but no time/level
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	_ = godotenv.Load()
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

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

	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(6),
		async.WithQueueSize(512),
		async.WithProcessTimeout(3*time.Minute),
	)

	ingestor := ingest.NewFSIngestor(docsRepo, logger)
	exporter := export.NewService(docsRepo, fieldsRepo, jobsRepo, logger)
	extraction := svc.NewExtractionService(ingestor, processor, docsRepo, jobsRepo, fieldsRepo, exporter, logger)
	v1.RegisterExtractionServiceServer(grpcServer, extraction)

	// Register gRPC health service; empty string means overall server health
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	// Optional drop-folder watcher feeding the worker queue
	if cfg.Ingest.WatchDir != "" {
		evCh, errCh, werr := ingest.StartWatcher(ctx, ingest.WatchConfig{
			Roots:       []string{cfg.Ingest.WatchDir},
			InitialScan: true,
			Debounce:    cfg.Ingest.DebounceDelay,
		}, logger)
		if werr != nil {
			logger.Error("failed to start ingest watcher", "dir", cfg.Ingest.WatchDir, "error", werr)
			os.Exit(1)
		}
		go func() {
			for path := range evCh {
				r, ierr := ingestor.IngestPath(ctx, path)
				if ierr != nil {
					logger.Error("watch ingest failed", "path", path, "error", ierr)
					continue
				}
				docID, perr := uuid.Parse(r.DocumentID)
				if perr != nil {
					continue
				}
				_ = queue.Enqueue(ctx, async.Job{DocumentID: docID, SubmittedAt: time.Now()})
			}
		}()
		go func() {
			for werr := range errCh {
				logger.Error("ingest watcher error", "error", werr)
			}
		}()
		logger.Info("watching for documents", "dir", cfg.Ingest.WatchDir)
	}

	logger.Info("field-extractor listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
