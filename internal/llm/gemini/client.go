package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"github.com/docuvault/field-extractor/internal/llm"
)

// Client implements llm.VisionExtractor on the Gemini API.
type Client struct {
	cfg    Config
	client *genai.Client
	log    *slog.Logger
}

func NewClient(ctx context.Context, cfg Config, logger *slog.Logger) (*Client, error) {
	cfg.applyDefaults()
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}

	gc, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &Client{cfg: cfg, client: gc, log: logger}, nil
}

// ExtractPage sends one page image with the JSON-only OCR prompt. Deadline
// failures get a single retry with the short prompt and a smaller token
// budget before the error is surfaced.
func (c *Client) ExtractPage(ctx context.Context, req llm.ExtractRequest) (string, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"page", req.PageNumber,
		"document_id", req.DocumentID,
		"image_bytes", len(req.Image.Data),
		"mime", req.Image.MIMEType,
	)

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	text, err := c.generate(ctx, llm.BuildOCRPrompt(), req.Image, c.cfg.MaxOutputTokens)
	if err != nil && isDeadlineError(err) {
		c.log.Warn("llm.extract.deadline_retry",
			"req_id", rid, "page", req.PageNumber, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		text, err = c.generate(ctx, llm.BuildFallbackPrompt(), req.Image, c.cfg.MaxOutputTokens/2)
	}
	if err != nil {
		c.log.Error("llm.extract.error",
			"req_id", rid, "page", req.PageNumber, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", fmt.Errorf("gemini extract page %d: %w", req.PageNumber, err)
	}

	if strings.TrimSpace(text) == "" {
		c.log.Warn("llm.extract.empty_response", "req_id", rid, "page", req.PageNumber)
		text = "{}"
	}

	c.log.Info("llm.extract.ok",
		"req_id", rid, "page", req.PageNumber,
		"chars", len(text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return text, nil
}

func (c *Client) generate(ctx context.Context, prompt string, img llm.PageImage, maxTokens int32) (string, error) {
	model := c.client.GenerativeModel(c.cfg.Model)
	model.SetTemperature(c.cfg.Temperature)
	model.SetTopP(0.8)
	model.SetTopK(40)
	model.SetMaxOutputTokens(maxTokens)

	resp, err := model.GenerateContent(ctx,
		genai.Text(prompt),
		genai.Blob{MIMEType: img.MIMEType, Data: img.Data},
	)
	if err != nil {
		return "", err
	}
	return textFromResponse(resp)
}

func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

func textFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", nil
	}
	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	return strings.Join(parts, ""), nil
}

func isDeadlineError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "504") ||
		strings.Contains(msg, "Deadline Exceeded") ||
		strings.Contains(msg, "context deadline exceeded")
}
