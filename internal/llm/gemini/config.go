package gemini

import (
	"os"
	"time"
)

// Config for the Gemini vision client.
type Config struct {
	APIKey      string        // if empty, falls back to env GEMINI_API_KEY
	Model       string        // e.g. "gemini-1.5-flash"
	Temperature float32       // 0..2
	Timeout     time.Duration // per-page request timeout

	// MaxOutputTokens bounds the primary attempt; the deadline fallback
	// retries with half this budget and a shorter prompt.
	MaxOutputTokens int32
}

func (c *Config) applyDefaults() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.Model == "" {
		c.Model = "gemini-1.5-flash"
	}
	if c.Temperature <= 0 {
		c.Temperature = 0.1
	}
	if c.Timeout <= 0 {
		c.Timeout = 45 * time.Second
	}
	if c.MaxOutputTokens <= 0 {
		c.MaxOutputTokens = 8192
	}
}
