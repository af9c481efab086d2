//go:generate go run go.uber.org/mock/mockgen -source=icebreaker.go -destination=../mocks/mock_suggester.go -package=mocks
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"chat-mock/errors"
	"chat-mock/observability"
)

const prompt = "Generate a fun and lighthearted ice breaker question to start " +
	"a conversation with someone new on a chat app. Keep it short, friendly, " +
	"and under 15 words."

const (
	// FallbackOnEmpty replaces a blank generation result.
	FallbackOnEmpty = "If you could have any superpower, what would it be?"
	// FallbackOnError replaces the result of any transport or API failure.
	FallbackOnError = "What's the best thing that happened to you today?"
)

// Suggester seeds the compose box with an opening line. Implementations
// never fail; every error path resolves to a usable fallback string.
type Suggester interface {
	Suggest(ctx context.Context) string
}

// IceBreakerClient calls the Gemini text generation API. The generation
// parameters mirror the product tuning: high temperature for variety and a
// zero thinking budget for low latency.
type IceBreakerClient struct {
	cfg        Config
	httpClient *http.Client
	stats      *observability.Stats
	log        *slog.Logger
}

func NewIceBreakerClient(cfg Config, stats *observability.Stats, log *slog.Logger) *IceBreakerClient {
	return &IceBreakerClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		stats:      stats,
		log:        log,
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature    float64        `json:"temperature"`
	TopK           int            `json:"topK"`
	TopP           float64        `json:"topP"`
	ThinkingConfig thinkingConfig `json:"thinkingConfig"`
}

type thinkingConfig struct {
	ThinkingBudget int `json:"thinkingBudget"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Suggest returns an ice breaker line. Timeout, transport errors, non-2xx
// responses, and empty generations all collapse into the fixed fallbacks;
// the failure is logged for diagnostics only.
func (c *IceBreakerClient) Suggest(ctx context.Context) string {
	c.stats.IncrIceBreakerCalls()

	text, err := c.generate(ctx)
	if err != nil {
		c.stats.IncrIceBreakerFallbacks()
		if err == errors.ErrEmptySuggestion {
			return FallbackOnEmpty
		}
		c.log.Warn("Ice breaker generation failed", "error", err)
		return FallbackOnError
	}
	return text
}

func (c *IceBreakerClient) generate(ctx context.Context) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature: 0.9,
			TopK:        50,
			TopP:        0.95,
			// Disable thinking for low latency
			ThinkingConfig: thinkingConfig{ThinkingBudget: 0},
		},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.cfg.BaseURL, c.cfg.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("generation API returned %s", resp.Status)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var parsed generateResponse
	if err = json.Unmarshal(raw, &parsed); err != nil {
		return "", err
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.ErrEmptySuggestion
	}

	// Clean up quotes the model tends to wrap questions in
	text := strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text)
	text = strings.ReplaceAll(text, `"`, "")
	if text == "" {
		return "", errors.ErrEmptySuggestion
	}
	return text, nil
}

// Disabled is the Suggester used when no API key is configured: it always
// serves the empty-result fallback without touching the network.
type Disabled struct{}

func (Disabled) Suggest(context.Context) string {
	return FallbackOnEmpty
}
