// Package gemini is the generative-text gateway backed by the Gemini
// generateContent REST endpoint.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"weddinginvites/internal/domain"
	"weddinginvites/internal/metrics"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-1.5-flash"

	// textPath locates the first candidate's text in a generateContent response.
	textPath = "candidates.0.content.parts.0.text"

	maxResponseBytes = 4 << 20
)

// Failure reasons, also used as metric outcome labels.
var (
	ErrTransport = errors.New("transport error")
	ErrStatus    = errors.New("unexpected status")
	ErrMalformed = errors.New("malformed response")
	ErrEmptyText = errors.New("empty text")
)

var tracer = otel.GetTracerProvider().Tracer("weddinginvites/internal/adapters/gemini")

// Config configures the gateway.
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

type client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	logger     *slog.Logger
}

// NewClient returns a ContentGenerator that calls the Gemini API.
func NewClient(cfg Config) domain.ContentGenerator {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if strings.TrimSpace(cfg.Model) == "" {
		cfg.Model = defaultModel
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return &client{
		httpClient: cfg.HTTPClient,
		endpoint:   fmt.Sprintf("%s/models/%s:generateContent", strings.TrimSuffix(cfg.BaseURL, "/"), cfg.Model),
		apiKey:     cfg.APIKey,
		logger:     cfg.Logger,
	}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

// Generate performs one call. No retry, no caching.
func (c *client) Generate(ctx context.Context, req domain.GenerationRequest) domain.GenerationOutcome {
	ctx, span := tracer.Start(ctx, "gemini.Generate", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(attribute.Int("prompt.length", len(req.PromptText)))

	start := time.Now()
	text, err := c.call(ctx, req.PromptText)
	outcome := "success"
	if err != nil {
		outcome = failureLabel(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		c.logger.WarnContext(ctx, "generation failed", "reason", outcome, "err", err)
	}
	metrics.ObserveGenerationDuration(outcome, time.Since(start).Seconds())
	if err != nil {
		return domain.GenerationFailed(err)
	}
	return domain.GenerationSucceeded(text)
}

func (c *client) call(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("%w: encode request: %v", ErrTransport, err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: create request: %v", ErrTransport, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("%w: read body: %v", ErrTransport, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode)
	}
	if !gjson.ValidBytes(raw) {
		return "", fmt.Errorf("%w: invalid json", ErrMalformed)
	}
	result := gjson.GetBytes(raw, textPath)
	if !result.Exists() || result.Type != gjson.String {
		return "", fmt.Errorf("%w: missing %s", ErrMalformed, textPath)
	}
	text := result.String()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyText
	}
	return text, nil
}

func failureLabel(err error) string {
	switch {
	case errors.Is(err, ErrStatus):
		return "status"
	case errors.Is(err, ErrMalformed):
		return "malformed"
	case errors.Is(err, ErrEmptyText):
		return "empty"
	default:
		return "transport"
	}
}
