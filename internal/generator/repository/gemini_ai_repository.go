package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang-synth-datagen/internal/entity"
	"golang-synth-datagen/internal/generator/config"
	"golang-synth-datagen/internal/generator/dto"
	"golang-synth-datagen/pkg/logger"
	"golang-synth-datagen/pkg/ratelimit"
	"golang-synth-datagen/pkg/retry"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

const maxGenerateAttempts = 3

// geminiAIRepository is an implementation of AIRepository backed by the
// Google Gemini API. Rate-limit state lives on the instance, so independent
// clients never cross-contaminate.
type geminiAIRepository struct {
	client         *http.Client
	cfg            *config.Config
	logger         *logger.Logger
	requestLimiter *rate.Limiter
	tokenLimiter   *ratelimit.TokenLimiter
	genAiClient    *genai.Client
	backoff        retry.BackoffFunc
}

// NewGeminiAIRepository creates a new instance of geminiAIRepository.
func NewGeminiAIRepository(cfg *config.Config, log *logger.Logger, genAiClient *genai.Client) (AIRepository, error) {
	secondsPerRequest := time.Minute / time.Duration(cfg.Gemini.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)
	tokenLimiter := ratelimit.NewTokenLimiter(cfg.Gemini.MaxTokenPerMinute)

	return &geminiAIRepository{
		client: &http.Client{
			Timeout: 90 * time.Second,
		},
		cfg:            cfg,
		logger:         log,
		requestLimiter: requestLimiter,
		tokenLimiter:   tokenLimiter,
		genAiClient:    genAiClient,
		backoff:        retry.Exponential(time.Second),
	}, nil
}

// Generate produces a raw text completion, retrying transport failures with
// exponential backoff. After retries are exhausted the failure propagates to
// the caller as fatal for this call.
func (r *geminiAIRepository) Generate(ctx context.Context, prompt string, temperature float64) (string, error) {
	var text string
	err := retry.Do(ctx, maxGenerateAttempts, r.backoff, func() error {
		out, err := r.executeGeminiAIRequest(ctx, prompt, temperature)
		if err != nil {
			r.logger.Warn("Gemini request failed, will retry if attempts remain", logger.ErrorField(err))
			return err
		}
		text = out
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate after %d attempts: %w", maxGenerateAttempts, err)
	}
	return text, nil
}

// GenerateJSON generates text and parses it into records.
func (r *geminiAIRepository) GenerateJSON(ctx context.Context, prompt string, temperature float64) ([]entity.Record, error) {
	text, err := r.Generate(ctx, prompt, temperature)
	if err != nil {
		return nil, err
	}

	records, err := ParseRecords(text)
	if err != nil {
		r.logger.Error("Failed to parse model response as JSON records",
			logger.ErrorField(err),
			logger.StringField("response_head", head(text, 500)),
		)
		return nil, err
	}
	return records, nil
}

func (r *geminiAIRepository) executeGeminiAIRequest(ctx context.Context, prompt string, temperature float64) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, "user"),
	}
	tokenResp, err := r.genAiClient.Models.CountTokens(ctx, r.cfg.Gemini.Model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("failed to count tokens: %w", err)
	}

	r.logger.Debug("Gemini token count",
		logger.IntField("total_tokens", int(tokenResp.TotalTokens)),
		logger.IntField("remaining", r.tokenLimiter.GetRemaining()),
	)

	if err := r.tokenLimiter.Wait(ctx, int(tokenResp.TotalTokens)); err != nil {
		return "", fmt.Errorf("failed to wait for token limit: %w", err)
	}
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("failed to wait for request limit: %w", err)
	}

	payload := dto.GeminiAPIRequest{
		Contents:         []dto.Content{{Parts: []dto.Part{{Text: prompt}}}},
		GenerationConfig: &dto.GenerationConfig{Temperature: temperature},
	}
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	apiURL := fmt.Sprintf("%s/%s:generateContent?key=%s", r.cfg.Gemini.BaseURL, r.cfg.Gemini.Model, r.cfg.Gemini.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return "", fmt.Errorf("failed to create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request to Gemini API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("received non-OK response from Gemini API: %d - %s", resp.StatusCode, string(body))
	}

	var geminiResp dto.GeminiAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", fmt.Errorf("failed to decode response body: %w", err)
	}
	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("invalid response from Gemini API: no content found")
	}
	return geminiResp.Candidates[0].Content.Parts[0].Text, nil
}

// ParseRecords extracts JSON records from model output that may be wrapped in
// Markdown code fences. A bare JSON object is normalized into a one-element
// slice. Parse failures return ErrInvalidPayload, distinct from transport
// errors.
func ParseRecords(text string) ([]entity.Record, error) {
	text = stripCodeFences(text)

	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	switch v := parsed.(type) {
	case map[string]any:
		return []entity.Record{entity.Record(v)}, nil
	case []any:
		records := make([]entity.Record, 0, len(v))
		for _, item := range v {
			obj, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: array element is not an object", ErrInvalidPayload)
			}
			records = append(records, entity.Record(obj))
		}
		return records, nil
	default:
		return nil, fmt.Errorf("%w: unexpected JSON type %T", ErrInvalidPayload, parsed)
	}
}

func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```json"); idx >= 0 {
		text = text[idx+len("```json"):]
		if end := strings.Index(text, "```"); end >= 0 {
			text = text[:end]
		}
	} else if idx := strings.Index(text, "```"); idx >= 0 {
		text = text[idx+len("```"):]
		if end := strings.Index(text, "```"); end >= 0 {
			text = text[:end]
		}
	}
	return strings.TrimSpace(text)
}

func head(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
