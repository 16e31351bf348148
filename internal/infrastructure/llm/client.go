package llm

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/shopsense/backend/internal/domain"
	"golang.org/x/time/rate"
)

// ClientConfig holds the settings for the completion client
type ClientConfig struct {
	APIKey         string
	BaseURL        string
	Model          string
	MaxTokens      int
	Timeout        time.Duration
	RequestsPerMin int
}

// Client handles communication with the language-model completion service.
// Sampling is deterministic (temperature 0) and output is capped at a small
// token ceiling: the model is expected to emit a single JSON object.
type Client struct {
	client      openai.Client
	model       string
	maxTokens   int
	timeout     time.Duration
	rateLimiter *rate.Limiter
}

// NewClient creates a new completion client
func NewClient(cfg ClientConfig) *Client {
	perMin := cfg.RequestsPerMin
	if perMin <= 0 {
		perMin = 60
	}
	// rate.Limit is requests per second; allow a small burst for bursty typing
	limiter := rate.NewLimiter(rate.Limit(float64(perMin)/60.0), 5)

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 256
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Client{
		client:      openai.NewClient(opts...),
		model:       cfg.Model,
		maxTokens:   maxTokens,
		timeout:     timeout,
		rateLimiter: limiter,
	}
}

// Complete sends one prompt to the completion service and returns the raw
// response text with markdown code fences stripped. No retries: the caller
// treats every failure as an interpretation miss.
func (c *Client) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	// Wait for rate limiter
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter error: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.model),
		MaxTokens:   openai.Int(int64(c.maxTokens)),
		Temperature: openai.Float(0),
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfSystem: &openai.ChatCompletionSystemMessageParam{
					Content: openai.ChatCompletionSystemMessageParamContentUnion{
						OfString: openai.String(systemPrompt),
					},
				},
			},
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfString: openai.String(userMessage),
					},
				},
			},
		},
	}

	response, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		log.Printf("[LLM] Completion request failed: %v", err)
		return "", fmt.Errorf("%w: %v", domain.ErrCompletionFailure, err)
	}

	if len(response.Choices) == 0 {
		log.Printf("[LLM] Completion returned no choices")
		return "", fmt.Errorf("%w: empty response", domain.ErrCompletionFailure)
	}

	return trimFences(response.Choices[0].Message.Content), nil
}

// trimFences strips a surrounding markdown code fence, which some models
// emit around JSON even when told not to
func trimFences(message string) string {
	trimmed := strings.TrimSpace(message)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	return strings.TrimSpace(trimmed)
}
