package extraction

import (
	"context"
	"strings"
	"time"

	"personal-crm-be/pkg/llm"

	"go.uber.org/zap"
)

const (
	maxAttempts      = 3
	baseRetryDelay   = 2 * time.Second
	defaultCallLimit = 60 * time.Second
)

// LLMCategorizer adapts an LLMProvider to the Categorizer interface: prompt,
// call with rate-limit retry, parse with repair.
type LLMCategorizer struct {
	name        string
	provider    llm.LLMProvider
	callTimeout time.Duration
	logger      *zap.Logger
}

var _ Categorizer = &LLMCategorizer{}

func NewLLMCategorizer(name string, provider llm.LLMProvider, callTimeout time.Duration, logger *zap.Logger) *LLMCategorizer {
	if callTimeout <= 0 {
		callTimeout = defaultCallLimit
	}
	return &LLMCategorizer{
		name:        name,
		provider:    provider,
		callTimeout: callTimeout,
		logger:      logger.Named("categorizer." + name),
	}
}

func (c *LLMCategorizer) Name() string {
	return c.name
}

func (c *LLMCategorizer) Categorize(ctx context.Context, note, contactName, history string) (CategoryMap, error) {
	messages := []llm.Message{
		{Role: "system", Content: buildSystemPrompt()},
		{Role: "user", Content: buildUserPrompt(note, contactName, history)},
	}

	raw, err := c.chatWithRetry(ctx, messages)
	if err != nil {
		return nil, err
	}

	result, err := parseCategoryResponse(raw)
	if err != nil {
		c.logger.Warn("failed to parse categorization response",
			zap.Int("response_len", len(raw)),
			zap.Error(err))
		return nil, err
	}

	c.logger.Info("categorization completed",
		zap.String("contact", contactName),
		zap.Int("categories", len(result)))
	return result, nil
}

// chatWithRetry retries rate-limited calls with blocking exponential backoff
// (base 2s, doubled per attempt). Other errors fail immediately so the chain
// can move to the next provider.
func (c *LLMCategorizer) chatWithRetry(ctx context.Context, messages []llm.Message) (string, error) {
	delay := baseRetryDelay
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
		raw, err := c.provider.Chat(callCtx, messages, llm.WithTemperature(0.3))
		cancel()
		if err == nil {
			return raw, nil
		}
		lastErr = err

		if !isRateLimitError(err) || attempt == maxAttempts {
			return "", err
		}

		c.logger.Warn("rate limit hit, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("delay", delay))
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
		delay *= 2
	}

	return "", lastErr
}

func isRateLimitError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "resource exhausted") ||
		strings.Contains(msg, "resource_exhausted")
}
