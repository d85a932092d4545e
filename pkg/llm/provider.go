package llm

import "context"

// Message is one turn of a chat exchange. Role is "user", "assistant" or
// "system"; providers map other role names onto their own vocabulary.
type Message struct {
	Role    string
	Content string
}

// Options carries per-call overrides. Zero values fall back to the
// provider's defaults.
type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string
}

type Option func(*Options)

func WithTemperature(temp float64) Option {
	return func(o *Options) { o.Temperature = temp }
}

func WithModel(model string) Option {
	return func(o *Options) { o.Model = model }
}

// LLMProvider abstracts a chat-completion backend. Implementations live in
// the sibling gemini, openai and ollama packages.
type LLMProvider interface {
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)
	// Generate is single-prompt shorthand for Chat.
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)
}
