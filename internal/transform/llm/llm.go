package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/keyscribe/keyscribe/internal/transform"
)

// DefaultTimeout is the hard upper bound on one completion request. A
// stuck provider must not hold the busy flag forever.
const DefaultTimeout = 30 * time.Second

// systemPrompt pins the model to pure rewriting output.
const systemPrompt = "You rewrite the user's text as instructed. " +
	"Reply with only the rewritten text, no commentary, no quotes."

var (
	// ErrUnknownProvider indicates an unrecognized provider name.
	ErrUnknownProvider = errors.New("llm: unknown provider")

	// ErrNoAPIKey indicates provider settings without a key.
	ErrNoAPIKey = errors.New("llm: missing API key")

	// ErrEmptyCompletion indicates the model returned no usable text.
	ErrEmptyCompletion = errors.New("llm: empty completion")
)

// Client is the minimal completion surface over a provider SDK.
type Client interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// Settings configure a provider client.
type Settings struct {
	Provider    string // anthropic | openai | gemini
	Model       string
	APIKey      string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

func (s Settings) withDefaults() Settings {
	if s.MaxTokens <= 0 {
		s.MaxTokens = 1024
	}
	if s.Timeout <= 0 {
		s.Timeout = DefaultTimeout
	}
	return s
}

// NewClient builds the provider client named by s.Provider.
func NewClient(s Settings) (Client, error) {
	if s.APIKey == "" {
		return nil, fmt.Errorf("%w (provider %q)", ErrNoAPIKey, s.Provider)
	}
	s = s.withDefaults()

	switch s.Provider {
	case "anthropic":
		return newAnthropic(s), nil
	case "openai":
		return newOpenAI(s), nil
	case "gemini":
		return newGemini(s)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, s.Provider)
}

// Rewriter is a transform.Transformer sending the selection and the
// action's "prompt" argument to a model, bounded by a fixed timeout.
type Rewriter struct {
	client  Client
	timeout time.Duration
}

// New creates a Rewriter. A non-positive timeout uses DefaultTimeout.
func New(client Client, timeout time.Duration) *Rewriter {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Rewriter{client: client, timeout: timeout}
}

// Name returns "llm".
func (*Rewriter) Name() string { return "llm" }

// Transform implements transform.Transformer.
func (r *Rewriter) Transform(ctx context.Context, req transform.Request) (string, error) {
	if req.Text == "" {
		return "", transform.ErrEmptyInput
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	out, err := r.client.Complete(ctx, systemPrompt, buildPrompt(req))
	if err != nil {
		return "", err
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return "", ErrEmptyCompletion
	}
	return out, nil
}

func buildPrompt(req transform.Request) string {
	instruction := req.Arg("prompt", "Improve the wording of this text.")
	return instruction + "\n\n" + req.Text
}
