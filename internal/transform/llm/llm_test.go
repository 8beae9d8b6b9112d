package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/keyscribe/keyscribe/internal/transform"
)

type fakeClient struct {
	gotSystem string
	gotPrompt string
	reply     string
	err       error
	delay     time.Duration
}

func (f *fakeClient) Complete(ctx context.Context, system, prompt string) (string, error) {
	f.gotSystem = system
	f.gotPrompt = prompt
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.reply, f.err
}

func TestRewriterPromptAssembly(t *testing.T) {
	fake := &fakeClient{reply: "better text"}
	r := New(fake, time.Second)

	got, err := r.Transform(context.Background(), transform.Request{
		Text: "raw text",
		Args: map[string]string{"prompt": "Make this formal."},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got != "better text" {
		t.Errorf("Transform() = %q, want %q", got, "better text")
	}
	if !strings.HasPrefix(fake.gotPrompt, "Make this formal.") ||
		!strings.HasSuffix(fake.gotPrompt, "raw text") {
		t.Errorf("prompt = %q, want instruction followed by text", fake.gotPrompt)
	}
	if fake.gotSystem == "" {
		t.Error("system prompt not sent")
	}
}

func TestRewriterTimeout(t *testing.T) {
	fake := &fakeClient{reply: "late", delay: time.Second}
	r := New(fake, 10*time.Millisecond)

	_, err := r.Transform(context.Background(), transform.Request{Text: "x"})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, want context.DeadlineExceeded", err)
	}
}

func TestRewriterTrimsAndRejectsEmpty(t *testing.T) {
	fake := &fakeClient{reply: "  spaced \n"}
	r := New(fake, time.Second)
	got, err := r.Transform(context.Background(), transform.Request{Text: "x"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "spaced" {
		t.Errorf("Transform() = %q, want trimmed %q", got, "spaced")
	}

	fake.reply = "   "
	if _, err := r.Transform(context.Background(), transform.Request{Text: "x"}); !errors.Is(err, ErrEmptyCompletion) {
		t.Errorf("error = %v, want ErrEmptyCompletion", err)
	}
}

func TestRewriterEmptyInput(t *testing.T) {
	r := New(&fakeClient{}, time.Second)
	if _, err := r.Transform(context.Background(), transform.Request{}); !errors.Is(err, transform.ErrEmptyInput) {
		t.Errorf("error = %v, want ErrEmptyInput", err)
	}
}

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient(Settings{Provider: "anthropic"}); !errors.Is(err, ErrNoAPIKey) {
		t.Errorf("error = %v, want ErrNoAPIKey", err)
	}
	if _, err := NewClient(Settings{Provider: "skynet", APIKey: "k"}); !errors.Is(err, ErrUnknownProvider) {
		t.Errorf("error = %v, want ErrUnknownProvider", err)
	}
	if _, err := NewClient(Settings{Provider: "anthropic", APIKey: "k", Model: "m"}); err != nil {
		t.Errorf("NewClient(anthropic) error = %v", err)
	}
	if _, err := NewClient(Settings{Provider: "openai", APIKey: "k", Model: "m"}); err != nil {
		t.Errorf("NewClient(openai) error = %v", err)
	}
}
