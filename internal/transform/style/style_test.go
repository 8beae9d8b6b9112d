package style

import (
	"context"
	"errors"
	"testing"

	"github.com/keyscribe/keyscribe/internal/transform"
)

func run(t *testing.T, styleName, text string) string {
	t.Helper()
	got, err := New().Transform(context.Background(), transform.Request{
		Text: text,
		Args: map[string]string{"style": styleName},
	})
	if err != nil {
		t.Fatalf("Transform(%s) error: %v", styleName, err)
	}
	return got
}

func TestCaseStyles(t *testing.T) {
	tests := []struct {
		style, in, want string
	}{
		{"upper", "hello world", "HELLO WORLD"},
		{"lower", "HELLO World", "hello world"},
		{"title", "hello world", "Hello World"},
	}
	for _, tt := range tests {
		if got := run(t, tt.style, tt.in); got != tt.want {
			t.Errorf("%s(%q) = %q, want %q", tt.style, tt.in, got, tt.want)
		}
	}
}

func TestLetterformStyles(t *testing.T) {
	tests := []struct {
		style, in, want string
	}{
		{"bold", "Ab1", "\U0001D400\U0001D41B\U0001D7CF"},
		{"monospace", "Go", "\U0001D676\U0001D698"},
		// Italic h is the letterlike Planck constant, not in the
		// mathematical block; digits have no italic forms.
		{"italic", "h7", "ℎ7"},
		{"script", "Be", "ℬℯ"},
		{"bold-italic", "A", "\U0001D468"},
	}
	for _, tt := range tests {
		if got := run(t, tt.style, tt.in); got != tt.want {
			t.Errorf("%s(%q) = %q, want %q", tt.style, tt.in, got, tt.want)
		}
	}
}

func TestNonLettersPassThrough(t *testing.T) {
	if got := run(t, "bold", "a-b c!"); got != "\U0001D41A-\U0001D41B \U0001D41C!" {
		t.Errorf("bold punctuation handling = %q", got)
	}
}

func TestUnknownStyle(t *testing.T) {
	_, err := New().Transform(context.Background(), transform.Request{
		Text: "x",
		Args: map[string]string{"style": "sparkle"},
	})
	if !errors.Is(err, ErrUnknownStyle) {
		t.Errorf("error = %v, want ErrUnknownStyle", err)
	}
}

func TestEmptyInput(t *testing.T) {
	_, err := New().Transform(context.Background(), transform.Request{})
	if !errors.Is(err, transform.ErrEmptyInput) {
		t.Errorf("error = %v, want ErrEmptyInput", err)
	}
}

func TestStylesListsEverything(t *testing.T) {
	names := Styles()
	want := map[string]bool{"upper": true, "bold": true, "script": true}
	seen := map[string]bool{}
	for _, n := range names {
		seen[n] = true
	}
	for n := range want {
		if !seen[n] {
			t.Errorf("Styles() missing %q", n)
		}
	}
}
