package translate

import (
	"context"
	"errors"
	"testing"

	"github.com/keyscribe/keyscribe/internal/transform"
)

func TestTranslateWords(t *testing.T) {
	tr := Builtin()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase", "hello world", "hola mundo"},
		{"leading capital", "Hello world", "Hola mundo"},
		{"all caps", "HELLO", "HOLA"},
		{"unknown words pass through", "hello gopher", "hola gopher"},
		{"punctuation preserved", "hello, world!", "hola, mundo!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tr.Transform(context.Background(), transform.Request{
				Text: tt.in,
				Args: map[string]string{"from": "en", "to": "es"},
			})
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Transform(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTranslateRegionalTagFallsBackToBase(t *testing.T) {
	tr := Builtin()
	got, err := tr.Transform(context.Background(), transform.Request{
		Text: "hello",
		Args: map[string]string{"from": "en-US", "to": "es-MX"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got != "hola" {
		t.Errorf("Transform() = %q, want %q", got, "hola")
	}
}

func TestTranslateMissingDictionary(t *testing.T) {
	tr := Builtin()
	_, err := tr.Transform(context.Background(), transform.Request{
		Text: "hello",
		Args: map[string]string{"from": "en", "to": "ja"},
	})
	if !errors.Is(err, ErrNoDictionary) {
		t.Errorf("error = %v, want ErrNoDictionary", err)
	}
}

func TestTranslateBadTag(t *testing.T) {
	tr := Builtin()
	_, err := tr.Transform(context.Background(), transform.Request{
		Text: "hello",
		Args: map[string]string{"from": "en", "to": "!!"},
	})
	if !errors.Is(err, ErrBadLanguage) {
		t.Errorf("error = %v, want ErrBadLanguage", err)
	}
}

func TestAddMergesDictionaries(t *testing.T) {
	tr := New()
	p, err := ParsePair("en", "es")
	if err != nil {
		t.Fatal(err)
	}
	tr.Add(p, Dictionary{"one": "uno"})
	tr.Add(p, Dictionary{"Two": "dos"})

	got, err := tr.Transform(context.Background(), transform.Request{
		Text: "one two",
		Args: map[string]string{"from": "en", "to": "es"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got != "uno dos" {
		t.Errorf("Transform() = %q, want %q", got, "uno dos")
	}
}
