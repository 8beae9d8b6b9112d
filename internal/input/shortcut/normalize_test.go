package shortcut

import (
	"errors"
	"testing"

	"github.com/keyscribe/keyscribe/internal/input/key"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		want Normalized
	}{
		{
			name: "single key",
			spec: NewSpec(key.ModCtrl|key.ModAlt, "t"),
			want: "Ctrl+Alt+T",
		},
		{
			name: "two keys sorted",
			spec: NewSpec(key.ModCtrl|key.ModAlt, "t", "1"),
			want: "Ctrl+Alt+1+T",
		},
		{
			name: "two keys reversed entry order",
			spec: NewSpec(key.ModCtrl|key.ModAlt, "1", "t"),
			want: "Ctrl+Alt+1+T",
		},
		{
			name: "keypad digit maps to base row",
			spec: NewSpec(key.ModMeta, "Numpad7"),
			want: "Meta+7",
		},
		{
			name: "modifier order is fixed",
			spec: NewSpec(key.ModMeta|key.ModShift|key.ModCtrl, "p"),
			want: "Ctrl+Shift+Meta+P",
		},
		{
			name: "special key passes through",
			spec: NewSpec(key.ModAlt, "Enter"),
			want: "Alt+Enter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.spec)
			if err != nil {
				t.Fatalf("Normalize(%v) error = %v", tt.spec, err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%v) = %q, want %q", tt.spec, got, tt.want)
			}
		})
	}
}

func TestNormalizeRejects(t *testing.T) {
	tests := []struct {
		name    string
		spec    Spec
		wantErr error
	}{
		{"empty", Spec{}, ErrEmptySpec},
		{"no modifier", NewSpec(key.ModNone, "t"), ErrNoModifier},
		{"modifier only", NewSpec(key.ModCtrl), ErrNoKey},
		{"three keys", NewSpec(key.ModCtrl, "a", "b", "c"), ErrTooManyKeys},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.spec)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Normalize(%v) error = %v, want %v", tt.spec, err, tt.wantErr)
			}
		})
	}
}

func TestNormalizeStringIdempotent(t *testing.T) {
	inputs := []string{
		"Ctrl+Alt+T",
		"ctrl+alt+t+1",
		"Meta+Shift+F5",
		"alt+Numpad3",
	}

	for _, in := range inputs {
		first, err := NormalizeString(in)
		if err != nil {
			t.Fatalf("NormalizeString(%q) error = %v", in, err)
		}
		second, err := NormalizeString(string(first))
		if err != nil {
			t.Fatalf("NormalizeString(%q) error = %v", first, err)
		}
		if first != second {
			t.Errorf("NormalizeString not idempotent: %q -> %q -> %q", in, first, second)
		}
	}
}

func TestSpecEqualIgnoresKeyOrder(t *testing.T) {
	a := NewSpec(key.ModCtrl|key.ModAlt, "T", "1")
	b := NewSpec(key.ModCtrl|key.ModAlt, "1", "T")
	if !a.Equal(b) {
		t.Errorf("specs %v and %v should be equal", a, b)
	}

	c := NewSpec(key.ModCtrl, "T", "1")
	if a.Equal(c) {
		t.Errorf("specs %v and %v should differ (modifiers)", a, c)
	}
}

func TestSpecDisplayPreservesEntryOrder(t *testing.T) {
	spec := NewSpec(key.ModCtrl|key.ModAlt, "t", "1")
	if got := spec.Display(); got != "Ctrl+Alt+T+1" {
		t.Errorf("Display() = %q, want %q", got, "Ctrl+Alt+T+1")
	}
}

func TestNormalizedAccessors(t *testing.T) {
	n, err := NormalizeString("ctrl+shift+t+1")
	if err != nil {
		t.Fatal(err)
	}
	if n.Modifiers() != key.ModCtrl|key.ModShift {
		t.Errorf("Modifiers() = %v", n.Modifiers())
	}
	keys := n.Keys()
	if len(keys) != 2 || keys[0] != "1" || keys[1] != "T" {
		t.Errorf("Keys() = %v, want [1 T]", keys)
	}
}
