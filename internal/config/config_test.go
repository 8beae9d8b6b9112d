package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const jsonDoc = `{
  "selectionModifier": "alt",
  "actions": [
    {
      "id": "translate.es",
      "displayName": "Translate to Spanish",
      "shortcut": "ctrl+shift+t",
      "kind": "translation",
      "args": {"from": "en", "to": "es"}
    },
    {
      "id": "style.bold",
      "shortcut": "Ctrl+Shift+B",
      "kind": "transformation",
      "args": {"style": "bold"}
    }
  ],
  "ai": {"provider": "openai", "model": "gpt-4o-mini", "maxTokens": 512},
  "mutation": {"settleDelayMs": 25}
}`

func TestParseJSON(t *testing.T) {
	s, err := Parse([]byte(jsonDoc), ".json")
	if err != nil {
		t.Fatal(err)
	}
	if s.SelectionModifier != "alt" {
		t.Errorf("SelectionModifier = %q", s.SelectionModifier)
	}
	if len(s.Actions) != 2 {
		t.Fatalf("len(Actions) = %d, want 2", len(s.Actions))
	}
	if s.Actions[0].Args["to"] != "es" {
		t.Errorf("Args[to] = %q", s.Actions[0].Args["to"])
	}
	if s.AI.Provider != "openai" || s.AI.MaxTokens != 512 {
		t.Errorf("AI = %+v", s.AI)
	}
	if s.Mutation.SettleDelay() != 25*time.Millisecond {
		t.Errorf("SettleDelay = %v", s.Mutation.SettleDelay())
	}
	// Absent sections keep defaults.
	if s.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want default info", s.Logging.Level)
	}
	if s.Cache.TTLSeconds != 600 {
		t.Errorf("Cache.TTLSeconds = %d, want default 600", s.Cache.TTLSeconds)
	}
}

func TestParseYAML(t *testing.T) {
	doc := `
selectionModifier: meta
actions:
  - id: style.upper
    shortcut: Alt+U
    kind: transformation
    args:
      style: upper
`
	s, err := Parse([]byte(doc), ".yaml")
	if err != nil {
		t.Fatal(err)
	}
	if s.SelectionModifier != "meta" {
		t.Errorf("SelectionModifier = %q", s.SelectionModifier)
	}
	if len(s.Actions) != 1 || s.Actions[0].ID != "style.upper" {
		t.Errorf("Actions = %+v", s.Actions)
	}
}

func TestParseTOML(t *testing.T) {
	doc := `
selectionModifier = "ctrl"

[[actions]]
id = "llm.formal"
shortcut = "Ctrl+Alt+F"
kind = "llmPrompt"

[actions.args]
prompt = "Make this formal."
`
	s, err := Parse([]byte(doc), ".toml")
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Actions) != 1 || s.Actions[0].Args["prompt"] == "" {
		t.Errorf("Actions = %+v", s.Actions)
	}
}

func TestParseUnsupportedFormat(t *testing.T) {
	if _, err := Parse(nil, ".ini"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestParseJSONSchemaRejection(t *testing.T) {
	doc := `{"actions": [{"id": "x", "shortcut": "Ctrl+X", "kind": "sorcery"}]}`
	_, err := Parse([]byte(doc), ".json")
	if !errors.Is(err, ErrInvalidSettings) {
		t.Errorf("error = %v, want ErrInvalidSettings", err)
	}
}

func TestValidateRejectsConflicts(t *testing.T) {
	s := Default()
	s.Actions = []ActionSetting{
		{ID: "a", Shortcut: "Ctrl+K", Kind: KindTransformation},
		{ID: "b", Shortcut: "Ctrl+K+M", Kind: KindTransformation},
	}
	err := Validate(s)
	if !errors.Is(err, ErrShortcutConflict) {
		t.Fatalf("error = %v, want ErrShortcutConflict", err)
	}
	// The offending owner is named.
	if !strings.Contains(err.Error(), `"a"`) {
		t.Errorf("error %q does not name the conflicting owner", err)
	}
}

func TestValidateRejectsDuplicateIDs(t *testing.T) {
	s := Default()
	s.Actions = []ActionSetting{
		{ID: "same", Shortcut: "Ctrl+1", Kind: KindTransformation},
		{ID: "same", Shortcut: "Ctrl+2", Kind: KindTransformation},
	}
	if err := Validate(s); !errors.Is(err, ErrInvalidSettings) {
		t.Errorf("error = %v, want ErrInvalidSettings", err)
	}
}

func TestValidateRejectsBadModifier(t *testing.T) {
	s := Default()
	s.SelectionModifier = "hyper"
	if err := Validate(s); !errors.Is(err, ErrInvalidSettings) {
		t.Errorf("error = %v, want ErrInvalidSettings", err)
	}
}

func TestDefaultValidates(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Errorf("Default() does not validate: %v", err)
	}
}

func TestSetActionShortcut(t *testing.T) {
	out, err := SetActionShortcut([]byte(jsonDoc), "style.bold", "Ctrl+Alt+B")
	if err != nil {
		t.Fatal(err)
	}

	s, err := Parse(out, ".json")
	if err != nil {
		t.Fatal(err)
	}
	if s.Actions[1].Shortcut != "Ctrl+Alt+B" {
		t.Errorf("shortcut = %q, want updated value", s.Actions[1].Shortcut)
	}
	// The untouched action is byte-identical in the document.
	if !strings.Contains(string(out), `"shortcut": "ctrl+shift+t"`) {
		t.Error("targeted write disturbed an unrelated action")
	}

	if _, err := SetActionShortcut([]byte(jsonDoc), "ghost", "Ctrl+G"); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("error = %v, want ErrUnknownAction", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	if err := os.WriteFile(path, []byte(jsonDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Actions) != 2 {
		t.Errorf("len(Actions) = %d, want 2", len(s.Actions))
	}
}

func TestWatcherReloadsValidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	if err := os.WriteFile(path, []byte(jsonDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path, 20*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	changed := make(chan Settings, 1)
	w.OnChange = func(s Settings) {
		select {
		case changed <- s:
		default:
		}
	}
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}

	updated := strings.Replace(jsonDoc, `"alt"`, `"shift"`, 1)
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case s := <-changed:
		if s.SelectionModifier != "shift" {
			t.Errorf("SelectionModifier = %q, want shift", s.SelectionModifier)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload delivered")
	}
}

func TestWatcherKeepsOldSettingsOnBadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	if err := os.WriteFile(path, []byte(jsonDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path, 20*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	failed := make(chan error, 1)
	w.OnError = func(err error) {
		select {
		case failed <- err:
		default:
		}
	}
	w.OnChange = func(Settings) {
		t.Error("OnChange fired for an invalid file")
	}
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}

	// Two actions sharing one shortcut must be rejected wholesale.
	bad := strings.Replace(jsonDoc, `"Ctrl+Shift+B"`, `"ctrl+shift+t"`, 1)
	if err := os.WriteFile(path, []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case err := <-failed:
		if !errors.Is(err, ErrShortcutConflict) {
			t.Errorf("error = %v, want ErrShortcutConflict", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no error delivered")
	}
}
