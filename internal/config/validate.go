package config

import (
	"fmt"

	"github.com/keyscribe/keyscribe/internal/input/shortcut"
)

var validModifiers = map[string]bool{
	"ctrl": true, "alt": true, "shift": true, "meta": true,
}

var validKinds = map[string]bool{
	KindTranslation: true, KindTransformation: true, KindLLMPrompt: true,
}

// Validate checks the whole settings document: selection modifier,
// per-action fields, shortcut normalization, unique IDs, and pairwise
// shortcut conflicts. The first problem found is returned, naming the
// offending action so the user can fix the file.
func Validate(s Settings) error {
	if !validModifiers[s.SelectionModifier] {
		return fmt.Errorf("%w: selectionModifier %q (want ctrl, alt, shift or meta)",
			ErrInvalidSettings, s.SelectionModifier)
	}

	seenIDs := make(map[string]bool, len(s.Actions))
	owners := make([]shortcut.Owner, 0, len(s.Actions))

	for _, action := range s.Actions {
		if action.ID == "" {
			return fmt.Errorf("%w: action with empty id", ErrInvalidSettings)
		}
		if seenIDs[action.ID] {
			return fmt.Errorf("%w: duplicate action id %q", ErrInvalidSettings, action.ID)
		}
		seenIDs[action.ID] = true

		if !validKinds[action.Kind] {
			return fmt.Errorf("%w: action %q has unknown kind %q",
				ErrInvalidSettings, action.ID, action.Kind)
		}

		norm, err := shortcut.NormalizeString(action.Shortcut)
		if err != nil {
			return fmt.Errorf("%w: action %q shortcut %q: %v",
				ErrInvalidSettings, action.ID, action.Shortcut, err)
		}

		if c := shortcut.CheckConflict(norm, owners); !c.OK() {
			return fmt.Errorf("%w: action %q shortcut %q %s with %q (%s)",
				ErrShortcutConflict, action.ID, norm, c.Kind, c.Owner.ActionID, c.Owner.Shortcut)
		}
		owners = append(owners, shortcut.Owner{
			Shortcut:    norm,
			ActionID:    action.ID,
			DisplayName: action.DisplayName,
		})
	}

	if s.AI.Provider != "" {
		switch s.AI.Provider {
		case "anthropic", "openai", "gemini":
		default:
			return fmt.Errorf("%w: ai.provider %q", ErrInvalidSettings, s.AI.Provider)
		}
	}

	switch s.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level %q", ErrInvalidSettings, s.Logging.Level)
	}

	return nil
}
