package config

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// decodeJSON overlays a JSON settings document onto base. Absent keys
// keep their base values, matching the YAML/TOML loaders.
func decodeJSON(base Settings, data []byte) Settings {
	s := base
	root := gjson.ParseBytes(data)

	if v := root.Get("selectionModifier"); v.Exists() {
		s.SelectionModifier = v.String()
	}

	if actions := root.Get("actions"); actions.Exists() {
		s.Actions = []ActionSetting{}
		actions.ForEach(func(_, a gjson.Result) bool {
			action := ActionSetting{
				ID:          a.Get("id").String(),
				DisplayName: a.Get("displayName").String(),
				Shortcut:    a.Get("shortcut").String(),
				Kind:        a.Get("kind").String(),
				Transformer: a.Get("transformer").String(),
			}
			if args := a.Get("args"); args.Exists() {
				action.Args = make(map[string]string)
				args.ForEach(func(k, v gjson.Result) bool {
					action.Args[k.String()] = v.String()
					return true
				})
			}
			s.Actions = append(s.Actions, action)
			return true
		})
	}

	if ai := root.Get("ai"); ai.Exists() {
		overlayString(ai, "provider", &s.AI.Provider)
		overlayString(ai, "model", &s.AI.Model)
		overlayString(ai, "apiKey", &s.AI.APIKey)
		overlayInt(ai, "maxTokens", &s.AI.MaxTokens)
		if v := ai.Get("temperature"); v.Exists() {
			s.AI.Temperature = v.Float()
		}
		overlayInt(ai, "timeoutSeconds", &s.AI.TimeoutSeconds)
	}

	if lg := root.Get("logging"); lg.Exists() {
		overlayString(lg, "level", &s.Logging.Level)
		overlayString(lg, "file", &s.Logging.File)
		overlayInt(lg, "maxSizeMb", &s.Logging.MaxSizeMB)
		overlayInt(lg, "maxBackups", &s.Logging.MaxBackups)
	}

	if mu := root.Get("mutation"); mu.Exists() {
		overlayInt(mu, "settleDelayMs", &s.Mutation.SettleDelayMS)
	}
	if ca := root.Get("cache"); ca.Exists() {
		overlayInt(ca, "ttlSeconds", &s.Cache.TTLSeconds)
	}

	return s
}

func overlayString(r gjson.Result, key string, dst *string) {
	if v := r.Get(key); v.Exists() {
		*dst = v.String()
	}
}

func overlayInt(r gjson.Result, key string, dst *int) {
	if v := r.Get(key); v.Exists() {
		*dst = int(v.Int())
	}
}

// SetActionShortcut rewrites one action's shortcut inside a JSON
// settings document, leaving every other byte of the document intact
// (ordering, formatting, comments in unknown fields are preserved by
// the targeted write).
func SetActionShortcut(data []byte, actionID, newShortcut string) ([]byte, error) {
	idx := -1
	gjson.GetBytes(data, "actions").ForEach(func(i, a gjson.Result) bool {
		if a.Get("id").String() == actionID {
			idx = int(i.Int())
			return false
		}
		return true
	})
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, actionID)
	}

	out, err := sjson.SetBytes(data, fmt.Sprintf("actions.%d.shortcut", idx), newShortcut)
	if err != nil {
		return nil, fmt.Errorf("config: update shortcut: %w", err)
	}
	return out, nil
}
