package key

import "strings"

// keypadDigits maps numeric-pad key names to their base-row digit.
// Host surfaces report keypad keys under several spellings.
var keypadDigits = map[string]string{
	"kp0": "0", "kp1": "1", "kp2": "2", "kp3": "3", "kp4": "4",
	"kp5": "5", "kp6": "6", "kp7": "7", "kp8": "8", "kp9": "9",
	"numpad0": "0", "numpad1": "1", "numpad2": "2", "numpad3": "3",
	"numpad4": "4", "numpad5": "5", "numpad6": "6", "numpad7": "7",
	"numpad8": "8", "numpad9": "9",
}

// specialNames maps lowercase aliases to canonical special-key names.
var specialNames = map[string]string{
	"escape":      "Escape",
	"esc":         "Escape",
	"enter":       "Enter",
	"return":      "Enter",
	"tab":         "Tab",
	"backspace":   "Backspace",
	"delete":      "Delete",
	"del":         "Delete",
	"insert":      "Insert",
	"ins":         "Insert",
	"home":        "Home",
	"end":         "End",
	"pageup":      "PageUp",
	"pgup":        "PageUp",
	"pagedown":    "PageDown",
	"pgdn":        "PageDown",
	"up":          "Up",
	"arrowup":     "Up",
	"down":        "Down",
	"arrowdown":   "Down",
	"left":        "Left",
	"arrowleft":   "Left",
	"right":       "Right",
	"arrowright":  "Right",
	"space":       "Space",
	"f1":          "F1",
	"f2":          "F2",
	"f3":          "F3",
	"f4":          "F4",
	"f5":          "F5",
	"f6":          "F6",
	"f7":          "F7",
	"f8":          "F8",
	"f9":          "F9",
	"f10":         "F10",
	"f11":         "F11",
	"f12":         "F12",
	"printscreen": "PrintScreen",
	"scrolllock":  "ScrollLock",
	"numlock":     "NumLock",
	"capslock":    "CapsLock",
	"pause":       "Pause",
}

// CanonicalName maps a raw key name from a host surface to its canonical
// form: keypad digits become base-row digits, special-key aliases collapse
// to one spelling, and single alphanumeric characters are upper-cased.
// Unknown multi-character names are returned trimmed but otherwise as-is.
func CanonicalName(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	lower := strings.ToLower(raw)
	if d, ok := keypadDigits[lower]; ok {
		return d
	}
	if name, ok := specialNames[lower]; ok {
		return name
	}

	runes := []rune(raw)
	if len(runes) == 1 {
		r := runes[0]
		if r == ' ' {
			return "Space"
		}
		return strings.ToUpper(string(r))
	}
	return raw
}

// IsSpecialName returns true if name (after canonicalization) is a
// special, non-character key such as "Enter" or "F5".
func IsSpecialName(name string) bool {
	_, ok := specialNames[strings.ToLower(name)]
	return ok
}
