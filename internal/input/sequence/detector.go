package sequence

import (
	"time"

	"github.com/keyscribe/keyscribe/internal/input/key"
	"github.com/keyscribe/keyscribe/internal/input/shortcut"
)

// Lookup answers whether a canonical shortcut is registered. The
// dispatch table implements it.
type Lookup interface {
	Has(shortcut.Normalized) bool
}

// State identifies the detector's current state.
type State uint8

const (
	// Idle means no sequence is in progress.
	Idle State = iota
	// Armed means a first key is held and a second key may complete a
	// two-key shortcut.
	Armed
)

// String returns "idle" or "armed".
func (s State) String() string {
	if s == Armed {
		return "armed"
	}
	return "idle"
}

// Detector is the per-document sequence state machine. It is owned by a
// single dispatcher instance and is not safe for concurrent use; the
// host event loop delivers events one at a time.
type Detector struct {
	table Lookup

	state     State
	firstKey  string // canonical name of the armed key
	firstMods key.Modifier
	armedAt   time.Time
}

// NewDetector creates a detector resolving candidates against table.
func NewDetector(table Lookup) *Detector {
	return &Detector{table: table}
}

// State returns the current state. Exposed for tests and diagnostics.
func (d *Detector) State() State {
	return d.state
}

// HandleKeyDown feeds a key-down event to the detector. It returns the
// matched shortcut and true when a registered shortcut fired; the caller
// suppresses the host's default behavior only in that case. At most one
// shortcut fires per physical key-down.
func (d *Detector) HandleKeyDown(ev key.Event) (shortcut.Normalized, bool) {
	if ev.Kind != key.Press || ev.IsModifierKey() {
		return "", false
	}

	name := ev.Canonical()

	// A modifier change invalidates an in-progress sequence.
	if d.state == Armed && ev.Modifiers != d.firstMods {
		d.reset()
	}

	if d.state == Armed {
		if name == d.firstKey {
			// Key auto-repeat while held; the sequence stays armed.
			return "", false
		}

		pair, err := shortcut.Normalize(shortcut.FromPair(d.firstMods, d.firstKey, name))
		d.reset()
		if err == nil && d.table.Has(pair) {
			return pair, true
		}
		// The pair missed; fall through so the new key is treated as a
		// fresh first keystroke.
	}

	single, err := shortcut.Normalize(shortcut.FromEvent(ev))
	if err != nil {
		// Unmodified or otherwise invalid combination: never a shortcut.
		return "", false
	}
	if d.table.Has(single) {
		d.reset()
		return single, true
	}

	// No single-combination match: arm a two-key sequence.
	d.state = Armed
	d.firstKey = name
	d.firstMods = ev.Modifiers
	d.armedAt = ev.When

	return "", false
}

// HandleKeyUp feeds a key-up event. Releasing the armed key abandons the
// sequence; a held modifier alone must not keep it alive.
func (d *Detector) HandleKeyUp(ev key.Event) {
	if d.state != Armed {
		return
	}
	if ev.Canonical() == d.firstKey {
		d.reset()
	}
}

// Blur resets the detector when the document loses focus, guarding
// against an Armed state whose key-up was never delivered.
func (d *Detector) Blur() {
	d.reset()
}

func (d *Detector) reset() {
	d.state = Idle
	d.firstKey = ""
	d.firstMods = key.ModNone
	d.armedAt = time.Time{}
}
