package sequence

import (
	"testing"

	"github.com/keyscribe/keyscribe/internal/input/key"
	"github.com/keyscribe/keyscribe/internal/input/shortcut"
)

type tableStub map[shortcut.Normalized]bool

func (t tableStub) Has(n shortcut.Normalized) bool { return t[n] }

func table(t *testing.T, shortcuts ...string) tableStub {
	t.Helper()
	stub := make(tableStub)
	for _, s := range shortcuts {
		n, err := shortcut.NormalizeString(s)
		if err != nil {
			t.Fatalf("NormalizeString(%q) error = %v", s, err)
		}
		stub[n] = true
	}
	return stub
}

const ctrlAlt = key.ModCtrl | key.ModAlt

func TestSingleCombinationFiresImmediately(t *testing.T) {
	d := NewDetector(table(t, "Ctrl+Alt+T"))

	got, ok := d.HandleKeyDown(key.NewPress("t", ctrlAlt))
	if !ok {
		t.Fatal("expected Ctrl+Alt+T to fire on key-down")
	}
	if got != "Ctrl+Alt+T" {
		t.Errorf("fired %q, want Ctrl+Alt+T", got)
	}
	if d.State() != Idle {
		t.Errorf("state = %v after dispatch, want Idle", d.State())
	}
}

func TestTwoKeySequence(t *testing.T) {
	d := NewDetector(table(t, "Ctrl+Alt+1+T"))

	if _, ok := d.HandleKeyDown(key.NewPress("t", ctrlAlt)); ok {
		t.Fatal("first key alone should not fire")
	}
	if d.State() != Armed {
		t.Fatalf("state = %v after first key, want Armed", d.State())
	}

	got, ok := d.HandleKeyDown(key.NewPress("1", ctrlAlt))
	if !ok {
		t.Fatal("expected pair to fire on second key-down")
	}
	if got != "Ctrl+Alt+1+T" {
		t.Errorf("fired %q, want Ctrl+Alt+1+T", got)
	}
	if d.State() != Idle {
		t.Errorf("state = %v after dispatch, want Idle", d.State())
	}
}

func TestTwoKeySequenceOrderIndependent(t *testing.T) {
	d := NewDetector(table(t, "Ctrl+Alt+1+T"))

	d.HandleKeyDown(key.NewPress("1", ctrlAlt))
	got, ok := d.HandleKeyDown(key.NewPress("t", ctrlAlt))
	if !ok || got != "Ctrl+Alt+1+T" {
		t.Errorf("reversed order fired (%q, %v), want (Ctrl+Alt+1+T, true)", got, ok)
	}
}

func TestAbandonedSequenceDoesNotLeak(t *testing.T) {
	d := NewDetector(table(t, "Ctrl+Alt+2", "Ctrl+Alt+2+T"))

	// Press and release T without a second key: the sequence is
	// abandoned on key-up of the armed key.
	d.HandleKeyDown(key.NewPress("t", ctrlAlt))
	d.HandleKeyUp(key.NewRelease("t", ctrlAlt))
	if d.State() != Idle {
		t.Fatalf("state = %v after key-up, want Idle", d.State())
	}

	// The next keystroke must dispatch only Ctrl+Alt+2, not the pair.
	got, ok := d.HandleKeyDown(key.NewPress("2", ctrlAlt))
	if !ok {
		t.Fatal("expected Ctrl+Alt+2 to fire")
	}
	if got != "Ctrl+Alt+2" {
		t.Errorf("fired %q, want Ctrl+Alt+2", got)
	}
}

func TestModifierChangeResetsSequence(t *testing.T) {
	d := NewDetector(table(t, "Ctrl+Alt+1+T"))

	d.HandleKeyDown(key.NewPress("t", ctrlAlt))
	if _, ok := d.HandleKeyDown(key.NewPress("1", key.ModCtrl)); ok {
		t.Fatal("pair must not fire when the original modifiers were released")
	}
}

func TestAutoRepeatKeepsArmed(t *testing.T) {
	d := NewDetector(table(t, "Ctrl+Alt+1+T"))

	d.HandleKeyDown(key.NewPress("t", ctrlAlt))
	d.HandleKeyDown(key.NewPress("t", ctrlAlt)) // auto-repeat
	if d.State() != Armed {
		t.Fatalf("state = %v after auto-repeat, want Armed", d.State())
	}

	if got, ok := d.HandleKeyDown(key.NewPress("1", ctrlAlt)); !ok || got != "Ctrl+Alt+1+T" {
		t.Errorf("pair fired (%q, %v) after auto-repeat", got, ok)
	}
}

func TestMissedPairFallsBackToSingleAndRearm(t *testing.T) {
	d := NewDetector(table(t, "Ctrl+Alt+2"))

	d.HandleKeyDown(key.NewPress("t", ctrlAlt))
	// T+2 is not registered; the single Ctrl+Alt+2 should still fire.
	got, ok := d.HandleKeyDown(key.NewPress("2", ctrlAlt))
	if !ok || got != "Ctrl+Alt+2" {
		t.Errorf("fired (%q, %v), want (Ctrl+Alt+2, true)", got, ok)
	}
}

func TestBlurResetsArmedState(t *testing.T) {
	d := NewDetector(table(t, "Ctrl+Alt+1+T"))

	d.HandleKeyDown(key.NewPress("t", ctrlAlt))
	d.Blur()
	if d.State() != Idle {
		t.Fatalf("state = %v after blur, want Idle", d.State())
	}

	// The abandoned key must not combine with the next keystroke.
	if _, ok := d.HandleKeyDown(key.NewPress("1", ctrlAlt)); ok {
		t.Error("no shortcut should fire after blur reset")
	}
}

func TestUnmodifiedKeysIgnored(t *testing.T) {
	d := NewDetector(table(t, "Ctrl+Alt+T"))

	if _, ok := d.HandleKeyDown(key.NewPress("t", key.ModNone)); ok {
		t.Error("bare key must never dispatch")
	}
	if d.State() != Idle {
		t.Errorf("bare key must not arm the detector, state = %v", d.State())
	}

	if _, ok := d.HandleKeyDown(key.NewPress("Control", key.ModCtrl)); ok {
		t.Error("modifier key-down must never dispatch")
	}
}
