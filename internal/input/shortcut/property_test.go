package shortcut

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/keyscribe/keyscribe/internal/input/key"
)

var modifierGen = rapid.SampledFrom([]key.Modifier{
	key.ModCtrl,
	key.ModAlt,
	key.ModCtrl | key.ModAlt,
	key.ModCtrl | key.ModShift,
	key.ModAlt | key.ModMeta,
	key.ModCtrl | key.ModAlt | key.ModShift | key.ModMeta,
})

var keyNameGen = rapid.SampledFrom([]string{
	"a", "B", "t", "1", "9", "Numpad4", "F5", "Enter", "Left",
})

func TestNormalizeIdempotentProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		mods := modifierGen.Draw(t, "mods")
		k1 := keyNameGen.Draw(t, "k1")
		k2 := keyNameGen.Draw(t, "k2")

		keys := []string{k1}
		if key.CanonicalName(k2) != key.CanonicalName(k1) {
			keys = append(keys, k2)
		}

		n, err := Normalize(NewSpec(mods, keys...))
		if err != nil {
			t.Fatalf("Normalize error = %v", err)
		}
		again, err := NormalizeString(string(n))
		if err != nil {
			t.Fatalf("NormalizeString(%q) error = %v", n, err)
		}
		if n != again {
			t.Fatalf("not idempotent: %q -> %q", n, again)
		}
	})
}

func TestNormalizePermutationProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		mods := modifierGen.Draw(t, "mods")
		k1 := keyNameGen.Draw(t, "k1")
		k2 := keyNameGen.Draw(t, "k2")
		if key.CanonicalName(k1) == key.CanonicalName(k2) {
			t.Skip("same key")
		}

		ab, err := Normalize(FromPair(mods, k1, k2))
		if err != nil {
			t.Fatalf("Normalize error = %v", err)
		}
		ba, err := Normalize(FromPair(mods, k2, k1))
		if err != nil {
			t.Fatalf("Normalize error = %v", err)
		}
		if ab != ba {
			t.Fatalf("permutations differ: %q vs %q", ab, ba)
		}
	})
}
