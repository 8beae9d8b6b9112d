package style

import "strings"

// letterform maps ASCII letters (and digits where the block defines
// them) onto a styled Unicode range. Exceptions cover the letterlike
// symbols that predate the mathematical block and were never
// duplicated there.
type letterform struct {
	upperBase rune // target of 'A', contiguous through 'Z'
	lowerBase rune // target of 'a', contiguous through 'z'
	digitBase rune // target of '0', or 0 when the style has no digits
	except    map[rune]rune
}

var letterforms = map[string]letterform{
	"bold": {
		upperBase: 0x1D400,
		lowerBase: 0x1D41A,
		digitBase: 0x1D7CE,
	},
	"italic": {
		upperBase: 0x1D434,
		lowerBase: 0x1D44E,
		except:    map[rune]rune{'h': 0x210E},
	},
	"bold-italic": {
		upperBase: 0x1D468,
		lowerBase: 0x1D482,
	},
	"script": {
		upperBase: 0x1D49C,
		lowerBase: 0x1D4B6,
		except: map[rune]rune{
			'B': 0x212C, 'E': 0x2130, 'F': 0x2131, 'H': 0x210B,
			'I': 0x2110, 'L': 0x2112, 'M': 0x2133, 'R': 0x211B,
			'e': 0x212F, 'g': 0x210A, 'o': 0x2134,
		},
	},
	"monospace": {
		upperBase: 0x1D670,
		lowerBase: 0x1D68A,
		digitBase: 0x1D7F6,
	},
}

// apply restyles every ASCII letter and digit; everything else passes
// through unchanged.
func (lf letterform) apply(text string) string {
	var b strings.Builder
	b.Grow(len(text) * 2)
	for _, r := range text {
		b.WriteRune(lf.mapRune(r))
	}
	return b.String()
}

func (lf letterform) mapRune(r rune) rune {
	if mapped, ok := lf.except[r]; ok {
		return mapped
	}
	switch {
	case r >= 'A' && r <= 'Z':
		return lf.upperBase + (r - 'A')
	case r >= 'a' && r <= 'z':
		return lf.lowerBase + (r - 'a')
	case r >= '0' && r <= '9' && lf.digitBase != 0:
		return lf.digitBase + (r - '0')
	}
	return r
}
