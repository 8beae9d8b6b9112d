package wordsel

import "unicode"

// isWordChar reports whether r belongs to a word: ASCII alphanumerics,
// underscore, and the extended Latin accented ranges.
func isWordChar(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '_':
		return true
	case r >= 0x00C0 && r <= 0x024F:
		// Latin-1 Supplement letters through Latin Extended-B,
		// minus the multiplication and division signs.
		return r != 0x00D7 && r != 0x00F7
	case r >= 0x1E00 && r <= 0x1EFF:
		// Latin Extended Additional.
		return true
	}
	return false
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}
