package wordsel

import (
	"errors"

	"github.com/keyscribe/keyscribe/internal/surface"
)

// Motion is the requested word-selection direction.
type Motion uint8

const (
	// Next extends or shrinks toward the end of the text.
	Next Motion = iota
	// Previous extends or shrinks toward the beginning.
	Previous
)

// String returns "next" or "previous".
func (m Motion) String() string {
	if m == Previous {
		return "previous"
	}
	return "next"
}

// ErrNoNativeWordSelect indicates a rich surface without a native
// extend-by-word primitive; the selector has no safe fallback there.
var ErrNoNativeWordSelect = errors.New("wordsel: rich surface lacks native word selection")

// Extend grows or shrinks the target's selection by one word in the
// requested direction.
//
// When a non-collapsed selection's active end is opposite the request,
// the active end moves toward the anchor instead (shrink), clamped so
// it never crosses it; meeting the anchor exactly collapses the
// selection. A collapsed cursor strictly inside a word selects that
// whole word, with the cursor placed at the end matching the request.
func Extend(target surface.Field, m Motion) error {
	if target.Rich() {
		ws, ok := target.(surface.WordSelectable)
		if !ok {
			return ErrNoNativeWordSelect
		}
		return ws.ExtendWordSelection(nativeDirection(m))
	}

	text := []rune(target.Text())
	sel := target.Selection().Normalize().Clamp(len(text))

	var next surface.SelectionOffsets
	switch {
	case sel.IsCollapsed():
		next = fromCaret(text, sel.Start, m)
	case shrinks(sel.Direction, m):
		next = shrink(text, sel, m)
	default:
		next = grow(text, sel, m)
	}

	return target.SetSelection(next)
}

// fromCaret handles a collapsed cursor. Strictly inside a word (word
// characters on both adjacent sides) the whole word is selected rather
// than jumping to the next one.
func fromCaret(text []rune, pos int, m Motion) surface.SelectionOffsets {
	if pos > 0 && pos < len(text) && isWordChar(text[pos-1]) && isWordChar(text[pos]) {
		start, end := wordAround(text, pos)
		return surface.SelectionOffsets{Start: start, End: end, Direction: nativeDirection(m)}
	}

	if m == Next {
		end := nextBoundary(text, pos)
		if end == pos {
			return surface.Collapsed(pos)
		}
		return surface.SelectionOffsets{Start: pos, End: end, Direction: surface.DirForward}
	}
	start := prevBoundary(text, pos)
	if start == pos {
		return surface.Collapsed(pos)
	}
	return surface.SelectionOffsets{Start: start, End: pos, Direction: surface.DirBackward}
}

// shrinks reports whether the request opposes the selection's active
// end. A direction of none never shrinks.
func shrinks(d surface.Direction, m Motion) bool {
	return (d == surface.DirForward && m == Previous) ||
		(d == surface.DirBackward && m == Next)
}

func shrink(text []rune, sel surface.SelectionOffsets, m Motion) surface.SelectionOffsets {
	if m == Previous {
		// Active end is End; pull it back toward the anchor.
		end := prevBoundary(text, sel.End)
		if end <= sel.Start {
			return surface.Collapsed(sel.Start)
		}
		return surface.SelectionOffsets{Start: sel.Start, End: end, Direction: surface.DirForward}
	}
	// Active end is Start; push it forward toward the anchor.
	start := nextBoundary(text, sel.Start)
	if start >= sel.End {
		return surface.Collapsed(sel.End)
	}
	return surface.SelectionOffsets{Start: start, End: sel.End, Direction: surface.DirBackward}
}

func grow(text []rune, sel surface.SelectionOffsets, m Motion) surface.SelectionOffsets {
	if m == Next {
		return surface.SelectionOffsets{
			Start:     sel.Start,
			End:       nextBoundary(text, sel.End),
			Direction: surface.DirForward,
		}
	}
	return surface.SelectionOffsets{
		Start:     prevBoundary(text, sel.Start),
		End:       sel.End,
		Direction: surface.DirBackward,
	}
}

// wordAround returns the extent of the word containing pos.
func wordAround(text []rune, pos int) (start, end int) {
	start = pos
	for start > 0 && isWordChar(text[start-1]) {
		start--
	}
	end = pos
	for end < len(text) && isWordChar(text[end]) {
		end++
	}
	return start, end
}

// nextBoundary skips the remaining characters of the current word, then
// whitespace, then the following word.
func nextBoundary(text []rune, pos int) int {
	i := pos
	for i < len(text) && isWordChar(text[i]) {
		i++
	}
	for i < len(text) && isSpace(text[i]) {
		i++
	}
	for i < len(text) && isWordChar(text[i]) {
		i++
	}
	return i
}

// prevBoundary steps back one position, skips whitespace, then skips
// back through the preceding word.
func prevBoundary(text []rune, pos int) int {
	i := pos
	if i > 0 {
		i--
	}
	for i > 0 && isSpace(text[i]) {
		i--
	}
	for i > 0 && isWordChar(text[i-1]) {
		i--
	}
	return i
}

func nativeDirection(m Motion) surface.Direction {
	if m == Previous {
		return surface.DirBackward
	}
	return surface.DirForward
}
