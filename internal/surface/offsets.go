package surface

import "fmt"

// Direction records which end of a selection is active (extending).
type Direction uint8

const (
	// DirNone means the selection has no active end (or is collapsed).
	DirNone Direction = iota
	// DirForward means the end offset is the active end.
	DirForward
	// DirBackward means the start offset is the active end.
	DirBackward
)

// String returns "none", "forward" or "backward".
func (d Direction) String() string {
	switch d {
	case DirForward:
		return "forward"
	case DirBackward:
		return "backward"
	default:
		return "none"
	}
}

// SelectionOffsets describes a selection in plain-text character (rune)
// units of the field's logical content, not raw node offsets.
// Start <= End always holds in storage; Direction records the active
// end independently of the numeric ordering.
type SelectionOffsets struct {
	Start     int
	End       int
	Direction Direction
}

// Collapsed creates a cursor at offset.
func Collapsed(offset int) SelectionOffsets {
	return SelectionOffsets{Start: offset, End: offset, Direction: DirNone}
}

// IsCollapsed returns true if the selection has no extent.
func (s SelectionOffsets) IsCollapsed() bool {
	return s.Start == s.End
}

// Len returns the selection length in characters.
func (s SelectionOffsets) Len() int {
	return s.End - s.Start
}

// ActiveEnd returns the offset of the active end. For DirNone the end
// offset is reported, matching a caret placed after the selection.
func (s SelectionOffsets) ActiveEnd() int {
	if s.Direction == DirBackward {
		return s.Start
	}
	return s.End
}

// InactiveEnd returns the offset of the fixed (anchor) end.
func (s SelectionOffsets) InactiveEnd() int {
	if s.Direction == DirBackward {
		return s.End
	}
	return s.Start
}

// Normalize returns a copy with Start <= End, flipping Direction when
// the ends had to be swapped.
func (s SelectionOffsets) Normalize() SelectionOffsets {
	if s.Start <= s.End {
		return s
	}
	out := SelectionOffsets{Start: s.End, End: s.Start}
	switch s.Direction {
	case DirForward:
		out.Direction = DirBackward
	case DirBackward:
		out.Direction = DirForward
	}
	return out
}

// Clamp bounds the offsets to [0, max].
func (s SelectionOffsets) Clamp(max int) SelectionOffsets {
	clamp := func(v int) int {
		if v < 0 {
			return 0
		}
		if v > max {
			return max
		}
		return v
	}
	s.Start = clamp(s.Start)
	s.End = clamp(s.End)
	return s
}

// Validate checks the invariants against a content length.
func (s SelectionOffsets) Validate(contentLen int) error {
	if s.Start < 0 || s.End < s.Start || s.End > contentLen {
		return fmt.Errorf("%w: [%d,%d) in %d chars", ErrInvalidOffsets, s.Start, s.End, contentLen)
	}
	return nil
}

// String returns a readable form like "[3,8) forward".
func (s SelectionOffsets) String() string {
	if s.IsCollapsed() {
		return fmt.Sprintf("caret(%d)", s.Start)
	}
	return fmt.Sprintf("[%d,%d) %s", s.Start, s.End, s.Direction)
}
