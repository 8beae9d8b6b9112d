package surface

// Snapshot is an immutable capture of a field's state taken before any
// mutation attempt. The in-flight operation that created it owns it
// exclusively and discards it once the operation completes or fails.
type Snapshot struct {
	Text      string
	Selection SelectionOffsets
}

// Capture snapshots a field.
func Capture(f Field) Snapshot {
	return Snapshot{Text: f.Text(), Selection: f.Selection()}
}

// SelectedText returns the text covered by the snapshot's selection.
func (s Snapshot) SelectedText() string {
	runes := []rune(s.Text)
	sel := s.Selection.Clamp(len(runes))
	return string(runes[sel.Start:sel.End])
}

// HasSelection returns true if the snapshot holds a non-collapsed
// selection.
func (s Snapshot) HasSelection() bool {
	return !s.Selection.IsCollapsed()
}

// Len returns the snapshot's content length in characters.
func (s Snapshot) Len() int {
	return len([]rune(s.Text))
}
