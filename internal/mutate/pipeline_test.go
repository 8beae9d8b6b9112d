package mutate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/keyscribe/keyscribe/internal/surface"
)

func TestCommitStructuredEdit(t *testing.T) {
	f := surface.NewPlainField("hello world")
	f.SelectAll()

	p := NewPipeline(WithSettleDelay(0))
	if err := p.Commit(context.Background(), f, "hola mundo"); err != nil {
		t.Fatal(err)
	}
	if got := f.Text(); got != "hola mundo" {
		t.Errorf("Text() = %q, want %q", got, "hola mundo")
	}
	if sel := f.Selection(); !sel.IsCollapsed() || sel.Start != 10 {
		t.Errorf("selection = %v, want caret(10)", sel)
	}
}

func TestCommitHostCancelsAndApplies(t *testing.T) {
	f := surface.NewPlainField("draft")
	f.CancelBeforeInput = true
	f.SelectAll()

	p := NewPipeline(WithSettleDelay(0))
	if err := p.Commit(context.Background(), f, "final"); err != nil {
		t.Fatal(err)
	}
	if got := f.Text(); got != "final" {
		t.Errorf("Text() = %q, want %q", got, "final")
	}
}

func TestCommitFallsBackToPaste(t *testing.T) {
	f := surface.NewPlainField("draft")
	f.SwallowReplace = true // structured edit silently eaten
	f.SelectAll()

	p := NewPipeline(WithSettleDelay(0))
	if err := p.Commit(context.Background(), f, "final"); err != nil {
		t.Fatal(err)
	}
	if got := f.Text(); got != "final" {
		t.Errorf("Text() = %q, want %q", got, "final")
	}
}

func TestCommitFallsBackToRawEvents(t *testing.T) {
	f := surface.NewPlainField("draft")
	f.SwallowReplace = true
	f.RejectPaste = true
	f.ApplyOnAfterInput = true
	f.SelectAll()

	p := NewPipeline(WithSettleDelay(0))
	if err := p.Commit(context.Background(), f, "final"); err != nil {
		t.Fatal(err)
	}
	if got := f.Text(); got != "final" {
		t.Errorf("Text() = %q, want %q", got, "final")
	}
}

func TestCommitAllStrategiesFail(t *testing.T) {
	f := surface.NewPlainField("precious content")
	f.CancelAndDrop = true
	f.RejectPaste = true
	f.SelectAll()
	snap := surface.Capture(f)

	p := NewPipeline(WithSettleDelay(0))
	err := p.Commit(context.Background(), f, "replacement")
	if !errors.Is(err, ErrAllStrategiesFailed) {
		t.Fatalf("Commit() error = %v, want ErrAllStrategiesFailed", err)
	}

	// The caller's contract: restore the snapshot on failure.
	if err := p.RestoreSnapshot(context.Background(), f, snap); err != nil {
		t.Fatal(err)
	}
	if got := f.Text(); got != "precious content" {
		t.Errorf("Text() after restore = %q, want original", got)
	}
}

func TestVerifiedSubstring(t *testing.T) {
	if !Verified("before target after", 19, "target") {
		t.Error("substring presence must verify")
	}
}

func TestVerifiedLengthHeuristic(t *testing.T) {
	// Pre-attempt length 20, post-attempt 25 chars without the exact
	// substring: a host normalized paragraph breaks after inserting.
	post := strings.Repeat("x", 25)
	if !Verified(post, 20, "yyy") {
		t.Error("length change must verify even without the substring")
	}
	if Verified(post, 25, "yyy") {
		t.Error("no substring and unchanged length must not verify")
	}
}

func TestCommitNormalizingPasteHostVerifies(t *testing.T) {
	f := surface.NewPlainField("old")
	f.SwallowReplace = true
	f.PasteNormalizer = surface.NormalizeParagraphs
	f.SelectAll()

	p := NewPipeline(WithSettleDelay(0))
	// The pasted "a\nb" becomes "a\n\nb": not the exact substring, but
	// the length changed, so the attempt still verifies.
	if err := p.Commit(context.Background(), f, "a\nb"); err != nil {
		t.Fatal(err)
	}
	if got := f.Text(); got != "a\n\nb" {
		t.Errorf("Text() = %q, want %q", got, "a\n\nb")
	}
}

func TestCommitRichReconciles(t *testing.T) {
	f := surface.NewRichField("alpha beta")
	if err := f.SetSelection(surface.SelectionOffsets{Start: 0, End: 10, Direction: surface.DirForward}); err != nil {
		t.Fatal(err)
	}

	p := NewPipeline(WithSettleDelay(0))
	if err := p.Commit(context.Background(), f, "gamma"); err != nil {
		t.Fatal(err)
	}
	if got := f.Text(); got != "gamma" {
		t.Errorf("Text() = %q, want %q", got, "gamma")
	}
	if f.Reconciliations() == 0 {
		t.Error("rich surface should get a blur/refocus reconciliation cycle")
	}
	if sel := f.Selection(); !sel.IsCollapsed() || sel.Start != 5 {
		t.Errorf("selection = %v, want caret at last text node end (5)", sel)
	}
}

func TestCommitEmptyText(t *testing.T) {
	f := surface.NewPlainField("x")
	p := NewPipeline()
	if err := p.Commit(context.Background(), f, ""); !errors.Is(err, ErrEmptyText) {
		t.Errorf("Commit(\"\") error = %v, want ErrEmptyText", err)
	}
}

func TestSnapToGraphemeBoundary(t *testing.T) {
	// "e" + combining acute is one cluster of two runes.
	text := "cafe\u0301s"
	if got := snapToGraphemeBoundary(text, 4); got != 5 {
		t.Errorf("snapToGraphemeBoundary(4) = %d, want 5 (after cluster)", got)
	}
	if got := snapToGraphemeBoundary(text, 3); got != 3 {
		t.Errorf("snapToGraphemeBoundary(3) = %d, want 3", got)
	}
}

func TestDiffSummary(t *testing.T) {
	got := DiffSummary("abc", "abXYc")
	if !strings.Contains(got, "+2") {
		t.Errorf("DiffSummary = %q, want insertion count +2", got)
	}
}
