package mutate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rivo/uniseg"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/keyscribe/keyscribe/internal/surface"
)

// DefaultSettleDelay is the pause between blurring and refocusing a
// rich surface so its framework re-reads the DOM.
const DefaultSettleDelay = 50 * time.Millisecond

// Pipeline commits text into fields through an ordered strategy chain.
type Pipeline struct {
	strategies []Strategy
	settle     time.Duration
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithStrategies replaces the strategy chain.
func WithStrategies(strategies ...Strategy) Option {
	return func(p *Pipeline) {
		p.strategies = strategies
	}
}

// WithSettleDelay sets the rich-surface reconciliation delay.
func WithSettleDelay(d time.Duration) Option {
	return func(p *Pipeline) {
		p.settle = d
	}
}

// NewPipeline creates a pipeline with the default strategy chain.
func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{
		strategies: DefaultStrategies(),
		settle:     DefaultSettleDelay,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Commit replaces the target's current selection with newText, trying
// each strategy until one verifies. On success the cursor is collapsed
// after the inserted text and rich surfaces get a reconciliation cycle.
// On total failure the field may hold an intermediate state; the caller
// restores its snapshot.
func (p *Pipeline) Commit(ctx context.Context, target surface.Field, newText string) error {
	if newText == "" {
		return ErrEmptyText
	}

	initial := target.Text()
	var lastErr error

	for _, strat := range p.strategies {
		if err := ctx.Err(); err != nil {
			return err
		}

		preLen := charLen(target.Text())
		if err := strat.Attempt(target, newText); err != nil {
			lastErr = fmt.Errorf("%s: %w", strat.Name(), err)
			continue
		}

		if Verified(target.Text(), preLen, newText) {
			p.placeCursor(target, newText)
			if target.Rich() {
				p.reconcile(ctx, target)
			}
			return nil
		}
		lastErr = fmt.Errorf("%s: content unchanged", strat.Name())
	}

	return fmt.Errorf("%w (last: %v, %s)",
		ErrAllStrategiesFailed, lastErr, DiffSummary(initial, target.Text()))
}

// Verified reports whether an insertion attempt took effect: the target
// text appears as a substring of the field, or the field's total length
// changed from its pre-attempt length. The length heuristic catches
// hosts that normalize whitespace or line breaks, where the exact
// substring check would false-negative on an already-successful
// insertion.
func Verified(fieldText string, preAttemptLen int, wantText string) bool {
	if strings.Contains(fieldText, wantText) {
		return true
	}
	return charLen(fieldText) != preAttemptLen
}

// RestoreSnapshot writes a snapshot back into the field. Fields
// implementing surface.Restorer are restored exactly; otherwise the
// whole content is rewritten through the strategy chain.
func (p *Pipeline) RestoreSnapshot(ctx context.Context, target surface.Field, snap surface.Snapshot) error {
	if r, ok := target.(surface.Restorer); ok {
		if err := r.RestoreSnapshot(snap); err != nil {
			return fmt.Errorf("%w: %v", ErrRestoreFailed, err)
		}
		return nil
	}

	if err := target.SetSelection(surface.SelectionOffsets{
		Start: 0, End: charLen(target.Text()), Direction: surface.DirForward,
	}); err != nil {
		return fmt.Errorf("%w: %v", ErrRestoreFailed, err)
	}
	if err := p.Commit(ctx, target, snap.Text); err != nil {
		return fmt.Errorf("%w: %v", ErrRestoreFailed, err)
	}
	if err := target.SetSelection(snap.Selection); err != nil {
		return fmt.Errorf("%w: %v", ErrRestoreFailed, err)
	}
	return nil
}

// placeCursor collapses the selection after the inserted text. Plain
// fields get native offset placement snapped to a grapheme boundary;
// rich surfaces walk their text-node tree to the last text node.
func (p *Pipeline) placeCursor(target surface.Field, inserted string) {
	if target.Rich() {
		if nc, ok := target.(surface.NodeCollapser); ok {
			nc.CollapseToLastTextNode()
			return
		}
	}

	text := target.Text()
	end := charLen(text)
	if idx := strings.Index(text, inserted); idx >= 0 {
		end = charLen(text[:idx]) + charLen(inserted)
		end = snapToGraphemeBoundary(text, end)
	}
	// Best effort; a host that rejects the placement keeps its own caret.
	_ = target.SetSelection(surface.Collapsed(end))
}

// reconcile forces a focus cycle so editors that cache their document
// model re-read the DOM.
func (p *Pipeline) reconcile(ctx context.Context, target surface.Field) {
	f, ok := target.(surface.Focusable)
	if !ok {
		return
	}
	f.Blur()
	if p.settle > 0 {
		select {
		case <-time.After(p.settle):
		case <-ctx.Done():
		}
	}
	f.Focus()
}

// snapToGraphemeBoundary moves a rune offset forward to the nearest
// grapheme cluster boundary, so the caret never lands inside a cluster
// (e.g. between a base letter and its combining mark).
func snapToGraphemeBoundary(text string, offset int) int {
	state := -1
	rest := text
	boundary := 0
	for len(rest) > 0 {
		if boundary >= offset {
			return boundary
		}
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		boundary += charLen(cluster)
	}
	return boundary
}

// DiffSummary condenses the difference between two texts into a short
// "+inserted/-deleted chars" form for error messages and logs.
func DiffSummary(before, after string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, false)

	var ins, del int
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			ins += charLen(d.Text)
		case diffmatchpatch.DiffDelete:
			del += charLen(d.Text)
		}
	}
	return fmt.Sprintf("diff +%d/-%d chars", ins, del)
}

func charLen(s string) int {
	return len([]rune(s))
}
