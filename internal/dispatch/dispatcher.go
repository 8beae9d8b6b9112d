package dispatch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/keyscribe/keyscribe/internal/input/key"
	"github.com/keyscribe/keyscribe/internal/input/sequence"
	"github.com/keyscribe/keyscribe/internal/input/shortcut"
	"github.com/keyscribe/keyscribe/internal/mutate"
	"github.com/keyscribe/keyscribe/internal/surface"
	"github.com/keyscribe/keyscribe/internal/transform"
	"github.com/keyscribe/keyscribe/internal/wordsel"
)

// DefaultOperationTimeout bounds a single operation end to end,
// including any model call.
const DefaultOperationTimeout = 60 * time.Second

// Logger is the subset of the application logger the dispatcher needs.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Notifier surfaces user-visible messages. Each failed operation
// produces exactly one notification.
type Notifier interface {
	Notify(message string)
}

// StaticResult receives transform output for read-only page selections,
// which have no field to write into.
type StaticResult func(action Action, text string)

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

type nopNotifier struct{}

func (nopNotifier) Notify(string) {}

// Dispatcher routes keyboard events to word selection and registered
// actions. Key events arrive on the host event loop one at a time;
// operations run on their own goroutine, at most one in flight.
type Dispatcher struct {
	host     surface.Host
	registry *transform.Registry
	pipeline *mutate.Pipeline

	log     Logger
	notify  Notifier
	static  StaticResult
	metrics *Metrics
	timeout time.Duration

	// table and selMod are swapped atomically so the detector's lookup
	// and the word-selection check never contend with reconfiguration.
	table  atomic.Pointer[Table]
	selMod atomic.Uint32

	detector *sequence.Detector
	busy     atomic.Bool
	wg       sync.WaitGroup
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger.
func WithLogger(l Logger) Option {
	return func(d *Dispatcher) { d.log = l }
}

// WithNotifier sets the user-notification sink.
func WithNotifier(n Notifier) Option {
	return func(d *Dispatcher) { d.notify = n }
}

// WithStaticResult sets the handler for page-selection results.
func WithStaticResult(f StaticResult) Option {
	return func(d *Dispatcher) { d.static = f }
}

// WithTimeout sets the per-operation timeout.
func WithTimeout(t time.Duration) Option {
	return func(d *Dispatcher) { d.timeout = t }
}

// New creates a dispatcher with an empty table. Call Reconfigure to
// install actions.
func New(host surface.Host, registry *transform.Registry, pipeline *mutate.Pipeline, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		host:     host,
		registry: registry,
		pipeline: pipeline,
		log:      nopLogger{},
		notify:   nopNotifier{},
		metrics:  NewMetrics(),
		timeout:  DefaultOperationTimeout,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.table.Store(&Table{byShortcut: map[shortcut.Normalized]Action{}})
	d.selMod.Store(uint32(key.ModAlt))
	d.detector = sequence.NewDetector(d)
	return d
}

// Reconfigure builds and installs a new table and selection modifier.
// A build failure leaves the previous configuration active.
func (d *Dispatcher) Reconfigure(specs []Spec, selectionModifier string) error {
	table, err := BuildTable(specs)
	if err != nil {
		return err
	}

	mod := key.ModAlt
	if selectionModifier != "" {
		mod, err = key.ParseModifiers(selectionModifier)
		if err != nil {
			return fmt.Errorf("%w: selection modifier: %v", ErrInvalidAction, err)
		}
	}

	d.table.Store(table)
	d.selMod.Store(uint32(mod))
	d.log.Info("dispatch table installed: %d actions, selection modifier %s", table.Len(), mod)
	return nil
}

// Has reports whether a canonical shortcut is registered, implementing
// the sequence detector's table lookup.
func (d *Dispatcher) Has(n shortcut.Normalized) bool {
	return d.table.Load().Has(n)
}

// Table returns the active dispatch table.
func (d *Dispatcher) Table() *Table {
	return d.table.Load()
}

// Metrics returns the dispatch statistics collector.
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// Busy reports whether an operation is in flight.
func (d *Dispatcher) Busy() bool {
	return d.busy.Load()
}

// Wait blocks until all in-flight operations finish. For shutdown and
// tests.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// HandleKeyDown feeds a key-down event. It returns true when the event
// was consumed (word selection or a shortcut fired) and the caller must
// suppress the host's default handling.
func (d *Dispatcher) HandleKeyDown(ev key.Event) bool {
	if d.handleWordSelection(ev) {
		return true
	}

	matched, ok := d.detector.HandleKeyDown(ev)
	if !ok {
		return false
	}
	action, ok := d.table.Load().Resolve(matched)
	if !ok {
		// The table was swapped between detection and resolution.
		return false
	}
	d.trigger(action)
	return true
}

// HandleKeyUp feeds a key-up event to the sequence detector.
func (d *Dispatcher) HandleKeyUp(ev key.Event) {
	d.detector.HandleKeyUp(ev)
}

// Blur resets sequence state when the document loses focus. In-flight
// operations keep running; they re-check focus before writing.
func (d *Dispatcher) Blur() {
	d.detector.Blur()
}

// handleWordSelection intercepts the selection-extension chord: the
// configured modifier held alone plus a horizontal arrow key.
func (d *Dispatcher) handleWordSelection(ev key.Event) bool {
	if ev.Kind != key.Press || ev.IsModifierKey() {
		return false
	}
	mod := key.Modifier(d.selMod.Load())
	if mod == key.ModNone || ev.Modifiers != mod {
		return false
	}

	var motion wordsel.Motion
	switch ev.Canonical() {
	case "Right":
		motion = wordsel.Next
	case "Left":
		motion = wordsel.Previous
	default:
		return false
	}

	target, err := surface.Resolve(d.host)
	if err != nil || target.IsStatic() {
		// The chord is still reserved; nothing to extend.
		return true
	}
	if err := wordsel.Extend(target.Field, motion); err != nil {
		d.log.Debug("word selection %s unavailable: %v", motion, err)
	}
	return true
}

// trigger starts an operation for action unless one is already in
// flight.
func (d *Dispatcher) trigger(action Action) {
	if !d.busy.CompareAndSwap(false, true) {
		d.log.Warn("action %s rejected, another operation is in flight", action.ID)
		d.notify.Notify("Another operation is still running")
		return
	}

	opID := uuid.NewString()[:8]
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer d.busy.Store(false)

		start := time.Now()
		err := d.run(opID, action)
		elapsed := time.Since(start)
		d.metrics.Record(action.ID, elapsed, err != nil && !d.silent(err))

		switch {
		case err == nil:
			d.log.Info("operation %s complete: action=%s duration=%s", opID, action.ID, elapsed)
		case d.silent(err):
			d.log.Debug("operation %s skipped: %v", opID, err)
		default:
			d.log.Error("operation %s failed: action=%s: %v", opID, action.ID, err)
			d.notify.Notify(fmt.Sprintf("%s failed: %v", action.Name(), err))
		}
	}()
}

// silent classifies errors that end an operation without bothering the
// user: no target, or nothing selected in an empty field.
func (d *Dispatcher) silent(err error) bool {
	return errors.Is(err, surface.ErrNoTarget) || errors.Is(err, ErrNothingToTransform)
}

// run executes one operation: resolve the target, transform its text,
// and commit the result. Any partial write is rolled back from the
// snapshot taken up front.
func (d *Dispatcher) run(opID string, action Action) error {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	target, err := surface.Resolve(d.host)
	if err != nil {
		return err
	}

	var snap surface.Snapshot
	var text string
	if target.IsStatic() {
		text = target.Static
	} else {
		snap = surface.Capture(target.Field)
		text = snap.SelectedText()
		if text == "" {
			// A collapsed cursor operates on the whole field.
			text = snap.Text
		}
		if text == "" {
			return ErrNothingToTransform
		}
	}

	tr, err := d.registry.Lookup(action.TransformerName())
	if err != nil {
		return err
	}

	d.log.Debug("operation %s: transformer=%s chars=%d", opID, tr.Name(), len([]rune(text)))
	out, err := tr.Transform(ctx, transform.Request{Text: text, Args: action.Args})
	if err != nil {
		return fmt.Errorf("transform %s: %w", tr.Name(), err)
	}

	if target.IsStatic() {
		d.deliverStatic(action, out)
		return nil
	}

	// The transform may have taken a while. Write only if the same
	// field still holds focus.
	again, rerr := surface.Resolve(d.host)
	if rerr != nil || again.Field != target.Field {
		return ErrFocusChanged
	}

	field := target.Field
	if snap.HasSelection() {
		err = field.SetSelection(snap.Selection)
	} else {
		err = field.SetSelection(surface.SelectionOffsets{
			Start: 0, End: snap.Len(), Direction: surface.DirForward,
		})
	}
	if err != nil {
		return fmt.Errorf("select target range: %w", err)
	}

	if err := d.pipeline.Commit(ctx, field, out); err != nil {
		if rollback := d.pipeline.RestoreSnapshot(ctx, field, snap); rollback != nil {
			d.log.Error("operation %s: rollback failed: %v", opID, rollback)
		}
		return err
	}
	return nil
}

// deliverStatic hands a read-only result to the configured handler,
// falling back to a notification.
func (d *Dispatcher) deliverStatic(action Action, out string) {
	if d.static != nil {
		d.static(action, out)
		return
	}
	const max = 200
	if runes := []rune(out); len(runes) > max {
		out = string(runes[:max]) + "…"
	}
	d.notify.Notify(fmt.Sprintf("%s: %s", action.Name(), out))
}
