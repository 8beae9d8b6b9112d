package transform

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Request carries one transform invocation.
type Request struct {
	// Text is the selected text to transform.
	Text string

	// Args are action-specific arguments from the registered action,
	// e.g. {"from": "en", "to": "es"} or {"style": "bold"}.
	Args map[string]string
}

// Arg returns a named argument or a default.
func (r Request) Arg(name, def string) string {
	if v, ok := r.Args[name]; ok && v != "" {
		return v
	}
	return def
}

// Transformer turns selected text into replacement text.
type Transformer interface {
	// Name identifies the transformer in action configurations.
	Name() string

	// Transform produces the replacement text. Implementations doing
	// network or script work must honor ctx cancellation.
	Transform(ctx context.Context, req Request) (string, error)
}

// Registry holds transformers keyed by name.
type Registry struct {
	mu           sync.RWMutex
	transformers map[string]Transformer
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{transformers: make(map[string]Transformer)}
}

// Register adds a transformer. Names must be unique.
func (r *Registry) Register(t Transformer) error {
	name := t.Name()
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrBadTransformer)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.transformers[name]; exists {
		return fmt.Errorf("%w: %q already registered", ErrBadTransformer, name)
	}
	r.transformers[name] = t
	return nil
}

// Lookup finds a transformer by name.
func (r *Registry) Lookup(name string) (Transformer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.transformers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransformer, name)
	}
	return t, nil
}

// Names returns all registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.transformers))
	for name := range r.transformers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
