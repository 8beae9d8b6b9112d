package luaext

import (
	"context"
	"fmt"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/keyscribe/keyscribe/internal/transform"
)

// DefaultBudget bounds one script invocation.
const DefaultBudget = 2 * time.Second

// Transformer is a transform.Transformer backed by a Lua script. Each
// invocation runs in a fresh sandboxed state; gopher-lua's LState is
// not goroutine-safe and must never be shared across calls.
type Transformer struct {
	name   string
	source string
	budget time.Duration
}

// New creates a transformer from Lua source. A non-positive budget
// uses DefaultBudget.
func New(name, source string, budget time.Duration) *Transformer {
	if budget <= 0 {
		budget = DefaultBudget
	}
	return &Transformer{name: name, source: source, budget: budget}
}

// Name returns the script's configured name.
func (t *Transformer) Name() string { return t.name }

// Transform implements transform.Transformer.
func (t *Transformer) Transform(ctx context.Context, req transform.Request) (string, error) {
	if req.Text == "" {
		return "", transform.ErrEmptyInput
	}

	ctx, cancel := context.WithTimeout(ctx, t.budget)
	defer cancel()

	L := newSandboxedState()
	defer L.Close()
	L.SetContext(ctx)

	if err := L.DoString(t.source); err != nil {
		return "", t.wrap(ctx, err)
	}

	fn := L.GetGlobal("transform")
	if fn.Type() != lua.LTFunction {
		return "", fmt.Errorf("%w (script %q)", ErrNoTransformFn, t.name)
	}

	L.Push(fn)
	L.Push(lua.LString(req.Text))
	L.Push(argsTable(L, req.Args))
	if err := L.PCall(2, 1, nil); err != nil {
		return "", t.wrap(ctx, err)
	}

	ret := L.Get(-1)
	L.Pop(1)
	out, ok := ret.(lua.LString)
	if !ok {
		return "", fmt.Errorf("%w, got %s (script %q)", ErrBadResult, ret.Type(), t.name)
	}
	return string(out), nil
}

// wrap folds a cancelled context into the budget error so callers see
// one stable sentinel for runaway scripts.
func (t *Transformer) wrap(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return fmt.Errorf("%w (script %q): %v", ErrBudgetExceeded, t.name, ctx.Err())
	}
	return fmt.Errorf("%w (script %q): %v", ErrScript, t.name, err)
}

func argsTable(L *lua.LState, args map[string]string) *lua.LTable {
	tbl := L.NewTable()
	for k, v := range args {
		tbl.RawSetString(k, lua.LString(v))
	}
	return tbl
}

// newSandboxedState opens only the safe standard libraries and removes
// the escape hatches base leaves behind. No io, os, debug, coroutine
// or module loading is reachable from a script.
func newSandboxedState() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require"} {
		L.SetGlobal(name, lua.LNil)
	}
	return L
}
