package luaext

import "errors"

var (
	// ErrScript indicates the script failed to load or raised an error.
	ErrScript = errors.New("luaext: script error")

	// ErrNoTransformFn indicates the script defines no global
	// transform function.
	ErrNoTransformFn = errors.New("luaext: script defines no transform function")

	// ErrBadResult indicates transform returned a non-string value.
	ErrBadResult = errors.New("luaext: transform must return a string")

	// ErrBudgetExceeded indicates the script ran past its time budget
	// and was cancelled.
	ErrBudgetExceeded = errors.New("luaext: script budget exceeded")
)
