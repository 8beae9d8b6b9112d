// Package luaext runs user-supplied Lua transform scripts. A script
// defines a global transform(text, args) function returning the
// replacement string. Scripts execute in a sandboxed state with no io,
// os, debug or module loading, bounded by a per-invocation time budget.
package luaext
