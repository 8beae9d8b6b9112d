// Package dispatch connects validated shortcut tables to transform
// execution. A Dispatcher owns the sequence detector, resolves matched
// shortcuts to actions, and runs each operation on its own goroutine
// with snapshot capture, focus re-checking and rollback on failure. At
// most one operation is in flight at a time.
package dispatch
