// Package search is the reactive core of kite: how filter edits, search
// triggers, and asynchronous query responses merge into one consistent view
// state, and how that state deterministically re-derives the rendered view.
//
// # Architecture
//
// The package is a pure reducer plus derived views:
//
//   - events.go: the explicit event sum type consumed by the reducer
//   - state.go: ViewState and the Reduce transition function
//   - view.go: Describe, deriving the declarative ViewDescription
//
// Reduce and Describe are total, side-effect-free functions. Everything
// non-deterministic — issuing the transport call, re-enqueueing its result,
// logging — lives in the surrounding driver (the Bubble Tea update loop in
// internal/ui), which keeps this package fully unit-testable.
//
// # Ordering
//
// Events are processed strictly in arrival order by the single-threaded
// driver. Nothing guards against overlapping searches: triggering again while
// one is pending starts a second request, and whichever resolution event is
// processed last wins. That matches the original interface's behavior and is
// deliberately kept.
package search
