// Package ui provides the terminal front end for kite.
//
// # Architecture Overview
//
// The package implements a Bubble Tea program around the pure core in
// internal/search. The Bubble Tea runtime is the event loop: key presses and
// finished transport calls arrive as messages, are translated into core
// events, and flow through search.Reduce. The Model caches the derived
// ViewDescription and only re-derives it when the reducer reports a dirty
// transition; View paints the cached description with Lipgloss.
//
// # Package Structure
//
//   - app.go: Model, Update loop, event dispatch, the search command, Run
//   - form.go: the five filter inputs, focus cycling, edit commits
//   - table.go: result table layout and painting
//   - keys.go: key bindings
//   - theme.go: colors and Lipgloss styles
//
// # Input Boundary
//
// The bubbles textinput components hold raw keystrokes. A field is committed
// when focus leaves it or the search is submitted; at that boundary the raw
// text is normalized (blank means "no constraint") and becomes a FilterEdited
// event. The core never sees uncommitted or unnormalized input.
package ui
