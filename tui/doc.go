// Package tui is the component tree, overlay stack, and differential render
// engine: the Component/Container contract, focus management, overlay
// positioning, and the per-tick render-then-diff pipeline that turns a tree
// of rendered lines into the minimal set of terminal writes needed to bring
// the screen up to date.
//
// The engine is single-threaded and cooperative: render and HandleInput must
// return promptly, and there is exactly one goroutine touching engine state
// (the one driving Tick). The terminal adapter's own background goroutines
// only ever hand data back over channels; they own no engine state.
package tui
