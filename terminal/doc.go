// Package terminal adapts a raw stdin/stdout pair into the cooperative,
// single-threaded I/O contract the rendering engine expects: raw mode,
// bracketed paste, Kitty keyboard protocol negotiation, resize delivery,
// and the handful of absolute/relative cursor and screen-clearing
// primitives the differential drawer issues every frame.
//
// Unix builds use golang.org/x/term for raw-mode state; Windows builds
// additionally flip ENABLE_VIRTUAL_TERMINAL_INPUT via golang.org/x/sys/windows
// so modifier keys arrive as VT sequences instead of legacy console events.
package terminal
