// Package editor is a multi-line text editing Component: buffer, cursor,
// selection, kill ring, undo stack, submission history, and autocomplete,
// driven by a swappable keybinding table (Emacs-style by default).
//
// An Editor's public surface follows a functional-core/imperative-shell
// split: Buffer, Position, Range, KillRing, and the undo Snapshot are
// immutable value types whose operations return new instances; Editor
// itself is the mutable shell that reassigns them as keystrokes arrive.
package editor
