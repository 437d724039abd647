// Package text provides grapheme-cluster-aware measurement and layout for
// terminal strings: visible width, ANSI-aware word wrap, truncation, and
// column slicing.
//
// Every function treats a string as a sequence of grapheme clusters (as
// defined by Unicode text segmentation), not bytes or runes, so that
// multi-codepoint emoji, combining accents, and wide CJK characters are
// measured the way a terminal actually renders them. SGR (Select Graphic
// Rendition) escape sequences are tracked across operations so that style
// carries correctly across a wrapped or truncated line without bleeding
// into padding.
package text
