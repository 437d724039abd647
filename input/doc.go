// Package input turns a raw stdin byte stream into discrete key and paste
// events: a buffer that reassembles control sequences split across reads,
// and a classifier that decodes both the Kitty keyboard protocol and the
// legacy ANSI fallback table into a canonical KeyId.
package input
