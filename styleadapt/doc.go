// Package styleadapt bridges two concerns the renderer itself deliberately
// stays out of: resolving lipgloss-style color values down to raw SGR
// parameter sequences (so a host program's lipgloss-authored widgets can
// still flow through the engine's own diffing writer instead of lipgloss's),
// and emitting OSC 52 clipboard-write sequences for terminals/multiplexers
// that forward them.
package styleadapt
