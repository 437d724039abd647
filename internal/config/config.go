// Package config resolves the environment variables the engine honors into
// an immutable snapshot, read once at Start. Mirrors the environment-provider
// seam in phoenix's core/internal/infrastructure/platform, collapsed from a
// capability-detector interface down to a single struct since pitui has no
// alternate (non-OS) environment source to swap in.
package config

import "os"

// Config is the process-scope, read-once snapshot of every PI_TUI_*/PI_*
// environment variable the engine consults.
type Config struct {
	// WriteLog holds the file name given in PI_TUI_WRITE_LOG. The engine
	// does not read it, and terminal writes are not logged.
	WriteLog string
	// Debug is true when PI_TUI_DEBUG=1. The engine does not read it, and
	// no per-frame dumps are written.
	Debug bool
	// DebugRedraw logs the reason for every full-redraw decision
	// (PI_DEBUG_REDRAW=1).
	DebugRedraw bool
	// HardwareCursor shows the OS cursor instead of hiding it between
	// frames, for IME support (PI_HARDWARE_CURSOR=1).
	HardwareCursor bool
	// ClearOnShrink controls the clearOnShrink full-redraw heuristic.
	// nil means "use the engine's default" (redraw on shrink with no
	// overlays active); non-nil is an explicit PI_CLEAR_ON_SHRINK=0/1
	// override.
	ClearOnShrink *bool
}

// Load reads the current environment into a Config. Call once at Start;
// the engine never re-reads the environment mid-session.
func Load() Config {
	return Config{
		WriteLog:       os.Getenv("PI_TUI_WRITE_LOG"),
		Debug:          boolEnv("PI_TUI_DEBUG"),
		DebugRedraw:    boolEnv("PI_DEBUG_REDRAW"),
		HardwareCursor: boolEnv("PI_HARDWARE_CURSOR"),
		ClearOnShrink:  optionalBoolEnv("PI_CLEAR_ON_SHRINK"),
	}
}

func boolEnv(key string) bool {
	return os.Getenv(key) == "1"
}

func optionalBoolEnv(key string) *bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	b := v == "1"
	return &b
}
