//go:build windows

package terminal

import (
	"os"
	"time"

	"golang.org/x/sys/windows"
	"golang.org/x/term"
)

// enableVirtualTerminalInput, absent from golang.org/x/sys/windows's
// exported mode-bit constants.
const enableVirtualTerminalInput = 0x0200

func newTerminal() Terminal {
	return newANSITerminal()
}

// enableVTInput sets ENABLE_VIRTUAL_TERMINAL_INPUT on the console input
// handle so modifier keys (arrows, function keys, Kitty CSI-u sequences)
// arrive as VT escape sequences instead of legacy INPUT_RECORD key events,
// matching the phoenix Windows console adapter's mode-bit handling. Returns
// a closure that restores the original mode, or nil if the handle isn't a
// real console (e.g. redirected stdin in tests).
func enableVTInput(in *os.File) func() {
	handle := windows.Handle(in.Fd())
	var original uint32
	if err := windows.GetConsoleMode(handle, &original); err != nil {
		return nil
	}
	if err := windows.SetConsoleMode(handle, original|enableVirtualTerminalInput); err != nil {
		return nil
	}
	return func() {
		_ = windows.SetConsoleMode(handle, original)
	}
}

// watchResize polls the console buffer size, since Windows has no SIGWINCH
// equivalent delivered to the process.
func watchResize(stop <-chan struct{}, out *os.File, notify func(cols, rows int)) {
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	lastCols, lastRows, _ := term.GetSize(int(out.Fd()))
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			cols, rows, err := term.GetSize(int(out.Fd()))
			if err != nil || (cols == lastCols && rows == lastRows) {
				continue
			}
			lastCols, lastRows = cols, rows
			notify(cols, rows)
		}
	}
}
