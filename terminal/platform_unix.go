//go:build !windows

package terminal

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"
)

func newTerminal() Terminal {
	return newANSITerminal()
}

// enableVTInput is a no-op on Unix: ANSI terminals already deliver modifier
// keys as VT sequences without any mode negotiation.
func enableVTInput(*os.File) func() {
	return nil
}

// watchResize delivers cols/rows on every SIGWINCH until stop is closed.
func watchResize(stop <-chan struct{}, out *os.File, notify func(cols, rows int)) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGWINCH)
	defer signal.Stop(sigCh)

	for {
		select {
		case <-stop:
			return
		case <-sigCh:
			cols, rows, err := term.GetSize(int(out.Fd()))
			if err != nil {
				continue
			}
			notify(cols, rows)
			// Coalesce a burst of SIGWINCH signals from a fast drag-resize.
			time.Sleep(5 * time.Millisecond)
			for drained := true; drained; {
				select {
				case <-sigCh:
				default:
					drained = false
				}
			}
		}
	}
}
