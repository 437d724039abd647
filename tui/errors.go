package tui

import "fmt"

// ErrOverlayHidden reports an overlay that is not visible. The Engine's
// overlay methods have no error result and do not return it.
var ErrOverlayHidden = fmt.Errorf("tui: overlay not visible")

// ContractViolationError is the fatal error raised when a component's
// rendered line exceeds the terminal's width. It carries enough detail for
// the crash log to identify the offending widget's output.
type ContractViolationError struct {
	Width int
	Lines []string
	Widths []int
}

func (e *ContractViolationError) Error() string {
	return fmt.Sprintf("tui: contract violation: a rendered line exceeds terminal width %d", e.Width)
}
