package images

// defaultCellPxW/defaultCellPxH are the fallback per-cell pixel
// dimensions used when the terminal adapter's CSI-16t cell-pixel cache is
// empty (no response observed, e.g. piped output or a dumb terminal).
const (
	defaultCellPxW = 10
	defaultCellPxH = 20
)

// CellSize converts a pixelW x pixelH image into the terminal cell grid it
// should occupy, given the terminal's per-cell pixel dimensions cellPxW x
// cellPxH (pass 0, 0 to use the documented default of 10x20). Rounds half
// up and never returns 0 cols/rows for a non-empty pixel box.
func CellSize(pixelW, pixelH, cellPxW, cellPxH int) (cols, rows int) {
	if cellPxW <= 0 {
		cellPxW = defaultCellPxW
	}
	if cellPxH <= 0 {
		cellPxH = defaultCellPxH
	}
	cols = roundHalfUp(pixelW, cellPxW)
	rows = roundHalfUp(pixelH, cellPxH)
	if pixelW > 0 && cols == 0 {
		cols = 1
	}
	if pixelH > 0 && rows == 0 {
		rows = 1
	}
	return cols, rows
}

func roundHalfUp(pixels, cellPx int) int {
	if pixels <= 0 {
		return 0
	}
	return (pixels + cellPx/2) / cellPx
}
