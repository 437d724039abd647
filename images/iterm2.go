package images

import (
	"encoding/base64"
	"strconv"
)

// ITerm2 encodes data as an iTerm2 OSC 1337 inline image, displayed at
// cols x rows terminal cells.
func ITerm2(data []byte, cols, rows int) string {
	encoded := base64.StdEncoding.EncodeToString(data)
	return "\x1b]1337;File=inline=1;width=" + strconv.Itoa(cols) +
		";height=" + strconv.Itoa(rows) +
		";preserveAspectRatio=0:" + encoded + "\a"
}
