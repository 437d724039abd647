package images

import (
	"encoding/base64"
	"strconv"
	"strings"
)

// kittyChunkSize is the Kitty graphics protocol's maximum base64 payload
// per APC transmission; larger payloads are split across multiple escapes
// chained with the m=1/m=0 continuation flag.
const kittyChunkSize = 4096

// Kitty encodes data (raw PNG/JPEG bytes) as a Kitty graphics protocol APC
// transmission displaying at cols x rows terminal cells, under id. The
// result is a single opaque string a component embeds directly in a
// rendered line; the render pipeline recognizes the "\x1b_G" payload
// marker and skips the per-line SGR reset suffix it would otherwise
// append, since splitting an APC sequence with a reset would corrupt it.
func Kitty(id uint32, data []byte, cols, rows int) string {
	encoded := base64.StdEncoding.EncodeToString(data)

	var b strings.Builder
	for i := 0; i < len(encoded); i += kittyChunkSize {
		end := min(i+kittyChunkSize, len(encoded))
		chunk := encoded[i:end]
		more := 0
		if end < len(encoded) {
			more = 1
		}

		if i == 0 {
			b.WriteString("\x1b_Ga=T,q=2,f=100,i=")
			b.WriteString(strconv.FormatUint(uint64(id), 10))
			b.WriteString(",c=")
			b.WriteString(strconv.Itoa(cols))
			b.WriteString(",r=")
			b.WriteString(strconv.Itoa(rows))
			b.WriteString(",m=")
			b.WriteString(strconv.Itoa(more))
			b.WriteByte(';')
		} else {
			b.WriteString("\x1b_Gm=")
			b.WriteString(strconv.Itoa(more))
			b.WriteByte(';')
		}
		b.WriteString(chunk)
		b.WriteString("\x1b\\")
	}
	return b.String()
}

// KittyDelete emits the deletion command for a previously transmitted
// placement, so a component can clear an image it no longer renders
// without waiting for the terminal's own garbage collection.
func KittyDelete(id uint32) string {
	return "\x1b_Ga=d,d=i,q=2,i=" + strconv.FormatUint(uint64(id), 10) + "\x1b\\"
}
