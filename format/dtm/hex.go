package dtm

import (
	"strings"
)

const hexDigits = "0123456789ABCDEF"

// HexString renders b as uppercase hex without zero-padding each byte, so
// 0x0A becomes "A" and 0x10 becomes "10". Existing movie tooling prints MD5 and
// revision digests this way.
func HexString(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b) * 2)
	for _, v := range b {
		if v >= 0x10 {
			sb.WriteByte(hexDigits[v>>4])
		}
		sb.WriteByte(hexDigits[v&0x0f])
	}
	return sb.String()
}
