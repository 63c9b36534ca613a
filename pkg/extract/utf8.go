package extract

import (
	"strings"
	"unicode/utf8"
)

// lossyDecode interprets data as UTF-8 text. Every byte that is not part
// of a valid encoding is replaced with U+FFFD, so cutting a multi-byte
// character in half yields replacement characters rather than an error or
// invalid output.
func lossyDecode(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	var b strings.Builder
	b.Grow(len(data))
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		b.WriteRune(r)
		data = data[size:]
	}
	return b.String()
}
