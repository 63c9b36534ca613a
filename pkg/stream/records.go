package stream

import "strings"

// SplitRecords splits content on the terminator byte. A single trailing
// empty record is dropped, so properly terminated input round-trips
// without growing a phantom record; an unterminated final record is kept
// as-is, and empty records in the middle survive.
func SplitRecords(content string, terminator byte) []string {
	records := strings.Split(content, string([]byte{terminator}))
	if n := len(records); records[n-1] == "" {
		records = records[:n-1]
	}
	return records
}
