package stream

import (
	"bufio"
	"io"
)

// Writer emits processed records, each followed by the record terminator.
type Writer struct {
	w          *bufio.Writer
	terminator byte
}

// NewWriter wraps out with buffering. Call Flush once all records have
// been emitted.
func NewWriter(out io.Writer, terminator byte) *Writer {
	return &Writer{w: bufio.NewWriter(out), terminator: terminator}
}

// Emit writes one record and its terminator.
func (w *Writer) Emit(record string) error {
	if _, err := w.w.WriteString(record); err != nil {
		return err
	}
	return w.w.WriteByte(w.terminator)
}

// Flush drains buffered output to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}
