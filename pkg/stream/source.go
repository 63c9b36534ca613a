// Package stream moves whole records from input sources through a
// processor to the output sink.
package stream

import (
	"fmt"
	"io"
	"os"
)

// Stdin is the path argument naming standard input.
const Stdin = "-"

// Source is one named input: a file, or standard input when the path
// is "-".
type Source struct {
	// Name is the path as given on the command line, or "-".
	Name string

	reader io.Reader
	closer io.Closer
}

// OpenAll opens every named source before any processing starts, so a bad
// path aborts the whole run before partial output is written. An empty
// path list means standard input, as does the name "-"; stdin supplies
// the reader for those. On failure the already-open sources are closed
// and the returned error names the offending path.
func OpenAll(paths []string, stdin io.Reader) ([]*Source, error) {
	if len(paths) == 0 {
		paths = []string{Stdin}
	}
	sources := make([]*Source, 0, len(paths))
	for _, path := range paths {
		if path == Stdin {
			sources = append(sources, &Source{Name: Stdin, reader: stdin})
			continue
		}
		f, err := os.Open(path)
		if err != nil {
			closeAll(sources)
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		sources = append(sources, &Source{Name: path, reader: f, closer: f})
	}
	return sources, nil
}

// Contents reads the source to EOF.
func (s *Source) Contents() ([]byte, error) {
	return io.ReadAll(s.reader)
}

// Close releases the underlying file. It is idempotent, and a no-op for
// stdin sources.
func (s *Source) Close() error {
	if s.closer == nil {
		return nil
	}
	err := s.closer.Close()
	s.closer = nil
	return err
}

func closeAll(sources []*Source) {
	for _, s := range sources {
		s.Close()
	}
}
