// Package extract applies a parsed range list to individual records,
// keeping the selected bytes, characters, or fields of each one.
package extract

import (
	"fmt"
	"strings"

	"github.com/cutlass-tools/cutlass/pkg/rangelist"
)

// Mode is the unit a record is cut into.
type Mode int

const (
	// ModeUnset is the zero value and is rejected by New.
	ModeUnset Mode = iota
	// ModeBytes cuts on the raw bytes of the record.
	ModeBytes
	// ModeChars cuts on decoded characters.
	ModeChars
	// ModeFields cuts on delimiter-separated fields.
	ModeFields
)

// String returns the mode name used in diagnostics.
func (m Mode) String() string {
	switch m {
	case ModeBytes:
		return "bytes"
	case ModeChars:
		return "characters"
	case ModeFields:
		return "fields"
	default:
		return "unset"
	}
}

// Config for extractor initialization.
type Config struct {
	// Mode is the cutting unit; required.
	Mode Mode

	// Ranges is the parsed range list, resolved against each record.
	Ranges rangelist.RangeList

	// Complement keeps the positions the range list does not name.
	Complement bool

	// Delimiter separates fields on input. Field mode only; must be
	// non-empty there. Any string works, not just a single byte.
	Delimiter string

	// OutputDelimiter joins the kept fields. Nil means reuse Delimiter;
	// pointing at an empty string joins fields with nothing.
	OutputDelimiter *string

	// OnlyDelimited suppresses field-mode records that contain no
	// delimiter instead of passing them through whole.
	OnlyDelimited bool
}

// Extractor cuts successive records according to one fixed configuration.
// It is stateless across records and safe to reuse for any number of them.
type Extractor struct {
	mode          Mode
	ranges        rangelist.RangeList
	complement    bool
	delimiter     string
	outputDelim   string
	onlyDelimited bool
}

// New validates cfg and creates an Extractor.
func New(cfg Config) (*Extractor, error) {
	switch cfg.Mode {
	case ModeBytes, ModeChars, ModeFields:
	default:
		return nil, fmt.Errorf("cut mode is required: bytes, characters, or fields")
	}
	if cfg.Mode == ModeFields && cfg.Delimiter == "" {
		return nil, fmt.Errorf("field mode requires a non-empty delimiter")
	}

	outputDelim := cfg.Delimiter
	if cfg.OutputDelimiter != nil {
		outputDelim = *cfg.OutputDelimiter
	}

	return &Extractor{
		mode:          cfg.Mode,
		ranges:        cfg.Ranges,
		complement:    cfg.Complement,
		delimiter:     cfg.Delimiter,
		outputDelim:   outputDelim,
		onlyDelimited: cfg.OnlyDelimited,
	}, nil
}

// Mode returns the configured cutting unit.
func (e *Extractor) Mode() Mode { return e.mode }

// Process cuts one record, without its terminator. The boolean is false
// only when the record is suppressed outright (field mode, OnlyDelimited
// set, no delimiter in the record); an empty string with true still means
// "emit an empty record".
func (e *Extractor) Process(record string) (string, bool) {
	switch e.mode {
	case ModeBytes:
		return e.processBytes(record), true
	case ModeChars:
		return e.processChars(record), true
	default:
		return e.processFields(record)
	}
}

// selection resolves the range list against one record length, applying
// the complement when configured.
func (e *Extractor) selection(length int) rangelist.Selection {
	sel := rangelist.Build(e.ranges, length)
	if e.complement {
		sel = sel.Complement(length)
	}
	return sel
}

func (e *Extractor) processBytes(record string) string {
	data := []byte(record)
	kept := selectIndexed(data, e.selection(len(data)))
	return lossyDecode(kept)
}

func (e *Extractor) processChars(record string) string {
	// The []rune conversion already substitutes U+FFFD for each invalid
	// byte, so character positions count post-replacement characters.
	runes := []rune(record)
	kept := selectIndexed(runes, e.selection(len(runes)))
	return string(kept)
}

func (e *Extractor) processFields(record string) (string, bool) {
	fields := strings.Split(record, e.delimiter)
	if len(fields) == 1 {
		// No delimiter in the record: pass it through whole, even under
		// complement, unless only-delimited suppression is on.
		if e.onlyDelimited {
			return "", false
		}
		return record, true
	}
	kept := selectIndexed(fields, e.selection(len(fields)))
	return strings.Join(kept, e.outputDelim), true
}

// selectIndexed keeps the items at the 1-indexed positions named by sel,
// in sequence order. Positions outside the sequence are ignored.
func selectIndexed[T any](items []T, sel rangelist.Selection) []T {
	kept := make([]T, 0, len(sel))
	for _, pos := range sel.Sorted() {
		if pos < 1 || pos > len(items) {
			continue
		}
		kept = append(kept, items[pos-1])
	}
	return kept
}
