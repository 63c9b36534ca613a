// Package cutlass provides a line-oriented byte, character, and field
// extraction library in the manner of the Unix cut utility.
//
// # Basic Usage
//
// Create a Cutter for one selection mode and range list, then feed it
// records:
//
//	cutter, err := cutlass.New(cutlass.Fields, "2,4", cutlass.WithDelimiter(","))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	out, ok := cutter.Process("a,b,c,d,e")
//	// out == "b,d", ok == true
//
// # Whole Streams
//
// Run drains named files (or stdin, with no paths or the path "-")
// through the cutter and writes the kept records to a sink:
//
//	cutter, err := cutlass.New(cutlass.Characters, "1-3")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cutter.Run([]string{"input.txt"}, os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
package cutlass

import (
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/cutlass-tools/cutlass/pkg/extract"
	"github.com/cutlass-tools/cutlass/pkg/rangelist"
	"github.com/cutlass-tools/cutlass/pkg/stream"
)

// Re-export commonly used types for convenience.
// Users can import just "github.com/cutlass-tools/cutlass" without subpackages.
type (
	// Mode is the unit a record is cut into.
	Mode = extract.Mode

	// RangeSpec is a single parsed range from a list specification.
	RangeSpec = rangelist.RangeSpec

	// RangeList is an ordered sequence of parsed ranges.
	RangeList = rangelist.RangeList

	// Selection is the set of 1-indexed positions kept within one record.
	Selection = rangelist.Selection

	// ParseError reports an unreadable range-list token.
	ParseError = rangelist.ParseError
)

// Re-export the selection modes.
const (
	// Bytes cuts on the raw bytes of each record.
	Bytes = extract.ModeBytes

	// Characters cuts on decoded characters.
	Characters = extract.ModeChars

	// Fields cuts on delimiter-separated fields.
	Fields = extract.ModeFields
)

// ParseList parses a range-list specification such as "1,3-5,8-".
func ParseList(spec string) (RangeList, error) {
	return rangelist.Parse(spec)
}

// Cutter applies one fixed selection to any number of records. It is
// stateless across records.
type Cutter struct {
	extractor  *extract.Extractor
	terminator byte
	logger     *zap.Logger
}

// cutterConfig holds cutter configuration.
type cutterConfig struct {
	delimiter       string
	outputDelimiter *string
	complement      bool
	onlyDelimited   bool
	zeroTerminated  bool
	logger          *zap.Logger
}

// Option configures a Cutter.
type Option func(*cutterConfig)

// WithDelimiter sets the input field delimiter. Default is a horizontal
// tab. Field mode only; other modes ignore it.
func WithDelimiter(delim string) Option {
	return func(c *cutterConfig) {
		c.delimiter = delim
	}
}

// WithOutputDelimiter joins kept fields with delim instead of the input
// delimiter. An empty string joins fields with nothing.
func WithOutputDelimiter(delim string) Option {
	return func(c *cutterConfig) {
		d := delim
		c.outputDelimiter = &d
	}
}

// WithComplement keeps the positions the range list does not name.
func WithComplement() Option {
	return func(c *cutterConfig) {
		c.complement = true
	}
}

// WithOnlyDelimited suppresses field-mode records that contain no
// delimiter instead of passing them through whole.
func WithOnlyDelimited() Option {
	return func(c *cutterConfig) {
		c.onlyDelimited = true
	}
}

// WithZeroTerminated makes NUL the record terminator, for reading and
// writing both, instead of newline.
func WithZeroTerminated() Option {
	return func(c *cutterConfig) {
		c.zeroTerminated = true
	}
}

// WithLogger enables diagnostics from Run. Default is no logging.
func WithLogger(logger *zap.Logger) Option {
	return func(c *cutterConfig) {
		c.logger = logger
	}
}

// New creates a Cutter for one selection mode and range list.
//
// By default, the cutter:
//   - Splits fields on a horizontal tab
//   - Joins output fields with the input delimiter
//   - Terminates records with newline
//
// Example:
//
//	// Characters 1 through 3 of every record
//	cutter, err := cutlass.New(cutlass.Characters, "1-3")
//
//	// Everything except fields 2 and 4, comma-delimited
//	cutter, err := cutlass.New(cutlass.Fields, "2,4",
//	    cutlass.WithDelimiter(","), cutlass.WithComplement())
func New(mode Mode, list string, opts ...Option) (*Cutter, error) {
	config := &cutterConfig{
		delimiter: "\t",
	}
	for _, opt := range opts {
		opt(config)
	}

	ranges, err := rangelist.Parse(list)
	if err != nil {
		return nil, err
	}

	extractor, err := extract.New(extract.Config{
		Mode:            mode,
		Ranges:          ranges,
		Complement:      config.complement,
		Delimiter:       config.delimiter,
		OutputDelimiter: config.outputDelimiter,
		OnlyDelimited:   config.onlyDelimited,
	})
	if err != nil {
		return nil, err
	}

	terminator := byte('\n')
	if config.zeroTerminated {
		terminator = 0
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Cutter{
		extractor:  extractor,
		terminator: terminator,
		logger:     logger,
	}, nil
}

// Mode returns the configured cutting unit.
func (c *Cutter) Mode() Mode { return c.extractor.Mode() }

// Terminator returns the record terminator byte.
func (c *Cutter) Terminator() byte { return c.terminator }

// Process cuts one record, given and returned without its terminator.
// The boolean is false only when the record is suppressed outright by the
// only-delimited policy; an empty string with true still means "emit an
// empty record".
func (c *Cutter) Process(record string) (string, bool) {
	return c.extractor.Process(record)
}

// Run opens every named path ("-" means stdin, as does an empty path
// list), cuts each record of each source in argument order, and writes
// the kept records to out. Any open failure aborts the run before output
// is written.
func (c *Cutter) Run(paths []string, out io.Writer) error {
	sources, err := stream.OpenAll(paths, os.Stdin)
	if err != nil {
		return err
	}
	pipeline := stream.NewPipeline(c.extractor, c.terminator, c.logger)
	return pipeline.Run(sources, out)
}
