package stream

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Processor turns one input record into one output record. A false second
// result suppresses the record entirely: no output, no terminator.
type Processor interface {
	Process(record string) (string, bool)
}

// Pipeline drains sources through a processor, one record at a time, in
// source order.
type Pipeline struct {
	processor  Processor
	terminator byte
	logger     *zap.Logger
}

// NewPipeline creates a pipeline emitting records terminated by
// terminator. A nil logger disables diagnostics.
func NewPipeline(processor Processor, terminator byte, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		processor:  processor,
		terminator: terminator,
		logger:     logger,
	}
}

// Run processes every source in order and writes the kept records to out.
// Sources are closed as they are drained. Output produced before a failure
// is flushed so partial results are not silently dropped.
func (p *Pipeline) Run(sources []*Source, out io.Writer) error {
	defer closeAll(sources)
	w := NewWriter(out, p.terminator)
	for _, src := range sources {
		if err := p.drain(src, w); err != nil {
			w.Flush()
			return err
		}
	}
	return w.Flush()
}

func (p *Pipeline) drain(src *Source, w *Writer) error {
	defer src.Close()

	content, err := src.Contents()
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", src.Name, err)
	}

	records := SplitRecords(string(content), p.terminator)
	emitted := 0
	for _, record := range records {
		out, emit := p.processor.Process(record)
		if !emit {
			continue
		}
		if err := w.Emit(out); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		emitted++
	}

	p.logger.Debug("drained source",
		zap.String("source", src.Name),
		zap.Int("records", len(records)),
		zap.Int("emitted", emitted))
	return nil
}
