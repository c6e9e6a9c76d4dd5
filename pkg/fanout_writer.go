package pkg

import (
	"fmt"
	"io"

	"go.uber.org/multierr"
)

// FanOutWriter copies every write to all sinks. A failing sink does not stop the others,
// so a full log disk still leaves stdout logging alive.
type FanOutWriter struct {
	sinks []io.Writer
}

func NewFanOutWriter(sinks ...io.Writer) *FanOutWriter {
	return &FanOutWriter{sinks: sinks}
}

func (w *FanOutWriter) Write(p []byte) (int, error) {
	var errs error
	for i, sink := range w.sinks {
		if _, err := sink.Write(p); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("sink %d: %w", i, err))
		}
	}
	return len(p), errs
}
