package renderer

import (
	"fmt"
	"io"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// WriterLogger implements core.Logger on top of any writer, e.g. os.Stderr
type WriterLogger struct {
	w io.Writer
}

func (wl *WriterLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(wl.w, format, args...)
}

// NewWriterLogger creates a logger that writes to w
func NewWriterLogger(w io.Writer) core.Logger {
	return &WriterLogger{w: w}
}

// NewDiscardLogger creates a logger that drops all output
func NewDiscardLogger() core.Logger {
	return NewWriterLogger(io.Discard)
}
