package errors

import (
	"fmt"
	"os"
)

// LogHandler logs structured errors to stderr.
type LogHandler struct {
	// Verbose enables the underlying error chain in the output.
	Verbose bool
}

// HandleError logs err to stderr. Nil errors are ignored.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	if h.Verbose && err.Err != nil {
		fmt.Fprintf(os.Stderr, "[kinetic error] %s [%s]: %v\n", err.Op, err.Kind, err.Err)
		return
	}
	fmt.Fprintf(os.Stderr, "[kinetic error] %s [%s]\n", err.Op, err.Kind)
}
