package dynsys

import (
	"fmt"
	"io"
)

// Diag receives non-fatal diagnostics (cost warnings, degenerate spectra).
// Implementations must not panic; callers treat Report as fire-and-forget.
type Diag interface {
	Report(format string, args ...any)
}

type discard struct{}

func (discard) Report(string, ...any) {}

// DiscardDiag drops every diagnostic.
var DiscardDiag Diag = discard{}

// WriterDiag writes diagnostics as single lines to w.
type WriterDiag struct {
	W io.Writer
}

func (d WriterDiag) Report(format string, args ...any) {
	fmt.Fprintf(d.W, "warning: "+format+"\n", args...)
}

// Recorder collects diagnostics for inspection in tests.
type Recorder struct {
	Messages []string
}

func (r *Recorder) Report(format string, args ...any) {
	r.Messages = append(r.Messages, fmt.Sprintf(format, args...))
}
