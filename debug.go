package chartsense

import (
	"fmt"
	"io"
	"os"
)

// Diagnostics writes debug lines for recovered interaction failures
// (discarded stale matches, ambiguous targets, channel conflicts). It is
// silent unless enabled. A nil *Diagnostics is valid and silent.
type Diagnostics struct {
	enabled bool
	out     io.Writer
}

// NewDiagnostics returns a Diagnostics writing to out, or os.Stderr when out is nil.
func NewDiagnostics(enabled bool, out io.Writer) *Diagnostics {
	if out == nil {
		out = os.Stderr
	}
	return &Diagnostics{enabled: enabled, out: out}
}

// SetEnabled toggles debug output.
func (d *Diagnostics) SetEnabled(enabled bool) {
	if d != nil {
		d.enabled = enabled
	}
}

// Enabled reports whether debug output is on.
func (d *Diagnostics) Enabled() bool {
	return d != nil && d.enabled
}

// Logf prints a "[chartsense] ..." line when enabled.
func (d *Diagnostics) Logf(format string, args ...any) {
	if !d.Enabled() {
		return
	}
	_, _ = fmt.Fprintf(d.out, "[chartsense] "+format+"\n", args...)
}

// Warnf prints a "[chartsense] warning: ..." line when enabled.
func (d *Diagnostics) Warnf(format string, args ...any) {
	if !d.Enabled() {
		return
	}
	_, _ = fmt.Fprintf(d.out, "[chartsense] warning: "+format+"\n", args...)
}
