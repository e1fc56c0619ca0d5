package parser

import (
	"fmt"
	"io"
)

type Diagnostic struct {
	Line    int
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%d: %s", d.Line, d.Message)
}

// Diagnostics counts reported errors and echoes each one to a sink as it
// arrives. Reporting never stops a parse by itself.
type Diagnostics struct {
	sink    io.Writer
	records []Diagnostic
}

func NewDiagnostics(sink io.Writer) *Diagnostics {
	if sink == nil {
		sink = io.Discard
	}
	return &Diagnostics{sink: sink}
}

func (d *Diagnostics) Report(line int, msg string) {
	diag := Diagnostic{Line: line, Message: msg}
	d.records = append(d.records, diag)
	fmt.Fprintln(d.sink, diag.String())
}

func (d *Diagnostics) Count() int {
	return len(d.records)
}

func (d *Diagnostics) Records() []Diagnostic {
	records := make([]Diagnostic, len(d.records))
	copy(records, d.records)
	return records
}
