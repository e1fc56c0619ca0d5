package check

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestToProtocolDiagnostics(t *testing.T) {
	res := Check("doc", []byte("PROGRAM P\nINT a;\nb = 1;\nEND PROGRAM\n"))

	diags := toProtocolDiagnostics(res)
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}

	d := diags[0]
	if d.Message != "Undeclared Variable" {
		t.Errorf("Message = %q", d.Message)
	}
	if d.Range.Start.Line != 2 || d.Range.End.Line != 3 {
		t.Errorf("Range = %+v, want lines 2-3", d.Range)
	}
	if d.Severity == nil || *d.Severity != protocol.DiagnosticSeverityError {
		t.Errorf("Severity = %v", d.Severity)
	}
	if d.Source == nil || *d.Source != lsName {
		t.Errorf("Source = %v", d.Source)
	}
}

func TestToProtocolDiagnosticsAccepted(t *testing.T) {
	diags := toProtocolDiagnostics(Check("doc", []byte("PROGRAM P WRITE 1; END PROGRAM")))
	if diags == nil || len(diags) != 0 {
		t.Errorf("diagnostics = %v, want empty non-nil slice", diags)
	}
}

func TestURIToPath(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{"file:///tmp/prog.mini", "/tmp/prog.mini"},
		{"file:///tmp/dir/../prog.mini", "/tmp/prog.mini"},
		{"untitled:1", "untitled:1"},
	}
	for _, tt := range tests {
		got, err := uriToPath(tt.uri)
		if err != nil {
			t.Fatalf("uriToPath(%q): %v", tt.uri, err)
		}
		if got != tt.want {
			t.Errorf("uriToPath(%q) = %q, want %q", tt.uri, got, tt.want)
		}
	}
}
