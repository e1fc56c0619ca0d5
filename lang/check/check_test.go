package check

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		ok     bool
		errors int
		first  string
	}{
		{"assign", "PROGRAM P INT a; a = 5; END PROGRAM", true, 0, ""},
		{"undeclared", "PROGRAM P INT a; b = 5; END PROGRAM", false, 1, "1: Undeclared Variable"},
		{"empty", "", false, 1, "1: Empty File"},
		{"redefinition", "PROGRAM P INT a, a; END PROGRAM", false, 1, "1: Variable Redefinition"},
		{"write literals", "PROGRAM P WRITE 1 + 2; END PROGRAM", true, 0, ""},
		{"if", "PROGRAM P IF (1 == 1) WRITE 1; END PROGRAM", true, 0, ""},
		{"missing semicolon", "PROGRAM P INT a; a = 5 END PROGRAM", false, 1, "1: Missing a semicolon."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Check(tt.name, []byte(tt.input))
			if res.OK != tt.ok {
				t.Errorf("OK = %v, want %v (%v)", res.OK, tt.ok, res.Diagnostics)
			}
			if res.Errors != tt.errors {
				t.Errorf("Errors = %d, want %d", res.Errors, tt.errors)
			}
			if tt.first != "" {
				if len(res.Diagnostics) == 0 || res.Diagnostics[0].String() != tt.first {
					t.Errorf("Diagnostics = %v, want first %q", res.Diagnostics, tt.first)
				}
			}
		})
	}
}

func TestCheckSymbols(t *testing.T) {
	res := Check("decls", []byte("PROGRAM P INT b, a; FLOAT c; END PROGRAM"))
	if got := strings.Join(res.Symbols, ","); got != "b,a,c" {
		t.Errorf("Symbols = %q, want %q", got, "b,a,c")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestExpand(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.mini"), "")
	writeFile(t, filepath.Join(dir, "sub", "b.MINI"), "")
	writeFile(t, filepath.Join(dir, "notes.txt"), "")
	single := filepath.Join(dir, "notes.txt")

	files, err := Expand([]string{dir, single}, []string{".mini"})
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		filepath.Join(dir, "a.mini"),
		filepath.Join(dir, "sub", "b.MINI"),
		single,
	}
	if strings.Join(files, "\n") != strings.Join(want, "\n") {
		t.Errorf("Expand() = %v, want %v", files, want)
	}
}

func TestExpandMissing(t *testing.T) {
	if _, err := Expand([]string{filepath.Join(t.TempDir(), "nope.mini")}, nil); err == nil {
		t.Error("Expand() of a missing path returned no error")
	}
}

func TestCheckFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "good.mini"), "PROGRAM P INT a;\na = 1;\nEND PROGRAM\n")
	writeFile(t, filepath.Join(dir, "bad.mini"), "PROGRAM P\nx = 1;\nEND PROGRAM\n")

	results, err := CheckFiles(context.Background(), []string{dir}, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if Failed(results) != 1 {
		t.Errorf("Failed() = %d, want 1", Failed(results))
	}
	for _, res := range results {
		wantOK := filepath.Base(res.Name) == "good.mini"
		if res.OK != wantOK {
			t.Errorf("%s: OK = %v, want %v", res.Name, res.OK, wantOK)
		}
	}
}

func TestCheckFilesCanceled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.mini"), "PROGRAM P WRITE 1; END PROGRAM")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := CheckFiles(ctx, []string{dir}, DefaultConfig())
	if err == nil {
		t.Error("CheckFiles() with canceled context returned no error")
	}
	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
}

func TestWriteReport(t *testing.T) {
	results := []Result{
		Check("good", []byte("PROGRAM P WRITE 1; END PROGRAM")),
		Check("bad", []byte("PROGRAM P\nb = 1;\nEND PROGRAM")),
	}

	var buf bytes.Buffer
	WriteReport(&buf, results, OutputConfig{Summary: true, FileHeaders: true})

	want := "good:\nSuccessful Parsing\nbad:\n2: Undeclared Variable\nUnsuccessful Parsing\nNumber of Syntax Errors: 1\n"
	if buf.String() != want {
		t.Errorf("report:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestWriteReportSingleNoSummary(t *testing.T) {
	results := []Result{Check("bad", []byte("PROGRAM P INT a, a; END PROGRAM"))}

	var buf bytes.Buffer
	WriteReport(&buf, results, OutputConfig{FileHeaders: true})

	if want := "1: Variable Redefinition\n"; buf.String() != want {
		t.Errorf("report = %q, want %q", buf.String(), want)
	}
}
