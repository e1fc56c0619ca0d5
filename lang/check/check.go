// Package check runs the parser over files and reports the results.
package check

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dhamidi/declcheck/lang/parser"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("declcheck.check")

// Result is the outcome of checking one program.
type Result struct {
	Name        string
	OK          bool
	Errors      int
	Diagnostics []parser.Diagnostic
	Symbols     []string
}

type Option = parser.Option

// Check parses src with a fresh parser. The program is accepted only if
// the Program rule succeeds and no diagnostic was reported.
func Check(name string, src []byte, opts ...Option) Result {
	log.Debugf("checking %s (%d bytes)", name, len(src))

	p, ok := parser.ParseProgram(src, opts...)
	res := Result{
		Name:        name,
		OK:          ok && p.ErrorCount() == 0,
		Errors:      p.ErrorCount(),
		Diagnostics: p.Diagnostics(),
		Symbols:     p.Symbols().Names(),
	}

	if res.OK {
		log.Infof("%s: accepted, %d variables", name, len(res.Symbols))
	} else {
		log.Infof("%s: rejected with %d errors", name, res.Errors)
	}
	return res
}

// CheckFile reads and checks a single file.
func CheckFile(path string, opts ...Option) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{Name: path}, fmt.Errorf("read source: %w", err)
	}
	return Check(path, data, opts...), nil
}

// CheckFiles checks every file in paths. Directories are walked for
// files whose extension is listed in cfg.Check.Extensions. ctx is
// consulted between files.
func CheckFiles(ctx context.Context, paths []string, cfg Config, opts ...Option) ([]Result, error) {
	files, err := Expand(paths, cfg.Check.Extensions)
	if err != nil {
		return nil, err
	}

	var results []Result
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res, err := CheckFile(file, opts...)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// Expand resolves paths to the list of files to check, in order.
func Expand(paths []string, extensions []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if slices.Contains(extensions, strings.ToLower(filepath.Ext(p))) {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", path, err)
		}
	}
	return files, nil
}

// WriteReport prints the diagnostics of every result and, if requested,
// the summary lines.
func WriteReport(w io.Writer, results []Result, out OutputConfig) {
	for _, res := range results {
		if out.FileHeaders && len(results) > 1 {
			fmt.Fprintf(w, "%s:\n", res.Name)
		}
		for _, d := range res.Diagnostics {
			fmt.Fprintln(w, d.String())
		}
		if out.Summary {
			WriteSummary(w, res)
		}
	}
}

func WriteSummary(w io.Writer, res Result) {
	if res.OK {
		fmt.Fprintln(w, "Successful Parsing")
		return
	}
	fmt.Fprintln(w, "Unsuccessful Parsing")
	fmt.Fprintf(w, "Number of Syntax Errors: %d\n", res.Errors)
}

// Failed counts the rejected results.
func Failed(results []Result) int {
	n := 0
	for _, res := range results {
		if !res.OK {
			n++
		}
	}
	return n
}
