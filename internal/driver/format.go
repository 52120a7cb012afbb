package driver

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"fjson/internal/diag"
	"fjson/internal/format"
	"fjson/internal/lexer"
	"fjson/internal/parser"
	"fjson/internal/source"
)

// ErrSyntax marks files that failed to parse; the details live in the
// result's Bag.
var ErrSyntax = errors.New("syntax errors")

// FormatOptions configures file formatting.
type FormatOptions struct {
	Check          bool // report would-be changes, do not write
	Stdout         bool // return formatted bytes, do not write
	Jobs           int  // 0 means GOMAXPROCS
	MaxDiagnostics int
	MaxDepth       int
	Options        format.Options
}

// FormatResult captures the outcome for a single file.
type FormatResult struct {
	Path      string
	Changed   bool
	Err       error
	Formatted []byte
	Bag       *diag.Bag
	FileSet   *source.FileSet // for rendering Bag diagnostics
}

// FormatPaths formats the given files or directories (recursively
// collecting .json and .jsonc files). Files are processed in parallel but
// results come back in deterministic path order. When opts.Check or
// opts.Stdout is set, nothing is written to disk.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	files, err := collectSourceFiles(ctx, paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("format: no .json or .jsonc files found")
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// each goroutine owns its slot, no mutex needed
	results := make([]FormatResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = formatSingleFile(path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !opts.Check && !opts.Stdout {
		for i := range results {
			res := &results[i]
			if res.Err != nil || !res.Changed {
				continue
			}
			if err := writeFilePreservingMode(res.Path, res.Formatted); err != nil {
				res.Err = err
				res.Changed = false
			}
		}
	}
	return results, nil
}

func formatSingleFile(path string, opts FormatOptions) FormatResult {
	res := FormatResult{Path: path}

	fileSet := source.NewFileSet()
	res.FileSet = fileSet
	fileID, err := fileSet.Load(path)
	if err != nil {
		res.Err = err
		return res
	}
	file := fileSet.Get(fileID)

	maxDiag := opts.MaxDiagnostics
	if maxDiag <= 0 {
		maxDiag = 64
	}
	bag := diag.NewBag(maxDiag)
	res.Bag = bag

	rep := &diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: rep})
	parseRes := parser.ParseFile(lx, parser.Options{Reporter: rep, MaxDepth: opts.MaxDepth})
	if parseRes.Doc == nil {
		res.Err = ErrSyntax
		return res
	}

	formatted, err := format.Render(parseRes.Doc, opts.Options)
	if err != nil {
		res.Err = err
		return res
	}
	res.Formatted = formatted

	// normalization (BOM, CRLF) counts as a change even when the layout
	// already matches
	res.Changed = !bytes.Equal(formatted, file.Content) ||
		file.Flags&(source.FileHadBOM|source.FileNormalizedCRLF) != 0
	return res
}

func writeFilePreservingMode(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	return os.WriteFile(path, data, mode.Perm())
}

// collectSourceFiles expands files and directories into a deduplicated,
// sorted list of formattable files. Explicitly named files are accepted
// regardless of extension; directory walks pick up .json and .jsonc only.
func collectSourceFiles(ctx context.Context, paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			addFile(p)
			continue
		}
		walkErr := filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if cerr := ctx.Err(); cerr != nil {
				return cerr
			}
			if !d.IsDir() && hasFormattableExt(path) {
				addFile(path)
			}
			return nil
		})
		if walkErr != nil {
			return nil, walkErr
		}
	}

	sort.Strings(files)
	return files, nil
}

func hasFormattableExt(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".json" || ext == ".jsonc"
}
