package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"modmap/internal/ast"
	"modmap/internal/diag"
	"modmap/internal/source"
)

// ParseDirResult is the outcome for one module map found under a
// directory. Err is set for I/O failures; parse failures live in Bag.
type ParseDirResult struct {
	Path    string
	FileSet *source.FileSet
	Decls   []ast.Decl
	Bag     *diag.Bag
	Err     error
}

// listModuleMaps returns every *.modulemap file under dir, sorted for a
// deterministic result order. This matches both module.modulemap and
// module.private.modulemap.
func listModuleMaps(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".modulemap") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// ParseDir parses every module map under dir concurrently. jobs <= 0
// means one worker per CPU. Each result owns its FileSet-free parse
// state; results are ordered by path.
func ParseDir(ctx context.Context, dir string, maxDiagnostics, jobs int) ([]ParseDirResult, error) {
	files, err := listModuleMaps(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Indexes are unique per goroutine, so no mutex around results.
	results := make([]ParseDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			res, err := Parse(path, maxDiagnostics)
			if err != nil {
				results[i] = ParseDirResult{Path: path, Err: err}
				return nil
			}
			results[i] = ParseDirResult{
				Path:    path,
				FileSet: res.FileSet,
				Decls:   res.Decls,
				Bag:     res.Bag,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
