package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"lang/internal/diag"
	"lang/internal/source"
	"lang/internal/trace"
)

// SourceExt is the extension of files picked up by directory runs.
const SourceExt = ".lang"

// DirOptions tune DiagnoseDir.
type DirOptions struct {
	Options
	// Jobs caps parallel workers; 0 means GOMAXPROCS.
	Jobs     int
	Progress ProgressSink
}

// DiagnoseDirResult is the outcome for one file of a directory run.
// Analysis is nil when the file could not be loaded; Bag then holds the
// I/O diagnostic.
type DiagnoseDirResult struct {
	Path     string
	FileID   source.FileID
	Analysis *AnalyzeResult
	Bag      *diag.Bag
	Elapsed  time.Duration
}

// ListSourceFiles returns every *.lang file under dir, sorted.
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}

// DiagnoseDir analyses every *.lang file under dir in parallel. Results are
// returned in sorted path order whatever the scheduling was. Cancellation is
// checked between files only.
func DiagnoseDir(ctx context.Context, dir string, opts DirOptions) (*source.FileSet, []DiagnoseDirResult, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSet()
	fileSet.SetBaseDir(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	tracer := trace.FromContext(ctx)
	driverSpan := trace.Begin(tracer, trace.ScopeDriver, "diagnose_dir", 0).
		WithExtra("files", fmt.Sprint(len(files)))
	defer driverSpan.End("")

	// FileSet is not goroutine-safe: load everything up front, workers only read.
	fileIDs := make([]source.FileID, len(files))
	loadErrors := make([]error, len(files))
	for i, path := range files {
		fileIDs[i], loadErrors[i] = fileSet.Load(path)
		emit(opts.Progress, Event{File: path, Status: StatusQueued})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]DiagnoseDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = diagnoseOne(gctx, fileSet, path, fileIDs[i], loadErrors[i], opts, driverSpan.ID())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fileSet, nil, err
	}
	return fileSet, results, nil
}

func diagnoseOne(ctx context.Context, fileSet *source.FileSet, path string, fileID source.FileID, loadErr error, opts DirOptions, parent uint64) DiagnoseDirResult {
	started := time.Now()
	out := DiagnoseDirResult{Path: path, FileID: fileID}

	if loadErr != nil {
		out.Bag = diag.NewBag(opts.MaxDiagnostics)
		diag.ReportError(diag.BagReporter{Bag: out.Bag}, diag.IOLoadFileError, source.Span{},
			fmt.Sprintf("failed to load %s: %v", path, loadErr)).Emit()
		emit(opts.Progress, Event{File: path, Status: StatusError})
		return out
	}

	moduleSpan := trace.Begin(trace.FromContext(ctx), trace.ScopeModule, "module:"+path, parent)
	p, err := newPipeline(ctx, opts.Options, moduleSpan.ID())
	if err != nil {
		moduleSpan.End(err.Error())
		out.Bag = diag.NewBag(0)
		emit(opts.Progress, Event{File: path, Status: StatusError})
		return out
	}
	p.sink = opts.Progress
	p.display = path

	res := p.runAnalyze(fileSet, fileSet.Get(fileID))
	res.Timing = p.report()
	out.Analysis = res
	out.Bag = res.Bag
	out.Elapsed = time.Since(started)
	moduleSpan.End(fmt.Sprintf("diags=%d", res.Bag.Len()))

	status := StatusDone
	if res.Bag.HasErrors() {
		status = StatusError
	}
	emit(opts.Progress, Event{File: path, Status: status, Elapsed: out.Elapsed})
	return out
}
