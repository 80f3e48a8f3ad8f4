package driver

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lang/internal/diag"
	"lang/internal/sema"
	"lang/internal/token"
	"lang/internal/trace"
)

const factorialSrc = `func factorial(n: i32) -> i32 [
    if n <= 1 [
        return 1;
    ]
    return n * factorial(n - 1);
]

func main() -> i32 [
    let result: i32 = factorial(5);
    print result;
    return 0;
]
`

func codes(bag *diag.Bag) []diag.Code {
	out := make([]diag.Code, 0, bag.Len())
	for _, d := range bag.Items() {
		out = append(out, d.Code)
	}
	return out
}

func TestAnalyzeFactorialIsClean(t *testing.T) {
	res := AnalyzeSource("fact.lang", factorialSrc)
	require.NotNil(t, res)
	assert.False(t, res.HasErrors())
	assert.Zero(t, res.Bag.Len(), diag.FormatShortDiagnostics(res.Bag.Items(), res.FileSet, true))
	assert.Len(t, res.Sema.Functions, 2)
	assert.Contains(t, res.Sema.Functions, "factorial")
}

func TestAnalyzeAggregatesAllStages(t *testing.T) {
	src := "func main() -> i32 [\n" +
		"  @\n" +
		"  let b: i32 = ;\n" +
		"  return flag;\n" +
		"]\n"
	res := AnalyzeSource("multi.lang", src)

	require.Len(t, res.LexErrors, 1)
	require.Len(t, res.ParseErrors, 1)
	require.Len(t, res.SemaErrors(), 1)
	assert.Equal(t, sema.UndeclaredVariable, res.SemaErrors()[0].Kind)

	assert.Equal(t, []diag.Code{
		diag.LexUnknownChar,
		diag.SynExpectExpression,
		diag.SemaUnresolvedSymbol,
	}, codes(res.Bag), "diagnostics must stay in pipeline order")
	assert.True(t, res.HasErrors())
}

func TestAnalyzeAggregatesAcrossFunctions(t *testing.T) {
	src := "func a() -> i32 [ @ return 1; ]\n" +
		"func b(n: i32) -> i32 [ return b(n, ); ]\n" +
		"func c() -> i32 [ return y; ]\n"
	res := AnalyzeSource("siblings.lang", src)

	require.Len(t, res.LexErrors, 1)
	require.Len(t, res.ParseErrors, 1)
	require.Len(t, res.SemaErrors(), 1)
	assert.Equal(t, []diag.Code{
		diag.LexUnknownChar,
		diag.SynExpectExpression,
		diag.SemaUnresolvedSymbol,
	}, codes(res.Bag), diag.FormatShortDiagnostics(res.Bag.Items(), res.FileSet, false))
	assert.Len(t, res.Sema.Functions, 3, "sibling functions survive recovery")
}

func TestAnalyzeMalformedLiteralReportsOnce(t *testing.T) {
	res := AnalyzeSource("lit.lang", "func main() -> i32 [ let b: bool = 99999999999; return 0; ]")
	assert.Equal(t, []diag.Code{diag.LexBadNumber}, codes(res.Bag),
		diag.FormatShortDiagnostics(res.Bag.Items(), res.FileSet, false))
}

func TestTokenizeAndParseSource(t *testing.T) {
	toks := TokenizeSource("t.lang", "print 1;")
	require.Len(t, toks.Tokens, 4)
	assert.Equal(t, token.EOF, toks.Tokens[3].Kind)
	assert.Empty(t, toks.Errors)

	parsed := ParseSource("p.lang", factorialSrc)
	require.Empty(t, parsed.ParseErrors)
	file := parsed.Builder.Files.Get(parsed.FileID)
	require.NotNil(t, file)
	assert.Len(t, file.Items, 2)
}

func TestPathEntryPoints(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fact.lang")
	require.NoError(t, os.WriteFile(path, []byte(factorialSrc), 0o600))

	ctx := context.Background()
	opts := Options{EnableTimings: true}

	toks, err := Tokenize(ctx, path, opts)
	require.NoError(t, err)
	assert.NotEmpty(t, toks.Tokens)
	require.NotNil(t, toks.Timing)
	assert.Len(t, toks.Timing.Phases, 1)

	parsed, err := Parse(ctx, path, opts)
	require.NoError(t, err)
	assert.Empty(t, parsed.ParseErrors)

	res, err := Analyze(ctx, path, opts)
	require.NoError(t, err)
	assert.False(t, res.HasErrors())
	require.NotNil(t, res.Timing)
	names := make([]string, 0, len(res.Timing.Phases))
	for _, p := range res.Timing.Phases {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"lex", "parse", "sema"}, names)

	_, err = Analyze(ctx, filepath.Join(dir, "missing.lang"), opts)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMaxDiagnosticsCapsBag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "many.lang")
	src := "func main() -> i32 [ return a + b + c + d; ]"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	res, err := Analyze(context.Background(), path, Options{MaxDiagnostics: 2})
	require.NoError(t, err)
	assert.Len(t, res.SemaErrors(), 4)
	assert.Equal(t, 2, res.Bag.Len())
	assert.Equal(t, 2, res.Bag.Dropped())
}

func TestAnalyzeTracesPasses(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fact.lang")
	require.NoError(t, os.WriteFile(path, []byte(factorialSrc), 0o600))

	ring := trace.NewRingTracer(256, trace.LevelPhase)
	ctx := trace.WithTracer(context.Background(), ring)
	_, err := Analyze(ctx, path, Options{})
	require.NoError(t, err)

	var ended []string
	for _, ev := range ring.Snapshot() {
		if ev.Kind == trace.KindSpanEnd && ev.Scope == trace.ScopePass {
			ended = append(ended, ev.Name)
		}
	}
	assert.Equal(t, []string{"lex", "parse", "sema"}, ended)
}

type recordingSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *recordingSink) OnEvent(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func TestDiagnoseDir(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"a.lang":          factorialSrc,
		"b.lang":          "func main() -> i32 [ return flag; ]",
		"nested/c.lang":   "func main() -> bool [ return 1; ]",
		"nested/skip.txt": "not a source file",
	}
	for name, content := range files {
		full := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o600))
	}

	sink := &recordingSink{}
	ring := trace.NewRingTracer(1024, trace.LevelDetail)
	ctx := trace.WithTracer(context.Background(), ring)

	for _, jobs := range []int{1, 4} {
		fs, results, err := DiagnoseDir(ctx, dir, DirOptions{Jobs: jobs, Progress: sink})
		require.NoError(t, err)
		require.NotNil(t, fs)
		require.Len(t, results, 3)

		assert.Equal(t, filepath.Join(dir, "a.lang"), results[0].Path)
		assert.Equal(t, filepath.Join(dir, "b.lang"), results[1].Path)
		assert.Equal(t, filepath.Join(dir, "nested", "c.lang"), results[2].Path)

		assert.Zero(t, results[0].Bag.Len())
		assert.Equal(t, []diag.Code{diag.SemaUnresolvedSymbol}, codes(results[1].Bag))
		assert.Equal(t, []diag.Code{diag.SemaTypeMismatch}, codes(results[2].Bag))
		for _, r := range results {
			require.NotNil(t, r.Analysis)
			assert.Same(t, fs, r.Analysis.FileSet)
		}
	}

	modules := 0
	for _, ev := range ring.Snapshot() {
		if ev.Kind == trace.KindSpanBegin && ev.Scope == trace.ScopeModule {
			modules++
		}
	}
	assert.Equal(t, 6, modules)

	sink.mu.Lock()
	defer sink.mu.Unlock()
	final := map[string]Status{}
	for _, ev := range sink.events {
		if ev.Status == StatusDone || ev.Status == StatusError {
			final[ev.File] = ev.Status
		}
	}
	assert.Equal(t, StatusDone, final[filepath.Join(dir, "a.lang")])
	assert.Equal(t, StatusError, final[filepath.Join(dir, "b.lang")])
}

func TestDiagnoseDirEmptyAndCancelled(t *testing.T) {
	dir := t.TempDir()
	fs, results, err := DiagnoseDir(context.Background(), dir, DirOptions{})
	require.NoError(t, err)
	assert.NotNil(t, fs)
	assert.Empty(t, results)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.lang"), []byte(factorialSrc), 0o600))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = DiagnoseDir(ctx, dir, DirOptions{Jobs: 1})
	assert.ErrorIs(t, err, context.Canceled)

	_, _, err = DiagnoseDir(context.Background(), filepath.Join(dir, "nope"), DirOptions{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
