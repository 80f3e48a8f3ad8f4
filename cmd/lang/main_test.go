package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"lang/internal/diagfmt"
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

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// run executes the CLI with an empty config so a lang.toml above the
// working directory cannot leak into the test.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cfg := writeFile(t, t.TempDir(), "lang.toml", "")
	var stdout, stderr bytes.Buffer
	full := append([]string{"--color", "off", "--config", cfg}, args...)
	err := execute(full, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestTokenizeCommand(t *testing.T) {
	path := writeFile(t, t.TempDir(), "fact.lang", factorialSrc)

	out, _, err := run(t, "tokenize", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "  1: KwFunc"), out)
	assert.Contains(t, out, `"factorial" at 1:6-1:15`)

	out, _, err = run(t, "tokenize", "--format", "json", path)
	require.NoError(t, err)
	var toks []diagfmt.TokenOutput
	require.NoError(t, json.Unmarshal([]byte(out), &toks))
	assert.Equal(t, "EOF", toks[len(toks)-1].Kind)

	out, _, err = run(t, "tokenize", "--format", "msgpack", path)
	require.NoError(t, err)
	var mp []diagfmt.TokenOutput
	require.NoError(t, msgpack.Unmarshal([]byte(out), &mp))
	assert.Len(t, mp, len(toks))

	_, _, err = run(t, "tokenize", "--format", "xml", path)
	assert.ErrorContains(t, err, "unknown format")
}

func TestTokenizeReportsLexErrors(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.lang", "let x = @;")
	out, errOut, err := run(t, "tokenize", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Invalid")
	assert.Contains(t, errOut, "LEX1001")
}

func TestParseCommand(t *testing.T) {
	path := writeFile(t, t.TempDir(), "fact.lang", factorialSrc)

	out, errOut, err := run(t, "parse", path)
	require.NoError(t, err)
	assert.Empty(t, errOut)
	assert.Contains(t, out, "Fn factorial(n: i32) -> i32")
	assert.Contains(t, out, "Let result: i32 = factorial(5)")

	out, _, err = run(t, "parse", "--format", "json", path)
	require.NoError(t, err)
	var root diagfmt.ASTNodeOutput
	require.NoError(t, json.Unmarshal([]byte(out), &root))
	assert.Len(t, root.Children, 2)
}

func TestDiagCommand(t *testing.T) {
	dir := t.TempDir()
	clean := writeFile(t, dir, "fact.lang", factorialSrc)
	bad := writeFile(t, dir, "bad.lang", "func main() -> i32 [\n    return flag;\n]\n")

	out, _, err := run(t, "diag", clean)
	require.NoError(t, err)
	assert.Empty(t, out)

	out, _, err = run(t, "diag", bad)
	require.ErrorIs(t, err, errDiagnosticsFound)
	assert.Contains(t, out, "bad.lang:2:12: ERROR SEM3005: undeclared variable 'flag'")

	out, _, err = run(t, "analyze", "--format", "short", bad)
	require.ErrorIs(t, err, errDiagnosticsFound)
	assert.Contains(t, out, "error SEM3005")

	out, _, err = run(t, "diag", "--format", "json", bad)
	require.ErrorIs(t, err, errDiagnosticsFound)
	var doc diagfmt.DiagnosticsOutput
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Equal(t, 1, doc.Count)
	assert.Equal(t, "SEM3005", doc.Diagnostics[0].Code)
	assert.Equal(t, uint32(2), doc.Diagnostics[0].Location.StartLine)
}

func TestDiagDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.lang", factorialSrc)
	writeFile(t, dir, "sub/b.lang", "func f() -> bool [ return 1; ]")
	writeFile(t, dir, "sub/c.lang", "func g() -> i32 [ return h(); ]")

	out, _, err := run(t, "diag", "--format", "short", "--jobs", "2", dir)
	require.ErrorIs(t, err, errDiagnosticsFound)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2, out)
	assert.Contains(t, lines[0], "SEM3010")
	assert.Contains(t, lines[0], "b.lang")
	assert.Contains(t, lines[1], "SEM3006")
	assert.Contains(t, lines[1], "c.lang")

	out, _, err = run(t, "diag", "--format", "msgpack", dir)
	require.ErrorIs(t, err, errDiagnosticsFound)
	var doc diagfmt.DiagnosticsOutput
	require.NoError(t, msgpack.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 2, doc.Count)
}

func TestPrintCommand(t *testing.T) {
	path := writeFile(t, t.TempDir(), "fact.lang", factorialSrc)

	out, _, err := run(t, "print", path)
	require.NoError(t, err)
	assert.Equal(t, factorialSrc, out)

	out, _, err = run(t, "print", "--numbered", path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 12)
	assert.Equal(t, " 1 | func factorial(n: i32) -> i32 [", lines[0])
	assert.Equal(t, "12 | ]", lines[11])
}

func TestVersionCommand(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "lang 0.1.0-dev"), out)

	out, _, err = run(t, "version", "--format", "json")
	require.NoError(t, err)
	var payload versionPayload
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, "lang", payload.Tool)
}

func TestConfigAndFlags(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "many.lang", "func main() -> i32 [ return a + b + c; ]")

	cfg := writeFile(t, dir, "lang.toml", "[diagnostics]\nmax = 1\n")
	var stdout, stderr bytes.Buffer
	err := execute([]string{"--color", "off", "--config", cfg, "diag", "--format", "short", path}, &stdout, &stderr)
	require.ErrorIs(t, err, errDiagnosticsFound)
	assert.Len(t, strings.Split(strings.TrimSpace(stdout.String()), "\n"), 1)

	stdout.Reset()
	err = execute([]string{"--color", "off", "--config", cfg, "--max-diagnostics", "0", "diag", "--format", "short", path}, &stdout, &stderr)
	require.ErrorIs(t, err, errDiagnosticsFound)
	assert.Len(t, strings.Split(strings.TrimSpace(stdout.String()), "\n"), 3)

	badCfg := writeFile(t, t.TempDir(), "lang.toml", "[diagnostics]\nbogus = 1\n")
	err = execute([]string{"--config", badCfg, "version"}, &stdout, &stderr)
	assert.ErrorContains(t, err, "unknown keys: diagnostics.bogus")

	_, _, err = run(t, "--color", "sometimes", "version")
	assert.ErrorContains(t, err, "invalid --color")
}

func TestTimingsAndTrace(t *testing.T) {
	path := writeFile(t, t.TempDir(), "fact.lang", factorialSrc)

	_, errOut, err := run(t, "--timings", "--trace", "-", "--trace-level", "phase", "diag", path)
	require.NoError(t, err)
	assert.Contains(t, errOut, "timings:")
	assert.Contains(t, errOut, "sema")
	assert.Contains(t, errOut, "parse")

	_, _, err = run(t, "--trace-level", "loud", "version")
	assert.ErrorContains(t, err, "invalid trace level")
}

func TestProfileFlags(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "fact.lang", factorialSrc)
	cpu := filepath.Join(dir, "cpu.out")
	mem := filepath.Join(dir, "mem.out")

	_, _, err := run(t, "--cpu-profile", cpu, "--mem-profile", mem, "parse", path)
	require.NoError(t, err)
	for _, p := range []string{cpu, mem} {
		info, statErr := os.Stat(p)
		require.NoError(t, statErr)
		assert.Positive(t, info.Size())
	}
}
