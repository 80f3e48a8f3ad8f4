package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const maxSeedBytes = 64 << 10

var inlineSeeds = []string{
	"",
	"func main() -> i32 [ return 0; ]\n",
	"func f(a: i32, b: bool) -> bool [ if b [ return a < 1; ] else [ return !b; ] ]",
	"func f() -> i32 [ let x: i32 = 1 let y: i32 = 2; return x ]", // missing semicolons
	"func f() -> i32 [ [ [ [ ] ] ] ",                              // unterminated nesting
	"func f( -> i32 [ ]",                                          // broken header
	"func f() -> i32 [ return ((((1; ]",                           // unclosed groups
	"func f() -> i32 [ while true [ x = x + 1; ] ]",
	"@#$ func 12abc() -> [",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range inlineSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.lang файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error { //nolint:errcheck
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".lang" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
