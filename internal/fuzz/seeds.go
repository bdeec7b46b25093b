package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB cap for the test corpus
)

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	addBuiltinSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".smt2" {
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
	if err != nil {
		return
	}
}

func addBuiltinSeeds(f *testing.F) {
	seeds := []string{
		"",
		"(set-logic QF_S)\n(check-sat)\n",
		`(declare-fun x () String)` + "\n" + `(assert (= (str.len x) 3))` + "\n",
		`(assert (str.in.re x (re.range "a" "f")))` + "\n",
		`(assert (RegexIn x (Str2Reg "ab")))` + "\n",
		`(assert (= x "a""b"))` + "\n",
		`(assert (= x "a\"b"))` + "\n",
		"(assert (= x |quoted symbol|))\n",
		"(assert ((_ extract 7 0) bv))\n",
		"(assert ( ; comment inside\n true))\n",
		"((((((((",
		"))))",
		`(assert "unterminated`,
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
