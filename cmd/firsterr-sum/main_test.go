package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-quicktest/qt"
)

func writeFile(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "lines")
	qt.Assert(t, qt.IsNil(os.WriteFile(path, []byte(contents), 0o644)))
	return path
}

func TestSumFile(t *testing.T) {
	sum, err := sumFile(writeFile(t, "1\n2\n 3 \n"))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(sum, int64(6)))
}

func TestSumFileMalformedLine(t *testing.T) {
	_, err := sumFile(writeFile(t, "1\ntwo\n3\n"))
	qt.Assert(t, qt.IsNotNil(err))
	qt.Assert(t, qt.ErrorMatches(err, "line 2: .*"))
}
