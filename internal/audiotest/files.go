// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/wakeaug/audio"
	"github.com/ik5/wakeaug/formats/wav"
)

// WriteWAV encodes buf to dir/name, creating dir if needed, and returns the
// file path.
func WriteWAV(tb testing.TB, dir, name string, buf *audio.Buffer) string {
	tb.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		tb.Fatalf("MkdirAll(%s) error = %v", dir, err)
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		tb.Fatalf("Create(%s) error = %v", path, err)
	}
	defer f.Close()

	if err := wav.Encode(f, buf); err != nil {
		tb.Fatalf("Encode(%s) error = %v", path, err)
	}

	return path
}

// WriteFile writes raw bytes to dir/name, for corrupt or non-audio fixtures.
func WriteFile(tb testing.TB, dir, name string, data []byte) string {
	tb.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		tb.Fatalf("MkdirAll(%s) error = %v", dir, err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		tb.Fatalf("WriteFile(%s) error = %v", path, err)
	}

	return path
}

// ListDir returns the names of the regular files in dir.
func ListDir(tb testing.TB, dir string) []string {
	tb.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		tb.Fatalf("ReadDir(%s) error = %v", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}

	return names
}
