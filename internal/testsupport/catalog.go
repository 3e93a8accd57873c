package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteCatalog writes a catalog JSON document to path, creating parent
// directories as needed.
func WriteCatalog(t testing.TB, path, jsonDoc string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(jsonDoc), 0o644); err != nil {
		t.Fatalf("write catalog %s: %v", path, err)
	}
}

// WriteVideoFiles creates empty video files with the given names under
// dir and returns their paths in argument order.
func WriteVideoFiles(t testing.TB, dir string, names ...string) []string {
	t.Helper()

	paths := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir for %s: %v", path, err)
		}
		if err := os.WriteFile(path, []byte{0x42}, 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
		paths = append(paths, path)
	}
	return paths
}
