package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cfswitch/internal/ports"
)

// TestFileSystem provides real file system operations sandboxed within a
// temporary directory. Paths starting with "~" are resolved against the
// sandbox instead of the real home directory, so tests exercise the same
// per-user paths production code uses without touching the caller's files.
// For unit tests that assert on individual calls, use MockFileSystem instead.
type TestFileSystem struct {
	baseDir string
}

// NewTestFileSystem creates a sandboxed file system within a temporary
// directory. The directory is automatically cleaned up when the test
// completes.
func NewTestFileSystem(t *testing.T) *TestFileSystem {
	t.Helper()
	return &TestFileSystem{baseDir: t.TempDir()}
}

// BaseDir returns the sandbox base directory path.
func (f *TestFileSystem) BaseDir() string {
	return f.baseDir
}

// resolvePath maps any path into the sandbox: "~" becomes the sandbox root,
// absolute paths are re-rooted under it.
func (f *TestFileSystem) resolvePath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return filepath.Join(f.baseDir, path[1:])
	}
	cleanPath := filepath.Clean(path)
	if filepath.IsAbs(cleanPath) {
		cleanPath = cleanPath[1:]
	}
	return filepath.Join(f.baseDir, cleanPath)
}

func (f *TestFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(f.resolvePath(path))
}

func (f *TestFileSystem) WriteFile(path string, content []byte, _ ports.AccessMode) error {
	resolved := f.resolvePath(path)
	if err := os.MkdirAll(filepath.Dir(resolved), 0700); err != nil {
		return err
	}
	return os.WriteFile(resolved, content, 0600)
}

func (f *TestFileSystem) EnsureDirExists(path string) error {
	return os.MkdirAll(filepath.Dir(f.resolvePath(path)), 0700)
}

func (f *TestFileSystem) FileExists(path string) (bool, error) {
	_, err := os.Stat(f.resolvePath(path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

var _ ports.FileSystem = (*TestFileSystem)(nil)
