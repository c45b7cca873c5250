// Package testutils provides shared fixtures and helpers for argvparse tests.
package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDataGenerator provides common test data
type TestDataGenerator struct{}

// NewTestDataGenerator creates a new test data generator
func NewTestDataGenerator() *TestDataGenerator {
	return &TestDataGenerator{}
}

// ArgVectorCase is a full argument vector with its expected classification.
type ArgVectorCase struct {
	Name  string
	Argv  []string
	Flags []string
	Args  []string
}

// ArgVectors returns full argument vectors, including the program and script
// path entries, with the flags and args they classify into.
func (g *TestDataGenerator) ArgVectors() []ArgVectorCase {
	return []ArgVectorCase{
		{
			Name:  "flags and args interleaved",
			Argv:  []string{"node", "index.js", "-i", "-s=6", "hello", "-b", "world"},
			Flags: []string{"-i", "-s=6", "-b"},
			Args:  []string{"hello", "world"},
		},
		{
			Name:  "leading entries only",
			Argv:  []string{"node", "index.js"},
			Flags: []string{},
			Args:  []string{},
		},
		{
			Name:  "args only",
			Argv:  []string{"node", "index.js", "a", "b", "c"},
			Flags: []string{},
			Args:  []string{"a", "b", "c"},
		},
		{
			Name:  "flags only",
			Argv:  []string{"node", "index.js", "-a", "-b", "-c"},
			Flags: []string{"-a", "-b", "-c"},
			Args:  []string{},
		},
		{
			Name:  "edge tokens",
			Argv:  []string{"node", "index.js", "-", "", "--", "x", "-y=1=2"},
			Flags: []string{"-", "--", "-y=1=2"},
			Args:  []string{"", "x"},
		},
		{
			Name:  "structured value",
			Argv:  []string{"node", "index.js", `-j={"username":"alan","password":"world"}`, "run"},
			Flags: []string{`-j={"username":"alan","password":"world"}`},
			Args:  []string{"run"},
		},
	}
}

// ClearEnv blanks the named environment variables for the duration of the
// test. Viper treats empty variables as unset.
func ClearEnv(t *testing.T, names ...string) {
	t.Helper()
	for _, name := range names {
		t.Setenv(name, "")
	}
}

// FileHelpers provides utilities for working with test files
type FileHelpers struct{}

// NewFileHelpers creates a new file helpers instance
func NewFileHelpers() *FileHelpers {
	return &FileHelpers{}
}

// CreateTempFile creates a temporary file with given content
func (f *FileHelpers) CreateTempFile(t *testing.T, filename, content string) string {
	t.Helper()
	filePath := filepath.Join(t.TempDir(), filename)

	err := os.WriteFile(filePath, []byte(content), 0600)
	require.NoError(t, err, "Should create temp file successfully")

	return filePath
}

// CreateTempDir creates a temporary directory holding the given files
func (f *FileHelpers) CreateTempDir(t *testing.T, files map[string]string) string {
	t.Helper()
	tmpDir := t.TempDir()

	for filename, content := range files {
		filePath := filepath.Join(tmpDir, filename)

		if dir := filepath.Dir(filePath); dir != tmpDir {
			require.NoError(t, os.MkdirAll(dir, 0755), "Should create directory %s", dir)
		}

		require.NoError(t, os.WriteFile(filePath, []byte(content), 0600), "Should create file %s", filename)
	}

	return tmpDir
}
