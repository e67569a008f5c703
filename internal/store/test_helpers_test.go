package store

import (
	"path/filepath"
	"testing"
)

// createTestStore creates a new store in a temporary directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestRun creates a run with minimal required fields.
func createTestRun(output string, messages ...RunMessage) Run {
	return Run{
		SchemaPath:       "schema.msg",
		SchemaHash:       "schema-hash",
		OutputPath:       output,
		OutputHash:       "output-hash",
		Package:          "messages",
		GeneratorVersion: "0.1.0",
		Messages:         messages,
	}
}
