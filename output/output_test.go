package output

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "generated_tests.py")
	text := "import pytest\n\ndef test_x():\n    assert True"

	if err := Save(path, text); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read saved file: %v", err)
	}
	if string(data) != text {
		t.Errorf("Expected file contents %q, got %q", text, string(data))
	}
}

func TestSave_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "generated_tests.py")
	if err := os.WriteFile(path, []byte("a much longer previous run output"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	if err := Save(path, "short"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "short" {
		t.Errorf("Expected file to be overwritten in full, got %q", string(data))
	}
}

func TestSave_CreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tests", "unit", "test_calc.py")

	if err := Save(path, "x"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected file to exist, got %v", err)
	}
}

func TestSave_Failure(t *testing.T) {
	// The target is a directory, so it cannot be opened for writing.
	dir := t.TempDir()

	if err := Save(dir, "x"); err == nil {
		t.Error("Expected an error when writing to a directory")
	}
}
