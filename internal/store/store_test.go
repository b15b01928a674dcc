package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDirReadWrite(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	if err := s.Write("note.txt", []byte("abc")); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	data, err := s.Read("note.txt")
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if string(data) != "abc" {
		t.Errorf("Expected 'abc', got %q", data)
	}

	// Overwrite semantics.
	if err := s.Write("note.txt", []byte("z")); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	data, _ = s.Read("note.txt")
	if string(data) != "z" {
		t.Errorf("Expected overwritten content 'z', got %q", data)
	}

	onDisk, err := os.ReadFile(filepath.Join(dir, "note.txt"))
	if err != nil {
		t.Fatalf("Failed to read file from disk: %v", err)
	}
	if string(onDisk) != "z" {
		t.Errorf("Expected 'z' on disk, got %q", onDisk)
	}
}

func TestDirReadMissing(t *testing.T) {
	s := New(t.TempDir())
	if _, err := s.Read("missing.txt"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestDirReadDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatalf("Failed to create subdirectory: %v", err)
	}
	s := New(dir)
	if _, err := s.Read("sub"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for a directory, got %v", err)
	}
}

func TestDirInvalidNames(t *testing.T) {
	s := New(t.TempDir())
	for _, name := range []string{"", "..", "../escape.txt", "a/../../escape.txt", "/etc/passwd", "."} {
		if _, err := s.Read(name); !errors.Is(err, ErrInvalidName) {
			t.Errorf("Read(%q): expected ErrInvalidName, got %v", name, err)
		}
		if err := s.Write(name, []byte("x")); !errors.Is(err, ErrInvalidName) {
			t.Errorf("Write(%q): expected ErrInvalidName, got %v", name, err)
		}
	}
}

func TestDirWriteMissingParent(t *testing.T) {
	s := New(t.TempDir())
	err := s.Write("no/such/dir.txt", []byte("x"))
	if err == nil {
		t.Fatal("Expected error writing into a missing directory")
	}
}

func TestDisabled(t *testing.T) {
	s := New("")
	if _, ok := s.(Disabled); !ok {
		t.Fatalf("Expected Disabled store, got %T", s)
	}
	if _, err := s.Read("x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if err := s.Write("x", nil); !errors.Is(err, ErrDisabled) {
		t.Errorf("Expected ErrDisabled, got %v", err)
	}
}
