package document

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestRead(t *testing.T) {
	dir := t.TempDir()

	t.Run("reads utf8", func(t *testing.T) {
		path := filepath.Join(dir, "ok.html")
		if err := os.WriteFile(path, []byte("<p>grüß</p>"), 0o644); err != nil {
			t.Fatal(err)
		}
		got, err := Read(path)
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if got != "<p>grüß</p>" {
			t.Errorf("Read() = %q", got)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Read(filepath.Join(dir, "missing.html"))
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("expected fs.ErrNotExist, got %v", err)
		}
	})

	t.Run("invalid encoding", func(t *testing.T) {
		path := filepath.Join(dir, "latin1.html")
		if err := os.WriteFile(path, []byte{'<', 'p', '>', 0xff, 0xfe}, 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := Read(path)
		if !errors.Is(err, ErrInvalidEncoding) {
			t.Errorf("expected ErrInvalidEncoding, got %v", err)
		}
	})
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()

	t.Run("truncates existing content", func(t *testing.T) {
		path := filepath.Join(dir, "index.html")
		if err := os.WriteFile(path, []byte("a much longer original document"), 0o600); err != nil {
			t.Fatal(err)
		}
		if err := Write(path, "short"); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "short" {
			t.Errorf("file = %q, want %q", data, "short")
		}

		if runtime.GOOS != "windows" {
			info, err := os.Stat(path)
			if err != nil {
				t.Fatal(err)
			}
			if info.Mode().Perm() != 0o600 {
				t.Errorf("perm = %v, want 0600", info.Mode().Perm())
			}
		}
	})

	t.Run("creates new file", func(t *testing.T) {
		path := filepath.Join(dir, "new.html")
		if err := Write(path, "<p>"); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
		got, err := Read(path)
		if err != nil || got != "<p>" {
			t.Errorf("Read() = %q, %v", got, err)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		err := Write(filepath.Join(dir, "nope", "index.html"), "x")
		if err == nil {
			t.Error("expected error writing into a missing directory")
		}
	})
}
