// Package document reads an HTML file into memory and writes it back.
//
// There is no locking and no write-to-temp-then-rename: a concurrent writer
// between Read and Write loses its changes, and a crash mid-write can leave
// a truncated file.
package document

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"
)

// ErrInvalidEncoding is returned when a file is not valid UTF-8.
var ErrInvalidEncoding = errors.New("invalid UTF-8")

// defaultPerm applies when the target does not exist yet.
const defaultPerm fs.FileMode = 0o644

// Read loads the whole file at path as UTF-8 text.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading file %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("reading file %s: %w", path, ErrInvalidEncoding)
	}
	return string(data), nil
}

// Write replaces the contents of path with content, truncating first.
// An existing file keeps its permission bits.
func Write(path, content string) error {
	perm := defaultPerm
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}
	return nil
}
