package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pbaille/tidybrain/internal/domain"
)

// File appends formatted entries to a text file
type File struct {
	path string
}

// NewFile creates a sink for path. Nothing touches the disk until the first write.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the file the sink appends to
func (f *File) Path() string {
	return f.path
}

// Write appends one line, creating parent directories and the file as needed
func (f *File) Write(e domain.Entry) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}

	fh, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}

	if _, err := fh.WriteString(domain.FormatLine(e)); err != nil {
		fh.Close()
		return fmt.Errorf("append log: %w", err)
	}
	return fh.Close()
}

func (f *File) String() string {
	return f.path
}
