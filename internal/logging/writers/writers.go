// Package writers resolves output destinations given on the command line.
package writers

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// WriterType represents the kind of destination an output string names.
type WriterType string

const (
	WriterTypeStdout WriterType = "stdout"
	WriterTypeStderr WriterType = "stderr"
	WriterTypeFile   WriterType = "file"
)

// Mode controls what happens to an existing file.
type Mode int

const (
	// Truncate replaces the file contents. Generated artifacts use it.
	Truncate Mode = iota
	// Append adds to the end of the file. Log files use it.
	Append
)

var ErrUnsupportedOutput = errors.New("unsupported output format")

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// NopCloser wraps w with a Close that does nothing.
func NopCloser(w io.Writer) io.WriteCloser {
	return nopCloser{w}
}

// CreateWriter opens the destination named by output.
// Supported formats:
//   - "stdout", "-" or "" - writes to os.Stdout
//   - "stderr" - writes to os.Stderr
//   - "file:///path/to/file" - writes to file (creates directories if needed)
//   - any other string without a scheme - treated as a file path
//
// Closing the result is a no-op for the standard streams.
func CreateWriter(output string, mode Mode) (io.WriteCloser, error) {
	switch ParseWriterType(output) {
	case WriterTypeStdout:
		return NopCloser(os.Stdout), nil
	case WriterTypeStderr:
		return NopCloser(os.Stderr), nil
	}

	if !isFilePath(output) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedOutput, output)
	}
	return createFileWriter(FilePath(output), mode)
}

// FilePath strips a file:// prefix from output.
func FilePath(output string) string {
	return strings.TrimPrefix(output, "file://")
}

// isFilePath rejects URLs with schemes other than file://.
func isFilePath(path string) bool {
	if strings.HasPrefix(path, "file://") {
		return len(path) > len("file://")
	}
	return !strings.Contains(path, "://")
}

func createFileWriter(filePath string, mode Mode) (*os.File, error) {
	dir := filepath.Dir(filePath)
	if dir != "." && dir != "/" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if mode == Append {
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}

	file, err := os.OpenFile(filePath, flags, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	return file, nil
}

// ParseWriterType determines the writer type from an output string.
func ParseWriterType(output string) WriterType {
	switch output {
	case "", "-", "stdout":
		return WriterTypeStdout
	case "stderr":
		return WriterTypeStderr
	default:
		return WriterTypeFile
	}
}
