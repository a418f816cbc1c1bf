package writers

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateWriter(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	tests := []struct {
		name       string
		output     string
		wantType   WriterType
		shouldFail bool
	}{
		{name: "empty string defaults to stdout", output: "", wantType: WriterTypeStdout},
		{name: "stdout", output: "stdout", wantType: WriterTypeStdout},
		{name: "dash", output: "-", wantType: WriterTypeStdout},
		{name: "stderr", output: "stderr", wantType: WriterTypeStderr},
		{name: "file path", output: filepath.Join(dir, "theme.css"), wantType: WriterTypeFile},
		{name: "file protocol", output: "file://" + filepath.Join(dir, "tokens.json"), wantType: WriterTypeFile},
		{name: "unsupported format", output: "redis://localhost:6379", shouldFail: true},
		{name: "empty file url", output: "file://", shouldFail: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			writer, err := CreateWriter(tt.output, Truncate)

			if tt.shouldFail {
				require.ErrorIs(t, err, ErrUnsupportedOutput)
				require.Nil(t, writer)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, writer)
			defer func() { assert.NoError(t, writer.Close()) }()

			switch tt.wantType {
			case WriterTypeStdout:
				assert.Equal(t, nopCloser{os.Stdout}, writer)
			case WriterTypeStderr:
				assert.Equal(t, nopCloser{os.Stderr}, writer)
			case WriterTypeFile:
				assert.IsType(t, &os.File{}, writer)
			}
		})
	}
}

func TestCreateWriterModes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.txt")

	write := func(mode Mode, content string) {
		w, err := CreateWriter(path, mode)
		require.NoError(t, err)
		_, err = io.WriteString(w, content)
		require.NoError(t, err)
		require.NoError(t, w.Close())
	}

	write(Truncate, "first\n")
	write(Append, "second\n")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))

	write(Truncate, "third\n")
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "third\n", string(data))
}

func TestCreateWriterDirectoryFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err := CreateWriter(filepath.Join(blocker, "sub", "out.css"), Truncate)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create directory")
}

func TestParseWriterType(t *testing.T) {
	assert.Equal(t, WriterTypeStdout, ParseWriterType(""))
	assert.Equal(t, WriterTypeStdout, ParseWriterType("-"))
	assert.Equal(t, WriterTypeStderr, ParseWriterType("stderr"))
	assert.Equal(t, WriterTypeFile, ParseWriterType("theme.css"))
}

func TestFilePath(t *testing.T) {
	assert.Equal(t, "/tmp/a.css", FilePath("file:///tmp/a.css"))
	assert.Equal(t, "a.css", FilePath("a.css"))
}
