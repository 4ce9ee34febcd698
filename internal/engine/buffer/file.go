package buffer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// FileError records a failed load or save.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Read builds a buffer from r, one line per "\n"-terminated record.
// A trailing "\r" on each line is dropped, and a final newline does not
// produce an extra empty line.
func Read(r io.Reader) (*Buffer, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return FromLines(lines), nil
}

// Load reads path into a new buffer. A missing file yields an empty
// buffer and no error.
func Load(path string) (*Buffer, error) {
	f, err := os.Open(path) //nolint:gosec // user-chosen document path
	if errors.Is(err, fs.ErrNotExist) {
		return New(), nil
	}
	if err != nil {
		return nil, &FileError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	b, err := Read(f)
	if err != nil {
		return nil, &FileError{Op: "read", Path: path, Err: err}
	}
	return b, nil
}

// WriteTo writes the lines joined with "\n". No trailing newline is added.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, b.Text())
	return int64(n), err
}

// Save writes the buffer to path, replacing its contents.
func (b *Buffer) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // user-chosen document path
	if err != nil {
		return &FileError{Op: "create", Path: path, Err: err}
	}
	if _, err := b.WriteTo(f); err != nil {
		_ = f.Close()
		return &FileError{Op: "write", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &FileError{Op: "close", Path: path, Err: err}
	}
	return nil
}

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}
