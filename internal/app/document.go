package app

import (
	"path/filepath"

	"github.com/dshills/chord/internal/engine/buffer"
)

// Document is the edited buffer and the file it is associated with.
type Document struct {
	// Path is the associated file (empty for scratch buffers).
	Path string

	// Buffer holds the lines.
	Buffer *buffer.Buffer

	modified bool
}

// NewScratchDocument creates an empty document with no file.
func NewScratchDocument() *Document {
	return &Document{Buffer: buffer.New()}
}

// OpenDocument loads path. A missing file yields an empty document that
// is still associated with path.
func OpenDocument(path string) (*Document, error) {
	b, err := buffer.Load(path)
	if err != nil {
		return nil, err
	}
	return &Document{Path: path, Buffer: b}, nil
}

// Name returns the display name.
func (d *Document) Name() string {
	if d.Path == "" {
		return "[No Name]"
	}
	return filepath.Base(d.Path)
}

// IsScratch returns true if this is a scratch buffer (no file path).
func (d *Document) IsScratch() bool {
	return d.Path == ""
}

// IsModified returns true if the document has unsaved changes.
func (d *Document) IsModified() bool {
	return d.modified
}

// SetModified sets the modified flag.
func (d *Document) SetModified(modified bool) {
	d.modified = modified
}

// SaveAs writes the buffer to path, or to the associated file when path
// is empty. A successful save associates the document with the path.
func (d *Document) SaveAs(path string) error {
	if path == "" {
		path = d.Path
	}
	if path == "" {
		return ErrNoFilename
	}
	if err := d.Buffer.Save(path); err != nil {
		return err
	}
	d.Path = path
	d.modified = false
	return nil
}
