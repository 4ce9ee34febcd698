package keymap

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a binding file.
type Format string

// Supported binding file formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for binding files with an unsupported extension.
var ErrUnknownFormat = errors.New("unknown keymap file format")

// FormatFromPath selects the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// File is the document structure of a binding file:
//
//	[[bindings]]
//	modes = "n"
//	keys = "<C-s>"
//	action = "file.save"
type File struct {
	Bindings []Binding `toml:"bindings" yaml:"bindings"`
}

// LoadFile reads the bindings of a TOML or YAML file.
func LoadFile(path string) ([]Binding, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading keymap file %s: %w", path, err)
	}

	return parse(path, format, data)
}

// LoadReader reads bindings in the given format from r.
func LoadReader(r io.Reader, format Format) ([]Binding, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading keymap: %w", err)
	}
	return parse("<reader>", format, data)
}

func parse(source string, format Format, data []byte) ([]Binding, error) {
	var doc File

	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			perr := &ParseError{Path: source, Message: err.Error(), Err: err}
			var derr *toml.DecodeError
			if errors.As(err, &derr) {
				perr.Line, perr.Column = derr.Position()
			}
			return nil, perr
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, &ParseError{Path: source, Message: err.Error(), Err: err}
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	for i, b := range doc.Bindings {
		if _, err := b.Parse(); err != nil {
			return nil, &ParseError{
				Path:    source,
				Message: fmt.Sprintf("binding %d: %v", i+1, err),
				Err:     err,
			}
		}
	}

	return doc.Bindings, nil
}

// ParseError represents an error while reading a binding file.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Encode writes bindings as a binding file in the given format.
func Encode(w io.Writer, format Format, bindings []Binding) error {
	doc := File{Bindings: bindings}
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
}
