// Package document reads and writes content documents: JSON objects mapping
// field keys to stored string values.
// Keys this module does not know, and values that are not strings, are kept
// as they were read.
package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// Document is one content document. The zero value is not usable; use New or
// one of the parse functions.
type Document struct {
	values map[string]json.RawMessage
}

// New returns an empty document.
func New() *Document {
	return &Document{values: make(map[string]json.RawMessage)}
}

// Parse parses a JSON object. A top-level null yields an empty document.
func Parse(content []byte) (*Document, error) {
	d := New()
	if len(bytes.TrimSpace(content)) == 0 {
		return d, nil
	}
	if err := json.Unmarshal(content, &d.values); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	if d.values == nil {
		d.values = make(map[string]json.RawMessage)
	}
	return d, nil
}

// ParseFile reads and parses a document file.
func ParseFile(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}
	return Parse(content)
}

// ParseFromFS reads and parses a document from a filesystem.
func ParseFromFS(fsys fs.FS, path string) (*Document, error) {
	content, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document from FS %s: %w", path, err)
	}
	return Parse(content)
}

// ParseReader parses a document from an io.Reader.
func ParseReader(r io.Reader) (*Document, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return Parse(content)
}

// Get returns the string stored under key. ok is false when the key is
// absent, null, or not a string.
func (d *Document) Get(key string) (string, bool) {
	raw, ok := d.values[key]
	if !ok {
		return "", false
	}
	var s *string
	if err := json.Unmarshal(raw, &s); err != nil || s == nil {
		return "", false
	}
	return *s, true
}

// Set stores a string value under key.
func (d *Document) Set(key, value string) {
	raw, err := json.Marshal(value)
	if err != nil {
		// Marshaling a string cannot fail.
		panic(err)
	}
	d.values[key] = raw
}

// Keys returns every key in sorted order.
func (d *Document) Keys() []string {
	keys := make([]string, 0, len(d.values))
	for k := range d.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Marshal encodes the document as indented JSON with sorted keys.
func (d *Document) Marshal() ([]byte, error) {
	out, err := json.MarshalIndent(d.values, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return append(out, '\n'), nil
}

// WriteFile writes the document to path through a temporary file in the same
// directory, so readers never see a partial document.
func (d *Document) WriteFile(path string) error {
	content, err := d.Marshal()
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file for %s: %w", path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if info, err := os.Stat(path); err == nil {
		if err := os.Chmod(tmpName, info.Mode().Perm()); err != nil {
			return fmt.Errorf("failed to set mode on %s: %w", tmpName, err)
		}
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
