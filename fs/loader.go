// Package fs provides file-based loading of knowledge-base entries.
package fs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/knowbase"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of an entry resource.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath returns the format implied by the file extension.
// Returns EINVALID for unsupported extensions.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", knowbase.Errorf(knowbase.EINVALID, "unsupported entry file %q: expected .json, .yaml or .yml", path)
	}
}

// DecodeEntries decodes a top-level list of entries and validates each one.
// Validation errors name the 1-based position of the offending entry.
func DecodeEntries(r io.Reader, format Format) ([]*knowbase.Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read entries: %w", err)
	}

	var entries []*knowbase.Entry
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&entries); err != nil {
			return nil, knowbase.Errorf(knowbase.EINVALID, "decode json entries: %s", err)
		}
		var extra json.RawMessage
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return nil, knowbase.Errorf(knowbase.EINVALID, "decode json entries: unexpected data after entry list")
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&entries); err != nil && !errors.Is(err, io.EOF) {
			return nil, knowbase.Errorf(knowbase.EINVALID, "decode yaml entries: %s", err)
		}
	default:
		return nil, knowbase.Errorf(knowbase.EINVALID, "unknown entry format %q", format)
	}

	for i, e := range entries {
		if e == nil {
			return nil, knowbase.Errorf(knowbase.EINVALID, "entry %d: empty entry", i+1)
		}
		if err := e.Validate(); err != nil {
			return nil, knowbase.Errorf(knowbase.EINVALID, "entry %d: %s", i+1, knowbase.ErrorMessage(err))
		}
	}

	return entries, nil
}

// LoadEntries reads entries from the file at path.
// The format is chosen by file extension.
func LoadEntries(path string) ([]*knowbase.Entry, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open entries: %w", err)
	}
	defer f.Close()

	return DecodeEntries(f, format)
}
