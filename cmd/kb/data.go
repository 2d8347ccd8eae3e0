package main

import (
	"bytes"
	_ "embed"

	"github.com/fwojciec/knowbase"
	"github.com/fwojciec/knowbase/fs"
)

// sampleEntries is loaded when no entry file is given.
//
//go:embed entries.json
var sampleEntries []byte

// loadEntries reads entries from path, or the built-in sample when path is empty.
func loadEntries(path string) ([]*knowbase.Entry, error) {
	if path == "" {
		return fs.DecodeEntries(bytes.NewReader(sampleEntries), fs.FormatJSON)
	}
	return fs.LoadEntries(path)
}
