package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/nonolath/formats"
	"github.com/katalvlaran/nonolath/formats/chargrid"
	"github.com/katalvlaran/nonolath/formats/webpbn"
	"github.com/katalvlaran/nonolath/palette"
)

// formatName resolves an explicit --input-format/--output-format flag,
// falling back to the path's extension when the flag is empty.
func formatName(flag, path string) string {
	if flag != "" {
		return strings.ToLower(flag)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml", ".pbn":
		return "webpbn"
	default:
		return "chargrid"
	}
}

// newLoader returns the Loader for name, constructing chargrid's with
// pal since chargrid has no way to encode a palette of its own.
func newLoader(name string, pal palette.Palette) (formats.Loader, error) {
	switch name {
	case "chargrid":
		return chargrid.NewLoader(pal), nil
	case "webpbn":
		return webpbn.NewLoader(), nil
	default:
		return nil, fmt.Errorf("nonolath: unknown format %q", name)
	}
}

// newEmitter returns the Emitter for name.
func newEmitter(name string) (formats.Emitter, error) {
	switch name {
	case "chargrid":
		return chargrid.NewEmitter(), nil
	case "webpbn":
		return webpbn.NewEmitter(), nil
	default:
		return nil, fmt.Errorf("nonolath: unknown format %q", name)
	}
}
