package main

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/nonolath/palette"
)

// errHexColor indicates a config palette entry's hex field did not
// decode to exactly three bytes.
var errHexColor = errors.New("nonolath: palette hex must be 6 hex digits")

// paletteEntry is one [[palette]] table in ~/.nonolathrc.toml: a
// display glyph and an "RRGGBB" hex triple.
type paletteEntry struct {
	Glyph string `toml:"glyph"`
	Hex   string `toml:"hex"`
}

// config is the shape of ~/.nonolathrc.toml. An absent or empty file
// falls back to defaultPalette.
type config struct {
	Palette []paletteEntry `toml:"palette"`
}

// defaultPalette is used when no config file is present or it declares
// no palette: background plus a single foreground color, enough for
// chargrid's "#"/"." convention.
func defaultPalette() palette.Palette {
	return palette.Palette{
		{Glyph: '.'},
		{Glyph: '#', RGB: [3]uint8{0, 0, 0}},
	}
}

// loadConfig reads ~/.nonolathrc.toml if present. A missing file is not
// an error; a malformed one is.
func loadConfig() (config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return config{}, nil
	}

	path := filepath.Join(home, ".nonolathrc.toml")
	if _, err := os.Stat(path); err != nil {
		return config{}, nil
	}

	var c config
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return config{}, err
	}

	return c, nil
}

// palette converts the config's declared palette entries into a
// palette.Palette, falling back to defaultPalette when none were
// declared.
func (c config) palette() (palette.Palette, error) {
	if len(c.Palette) == 0 {
		return defaultPalette(), nil
	}

	colors := make([]palette.ColorInfo, len(c.Palette))
	for i, e := range c.Palette {
		glyph := '?'
		if len([]rune(e.Glyph)) > 0 {
			glyph = []rune(e.Glyph)[0]
		}
		var rgb [3]uint8
		if decoded, err := hexRGB(e.Hex); err == nil {
			rgb = decoded
		}
		colors[i] = palette.ColorInfo{Glyph: glyph, RGB: rgb}
	}

	return palette.NewPalette(colors)
}

func hexRGB(s string) ([3]uint8, error) {
	var rgb [3]uint8
	decoded, err := hex.DecodeString(s)
	if err != nil || len(decoded) != 3 {
		return rgb, errHexColor
	}
	copy(rgb[:], decoded)

	return rgb, nil
}
