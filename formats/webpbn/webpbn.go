// Package webpbn implements a reduced .xml/.pbn reader/writer over
// encoding/xml: a clue-only format (colors plus row/column clue lists),
// the puzzle-definition shape rather than chargrid's solution shape.
// No ecosystem XML library appears anywhere in the retrieved example
// pack (see DESIGN.md); encoding/xml is the teacher corpus's own idiom
// for this concern.
package webpbn

import (
	"encoding/hex"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/nonolath/formats"
	"github.com/katalvlaran/nonolath/grid"
	"github.com/katalvlaran/nonolath/palette"
)

// ErrNoCluesAvailable indicates Emit was given a Puzzle with neither
// clue lists nor a Grid to derive them from.
var ErrNoCluesAvailable = errors.New("webpbn: no clues or grid to emit")

// ErrUnknownColorName indicates a <count color="..."> referenced a
// name with no matching <color name="...">.
var ErrUnknownColorName = errors.New("webpbn: unknown color name")

type xmlPuzzleSet struct {
	XMLName xml.Name  `xml:"puzzleset"`
	Puzzle  xmlPuzzle `xml:"puzzle"`
}

type xmlPuzzle struct {
	Colors []xmlColor `xml:"color"`
	Clues  []xmlClues `xml:"clues"`
}

type xmlColor struct {
	Name string `xml:"name,attr"`
	Char string `xml:"char,attr"`
	Hex  string `xml:",chardata"`
}

type xmlClues struct {
	Type  string    `xml:"type,attr"` // "rows" or "columns"
	Lines []xmlLine `xml:"line"`
}

type xmlLine struct {
	Counts []xmlCount `xml:"count"`
}

type xmlCount struct {
	Color string `xml:"color,attr"`
	Value int    `xml:",chardata"`
}

// Loader reads the reduced webpbn XML schema.
type Loader struct{}

// NewLoader returns a webpbn Loader.
func NewLoader() *Loader { return &Loader{} }

// Load decodes r into a Puzzle carrying a palette (background plus one
// entry per declared <color>) and row/column clue lists.
func (*Loader) Load(r io.Reader) (formats.Puzzle, error) {
	var doc xmlPuzzleSet
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return formats.Puzzle{}, fmt.Errorf("webpbn: %w", err)
	}

	colors := []palette.ColorInfo{{Glyph: '.'}}
	byName := map[string]palette.Color{}
	for _, c := range doc.Puzzle.Colors {
		var rgb [3]uint8
		if decoded, err := hex.DecodeString(c.Hex); err == nil && len(decoded) == 3 {
			copy(rgb[:], decoded)
		}
		glyph := rune('?')
		if len([]rune(c.Char)) > 0 {
			glyph = []rune(c.Char)[0]
		}
		byName[c.Name] = palette.Color(len(colors))
		colors = append(colors, palette.ColorInfo{Glyph: glyph, RGB: rgb})
	}

	pal, err := palette.NewPalette(colors)
	if err != nil {
		return formats.Puzzle{}, fmt.Errorf("webpbn: %w", err)
	}

	var rowClues, colClues []grid.LineClues
	for _, clues := range doc.Puzzle.Clues {
		lines, err := toLineClues(clues, byName)
		if err != nil {
			return formats.Puzzle{}, err
		}
		switch clues.Type {
		case "rows":
			rowClues = lines
		case "columns":
			colClues = lines
		}
	}

	return formats.Puzzle{Palette: pal, RowClues: rowClues, ColClues: colClues}, nil
}

func toLineClues(clues xmlClues, byName map[string]palette.Color) ([]grid.LineClues, error) {
	out := make([]grid.LineClues, len(clues.Lines))
	for i, line := range clues.Lines {
		cl := make(grid.LineClues, len(line.Counts))
		for j, count := range line.Counts {
			color, ok := byName[count.Color]
			if !ok {
				return nil, fmt.Errorf("webpbn: %q: %w", count.Color, ErrUnknownColorName)
			}
			cl[j] = grid.Clue{Color: color, Length: count.Value}
		}
		out[i] = cl
	}

	return out, nil
}

// Emitter writes a Puzzle as the reduced webpbn XML schema.
type Emitter struct{}

// NewEmitter returns a webpbn Emitter.
func NewEmitter() *Emitter { return &Emitter{} }

// Emit derives clue lists from p (directly, or via grid.DeriveClues
// when only a Grid was supplied) and writes them as XML.
func (*Emitter) Emit(w io.Writer, p formats.Puzzle) error {
	rowClues, colClues, ok := formats.CluesOrDerive(p)
	if !ok {
		return ErrNoCluesAvailable
	}

	doc := xmlPuzzleSet{Puzzle: xmlPuzzle{}}
	names := make([]string, p.Palette.Len())
	for i := 1; i < p.Palette.Len(); i++ {
		info := p.Palette[i]
		name := fmt.Sprintf("c%d", i)
		names[i] = name
		doc.Puzzle.Colors = append(doc.Puzzle.Colors, xmlColor{
			Name: name,
			Char: string(info.Glyph),
			Hex:  hex.EncodeToString(info.RGB[:]),
		})
	}

	doc.Puzzle.Clues = []xmlClues{
		{Type: "rows", Lines: toXMLLines(rowClues, names)},
		{Type: "columns", Lines: toXMLLines(colClues, names)},
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("webpbn: %w", err)
	}

	return nil
}

func toXMLLines(clues []grid.LineClues, names []string) []xmlLine {
	lines := make([]xmlLine, len(clues))
	for i, cl := range clues {
		counts := make([]xmlCount, len(cl))
		for j, c := range cl {
			counts[j] = xmlCount{Color: names[c.Color], Value: c.Length}
		}
		lines[i] = xmlLine{Counts: counts}
	}

	return lines
}
