package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/nonolath/cache"
	"github.com/katalvlaran/nonolath/disambiguate"
	"github.com/katalvlaran/nonolath/render"
)

var errNoGroundGrid = errors.New("nonolath: disambiguate requires a solved grid, not a clue-only input")

var disambiguateCmd = &cobra.Command{
	Use:   "disambiguate <input> [output]",
	Short: "Rank single-cell edits that most reduce ambiguity in the derived puzzle",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputPath := args[0]
		outputPath := ""
		if len(args) == 2 {
			outputPath = args[1]
		}

		pal, err := cfg.palette()
		if err != nil {
			return usageError(err)
		}

		loaded, err := loadPuzzleFile(inputPath, pal)
		if err != nil {
			return err
		}
		if loaded.Grid == nil {
			return usageError(errNoGroundGrid)
		}

		edits, overlay, err := disambiguate.Disambiguate(context.Background(), loaded.Grid, loaded.Palette, disambiguate.Options{
			Trianogram:      trianogramFlag,
			Cache:           cache.New(0),
			MaxCacheEntries: 0,
		})
		if err != nil {
			return unsolvableError(err)
		}
		log.Infow("disambiguate finished", "edits", len(edits), "tintedCells", len(overlay))

		out, err := openOutput(outputPath)
		if err != nil {
			return ioError(err)
		}
		defer out.Close()

		fmt.Fprintln(out, render.ANSI(loaded.Grid, loaded.Palette))
		for _, e := range edits {
			fmt.Fprintf(out, "%d,%d,%d,%d\n", e.Row, e.Col, e.Color, e.Resolved)
		}

		return nil
	},
}
