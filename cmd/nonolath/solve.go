package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/nonolath/cache"
	"github.com/katalvlaran/nonolath/formats"
	"github.com/katalvlaran/nonolath/progress"
	"github.com/katalvlaran/nonolath/solver"
)

var trianogramFlag bool

var solveCmd = &cobra.Command{
	Use:   "solve <input> [output]",
	Short: "Run the line solver to quiescence and write the resulting grid",
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

		puzzle, err := buildPuzzle(loaded, trianogramFlag)
		if err != nil {
			return usageError(err)
		}

		var sink solver.ProgressSink = progress.NullSink{}
		if verboseFlag {
			sp := progress.NewSpinnerSink()
			defer sp.Stop()
			sink = sp
		}

		snapshot, counters, status := solver.Solve(context.Background(), puzzle, solver.Options{
			Cache:    cache.New(0),
			Progress: sink,
		})
		log.Infow("solve finished", "status", status.String(),
			"skims", counters.Skims, "scrubs", counters.Scrubs,
			"cacheHits", counters.CacheHits, "cacheMisses", counters.CacheMisses)

		switch status {
		case solver.Ambiguous, solver.Contradiction, solver.Cancelled:
			return unsolvableError(errStatus(status))
		}

		out, err := openOutput(outputPath)
		if err != nil {
			return ioError(err)
		}
		defer out.Close()

		emitter, err := newEmitter(formatName(outputFormatFlag, outputPath))
		if err != nil {
			return usageError(err)
		}

		if err := emitter.Emit(out, formats.Puzzle{Palette: pal, Grid: snapshot.Grid()}); err != nil {
			return ioError(err)
		}

		return nil
	},
}

func init() {
	solveCmd.Flags().BoolVar(&trianogramFlag, "trianogram", false, "relax single-color adjacent clues via cap rules")
}
