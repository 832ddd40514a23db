package main

import (
	"github.com/spf13/cobra"
)

var deriveCluesCmd = &cobra.Command{
	Use:   "derive-clues <input> [output]",
	Short: "Convert a puzzle between formats, deriving clues from a grid when needed",
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

		out, err := openOutput(outputPath)
		if err != nil {
			return ioError(err)
		}
		defer out.Close()

		emitter, err := newEmitter(formatName(outputFormatFlag, outputPath))
		if err != nil {
			return usageError(err)
		}

		if err := emitter.Emit(out, loaded); err != nil {
			return ioError(err)
		}
		log.Infow("derive-clues finished", "input", inputPath, "output", outputPath)

		return nil
	},
}
