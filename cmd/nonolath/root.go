package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	inputFormatFlag  string
	outputFormatFlag string
	guiFlag          bool
	verboseFlag      bool

	cfg config
	log *zap.SugaredLogger
)

// errGUINotImplemented is returned for --gui: the GUI is a documented
// collaborator seam over the same core library, never built here.
var errGUINotImplemented = errors.New("nonolath: --gui is not implemented in this build")

var rootCmd = &cobra.Command{
	Use:   "nonolath",
	Short: "Solve, disambiguate, and convert nonogram-family puzzles",
	Long: `nonolath drives the line-solver, disambiguator, and clue deriver
over chargrid (.txt) and webpbn (.xml/.pbn) puzzle files.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if guiFlag {
			return usageError(errGUINotImplemented)
		}

		var zc zap.Config
		if verboseFlag {
			zc = zap.NewDevelopmentConfig()
		} else {
			zc = zap.NewProductionConfig()
			zc.DisableStacktrace = true
		}
		zc.DisableCaller = true

		zl, err := zc.Build()
		if err != nil {
			return err
		}
		log = zl.Sugar()

		loaded, err := loadConfig()
		if err != nil {
			return usageError(err)
		}
		cfg = loaded

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&inputFormatFlag, "input-format", "", "input format: chargrid or webpbn (default: by extension)")
	rootCmd.PersistentFlags().StringVar(&outputFormatFlag, "output-format", "", "output format: chargrid or webpbn (default: by extension)")
	rootCmd.PersistentFlags().BoolVar(&guiFlag, "gui", false, "launch the graphical editor (not implemented in this build)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug-level logging")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(disambiguateCmd)
	rootCmd.AddCommand(deriveCluesCmd)
}

// execute runs the command tree and returns the error RunE produced,
// letting main map it to a process exit code.
func execute() error {
	return rootCmd.Execute()
}
