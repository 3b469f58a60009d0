package cli

import (
	"subconv/internal/logging"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "subconv",
	Short: "Convert SRT subtitles to styled ASS documents",
	Long: `Subconv converts SubRip (.srt) subtitle files to Advanced SubStation
Alpha (.ass) documents carrying a configurable style catalog, and
rewrites the style section of existing .ass files while leaving their
events untouched.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
	rootCmd.PersistentFlags().
		StringP("styles", "s", "", "Path to a TOML style catalog (default: built-in catalog)")
}
