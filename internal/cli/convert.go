package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"subconv/internal/config"
	"subconv/internal/subtitle"
)

var convertCmd = &cobra.Command{
	Use:   "convert [subtitle_file]",
	Short: "Convert an SRT file to ASS, or restyle an existing ASS file",
	Long: `Convert the given subtitle file.

Files with a .srt extension are converted to ASS documents using the
configured style catalog. Files with a .ass extension keep their events
byte-for-byte and only have their style section rewritten.

The output path defaults to the input path with a .ass extension.

Examples:
  subconv convert episode.srt
  subconv convert episode.srt -o styled.ass
  subconv convert episode.srt --styles my_styles.toml
  subconv convert movie.ass --in-place`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().
		Bool("in-place", false, "Allow overwriting the input file (restyling .ass files)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	stylesPath, _ := cmd.Flags().GetString("styles")
	set, err := config.Load(stylesPath)
	if err != nil {
		return err
	}

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		outputPath = subtitle.OutputFilename(inputPath)
	}

	// restyling foo.ass derives foo.ass, so the default output path is
	// the input itself
	inPlace, _ := cmd.Flags().GetBool("in-place")
	if samePath(inputPath, outputPath) && !inPlace {
		return fmt.Errorf("output %s would overwrite the input: pass --in-place or -o", outputPath)
	}

	result, err := subtitle.Convert(filepath.Base(inputPath), raw, set)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, result.Data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	if result.Dropped > 0 {
		logger.Debugw("Dropped malformed subtitle blocks",
			"input", inputPath,
			"count", result.Dropped,
		)
	}
	logger.Infow("Converted subtitle file",
		"input", inputPath,
		"output", outputPath,
		"format", string(result.Format),
	)
	return nil
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return absA == absB
}
