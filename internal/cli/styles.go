package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"subconv/internal/config"
	"subconv/internal/subtitle"
)

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "Manage the style catalog",
}

var stylesInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a sample style catalog to edit",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "styles.toml"
		if len(args) == 1 {
			path = args[0]
		}
		if err := config.WriteSample(path); err != nil {
			return err
		}
		fmt.Printf("Wrote sample style catalog to %s\n", path)
		return nil
	},
}

var stylesShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active style catalog as ASS style lines",
	RunE: func(cmd *cobra.Command, args []string) error {
		stylesPath, _ := cmd.Flags().GetString("styles")
		set, err := config.Load(stylesPath)
		if err != nil {
			return err
		}

		fmt.Println("Format: " + strings.Join(subtitle.StyleFormatColumns, ", "))
		for _, style := range set.Styles {
			fmt.Println(style.Line())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stylesCmd)
	stylesCmd.AddCommand(stylesInitCmd)
	stylesCmd.AddCommand(stylesShowCmd)
}
