package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var locateCmd = &cobra.Command{
	Use:   "locate X Y",
	Short: "Show which LED a canvas pixel addresses",
	Long: `Run the editor's hit test for a canvas pixel and print the panel,
row and column it lands on, or "none" for the gaps between panels.

Examples:
  protoface locate 50 50      # eye[0] row=0 col=0
  protoface locate 400 10     # none`,
	Args: cobra.ExactArgs(2),
	RunE: runLocate,
}

func init() {
	rootCmd.AddCommand(locateCmd)
}

func runLocate(cmd *cobra.Command, args []string) error {
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid X %q: %w", args[0], err)
	}
	y, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid Y %q: %w", args[1], err)
	}

	cfg, err := loadConfig(loggerFromContext(cmd.Context()))
	if err != nil {
		return err
	}
	hit, ok := cfg.Canvas.HitTest(x, y)
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "none")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), hit)
	return nil
}
