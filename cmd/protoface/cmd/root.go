package cmd

import (
	"fmt"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/gogpu/gg"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "protoface",
	Short: "ProtoFace - LED face editor for protogen heads",
	Long: `ProtoFace edits the LED matrices of a protogen face: two eye panels,
one nose panel and four mouth panels, each an 8x8 grid.

Examples:
  protoface ui                                # Launch the editor window
  protoface export --script smile.pf -o -     # Export a scripted face as JSON
  protoface render --script smile.pf -o a.png # Rasterize the face to PNG
  protoface locate 50 50                      # Show which LED a pixel hits`,
	Version:      "0.9.0",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := charmlog.InfoLevel
		if verbose {
			level = charmlog.DebugLevel
		}
		logger := newLogger(os.Stderr, level)
		gg.SetLogger(slog.New(logger))
		cmd.SetContext(withLogger(cmd.Context(), logger))
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is the user config dir)")
}
