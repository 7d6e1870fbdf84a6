package cmd

import (
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/protoface/internal/ui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the face editor window",
	Long: `Open the editor window. Click an LED to toggle it, drag with the
primary button held to light every LED under the pointer. Clear turns
every LED off; Export saves protogen_face_data.txt.

Shortcuts:
  Ctrl+S          export
  Ctrl+Backspace  clear

Examples:
  protoface ui
  protoface ui -v --config ./face.toml`,
	Args: cobra.NoArgs,
	RunE: runUI,
}

func init() {
	rootCmd.AddCommand(uiCmd)
}

func runUI(cmd *cobra.Command, args []string) error {
	logger := loggerFromContext(cmd.Context())
	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	state := ui.NewState()
	state.AppendLog("UI starting...")
	logger.Debug("launching editor", "width", cfg.Canvas.Width, "height", cfg.Canvas.Height)

	return ui.Run(ui.Options{
		Config: cfg,
		Logger: logger,
		State:  state,
	})
}
