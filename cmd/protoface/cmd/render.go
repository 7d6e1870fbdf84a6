package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/protoface/pkg/face/render"
)

var (
	renderScript string
	renderOutput string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Rasterize a face to PNG",
	Long: `Draw the face with the same renderer as the editor window and save
it as a PNG the size of the configured canvas.

Examples:
  protoface render --script smile.pf -o smile.png`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderScript, "script", "s", "", "edit script to replay before rendering")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "PNG output file (required)")
	_ = renderCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) (err error) {
	logger := loggerFromContext(cmd.Context())

	cfg, ctrl, err := newSession(logger, renderScript)
	if err != nil {
		return err
	}
	palette, err := cfg.RenderPalette()
	if err != nil {
		return err
	}

	size := cfg.Canvas.Size()
	canvas := render.NewRasterCanvas(size.X, size.Y)
	defer func() {
		err = errors.Join(err, canvas.Close())
	}()

	render.New(cfg.Canvas, palette).Render(canvas, ctrl.Model())
	if err := canvas.Err(); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	f, err := os.Create(renderOutput)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", renderOutput, err)
	}
	if err := canvas.EncodePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", renderOutput, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Info("rendered face", "file", renderOutput, "width", size.X, "height", size.Y)
	return nil
}
