package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/protoface/pkg/editor"
	"github.com/OpenTraceLab/protoface/pkg/face/export"
)

var (
	exportScript string
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a face without opening the editor",
	Long: `Build a face from an edit script and write it in one of the export
formats. Without --output the file is written to the configured export
filename (protogen_face_data.txt) in the working directory.

Examples:
  protoface export --script smile.pf
  protoface export --script smile.pf --format hex -o -
  protoface export --script smile.pf -o faces/smile.txt`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportScript, "script", "s", "", "edit script to replay before exporting")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "export format: json, sexp or hex (default from config)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file, or - for stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	logger := loggerFromContext(cmd.Context())

	var opts []editor.Option
	switch exportOutput {
	case "":
		opts = append(opts, editor.WithSaver(editor.FileSaver{}))
	case "-":
		opts = append(opts, editor.WithSaver(editor.WriterSaver{W: cmd.OutOrStdout()}))
	default:
		opts = append(opts,
			editor.WithSaver(editor.FileSaver{Dir: filepath.Dir(exportOutput)}),
			editor.WithFilename(filepath.Base(exportOutput)),
		)
	}

	cfg, ctrl, err := newSession(logger, exportScript, opts...)
	if err != nil {
		return err
	}

	format := exportFormat
	if format == "" {
		format = cfg.Export.Format
	}
	f, err := export.ParseFormat(format)
	if err != nil {
		return err
	}
	if err := ctrl.Export(f); err != nil {
		return err
	}
	if exportOutput != "-" {
		logger.Info("exported face", "file", ctrl.Filename(), "format", f, "lit", ctrl.Model().LitCount())
	}
	return nil
}
