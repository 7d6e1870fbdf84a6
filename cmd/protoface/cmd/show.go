package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/protoface/pkg/face"
)

const (
	glyphLit   = "●"
	glyphUnlit = "·"
)

var (
	colorRed  = lipgloss.Color("196")
	colorDim  = lipgloss.Color("52")
	colorGray = lipgloss.Color("245")

	styleLit   = lipgloss.NewStyle().Foreground(colorRed)
	styleUnlit = lipgloss.NewStyle().Foreground(colorDim)
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorGray)
	stylePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray).
			Padding(0, 1)
)

var showScript string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a terminal preview of a face",
	Long: `Replay an edit script and print every panel as a grid of LEDs,
eyes and nose on the first row, mouth on the second.

Examples:
  protoface show --script smile.pf`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVarP(&showScript, "script", "s", "", "edit script to replay before previewing")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	logger := loggerFromContext(cmd.Context())
	_, ctrl, err := newSession(logger, showScript)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderPreview(ctrl.Model()))
	return nil
}

// renderPreview lays the panels out roughly where they sit on the canvas.
func renderPreview(m *face.Model) string {
	var top, bottom []string
	for _, id := range face.Panels() {
		box := renderPanel(m, id)
		if id.Category == face.Mouth {
			bottom = append(bottom, box)
		} else {
			top = append(top, box)
		}
	}
	summary := fmt.Sprintf("%d/%d lit", m.LitCount(), face.PanelCount*face.MatrixSize*face.MatrixSize)
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, top...),
		lipgloss.JoinHorizontal(lipgloss.Top, bottom...),
		styleTitle.Render(summary),
	)
}

func renderPanel(m *face.Model, id face.PanelID) string {
	grid, err := m.Panel(id)
	if err != nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(styleTitle.Render(fmt.Sprintf("%s %d", id, m.PanelLitCount(id))))
	for _, row := range grid {
		b.WriteByte('\n')
		for col, lit := range row {
			if col > 0 {
				b.WriteByte(' ')
			}
			if lit {
				b.WriteString(styleLit.Render(glyphLit))
			} else {
				b.WriteString(styleUnlit.Render(glyphUnlit))
			}
		}
	}
	return stylePanel.Render(b.String())
}
