package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/OpenTraceLab/protoface/pkg/face"
)

func writeSExp(w io.Writer, m *face.Model) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("(face")
	for _, cat := range []face.Category{face.Eye, face.Nose, face.Mouth} {
		fmt.Fprintf(bw, "\n  (%s", cat)
		for i := 0; i < cat.Count(); i++ {
			p, err := m.Panel(face.PanelID{Category: cat, Index: i})
			if err != nil {
				return err
			}
			bw.WriteString("\n    (panel")
			for _, row := range p {
				bw.WriteString(" (row")
				for _, lit := range row {
					if lit {
						bw.WriteString(" 1")
					} else {
						bw.WriteString(" 0")
					}
				}
				bw.WriteString(")")
			}
			bw.WriteString(")")
		}
		bw.WriteString(")")
	}
	bw.WriteString(")\n")
	return bw.Flush()
}

// RowByte packs a panel row into a byte, column 0 in the high bit.
func RowByte(row [face.MatrixSize]bool) byte {
	var b byte
	for j, lit := range row {
		if lit {
			b |= 0x80 >> uint(j)
		}
	}
	return b
}

func writeHex(w io.Writer, m *face.Model) error {
	bw := bufio.NewWriter(w)
	for _, id := range face.Panels() {
		p, err := m.Panel(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(bw, "%s:", id)
		for _, row := range p {
			fmt.Fprintf(bw, " %02x", RowByte(row))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
