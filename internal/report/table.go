package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"golang.org/x/term"
)

// defaultWidth is used when the output isn't a terminal (piped, redirected)
// and no width can be detected.
const defaultWidth = 120

// Table is a column-aligned text rendering of a --json document's rows,
// the fallback output format when --json is not set.
type Table struct {
	Headers []string
	Rows    [][]string

	// TruncateColumn is the column index allowed to shrink when the table
	// is wider than the terminal (the path column, in every cm command).
	TruncateColumn int
}

// Render writes t to w, truncating TruncateColumn with an ellipsis when the
// natural table width exceeds the terminal width reported for fd.
func (t Table) Render(w io.Writer, fd int) error {
	widths := t.columnWidths()

	termWidth, _, err := term.GetSize(fd)
	if err != nil || termWidth <= 0 {
		termWidth = defaultWidth
	}

	t.shrinkToFit(widths, termWidth)

	if err := t.writeRow(w, t.Headers, widths); err != nil {
		return err
	}

	if err := t.writeSeparator(w, widths); err != nil {
		return err
	}

	for _, row := range t.Rows {
		if err := t.writeRow(w, row, widths); err != nil {
			return err
		}
	}

	return nil
}

func (t Table) columnWidths() []int {
	widths := make([]int, len(t.Headers))

	for i, h := range t.Headers {
		widths[i] = runewidth.StringWidth(h)
	}

	for _, row := range t.Rows {
		for i, cell := range row {
			if i >= len(widths) {
				continue
			}

			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	return widths
}

func (t Table) shrinkToFit(widths []int, termWidth int) {
	if t.TruncateColumn < 0 || t.TruncateColumn >= len(widths) {
		return
	}

	const gapPerColumn = 2

	total := gapPerColumn * len(widths)
	for _, w := range widths {
		total += w
	}

	overflow := total - termWidth
	if overflow <= 0 {
		return
	}

	shrunk := widths[t.TruncateColumn] - overflow
	if shrunk < 8 {
		shrunk = 8
	}

	widths[t.TruncateColumn] = shrunk
}

func (t Table) writeRow(w io.Writer, cells []string, widths []int) error {
	parts := make([]string, len(widths))

	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}

		parts[i] = padCell(truncateCell(cell, width), width)
	}

	_, err := fmt.Fprintln(w, strings.Join(parts, "  "))

	return err
}

func (t Table) writeSeparator(w io.Writer, widths []int) error {
	parts := make([]string, len(widths))

	for i, width := range widths {
		parts[i] = strings.Repeat("-", width)
	}

	_, err := fmt.Fprintln(w, strings.Join(parts, "  "))

	return err
}

func padCell(cell string, width int) string {
	pad := width - runewidth.StringWidth(cell)
	if pad <= 0 {
		return cell
	}

	return cell + strings.Repeat(" ", pad)
}

// truncateCell shortens cell to fit width display columns, breaking only on
// grapheme-cluster boundaries so a multi-byte path component is never cut
// mid-rune.
func truncateCell(cell string, width int) string {
	if runewidth.StringWidth(cell) <= width {
		return cell
	}

	const ellipsis = "…"

	target := width - runewidth.StringWidth(ellipsis)
	if target <= 0 {
		return ellipsis
	}

	var (
		b   strings.Builder
		col int
	)

	gr := uniseg.NewGraphemes(cell)
	for gr.Next() {
		cluster := gr.Str()
		w := runewidth.StringWidth(cluster)

		if col+w > target {
			break
		}

		b.WriteString(cluster)
		col += w
	}

	return b.String() + ellipsis
}
