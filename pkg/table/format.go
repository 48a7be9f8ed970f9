// Package table turns repositories into a printable table: it picks headers,
// colors cells, fits the description column to the terminal and renders the
// result with tablewriter.
package table

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"

	"christopherharwell/showrepo/pkg/types"
)

const (
	// rowPadding accounts for borders and spaces around the name, OS and
	// language cells of a row.
	rowPadding = 12

	// edgePadding is kept free at the right edge of the terminal.
	edgePadding = 12

	// MinDescriptionWidth is the narrowest the description column gets,
	// however small the terminal.
	MinDescriptionWidth = 10
)

// Headers used for uncolored output and saved files.
var Headers = []string{"Repository Name", "OS", "Language", "Description"}

// coloredHeaders are painted with the palette's header colors.
var coloredHeaders = []string{"Repo Name", "OS", "Language", "Description"}

// Table is a ready to render table.
type Table struct {
	Headers []string
	Rows    [][]string

	// DescriptionWidth is the wrap width applied to descriptions
	DescriptionWidth int
}

// DescriptionWidth returns how wide the description column may be so a row
// fits in termWidth columns: the width left after the widest
// name+OS+language combination and the fixed padding.
func DescriptionWidth(repos []types.Repo, termWidth int) int {
	widest := 0
	for _, r := range repos {
		w := runewidth.StringWidth(r.Name) +
			runewidth.StringWidth(string(r.OS)) +
			runewidth.StringWidth(r.Language) +
			rowPadding
		if w > widest {
			widest = w
		}
	}

	width := termWidth - widest - edgePadding
	if width < MinDescriptionWidth {
		return MinDescriptionWidth
	}
	return width
}

// Build lays out repos for a terminal termWidth columns wide. A nil palette
// produces plain text; otherwise every header and cell is wrapped in its
// column color followed by a reset code.
//
// Parameters:
//   - repos: The repositories to display
//   - termWidth: The terminal width in columns
//   - palette: The colors to use, or nil for uncolored output
//
// Returns:
//   - Table: Headers, rows and the description wrap width
func Build(repos []types.Repo, termWidth int, palette *Palette) Table {
	t := Table{
		DescriptionWidth: DescriptionWidth(repos, termWidth),
		Rows:             make([][]string, 0, len(repos)),
	}

	if palette == nil {
		t.Headers = append([]string(nil), Headers...)
	} else {
		h := palette.Header
		t.Headers = []string{
			Paint(h.Name, coloredHeaders[0]),
			Paint(h.OS, coloredHeaders[1]),
			Paint(h.Language, coloredHeaders[2]),
			Paint(h.Description, coloredHeaders[3]),
		}
	}

	var cell ColumnColors
	if palette != nil {
		cell = palette.Cell
	}
	for _, r := range repos {
		t.Rows = append(t.Rows, []string{
			Paint(cell.Name, r.Name),
			Paint(cell.OS, string(r.OS)),
			Paint(cell.Language, r.Language),
			paintLines(cell.Description, wrap(r.Description, t.DescriptionWidth)),
		})
	}
	return t
}

// wrap breaks s into lines of at most width display columns. Single words
// longer than width are kept whole.
func wrap(s string, width int) []string {
	if s == "" {
		return []string{""}
	}
	lines, _ := tablewriter.WrapString(s, width)
	return lines
}

// paintLines colors each line on its own so every line of a wrapped cell
// starts with the color and ends with a reset.
func paintLines(color string, lines []string) string {
	painted := make([]string, len(lines))
	for i, line := range lines {
		painted[i] = Paint(color, line)
	}
	return strings.Join(painted, "\n")
}
