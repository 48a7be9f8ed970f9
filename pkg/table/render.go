package table

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Format is a table layout.
type Format string

const (
	Grid   Format = "grid"
	Simple Format = "simple"
	Plain  Format = "plain"
	GitHub Format = "github"
	Pipe   Format = "pipe"
	PSQL   Format = "psql"
)

// Formats lists the supported layouts.
var Formats = []Format{Grid, Simple, Plain, GitHub, Pipe, PSQL}

// ParseFormat looks up a layout by name, ignoring case. Unknown names
// return Simple and false.
func ParseFormat(name string) (Format, bool) {
	for _, f := range Formats {
		if strings.EqualFold(name, string(f)) {
			return f, true
		}
	}
	return Simple, false
}

// Render writes t to w in the given format.
func Render(w io.Writer, t Table, format Format) {
	tw := tablewriter.NewWriter(w)
	// Headers are wrapped as they are set, so both switches come first.
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetHeader(t.Headers)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	applyFormat(tw, format)

	tw.AppendBulk(t.Rows)
	tw.Render()
}

func applyFormat(tw *tablewriter.Table, format Format) {
	switch format {
	case Grid:
		tw.SetRowLine(true)
	case PSQL:
		tw.SetRowLine(false)
	case GitHub, Pipe:
		tw.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
		tw.SetCenterSeparator("|")
	case Plain:
		tw.SetBorder(false)
		tw.SetHeaderLine(false)
		tw.SetCenterSeparator("")
		tw.SetColumnSeparator("")
		tw.SetRowSeparator("")
		tw.SetTablePadding("  ")
		tw.SetNoWhiteSpace(true)
	default:
		tw.SetBorder(false)
		tw.SetHeaderLine(true)
		tw.SetCenterSeparator(" ")
		tw.SetColumnSeparator(" ")
		tw.SetRowSeparator("-")
	}
}

// Print writes a blank line followed by the rendered table to w.
func Print(w io.Writer, t Table, format Format) error {
	var buf bytes.Buffer
	buf.WriteString("\n")
	Render(&buf, t, format)
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("print table: %w", err)
	}
	return nil
}

// Save writes the rendered table to the file at path, replacing it.
// t should be built without a palette so the file holds no escape codes.
func Save(path string, t Table, format Format) error {
	var buf bytes.Buffer
	Render(&buf, t, format)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("save table: %w", err)
	}
	return nil
}
