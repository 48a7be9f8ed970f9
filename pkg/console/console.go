// Package console prints the short status lines showrepo shows around its
// table: "[*]" notes, "[!]" warnings and errors, and the stats summary.
package console

import (
	"fmt"
	"io"
	"strings"

	"christopherharwell/showrepo/pkg/table"
	"christopherharwell/showrepo/pkg/types"
)

const (
	red    = table.Red
	purple = table.Purple
	reset  = table.Reset
)

var (
	bullet     = table.LightCyan + "[*]" + reset
	subBullet  = red + "[" + table.Yellow + "+" + red + "]" + reset
	warnMarker = table.Yellow + "[" + red + "!" + table.Yellow + "]" + reset
	indent     = strings.Repeat(" ", len("[*]")+1)
)

// Printer writes status messages. Notes and warnings go to Out, errors to Err.
type Printer struct {
	Out   io.Writer
	Err   io.Writer
	Color bool
}

// New returns a Printer writing to out and errOut.
func New(out, errOut io.Writer, color bool) *Printer {
	return &Printer{Out: out, Err: errOut, Color: color}
}

// Info prints a "[*]" note.
func (p *Printer) Info(msg string) {
	if p.Color {
		fmt.Fprintf(p.Out, "%s %s\n", bullet, msg)
		return
	}
	fmt.Fprintf(p.Out, "[*] %s\n", msg)
}

// Warn prints a "[!] Warning!" line.
func (p *Printer) Warn(msg string) {
	if p.Color {
		fmt.Fprintf(p.Out, "%s %sWarning!%s %s\n", warnMarker, red, reset, msg)
		return
	}
	fmt.Fprintf(p.Out, "[!] Warning! %s\n", msg)
}

// Error prints a "[!] Error:" line.
func (p *Printer) Error(msg string) {
	if p.Color {
		fmt.Fprintf(p.Err, "%s %sError: %s%s\n", warnMarker, red, msg, reset)
		return
	}
	fmt.Fprintf(p.Err, "[!] Error: %s\n", msg)
}

// Total prints the number of repositories read from the file.
func (p *Printer) Total(n int) {
	fmt.Fprintln(p.Out)
	p.Info("Total number of repositories: " + p.number(n))
}

// Stats prints the filtered count, when filtering removed something, the
// number of languages and the OS distribution.
func (p *Printer) Stats(s types.Stats) {
	if s.Filtered() {
		p.Info("Number of repositories after applying filters: " + p.number(s.Count))
	}
	p.Info("Number of different languages: " + p.number(s.Languages))
	p.Info("Operating System scope:")
	for _, scope := range types.OSScopes {
		percent := fmt.Sprintf("%.1f%%", s.Percent(scope))
		if p.Color {
			fmt.Fprintf(p.Out, "%s%s %s: %s (%s%s%s)\n", indent, subBullet, scope, p.number(s.OS[scope]), red, percent, reset)
		} else {
			fmt.Fprintf(p.Out, "%s[+] %s: %d (%s)\n", indent, scope, s.OS[scope], percent)
		}
	}
}

func (p *Printer) number(n int) string {
	if p.Color {
		return fmt.Sprintf("%s%d%s", purple, n, reset)
	}
	return fmt.Sprintf("%d", n)
}
