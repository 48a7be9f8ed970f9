// Package terminal answers the two questions showrepo asks about stdout:
// how wide it is and whether it is a terminal at all.
package terminal

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"christopherharwell/showrepo/pkg/types"
)

// DefaultWidth is used when the width can be read neither from COLUMNS nor
// from the terminal.
const DefaultWidth = 80

// IsTerminal reports whether f is attached to a terminal, including Cygwin
// and MSYS pseudo terminals.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Width returns the number of columns available on f. A positive COLUMNS
// environment variable wins, then the size reported by the terminal, then
// DefaultWidth.
func Width(f *os.File) int {
	if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 0 {
		slog.Debug("terminal width", "source", "COLUMNS", "width", cols)
		return cols
	}

	if IsTerminal(f) {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			slog.Debug("terminal width", "source", "tty", "width", w)
			return w
		}
	}

	slog.Debug("terminal width", "source", "default", "width", DefaultWidth)
	return DefaultWidth
}

// UseColor resolves the color setting of cfg for output written to f.
// NoColor always disables colors; "auto" enables them only on a terminal.
func UseColor(cfg types.Config, f *os.File) bool {
	if cfg.NoColor {
		return false
	}
	switch strings.ToLower(cfg.Color) {
	case types.ColorNever:
		return false
	case types.ColorAuto:
		return IsTerminal(f)
	default:
		return true
	}
}
