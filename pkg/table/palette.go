package table

// ANSI escape codes.
const (
	Cyan       = "\033[36m"
	Purple     = "\033[35m"
	Red        = "\033[31m"
	Green      = "\033[32m"
	LightCyan  = "\033[1;36m"
	Pink       = "\033[1;35m"
	LightRed   = "\033[1;31m"
	LightGreen = "\033[1;32m"
	Yellow     = "\033[1;33m"
	Reset      = "\033[0m"
)

// ColumnColors holds one color per displayed column.
type ColumnColors struct {
	Name        string
	OS          string
	Language    string
	Description string
}

// Palette assigns header and cell colors to the table columns.
type Palette struct {
	Header ColumnColors
	Cell   ColumnColors
}

// ANSI is the palette used for colored output.
var ANSI = Palette{
	Header: ColumnColors{Name: LightCyan, OS: Pink, Language: LightRed, Description: LightGreen},
	Cell:   ColumnColors{Name: Cyan, OS: Purple, Language: Red, Description: Green},
}

// Paint wraps s in color and a reset code. Empty colors leave s unchanged.
func Paint(color, s string) string {
	if color == "" {
		return s
	}
	return color + s + Reset
}
