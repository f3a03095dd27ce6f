package core

// Color is a palette entry. The terminal host maps it to an ANSI color,
// the window host to RGBA.
type Color uint8

const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorBrightWhite
	ColorGray
	ColorRed
	ColorBrightRed
	ColorGreen
	ColorYellow
	ColorBrightYellow
	ColorCyan
	ColorMagenta
	ColorBrown

	// ColorCount is the number of palette entries; it is not a color.
	ColorCount
)

var colorNames = [ColorCount]string{
	"default", "black", "white", "bright_white", "gray", "red", "bright_red",
	"green", "yellow", "bright_yellow", "cyan", "magenta", "brown",
}

func (c Color) String() string {
	if c < ColorCount {
		return colorNames[c]
	}
	return "unknown"
}
