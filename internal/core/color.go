package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGreen
	ColorBrown
)

// NumColors is the number of defined colors.
const NumColors = int(ColorBrown) + 1

// palette holds each color's catalog name and ANSI 256-color code. The
// default color has no code and renders with the terminal foreground.
var palette = [NumColors]struct {
	name string
	ansi string
}{
	ColorDefault:       {"default", ""},
	ColorRed:           {"red", "1"},
	ColorGreen:         {"green", "2"},
	ColorYellow:        {"yellow", "3"},
	ColorBlue:          {"blue", "4"},
	ColorMagenta:       {"magenta", "5"},
	ColorCyan:          {"cyan", "6"},
	ColorWhite:         {"white", "7"},
	ColorBrightRed:     {"bright_red", "9"},
	ColorBrightGreen:   {"bright_green", "10"},
	ColorBrightYellow:  {"bright_yellow", "11"},
	ColorBrightBlue:    {"bright_blue", "12"},
	ColorBrightMagenta: {"bright_magenta", "13"},
	ColorBrightCyan:    {"bright_cyan", "14"},
	ColorBrightWhite:   {"bright_white", "15"},
	ColorOrange:        {"orange", "208"},
	ColorGray:          {"gray", "245"},
	ColorDarkGreen:     {"dark_green", "22"},
	ColorBrown:         {"brown", "130"},
}

// ParseColor resolves a catalog color name such as "bright_red".
func ParseColor(name string) (Color, bool) {
	for i, p := range palette {
		if p.name == name {
			return Color(i), true
		}
	}
	return ColorDefault, false
}

// String returns the catalog name.
func (c Color) String() string {
	if int(c) >= NumColors {
		return "unknown"
	}
	return palette[c].name
}

// ANSI returns the 256-color code, or "" for the default and unknown colors.
func (c Color) ANSI() string {
	if int(c) >= NumColors {
		return ""
	}
	return palette[c].ansi
}
