package core

import "strconv"

// Color is a foreground color for a screen cell. The zero value leaves
// the terminal's own color in place.
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
)

// ansi256 holds the xterm-256 code of each color; ColorDefault has none.
var ansi256 = [...]int{
	ColorDefault:       -1,
	ColorRed:           1,
	ColorGreen:         2,
	ColorYellow:        3,
	ColorBlue:          4,
	ColorMagenta:       5,
	ColorCyan:          6,
	ColorWhite:         7,
	ColorBrightRed:     9,
	ColorBrightGreen:   10,
	ColorBrightYellow:  11,
	ColorBrightBlue:    12,
	ColorBrightMagenta: 13,
	ColorBrightCyan:    14,
	ColorBrightWhite:   15,
	ColorOrange:        208,
	ColorGray:          245,
}

// ANSI returns the xterm-256 color code as a string, or "" for
// ColorDefault and unknown colors.
func (c Color) ANSI() string {
	if int(c) >= len(ansi256) || ansi256[c] < 0 {
		return ""
	}
	return strconv.Itoa(ansi256[c])
}

// IsDefault reports whether c leaves the terminal color unchanged.
func (c Color) IsDefault() bool {
	return c.ANSI() == ""
}
