package core

// Color is an ANSI 256-palette index used for cell foreground and background.
// ColorDefault leaves the terminal's own color untouched.
type Color uint8

const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorBrown
	ColorGray
	ColorDarkGray
	ColorDarkGreen
	ColorDeepBlue
)

// ANSI returns the lipgloss-compatible palette code, or "" for ColorDefault.
func (c Color) ANSI() string {
	switch c {
	case ColorBlack:
		return "0"
	case ColorRed:
		return "1"
	case ColorGreen:
		return "2"
	case ColorYellow:
		return "3"
	case ColorBlue:
		return "4"
	case ColorWhite:
		return "7"
	case ColorBrightRed:
		return "9"
	case ColorBrightGreen:
		return "10"
	case ColorBrightYellow:
		return "11"
	case ColorBrightWhite:
		return "15"
	case ColorOrange:
		return "208"
	case ColorBrown:
		return "94"
	case ColorGray:
		return "245"
	case ColorDarkGray:
		return "238"
	case ColorDarkGreen:
		return "22"
	case ColorDeepBlue:
		return "24"
	default:
		return ""
	}
}

// Style pairs a foreground and background color for one cell.
type Style struct {
	FG Color
	BG Color
}
