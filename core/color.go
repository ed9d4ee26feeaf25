package core

// Color is the content of a single board cell
// Plain value type; Empty is the zero value
type Color uint8

const (
	Empty Color = iota
	Red
	Blue
	Green
	Yellow
	Purple
)

// MaxColors is the number of playable (non-empty) colors
const MaxColors = int(Purple)

var colorNames = [...]string{
	Empty:  "empty",
	Red:    "red",
	Blue:   "blue",
	Green:  "green",
	Yellow: "yellow",
	Purple: "purple",
}

var colorRunes = [...]rune{
	Empty:  '.',
	Red:    'R',
	Blue:   'B',
	Green:  'G',
	Yellow: 'Y',
	Purple: 'P',
}

// IsEmpty reports whether the cell holds no piece
func (c Color) IsEmpty() bool {
	return c == Empty
}

// Valid reports whether c is Empty or one of the playable colors
func (c Color) Valid() bool {
	return int(c) < len(colorNames)
}

func (c Color) String() string {
	if !c.Valid() {
		return "unknown"
	}
	return colorNames[c]
}

// Rune returns the board glyph for the color, '?' for unknown values
func (c Color) Rune() rune {
	if !c.Valid() {
		return '?'
	}
	return colorRunes[c]
}

// ColorFromRune maps a board glyph back to its color
// Returns false for glyphs that are not part of the palette
func ColorFromRune(r rune) (Color, bool) {
	for c, g := range colorRunes {
		if g == r {
			return Color(c), true
		}
	}
	return Empty, false
}
