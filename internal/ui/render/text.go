package render

import (
	"fmt"
	"strings"
	"time"
)

const ansiReset = "\x1b[0m"

// VisibleWidth counts the character cells a string occupies on screen:
// escape sequences (ESC through the next 'm') contribute nothing and UTF-8
// continuation bytes contribute zero, so a styled segment reports the same
// width as its plain text.
func VisibleWidth(s string) int {
	width := 0
	inEscape := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == 0x1b:
			inEscape = true
		case inEscape:
			if c == 'm' {
				inEscape = false
			}
		case c&0xC0 != 0x80:
			width++
		}
	}
	return width
}

// ApplyPersistentBG re-asserts a 256-color background after every reset in
// the line. Styled segments end with a reset that would otherwise drop the
// line back to the terminal default and leave a visible seam.
func ApplyPersistentBG(s string, bg int) string {
	if bg < 0 {
		return s
	}
	bgCode := fmt.Sprintf("\x1b[48;5;%dm", bg)
	var b strings.Builder
	b.Grow(len(s) * 2)

	pos := 0
	for {
		found := strings.Index(s[pos:], ansiReset)
		if found < 0 {
			b.WriteString(s[pos:])
			return b.String()
		}
		found += pos
		b.WriteString(s[pos:found])
		b.WriteString(ansiReset)
		b.WriteString(bgCode)
		pos = found + len(ansiReset)
	}
}

// FormatSize renders a byte count in at most five cells (1023B, 4.2K, ...).
func FormatSize(bytes int64) string {
	const units = "BKMGT"
	size := float64(bytes)
	unit := 0
	for size >= 1024.0 && unit < len(units)-1 {
		size /= 1024.0
		unit++
	}
	if unit == 0 {
		return fmt.Sprintf("%d%c", bytes, units[0])
	}
	return fmt.Sprintf("%.1f%c", size, units[unit])
}

// FormatTime renders a modification time in the short listing form.
func FormatTime(t time.Time) string {
	return t.Format("Jan 02 15:04")
}
