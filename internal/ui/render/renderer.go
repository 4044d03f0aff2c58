// Package render turns the tree state into terminal output. It writes raw
// escape-sequence strings; the terminal itself is owned by the app layer.
package render

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/bresilla/lis/internal/fs"
	"github.com/bresilla/lis/internal/icons"
	statepkg "github.com/bresilla/lis/internal/state"
	"github.com/mattn/go-runewidth"
)

const fallbackWidth = 80

// Renderer handles all UI rendering.
type Renderer struct {
	out   *bufio.Writer
	width func() (int, error)
	theme ColorTheme
}

// NewRenderer writes through out; width is queried per render and may fail
// (the 80-column fallback applies).
func NewRenderer(out *bufio.Writer, width func() (int, error)) *Renderer {
	return &Renderer{
		out:   out,
		width: width,
		theme: GetColorTheme(),
	}
}

// Render draws the whole view: clear, header, status message, one line per
// visible entry, flush.
func (r *Renderer) Render(s *statepkg.TreeState) {
	termWidth := fallbackWidth
	if r.width != nil {
		if w, err := r.width(); err == nil && w > 0 {
			termWidth = w
		}
	}

	pageBG := s.Options.AltScreen && s.Options.BGColor >= 0
	if pageBG {
		// Clearing with the background attribute set floods the page color.
		fmt.Fprintf(r.out, "\x1b[48;5;%dm\x1b[2J\x1b[H", s.Options.BGColor)
	} else {
		r.out.WriteString("\x1b[2J\x1b[H")
	}

	if s.Options.ShowHeader {
		r.headerLine(termWidth, "lis - interactive tree file browser")
		r.headerLine(termWidth, rootLine(s))
		r.headerLine(termWidth, "j/k:move l/h/enter:open/close space:mark .:hidden s:sort c:cd")
		r.headerLine(termWidth, "y:copy d:cut p:paste D:delete r:rename n:file N:dir o:open q:quit")
		if s.Message != "" {
			r.messageLine(s)
		}
		r.out.WriteString("\r\n")
	} else if s.Message != "" {
		r.messageLine(s)
	}

	for i := range s.Visible {
		r.entryLine(s, &s.Visible[i], i == s.Cursor, termWidth)
	}
	r.out.Flush()
}

func rootLine(s *statepkg.TreeState) string {
	var b strings.Builder
	fmt.Fprintf(&b, "root: %s  [sort: %s]", s.Root, s.Sort)
	if len(s.Selected) > 0 {
		fmt.Fprintf(&b, "  [%d selected]", len(s.Selected))
	}
	if n := len(s.Clipboard.Paths); n > 0 {
		verb := "copied"
		if s.Clipboard.IsCut {
			verb = "cut"
		}
		fmt.Fprintf(&b, "  [%d %s]", n, verb)
	}
	return b.String()
}

func (r *Renderer) headerLine(termWidth int, text string) {
	r.out.WriteString(runewidth.Truncate(text, termWidth, "…"))
	r.out.WriteString("\r\n")
}

func (r *Renderer) messageLine(s *statepkg.TreeState) {
	msg := s.Message
	if s.Options.UseANSI {
		msg = styled(msg, r.theme.Message, false)
	}
	if s.Options.AltScreen && s.Options.BGColor >= 0 {
		msg = ApplyPersistentBG(msg, s.Options.BGColor)
	}
	r.out.WriteString(msg)
	r.out.WriteString("\r\n")
}

// entryLine composes one row left to right: cursor marker, mark column,
// indentation, git glyph, icon, name, size, time; then applies the line
// background and pads to the terminal width.
func (r *Renderer) entryLine(s *statepkg.TreeState, e *statepkg.Entry, isCursor bool, termWidth int) {
	ansi := s.Options.UseANSI
	var line strings.Builder

	if isCursor {
		if ansi {
			line.WriteString(styled("> ", r.theme.Cursor, true))
		} else {
			line.WriteString("> ")
		}
	} else {
		line.WriteString("  ")
	}

	if s.Options.ShowMark {
		switch {
		case e.Selected:
			if ansi {
				line.WriteString(styled(icons.MarkSelected, r.theme.MarkSelected, false))
			} else {
				line.WriteString(icons.MarkSelected)
			}
		case e.ReadOnly:
			if ansi {
				line.WriteString(styled(icons.MarkReadonly, r.theme.MarkReadonly, false))
			} else {
				line.WriteString(icons.MarkReadonly)
			}
		default:
			line.WriteString(" ")
		}
		line.WriteString(" ")
	}

	if e.Depth > 0 {
		// With a max indent depth only the nearest levels are drawn; the
		// oldest ancestors are the ones trimmed.
		start := 0
		if s.Options.MaxDepth >= 0 && len(e.AncestorHasMore) > s.Options.MaxDepth {
			start = len(e.AncestorHasMore) - s.Options.MaxDepth
		}
		for _, hasMore := range e.AncestorHasMore[start:] {
			if hasMore {
				line.WriteString(icons.IndentPipe)
			} else {
				line.WriteString(icons.IndentSpace)
			}
		}
		if e.IsLast {
			line.WriteString(icons.IndentLast)
		} else {
			line.WriteString(icons.IndentBranch)
		}
	}

	if s.Options.ShowGit {
		glyph := icons.GitGlyph(e.Git)
		if ansi {
			line.WriteString(styled(glyph, r.theme.gitColor(e.Git), false))
		} else {
			line.WriteString(glyph)
		}
		line.WriteString(" ")
	}

	if ansi {
		line.WriteString(styled(e.Icon, r.iconColor(e), false))
	} else {
		line.WriteString(e.Icon)
	}
	line.WriteString(" ")

	if ansi {
		line.WriteString(styled(e.Name, r.nameColor(e), isCursor))
	} else {
		line.WriteString(e.Name)
	}
	if e.IsDir() {
		line.WriteString("/")
	}

	if s.Options.ShowSize && e.Kind == fs.KindFile {
		line.WriteString("  ")
		if ansi {
			line.WriteString(styled(FormatSize(e.Size), r.theme.Muted, false))
		} else {
			line.WriteString(FormatSize(e.Size))
		}
	}

	if s.Options.ShowTime && !e.ModTime.IsZero() {
		line.WriteString("  ")
		if ansi {
			line.WriteString(styled(FormatTime(e.ModTime), r.theme.Muted, false))
		} else {
			line.WriteString(FormatTime(e.ModTime))
		}
	}

	lineBG := -1
	switch {
	case isCursor && s.Options.AltScreen && s.Options.SelBGColor >= 0:
		lineBG = s.Options.SelBGColor
	case s.Options.AltScreen && s.Options.BGColor >= 0:
		lineBG = s.Options.BGColor
	}

	text := line.String()
	if lineBG < 0 {
		r.out.WriteString(text)
		r.out.WriteString("\r\n")
		return
	}

	padding := termWidth - VisibleWidth(text)
	if padding < 0 {
		padding = 0
	}
	fmt.Fprintf(r.out, "\x1b[48;5;%dm", lineBG)
	r.out.WriteString(ApplyPersistentBG(text, lineBG))
	r.out.WriteString(strings.Repeat(" ", padding))
	r.out.WriteString(ansiReset)
	if s.Options.BGColor >= 0 {
		fmt.Fprintf(r.out, "\x1b[48;5;%dm", s.Options.BGColor)
	}
	r.out.WriteString("\r\n")
}

func (r *Renderer) iconColor(e *statepkg.Entry) string {
	if e.IsDir() {
		return r.theme.DirIcon
	}
	return icons.FileColor(e.Name)
}

func (r *Renderer) nameColor(e *statepkg.Entry) string {
	switch {
	case e.IsDir():
		return r.theme.DirName
	case e.Selected:
		return r.theme.SelectedName
	default:
		return r.theme.FileName
	}
}
