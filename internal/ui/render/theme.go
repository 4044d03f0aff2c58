package render

import (
	"fmt"
	"strconv"

	"github.com/bresilla/lis/internal/git"
)

// ColorTheme defines the semantic colors of the tree view as hex strings.
type ColorTheme struct {
	Cursor       string
	DirName      string
	SelectedName string
	FileName     string
	DirIcon      string
	Muted        string
	Message      string
	MarkSelected string
	MarkReadonly string

	GitWorktree string // modified, renamed
	GitStaged   string
	GitConflict string // unmerged, deleted
	GitInert    string // untracked, ignored, unknown
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Cursor:       "#FFFFFF",
		DirName:      "#689FB6",
		SelectedName: "#b8bb26",
		FileName:     "#F09F17",
		DirIcon:      "#00afaf",
		Muted:        "#928374",
		Message:      "#fabd2f",
		MarkSelected: "#b8bb26",
		MarkReadonly: "#fb4934",

		GitWorktree: "#fabd2f",
		GitStaged:   "#b8bb26",
		GitConflict: "#fb4934",
		GitInert:    "#928374",
	}
}

// gitColor picks the theme color for a status category; None gets no color
// because its glyph is a blank.
func (t ColorTheme) gitColor(k git.Kind) string {
	switch k {
	case git.Modified, git.Renamed:
		return t.GitWorktree
	case git.Staged:
		return t.GitStaged
	case git.Unmerged, git.Deleted:
		return t.GitConflict
	case git.Untracked, git.Ignored, git.Unknown:
		return t.GitInert
	default:
		return ""
	}
}

// fgSeq converts "#RRGGBB" into a truecolor foreground escape.
func fgSeq(hex string) string {
	if len(hex) != 7 || hex[0] != '#' {
		return ""
	}
	r, err1 := strconv.ParseUint(hex[1:3], 16, 8)
	g, err2 := strconv.ParseUint(hex[3:5], 16, 8)
	b, err3 := strconv.ParseUint(hex[5:7], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return ""
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)
}

// styled wraps text in a foreground color (and optional bold), ending with a
// reset. With an empty color the text passes through unstyled.
func styled(text, hex string, bold bool) string {
	seq := fgSeq(hex)
	if seq == "" && !bold {
		return text
	}
	if bold {
		seq += "\x1b[1m"
	}
	return seq + text + ansiReset
}
