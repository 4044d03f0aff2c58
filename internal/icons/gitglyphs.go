package icons

import "github.com/bresilla/lis/internal/git"

// GitGlyph returns the one-cell marker for a git status category. None maps
// to a plain space so the column keeps its width.
func GitGlyph(k git.Kind) string {
	switch k {
	case git.Untracked:
		return "✭"
	case git.Modified:
		return "✹"
	case git.Staged:
		return "✚"
	case git.Renamed:
		return "➜"
	case git.Ignored:
		return "☒"
	case git.Unmerged:
		return "═"
	case git.Deleted:
		return "✖"
	case git.Unknown:
		return "?"
	default:
		return " "
	}
}
