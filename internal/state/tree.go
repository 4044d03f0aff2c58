package state

import (
	"path/filepath"
	"slices"

	"github.com/bresilla/lis/internal/fs"
	"github.com/bresilla/lis/internal/icons"
)

// Rebuild reconciles the visible list against the filesystem: it remembers
// which directories were expanded, re-reads every expanded level, and lays
// the result out as a depth-first pre-order list with per-row branch
// bookkeeping. It is the only code allowed to grow or shrink s.Visible.
//
// The walk is a single left-to-right pass that splices children in place as
// expansions are discovered; no recursion, no separate flatten step. With an
// unchanged filesystem it is idempotent.
func Rebuild(s *TreeState) {
	expanded := make(map[string]struct{})
	for i := range s.Visible {
		e := &s.Visible[i]
		if e.Kind == fs.KindDirectory && e.Expanded {
			expanded[e.Canon] = struct{}{}
		}
	}

	root := fs.Entry{
		Name:     rootName(s.Root),
		Path:     s.Root,
		Canon:    fs.Canonical(s.Root),
		Kind:     fs.KindDirectory,
		Depth:    0,
		IsLast:   true,
		Expanded: true,
		Icon:     icons.FolderOpen,
	}
	root.Selected = s.isSelected(root.Canon)
	visible := []fs.Entry{root}

	for i := 0; i < len(visible); i++ {
		if visible[i].Kind != fs.KindDirectory || !visible[i].Expanded {
			continue
		}
		// Copy the parent: the splice below reallocates the slice.
		parent := visible[i]

		children, err := fs.ListDir(parent.Path, parent.Depth+1, s.listOptions())
		if err != nil {
			// Unreadable subtree renders as empty; the rest of the walk
			// continues.
			continue
		}

		for idx := range children {
			c := &children[idx]
			c.IsLast = idx+1 == len(children)
			c.AncestorHasMore = slices.Clone(parent.AncestorHasMore)
			if parent.Depth > 0 {
				// The root's own continuation is never drawn.
				c.AncestorHasMore = append(c.AncestorHasMore, !parent.IsLast)
			}
			if c.Kind == fs.KindDirectory {
				_, c.Expanded = expanded[c.Canon]
				if c.Expanded {
					c.Icon = icons.FolderOpen
				} else {
					c.Icon = icons.FolderClosed
				}
			}
			c.Selected = s.isSelected(c.Canon)
			c.Git = s.GitStatus[c.Canon]
		}

		visible = slices.Insert(visible, i+1, children...)
	}

	s.Visible = visible
	s.clampCursor()
}

// EntryIndex resolves a canonical path to its current row, or -1. Row
// indices never survive a Rebuild, so any command that rebuilds must
// re-resolve its subject through here.
func EntryIndex(s *TreeState, canon string) int {
	for i := range s.Visible {
		if s.Visible[i].Canon == canon {
			return i
		}
	}
	return -1
}

// rootName derives the display name for the tree root: the final path
// component, or the path itself when there is none (filesystem root).
func rootName(root string) string {
	base := filepath.Base(root)
	if base == string(filepath.Separator) || base == "." {
		return root
	}
	return base
}
