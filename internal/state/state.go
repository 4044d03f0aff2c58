// Package state owns the tree state engine: the single TreeState struct,
// the reconciler that rebuilds the visible list from disk plus remembered
// expansion state, and the reducer that applies keyboard commands to it.
package state

import (
	"github.com/bresilla/lis/internal/fs"
	"github.com/bresilla/lis/internal/git"
)

// Entry mirrors fs.Entry so UI code can rely on a stable type.
type Entry = fs.Entry

// DisplayOptions are the render-affecting flags. ShowHidden and Sort also
// feed the directory snapshot.
type DisplayOptions struct {
	ShowHidden   bool
	ShowGit      bool
	ShowSize     bool
	ShowTime     bool
	ShowMark     bool
	ShowHeader   bool
	UseANSI      bool
	AltScreen    bool
	GenericIcons bool
	MaxDepth     int // -1 = unlimited
	BGColor      int // -1 = terminal default, 0-255 = ANSI 256-color
	SelBGColor   int // -1 = none
}

// Clipboard holds the pending copy/cut set. It is replaced wholesale by every
// copy or cut and consumed only by a successful cut-paste.
type Clipboard struct {
	Paths []string
	IsCut bool
}

// TreeState is the single source of truth. It is owned by the event-loop
// goroutine; nothing else may touch it.
type TreeState struct {
	Root    string
	Visible []Entry
	Cursor  int

	Options DisplayOptions
	Sort    fs.SortMode

	// Selection and git status are keyed by canonical path so they survive
	// reconciliations.
	Selected  map[string]struct{}
	Clipboard Clipboard
	GitStatus map[string]git.Kind
	GitRoot   string

	// Transient status line, cleared on every keystroke.
	Message string

	// Startup-only: a path to reveal and place the cursor on.
	HighlightTarget string
}

// NewTreeState returns a state rooted at root with the default options.
func NewTreeState(root string) *TreeState {
	return &TreeState{
		Root: root,
		Options: DisplayOptions{
			ShowMark:   true,
			ShowHeader: true,
			UseANSI:    true,
			MaxDepth:   -1,
			BGColor:    -1,
			SelBGColor: -1,
		},
		Sort:      fs.SortName,
		Selected:  make(map[string]struct{}),
		GitStatus: make(map[string]git.Kind),
	}
}

// CurrentEntry returns the cursor row, or nil when the list is empty.
func (s *TreeState) CurrentEntry() *Entry {
	if len(s.Visible) == 0 || s.Cursor < 0 || s.Cursor >= len(s.Visible) {
		return nil
	}
	return &s.Visible[s.Cursor]
}

func (s *TreeState) listOptions() fs.ListOptions {
	return fs.ListOptions{
		ShowHidden:   s.Options.ShowHidden,
		Sort:         s.Sort,
		GenericIcons: s.Options.GenericIcons,
	}
}

func (s *TreeState) isSelected(canon string) bool {
	_, ok := s.Selected[canon]
	return ok
}

// RefreshGit re-derives the repository root and status map for the current
// tree root. Absence of a repository leaves an empty map.
func (s *TreeState) RefreshGit() {
	s.GitRoot = git.FindRoot(s.Root)
	s.GitStatus = git.Status(s.GitRoot, fs.Canonical)
}

func (s *TreeState) clampCursor() {
	if s.Cursor < 0 {
		s.Cursor = 0
	}
	if s.Cursor >= len(s.Visible) {
		if len(s.Visible) == 0 {
			s.Cursor = 0
		} else {
			s.Cursor = len(s.Visible) - 1
		}
	}
}
