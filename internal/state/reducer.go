package state

import (
	"path/filepath"

	"github.com/bresilla/lis/internal/fs"
)

// Outcome tells the event loop what a dispatch produced beyond the state
// mutation itself.
type Outcome struct {
	// Activated carries the path of a non-directory entry the user activated;
	// the loop exits and yields it as the process result.
	Activated string
}

// Reducer applies Actions to a TreeState. All mutations run on the loop
// goroutine; recoverable failures land in s.Message, never in a return.
type Reducer struct{}

// NewReducer returns the command dispatcher.
func NewReducer() *Reducer {
	return &Reducer{}
}

// Reduce dispatches one action. Structural commands end with a Rebuild so
// the visible list always matches the recorded expansion set before control
// returns to the render step.
func (r *Reducer) Reduce(s *TreeState, action Action) Outcome {
	switch a := action.(type) {
	case CursorUpAction:
		if s.Cursor > 0 {
			s.Cursor--
		}
	case CursorDownAction:
		if s.Cursor+1 < len(s.Visible) {
			s.Cursor++
		}
	case CursorTopAction:
		s.Cursor = 0
	case CursorBottomAction:
		if len(s.Visible) > 0 {
			s.Cursor = len(s.Visible) - 1
		}

	case ExpandAction:
		r.expand(s)
	case CollapseAction:
		r.collapse(s)
	case ActivateAction:
		return r.activate(s)

	case ToggleHiddenAction:
		s.Options.ShowHidden = !s.Options.ShowHidden
		Rebuild(s)
	case CycleSortAction:
		s.Sort = s.Sort.Next()
		Rebuild(s)
	case ToggleSizeAction:
		s.Options.ShowSize = !s.Options.ShowSize
	case ToggleTimeAction:
		s.Options.ShowTime = !s.Options.ShowTime

	case RefreshAction:
		s.RefreshGit()
		Rebuild(s)
		s.Message = "Refreshed"
	case RootToParentAction:
		parent := filepath.Dir(s.Root)
		if parent != s.Root {
			s.Root = parent
			s.Cursor = 0
			s.RefreshGit()
			Rebuild(s)
		}
	case ChangeRootAction:
		if e := s.CurrentEntry(); e != nil && e.IsDir() {
			s.Root = e.Path
			s.Cursor = 0
			s.RefreshGit()
			Rebuild(s)
		}

	case ToggleSelectAction:
		r.toggleSelect(s)
	case SelectAllAction:
		r.selectAll(s)
	case ClearSelectionAction:
		r.clearSelection(s)
	case CopyAction:
		r.fillClipboard(s, false)
	case CutAction:
		r.fillClipboard(s, true)
	case PasteAction:
		r.paste(s)
	case DeleteAction:
		r.deleteEntries(s)

	case RenameAction:
		r.rename(s, a.NewName)
	case CreateFileAction:
		r.createNew(s, a.Name, false)
	case CreateDirAction:
		r.createNew(s, a.Name, true)
	}
	return Outcome{}
}

// expand opens the cursor directory and re-locates the cursor on the same
// entry; rows move after a rebuild, so the row index is re-resolved by
// canonical path.
func (r *Reducer) expand(s *TreeState) {
	e := s.CurrentEntry()
	if e == nil || !e.IsDir() {
		return
	}
	canon := e.Canon
	e.Expanded = true
	Rebuild(s)
	if idx := EntryIndex(s, canon); idx >= 0 {
		s.Cursor = idx
	}
}

func (r *Reducer) collapse(s *TreeState) {
	e := s.CurrentEntry()
	if e == nil {
		return
	}
	canon := e.Canon
	if e.IsDir() && e.Expanded && e.Depth != 0 {
		e.Expanded = false
		Rebuild(s)
		if idx := EntryIndex(s, canon); idx >= 0 {
			s.Cursor = idx
		}
		return
	}
	if e.Depth > 0 {
		if idx := EntryIndex(s, fs.Canonical(filepath.Dir(e.Path))); idx >= 0 {
			s.Cursor = idx
		}
	}
}

func (r *Reducer) activate(s *TreeState) Outcome {
	e := s.CurrentEntry()
	if e == nil {
		return Outcome{}
	}
	if e.IsDir() {
		canon := e.Canon
		e.Expanded = !e.Expanded
		Rebuild(s)
		if idx := EntryIndex(s, canon); idx >= 0 {
			s.Cursor = idx
		}
		return Outcome{}
	}
	return Outcome{Activated: e.Path}
}
