package app

import (
	"fmt"
	"path/filepath"
	"strings"

	fsutil "github.com/bresilla/lis/internal/fs"
	statepkg "github.com/bresilla/lis/internal/state"
	"github.com/bresilla/lis/internal/ui/input"
)

// Run drives the event loop until the user quits or activates a file. The
// returned path is empty on a plain quit; a key-read failure is the only
// error path out of the loop.
func (a *Application) Run() (string, error) {
	if err := a.initTerminal(); err != nil {
		return "", err
	}
	defer a.cleanupTerminal()

	a.state.RefreshGit()
	statepkg.Rebuild(a.state)
	a.revealHighlightTarget()
	a.renderer.Render(a.state)

	for {
		key, err := a.keys.ReadKey()
		if err != nil {
			return "", fmt.Errorf("cannot read key: %w", err)
		}

		// The status message is transient: any keystroke clears it before
		// the command gets a chance to set a fresh one.
		a.state.Message = ""

		done, result := a.dispatch(key)
		if done {
			return result, nil
		}
		a.renderer.Render(a.state)
	}
}

// dispatch routes one key event. The bool result reports a transition to
// the exiting state; the string carries the activated path, if any.
func (a *Application) dispatch(key input.Key) (bool, string) {
	switch key.Kind {
	case input.KeyUp, input.KeyCtrlP:
		a.reduce(statepkg.CursorUpAction{})
	case input.KeyDown, input.KeyCtrlN:
		a.reduce(statepkg.CursorDownAction{})
	case input.KeyLeft:
		a.reduce(statepkg.CollapseAction{})
	case input.KeyRight:
		a.reduce(statepkg.ExpandAction{})
	case input.KeyHome:
		a.reduce(statepkg.CursorTopAction{})
	case input.KeyEnd:
		a.reduce(statepkg.CursorBottomAction{})
	case input.KeyEnter:
		out := a.reduce(statepkg.ActivateAction{})
		if out.Activated != "" {
			return true, out.Activated
		}
	case input.KeyBackspace:
		a.reduce(statepkg.RootToParentAction{})
	case input.KeyEscape, input.KeyCtrlC:
		return true, ""
	case input.KeyRune:
		return a.dispatchRune(key.Rune)
	}
	return false, ""
}

func (a *Application) dispatchRune(r rune) (bool, string) {
	switch r {
	case 'q', 'Q':
		return true, ""
	case 'j', 'J':
		a.reduce(statepkg.CursorDownAction{})
	case 'k', 'K':
		a.reduce(statepkg.CursorUpAction{})
	case 'g':
		a.reduce(statepkg.CursorTopAction{})
	case 'G':
		a.reduce(statepkg.CursorBottomAction{})
	case 'h', 'H':
		a.reduce(statepkg.CollapseAction{})
	case 'l', 'L':
		a.reduce(statepkg.ExpandAction{})
	case '.':
		a.reduce(statepkg.ToggleHiddenAction{})
	case ' ':
		a.reduce(statepkg.ToggleSelectAction{})
	case 'a':
		a.reduce(statepkg.SelectAllAction{})
	case 'A':
		a.reduce(statepkg.ClearSelectionAction{})
	case 'y':
		a.reduce(statepkg.CopyAction{})
	case 'd':
		a.reduce(statepkg.CutAction{})
	case 'p':
		a.reduce(statepkg.PasteAction{})
	case 'D':
		a.reduce(statepkg.DeleteAction{})
	case 's':
		a.reduce(statepkg.CycleSortAction{})
	case 'S':
		a.reduce(statepkg.ToggleSizeAction{})
	case 't':
		a.reduce(statepkg.ToggleTimeAction{})
	case 'o':
		a.openWithSystem()
	case 'Y':
		a.yankPath()
	case 'R':
		a.reduce(statepkg.RefreshAction{})
	case '-':
		a.reduce(statepkg.RootToParentAction{})
	case 'c':
		a.reduce(statepkg.ChangeRootAction{})
	case 'r':
		a.promptRename()
	case 'n':
		a.promptCreate(false)
	case 'N':
		a.promptCreate(true)
	}
	return false, ""
}

func (a *Application) reduce(action statepkg.Action) statepkg.Outcome {
	return a.reducer.Reduce(a.state, action)
}

// promptRename suspends the loop for a line of input, then dispatches. The
// root check runs before prompting so the user is not asked for a name that
// can never apply.
func (a *Application) promptRename() {
	e := a.state.CurrentEntry()
	if e == nil {
		return
	}
	if e.Depth == 0 {
		a.state.Message = "Cannot rename root"
		return
	}
	name, err := input.ReadLine(a.keys, a.out, "Rename to: ")
	if err != nil {
		return
	}
	a.reduce(statepkg.RenameAction{NewName: name})
}

func (a *Application) promptCreate(isDir bool) {
	prompt := "New file: "
	if isDir {
		prompt = "New directory: "
	}
	name, err := input.ReadLine(a.keys, a.out, prompt)
	if err != nil {
		return
	}
	if isDir {
		a.reduce(statepkg.CreateDirAction{Name: name})
	} else {
		a.reduce(statepkg.CreateFileAction{Name: name})
	}
}

// revealHighlightTarget expands the ancestor chain of the startup highlight
// path and parks the cursor on it. Each expansion rebuilds, so ancestors are
// re-resolved by canonical path at every step.
func (a *Application) revealHighlightTarget() {
	s := a.state
	if s.HighlightTarget == "" {
		return
	}
	target := fsutil.Canonical(s.HighlightTarget)
	rootCanon := fsutil.Canonical(s.Root)

	rel, err := filepath.Rel(rootCanon, target)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return
	}

	parts := strings.Split(rel, string(filepath.Separator))
	current := rootCanon
	for _, part := range parts[:len(parts)-1] {
		current = filepath.Join(current, part)
		idx := statepkg.EntryIndex(s, current)
		if idx < 0 {
			break
		}
		e := &s.Visible[idx]
		if e.IsDir() && !e.Expanded {
			e.Expanded = true
			statepkg.Rebuild(s)
		}
	}

	if idx := statepkg.EntryIndex(s, target); idx >= 0 {
		s.Cursor = idx
	}
}
