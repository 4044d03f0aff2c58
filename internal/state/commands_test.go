package state

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bresilla/lis/internal/fs"
)

func TestToggleSelectMarksAndAdvances(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root, "a.txt", "b.txt")

	s := buildState(t, root)
	moveCursorTo(t, s, "a.txt")
	r := NewReducer()

	r.Reduce(s, ToggleSelectAction{})
	if len(s.Selected) != 1 {
		t.Fatalf("Expected 1 selected, got %d", len(s.Selected))
	}
	if got := s.Visible[s.Cursor].Name; got != "b.txt" {
		t.Errorf("Cursor on %q, should advance to b.txt", got)
	}

	// Selection survives a rebuild: it is keyed by canonical path.
	Rebuild(s)
	idx := EntryIndex(s, fs.Canonical(filepath.Join(root, "a.txt")))
	if idx < 0 || !s.Visible[idx].Selected {
		t.Errorf("a.txt should stay selected across rebuilds")
	}
}

func TestToggleSelectTwiceDeselects(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root, "a.txt", "b.txt")

	s := buildState(t, root)
	moveCursorTo(t, s, "a.txt")
	r := NewReducer()

	r.Reduce(s, ToggleSelectAction{})
	moveCursorTo(t, s, "a.txt")
	r.Reduce(s, ToggleSelectAction{})

	if len(s.Selected) != 0 {
		t.Errorf("Expected empty selection, got %d", len(s.Selected))
	}
}

func TestSelectAllAndClear(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root, "a.txt", "b.txt")

	s := buildState(t, root)
	r := NewReducer()

	r.Reduce(s, SelectAllAction{})
	if len(s.Selected) != len(s.Visible) {
		t.Errorf("Expected %d selected, got %d", len(s.Visible), len(s.Selected))
	}

	r.Reduce(s, ClearSelectionAction{})
	if len(s.Selected) != 0 {
		t.Errorf("Selection should be empty")
	}
	for i := range s.Visible {
		if s.Visible[i].Selected {
			t.Errorf("%s still flagged selected", s.Visible[i].Name)
		}
	}
}

func TestCopyWithoutSelectionUsesCursor(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root, "a.txt", "b.txt")

	s := buildState(t, root)
	moveCursorTo(t, s, "a.txt")
	r := NewReducer()

	r.Reduce(s, CopyAction{})
	if len(s.Clipboard.Paths) != 1 || s.Clipboard.IsCut {
		t.Fatalf("Clipboard = %+v, want one copied path", s.Clipboard)
	}
	if s.Message != "1 file(s) copied" {
		t.Errorf("Message = %q", s.Message)
	}
}

func TestPasteWithEmptyClipboard(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root, "a.txt")

	s := buildState(t, root)
	r := NewReducer()

	r.Reduce(s, PasteAction{})
	if s.Message != "Nothing to paste" {
		t.Errorf("Message = %q", s.Message)
	}
}

func TestCopyPasteIntoDirectory(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root, "a.txt", "dest/")

	s := buildState(t, root)
	moveCursorTo(t, s, "a.txt")
	r := NewReducer()
	r.Reduce(s, CopyAction{})

	moveCursorTo(t, s, "dest")
	r.Reduce(s, PasteAction{})

	if !fs.Exists(filepath.Join(root, "dest", "a.txt")) {
		t.Fatalf("a.txt not copied into dest")
	}
	if !fs.Exists(filepath.Join(root, "a.txt")) {
		t.Errorf("Copy should leave the source in place")
	}
	if s.Message != "1 file(s) pasted" {
		t.Errorf("Message = %q", s.Message)
	}
	// A copy clipboard stays reusable.
	if len(s.Clipboard.Paths) != 1 {
		t.Errorf("Clipboard should survive a copy-paste")
	}
}

func TestCutPasteMovesAndConsumesClipboard(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root, "a.txt", "dest/")

	s := buildState(t, root)
	moveCursorTo(t, s, "a.txt")
	r := NewReducer()
	r.Reduce(s, ToggleSelectAction{})
	r.Reduce(s, CutAction{})

	moveCursorTo(t, s, "dest")
	r.Reduce(s, PasteAction{})

	if !fs.Exists(filepath.Join(root, "dest", "a.txt")) {
		t.Fatalf("a.txt not moved into dest")
	}
	if fs.Exists(filepath.Join(root, "a.txt")) {
		t.Errorf("Cut-paste should remove the source")
	}
	if len(s.Clipboard.Paths) != 0 {
		t.Errorf("Cut clipboard should be consumed")
	}
	if len(s.Selected) != 0 {
		t.Errorf("Selection should be cleared after a cut-paste")
	}
}

func TestPasteDirectoryRecursive(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root, "src/", "src/inner/", "src/inner/deep.txt", "dest/")

	s := buildState(t, root)
	moveCursorTo(t, s, "src")
	r := NewReducer()
	r.Reduce(s, CopyAction{})

	moveCursorTo(t, s, "dest")
	r.Reduce(s, PasteAction{})

	if !fs.Exists(filepath.Join(root, "dest", "src", "inner", "deep.txt")) {
		t.Errorf("Directory copy should be recursive")
	}
}

func TestPastePartialFailure(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root, "a.txt", "dest/")

	s := buildState(t, root)
	s.Clipboard = Clipboard{Paths: []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "vanished.txt"),
	}}
	moveCursorTo(t, s, "dest")
	r := NewReducer()

	r.Reduce(s, PasteAction{})
	if !strings.HasPrefix(s.Message, "1 of 2 file(s) pasted") {
		t.Errorf("Message = %q, want partial-failure count", s.Message)
	}
	if !fs.Exists(filepath.Join(root, "dest", "a.txt")) {
		t.Errorf("Surviving item should still be pasted")
	}
}

func TestDeleteSelection(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root, "a.txt", "b.txt", "c.txt")

	s := buildState(t, root)
	moveCursorTo(t, s, "a.txt")
	r := NewReducer()
	r.Reduce(s, ToggleSelectAction{})
	moveCursorTo(t, s, "b.txt")
	r.Reduce(s, ToggleSelectAction{})

	r.Reduce(s, DeleteAction{})
	if fs.Exists(filepath.Join(root, "a.txt")) || fs.Exists(filepath.Join(root, "b.txt")) {
		t.Errorf("Selected files should be deleted")
	}
	if !fs.Exists(filepath.Join(root, "c.txt")) {
		t.Errorf("Unselected file should survive")
	}
	if s.Message != "2 file(s) deleted" {
		t.Errorf("Message = %q", s.Message)
	}
	if len(s.Selected) != 0 {
		t.Errorf("Selection should be cleared after delete")
	}
}

func TestDeletePartialFailure(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root, "a.txt", "blocker.txt")

	s := buildState(t, root)
	// A path routed through a regular file cannot be removed; the batch
	// must carry on past it.
	s.Selected[fs.Canonical(filepath.Join(root, "a.txt"))] = struct{}{}
	s.Selected[filepath.Join(root, "blocker.txt", "impossible")] = struct{}{}
	r := NewReducer()

	r.Reduce(s, DeleteAction{})
	if !strings.HasPrefix(s.Message, "1 of 2 file(s) deleted") {
		t.Errorf("Message = %q, want partial-failure count", s.Message)
	}
	if fs.Exists(filepath.Join(root, "a.txt")) {
		t.Errorf("Deletable file should still be removed")
	}
	if !fs.Exists(filepath.Join(root, "blocker.txt")) {
		t.Errorf("Blocking file should be untouched")
	}
	if len(s.Selected) != 0 {
		t.Errorf("Selection should be cleared even after a failure")
	}
}

func TestDeleteCursorEntry(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root, "doomed/", "doomed/x.txt", "keep.txt")

	s := buildState(t, root)
	moveCursorTo(t, s, "doomed")
	r := NewReducer()

	r.Reduce(s, DeleteAction{})
	if fs.Exists(filepath.Join(root, "doomed")) {
		t.Errorf("Directory should be deleted recursively")
	}
	if s.Message != "1 file(s) deleted" {
		t.Errorf("Message = %q", s.Message)
	}
}

func TestRenameFile(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root, "old.txt")

	s := buildState(t, root)
	moveCursorTo(t, s, "old.txt")
	r := NewReducer()

	r.Reduce(s, RenameAction{NewName: "new.txt"})
	if !fs.Exists(filepath.Join(root, "new.txt")) || fs.Exists(filepath.Join(root, "old.txt")) {
		t.Errorf("File not renamed")
	}
	if s.Message != "Renamed to: new.txt" {
		t.Errorf("Message = %q", s.Message)
	}
}

func TestRenameRootRefused(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root, "a.txt")

	s := buildState(t, root)
	s.Cursor = 0
	r := NewReducer()

	r.Reduce(s, RenameAction{NewName: "other"})
	if s.Message != "Cannot rename root" {
		t.Errorf("Message = %q", s.Message)
	}
	if !fs.Exists(root) {
		t.Errorf("Root must survive")
	}
}

func TestRenameEmptyNameCancelled(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root, "a.txt")

	s := buildState(t, root)
	moveCursorTo(t, s, "a.txt")
	r := NewReducer()

	r.Reduce(s, RenameAction{})
	if s.Message != "Rename cancelled" {
		t.Errorf("Message = %q", s.Message)
	}
	if !fs.Exists(filepath.Join(root, "a.txt")) {
		t.Errorf("File should be untouched")
	}
}

func TestCreateFileInCursorDirectory(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root, "sub/")

	s := buildState(t, root)
	moveCursorTo(t, s, "sub")
	r := NewReducer()

	r.Reduce(s, CreateFileAction{Name: "fresh.txt"})
	if !fs.Exists(filepath.Join(root, "sub", "fresh.txt")) {
		t.Errorf("fresh.txt not created in sub")
	}
	if s.Message != "Created file: fresh.txt" {
		t.Errorf("Message = %q", s.Message)
	}
}

func TestCreateFileRefusesExisting(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root, "taken.txt")

	s := buildState(t, root)
	s.Cursor = 0
	r := NewReducer()

	r.Reduce(s, CreateFileAction{Name: "taken.txt"})
	if !strings.HasPrefix(s.Message, "Error:") {
		t.Errorf("Message = %q, want an error", s.Message)
	}
	data, err := os.ReadFile(filepath.Join(root, "taken.txt"))
	if err != nil || string(data) != "x" {
		t.Errorf("Existing file was clobbered")
	}
}

func TestCreateDirectory(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root, "a.txt")

	s := buildState(t, root)
	moveCursorTo(t, s, "a.txt")
	r := NewReducer()

	// The cursor is on a file, so the new directory lands in its parent.
	r.Reduce(s, CreateDirAction{Name: "made"})
	info, err := os.Stat(filepath.Join(root, "made"))
	if err != nil || !info.IsDir() {
		t.Errorf("Directory not created: %v", err)
	}
	if s.Message != "Created directory: made" {
		t.Errorf("Message = %q", s.Message)
	}
}

func TestCreateEmptyNameCancelled(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root, "a.txt")

	s := buildState(t, root)
	r := NewReducer()

	r.Reduce(s, CreateFileAction{})
	if s.Message != "Create cancelled" {
		t.Errorf("Message = %q", s.Message)
	}
}
