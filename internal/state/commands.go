package state

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/bresilla/lis/internal/fs"
)

// Selection, clipboard and mutation commands. Batch operations never abort
// on a per-item failure: the failure is folded into the status message and
// the remaining items are still attempted.

func (r *Reducer) toggleSelect(s *TreeState) {
	e := s.CurrentEntry()
	if e == nil {
		return
	}
	if _, ok := s.Selected[e.Canon]; ok {
		delete(s.Selected, e.Canon)
		e.Selected = false
	} else {
		s.Selected[e.Canon] = struct{}{}
		e.Selected = true
	}
	if s.Cursor+1 < len(s.Visible) {
		s.Cursor++
	}
}

func (r *Reducer) selectAll(s *TreeState) {
	for i := range s.Visible {
		e := &s.Visible[i]
		s.Selected[e.Canon] = struct{}{}
		e.Selected = true
	}
}

func (r *Reducer) clearSelection(s *TreeState) {
	s.Selected = make(map[string]struct{})
	for i := range s.Visible {
		s.Visible[i].Selected = false
	}
}

// selectionPaths returns the selected canonical paths in sorted order, or
// the cursor entry's path when nothing is selected.
func (s *TreeState) selectionPaths() []string {
	if len(s.Selected) == 0 {
		if e := s.CurrentEntry(); e != nil {
			return []string{e.Path}
		}
		return nil
	}
	paths := make([]string, 0, len(s.Selected))
	for p := range s.Selected {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func (r *Reducer) fillClipboard(s *TreeState, cut bool) {
	s.Clipboard = Clipboard{Paths: s.selectionPaths(), IsCut: cut}
	verb := "copied"
	if cut {
		verb = "cut"
	}
	s.Message = fmt.Sprintf("%d file(s) %s", len(s.Clipboard.Paths), verb)
}

// destinationDir resolves where paste/create should land: the cursor entry
// when it is a directory, else its parent, else the root.
func (s *TreeState) destinationDir() string {
	e := s.CurrentEntry()
	if e == nil {
		return s.Root
	}
	if e.IsDir() {
		return e.Path
	}
	return filepath.Dir(e.Path)
}

func (r *Reducer) paste(s *TreeState) {
	if len(s.Clipboard.Paths) == 0 {
		s.Message = "Nothing to paste"
		return
	}

	destDir := s.destinationDir()
	attempted := len(s.Clipboard.Paths)
	success := 0
	var lastErr error
	for _, src := range s.Clipboard.Paths {
		dest := filepath.Join(destDir, filepath.Base(src))
		var err error
		if s.Clipboard.IsCut {
			err = fs.Move(src, dest)
		} else {
			err = fs.CopyRecursive(src, dest)
		}
		if err != nil {
			lastErr = err
			continue
		}
		success++
	}

	// A cut is consumed by the paste; a copy clipboard stays reusable.
	if s.Clipboard.IsCut {
		s.Clipboard = Clipboard{}
		r.clearSelection(s)
	}

	if lastErr != nil {
		s.Message = fmt.Sprintf("%d of %d file(s) pasted (%v)", success, attempted, lastErr)
	} else {
		s.Message = fmt.Sprintf("%d file(s) pasted", success)
	}
	s.RefreshGit()
	Rebuild(s)
}

func (r *Reducer) deleteEntries(s *TreeState) {
	targets := s.selectionPaths()
	if len(targets) == 0 {
		return
	}

	success := 0
	var lastErr error
	for _, p := range targets {
		if err := fs.Remove(p); err != nil {
			lastErr = err
			continue
		}
		success++
	}

	r.clearSelection(s)
	if lastErr != nil {
		s.Message = fmt.Sprintf("%d of %d file(s) deleted (%v)", success, len(targets), lastErr)
	} else {
		s.Message = fmt.Sprintf("%d file(s) deleted", success)
	}
	s.RefreshGit()
	Rebuild(s)
}

func (r *Reducer) rename(s *TreeState, newName string) {
	e := s.CurrentEntry()
	if e == nil {
		return
	}
	if e.Depth == 0 {
		s.Message = "Cannot rename root"
		return
	}
	if newName == "" {
		s.Message = "Rename cancelled"
		return
	}

	newPath := filepath.Join(filepath.Dir(e.Path), newName)
	if err := fs.Rename(e.Path, newPath); err != nil {
		s.Message = fmt.Sprintf("Error: %v", err)
		return
	}
	s.Message = "Renamed to: " + newName
	s.RefreshGit()
	Rebuild(s)
}

func (r *Reducer) createNew(s *TreeState, name string, isDir bool) {
	if name == "" {
		s.Message = "Create cancelled"
		return
	}

	newPath := filepath.Join(s.destinationDir(), name)
	var err error
	if isDir {
		err = fs.CreateDir(newPath)
	} else {
		err = fs.CreateFile(newPath)
	}
	if err != nil {
		s.Message = fmt.Sprintf("Error: %v", err)
		return
	}
	if isDir {
		s.Message = "Created directory: " + name
	} else {
		s.Message = "Created file: " + name
	}
	s.RefreshGit()
	Rebuild(s)
}
