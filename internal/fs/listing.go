package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bresilla/lis/internal/icons"
	"golang.org/x/text/unicode/norm"
)

// ListOptions carries the display options the snapshot depends on.
type ListOptions struct {
	ShowHidden   bool
	Sort         SortMode
	GenericIcons bool
}

// ListDir produces the snapshot of dir's immediate children at the given
// depth: hidden filtering, symlink classification, best-effort metadata and
// the two-group (directories first) sort. A failure to iterate dir itself is
// returned as an error; per-entry metadata failures only zero the affected
// fields.
func ListDir(dir string, depth int, opts ListOptions) ([]Entry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", dir, err)
	}

	var dirs, files []Entry
	for _, de := range dirents {
		rawName := de.Name()
		hidden := IsHiddenName(rawName)
		if hidden && !opts.ShowHidden {
			continue
		}

		fullPath := filepath.Join(dir, rawName)
		e := Entry{
			Name:   norm.NFC.String(rawName),
			Path:   fullPath,
			Canon:  Canonical(fullPath),
			Depth:  depth,
			Hidden: hidden,
		}
		if dot := strings.LastIndexByte(rawName, '.'); dot >= 0 {
			e.Ext = rawName[dot+1:]
		}

		// Metadata is best effort: an unreadable entry still gets listed.
		if info, err := de.Info(); err == nil {
			e.ReadOnly = info.Mode().Perm()&0o200 == 0
			if info.Mode().IsRegular() {
				e.Size = info.Size()
			}
			e.ModTime = info.ModTime()
		}

		if de.Type()&os.ModeSymlink != 0 {
			// Classify by the resolved target; a broken link stays a symlink
			// with the file-symlink icon.
			target, err := os.Stat(fullPath)
			switch {
			case err == nil && target.IsDir():
				e.Kind = KindDirectory
				e.Icon = icons.FolderSymlink
				dirs = append(dirs, e)
			case err == nil:
				e.Kind = KindFile
				e.Size = target.Size()
				e.ModTime = target.ModTime()
				e.Icon = fileIcon(e.Name, true, opts.GenericIcons)
				files = append(files, e)
			default:
				e.Kind = KindSymlink
				e.Icon = fileIcon(e.Name, true, opts.GenericIcons)
				files = append(files, e)
			}
			continue
		}

		if de.IsDir() {
			e.Kind = KindDirectory
			e.Icon = icons.FolderClosed
			dirs = append(dirs, e)
		} else {
			e.Kind = KindFile
			e.Icon = fileIcon(e.Name, false, opts.GenericIcons)
			files = append(files, e)
		}
	}

	sortGroup(dirs, opts.Sort)
	sortGroup(files, opts.Sort)
	return append(dirs, files...), nil
}

func fileIcon(name string, symlink, generic bool) string {
	if generic {
		return icons.FileDefault
	}
	return icons.FileIcon(name, symlink)
}
