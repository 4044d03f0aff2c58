package fs

import (
	"os"
	"path/filepath"
)

// Canonical resolves p to an absolute, symlink-normalized form. Paths are
// compared by this form everywhere (selection set, expansion set, git status
// keys), so it must be total: for a path that does not exist yet, the longest
// existing ancestor is resolved and the remainder re-appended.
func Canonical(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}

	dir := abs
	var tail []string
	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		tail = append(tail, filepath.Base(dir))
		dir = parent
		if resolved, err := filepath.EvalSymlinks(dir); err == nil {
			for i := len(tail) - 1; i >= 0; i-- {
				resolved = filepath.Join(resolved, tail[i])
			}
			return resolved
		}
	}
	return abs
}

// IsHiddenName reports whether a bare file name is a dotfile.
func IsHiddenName(name string) bool {
	return len(name) > 0 && name[0] == '.'
}

// Exists reports whether the path can be stat'ed (following symlinks).
func Exists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
