package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Mutation primitives. Each returns a descriptive error that the engine
// surfaces verbatim in the status line; none of them aborts a batch on its
// own.

// Move renames src to dest, falling back to copy+remove across devices.
func Move(src, dest string) error {
	if err := os.Rename(src, dest); err == nil {
		return nil
	}
	if err := CopyRecursive(src, dest); err != nil {
		return err
	}
	return Remove(src)
}

// CopyRecursive copies src (file, symlink or directory tree) to dest.
func CopyRecursive(src, dest string) error {
	info, err := os.Lstat(src)
	if err != nil {
		return fmt.Errorf("cannot stat %s: %w", src, err)
	}

	switch {
	case info.Mode()&os.ModeSymlink != 0:
		target, err := os.Readlink(src)
		if err != nil {
			return fmt.Errorf("cannot read link %s: %w", src, err)
		}
		if err := os.Symlink(target, dest); err != nil {
			return fmt.Errorf("cannot create link %s: %w", dest, err)
		}
		return nil

	case info.IsDir():
		if err := os.MkdirAll(dest, info.Mode().Perm()); err != nil {
			return fmt.Errorf("cannot create directory %s: %w", dest, err)
		}
		children, err := os.ReadDir(src)
		if err != nil {
			return fmt.Errorf("cannot read directory %s: %w", src, err)
		}
		for _, c := range children {
			if err := CopyRecursive(filepath.Join(src, c.Name()), filepath.Join(dest, c.Name())); err != nil {
				return err
			}
		}
		return nil

	default:
		return copyFile(src, dest, info.Mode().Perm())
	}
}

func copyFile(src, dest string, perm os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("cannot open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", dest, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("cannot copy %s: %w", src, err)
	}
	return out.Close()
}

// Remove deletes p and everything below it.
func Remove(p string) error {
	if err := os.RemoveAll(p); err != nil {
		return fmt.Errorf("cannot remove %s: %w", p, err)
	}
	return nil
}

// Rename moves a single entry to a new name in place.
func Rename(oldPath, newPath string) error {
	if err := os.Rename(oldPath, newPath); err != nil {
		return fmt.Errorf("cannot rename %s: %w", oldPath, err)
	}
	return nil
}

// CreateFile creates an empty file; an existing file is an error rather than
// a silent truncation.
func CreateFile(p string) error {
	f, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", p, err)
	}
	return f.Close()
}

// CreateDir creates a directory, including missing parents.
func CreateDir(p string) error {
	if err := os.MkdirAll(p, 0o755); err != nil {
		return fmt.Errorf("cannot create directory %s: %w", p, err)
	}
	return nil
}
