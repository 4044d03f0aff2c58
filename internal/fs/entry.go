package fs

import (
	"time"

	"github.com/bresilla/lis/internal/git"
)

// EntryKind is a closed set; dispatch on it with a switch rather than
// wrapping entries in interfaces.
type EntryKind uint8

const (
	KindDirectory EntryKind = iota
	KindFile
	KindSymlink
)

// Entry is one row of the visible tree. Entries are owned by the visible
// list and rebuilt wholesale on every reconciliation; holding one across a
// rebuild is a bug.
type Entry struct {
	Name  string
	Path  string // absolute
	Canon string // canonicalized, the stable identity key
	Kind  EntryKind
	Git   git.Kind

	Hidden   bool
	ReadOnly bool
	Selected bool

	// Tree bookkeeping, recomputed by the reconciler.
	Depth           int
	IsLast          bool
	AncestorHasMore []bool

	Expanded bool
	Icon     string

	Size    int64
	ModTime time.Time
	Ext     string
}

// IsDir reports whether the entry behaves as a directory in the tree,
// including symlinks that resolve to directories.
func (e *Entry) IsDir() bool {
	return e.Kind == KindDirectory
}
