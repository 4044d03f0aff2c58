package fs

import "sort"

// SortMode selects one of the eight total orders for a sibling group.
// Directories always precede files regardless of mode.
type SortMode uint8

const (
	SortName SortMode = iota
	SortExt
	SortSize
	SortTime
	SortNameRev
	SortExtRev
	SortSizeRev
	SortTimeRev

	sortModeCount = 8
)

// Next cycles to the following sort mode.
func (m SortMode) Next() SortMode {
	return SortMode((uint8(m) + 1) % sortModeCount)
}

func (m SortMode) String() string {
	switch m {
	case SortName:
		return "name"
	case SortNameRev:
		return "name-rev"
	case SortExt:
		return "ext"
	case SortExtRev:
		return "ext-rev"
	case SortSize:
		return "size"
	case SortSizeRev:
		return "size-rev"
	case SortTime:
		return "time"
	case SortTimeRev:
		return "time-rev"
	default:
		return "name"
	}
}

// less is the ordering predicate within one group. Comparisons are
// case-sensitive; equal keys keep their listing order (the sort is stable).
func (m SortMode) less(a, b *Entry) bool {
	switch m {
	case SortName:
		return a.Name < b.Name
	case SortNameRev:
		return a.Name > b.Name
	case SortExt:
		return a.Ext < b.Ext
	case SortExtRev:
		return a.Ext > b.Ext
	case SortSize:
		return a.Size < b.Size
	case SortSizeRev:
		return a.Size > b.Size
	case SortTime:
		return a.ModTime.Before(b.ModTime)
	case SortTimeRev:
		return b.ModTime.Before(a.ModTime)
	default:
		return a.Name < b.Name
	}
}

// sortGroup stably orders one sibling group in place.
func sortGroup(entries []Entry, mode SortMode) {
	sort.SliceStable(entries, func(i, j int) bool {
		return mode.less(&entries[i], &entries[j])
	})
}
