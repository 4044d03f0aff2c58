package fs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bresilla/lis/internal/icons"
)

func writeFixture(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
}

func entryNames(entries []Entry) []string {
	names := make([]string, len(entries))
	for i := range entries {
		names[i] = entries[i].Name
	}
	return names
}

func TestListDirDirectoriesFirst(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, map[string]string{"aaa.txt": "x", "zzz.txt": "x"})
	require.NoError(t, os.Mkdir(filepath.Join(dir, "mmm"), 0o755))

	entries, err := ListDir(dir, 1, ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"mmm", "aaa.txt", "zzz.txt"}, entryNames(entries))
	assert.Equal(t, KindDirectory, entries[0].Kind)
}

func TestListDirHiddenFilter(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, map[string]string{".hidden": "x", "plain.txt": "x"})

	entries, err := ListDir(dir, 1, ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"plain.txt"}, entryNames(entries))

	entries, err = ListDir(dir, 1, ListOptions{ShowHidden: true})
	require.NoError(t, err)
	assert.Equal(t, []string{".hidden", "plain.txt"}, entryNames(entries))
	assert.True(t, entries[0].Hidden)
	assert.False(t, entries[1].Hidden)
}

func TestListDirMetadata(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, map[string]string{"data.tar.gz": "12345"})

	entries, err := ListDir(dir, 3, ListOptions{})
	require.NoError(t, err)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, 3, e.Depth)
	assert.Equal(t, "gz", e.Ext)
	assert.Equal(t, int64(5), e.Size)
	assert.WithinDuration(t, time.Now(), e.ModTime, time.Minute)
	assert.False(t, e.ReadOnly)
}

func TestListDirReadOnlyFlag(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "locked.txt")
	require.NoError(t, os.WriteFile(p, []byte("x"), 0o444))

	entries, err := ListDir(dir, 1, ListOptions{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].ReadOnly)
}

func TestListDirSymlinkClassification(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "real"), 0o755))
	writeFixture(t, dir, map[string]string{"file.txt": "abc"})
	require.NoError(t, os.Symlink(filepath.Join(dir, "real"), filepath.Join(dir, "dirlink")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "file.txt"), filepath.Join(dir, "filelink")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone"), filepath.Join(dir, "broken")))

	entries, err := ListDir(dir, 1, ListOptions{})
	require.NoError(t, err)

	byName := map[string]Entry{}
	for _, e := range entries {
		byName[e.Name] = e
	}

	assert.Equal(t, KindDirectory, byName["dirlink"].Kind)
	assert.Equal(t, icons.FolderSymlink, byName["dirlink"].Icon)

	assert.Equal(t, KindFile, byName["filelink"].Kind)
	assert.Equal(t, int64(3), byName["filelink"].Size, "file symlink takes the target size")

	assert.Equal(t, KindSymlink, byName["broken"].Kind)
	assert.Equal(t, icons.FileSymlink, byName["broken"].Icon)

	// Directory symlinks group with directories.
	assert.Equal(t, "dirlink", entries[0].Name)
}

func TestListDirSortModes(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, map[string]string{
		"big.a":   "123456789",
		"small.c": "1",
		"mid.b":   "12345",
	})

	cases := []struct {
		mode SortMode
		want []string
	}{
		{SortName, []string{"big.a", "mid.b", "small.c"}},
		{SortNameRev, []string{"small.c", "mid.b", "big.a"}},
		{SortExt, []string{"big.a", "mid.b", "small.c"}},
		{SortExtRev, []string{"small.c", "mid.b", "big.a"}},
		{SortSize, []string{"small.c", "mid.b", "big.a"}},
		{SortSizeRev, []string{"big.a", "mid.b", "small.c"}},
	}
	for _, tc := range cases {
		entries, err := ListDir(dir, 1, ListOptions{Sort: tc.mode})
		require.NoError(t, err)
		assert.Equal(t, tc.want, entryNames(entries), "mode %s", tc.mode)
	}
}

func TestListDirTimeSort(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, map[string]string{"old.txt": "x", "new.txt": "x"})
	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(dir, "old.txt"), past, past))

	entries, err := ListDir(dir, 1, ListOptions{Sort: SortTime})
	require.NoError(t, err)
	assert.Equal(t, []string{"old.txt", "new.txt"}, entryNames(entries))

	entries, err = ListDir(dir, 1, ListOptions{Sort: SortTimeRev})
	require.NoError(t, err)
	assert.Equal(t, []string{"new.txt", "old.txt"}, entryNames(entries))
}

func TestListDirGenericIcons(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, map[string]string{"main.go": "x"})

	entries, err := ListDir(dir, 1, ListOptions{GenericIcons: true})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, icons.FileDefault, entries[0].Icon)
}

func TestListDirMissing(t *testing.T) {
	_, err := ListDir(filepath.Join(t.TempDir(), "absent"), 1, ListOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot read directory")
}
