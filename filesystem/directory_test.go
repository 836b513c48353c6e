package filesystem

import (
	"testing"

	"github.com/brettbedarf/ysh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestDir returns an initialized root-like directory in a fresh table
func newTestDir(t *testing.T) (*InodeTable, *Inode) {
	t.Helper()
	table := NewInodeTable()
	dir := table.Create(ysh.DirectoryType)
	require.NoError(t, dir.dir.Init(dir, dir))
	return table, dir
}

func TestDirectory_NewHasUnresolvedReservedEntries(t *testing.T) {
	t.Parallel()

	table := NewInodeTable()
	dir := table.Create(ysh.DirectoryType)

	assert.Equal(t, 2, dir.Size())
	_, ok := dir.dir.Lookup(CurDir)
	assert.False(t, ok, "\".\" must be unresolved before Init")
	assert.Empty(t, dir.dir.Entries())
}

func TestDirectory_Init(t *testing.T) {
	t.Parallel()

	table, parent := newTestDir(t)
	child := table.Create(ysh.DirectoryType)

	require.NoError(t, child.dir.Init(parent, child))

	self, ok := child.dir.Lookup(CurDir)
	require.True(t, ok)
	assert.Same(t, child, self)
	up, ok := child.dir.Lookup(ParentDir)
	require.True(t, ok)
	assert.Same(t, parent, up)

	t.Run("SecondInitFails", func(t *testing.T) {
		assert.Error(t, child.dir.Init(parent, child))
	})

	t.Run("ForeignSelfFails", func(t *testing.T) {
		other := table.Create(ysh.DirectoryType)
		assert.Error(t, other.dir.Init(parent, child))
	})
}

func TestDirectory_MakeSubdir(t *testing.T) {
	t.Parallel()

	_, dir := newTestDir(t)

	sub, err := dir.MakeSubdir("a")
	require.NoError(t, err)
	assert.True(t, sub.IsDir())
	assert.Equal(t, 3, dir.Size())

	t.Run("DuplicateDirectory", func(t *testing.T) {
		_, err := dir.MakeSubdir("a")
		require.ErrorIs(t, err, ysh.ErrAlreadyExists)
		assert.Equal(t, "a: Directory already exists", err.Error())
	})

	t.Run("NameTakenByFile", func(t *testing.T) {
		_, err := dir.MakeFile("f")
		require.NoError(t, err)
		_, err = dir.MakeSubdir("f")
		require.ErrorIs(t, err, ysh.ErrAlreadyExists)
		assert.Equal(t, "f: File already exists", err.Error())
	})

	t.Run("ReservedName", func(t *testing.T) {
		_, err := dir.MakeSubdir(CurDir)
		assert.ErrorIs(t, err, ysh.ErrAlreadyExists)
	})
}

func TestDirectory_MakeFile(t *testing.T) {
	t.Parallel()

	_, dir := newTestDir(t)

	f, err := dir.MakeFile("f")
	require.NoError(t, err)
	assert.False(t, f.IsDir())

	t.Run("ExistingFileReusesInode", func(t *testing.T) {
		again, err := dir.MakeFile("f")
		require.NoError(t, err)
		assert.Same(t, f, again)
		assert.Equal(t, f.ID(), again.ID())
	})

	t.Run("ExistingDirectory", func(t *testing.T) {
		_, err := dir.MakeSubdir("d")
		require.NoError(t, err)
		_, err = dir.MakeFile("d")
		require.ErrorIs(t, err, ysh.ErrIsADirectory)
		assert.Equal(t, "d: Is a directory", err.Error())
	})
}

func TestDirectory_Remove(t *testing.T) {
	t.Parallel()

	table, dir := newTestDir(t)

	t.Run("Missing", func(t *testing.T) {
		err := dir.Remove("nosuch")
		require.ErrorIs(t, err, ysh.ErrNotFound)
		assert.Equal(t, "nosuch: No such file or directory", err.Error())
	})

	t.Run("Reserved", func(t *testing.T) {
		assert.ErrorIs(t, dir.Remove(CurDir), ysh.ErrReservedEntry)
		assert.ErrorIs(t, dir.Remove(ParentDir), ysh.ErrReservedEntry)
		assert.Equal(t, 2, dir.Size())
	})

	t.Run("File", func(t *testing.T) {
		f, err := dir.MakeFile("f")
		require.NoError(t, err)
		require.NoError(t, f.WriteFile([]string{"x"}))

		require.NoError(t, dir.Remove("f"))

		_, ok := dir.dir.Lookup("f")
		assert.False(t, ok)
		_, ok = table.Get(f.ID())
		assert.False(t, ok, "removed inode must be forgotten")
		assert.Equal(t, 0, f.Size(), "removed file content must be cleared")
	})

	t.Run("NonEmptyDirectory", func(t *testing.T) {
		tree := &Tree{table: table, root: dir, cwd: dir}
		sub, err := tree.MakeDir(dir, "full")
		require.NoError(t, err)
		_, err = sub.MakeFile("inner")
		require.NoError(t, err)

		err = dir.Remove("full")
		require.ErrorIs(t, err, ysh.ErrDirectoryNotEmpty)
		_, ok := dir.dir.Lookup("full")
		assert.True(t, ok)
	})

	t.Run("EmptyDirectory", func(t *testing.T) {
		tree := &Tree{table: table, root: dir, cwd: dir}
		sub, err := tree.MakeDir(dir, "empty")
		require.NoError(t, err)
		require.Equal(t, 2, sub.Size())

		require.NoError(t, dir.Remove("empty"))
		_, ok := table.Get(sub.ID())
		assert.False(t, ok)
	})
}

func TestDirectory_EntriesSortedByName(t *testing.T) {
	t.Parallel()

	_, dir := newTestDir(t)
	for _, name := range []string{"zeta", "alpha", "mid"} {
		_, err := dir.MakeFile(name)
		require.NoError(t, err)
	}

	var names []string
	for _, e := range dir.dir.Entries() {
		names = append(names, e.Name)
	}

	assert.Equal(t, []string{".", "..", "alpha", "mid", "zeta"}, names)
}
