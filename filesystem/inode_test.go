package filesystem

import (
	"testing"

	"github.com/brettbedarf/ysh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInodeTable_Create(t *testing.T) {
	t.Parallel()

	table := NewInodeTable()

	dir := table.Create(ysh.DirectoryType)
	file := table.Create(ysh.PlainType)

	assert.Equal(t, RootIno, dir.ID(), "first inode must be number 1")
	assert.Equal(t, RootIno+1, file.ID())
	assert.Equal(t, ysh.DirectoryType, dir.Type())
	assert.Equal(t, ysh.PlainType, file.Type())
	assert.Equal(t, 2, table.Len())

	got, ok := table.Get(file.ID())
	require.True(t, ok)
	assert.Same(t, file, got)
}

func TestInodeTable_IDsNeverReused(t *testing.T) {
	t.Parallel()

	table := NewInodeTable()
	first := table.Create(ysh.PlainType)
	table.Forget(first.ID())

	second := table.Create(ysh.PlainType)

	assert.Greater(t, second.ID(), first.ID())
	_, ok := table.Get(first.ID())
	assert.False(t, ok, "forgotten inode must not be reachable")
	assert.Equal(t, 1, table.Len())
}

func TestPlainFile_Size(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		words []string
		want  int
	}{
		{"empty", nil, 0},
		{"single_word", []string{"hello"}, 5},
		{"two_words", []string{"hello", "world"}, 11},
		{"empty_words_still_separated", []string{"", ""}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := &PlainFile{}
			f.Write(tt.words)
			assert.Equal(t, tt.want, f.Size())
		})
	}
}

func TestPlainFile_WriteReplacesAndCopies(t *testing.T) {
	t.Parallel()

	f := &PlainFile{}
	words := []string{"a", "b", "c"}
	f.Write(words)
	words[0] = "mutated"

	assert.Equal(t, []string{"a", "b", "c"}, f.Read(), "write must copy its input")

	f.Write([]string{"z"})
	assert.Equal(t, []string{"z"}, f.Read(), "write must replace, not append")

	out := f.Read()
	out[0] = "mutated"
	assert.Equal(t, []string{"z"}, f.Read(), "read must return a copy")
}

func TestInode_TypeChecks(t *testing.T) {
	t.Parallel()

	table := NewInodeTable()
	dir := table.Create(ysh.DirectoryType)
	require.NoError(t, dir.dir.Init(dir, dir))
	file := table.Create(ysh.PlainType)

	t.Run("FileOpsOnDirectory", func(t *testing.T) {
		t.Parallel()
		_, err := dir.ReadFile()
		assert.ErrorIs(t, err, ysh.ErrIsADirectory)
		assert.ErrorIs(t, dir.WriteFile([]string{"x"}), ysh.ErrIsADirectory)
	})

	t.Run("DirOpsOnFile", func(t *testing.T) {
		t.Parallel()
		_, err := file.MakeSubdir("x")
		assert.ErrorIs(t, err, ysh.ErrNotADirectory)
		_, err = file.MakeFile("x")
		assert.ErrorIs(t, err, ysh.ErrNotADirectory)
		assert.ErrorIs(t, file.Remove("x"), ysh.ErrNotADirectory)
		_, err = file.Lookup("x")
		assert.ErrorIs(t, err, ysh.ErrNotADirectory)
	})
}

func TestInode_ReadWriteFile(t *testing.T) {
	t.Parallel()

	file := NewInodeTable().Create(ysh.PlainType)

	require.NoError(t, file.WriteFile([]string{"hello", "world"}))
	words, err := file.ReadFile()

	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "world"}, words)
	assert.Equal(t, 11, file.Size())
}
