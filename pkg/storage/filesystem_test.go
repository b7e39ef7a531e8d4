package storage

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndOpenRoundTrip(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	name, err := store.Save("report.csv", []byte("a,b\n1,2\n"))
	require.NoError(t, err)
	assert.Equal(t, "report.csv", name)

	file, err := store.Open("report.csv")
	require.NoError(t, err)
	defer file.Close()

	data, err := io.ReadAll(file)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", string(data))
}

func TestSaveStream(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = store.SaveStream("notes.txt", strings.NewReader("hello"))
	require.NoError(t, err)

	file, err := store.Open("notes.txt")
	require.NoError(t, err)
	defer file.Close()

	data, err := io.ReadAll(file)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestDeleteMissingFileIsNoop(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, store.Delete("never-saved.bin"))
}

func TestUniqueFilenameSanitises(t *testing.T) {
	got := UniqueFilename("../weird name!.pdf")
	assert.True(t, strings.HasSuffix(got, "-weird_name_.pdf"), got)
	assert.NotContains(t, got, "/")
	assert.NotContains(t, got, " ")
}

func TestUniqueFilenameAvoidsCollisions(t *testing.T) {
	a := UniqueFilename("notes.pdf")
	b := UniqueFilename("notes.pdf")
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasSuffix(a, "-notes.pdf"), a)
}

func TestUniqueFilenameEmptyName(t *testing.T) {
	got := UniqueFilename("")
	assert.True(t, strings.HasSuffix(got, "-file"), got)
}
