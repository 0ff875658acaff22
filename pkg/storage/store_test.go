package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/voxlabs/chirp/pkg/storage"

	"github.com/stretchr/testify/require"
)

func TestSave(t *testing.T) {
	store, err := storage.New(t.TempDir())
	require.NoError(t, err)

	file, err := store.Save("out.wav", []byte("abcd"))
	require.NoError(t, err)

	require.Equal(t, "out.wav", file.Name)
	require.Equal(t, filepath.Join(store.Dir(), "out.wav"), file.Path)
	require.Equal(t, int64(4), file.Size)

	data, err := os.ReadFile(file.Path)
	require.NoError(t, err)
	require.Equal(t, []byte("abcd"), data)
}

func TestSaveOverwrites(t *testing.T) {
	store, err := storage.New(t.TempDir())
	require.NoError(t, err)

	_, err = store.Save("out.wav", []byte("first"))
	require.NoError(t, err)

	file, err := store.Save("out.wav", []byte("second"))
	require.NoError(t, err)

	data, err := os.ReadFile(file.Path)
	require.NoError(t, err)
	require.Equal(t, []byte("second"), data)
}

func TestNewCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "output")

	_, err := storage.New(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestFileName(t *testing.T) {
	name := storage.FileName()

	require.Regexp(t, `^tts_\d{8}_\d{6}_[0-9a-f]{8}\.wav$`, name)
	require.NotEqual(t, name, storage.FileName())
}

func TestChunkFileName(t *testing.T) {
	require.Regexp(t, `^tts_chunk_2_\d{8}_\d{6}\.wav$`, storage.ChunkFileName(2))
}
