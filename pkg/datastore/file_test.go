// pkg/datastore/file_test.go
// TEST TYPE: DataStore Tests
// DEPENDENCIES: afero memory filesystem, real filesystem for the atomic replace case
// PURPOSE: Test file-backed key/value storage semantics

package datastore_test

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/wheresmy/pkg/datastore"
	"github.com/arthur-debert/wheresmy/pkg/errors"
	"github.com/arthur-debert/wheresmy/pkg/filesystem"
	"github.com/arthur-debert/wheresmy/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const storePath = "/data/wheresmy/storage.json"

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	ds := datastore.NewFile(filesystem.NewMemoryFS(), storePath)

	value, ok, err := ds.Get("devices")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)

	assert.NoError(t, ds.Delete("devices"))
}

func TestFileStore_SetGetDelete(t *testing.T) {
	fsys := filesystem.NewMemoryFS()
	ds := datastore.NewFile(fsys, storePath)

	require.NoError(t, ds.Set("devices", `[{"id":"1"}]`))
	require.NoError(t, ds.Set("other", "x"))

	value, ok, err := ds.Get("devices")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"1"}]`, value)

	// a second store over the same file sees the same data
	again := datastore.NewFile(fsys, storePath)
	value, ok, err = again.Get("other")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "x", value)

	require.NoError(t, ds.Delete("other"))
	_, ok, err = ds.Get("other")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = fsys.Stat(storePath + ".tmp")
	assert.ErrorIs(t, err, fs.ErrNotExist, "temporary file must not be left behind")
}

func TestFileStore_MalformedFile(t *testing.T) {
	fsys := filesystem.NewMemoryFS()
	require.NoError(t, fsys.MkdirAll(filepath.Dir(storePath), 0755))
	require.NoError(t, fsys.WriteFile(storePath, []byte("{not json"), 0644))

	ds := datastore.NewFile(fsys, storePath)

	_, _, err := ds.Get("devices")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrStorageRead))

	// writing replaces the unreadable file
	require.NoError(t, ds.Set("devices", "[]"))
	value, ok, err := ds.Get("devices")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", value)
}

func TestFileStore_EmptyFileIsEmpty(t *testing.T) {
	fsys := filesystem.NewMemoryFS()
	require.NoError(t, fsys.MkdirAll(filepath.Dir(storePath), 0755))
	require.NoError(t, fsys.WriteFile(storePath, nil, 0644))

	_, ok, err := datastore.NewFile(fsys, storePath).Get("devices")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStore_RealFilesystem(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "storage.json")
	ds := datastore.NewFile(filesystem.NewOS(), path)

	require.NoError(t, ds.Set("devices", "[]"))
	assert.Equal(t, path, datastore.Path(ds))

	value, ok, err := ds.Get("devices")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", value)
}

// failingFS fails renames so the previous file must stay intact
type failingFS struct {
	types.FS
}

func (f failingFS) Rename(oldpath, newpath string) error {
	return stderrors.New("rename refused")
}

func TestFileStore_FailedReplaceKeepsPreviousValue(t *testing.T) {
	fsys := filesystem.NewMemoryFS()
	require.NoError(t, datastore.NewFile(fsys, storePath).Set("devices", "old"))

	ds := datastore.NewFile(failingFS{fsys}, storePath)
	err := ds.Set("devices", "new")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrStorageWrite))

	value, _, err := ds.Get("devices")
	require.NoError(t, err)
	assert.Equal(t, "old", value)

	_, err = fsys.Stat(storePath + ".tmp")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestMemoryStore(t *testing.T) {
	m := datastore.NewMemory()
	require.NoError(t, m.Set("k", "v"))
	value, ok, err := m.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", value)
	assert.Equal(t, 1, m.Writes)
	assert.Empty(t, datastore.Path(m))

	m.ReadErr = stderrors.New("boom")
	_, _, err = m.Get("k")
	assert.Error(t, err)

	m.WriteErr = stderrors.New("boom")
	assert.Error(t, m.Set("k", "v2"))
	assert.Error(t, m.Delete("k"))
}
