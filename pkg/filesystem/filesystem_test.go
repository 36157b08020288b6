// pkg/filesystem/filesystem_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Real filesystem (temp dir) and afero memory filesystem
// PURPOSE: Both FS implementations behave the same for the storage layer

package filesystem_test

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/wheresmy/pkg/filesystem"
	"github.com/arthur-debert/wheresmy/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_Implementations(t *testing.T) {
	impls := map[string]func(t *testing.T) (types.FS, string){
		"os": func(t *testing.T) (types.FS, string) {
			return filesystem.NewOS(), t.TempDir()
		},
		"afero": func(t *testing.T) (types.FS, string) {
			return filesystem.NewMemoryFS(), "/data"
		},
	}

	for name, setup := range impls {
		t.Run(name, func(t *testing.T) {
			fsys, root := setup(t)
			dir := filepath.Join(root, "wheresmy")
			path := filepath.Join(dir, "storage.json")

			require.NoError(t, fsys.MkdirAll(dir, 0755))

			_, err := fsys.ReadFile(path)
			assert.ErrorIs(t, err, fs.ErrNotExist)

			require.NoError(t, fsys.WriteFile(path+".tmp", []byte(`{"a":"1"}`), 0644))
			require.NoError(t, fsys.Rename(path+".tmp", path))

			data, err := fsys.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, `{"a":"1"}`, string(data))

			_, err = fsys.Stat(path + ".tmp")
			assert.ErrorIs(t, err, fs.ErrNotExist)

			// rename over an existing file replaces it
			require.NoError(t, fsys.WriteFile(path+".tmp", []byte(`{}`), 0644))
			require.NoError(t, fsys.Rename(path+".tmp", path))
			data, err = fsys.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, `{}`, string(data))

			_, err = fsys.ReadFile(dir)
			assert.Error(t, err)

			require.NoError(t, fsys.Remove(path))
			_, err = fsys.Stat(path)
			assert.ErrorIs(t, err, fs.ErrNotExist)
		})
	}
}
