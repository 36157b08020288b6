package datastore

import (
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/wheresmy/pkg/errors"
	"github.com/arthur-debert/wheresmy/pkg/logging"
	"github.com/arthur-debert/wheresmy/pkg/types"
	"github.com/rs/zerolog"
)

type fileDataStore struct {
	fs     types.FS
	path   string
	logger zerolog.Logger
}

// NewFile creates a DataStore backed by a single JSON object file at path.
func NewFile(fs types.FS, path string) DataStore {
	return &fileDataStore{
		fs:     fs,
		path:   path,
		logger: logging.GetLogger("datastore"),
	}
}

// Path returns the backing file of a file store, or "" for other stores
func Path(ds DataStore) string {
	if f, ok := ds.(*fileDataStore); ok {
		return f.path
	}
	return ""
}

func (s *fileDataStore) readAll() (map[string]string, error) {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrStorageRead, "failed to read %s", s.path)
	}

	values := map[string]string{}
	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, errors.Wrapf(err, errors.ErrStorageRead, "malformed storage file %s", s.path)
	}
	return values, nil
}

func (s *fileDataStore) writeAll(values map[string]string) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return errors.Wrap(err, errors.ErrStorageWrite, "failed to encode storage")
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrStorageWrite, "failed to create directory for %s", s.path)
	}

	tmp := s.path + ".tmp"
	if err := s.fs.WriteFile(tmp, data, 0600); err != nil {
		return errors.Wrapf(err, errors.ErrStorageWrite, "failed to write %s", tmp)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		_ = s.fs.Remove(tmp)
		return errors.Wrapf(err, errors.ErrStorageWrite, "failed to replace %s", s.path)
	}

	s.logger.Trace().Str("path", s.path).Int("keys", len(values)).Msg("Storage written")
	return nil
}

func (s *fileDataStore) Get(key string) (string, bool, error) {
	values, err := s.readAll()
	if err != nil {
		return "", false, err
	}
	value, ok := values[key]
	return value, ok, nil
}

func (s *fileDataStore) Set(key, value string) error {
	values, err := s.readAll()
	if err != nil {
		if !errors.IsErrorCode(err, errors.ErrStorageRead) {
			return err
		}
		// an unreadable file is overwritten, the same way a fresh Set replaces a bad value
		s.logger.Warn().Err(err).Str("path", s.path).Msg("Discarding unreadable storage file")
		values = map[string]string{}
	}
	values[key] = value
	return s.writeAll(values)
}

func (s *fileDataStore) Delete(key string) error {
	values, err := s.readAll()
	if err != nil {
		return err
	}
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return s.writeAll(values)
}
