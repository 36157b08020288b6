package datastore

import "sync"

// Memory is an in-process DataStore. ReadErr and WriteErr, when set, are
// returned by every read or write so callers can exercise failure paths.
type Memory struct {
	mu       sync.Mutex
	values   map[string]string
	ReadErr  error
	WriteErr error
	Writes   int
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{values: map[string]string{}}
}

func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ReadErr != nil {
		return "", false, m.ReadErr
	}
	value, ok := m.values[key]
	return value, ok, nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.values[key] = value
	m.Writes++
	return nil
}

func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.WriteErr != nil {
		return m.WriteErr
	}
	delete(m.values, key)
	return nil
}
