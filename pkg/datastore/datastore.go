package datastore

// DataStore is string-keyed text storage.
type DataStore interface {
	// Get returns the value stored under key. ok is false when the key is
	// absent; a missing backing file is treated as an empty store.
	Get(key string) (value string, ok bool, err error)

	// Set replaces the value stored under key.
	Set(key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}
