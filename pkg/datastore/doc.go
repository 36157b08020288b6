// Package datastore provides string-keyed text storage for wheresmy.
//
// The model is deliberately small: a flat namespace of keys, each holding
// one opaque string value. Callers serialize their own aggregates (the
// device registry stores a JSON array under one key) and every Set replaces
// the stored value as a whole.
//
// The file-backed store keeps all keys in one JSON object on disk and
// replaces that file atomically on every write, so a crash mid-write
// leaves the previous contents in place.
package datastore
