// Package types defines the core types and interfaces used throughout wheresmy.
// This includes the Device record, the fixed Icon catalogue and the FS
// interface the storage layer is written against.
package types
