// Package registry owns the user's list of devices.
//
// The whole list is one aggregate stored as a JSON array under a single
// datastore key. It is loaded once, kept as an in-memory view, and every
// mutation rewrites the stored value in full. A missing or unreadable
// stored value is treated as an empty list and never reported to the
// caller; the condition is only logged.
package registry
