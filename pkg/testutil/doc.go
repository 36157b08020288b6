// Package testutil provides utilities for testing wheresmy components.
//
// Key components:
//   - TestEnvironment: storage, file system and directories for one test
//   - SequentialIDs: deterministic device ids
//
// Usage guidelines:
//   - Prefer EnvMemoryOnly; it never touches the disk
//   - Use EnvIsolated for command tests, which resolve paths from the
//     environment and read real files
package testutil
