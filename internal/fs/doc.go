// Package fs provides filesystem abstractions for testability and fault injection.
//
//   - [LocalFS]: Production implementation using the standard os package
//   - [FaultyFS]: Test utility for fault injection (simulate I/O errors)
//
// Production code should use fs.Default (which is [LocalFS]). Tests inject
// [FaultyFS] to simulate write, sync, and close failures.
//
// This package intentionally does NOT include context.Context parameters.
// Local filesystem operations are non-interruptible at the syscall level;
// cancellation is checked at the operation boundary instead.
package fs
