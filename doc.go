// Package filez provides pluggable, root-scoped file access for Go.
//
// A FileStore exposes exactly three capabilities — read a file as text,
// write text to a file, list files by glob pattern — against a bound root.
// Keeping the surface this narrow lets alternative backends (in-memory,
// S3, MinIO) slot in without touching callers.
//
// # Quick Start
//
//	ctx := context.Background()
//	store := filez.Live("./data")
//
//	_ = store.Write(ctx, "notes/todo.txt", "buy milk")
//	content, _ := store.Read(ctx, "notes/todo.txt")
//	paths, _ := store.List(ctx, "notes/*.txt")
//
// Cloud backends:
//
//	s3Store, _ := s3.New(ctx, "my-bucket", s3.WithPrefix("files/"))
//	content, _ := s3Store.Read(ctx, "notes/todo.txt")
//
// # Semantics
//
// All operations take a context and block the calling goroutine; there is
// no hidden scheduling. Paths are slash-separated and relative to the
// root — anything resolving outside it is rejected with
// [ErrPathEscapesRoot]. Write creates missing parent directories and
// replaces the target atomically (temp file + rename); durability across
// power loss additionally requires [WithFsync]. List matches glob
// patterns including `**`, returns regular files only, and reports
// malformed patterns separately from traversal failures via
// [ListErrorKind].
//
// # Errors
//
// Every failure surfaces as a typed error value — [ReadError],
// [WriteError], [ListError] — wrapping the underlying cause. There are no
// retries and no process-level failure modes; all errors are recoverable
// at the call site.
package filez
