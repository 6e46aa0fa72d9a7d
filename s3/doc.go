// Package s3 provides a filez.FileStore backed by Amazon S3.
//
// Keys are path.Join(prefix, path). List narrows the server-side listing
// using the static portion of the glob pattern and matches the remainder
// client-side, so `**` patterns work the same as on the local backend.
//
// Listing order follows S3's lexicographic key order rather than
// directory-traversal order.
package s3
