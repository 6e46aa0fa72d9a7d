// Package minio provides a filez.FileStore for MinIO and other
// S3-compatible object stores, using the native MinIO client.
//
// Key mapping and glob semantics match the s3 package.
package minio
