package storage

import "context"

// Package storage contains the remote object storage abstraction used by the
// upload pipeline. Implementations address an S3-compatible backend.

// UploadOptions define optional parameters for uploading a local file.
// Folder is the logical grouping prefix for the object key. ContentType is
// the declared media type of the file.
type UploadOptions struct {
	Folder      string
	ContentType string
}

// UploadResult is the stable reference returned for a stored object: a
// publicly resolvable URL plus the opaque handle used to address or delete
// the object later.
type UploadResult struct {
	URL       string
	StorageID string
}

// Storage transfers local files to durable remote object storage.
//
// Implementations do not manage the local file's lifecycle; callers own
// deletion of the transient local copy on every exit path.
type Storage interface {
	// UploadFile uploads the file at localPath and returns its storage reference.
	UploadFile(ctx context.Context, localPath string, opt UploadOptions) (UploadResult, error)
	// Remove deletes an object by its storage handle.
	Remove(ctx context.Context, storageID string) error
}
