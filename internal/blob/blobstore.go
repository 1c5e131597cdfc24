// Package blob provides archive storage for exported snapshots. It offers a
// minimal S3-like surface so the S3 adapter is nearly 1:1 while the
// filesystem adapter emulates it for local use.
package blob

import (
	"context"
	"errors"
	"io"
	"time"
)

// Driver identifies a concrete archive backend.
type Driver string

const (
	DriverFilesystem Driver = "fs"     // local filesystem (default, dev)
	DriverS3         Driver = "s3"     // S3 / MinIO compatible
	DriverMemory     Driver = "memory" // in-memory (tests)
)

// PutOptions carries optional parameters for Put.
type PutOptions struct {
	ContentType string            // MIME type, optional
	Metadata    map[string]string // small flat key-value user metadata
}

// Info describes a stored archive object.
type Info struct {
	Key          string            `json:"key"`
	Size         int64             `json:"size_bytes"`
	ContentType  string            `json:"content_type,omitempty"`
	ETag         string            `json:"etag,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
	LastModified time.Time         `json:"last_modified"`
}

// Store is the archive backend contract. Put is create-only: archive keys
// embed the export instant, so overwriting one is always a caller bug.
type Store interface {
	// Put stores a new object at key. Fails if the key already exists.
	Put(ctx context.Context, key string, r io.Reader, opts PutOptions) (Info, error)
	// Get retrieves object contents and metadata.
	Get(ctx context.Context, key string) (Info, io.ReadCloser, error)
	// Head returns metadata only.
	Head(ctx context.Context, key string) (Info, error)
	// Delete removes an object. Returns (false, nil) when absent.
	Delete(ctx context.Context, key string) (bool, error)
	// List returns objects whose key has the prefix, ordered by key ascending.
	List(ctx context.Context, prefix string) ([]Info, error)
	// Driver identifies the configured backend.
	Driver() Driver
}

// ErrNotFound is returned when the requested object does not exist.
var ErrNotFound = errors.New("blob: object not found")

func cloneMetadata(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
