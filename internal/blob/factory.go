package blob

import (
	"context"
	"fmt"
)

// Options selects and configures an archive backend.
type Options struct {
	Driver Driver
	FSRoot string // driver=fs
	S3     S3Config
}

// Open constructs the archive store named by opts.Driver, defaulting to the
// filesystem driver.
func Open(ctx context.Context, opts Options) (Store, error) {
	driver := opts.Driver
	if driver == "" {
		driver = DriverFilesystem
	}
	switch driver {
	case DriverFilesystem:
		return NewFilesystem(opts.FSRoot)
	case DriverS3:
		return NewS3(ctx, opts.S3)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown blob driver %s", driver)
	}
}
