package source

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"record-reconciler/core/database"
	"record-reconciler/core/storage"

	"gorm.io/gorm"
)

// Location schemes understood by Loader.
const (
	SchemeFile    = "file://"
	SchemeStorage = "s3://"
	SchemeTable   = "db://"
)

// Sides of a reconciliation, used to label read failures.
const (
	SideOld = "old"
	SideNew = "new"
)

var (
	// ErrReadFailure matches every error returned by Loader.Read.
	ErrReadFailure = errors.New("read failure")

	// ErrSourceUnavailable is wrapped when a location needs a backend that is not configured.
	ErrSourceUnavailable = errors.New("source backend not configured")
)

// ReadError reports that one side's data source could not be read.
type ReadError struct {
	Side     string
	Location string
	Err      error
}

// Error implements the error interface
func (e *ReadError) Error() string {
	return fmt.Sprintf("Cannot read %s database %s - %v", e.Side, e.Location, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *ReadError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ReadError) Is(target error) bool {
	return target == ErrReadFailure
}

// Loader reads raw snapshot blobs from files, object storage or database tables.
// The storage client and database are optional; locations needing a missing
// backend fail with ErrSourceUnavailable.
type Loader struct {
	client    storage.Client
	bucket    string
	db        *gorm.DB
	delimiter string
}

// NewLoader creates a loader. bucket is used for s3:///key locations and
// delimiter joins table columns for db:// locations.
func NewLoader(client storage.Client, bucket string, db *gorm.DB, delimiter string) *Loader {
	if delimiter == "" {
		delimiter = ","
	}
	return &Loader{client: client, bucket: bucket, db: db, delimiter: delimiter}
}

// Read fetches the blob behind location. It is a single attempt: any failure is
// returned as a *ReadError naming the side.
func (l *Loader) Read(ctx context.Context, side, location string) (string, error) {
	blob, err := l.read(ctx, location)
	if err != nil {
		return "", &ReadError{Side: side, Location: location, Err: err}
	}
	return blob, nil
}

func (l *Loader) read(ctx context.Context, location string) (string, error) {
	switch {
	case strings.HasPrefix(location, SchemeStorage):
		if l.client == nil {
			return "", fmt.Errorf("storage: %w", ErrSourceUnavailable)
		}
		bucket, key, err := splitObjectLocation(strings.TrimPrefix(location, SchemeStorage), l.bucket)
		if err != nil {
			return "", err
		}
		return storage.ReadObject(ctx, l.client, bucket, key)

	case strings.HasPrefix(location, SchemeTable):
		if l.db == nil {
			return "", fmt.Errorf("database: %w", ErrSourceUnavailable)
		}
		return database.ReadTable(ctx, l.db, strings.TrimPrefix(location, SchemeTable), l.delimiter)

	default:
		path := strings.TrimPrefix(location, SchemeFile)
		if path == "" {
			return "", errors.New("empty file path")
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
}

// splitObjectLocation splits "bucket/key" and falls back to defaultBucket for "/key".
func splitObjectLocation(rest, defaultBucket string) (bucket, key string, err error) {
	bucket, key, found := strings.Cut(rest, "/")
	if !found || key == "" {
		return "", "", fmt.Errorf("object location %q must be bucket/key", rest)
	}
	if bucket == "" {
		bucket = defaultBucket
	}
	if bucket == "" {
		return "", "", fmt.Errorf("object location %q has no bucket and no default bucket is configured", rest)
	}
	return bucket, key, nil
}
