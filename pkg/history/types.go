package history

import (
	"context"
	"fmt"
	"time"
)

// Record is one document's validation outcome within a run.
type Record struct {
	// ID is a unique identifier for this record.
	ID string `json:"id"`

	// RunID groups all records produced by a single validation run.
	RunID string `json:"run_id"`

	// FileName is the base name of the validated document.
	FileName string `json:"file_name"`

	// FilePath is the full path of the validated document.
	FilePath string `json:"file_path"`

	// Status is the document's overall compliance status.
	Status string `json:"status"`

	// Checks maps check names to their individual statuses. Empty when
	// the document errored before validation.
	Checks map[string]string `json:"checks,omitempty"`

	// Error describes the processing failure for errored documents.
	Error string `json:"error,omitempty"`

	// RecordedAt is when the record was written.
	RecordedAt time.Time `json:"recorded_at"`
}

// Query filters history records. Zero-valued fields do not filter.
type Query struct {
	// RunID restricts results to a single run.
	RunID string

	// FileName restricts results to one document name.
	FileName string

	// Status restricts results to one overall status.
	Status string

	// StartTime and EndTime bound RecordedAt inclusively.
	StartTime *time.Time
	EndTime   *time.Time

	// Limit caps the number of returned records. Zero means the
	// backend default (100).
	Limit int

	// Offset skips that many records for pagination.
	Offset int
}

// Storage is the persistence interface for validation history.
type Storage interface {
	// Store persists one record.
	Store(ctx context.Context, record *Record) error

	// Query returns records matching the query, newest first.
	Query(ctx context.Context, query *Query) ([]*Record, error)

	// Count returns the number of records matching the query.
	Count(ctx context.Context, query *Query) (int64, error)

	// Delete removes records matching the query and returns how many
	// were removed.
	Delete(ctx context.Context, query *Query) (int64, error)

	// Close releases backend resources.
	Close() error
}

// StorageError wraps a failure in a storage backend with the backend
// name and the operation that failed.
type StorageError struct {
	Backend string
	Op      string
	Err     error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("history storage %s: %s: %v", e.Backend, e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func newStorageError(backend, op string, err error) *StorageError {
	return &StorageError{Backend: backend, Op: op, Err: err}
}
