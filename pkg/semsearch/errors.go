package semsearch

import (
	"errors"
	"fmt"
)

// ErrNoWorkbooks indicates no workbook paths were given.
var ErrNoWorkbooks = errors.New("no workbooks given")

// IngestError represents a failure while ingesting a workbook.
type IngestError struct {
	Book string
	Err  error
}

func (e *IngestError) Error() string {
	return fmt.Sprintf("ingest error in workbook %q: %v", e.Book, e.Err)
}

func (e *IngestError) Unwrap() error {
	return e.Err
}

// NewIngestError creates a new IngestError.
func NewIngestError(book string, err error) *IngestError {
	return &IngestError{Book: book, Err: err}
}
