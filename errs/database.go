package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrDatabaseQuery      = errors.New("database query failed")
	ErrDatabaseConnection = errors.New("database connection failed")
	ErrDocumentWrite      = errors.New("document write failed")
)

func NewNotFound(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("%s %w", entity, ErrNotFound),
	}
}

// NewQueryError wraps a failed read (or the legacy comment write) the
// way the original API surfaced it: 501 with a short message. The 501
// is a quirk of the historical frontend contract and is kept on
// purpose.
func NewQueryError(operation, entity string, cause error) *ApiErr {
	if cause != nil && strings.Contains(cause.Error(), "not found") {
		return &ApiErr{
			StatusCode: http.StatusNotFound,
			err:        fmt.Errorf("%s %w", entity, ErrNotFound),
			Cause:      cause,
		}
	}
	return &ApiErr{
		StatusCode: http.StatusNotImplemented,
		err:        ErrDatabaseQuery,
		Details:    fmt.Sprintf("Failed to %s %s", operation, entity),
		Cause:      cause,
	}
}

// NewPersistenceError wraps a failed document write on the post
// creation path. These surface as plain 500s whatever the cause.
func NewPersistenceError(entity string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrDocumentWrite,
		Details:    fmt.Sprintf("Failed to create %s", entity),
		Cause:      cause,
	}
}
