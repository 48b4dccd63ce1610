package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrAssetStorage = errors.New("asset storage failed")

// NewStorageError wraps a failure to persist an uploaded binary,
// whichever strategy (local disk or remote host) was in play. Nothing
// is considered stored when this is returned.
func NewStorageError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrAssetStorage,
		Details:    "Failed to store uploaded file",
		Cause:      cause,
	}
}

func IsStorageError(err error) bool {
	var apiErr *ApiErr
	if errors.As(err, &apiErr) {
		return errors.Is(apiErr, ErrAssetStorage)
	}
	return false
}

// NewMissingRequiredFieldError reports a presence-check failure on a
// request payload or form field.
func NewMissingRequiredFieldError(fieldName string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        fmt.Errorf("missing required field: %s", fieldName),
		Field:      fieldName,
	}
}
