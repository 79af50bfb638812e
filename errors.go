package pulls

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/jmgilman/go/errors"
)

// Error codes raised by local validation, before any request is issued.
const (
	// CodeMissingArgument indicates a required identifier (owner, repository,
	// or item number) was absent.
	CodeMissingArgument errors.ErrorCode = "MISSING_ARGUMENT"

	// CodeInvalidValue indicates a constrained parameter held a value outside
	// its enumerated set.
	CodeInvalidValue errors.ErrorCode = "INVALID_VALUE"
)

// Error codes surfaced by executors (convenience aliases for readability
// in this package's context; the codes come from the errors library).
const (
	// ErrCodeNotFound indicates a requested resource was not found.
	ErrCodeNotFound = errors.CodeNotFound

	// ErrCodeAuthenticationFailed indicates authentication failure.
	ErrCodeAuthenticationFailed = errors.CodeUnauthorized

	// ErrCodePermissionDenied indicates insufficient permissions.
	ErrCodePermissionDenied = errors.CodeForbidden

	// ErrCodeRateLimited indicates rate limit exceeded.
	ErrCodeRateLimited = errors.CodeRateLimit

	// ErrCodeInvalidInput indicates invalid parameters or malformed data.
	ErrCodeInvalidInput = errors.CodeInvalidInput

	// ErrCodeNetwork indicates network-related errors.
	ErrCodeNetwork = errors.CodeNetwork
)

// WrapHTTPError wraps an error based on the HTTP status code attached to
// a GitHub API response.
func WrapHTTPError(err error, statusCode int, message string) error {
	if err == nil {
		return nil
	}

	var code errors.ErrorCode
	switch statusCode {
	case http.StatusNotFound:
		code = errors.CodeNotFound
	case http.StatusUnauthorized:
		code = errors.CodeUnauthorized
	case http.StatusForbidden:
		code = errors.CodeForbidden
	case http.StatusConflict:
		code = errors.CodeConflict
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		code = errors.CodeInvalidInput
	case http.StatusTooManyRequests:
		code = errors.CodeRateLimit
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable:
		code = errors.CodeNetwork
	default:
		if statusCode >= 500 {
			code = errors.CodeNetwork
		} else {
			code = errors.CodeInternal
		}
	}

	return errors.Wrap(err, code, message)
}

// newMissingArgumentError creates a missing-argument error for a required
// identifier that was absent or empty.
func newMissingArgumentError(field string) error {
	err := errors.New(
		CodeMissingArgument,
		fmt.Sprintf("%s is required and cannot be empty", field),
	)
	return errors.WithContext(err, "field", field)
}

// newInvalidValueError creates an invalid-value error for a constrained
// parameter holding a value outside its enumerated set.
func newInvalidValueError(field, value string, valid []string) error {
	err := errors.New(
		CodeInvalidValue,
		fmt.Sprintf("invalid %s: %q (must be one of: %s)", field, value, strings.Join(valid, ", ")),
	)
	err = errors.WithContext(err, "field", field)
	return errors.WithContext(err, "value", value)
}
