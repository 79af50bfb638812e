//nolint:contextcheck // Context is properly passed via CommandWrapper.WithContext() but linter cannot verify
// Package cli provides an executor implementation using the gh CLI.
//
// This package implements the pulls.Executor interface by shelling out to
// `gh api` through the workspace exec module. Authentication is inherited
// from the gh CLI configuration.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/exec"
	"github.com/jmgilman/go/pulls"
)

// Option configures the CLI executor.
type Option func(*Executor) error

// Executor implements pulls.Executor using the gh CLI.
type Executor struct {
	wrapper *exec.CommandWrapper
}

// NewExecutor creates an executor that performs requests with `gh api`.
// Inherits authentication from gh CLI configuration.
//
// Example:
//
//	executor, err := cli.NewExecutor()
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewExecutor(opts ...Option) (*Executor, error) {
	// Default executor
	executor := exec.New(exec.WithInheritEnv())

	e := &Executor{
		wrapper: exec.NewWrapper(executor, "gh"),
	}

	// Apply options (can override the wrapper)
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	// Verify gh is installed and authenticated
	result, err := e.wrapper.Run("auth", "status")
	if err != nil {
		return nil, wrapAuthError(err, result)
	}

	return e, nil
}

// WithExecutor sets a custom executor for running the gh command.
// This is primarily useful for testing with a mock executor.
func WithExecutor(executor exec.Executor) Option {
	return func(e *Executor) error {
		if executor == nil {
			err := errors.New(errors.CodeInvalidInput, "executor cannot be nil")
			return errors.WithContext(err, "field", "executor")
		}
		e.wrapper = exec.NewWrapper(executor, "gh")
		return nil
	}
}

// Get performs a GET request; gh api sends fields as query parameters.
func (e *Executor) Get(ctx context.Context, path string, params pulls.Params) (*pulls.Response, error) {
	return e.do(ctx, http.MethodGet, path, params)
}

// Post performs a POST request with fields as the JSON body.
func (e *Executor) Post(ctx context.Context, path string, params pulls.Params) (*pulls.Response, error) {
	return e.do(ctx, http.MethodPost, path, params)
}

// Patch performs a PATCH request with fields as the JSON body.
func (e *Executor) Patch(ctx context.Context, path string, params pulls.Params) (*pulls.Response, error) {
	return e.do(ctx, http.MethodPatch, path, params)
}

// Put performs a PUT request with fields as the JSON body.
func (e *Executor) Put(ctx context.Context, path string, params pulls.Params) (*pulls.Response, error) {
	return e.do(ctx, http.MethodPut, path, params)
}

// Delete performs a DELETE request.
func (e *Executor) Delete(ctx context.Context, path string, params pulls.Params) (*pulls.Response, error) {
	return e.do(ctx, http.MethodDelete, path, params)
}

// do assembles and runs a `gh api` invocation.
func (e *Executor) do(ctx context.Context, method, path string, params pulls.Params) (*pulls.Response, error) {
	args := buildArgs(method, path, params)

	result, err := e.wrapper.Clone().WithContext(ctx).Run(args...)
	if err != nil {
		return nil, e.wrapCLIError(err, result, fmt.Sprintf("%s %s failed", method, path))
	}

	return parseResponse(result.Stdout)
}

// buildArgs renders the gh api argument list for a request. Fields are
// emitted in sorted key order so invocations are deterministic.
func buildArgs(method, path string, params pulls.Params) []string {
	fields, accept := splitMedia(params)

	args := []string{"api", "--method", method}
	if accept != "" {
		args = append(args, "-H", "Accept: "+accept)
	}
	args = append(args, path)

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		// -f sends raw strings; -F preserves typed values (numbers, booleans)
		if s, ok := fields[key].(string); ok {
			args = append(args, "-f", fmt.Sprintf("%s=%s", key, s))
		} else {
			args = append(args, "-F", fmt.Sprintf("%s=%v", key, fields[key]))
		}
	}

	return args
}

// splitMedia extracts the media-type keys (mime_type, resource) from params
// and folds them into an Accept header value.
func splitMedia(params pulls.Params) (pulls.Params, string) {
	var mime, resource string
	rest := make(pulls.Params, len(params))
	for key, value := range params {
		switch key {
		case "mime_type":
			mime = fmt.Sprintf("%v", value)
		case "resource":
			resource = fmt.Sprintf("%v", value)
		default:
			rest[key] = value
		}
	}

	if mime == "" && resource == "" {
		return rest, ""
	}

	accept := "application/vnd.github.v3"
	if resource != "" {
		accept += "." + resource
	}
	if mime != "" {
		accept += "." + mime
	}
	return rest, accept + "+json"
}

// parseResponse decodes gh api stdout into generic records. gh api exits
// zero for any success status, so the exact code is not recoverable; a
// successful call reports 200.
func parseResponse(stdout string) (*pulls.Response, error) {
	resp := &pulls.Response{StatusCode: http.StatusOK}

	body := strings.TrimSpace(stdout)
	if body == "" || body == "null" {
		return resp, nil
	}

	switch body[0] {
	case '[':
		if err := json.Unmarshal([]byte(body), &resp.Records); err != nil {
			return nil, wrapParseError(err, stdout)
		}
	case '{':
		if err := json.Unmarshal([]byte(body), &resp.Record); err != nil {
			return nil, wrapParseError(err, stdout)
		}
	}

	return resp, nil
}

func wrapParseError(err error, stdout string) error {
	wrappedErr := errors.Wrap(err, errors.CodeInvalidInput, "failed to parse JSON response")
	return errors.WithContext(wrappedErr, "stdout", stdout)
}

// getErrorCodeFromResult determines the error code based on the result.
// gh api exits 4 for authentication problems and reports HTTP failures
// through stderr.
func (e *Executor) getErrorCodeFromResult(result *exec.Result) errors.ErrorCode {
	if result.ExitCode == 4 {
		return errors.CodeUnauthorized
	}

	stderr := strings.ToLower(result.Stderr)
	switch {
	case strings.Contains(stderr, "404") || strings.Contains(stderr, "not found") || strings.Contains(stderr, "could not resolve"):
		return errors.CodeNotFound
	case strings.Contains(stderr, "401") || strings.Contains(stderr, "authentication") || strings.Contains(stderr, "unauthorized"):
		return errors.CodeUnauthorized
	case strings.Contains(stderr, "403") || strings.Contains(stderr, "forbidden") || strings.Contains(stderr, "permission denied"):
		return errors.CodeForbidden
	case strings.Contains(stderr, "rate limit"):
		return errors.CodeRateLimit
	case strings.Contains(stderr, "422") || strings.Contains(stderr, "invalid") || strings.Contains(stderr, "unprocessable"):
		return errors.CodeInvalidInput
	case strings.Contains(stderr, "network") || strings.Contains(stderr, "connection") || strings.Contains(stderr, "timeout"):
		return errors.CodeNetwork
	}
	return errors.CodeExecutionFailed
}

// wrapCLIError wraps CLI execution errors with appropriate error types.
func (e *Executor) wrapCLIError(err error, result *exec.Result, message string) error {
	if err == nil {
		return nil
	}

	// Default to execution failed
	code := errors.CodeExecutionFailed

	// Map exit codes and stderr patterns to error types
	if result != nil {
		code = e.getErrorCodeFromResult(result)
	}

	wrappedErr := errors.Wrap(err, code, message)

	// Include stderr in error details if available
	if result != nil && result.Stderr != "" {
		wrappedErr = errors.WithContext(wrappedErr, "stderr", result.Stderr)
		wrappedErr = errors.WithContext(wrappedErr, "exit_code", result.ExitCode)
	}

	return wrappedErr
}

// wrapAuthError wraps authentication errors from gh CLI.
func wrapAuthError(err error, result *exec.Result) error {
	authErr := errors.Wrap(err, errors.CodeUnauthorized, "gh CLI not authenticated")
	authErr = errors.WithContext(authErr, "hint", "Run 'gh auth login' to authenticate")
	if result != nil && result.Stderr != "" {
		authErr = errors.WithContext(authErr, "stderr", result.Stderr)
	}
	return authErr
}
