// Package sdk provides an executor implementation using the go-github SDK.
//
// This package implements the pulls.Executor interface on top of the
// request machinery of github.com/google/go-github/v67: request
// construction, authentication, and error parsing come from the SDK, while
// path building and parameter validation stay in the pulls package.
package sdk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/go-github/v67/github"
	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/pulls"
)

// Executor implements pulls.Executor using the go-github SDK.
type Executor struct {
	client *github.Client
}

// NewExecutor creates an executor backed by the GitHub SDK.
//
// Example with token authentication:
//
//	executor, err := sdk.NewExecutor(sdk.WithToken("ghp_..."))
//
// Example with custom client:
//
//	httpClient := &http.Client{Timeout: 30 * time.Second}
//	ghClient := github.NewClient(httpClient)
//	executor, err := sdk.NewExecutor(sdk.WithClient(ghClient))
func NewExecutor(opts ...Option) (*Executor, error) {
	cfg := &config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// If no client was provided, create a default one
	if cfg.client == nil {
		if cfg.token == "" {
			err := errors.New(errors.CodeInvalidInput, "either token or client must be provided")
			return nil, errors.WithContext(err, "field", "token or client")
		}
		cfg.client = github.NewClient(nil).WithAuthToken(cfg.token)
	}

	return &Executor{
		client: cfg.client,
	}, nil
}

// config holds configuration for the executor.
type config struct {
	client *github.Client
	token  string
}

// Option configures the SDK executor.
type Option func(*config) error

// WithToken sets the authentication token for the SDK executor.
func WithToken(token string) Option {
	return func(cfg *config) error {
		if token == "" {
			err := errors.New(errors.CodeInvalidInput, "token cannot be empty")
			return errors.WithContext(err, "field", "token")
		}
		cfg.token = token
		return nil
	}
}

// WithClient sets a custom GitHub client for the SDK executor.
// This allows full control over the HTTP client configuration,
// authentication, and other advanced settings.
func WithClient(client *github.Client) Option {
	return func(cfg *config) error {
		if client == nil {
			err := errors.New(errors.CodeInvalidInput, "client cannot be nil")
			return errors.WithContext(err, "field", "client")
		}
		cfg.client = client
		return nil
	}
}

// Get performs a GET request with params encoded as query parameters.
func (e *Executor) Get(ctx context.Context, path string, params pulls.Params) (*pulls.Response, error) {
	return e.do(ctx, http.MethodGet, path, params)
}

// Post performs a POST request with params as the JSON body.
func (e *Executor) Post(ctx context.Context, path string, params pulls.Params) (*pulls.Response, error) {
	return e.do(ctx, http.MethodPost, path, params)
}

// Patch performs a PATCH request with params as the JSON body.
func (e *Executor) Patch(ctx context.Context, path string, params pulls.Params) (*pulls.Response, error) {
	return e.do(ctx, http.MethodPatch, path, params)
}

// Put performs a PUT request with params as the JSON body.
func (e *Executor) Put(ctx context.Context, path string, params pulls.Params) (*pulls.Response, error) {
	return e.do(ctx, http.MethodPut, path, params)
}

// Delete performs a DELETE request with params encoded as query parameters.
func (e *Executor) Delete(ctx context.Context, path string, params pulls.Params) (*pulls.Response, error) {
	return e.do(ctx, http.MethodDelete, path, params)
}

// do builds the request through go-github, executes it, and parses the body
// into generic records.
func (e *Executor) do(ctx context.Context, method, path string, params pulls.Params) (*pulls.Response, error) {
	fields, accept := splitMedia(params)

	urlStr := path
	var body any
	switch method {
	case http.MethodGet, http.MethodDelete:
		if query := encodeQuery(fields); query != "" {
			urlStr = path + "?" + query
		}
	default:
		if len(fields) > 0 {
			body = fields
		}
	}

	req, err := e.client.NewRequest(method, urlStr, body)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidInput, "failed to build request")
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	var raw json.RawMessage
	resp, err := e.client.Do(ctx, req, &raw)
	if err != nil {
		return nil, e.wrapError(err, resp, fmt.Sprintf("%s %s failed", method, path))
	}

	return parseResponse(resp.StatusCode, raw)
}

// encodeQuery renders params as a URL query string. Values are formatted
// with their natural string representation.
func encodeQuery(params pulls.Params) string {
	if len(params) == 0 {
		return ""
	}
	values := url.Values{}
	for key, value := range params {
		values.Set(key, fmt.Sprintf("%v", value))
	}
	return values.Encode()
}

// splitMedia extracts the media-type keys (mime_type, resource) from params
// and folds them into an Accept header value. The remaining keys are
// returned untouched for query/body encoding.
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

// parseResponse decodes the raw body into a single record or an ordered
// sequence of records. Bodyless responses (204 from the merge-status
// endpoint) yield a response with neither set.
func parseResponse(statusCode int, raw json.RawMessage) (*pulls.Response, error) {
	resp := &pulls.Response{StatusCode: statusCode}

	if len(raw) == 0 || string(raw) == "null" {
		return resp, nil
	}

	switch raw[0] {
	case '[':
		if err := json.Unmarshal(raw, &resp.Records); err != nil {
			return nil, errors.Wrap(err, errors.CodeInvalidInput, "failed to parse array response")
		}
	case '{':
		if err := json.Unmarshal(raw, &resp.Record); err != nil {
			return nil, errors.Wrap(err, errors.CodeInvalidInput, "failed to parse object response")
		}
	}

	return resp, nil
}

// wrapError wraps go-github errors with appropriate error codes.
func (e *Executor) wrapError(err error, resp *github.Response, message string) error {
	if err == nil {
		return nil
	}

	// Extract status code from response
	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}

	// Try to get status code from ErrorResponse
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		statusCode = ghErr.Response.StatusCode
	}

	if statusCode != 0 {
		return pulls.WrapHTTPError(err, statusCode, message)
	}

	// Fallback to network error for unknown errors
	return errors.Wrap(err, errors.CodeNetwork, message)
}
