package pulls

import "context"

//go:generate go run github.com/matryer/moq@latest -out mocks/executor.go -pkg mocks . Executor

// Record is a single decoded JSON object returned by the GitHub API.
// Responses are kept as generic records; callers pick out the fields they
// need. A typed response schema is deliberately out of scope.
type Record map[string]any

// Response is the parsed body of a completed API call.
// Exactly one of Record or Records is populated, depending on whether the
// endpoint returned an object or an array. Both are nil for responses with
// no body (e.g. 204 from the merge-status endpoint).
type Response struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int

	// Record holds an object response.
	Record Record

	// Records holds an array response, in response order.
	Records []Record
}

// Executor performs HTTP requests against the GitHub API.
// Implementations include the SDK executor (using go-github) and the CLI
// executor (using the gh CLI). The executor owns transport concerns:
// authentication, rate-limit handling, and response parsing. This package
// only validates inputs, builds paths, and dispatches.
//
// Paths are relative to the API root and carry no leading slash
// (e.g. "repos/octocat/hello-world/pulls").
//
// Errors are reported through the workspace errors library; a missing
// resource surfaces as errors.CodeNotFound so callers can distinguish it
// from other failures.
//
// Example using the SDK executor:
//
//	executor, err := sdk.NewExecutor(sdk.WithToken("ghp_..."))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svc := pulls.NewService(executor)
//	records, err := svc.List(ctx, "octocat", "hello-world", nil)
type Executor interface {
	// Get performs a GET request. Params are sent as query parameters.
	Get(ctx context.Context, path string, params Params) (*Response, error)

	// Post performs a POST request. Params are sent as the JSON body.
	Post(ctx context.Context, path string, params Params) (*Response, error)

	// Patch performs a PATCH request. Params are sent as the JSON body.
	Patch(ctx context.Context, path string, params Params) (*Response, error)

	// Put performs a PUT request. Params are sent as the JSON body.
	Put(ctx context.Context, path string, params Params) (*Response, error)

	// Delete performs a DELETE request. Params are sent as query parameters.
	Delete(ctx context.Context, path string, params Params) (*Response, error)
}
