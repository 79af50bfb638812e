// Package pulls provides a validating client for the pull-request family of
// the GitHub REST API.
//
// The package translates method calls into HTTP requests: it checks that the
// identifying context (owner, repository, pull request number) is present,
// normalizes and filters caller-supplied parameters against an allow-list,
// builds the request path, and hands the request to a pluggable Executor.
// Everything transport-related — authentication, rate limits, pagination
// headers, response parsing — belongs to the executor.
//
// # Architecture
//
// The package is built on a few principles:
//
//  1. Executor abstraction: all HTTP I/O goes through the Executor interface
//  2. Two concrete executor implementations (SDK and CLI)
//  3. One facade type per resource family (Service, CommentsService)
//  4. Local validation fails fast, before any request is issued
//  5. Consistent error handling using the workspace errors library
//  6. Context support for cancellation and timeouts
//
// # Parameters
//
// Operations accept a Params map rather than typed option structs. Keys are
// normalized (trimmed, lower-cased, dashes folded to underscores) and then
// filtered: keys outside the operation's allow-list are dropped silently,
// never rejected. The one value constraint — state must be "open" or
// "closed" — is strict and fails the call with code INVALID_VALUE before
// dispatch. Responses come back as generic Record maps; this package does
// not define a response schema.
//
// # Executor Implementations
//
// ## SDK Executor (providers/sdk)
//
// Built on the official google/go-github client's request machinery.
// Authenticates with a personal access token, or accepts a fully configured
// *github.Client for advanced setups and tests.
//
// ## CLI Executor (providers/cli)
//
// Shells out to `gh api` through the workspace exec module, inheriting
// authentication from the gh CLI configuration. Best for scripts and
// environments where gh is already set up.
//
// # Usage
//
//	executor, err := sdk.NewExecutor(sdk.WithToken("ghp_xxxxxxxxxxxx"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svc := pulls.NewService(executor)
//
//	// List open pull requests.
//	records, err := svc.List(ctx, "octocat", "hello-world", pulls.Params{
//	    "state": "open",
//	})
//
//	// Stream a sub-collection to a callback.
//	err = svc.FilesEach(ctx, "octocat", "hello-world", 42, nil, func(r pulls.Record) error {
//	    fmt.Println(r["filename"])
//	    return nil
//	})
//
//	// Check merge status: not-found collapses to false.
//	merged, err := svc.IsMerged(ctx, "octocat", "hello-world", 42, nil)
//
//	// Review comments share the service's executor.
//	comment, err := svc.Comments().Create(ctx, "octocat", "hello-world", 42, pulls.Params{
//	    "body":      "Nice catch.",
//	    "commit_id": "6dcb09b5b57875f334f61aebed695e2e4193db5e",
//	    "path":      "file1.txt",
//	    "position":  4,
//	})
//
// # Error Handling
//
// Local validation failures carry the codes MISSING_ARGUMENT and
// INVALID_VALUE and are raised before any request is issued. Remote
// failures propagate unchanged with whatever code and context the executor
// attached (NOT_FOUND, UNAUTHORIZED, RATE_LIMIT_EXCEEDED, ...). The single
// exception is Service.IsMerged, which converts a NOT_FOUND from the
// merge-status endpoint into a false result.
//
// # Testing
//
// The mocks package contains a moq-generated ExecutorMock that records
// calls, making it easy to assert that invalid inputs never reach the
// transport:
//
//	mock := &mocks.ExecutorMock{
//	    GetFunc: func(ctx context.Context, path string, params pulls.Params) (*pulls.Response, error) {
//	        return &pulls.Response{StatusCode: 200, Records: []pulls.Record{{"number": 1}}}, nil
//	    },
//	}
//	svc := pulls.NewService(mock)
package pulls
