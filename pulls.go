package pulls

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/jmgilman/go/errors"
)

// Service provides operations on the pull requests of a repository.
// It validates and normalizes inputs, builds API paths, and delegates the
// actual HTTP work to an injected Executor.
//
// Example:
//
//	executor, err := sdk.NewExecutor(sdk.WithToken("ghp_..."))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svc := pulls.NewService(executor)
//
//	records, err := svc.List(ctx, "octocat", "hello-world", pulls.Params{
//	    "state": "open",
//	})
type Service struct {
	exec Executor

	commentsOnce sync.Once
	comments     *CommentsService
}

// NewService creates a Service that dispatches requests through the given
// executor.
func NewService(exec Executor) *Service {
	return &Service{exec: exec}
}

// Executor returns the underlying Executor.
// This is an escape hatch for requests outside the pull-request family.
func (s *Service) Executor() Executor {
	return s.exec
}

// List lists pull requests in a repository.
// Recognized params: state (open or closed), head, base, plus the shared
// media-type and OAuth keys. Unrecognized keys are dropped.
func (s *Service) List(ctx context.Context, owner, repo string, params Params) ([]Record, error) {
	if err := checkRepoSlug(owner, repo); err != nil {
		return nil, err
	}
	filtered, err := prepareParams(requestParams, params)
	if err != nil {
		return nil, err
	}

	resp, err := s.exec.Get(ctx, collectionPath(owner, repo), filtered)
	if err != nil {
		return nil, err
	}
	return resp.Records, nil
}

// ListEach lists pull requests and delivers each record to fn in response
// order. Delivery begins only after the full response is received; a
// non-nil error from fn stops iteration and is returned.
func (s *Service) ListEach(ctx context.Context, owner, repo string, params Params, fn func(Record) error) error {
	records, err := s.List(ctx, owner, repo, params)
	if err != nil {
		return err
	}
	return each(records, fn)
}

// Get retrieves a single pull request by number.
func (s *Service) Get(ctx context.Context, owner, repo string, number int, params Params) (Record, error) {
	if err := checkItem(owner, repo, number); err != nil {
		return nil, err
	}
	filtered, err := prepareParams(requestParams, params)
	if err != nil {
		return nil, err
	}

	resp, err := s.exec.Get(ctx, itemPath(owner, repo, number), filtered)
	if err != nil {
		return nil, err
	}
	return resp.Record, nil
}

// Create opens a new pull request.
// Two parameter shapes are accepted: title/body/head/base, or
// issue/head/base to promote an existing issue. The shapes are not checked
// for mutual exclusivity here; allow-listed keys are forwarded as-is and
// the remote API owns shape validation.
func (s *Service) Create(ctx context.Context, owner, repo string, params Params) (Record, error) {
	if err := checkRepoSlug(owner, repo); err != nil {
		return nil, err
	}
	filtered, err := prepareParams(requestParams, params)
	if err != nil {
		return nil, err
	}

	resp, err := s.exec.Post(ctx, collectionPath(owner, repo), filtered)
	if err != nil {
		return nil, err
	}
	return resp.Record, nil
}

// Update edits an existing pull request.
// Recognized params: title, body, state (open or closed).
func (s *Service) Update(ctx context.Context, owner, repo string, number int, params Params) (Record, error) {
	if err := checkItem(owner, repo, number); err != nil {
		return nil, err
	}
	filtered, err := prepareParams(requestParams, params)
	if err != nil {
		return nil, err
	}

	resp, err := s.exec.Patch(ctx, itemPath(owner, repo, number), filtered)
	if err != nil {
		return nil, err
	}
	return resp.Record, nil
}

// Commits lists the commits on a pull request, in response order.
func (s *Service) Commits(ctx context.Context, owner, repo string, number int, params Params) ([]Record, error) {
	return s.listSub(ctx, owner, repo, number, "commits", params)
}

// CommitsEach lists the commits on a pull request and delivers each record
// to fn, with the same contract as ListEach.
func (s *Service) CommitsEach(ctx context.Context, owner, repo string, number int, params Params, fn func(Record) error) error {
	records, err := s.Commits(ctx, owner, repo, number, params)
	if err != nil {
		return err
	}
	return each(records, fn)
}

// Files lists the changed files of a pull request, in response order.
func (s *Service) Files(ctx context.Context, owner, repo string, number int, params Params) ([]Record, error) {
	return s.listSub(ctx, owner, repo, number, "files", params)
}

// FilesEach lists the changed files of a pull request and delivers each
// record to fn, with the same contract as ListEach.
func (s *Service) FilesEach(ctx context.Context, owner, repo string, number int, params Params, fn func(Record) error) error {
	records, err := s.Files(ctx, owner, repo, number, params)
	if err != nil {
		return err
	}
	return each(records, fn)
}

// IsMerged reports whether a pull request has been merged.
// The merge-status endpoint answers with success when the pull request is
// merged and not-found when it is not; that one remote condition collapses
// to false here. Any other failure propagates unchanged.
func (s *Service) IsMerged(ctx context.Context, owner, repo string, number int, params Params) (bool, error) {
	if err := checkItem(owner, repo, number); err != nil {
		return false, err
	}
	filtered, err := prepareParams(requestParams, params)
	if err != nil {
		return false, err
	}

	_, err = s.exec.Get(ctx, itemPath(owner, repo, number)+"/merge", filtered)
	if err != nil {
		if errors.GetCode(err) == errors.CodeNotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Merge merges a pull request.
// Recognized params: commit_message.
func (s *Service) Merge(ctx context.Context, owner, repo string, number int, params Params) (Record, error) {
	if err := checkItem(owner, repo, number); err != nil {
		return nil, err
	}
	filtered, err := prepareParams(requestParams, params)
	if err != nil {
		return nil, err
	}

	resp, err := s.exec.Put(ctx, itemPath(owner, repo, number)+"/merge", filtered)
	if err != nil {
		return nil, err
	}
	return resp.Record, nil
}

// Comments returns the review-comment sub-resource, sharing this service's
// executor. The handle is constructed once and reused across calls.
func (s *Service) Comments() *CommentsService {
	s.commentsOnce.Do(func() {
		s.comments = &CommentsService{exec: s.exec}
	})
	return s.comments
}

// listSub fetches one of the pull request's sub-collections (commits, files).
func (s *Service) listSub(ctx context.Context, owner, repo string, number int, sub string, params Params) ([]Record, error) {
	if err := checkItem(owner, repo, number); err != nil {
		return nil, err
	}
	filtered, err := prepareParams(requestParams, params)
	if err != nil {
		return nil, err
	}

	resp, err := s.exec.Get(ctx, itemPath(owner, repo, number)+"/"+sub, filtered)
	if err != nil {
		return nil, err
	}
	return resp.Records, nil
}

// each delivers records to fn sequentially, stopping at the first error.
func each(records []Record, fn func(Record) error) error {
	if fn == nil {
		return errors.New(errors.CodeInvalidInput, "callback cannot be nil")
	}
	for _, record := range records {
		if err := fn(record); err != nil {
			return err
		}
	}
	return nil
}

// checkRepoSlug verifies the owner and repository identifiers are present.
// Every operation requires them before any request is issued.
func checkRepoSlug(owner, repo string) error {
	if strings.TrimSpace(owner) == "" {
		return newMissingArgumentError("owner")
	}
	if strings.TrimSpace(repo) == "" {
		return newMissingArgumentError("repository")
	}
	return nil
}

// checkItem verifies the identifiers required by item-scoped operations.
func checkItem(owner, repo string, number int) error {
	if err := checkRepoSlug(owner, repo); err != nil {
		return err
	}
	if number <= 0 {
		return newMissingArgumentError("number")
	}
	return nil
}

// prepareParams filters params to the given allow-list and validates
// constrained values. Returns a new Params; the input is never mutated.
func prepareParams(allowed map[string]struct{}, params Params) (Params, error) {
	filtered := filterKnown(allowed, params)
	if err := validateState(filtered); err != nil {
		return nil, err
	}
	return filtered, nil
}

func collectionPath(owner, repo string) string {
	return fmt.Sprintf("repos/%s/%s/pulls", owner, repo)
}

func itemPath(owner, repo string, number int) string {
	return fmt.Sprintf("repos/%s/%s/pulls/%d", owner, repo, number)
}
