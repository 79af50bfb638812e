package pulls

import (
	"context"
	"fmt"
)

// CommentsService provides operations on pull request review comments.
// Instances are obtained through Service.Comments and share the parent
// service's executor:
//
//	comments := svc.Comments()
//	records, err := comments.ListForRequest(ctx, "octocat", "hello-world", 42, nil)
type CommentsService struct {
	exec Executor
}

// List lists every review comment in a repository, across all pull
// requests, in response order.
func (c *CommentsService) List(ctx context.Context, owner, repo string, params Params) ([]Record, error) {
	if err := checkRepoSlug(owner, repo); err != nil {
		return nil, err
	}
	filtered, err := prepareParams(commentParams, params)
	if err != nil {
		return nil, err
	}

	resp, err := c.exec.Get(ctx, collectionPath(owner, repo)+"/comments", filtered)
	if err != nil {
		return nil, err
	}
	return resp.Records, nil
}

// ListEach lists every review comment in a repository and delivers each
// record to fn in response order, with the same contract as
// Service.ListEach.
func (c *CommentsService) ListEach(ctx context.Context, owner, repo string, params Params, fn func(Record) error) error {
	records, err := c.List(ctx, owner, repo, params)
	if err != nil {
		return err
	}
	return each(records, fn)
}

// ListForRequest lists the review comments on a single pull request.
func (c *CommentsService) ListForRequest(ctx context.Context, owner, repo string, number int, params Params) ([]Record, error) {
	if err := checkItem(owner, repo, number); err != nil {
		return nil, err
	}
	filtered, err := prepareParams(commentParams, params)
	if err != nil {
		return nil, err
	}

	resp, err := c.exec.Get(ctx, itemPath(owner, repo, number)+"/comments", filtered)
	if err != nil {
		return nil, err
	}
	return resp.Records, nil
}

// ListForRequestEach lists the review comments on a single pull request and
// delivers each record to fn, with the same contract as Service.ListEach.
func (c *CommentsService) ListForRequestEach(ctx context.Context, owner, repo string, number int, params Params, fn func(Record) error) error {
	records, err := c.ListForRequest(ctx, owner, repo, number, params)
	if err != nil {
		return err
	}
	return each(records, fn)
}

// Get retrieves a single review comment by its id.
func (c *CommentsService) Get(ctx context.Context, owner, repo string, id int64, params Params) (Record, error) {
	if err := checkCommentID(owner, repo, id); err != nil {
		return nil, err
	}
	filtered, err := prepareParams(commentParams, params)
	if err != nil {
		return nil, err
	}

	resp, err := c.exec.Get(ctx, commentPath(owner, repo, id), filtered)
	if err != nil {
		return nil, err
	}
	return resp.Record, nil
}

// Create adds a review comment to a pull request.
// Recognized params: body, commit_id, path, position for a new comment, or
// body, in_reply_to to reply to an existing one. As with Service.Create,
// shape validation is left to the remote API.
func (c *CommentsService) Create(ctx context.Context, owner, repo string, number int, params Params) (Record, error) {
	if err := checkItem(owner, repo, number); err != nil {
		return nil, err
	}
	filtered, err := prepareParams(commentParams, params)
	if err != nil {
		return nil, err
	}

	resp, err := c.exec.Post(ctx, itemPath(owner, repo, number)+"/comments", filtered)
	if err != nil {
		return nil, err
	}
	return resp.Record, nil
}

// Edit updates the body of an existing review comment.
func (c *CommentsService) Edit(ctx context.Context, owner, repo string, id int64, params Params) (Record, error) {
	if err := checkCommentID(owner, repo, id); err != nil {
		return nil, err
	}
	filtered, err := prepareParams(commentParams, params)
	if err != nil {
		return nil, err
	}

	resp, err := c.exec.Patch(ctx, commentPath(owner, repo, id), filtered)
	if err != nil {
		return nil, err
	}
	return resp.Record, nil
}

// Delete removes a review comment.
func (c *CommentsService) Delete(ctx context.Context, owner, repo string, id int64, params Params) error {
	if err := checkCommentID(owner, repo, id); err != nil {
		return err
	}
	filtered, err := prepareParams(commentParams, params)
	if err != nil {
		return err
	}

	_, err = c.exec.Delete(ctx, commentPath(owner, repo, id), filtered)
	return err
}

func checkCommentID(owner, repo string, id int64) error {
	if err := checkRepoSlug(owner, repo); err != nil {
		return err
	}
	if id <= 0 {
		return newMissingArgumentError("comment id")
	}
	return nil
}

func commentPath(owner, repo string, id int64) string {
	return fmt.Sprintf("repos/%s/%s/pulls/comments/%d", owner, repo, id)
}
