package pulls_test

import (
	"context"
	"testing"

	"github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/pulls"
	"github.com/jmgilman/go/pulls/mocks"
)

// okGet returns a mock executor whose Get answers with the given records.
func okGet(records []pulls.Record) *mocks.ExecutorMock {
	return &mocks.ExecutorMock{
		GetFunc: func(_ context.Context, _ string, _ pulls.Params) (*pulls.Response, error) {
			return &pulls.Response{StatusCode: 200, Records: records}, nil
		},
	}
}

func TestService_List(t *testing.T) {
	t.Parallel()

	t.Run("returns records in response order", func(t *testing.T) {
		t.Parallel()

		mock := okGet([]pulls.Record{{"number": 1.0}, {"number": 2.0}})
		svc := pulls.NewService(mock)

		records, err := svc.List(context.Background(), "octocat", "hello-world", nil)

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, 1.0, records[0]["number"])
		assert.Equal(t, 2.0, records[1]["number"])

		calls := mock.GetCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "repos/octocat/hello-world/pulls", calls[0].Path)
	})

	t.Run("forwards allow-listed filter params", func(t *testing.T) {
		t.Parallel()

		mock := okGet(nil)
		svc := pulls.NewService(mock)

		_, err := svc.List(context.Background(), "octocat", "hello-world", pulls.Params{
			"state": "open",
			"base":  "main",
			"junk":  "dropped",
		})

		require.NoError(t, err)
		calls := mock.GetCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, pulls.Params{"state": "open", "base": "main"}, calls[0].Params)
	})

	t.Run("rejects an out-of-range state before dispatch", func(t *testing.T) {
		t.Parallel()

		mock := okGet(nil)
		svc := pulls.NewService(mock)

		_, err := svc.List(context.Background(), "octocat", "hello-world", pulls.Params{"state": "merged"})

		require.Error(t, err)
		assert.Equal(t, pulls.CodeInvalidValue, errors.GetCode(err))
		assert.Empty(t, mock.GetCalls())
	})

	tests := []struct {
		name  string
		owner string
		repo  string
	}{
		{name: "empty owner", owner: "", repo: "hello-world"},
		{name: "empty repository", owner: "octocat", repo: ""},
		{name: "blank owner", owner: "   ", repo: "hello-world"},
	}

	for _, tt := range tests {
		t.Run(tt.name+" fails before dispatch", func(t *testing.T) {
			t.Parallel()

			mock := okGet(nil)
			svc := pulls.NewService(mock)

			_, err := svc.List(context.Background(), tt.owner, tt.repo, nil)

			require.Error(t, err)
			assert.Equal(t, pulls.CodeMissingArgument, errors.GetCode(err))
			assert.Empty(t, mock.GetCalls())
		})
	}
}

func TestService_ListEach(t *testing.T) {
	t.Parallel()

	t.Run("delivers each record in order with a single request", func(t *testing.T) {
		t.Parallel()

		mock := okGet([]pulls.Record{{"number": 1.0}, {"number": 2.0}, {"number": 3.0}})
		svc := pulls.NewService(mock)

		var seen []float64
		err := svc.ListEach(context.Background(), "octocat", "hello-world", nil, func(r pulls.Record) error {
			seen = append(seen, r["number"].(float64))
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, []float64{1, 2, 3}, seen)

		calls := mock.GetCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "repos/octocat/hello-world/pulls", calls[0].Path)
	})

	t.Run("stops at the first callback error", func(t *testing.T) {
		t.Parallel()

		mock := okGet([]pulls.Record{{"number": 1.0}, {"number": 2.0}})
		svc := pulls.NewService(mock)

		stop := errors.New(errors.CodeInternal, "stop")
		var delivered int
		err := svc.ListEach(context.Background(), "octocat", "hello-world", nil, func(pulls.Record) error {
			delivered++
			return stop
		})

		require.Error(t, err)
		assert.Equal(t, 1, delivered)
	})

	t.Run("rejects a nil callback", func(t *testing.T) {
		t.Parallel()

		svc := pulls.NewService(okGet(nil))

		err := svc.ListEach(context.Background(), "octocat", "hello-world", nil, nil)

		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
	})
}

func TestService_Get(t *testing.T) {
	t.Parallel()

	t.Run("fetches the item path", func(t *testing.T) {
		t.Parallel()

		mock := &mocks.ExecutorMock{
			GetFunc: func(_ context.Context, _ string, _ pulls.Params) (*pulls.Response, error) {
				return &pulls.Response{StatusCode: 200, Record: pulls.Record{"number": 42.0}}, nil
			},
		}
		svc := pulls.NewService(mock)

		record, err := svc.Get(context.Background(), "octocat", "hello-world", 42, nil)

		require.NoError(t, err)
		assert.Equal(t, 42.0, record["number"])

		calls := mock.GetCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "repos/octocat/hello-world/pulls/42", calls[0].Path)
	})

	t.Run("requires a positive number", func(t *testing.T) {
		t.Parallel()

		mock := okGet(nil)
		svc := pulls.NewService(mock)

		_, err := svc.Get(context.Background(), "octocat", "hello-world", 0, nil)

		require.Error(t, err)
		assert.Equal(t, pulls.CodeMissingArgument, errors.GetCode(err))
		assert.Empty(t, mock.GetCalls())
	})
}

func TestService_Create(t *testing.T) {
	t.Parallel()

	t.Run("filters unrecognized keys out of the body", func(t *testing.T) {
		t.Parallel()

		mock := &mocks.ExecutorMock{
			PostFunc: func(_ context.Context, _ string, _ pulls.Params) (*pulls.Response, error) {
				return &pulls.Response{StatusCode: 201, Record: pulls.Record{"number": 1.0}}, nil
			},
		}
		svc := pulls.NewService(mock)

		_, err := svc.Create(context.Background(), "octocat", "hello-world", pulls.Params{
			"title":     "Amazing new feature",
			"body":      "Please pull this in!",
			"head":      "octocat:new-feature",
			"base":      "master",
			"bogus_key": "must never reach the executor",
		})

		require.NoError(t, err)
		calls := mock.PostCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "repos/octocat/hello-world/pulls", calls[0].Path)
		assert.Equal(t, pulls.Params{
			"title": "Amazing new feature",
			"body":  "Please pull this in!",
			"head":  "octocat:new-feature",
			"base":  "master",
		}, calls[0].Params)
	})

	t.Run("forwards the issue-promotion shape untouched", func(t *testing.T) {
		t.Parallel()

		mock := &mocks.ExecutorMock{
			PostFunc: func(_ context.Context, _ string, _ pulls.Params) (*pulls.Response, error) {
				return &pulls.Response{StatusCode: 201, Record: pulls.Record{}}, nil
			},
		}
		svc := pulls.NewService(mock)

		_, err := svc.Create(context.Background(), "octocat", "hello-world", pulls.Params{
			"issue": 5,
			"head":  "octocat:new-feature",
			"base":  "master",
		})

		require.NoError(t, err)
		calls := mock.PostCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, pulls.Params{"issue": 5, "head": "octocat:new-feature", "base": "master"}, calls[0].Params)
	})

	t.Run("normalizes key spelling before filtering", func(t *testing.T) {
		t.Parallel()

		mock := &mocks.ExecutorMock{
			PostFunc: func(_ context.Context, _ string, _ pulls.Params) (*pulls.Response, error) {
				return &pulls.Response{StatusCode: 201, Record: pulls.Record{}}, nil
			},
		}
		svc := pulls.NewService(mock)

		_, err := svc.Create(context.Background(), "octocat", "hello-world", pulls.Params{
			" Title ": "Amazing new feature",
			"Head":    "octocat:new-feature",
		})

		require.NoError(t, err)
		calls := mock.PostCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, pulls.Params{"title": "Amazing new feature", "head": "octocat:new-feature"}, calls[0].Params)
	})

	t.Run("propagates remote errors unchanged", func(t *testing.T) {
		t.Parallel()

		remote := errors.New(errors.CodeInvalidInput, "Validation Failed")
		mock := &mocks.ExecutorMock{
			PostFunc: func(_ context.Context, _ string, _ pulls.Params) (*pulls.Response, error) {
				return nil, remote
			},
		}
		svc := pulls.NewService(mock)

		_, err := svc.Create(context.Background(), "octocat", "hello-world", pulls.Params{"title": "x"})

		require.Error(t, err)
		assert.Equal(t, remote, err)
	})
}

func TestService_Update(t *testing.T) {
	t.Parallel()

	t.Run("patches the item path", func(t *testing.T) {
		t.Parallel()

		mock := &mocks.ExecutorMock{
			PatchFunc: func(_ context.Context, _ string, _ pulls.Params) (*pulls.Response, error) {
				return &pulls.Response{StatusCode: 200, Record: pulls.Record{"state": "closed"}}, nil
			},
		}
		svc := pulls.NewService(mock)

		record, err := svc.Update(context.Background(), "octocat", "hello-world", 42, pulls.Params{
			"title": "New title",
			"state": "closed",
		})

		require.NoError(t, err)
		assert.Equal(t, "closed", record["state"])

		calls := mock.PatchCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "repos/octocat/hello-world/pulls/42", calls[0].Path)
	})

	t.Run("rejects state merged before dispatch", func(t *testing.T) {
		t.Parallel()

		mock := &mocks.ExecutorMock{}
		svc := pulls.NewService(mock)

		_, err := svc.Update(context.Background(), "octocat", "hello-world", 42, pulls.Params{"state": "merged"})

		require.Error(t, err)
		assert.Equal(t, pulls.CodeInvalidValue, errors.GetCode(err))
		assert.Empty(t, mock.PatchCalls())
	})
}

func TestService_SubCollections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		wantPath string
		call     func(svc *pulls.Service) ([]pulls.Record, error)
	}{
		{
			name:     "commits",
			wantPath: "repos/octocat/hello-world/pulls/42/commits",
			call: func(svc *pulls.Service) ([]pulls.Record, error) {
				return svc.Commits(context.Background(), "octocat", "hello-world", 42, nil)
			},
		},
		{
			name:     "files",
			wantPath: "repos/octocat/hello-world/pulls/42/files",
			call: func(svc *pulls.Service) ([]pulls.Record, error) {
				return svc.Files(context.Background(), "octocat", "hello-world", 42, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock := okGet([]pulls.Record{{"sha": "abc"}})
			svc := pulls.NewService(mock)

			records, err := tt.call(svc)

			require.NoError(t, err)
			require.Len(t, records, 1)

			calls := mock.GetCalls()
			require.Len(t, calls, 1)
			assert.Equal(t, tt.wantPath, calls[0].Path)
		})
	}

	t.Run("commits requires a positive number", func(t *testing.T) {
		t.Parallel()

		mock := okGet(nil)
		svc := pulls.NewService(mock)

		_, err := svc.Commits(context.Background(), "octocat", "hello-world", 0, nil)

		require.Error(t, err)
		assert.Equal(t, pulls.CodeMissingArgument, errors.GetCode(err))
		assert.Empty(t, mock.GetCalls())
	})

	t.Run("files delivers records to the callback in order", func(t *testing.T) {
		t.Parallel()

		mock := okGet([]pulls.Record{{"filename": "a.txt"}, {"filename": "b.txt"}})
		svc := pulls.NewService(mock)

		var seen []string
		err := svc.FilesEach(context.Background(), "octocat", "hello-world", 42, nil, func(r pulls.Record) error {
			seen = append(seen, r["filename"].(string))
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"a.txt", "b.txt"}, seen)
	})
}

func TestService_IsMerged(t *testing.T) {
	t.Parallel()

	t.Run("true on success", func(t *testing.T) {
		t.Parallel()

		mock := &mocks.ExecutorMock{
			GetFunc: func(_ context.Context, _ string, _ pulls.Params) (*pulls.Response, error) {
				return &pulls.Response{StatusCode: 204}, nil
			},
		}
		svc := pulls.NewService(mock)

		merged, err := svc.IsMerged(context.Background(), "octocat", "hello-world", 42, nil)

		require.NoError(t, err)
		assert.True(t, merged)

		calls := mock.GetCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "repos/octocat/hello-world/pulls/42/merge", calls[0].Path)
	})

	t.Run("false on not found", func(t *testing.T) {
		t.Parallel()

		mock := &mocks.ExecutorMock{
			GetFunc: func(_ context.Context, _ string, _ pulls.Params) (*pulls.Response, error) {
				return nil, errors.New(errors.CodeNotFound, "Not Found")
			},
		}
		svc := pulls.NewService(mock)

		merged, err := svc.IsMerged(context.Background(), "octocat", "hello-world", 42, nil)

		require.NoError(t, err)
		assert.False(t, merged)
	})

	t.Run("other errors propagate", func(t *testing.T) {
		t.Parallel()

		mock := &mocks.ExecutorMock{
			GetFunc: func(_ context.Context, _ string, _ pulls.Params) (*pulls.Response, error) {
				return nil, errors.New(errors.CodeRateLimit, "API rate limit exceeded")
			},
		}
		svc := pulls.NewService(mock)

		_, err := svc.IsMerged(context.Background(), "octocat", "hello-world", 42, nil)

		require.Error(t, err)
		assert.Equal(t, errors.CodeRateLimit, errors.GetCode(err))
	})
}

func TestService_Merge(t *testing.T) {
	t.Parallel()

	t.Run("puts the merge path with the commit message", func(t *testing.T) {
		t.Parallel()

		mock := &mocks.ExecutorMock{
			PutFunc: func(_ context.Context, _ string, _ pulls.Params) (*pulls.Response, error) {
				return &pulls.Response{StatusCode: 200, Record: pulls.Record{"merged": true}}, nil
			},
		}
		svc := pulls.NewService(mock)

		record, err := svc.Merge(context.Background(), "octocat", "hello-world", 42, pulls.Params{
			"Commit-Message": "Shipped!",
		})

		require.NoError(t, err)
		assert.Equal(t, true, record["merged"])

		calls := mock.PutCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "repos/octocat/hello-world/pulls/42/merge", calls[0].Path)
		assert.Equal(t, pulls.Params{"commit_message": "Shipped!"}, calls[0].Params)
	})

	t.Run("requires a positive number", func(t *testing.T) {
		t.Parallel()

		mock := &mocks.ExecutorMock{}
		svc := pulls.NewService(mock)

		_, err := svc.Merge(context.Background(), "octocat", "hello-world", -1, nil)

		require.Error(t, err)
		assert.Equal(t, pulls.CodeMissingArgument, errors.GetCode(err))
		assert.Empty(t, mock.PutCalls())
	})
}

func TestService_Comments(t *testing.T) {
	t.Parallel()

	t.Run("returns the same handle on repeated calls", func(t *testing.T) {
		t.Parallel()

		svc := pulls.NewService(&mocks.ExecutorMock{})

		first := svc.Comments()
		second := svc.Comments()

		require.NotNil(t, first)
		assert.Same(t, first, second)
	})

	t.Run("shares the service executor", func(t *testing.T) {
		t.Parallel()

		mock := okGet([]pulls.Record{{"id": 10.0}})
		svc := pulls.NewService(mock)

		records, err := svc.Comments().ListForRequest(context.Background(), "octocat", "hello-world", 42, nil)

		require.NoError(t, err)
		require.Len(t, records, 1)

		calls := mock.GetCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "repos/octocat/hello-world/pulls/42/comments", calls[0].Path)
	})
}
