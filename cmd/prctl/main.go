// Command prctl works with the pull requests of a GitHub repository from
// the command line. It is a thin front end over the pulls package: every
// subcommand maps to one endpoint operation.
//
// Configuration is read from $PRCTL_CONFIG or ~/.config/prctl/config.toml;
// a GITHUB_TOKEN environment variable is enough to get started.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"os"

	"github.com/google/go-github/v67/github"
	"github.com/urfave/cli/v3"

	"github.com/jmgilman/go/pulls"
	"github.com/jmgilman/go/pulls/internal/config"
	clix "github.com/jmgilman/go/pulls/providers/cli"
	"github.com/jmgilman/go/pulls/providers/sdk"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "prctl: %v\n", err)
		os.Exit(1)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "prctl: %v\n", err)
		os.Exit(1)
	}
}

func initializeApp() (*cli.Command, error) {
	cfg, err := config.Load(os.Getenv("PRCTL_CONFIG"))
	if err != nil {
		return nil, err
	}

	svc, err := newService(cfg)
	if err != nil {
		return nil, err
	}

	app := &cli.Command{
		Name:  "prctl",
		Usage: "work with the pull requests of a GitHub repository",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "owner", Aliases: []string{"o"}, Usage: "repository owner", Value: cfg.Owner},
			&cli.StringFlag{Name: "repo", Aliases: []string{"r"}, Usage: "repository name", Value: cfg.Repository},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "enable debug logging"},
		},
		Commands: []*cli.Command{
			listCommand(svc),
			getCommand(svc),
			createCommand(svc),
			updateCommand(svc),
			mergeCommand(svc),
			mergedCommand(svc),
			subCollectionCommand("commits", "list the commits on a pull request", svc.Commits),
			subCollectionCommand("files", "list the changed files of a pull request", svc.Files),
			commentsCommand(svc),
		},
	}

	return app, nil
}

// newService wires the configured executor backend into a pulls service.
func newService(cfg *config.Config) (*pulls.Service, error) {
	switch cfg.Backend {
	case config.BackendCLI:
		executor, err := clix.NewExecutor()
		if err != nil {
			return nil, err
		}
		return pulls.NewService(executor), nil
	default:
		opts := []sdk.Option{sdk.WithToken(cfg.Token)}
		if cfg.BaseURL != "" {
			client, err := enterpriseClient(cfg.Token, cfg.BaseURL)
			if err != nil {
				return nil, err
			}
			opts = []sdk.Option{sdk.WithClient(client)}
		}
		executor, err := sdk.NewExecutor(opts...)
		if err != nil {
			return nil, err
		}
		return pulls.NewService(executor), nil
	}
}

// enterpriseClient builds a go-github client pointed at a non-default API
// root, for GitHub Enterprise installs.
func enterpriseClient(token, baseURL string) (*github.Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base_url %q: %w", baseURL, err)
	}
	client := github.NewClient(nil).WithAuthToken(token)
	client.BaseURL = parsed
	return client, nil
}

func listCommand(svc *pulls.Service) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "list pull requests",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "state", Usage: "filter by state (open or closed)"},
			&cli.StringFlag{Name: "head", Usage: "filter by head branch"},
			&cli.StringFlag{Name: "base", Usage: "filter by base branch"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			setupLogging(cmd)
			params := paramsFromFlags(cmd, "state", "head", "base")
			records, err := svc.List(ctx, cmd.String("owner"), cmd.String("repo"), params)
			if err != nil {
				return err
			}
			return printJSON(records)
		},
	}
}

func getCommand(svc *pulls.Service) *cli.Command {
	return &cli.Command{
		Name:  "get",
		Usage: "show a single pull request",
		Flags: []cli.Flag{numberFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			setupLogging(cmd)
			record, err := svc.Get(ctx, cmd.String("owner"), cmd.String("repo"), cmd.Int("number"), nil)
			if err != nil {
				return err
			}
			return printJSON(record)
		},
	}
}

func createCommand(svc *pulls.Service) *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "open a new pull request",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "title", Usage: "pull request title"},
			&cli.StringFlag{Name: "body", Usage: "pull request description"},
			&cli.StringFlag{Name: "head", Usage: "branch with the changes"},
			&cli.StringFlag{Name: "base", Usage: "branch to merge into"},
			&cli.IntFlag{Name: "issue", Usage: "issue number to promote instead of a title"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			setupLogging(cmd)
			params := paramsFromFlags(cmd, "title", "body", "head", "base")
			if cmd.IsSet("issue") {
				params["issue"] = cmd.Int("issue")
			}
			record, err := svc.Create(ctx, cmd.String("owner"), cmd.String("repo"), params)
			if err != nil {
				return err
			}
			return printJSON(record)
		},
	}
}

func updateCommand(svc *pulls.Service) *cli.Command {
	return &cli.Command{
		Name:  "update",
		Usage: "edit a pull request",
		Flags: []cli.Flag{
			numberFlag(),
			&cli.StringFlag{Name: "title", Usage: "new title"},
			&cli.StringFlag{Name: "body", Usage: "new description"},
			&cli.StringFlag{Name: "state", Usage: "new state (open or closed)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			setupLogging(cmd)
			params := paramsFromFlags(cmd, "title", "body", "state")
			record, err := svc.Update(ctx, cmd.String("owner"), cmd.String("repo"), cmd.Int("number"), params)
			if err != nil {
				return err
			}
			return printJSON(record)
		},
	}
}

func mergeCommand(svc *pulls.Service) *cli.Command {
	return &cli.Command{
		Name:  "merge",
		Usage: "merge a pull request",
		Flags: []cli.Flag{
			numberFlag(),
			&cli.StringFlag{Name: "message", Usage: "merge commit message"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			setupLogging(cmd)
			params := pulls.Params{}
			if cmd.IsSet("message") {
				params["commit_message"] = cmd.String("message")
			}
			record, err := svc.Merge(ctx, cmd.String("owner"), cmd.String("repo"), cmd.Int("number"), params)
			if err != nil {
				return err
			}
			return printJSON(record)
		},
	}
}

func mergedCommand(svc *pulls.Service) *cli.Command {
	return &cli.Command{
		Name:  "merged",
		Usage: "report whether a pull request has been merged",
		Flags: []cli.Flag{numberFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			setupLogging(cmd)
			merged, err := svc.IsMerged(ctx, cmd.String("owner"), cmd.String("repo"), cmd.Int("number"), nil)
			if err != nil {
				return err
			}
			fmt.Println(merged)
			return nil
		},
	}
}

// subCollectionCommand builds the commits and files commands, which differ
// only in name and the service method they call.
func subCollectionCommand(name, usage string, fetch func(context.Context, string, string, int, pulls.Params) ([]pulls.Record, error)) *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: usage,
		Flags: []cli.Flag{numberFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			setupLogging(cmd)
			records, err := fetch(ctx, cmd.String("owner"), cmd.String("repo"), cmd.Int("number"), nil)
			if err != nil {
				return err
			}
			return printJSON(records)
		},
	}
}

func commentsCommand(svc *pulls.Service) *cli.Command {
	return &cli.Command{
		Name:  "comments",
		Usage: "work with pull request review comments",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list review comments (all, or one pull request's with --number)",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "number", Aliases: []string{"n"}, Usage: "pull request number"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					setupLogging(cmd)
					owner, repo := cmd.String("owner"), cmd.String("repo")
					var records []pulls.Record
					var err error
					if cmd.IsSet("number") {
						records, err = svc.Comments().ListForRequest(ctx, owner, repo, cmd.Int("number"), nil)
					} else {
						records, err = svc.Comments().List(ctx, owner, repo, nil)
					}
					if err != nil {
						return err
					}
					return printJSON(records)
				},
			},
			{
				Name:  "get",
				Usage: "show a single review comment",
				Flags: []cli.Flag{idFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					setupLogging(cmd)
					record, err := svc.Comments().Get(ctx, cmd.String("owner"), cmd.String("repo"), int64(cmd.Int("id")), nil)
					if err != nil {
						return err
					}
					return printJSON(record)
				},
			},
			{
				Name:  "create",
				Usage: "add a review comment to a pull request",
				Flags: []cli.Flag{
					numberFlag(),
					&cli.StringFlag{Name: "comment-body", Usage: "comment text", Required: true},
					&cli.StringFlag{Name: "commit", Usage: "commit SHA to comment on"},
					&cli.StringFlag{Name: "path", Usage: "file path to comment on"},
					&cli.IntFlag{Name: "position", Usage: "diff position to comment on"},
					&cli.IntFlag{Name: "reply-to", Usage: "comment id to reply to"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					setupLogging(cmd)
					params := pulls.Params{"body": cmd.String("comment-body")}
					if cmd.IsSet("commit") {
						params["commit_id"] = cmd.String("commit")
					}
					if cmd.IsSet("path") {
						params["path"] = cmd.String("path")
					}
					if cmd.IsSet("position") {
						params["position"] = cmd.Int("position")
					}
					if cmd.IsSet("reply-to") {
						params["in_reply_to"] = cmd.Int("reply-to")
					}
					record, err := svc.Comments().Create(ctx, cmd.String("owner"), cmd.String("repo"), cmd.Int("number"), params)
					if err != nil {
						return err
					}
					return printJSON(record)
				},
			},
			{
				Name:  "edit",
				Usage: "update the body of a review comment",
				Flags: []cli.Flag{
					idFlag(),
					&cli.StringFlag{Name: "comment-body", Usage: "new comment text", Required: true},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					setupLogging(cmd)
					params := pulls.Params{"body": cmd.String("comment-body")}
					record, err := svc.Comments().Edit(ctx, cmd.String("owner"), cmd.String("repo"), int64(cmd.Int("id")), params)
					if err != nil {
						return err
					}
					return printJSON(record)
				},
			},
			{
				Name:  "delete",
				Usage: "remove a review comment",
				Flags: []cli.Flag{idFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					setupLogging(cmd)
					return svc.Comments().Delete(ctx, cmd.String("owner"), cmd.String("repo"), int64(cmd.Int("id")), nil)
				},
			},
		},
	}
}

func numberFlag() cli.Flag {
	return &cli.IntFlag{Name: "number", Aliases: []string{"n"}, Usage: "pull request number", Required: true}
}

func idFlag() cli.Flag {
	return &cli.IntFlag{Name: "id", Usage: "review comment id", Required: true}
}

// paramsFromFlags collects the named string flags that were set.
func paramsFromFlags(cmd *cli.Command, names ...string) pulls.Params {
	params := pulls.Params{}
	for _, name := range names {
		if cmd.IsSet(name) {
			params[name] = cmd.String(name)
		}
	}
	return params
}

// setupLogging configures the default slog logger from the verbose flag.
func setupLogging(cmd *cli.Command) {
	level := slog.LevelWarn
	if cmd.Bool("verbose") {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	slog.Debug("resolved repository", "owner", cmd.String("owner"), "repo", cmd.String("repo"))
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
