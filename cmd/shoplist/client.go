package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pantryhq/shoplist/internal/config"
	"github.com/pantryhq/shoplist/pkg/board"
	"github.com/pantryhq/shoplist/pkg/client"
	"github.com/pantryhq/shoplist/pkg/scheduler"
)

func newClient(cfg *config.Configuration) (*client.Client, error) {
	return client.NewClient(cfg.Client.URL,
		client.WithHTTPClient(&http.Client{Timeout: cfg.Client.Timeout}),
		client.WithMaxTries(cfg.Client.MaxRetries),
	)
}

// openBoard loads the list from the server. The returned func releases the scheduler.
func openBoard(ctx context.Context, cfg *config.Configuration) (*board.Board, func(), error) {
	cl, err := newClient(cfg)
	if err != nil {
		return nil, nil, err
	}

	sched := scheduler.NewScheduler(cfg.Board.NumWorkers)
	b, err := board.New(ctx, cl, sched, board.Options{
		CheckDelay:        cfg.Board.CheckDelay,
		RollbackOnFailure: cfg.Board.RollbackOnFailure,
		Notifier:          board.NotifierFunc(printFailure),
	})
	if err != nil {
		sched.Close()
		return nil, nil, err
	}
	return b, sched.Close, nil
}

func printFailure(err error) {
	fmt.Fprintln(os.Stderr, color.RedString("✗ %v", err))
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// optionalID returns nil unless the flag was set.
func optionalID(cmd *cobra.Command, name string) (*int64, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}
	v, err := cmd.Flags().GetInt64(name)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func waitCommit(ctx context.Context, future *scheduler.Future[scheduler.Result[any]]) error {
	result, err := future.Wait(ctx)
	if err != nil {
		return err
	}
	return result.Err
}
