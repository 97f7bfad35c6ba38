// Package cli wires the stockctl flows to the terminal: cobra subcommands
// for one-shot use and a small dashboard REPL for interactive sessions.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"stockctl/internal/client/api"
	"stockctl/internal/client/config"
	"stockctl/internal/client/creds"
	"stockctl/internal/client/services"
	"stockctl/internal/logging"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	sessions services.SessionService
	items    services.ItemService
	reader   *bufio.Reader
	out      io.Writer
	userName string
	closeFn  func() error
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := creds.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}
	store := creds.NewSQLiteStore(db)

	apiClient, err := api.NewClient(cfg.BaseURL, cfg.RequestTimeout, store, cfg.CookieHeader, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &App{
		config:   cfg,
		log:      log,
		sessions: services.NewSessionService(apiClient, store, log),
		items:    services.NewItemService(apiClient),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		closeFn:  db.Close,
	}, nil
}

func (a *App) Close() error {
	if a.closeFn != nil {
		return a.closeFn()
	}
	return nil
}

// Run starts the interactive dashboard. An already-present token resumes
// the previous session; otherwise the user is dropped into a login first.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "stockctl inventory dashboard (type 'help' for commands)")
	if !a.isLoggedIn() {
		_ = a.Login(ctx)
	}
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.sessions.LoggedIn(context.Background())
}

func (a *App) getStatus() string {
	if a.userName != "" {
		return fmt.Sprintf(" (%s)", a.userName)
	}
	if a.isLoggedIn() {
		return " (logged in)"
	}
	return ""
}

// showError prints a failed call the way the invoking flow wants it: the
// server's message field, or (raw) the untouched error payload. Transport
// failures get a generic line either way.
func (a *App) showError(err error, raw bool) {
	var apiErr *api.Error
	switch {
	case errors.As(err, &apiErr):
		if raw {
			fmt.Fprintf(a.out, "Error: %s\n", apiErr.Raw())
		} else {
			fmt.Fprintln(a.out, apiErr.Message())
		}
	case errors.Is(err, api.ErrUnavailable):
		fmt.Fprintln(a.out, "Server unavailable, please try again.")
	default:
		fmt.Fprintf(a.out, "Error: %v\n", err)
	}
}
