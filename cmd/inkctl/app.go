package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"inkwell/internal/client"
	"inkwell/internal/client/session"
	"inkwell/internal/dashboard"

	"github.com/pkg/errors"
)

var errUsage = errors.New("invalid usage")

// app is what every subcommand works with.
type app struct {
	api     *client.Client
	gate    *session.Gate
	in      *bufio.Reader
	out     io.Writer
	logger  *slog.Logger
	browser *dashboard.Browser
	posts   *dashboard.Posts

	envPassword string
}

func newApp(ctx context.Context, env environment, in io.Reader, out io.Writer, logger *slog.Logger) (*app, error) {
	apiURL := env.apiURL
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	api, err := client.New(apiURL, client.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	storePath := env.storePath
	if storePath == "" {
		storePath, err = session.DefaultStorePath()
		if err != nil {
			return nil, err
		}
	}

	gate := session.NewGate(api, session.NewFileStore(storePath), session.WithLogger(logger))
	if err := gate.Restore(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to restore session")
	}

	return &app{
		api:     api,
		gate:    gate,
		in:      bufio.NewReader(in),
		out:     out,
		logger:  logger,
		browser: dashboard.NewBrowser(api),
		posts:   dashboard.NewPosts(api, 0),

		envPassword: env.password,
	}, nil
}

// requireSession returns the signed-in user id or a hint to log in.
func (a *app) requireSession() (string, error) {
	s := a.gate.Session()
	if s == nil {
		return "", errors.New("not signed in, run `inkctl login` first")
	}

	return s.UserID, nil
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// confirm asks a yes/no question on the input stream.
func (a *app) confirm(question string) bool {
	a.printf("%s [y/N]: ", question)
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(line))

	return answer == "y" || answer == "yes"
}
