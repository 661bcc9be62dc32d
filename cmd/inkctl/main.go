package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
)

const defaultAPIURL = "http://localhost:8080"

// Supported subcommands, grouped as in the usage text:
// - session:  signup, login, login-google, logout, whoami, settings
// - reading:  feed, category, author, show
// - writing:  mine, create, edit, delete, upload
// - insights: stats, contact

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env := environment{
		apiURL:    os.Getenv("INKWELL_API"),
		storePath: os.Getenv("INKWELL_STORE"),
		password:  os.Getenv("INKWELL_PASSWORD"),
		verbose:   os.Getenv("INKWELL_DEBUG") != "",
	}

	if err := run(ctx, os.Args[1:], env, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type environment struct {
	apiURL    string
	storePath string
	password  string
	verbose   bool
}

func run(ctx context.Context, args []string, env environment, in io.Reader, out io.Writer) error {
	if len(args) < 1 {
		printUsage(out)

		return errUsage
	}

	name, rest := args[0], args[1:]
	if name == "help" || name == "-h" || name == "--help" {
		printUsage(out)

		return nil
	}

	cmd, ok := commands[name]
	if !ok {
		printUsage(out)

		return errors.Errorf("unknown command %q", name)
	}

	level := slog.LevelWarn
	if env.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	a, err := newApp(ctx, env, in, out, logger)
	if err != nil {
		return err
	}

	return cmd.run(ctx, a, rest)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: inkctl <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, name := range commandOrder {
		fmt.Fprintf(w, "  %-13s %s\n", name, commands[name].summary)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintf(w, "  INKWELL_API       API base URL (default %s)\n", defaultAPIURL)
	fmt.Fprintln(w, "  INKWELL_STORE     session store file (default $XDG_CONFIG_HOME/inkwell/store.json)")
	fmt.Fprintln(w, "  INKWELL_PASSWORD  password for login/signup when -password is omitted")
	fmt.Fprintln(w, "  INKWELL_DEBUG     log API requests to stderr")
}
