package main

import (
	"context"
	"flag"
	"io"
)

type command struct {
	summary string
	run     func(ctx context.Context, a *app, args []string) error
}

//nolint:gochecknoglobals
var commands = map[string]command{
	"signup":       {summary: "create an account and sign in", run: runSignUp},
	"login":        {summary: "sign in with email and password", run: runLogin},
	"login-google": {summary: "sign in with Google", run: runLoginGoogle},
	"logout":       {summary: "sign out and forget the cached profile", run: runLogout},
	"whoami":       {summary: "show the signed-in profile", run: runWhoAmI},
	"settings":     {summary: "update first name, last name or email", run: runSettings},
	"feed":         {summary: "list the most recent posts", run: runFeed},
	"category":     {summary: "browse one category", run: runCategory},
	"author":       {summary: "list posts by author name", run: runAuthor},
	"show":         {summary: "show one post", run: runShow},
	"mine":         {summary: "list your posts", run: runMine},
	"create":       {summary: "publish a post", run: runCreate},
	"edit":         {summary: "edit one of your posts", run: runEdit},
	"delete":       {summary: "delete one of your posts", run: runDelete},
	"upload":       {summary: "upload an image and print its URL", run: runUpload},
	"stats":        {summary: "post counts per category and your own stats", run: runStats},
	"contact":      {summary: "show contact details or send a message", run: runContact},
}

//nolint:gochecknoglobals
var commandOrder = []string{
	"signup", "login", "login-google", "logout", "whoami", "settings",
	"feed", "category", "author", "show",
	"mine", "create", "edit", "delete", "upload",
	"stats", "contact",
}

func newFlagSet(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)

	return fs
}

// isSet reports whether the flag was given on the command line.
func isSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})

	return found
}
