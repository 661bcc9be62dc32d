package main

import (
	"context"
	"flag"
	"time"

	"inkwell/internal/domain/entity"
	"inkwell/internal/usecase"
	"inkwell/internal/util"

	"github.com/pkg/errors"
)

func runSignUp(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("signup", a.out)
	first := fs.String("first", "", "first name")
	last := fs.String("last", "", "last name")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password (or INKWELL_PASSWORD)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	profile, err := a.gate.SignUp(ctx, usecase.SignUpInput{
		FirstName: *first,
		LastName:  *last,
		Email:     *email,
		Password:  a.passwordOr(*password),
	})
	if err != nil {
		return err
	}

	a.printf("Welcome, %s!\n", profile.DisplayName())

	return nil
}

func runLogin(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("login", a.out)
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password (or INKWELL_PASSWORD)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		return errors.New("-email is required")
	}

	profile, err := a.gate.SignIn(ctx, *email, a.passwordOr(*password))
	if err != nil {
		return err
	}

	a.printf("Signed in as %s\n", displayName(profile, *email))

	return nil
}

func runLoginGoogle(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("login-google", a.out)
	idToken := fs.String("id-token", "", "Google ID token")
	code := fs.String("code", "", "authorization code from the consent redirect")
	state := fs.String("state", "", "state from the consent redirect")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		profile *entity.Profile
		err     error
	)
	switch {
	case *idToken != "":
		profile, err = a.gate.SignInWithGoogle(ctx, *idToken)
	case *code != "" && *state != "":
		profile, err = a.gate.CompleteGoogle(ctx, *code, *state)
	default:
		redirect, urlErr := a.api.GoogleAuthURL(ctx)
		if urlErr != nil {
			return urlErr
		}
		a.printf("Open this URL in a browser, then run\n  inkctl login-google -code <code> -state %s\n\n%s\n", redirect.State, redirect.URL)

		return nil
	}
	if err != nil {
		return err
	}

	a.printf("Signed in as %s\n", displayName(profile, ""))

	return nil
}

func runLogout(ctx context.Context, a *app, _ []string) error {
	if err := a.gate.SignOut(ctx); err != nil {
		return err
	}
	a.printf("Signed out\n")

	return nil
}

func runWhoAmI(ctx context.Context, a *app, _ []string) error {
	s := a.gate.Session()
	if s == nil {
		a.printf("Not signed in\n")

		return nil
	}

	profile, err := a.gate.Profile(ctx)
	if err != nil {
		return err
	}

	a.printf("%s <%s>\n", displayName(profile, s.Email), profile.Email)
	a.printf("user id:  %s\n", s.UserID)
	a.printf("provider: %s\n", s.Provider)
	if !s.ExpiresAt.IsZero() {
		a.printf("session:  expires in %s\n", util.FormatDuration(time.Until(s.ExpiresAt)))
	}
	if !profile.CreatedAt.IsZero() {
		a.printf("joined:   %s\n", profile.CreatedAt.Format(dateLayout))
	}

	return nil
}

func runSettings(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("settings", a.out)
	first := fs.String("first", "", "first name")
	last := fs.String("last", "", "last name")
	email := fs.String("email", "", "email address")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if _, err := a.requireSession(); err != nil {
		return err
	}

	var patch entity.ProfilePatch
	setIfGiven(fs, "first", first, &patch.FirstName)
	setIfGiven(fs, "last", last, &patch.LastName)
	setIfGiven(fs, "email", email, &patch.Email)

	profile, err := a.gate.UpdateProfile(ctx, patch)
	if err != nil {
		return err
	}

	a.printf("Profile updated: %s <%s>\n", profile.DisplayName(), profile.Email)

	return nil
}

func setIfGiven(fs *flag.FlagSet, name string, value *string, target **string) {
	if isSet(fs, name) {
		*target = value
	}
}

func (a *app) passwordOr(password string) string {
	if password != "" {
		return password
	}

	return a.envPassword
}

func displayName(profile *entity.Profile, fallback string) string {
	if name := profile.DisplayName(); name != "" {
		return name
	}

	return fallback
}
