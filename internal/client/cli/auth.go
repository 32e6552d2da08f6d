package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/storydeck/storydeck/internal/client/api"
	"github.com/storydeck/storydeck/internal/client/views"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates. On success the new
// session replaces the current one, credentials are persisted by the
// service, and the feed is re-rendered for the signed-in user. On failure
// the current session is kept untouched.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	session, err := a.sessions.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			fmt.Fprintln(a.out, "Invalid username or password.")
			return nil
		}
		return err
	}

	a.session = session
	fmt.Fprintf(a.out, "Welcome back, %s!\n", session.Username())

	a.sync(ctx)
	a.show(views.SectionFeed)
	return nil
}

// Register prompts for account details and creates a new account. The
// success path matches Login: session replaced, credentials persisted,
// feed re-rendered.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Choose a username", a.out)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter your display name", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	session, err := a.sessions.CreateAccount(ctx, username, password, name)
	if err != nil {
		if errors.Is(err, api.ErrConflict) {
			fmt.Fprintln(a.out, "That username is already taken.")
			return nil
		}
		return err
	}

	a.session = session
	fmt.Fprintf(a.out, "Account created. Welcome, %s!\n", session.Username())

	a.sync(ctx)
	a.show(views.SectionFeed)
	return nil
}

// Logout clears the persisted credentials and drops to the anonymous
// session. No backend call is made; logging out always succeeds locally.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Logout(ctx); err != nil {
		return err
	}

	a.session = a.sessions.ResolveFromStore(ctx)
	fmt.Fprintln(a.out, "Logged out.")
	a.show(views.SectionFeed)
	return nil
}
