package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/accountkeeper/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped
// in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) readCredentials() (models.Credentials, error) {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return models.Credentials{}, err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return models.Credentials{}, err
	}

	return models.Credentials{Email: email, Password: password}, nil
}

// Register prompts for credentials and attempts to create a new user.
// Outcome notifications are produced by the session manager.
func (a *App) Register(ctx context.Context) error {
	creds, err := a.readCredentials()
	if err != nil {
		return err
	}
	return a.session.Register(ctx, creds)
}

// Login prompts for credentials and attempts to authenticate. On
// success the session manager persists the token and moves the surface
// to the dashboard.
func (a *App) Login(ctx context.Context) error {
	creds, err := a.readCredentials()
	if err != nil {
		return err
	}
	_, err = a.session.Login(ctx, creds)
	return err
}

// Google hands the surface off to the backend's federated login.
func (a *App) Google(ctx context.Context) error {
	a.session.LoginWithGoogle()
	return nil
}

// WhoAmI prints the identity decoded from the persisted token. The
// fields are a display hint only; nothing is gated on them.
func (a *App) WhoAmI(ctx context.Context) error {
	user := a.session.CurrentUser(ctx)
	if user == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "%s (%s)\n", user.Email, user.Role)
	return nil
}

// Logout clears the persisted session and returns to the login surface.
func (a *App) Logout(ctx context.Context) error {
	return a.session.Logout(ctx)
}
