package cli

import (
	"context"
	"errors"
	"os"

	"github.com/scicon-platform/scicon-cli/internal/client/api"
	"github.com/scicon-platform/scicon-cli/internal/client/routes"
	"github.com/scicon-platform/scicon-cli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts the user for credentials and tries to authenticate.
//
// On success the token pair is persisted by the API client and the app
// switches to the logged-in state. Rejected credentials and validation
// failures are reported to the user; the password byte slice is wiped
// before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Login(ctx, email, password); err != nil {
		a.reportAuthError(ctx, err)
		return err
	}

	a.setLoggedIn(true)
	printlnFn("Success!")
	return nil
}

// Register prompts for a username, email and password and creates a new
// account. Registration does not log the user in.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Register(ctx, username, email, password); err != nil {
		a.reportAuthError(ctx, err)
		return err
	}

	printlnFn("Account created, you can log in now.")
	return nil
}

// Logout clears the local session. Running it while already logged out is
// harmless and reports the same outcome.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		a.logger.Error(ctx, "logout failed", "error", err)
		return err
	}
	a.setLoggedIn(false)
	printlnFn("Logged out. See you at " + routes.Login + ".")
	return nil
}

// WhoAmI prints the locally stored display fields for the current user.
func (a *App) WhoAmI(ctx context.Context) error {
	name, email, err := a.authService.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if name == "" && email == "" {
		printlnFn("Not signed in.")
		return nil
	}
	printlnFn("Signed in as " + name + " <" + email + ">")
	return nil
}

// reportAuthError turns common failure modes into user-facing messages.
func (a *App) reportAuthError(ctx context.Context, err error) {
	var apiErr *api.APIError

	switch {
	case errors.Is(err, common.ErrValidation):
		printlnFn("Invalid input:", err.Error())
	case errors.Is(err, api.ErrUnavailable):
		printlnFn("Server unavailable, try again later.")
	case errors.As(err, &apiErr):
		printlnFn("Request rejected:", apiErr.Error())
	default:
		a.logger.Error(ctx, "auth command failed", "error", err)
		printlnFn("Something went wrong:", err.Error())
	}
}
