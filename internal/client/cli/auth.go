package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/newsdesk/internal/client/services"
	"github.com/dmitrijs2005/newsdesk/internal/client/session"
)

// getSimpleText, getTextWithDefault and getPassword are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText      = GetSimpleText
	getTextWithDefault = GetTextWithDefault
	getPassword        = GetPassword
)

var errNotSignedIn = errors.New("not signed in")

// SignUp prompts for name, email, password and its confirmation and
// creates the account. The new session is stored on success.
func (a *App) SignUp(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer wipe(password)
	confirmation, err := getPassword(a.out, "Confirm password")
	if err != nil {
		return err
	}
	defer wipe(confirmation)

	res := a.auth.SignUp(ctx, services.SignUpInput{
		Name:                 name,
		Email:                email,
		Password:             string(password),
		PasswordConfirmation: string(confirmation),
	})
	if err := res.Err(); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", res.Data.Name)
	return nil
}

// SignIn prompts for credentials and authenticates.
func (a *App) SignIn(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer wipe(password)

	res := a.auth.SignIn(ctx, email, string(password))
	if err := res.Err(); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Signed in as %s\n", res.Data.Name)
	return nil
}

// SignOut ends the session. The local session is cleared even when the API
// call fails; that failure is still reported.
func (a *App) SignOut(ctx context.Context) error {
	res := a.auth.SignOut(ctx)
	fmt.Fprintln(a.out, "Signed out")
	return res.Err()
}

// WhoAmI prints the cached user and, for JWT bearers, when the token expires.
func (a *App) WhoAmI(ctx context.Context) error {
	s := a.auth.Session(ctx)
	if !s.IsLoggedIn {
		return errNotSignedIn
	}

	if s.User != nil {
		fmt.Fprintf(a.out, "#%d %s <%s>\n", s.User.ID, s.User.Name, s.User.Email)
	}
	if exp, ok := session.TokenExpiry(s.Token); ok {
		fmt.Fprintf(a.out, "Token expires %s (in %s)\n",
			exp.Local().Format(time.RFC1123), time.Until(exp).Round(time.Minute))
	}
	return nil
}

// Profile fetches the profile from the API. With "edit" it prompts for new
// values, blank keeping the current one, and updates the cached user with
// the API's answer.
func (a *App) Profile(ctx context.Context, args []string) error {
	edit := false
	switch {
	case len(args) == 0:
	case len(args) == 1 && args[0] == "edit":
		edit = true
	default:
		return usageError("profile [edit]")
	}

	s := a.auth.Session(ctx)
	if !s.IsLoggedIn || s.User == nil {
		return errNotSignedIn
	}

	res := a.auth.GetUserByID(ctx, s.User.ID)
	if err := res.Err(); err != nil {
		return err
	}
	u := res.Data
	fmt.Fprintf(a.out, "Name:   %s\nEmail:  %s\nMobile: %s\n", u.Name, u.Email, u.Mobile)
	if !edit {
		return nil
	}

	var (
		in  services.ProfileUpdate
		err error
	)
	if in.Name, err = getTextWithDefault(a.reader, "Name", u.Name, a.out); err != nil {
		return err
	}
	if in.Mobile, err = getTextWithDefault(a.reader, "Mobile", u.Mobile, a.out); err != nil {
		return err
	}
	if in.Email, err = getTextWithDefault(a.reader, "Email", u.Email, a.out); err != nil {
		return err
	}

	upd := a.auth.UpdateProfile(ctx, in)
	if err := upd.Err(); err != nil {
		return err
	}
	if err := a.auth.RefreshUser(ctx, upd.Data); err != nil {
		return fmt.Errorf("profile updated but not cached: %w", err)
	}

	fmt.Fprintln(a.out, "Profile updated")
	return nil
}
