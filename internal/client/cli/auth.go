package cli

import (
	"context"

	"github.com/dmitrijs2005/teebay/internal/client/models"
	"github.com/dmitrijs2005/teebay/internal/client/views"
	"github.com/dmitrijs2005/teebay/internal/common"
)

// Login opens the login page.
func (a *App) Login(ctx context.Context) error {
	return a.Go(ctx, views.PathLogin)
}

// Register opens the sign-up page.
func (a *App) Register(ctx context.Context) error {
	return a.Go(ctx, views.PathSignup)
}

// Logout ends the session and returns to the login page.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.println("You are not logged in.")
		return nil
	}
	next, err := views.NewProfile(a.session).Logout(ctx)
	if err != nil {
		a.showAlert(err)
	} else {
		a.println("Logged out.")
	}
	a.list = views.NewProductList(a.catalog, a.session)
	a.tx = views.NewTransactions(a.loader)
	return a.Go(ctx, next)
}

// readSecret reads a password without echo and wipes the buffer.
func (a *App) readSecret(prompt string) (string, error) {
	pw, err := getPassword(prompt, a.out)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(pw)
	return string(pw), nil
}

// loginPage prompts for credentials. An empty email cancels.
func (a *App) loginPage(ctx context.Context) (string, error) {
	if u := a.session.User(); u != nil {
		a.printf("Already logged in as %s.\n", u.Email)
		return views.PathHome, nil
	}

	l := views.NewLogin(a.session)
	l.Prefill(ctx)
	a.println("Log in to Teebay. Leave the email empty to cancel; type 'register' at the prompt to sign up.")

	email, err := GetWithDefault(a.reader, "Email", l.Email, a.out)
	if err != nil {
		return "", err
	}
	switch email {
	case "":
		return "", nil
	case "register":
		return views.PathSignup, nil
	}
	l.Email = email
	if l.Password, err = a.readSecret("Password"); err != nil {
		return "", err
	}

	next, err := l.Submit(ctx)
	if err != nil {
		if !a.showFieldErrors(err) {
			a.showBanner(&l.Status)
		}
		return "", err
	}
	if u := a.session.User(); u != nil {
		a.printf("Welcome, %s!\n", u.FullName())
	}
	return next, nil
}

func (a *App) registerPage(ctx context.Context) (string, error) {
	if u := a.session.User(); u != nil {
		a.printf("Already logged in as %s.\n", u.Email)
		return views.PathHome, nil
	}

	r := views.NewRegister(a.session)
	a.println("Create a Teebay account.")

	fields := []struct {
		prompt string
		dst    *string
	}{
		{"First name", &r.Input.FirstName},
		{"Last name", &r.Input.LastName},
		{"Address", &r.Input.Address},
		{"Email", &r.Input.Email},
		{"Phone number", &r.Input.Phone},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return "", err
		}
		*f.dst = v
	}

	var err error
	if r.Input.Password, err = a.readSecret("Password"); err != nil {
		return "", err
	}
	if r.Confirm, err = a.readSecret("Confirm password"); err != nil {
		return "", err
	}

	next, err := r.Submit(ctx)
	if err != nil {
		if !a.showFieldErrors(err) {
			a.showBanner(&r.Status)
		}
		return "", err
	}
	a.println("Account created.")
	return next, nil
}

// Profile shows the signed-in user; "profile edit" updates their details.
func (a *App) Profile(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] != "edit" {
		return a.Go(ctx, views.PathProfile)
	}
	ok, err := a.enter(ctx, views.PathProfile)
	if !ok {
		return err
	}

	p := views.NewProfile(a.session)
	u := p.User()
	a.println("Edit profile (press Enter to keep the current value).")

	var in models.UpdateProfileInput
	fields := []struct {
		prompt  string
		current string
		dst     **string
	}{
		{"First name", u.FirstName, &in.FirstName},
		{"Last name", u.LastName, &in.LastName},
		{"Phone number", u.Phone, &in.Phone},
		{"Address", u.Address, &in.Address},
	}
	for _, f := range fields {
		v, err := GetWithDefault(a.reader, f.prompt, f.current, a.out)
		if err != nil {
			return err
		}
		if v != f.current {
			*f.dst = common.Ptr(v)
		}
	}
	if in.Empty() {
		a.println("Nothing to update.")
		return nil
	}

	if err := p.Update(ctx, in); err != nil {
		a.showAlert(err)
		return err
	}
	a.println("Profile updated.")
	return a.profilePage()
}

func (a *App) profilePage() error {
	u := a.session.User()
	if u == nil {
		return nil
	}
	a.renderUser(u)
	a.println("Commands: profile edit, tx, logout")
	return nil
}
