package views

import (
	"context"
	"regexp"
	"strings"

	"github.com/dmitrijs2005/teebay/internal/client/models"
	"github.com/dmitrijs2005/teebay/internal/common"
)

var (
	emailPattern = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^[0-9+\-\s()]*$`)
)

// MinPasswordLength is the shortest password accepted on sign-in and sign-up.
const MinPasswordLength = 6

func validateEmail(errs FieldErrors, email string) {
	switch {
	case common.Blank(email):
		errs[FieldEmail] = "Email is required"
	case !emailPattern.MatchString(strings.TrimSpace(email)):
		errs[FieldEmail] = "Invalid email address"
	}
}

func validatePassword(errs FieldErrors, password string) {
	switch {
	case password == "":
		errs[FieldPassword] = "Password is required"
	case len(password) < MinPasswordLength:
		errs[FieldPassword] = "Password must be at least 6 characters"
	}
}

// Login is the sign-in page.
type Login struct {
	auth Authenticator

	Email    string
	Password string
	Errors   FieldErrors
	// Status carries the authentication failure shown as a banner.
	Status Status
}

func NewLogin(auth Authenticator) *Login {
	return &Login{auth: auth, Errors: FieldErrors{}}
}

// Prefill puts the last used email into the form.
func (l *Login) Prefill(ctx context.Context) {
	if l.Email == "" {
		l.Email = l.auth.LastEmail(ctx)
	}
}

func (l *Login) Validate() FieldErrors {
	errs := FieldErrors{}
	validateEmail(errs, l.Email)
	validatePassword(errs, l.Password)
	return errs
}

// Submit validates the form and signs in; success navigates to the
// product list.
func (l *Login) Submit(ctx context.Context) (string, error) {
	l.Errors = l.Validate()
	if err := l.Errors.Err(); err != nil {
		return "", err
	}
	l.Status.begin(PhaseSubmitting)
	err := l.auth.Login(ctx, strings.TrimSpace(l.Email), l.Password)
	l.Password = ""
	if err != nil {
		return "", l.Status.end(err)
	}
	l.Status.end(nil)
	return PathHome, nil
}

// Dismiss hides the error banner.
func (l *Login) Dismiss() { l.Status.Dismiss() }

// Register is the sign-up page.
type Register struct {
	auth Authenticator

	Input   models.RegisterInput
	Confirm string
	Errors  FieldErrors
	Status  Status
}

func NewRegister(auth Authenticator) *Register {
	return &Register{auth: auth, Errors: FieldErrors{}}
}

func (r *Register) Validate() FieldErrors {
	errs := FieldErrors{}
	in := r.Input
	if common.Blank(in.FirstName) {
		errs[FieldFirstName] = "First name is required"
	}
	if common.Blank(in.LastName) {
		errs[FieldLastName] = "Last name is required"
	}
	if common.Blank(in.Address) {
		errs[FieldAddress] = "Address is required"
	}
	validateEmail(errs, in.Email)
	switch {
	case common.Blank(in.Phone):
		errs[FieldPhone] = "Phone number is required"
	case !phonePattern.MatchString(in.Phone):
		errs[FieldPhone] = "Invalid phone number"
	}
	validatePassword(errs, in.Password)
	switch {
	case r.Confirm == "":
		errs[FieldConfirm] = "Please confirm your password"
	case r.Confirm != in.Password:
		errs[FieldConfirm] = "Passwords do not match"
	}
	return errs
}

// Submit validates the form and creates the account; success navigates to
// the product list.
func (r *Register) Submit(ctx context.Context) (string, error) {
	r.Errors = r.Validate()
	if err := r.Errors.Err(); err != nil {
		return "", err
	}
	in := r.Input
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)

	r.Status.begin(PhaseSubmitting)
	err := r.auth.Register(ctx, in)
	r.Input.Password, r.Confirm = "", ""
	if err != nil {
		return "", r.Status.end(err)
	}
	r.Status.end(nil)
	return PathHome, nil
}

func (r *Register) Dismiss() { r.Status.Dismiss() }
