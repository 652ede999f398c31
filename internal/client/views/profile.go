package views

import (
	"context"

	"github.com/dmitrijs2005/teebay/internal/client/models"
	"github.com/dmitrijs2005/teebay/internal/common"
)

// Profile shows the signed-in user and edits their details.
type Profile struct {
	auth Authenticator

	Errors FieldErrors
	Status Status
}

func NewProfile(auth Authenticator) *Profile {
	return &Profile{auth: auth, Errors: FieldErrors{}}
}

// User returns the session user, nil when signed out.
func (p *Profile) User() *models.User { return p.auth.User() }

// Update applies a partial edit. Set fields must not be blank and a phone
// must look like one.
func (p *Profile) Update(ctx context.Context, in models.UpdateProfileInput) error {
	errs := FieldErrors{}
	check := func(field, label string, v *string) {
		if v != nil && common.Blank(*v) {
			errs[field] = label + " is required"
		}
	}
	check(FieldFirstName, "First name", in.FirstName)
	check(FieldLastName, "Last name", in.LastName)
	check(FieldAddress, "Address", in.Address)
	check(FieldPhone, "Phone number", in.Phone)
	if in.Phone != nil && errs[FieldPhone] == "" && !phonePattern.MatchString(*in.Phone) {
		errs[FieldPhone] = "Invalid phone number"
	}
	p.Errors = errs
	if err := errs.Err(); err != nil {
		return err
	}
	if in.Empty() {
		return nil
	}

	p.Status.begin(PhaseSubmitting)
	_, err := p.auth.UpdateProfile(ctx, in)
	return p.Status.end(err)
}

// Logout signs out and navigates to the login page.
func (p *Profile) Logout(ctx context.Context) (string, error) {
	if err := p.auth.Logout(ctx); err != nil {
		return PathLogin, err
	}
	return PathLogin, nil
}
