package auth

import (
	"errors"

	"github.com/TARIFUDDIN/swasthalink/internal/domain/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
)

type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() user.Password {
	return c.password
}

// Registration is a patient self-signup. Doctors and admins are provisioned
// by seeding.
type Registration struct {
	credentials Credentials
	name        user.Name
}

func NewRegistration(emailStr, passwordStr, firstName, lastName string) (Registration, error) {
	creds, err := NewCredentials(emailStr, passwordStr)
	if err != nil {
		return Registration{}, err
	}
	name, err := user.NewName(firstName, lastName)
	if err != nil {
		return Registration{}, err
	}
	return Registration{credentials: creds, name: name}, nil
}

func (r Registration) Credentials() Credentials { return r.credentials }
func (r Registration) Name() user.Name          { return r.name }
