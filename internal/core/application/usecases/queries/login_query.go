// Package queries contains the read use cases of the brokerage. Query handlers
// read through repositories and return plain response structs; they never
// change state.
package queries

import (
	"errors"
	"strings"

	"freight/internal/core/domain/model/customer"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	ErrLoginQueryIsNotConstructed = errors.New("LoginQuery must be created via NewLoginQuery constructor")

	// ErrWrongCredentials is returned for an unknown login and for a wrong
	// password alike.
	ErrWrongCredentials = errors.New("wrong credentials")
)

// LoginQuery authenticates a customer by email or phone and password.
type LoginQuery struct {
	login    string
	byEmail  bool
	password string

	guard guard.ConstructorGuard
}

// NewLoginQuery accepts an email (anything containing "@") or a phone number as login.
func NewLoginQuery(login, password string) (LoginQuery, error) {
	q := LoginQuery{
		password: password,
		guard:    guard.NewConstructorGuard(),
	}

	var loginErr, passwordErr error
	if strings.TrimSpace(login) == "" {
		loginErr = errs.NewValueIsRequiredError("login")
	}
	if password == "" {
		passwordErr = errs.NewValueIsRequiredError("password")
	}
	if err := errors.Join(loginErr, passwordErr); err != nil {
		return LoginQuery{}, err
	}

	if strings.Contains(login, "@") {
		q.login, q.byEmail = customer.NormalizeEmail(login), true
	} else {
		q.login = customer.NormalizePhone(login)
	}
	return q, nil
}

func (q LoginQuery) Validate() error {
	return q.guard.Validate(ErrLoginQueryIsNotConstructed)
}

func (q LoginQuery) Login() string {
	return q.login
}

func (q LoginQuery) ByEmail() bool {
	return q.byEmail
}

func (q LoginQuery) Password() string {
	return q.password
}

type LoginQueryResponse struct {
	CustomerID kernel.UUID
	FullName   string
	Email      string
}
