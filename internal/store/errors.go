package store

import "errors"

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// ErrEmailTaken is returned when registering with an email that already
// exists in the user directory.
var ErrEmailTaken = errors.New("email already registered")

// ErrInvalidCredentials is returned on a failed login. It deliberately does
// not reveal whether the email or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")
