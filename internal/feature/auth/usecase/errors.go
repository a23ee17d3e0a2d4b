// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when the email or password does not match a stored user.
	// The same error covers both cases so responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccountInactive is returned when the credentials match but the account has been deactivated.
	ErrAccountInactive = errors.New("account is inactive")

	// ErrInvalidToken is returned when a bearer token fails verification or its
	// subject no longer resolves to a stored user.
	ErrInvalidToken = errors.New("invalid token")
)
