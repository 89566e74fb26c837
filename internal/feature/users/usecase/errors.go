// Package usecase implements the business logic for the users feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when no user exists for a given ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidUserAge is returned when a birthdate is missing or the
	// computed age is below the configured minimum.
	ErrInvalidUserAge = errors.New("invalid user age")
)
