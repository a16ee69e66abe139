package domain

import "errors"

var (
	// ErrMissingCredentials means the login request lacked email or password.
	ErrMissingCredentials = errors.New("email and password are required")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. The message is deliberately identical in both cases so the
	// API cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidSession means the session cookie was missing, expired,
	// revoked, or failed to decrypt.
	ErrInvalidSession = errors.New("invalid session")

	// ErrMissingFields means a create request lacked required fields.
	ErrMissingFields = errors.New("missing required fields")

	ErrEmailExists = errors.New("email already exists")

	ErrProductNotFound      = errors.New("product not found")
	ErrBillNotFound         = errors.New("bill not found")
	ErrStoreNotFound        = errors.New("store not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrNotificationNotFound = errors.New("notification not found")
)
