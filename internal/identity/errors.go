package identity

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("identity: user not found")

	// ErrDuplicateUsername is returned when registration collides with an
	// existing username.
	ErrDuplicateUsername = errors.New("identity: username already exists")

	// ErrInvalidCredentials covers both an unknown username and a wrong PIN;
	// the two are deliberately indistinguishable to callers.
	ErrInvalidCredentials = errors.New("identity: invalid credentials")

	// ErrPINTooShort rejects PINs below the minimum length at registration.
	ErrPINTooShort = errors.New("identity: PIN must be at least 4 characters")

	// ErrUnlockDenied is returned when the device unlock gate refuses the
	// attempt after the PIN itself verified.
	ErrUnlockDenied = errors.New("identity: unlock denied")
)
