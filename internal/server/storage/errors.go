package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that the user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that a user with this email already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrTokenNotFound indicates that the refresh token was not found
	ErrTokenNotFound = errors.New("refresh token not found")

	// ErrTokenUsedOrRevoked indicates that the refresh token has already
	// been redeemed or administratively revoked
	ErrTokenUsedOrRevoked = errors.New("refresh token is used or revoked")

	// ErrRoleNotFound indicates that the role does not exist
	ErrRoleNotFound = errors.New("role not found")

	// ErrColorNotFound indicates that the color was not found
	ErrColorNotFound = errors.New("color not found")

	// ErrVehicleNotFound indicates that the vehicle was not found
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrVehicleAlreadyExists indicates a duplicate license plate
	ErrVehicleAlreadyExists = errors.New("vehicle already exists")
)
