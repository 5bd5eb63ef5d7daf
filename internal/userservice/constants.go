package userservice

const (
	// Validation messages. The text is part of the API contract: clients
	// assert on which rule failed, and the checks run in a fixed order
	// (username length, password length, name presence, username uniqueness).
	MsgUsernameTooShort  = "username must be at least 3 characters long"
	MsgPasswordTooShort  = "password must be at least 3 characters long"
	MsgNameRequired      = "name is required"
	MsgUsernameNotUnique = "expected `username` must be unique"

	MinUsernameLength = 3
	MinPasswordLength = 3

	// Error messages for user service operations
	ErrFailedToHashPassword = "failed to hash password" // #nosec G101
	ErrFailedToRegisterUser = "failed to register user"
	ErrRetrievingUser       = "error retrieving user"
	ErrUserNotFound         = "user not found"
	ErrInvalidPassword      = "invalid password"
)
