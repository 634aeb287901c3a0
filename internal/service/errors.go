package service

import "errors"

// Client-facing failure classes. Anything not matching one of these is a
// store failure and surfaces to the caller as-is; retry policy lives with
// the transport, not here.
var (
	ErrNotFound         = errors.New("not found")
	ErrForbidden        = errors.New("forbidden")
	ErrSelfFollow       = errors.New("cannot follow self")
	ErrAlreadyFollowing = errors.New("already following this user")
	ErrValidation       = errors.New("invalid input")
	ErrUsernameTaken    = errors.New("username already taken")
	ErrEmailTaken       = errors.New("email already registered")
	ErrBadCredentials   = errors.New("invalid username or password")
)
