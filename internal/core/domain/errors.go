package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrTweetNotFound      = errors.New("tweet not found")
	ErrEmailTaken         = errors.New("email already in use")
	ErrUsernameTaken      = errors.New("username already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")

	ErrInvalidEmail       = errors.New("invalid email format")
	ErrInvalidUsername    = errors.New("username must be 3-50 letters, digits or underscores")
	ErrInvalidDisplayName = errors.New("display name must be 1-100 characters")
	ErrInvalidBio         = errors.New("bio must be at most 500 characters")
	ErrInvalidAvatar      = errors.New("avatar must be a valid URL")
	ErrEmptyContent       = errors.New("tweet content cannot be empty")
	ErrContentTooLong     = errors.New("tweet content must be at most 280 characters")

	ErrSelfFollow = errors.New("cannot follow yourself")

	// Edge sentinels returned by the engagement repository. ErrEdgeExists
	// signals a uniqueness violation on insert, ErrEdgeNotFound a delete
	// that matched no row; the toggle loop treats both as "someone else
	// flipped the edge first".
	ErrEdgeExists   = errors.New("edge already exists")
	ErrEdgeNotFound = errors.New("edge not found")

	// ErrConflict is surfaced only when the toggle retry budget is spent.
	ErrConflict = errors.New("concurrent modification, try again")
)
