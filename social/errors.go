package social

import "golang.org/x/xerrors"

var (
	// ErrInvalidVariant is returned when a post is requested for an unknown
	// post kind.
	ErrInvalidVariant = xerrors.New("invalid post type")
	// ErrInvalidArguments is returned when the arguments provided to build a
	// post do not match its kind.
	ErrInvalidArguments = xerrors.New("invalid post arguments")
	// ErrNotFound is returned when removing a follower or a followed user
	// that is not present.
	ErrNotFound = xerrors.New("not found")
	// ErrAuthorizationDeclined is returned when a sale post is modified with a
	// credential that is not the one of its owner.
	ErrAuthorizationDeclined = xerrors.New("authorization declined")
	// ErrSelfFollow is returned when a user tries to follow itself.
	ErrSelfFollow = xerrors.New("a user can't follow itself")
	// ErrInvalidPasswordLength is returned by sign up when the password is too
	// short or too long.
	ErrInvalidPasswordLength = xerrors.New("invalid password length")
	// ErrDuplicateUsername is returned by sign up when the username is taken.
	ErrDuplicateUsername = xerrors.New("username already exists")
	// ErrInvalidCredentials is returned by log in when no user matches.
	ErrInvalidCredentials = xerrors.New("invalid username or password")
)
