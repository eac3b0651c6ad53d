package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that a user with this email already exists.
	// The sqlite implementation derives it from the UNIQUE constraint on email,
	// so concurrent registrations for one email can never both succeed.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrServiceNotFound indicates that the service was not found
	ErrServiceNotFound = errors.New("service not found")

	// ErrBlogNotFound indicates that the blog post was not found
	ErrBlogNotFound = errors.New("blog post not found")

	// ErrRequestNotFound indicates that the service request was not found
	ErrRequestNotFound = errors.New("service request not found")
)
