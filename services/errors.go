package services

import "errors"

// Sentinel errors returned by the services. The error text doubles as
// the stable machine-readable kind that controllers put on the wire.
var (
	ErrMissingFields   = errors.New("missing_fields")
	ErrEmailExists     = errors.New("email_exists")
	ErrBadCredentials  = errors.New("bad_credentials")
	ErrProfileNotFound = errors.New("not_found")
	ErrUserNotFound    = errors.New("user_not_found")
	ErrMatchNotFound   = errors.New("match_not_found")
	ErrMissingText     = errors.New("missing_text")
)
