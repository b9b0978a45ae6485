package services

import "errors"

// ValidationError marks input that must be rejected before any persistence
// call. The handler layer maps it to a 400.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// ErrInvalidCredentials is returned for any failed login, regardless of
// whether the username or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")
