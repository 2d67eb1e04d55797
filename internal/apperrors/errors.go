package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
// Handlers also map "exists but owned by someone else" to this error, so the
// two cases are indistinguishable to the client.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrAuthentication indicates a failed login attempt. The cause (unknown
// identifier, missing password hash, wrong password) is never exposed.
var ErrAuthentication = errors.New("invalid credentials")

// ErrMissingCredentials indicates a protected request arrived without a bearer token.
var ErrMissingCredentials = errors.New("missing credentials")

// ErrInvalidToken indicates a bearer token that is malformed, tampered with, or expired.
var ErrInvalidToken = errors.New("invalid token")
