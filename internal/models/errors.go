package models

import (
	"errors"
)

var (
	ErrNoRecord           = errors.New("models: no matching record found")
	ErrInvalidCredentials = errors.New("models: invalid credentials")
	ErrDuplicateEmail     = errors.New("models: duplicate email")
	ErrDuplicatePhone     = errors.New("models: duplicate phone number")
	ErrUserNotFound       = errors.New("models: user not found")
	ErrInvalidPassword    = errors.New("models: invalid password")
	ErrUserBanned         = errors.New("models: user is banned")
)

// Service request lifecycle errors. Every rejected transition maps to
// exactly one of these; handlers translate them to HTTP status codes.
var (
	ErrRequestNotFound   = errors.New("service request not found")
	ErrResponseNotFound  = errors.New("service response not found")
	ErrFeedbackNotFound  = errors.New("service feedback not found")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidState      = errors.New("operation not allowed in current state")
	ErrValidation        = errors.New("validation failed")
)

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrListingNotFound = errors.New("listing not found")
	ErrEventNotFound   = errors.New("event not found")
	ErrGroupNotFound   = errors.New("group not found")
	ErrAlreadyMember   = errors.New("already a member")
	ErrNotMember       = errors.New("not a member")
	ErrAlreadyAttends  = errors.New("already attending")
)
