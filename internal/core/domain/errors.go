package domain

import "errors"

// Sentinel errors for the conditions commands map to distinct user-facing
// failures. Callers wrap them with context and test with errors.Is.
var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileExists        = errors.New("profile already exists")
	ErrNoActiveProfile      = errors.New("no profile currently active")
	ErrNoZoneSpecified      = errors.New("no zone specified")
	ErrDanglingCurrent      = errors.New("current profile no longer exists")
	ErrFlarectlNotInstalled = errors.New("flarectl is not installed")
)
