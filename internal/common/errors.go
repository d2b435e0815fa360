// Package common defines shared sentinel errors used across lock-logger
// components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Import taxonomy: the top-level shape is broken (lockables/entries are
	// not arrays). Anything less severe is repaired by field defaulting.
	ErrInvalidFormat = errors.New("invalid format")

	// Validation errors for lockable creation.
	ErrNameRequired = errors.New("name is required")
	ErrIconRequired = errors.New("icon is required")

	// Share flow control.
	ErrNoEntries        = errors.New("no entries")
	ErrShareUnavailable = errors.New("share method unavailable")

	// Preference validation.
	ErrInvalidTheme = errors.New("invalid theme")
)
