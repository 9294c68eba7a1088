// Package common holds shared helpers and sentinel errors used across the
// SciCon client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrValidation marks input rejected before any network call; the
	// wrapped message is surfaced to the caller for local display.
	ErrValidation = errors.New("validation error")
)
